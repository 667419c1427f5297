package communityRepo

import (
	"context"

	"mentorhub/models"
)

// CommunityRepository persists community questions and answers.
type CommunityRepository interface {
	CreateQuestion(ctx context.Context, question *models.Question) error

	// GetQuestionByID returns (nil, nil) when no question matches.
	GetQuestionByID(ctx context.Context, id string) (*models.Question, error)

	// ListQuestions returns one page of questions, newest first, plus the
	// total count for pagination.
	ListQuestions(ctx context.Context, page, limit int) ([]models.Question, int64, error)

	CreateAnswer(ctx context.Context, answer *models.Answer) error

	// ListAnswers returns one page of a question's answers, oldest first,
	// plus the total count.
	ListAnswers(ctx context.Context, questionID string, page, limit int) ([]models.Answer, int64, error)
}
