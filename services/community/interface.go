package community

import (
	"context"

	communityRepo "mentorhub/database/repository/community"
	userRepo "mentorhub/database/repository/user"
	"mentorhub/models"
)

// QuestionPage is one page of questions plus pagination info.
type QuestionPage struct {
	Questions []models.Question `json:"questions"`
	Page      int               `json:"page"`
	Limit     int               `json:"limit"`
	Total     int64             `json:"total"`
}

// AnswerPage is one page of a question's answers plus pagination info.
type AnswerPage struct {
	Answers []models.Answer `json:"answers"`
	Page    int             `json:"page"`
	Limit   int             `json:"limit"`
	Total   int64           `json:"total"`
}

// CommunityService covers the public question and answer board.
type CommunityService interface {
	AskQuestion(ctx context.Context, userID, question string) (*models.Question, error)
	GetQuestion(ctx context.Context, questionID string) (*models.Question, error)
	ListQuestions(ctx context.Context, page, limit int) (*QuestionPage, error)
	AnswerQuestion(ctx context.Context, userID, questionID, answer string) (*models.Answer, error)
	ListAnswers(ctx context.Context, questionID string, page, limit int) (*AnswerPage, error)
}

// DefaultCommunityService is the production implementation.
type DefaultCommunityService struct {
	Repo  communityRepo.CommunityRepository
	Users userRepo.UserRepository
}

func NewDefaultCommunityService(repo communityRepo.CommunityRepository, users userRepo.UserRepository) *DefaultCommunityService {
	return &DefaultCommunityService{Repo: repo, Users: users}
}
