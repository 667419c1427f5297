package community

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"mentorhub/models"
	"mentorhub/services/scheduling"
	"mentorhub/utils"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

func clampPaging(page, limit int) (int, int) {
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

// authorSummary loads the public author info for one user ID. Missing users
// (deleted accounts) yield nil rather than an error.
func (s *DefaultCommunityService) authorSummary(ctx context.Context, userID string) *models.UserSummary {
	userRec, err := s.Users.GetByIDWithProjection(ctx, userID, bson.M{
		"id": 1, "name": 1, "role": 1, "profession": 1, "profile_image": 1,
	})
	if err != nil {
		utils.GetLogger().Warn("authorSummary: failed to fetch author", zap.String("userID", userID), zap.Error(err))
		return nil
	}
	if userRec == nil {
		return nil
	}
	return &models.UserSummary{
		ID:         userRec.ID,
		Name:       userRec.Name,
		Role:       userRec.Role,
		Profession: userRec.Profession,
		Image:      userRec.ProfileImage,
	}
}

// AskQuestion posts a new community question.
func (s *DefaultCommunityService) AskQuestion(ctx context.Context, userID, question string) (*models.Question, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("question cannot be empty")
	}

	q := &models.Question{UserID: userID, Question: question}
	if err := s.Repo.CreateQuestion(ctx, q); err != nil {
		return nil, err
	}
	q.User = s.authorSummary(ctx, userID)
	return q, nil
}

// GetQuestion returns one question with author info.
func (s *DefaultCommunityService) GetQuestion(ctx context.Context, questionID string) (*models.Question, error) {
	question, err := s.Repo.GetQuestionByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, &scheduling.NotFoundError{Resource: "question", ID: questionID}
	}
	question.User = s.authorSummary(ctx, question.UserID)
	return question, nil
}

// ListQuestions returns one page of questions, newest first, with author info.
func (s *DefaultCommunityService) ListQuestions(ctx context.Context, page, limit int) (*QuestionPage, error) {
	page, limit = clampPaging(page, limit)

	questions, total, err := s.Repo.ListQuestions(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	for i := range questions {
		questions[i].User = s.authorSummary(ctx, questions[i].UserID)
	}
	if questions == nil {
		questions = []models.Question{}
	}

	return &QuestionPage{Questions: questions, Page: page, Limit: limit, Total: total}, nil
}

// AnswerQuestion posts a reply to an existing question.
func (s *DefaultCommunityService) AnswerQuestion(ctx context.Context, userID, questionID, answer string) (*models.Answer, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, fmt.Errorf("answer cannot be empty")
	}

	question, err := s.Repo.GetQuestionByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, &scheduling.NotFoundError{Resource: "question", ID: questionID}
	}

	a := &models.Answer{QuestionID: questionID, UserID: userID, Answer: answer}
	if err := s.Repo.CreateAnswer(ctx, a); err != nil {
		return nil, err
	}
	a.User = s.authorSummary(ctx, userID)
	return a, nil
}

// ListAnswers returns one page of a question's answers, oldest first.
func (s *DefaultCommunityService) ListAnswers(ctx context.Context, questionID string, page, limit int) (*AnswerPage, error) {
	page, limit = clampPaging(page, limit)

	question, err := s.Repo.GetQuestionByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, &scheduling.NotFoundError{Resource: "question", ID: questionID}
	}

	answers, total, err := s.Repo.ListAnswers(ctx, questionID, page, limit)
	if err != nil {
		return nil, err
	}
	for i := range answers {
		answers[i].User = s.authorSummary(ctx, answers[i].UserID)
	}
	if answers == nil {
		answers = []models.Answer{}
	}

	return &AnswerPage{Answers: answers, Page: page, Limit: limit, Total: total}, nil
}
