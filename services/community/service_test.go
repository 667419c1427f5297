package community

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"mentorhub/models"
	"mentorhub/services/scheduling"
)

// fakeCommunityRepo is an in-memory CommunityRepository.
type fakeCommunityRepo struct {
	questions []models.Question
	answers   []models.Answer
}

func (r *fakeCommunityRepo) CreateQuestion(ctx context.Context, q *models.Question) error {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	r.questions = append(r.questions, *q)
	return nil
}

func (r *fakeCommunityRepo) GetQuestionByID(ctx context.Context, id string) (*models.Question, error) {
	for i := range r.questions {
		if r.questions[i].ID == id {
			q := r.questions[i]
			return &q, nil
		}
	}
	return nil, nil
}

func (r *fakeCommunityRepo) ListQuestions(ctx context.Context, page, limit int) ([]models.Question, int64, error) {
	start := page * limit
	if start >= len(r.questions) {
		return nil, int64(len(r.questions)), nil
	}
	end := start + limit
	if end > len(r.questions) {
		end = len(r.questions)
	}
	return r.questions[start:end], int64(len(r.questions)), nil
}

func (r *fakeCommunityRepo) CreateAnswer(ctx context.Context, a *models.Answer) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	r.answers = append(r.answers, *a)
	return nil
}

func (r *fakeCommunityRepo) ListAnswers(ctx context.Context, questionID string, page, limit int) ([]models.Answer, int64, error) {
	var matched []models.Answer
	for _, a := range r.answers {
		if a.QuestionID == questionID {
			matched = append(matched, a)
		}
	}
	start := page * limit
	if start >= len(matched) {
		return nil, int64(len(matched)), nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], int64(len(matched)), nil
}

// fakeUserRepo resolves author summaries from a fixed user set.
type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) Create(ctx context.Context, u *models.User) error { return nil }

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByIDWithProjection(ctx context.Context, id string, projection bson.M) (*models.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmailAndRole(ctx context.Context, email, role string) (*models.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) UpdateWithDocument(ctx context.Context, id string, update bson.M) error {
	return nil
}

func (r *fakeUserRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error { return nil }

func (r *fakeUserRepo) SetCredentialsVerified(ctx context.Context, id string, verified bool) error {
	return nil
}

func (r *fakeUserRepo) UpsertGoogleUser(ctx context.Context, email, role, refreshToken string, expiry time.Time) (*models.User, error) {
	return nil, nil
}

func newTestService() (*DefaultCommunityService, *fakeCommunityRepo) {
	repo := &fakeCommunityRepo{}
	users := &fakeUserRepo{users: map[string]*models.User{
		"u1": {ID: "u1", Name: "Grace", Role: models.RoleMentor, Profession: "Engineer"},
	}}
	return NewDefaultCommunityService(repo, users), repo
}

func TestAskQuestionFillsAuthor(t *testing.T) {
	svc, _ := newTestService()

	q, err := svc.AskQuestion(context.Background(), "u1", "  How do I prepare for interviews?  ")
	require.NoError(t, err)
	assert.Equal(t, "How do I prepare for interviews?", q.Question)
	require.NotNil(t, q.User)
	assert.Equal(t, "Grace", q.User.Name)
}

func TestAskQuestionRejectsEmpty(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AskQuestion(context.Background(), "u1", "   ")
	assert.Error(t, err)
}

func TestGetQuestionFillsAuthor(t *testing.T) {
	svc, _ := newTestService()

	q, err := svc.AskQuestion(context.Background(), "u1", "Is remote mentoring effective?")
	require.NoError(t, err)

	got, err := svc.GetQuestion(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, q.ID, got.ID)
	require.NotNil(t, got.User)
	assert.Equal(t, "Grace", got.User.Name)
}

func TestGetQuestionUnknownID(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetQuestion(context.Background(), "ghost")
	assert.True(t, scheduling.IsNotFound(err))
}

func TestAnswerUnknownQuestion(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AnswerQuestion(context.Background(), "u1", "ghost", "an answer")
	assert.True(t, scheduling.IsNotFound(err))
}

func TestAnswerAndListAnswers(t *testing.T) {
	svc, _ := newTestService()

	q, err := svc.AskQuestion(context.Background(), "u1", "What stack should I learn?")
	require.NoError(t, err)

	_, err = svc.AnswerQuestion(context.Background(), "u1", q.ID, "Start with fundamentals.")
	require.NoError(t, err)

	page, err := svc.ListAnswers(context.Background(), q.ID, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
	require.Len(t, page.Answers, 1)
	assert.Equal(t, "Start with fundamentals.", page.Answers[0].Answer)
}

func TestListQuestionsClampsPaging(t *testing.T) {
	svc, repo := newTestService()
	for i := 0; i < 3; i++ {
		repo.questions = append(repo.questions, models.Question{ID: uuid.New().String(), UserID: "u1", Question: "q"})
	}

	page, err := svc.ListQuestions(context.Background(), -5, 500)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Page)
	assert.Equal(t, maxPageSize, page.Limit)
	assert.EqualValues(t, 3, page.Total)
	assert.Len(t, page.Questions, 3)
}

func TestListAnswersEmptyPageIsNotNil(t *testing.T) {
	svc, _ := newTestService()

	q, err := svc.AskQuestion(context.Background(), "u1", "Anyone hiring?")
	require.NoError(t, err)

	page, err := svc.ListAnswers(context.Background(), q.ID, 0, 10)
	require.NoError(t, err)
	assert.NotNil(t, page.Answers)
	assert.Empty(t, page.Answers)
}
