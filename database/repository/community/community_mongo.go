package communityRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mentorhub/database"
	"mentorhub/models"
)

// MongoCommunityRepo implements CommunityRepository using MongoDB.
type MongoCommunityRepo struct {
	questionColl *mongo.Collection
	answerColl   *mongo.Collection
}

// NewMongoCommunityRepo creates a new CommunityRepository backed by MongoDB.
func NewMongoCommunityRepo() CommunityRepository {
	repo := &MongoCommunityRepo{
		questionColl: database.Collection("questions"),
		answerColl:   database.Collection("answers"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoCommunityRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.questionColl.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create question indexes: %w", err)
	}
	if _, err := r.answerColl.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "question_id", Value: 1}, {Key: "created_at", Value: 1}},
	}); err != nil {
		return fmt.Errorf("failed to create answer indexes: %w", err)
	}
	return nil
}

// CreateQuestion inserts a new question.
func (r *MongoCommunityRepo) CreateQuestion(ctx context.Context, question *models.Question) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if question.ID == "" {
		question.ID = uuid.New().String()
	}
	question.CreatedAt = time.Now()

	if _, err := r.questionColl.InsertOne(ctx, question); err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// GetQuestionByID retrieves a question by its unique ID.
func (r *MongoCommunityRepo) GetQuestionByID(ctx context.Context, id string) (*models.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var question models.Question
	if err := r.questionColl.FindOne(ctx, bson.M{"id": id}).Decode(&question); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch question %s: %w", id, err)
	}
	return &question, nil
}

// ListQuestions returns one page of questions, newest first.
func (r *MongoCommunityRepo) ListQuestions(ctx context.Context, page, limit int) ([]models.Question, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	total, err := r.questionColl.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count questions: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(page * limit)).
		SetLimit(int64(limit))

	cursor, err := r.questionColl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list questions: %w", err)
	}
	defer cursor.Close(ctx)

	var questions []models.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, 0, fmt.Errorf("failed to decode questions: %w", err)
	}
	return questions, total, nil
}

// CreateAnswer inserts a new answer.
func (r *MongoCommunityRepo) CreateAnswer(ctx context.Context, answer *models.Answer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if answer.ID == "" {
		answer.ID = uuid.New().String()
	}
	answer.CreatedAt = time.Now()

	if _, err := r.answerColl.InsertOne(ctx, answer); err != nil {
		return fmt.Errorf("failed to create answer: %w", err)
	}
	return nil
}

// ListAnswers returns one page of a question's answers, oldest first.
func (r *MongoCommunityRepo) ListAnswers(ctx context.Context, questionID string, page, limit int) ([]models.Answer, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"question_id": questionID}

	total, err := r.answerColl.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count answers: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetSkip(int64(page * limit)).
		SetLimit(int64(limit))

	cursor, err := r.answerColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list answers: %w", err)
	}
	defer cursor.Close(ctx)

	var answers []models.Answer
	if err := cursor.All(ctx, &answers); err != nil {
		return nil, 0, fmt.Errorf("failed to decode answers: %w", err)
	}
	return answers, total, nil
}
