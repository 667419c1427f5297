package verificationRepo

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

// MongoVerificationRepo implements VerificationRepository using MongoDB.
// Documents are embedded in the submission record.
type MongoVerificationRepo struct {
	coll *mongo.Collection
}

// NewMongoVerificationRepo creates a new VerificationRepository backed by MongoDB.
func NewMongoVerificationRepo() VerificationRepository {
	repo := &MongoVerificationRepo{coll: database.Collection("mentor_verifications")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoVerificationRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new verification submission.
func (r *MongoVerificationRepo) Create(ctx context.Context, verification *models.MentorVerification) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if verification.ID == "" {
		verification.ID = uuid.New().String()
	}
	verification.Status = models.VerificationPending
	verification.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, verification); err != nil {
		return fmt.Errorf("failed to create verification: %w", err)
	}
	return nil
}

// GetByUserID retrieves a mentor's submission.
func (r *MongoVerificationRepo) GetByUserID(ctx context.Context, userID string) (*models.MentorVerification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var verification models.MentorVerification
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&verification); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch verification for user %s: %w", userID, err)
	}
	return &verification, nil
}

// GetDocumentByID scans the three embedded document fields for a match and
// returns the document along with the owning user's ID.
func (r *MongoVerificationRepo) GetDocumentByID(ctx context.Context, documentID string) (*models.Document, string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"government_id.id": documentID},
		{"degree_certificate.id": documentID},
		{"additional_file.id": documentID},
	}}

	var verification models.MentorVerification
	if err := r.coll.FindOne(ctx, filter).Decode(&verification); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("failed to fetch document %s: %w", documentID, err)
	}

	for _, doc := range []models.Document{verification.GovernmentID, verification.DegreeCert, verification.AdditionalFile} {
		if doc.ID == documentID {
			return &doc, verification.UserID, nil
		}
	}
	return nil, "", nil
}

// SetStatus updates the review status of a mentor's submission.
func (r *MongoVerificationRepo) SetStatus(ctx context.Context, userID, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update verification status: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no verification found for user %s", userID)
	}
	return nil
}
