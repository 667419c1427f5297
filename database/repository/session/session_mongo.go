package sessionRepo

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

// MongoSessionRepo implements SessionRepository using MongoDB. Sessions embed
// their weekly slots; committed bookings live in a separate collection.
type MongoSessionRepo struct {
	sessionColl *mongo.Collection
	bookingColl *mongo.Collection
}

// NewMongoSessionRepo creates a new SessionRepository backed by MongoDB.
func NewMongoSessionRepo() SessionRepository {
	repo := &MongoSessionRepo{
		sessionColl: database.Collection("sessions"),
		bookingColl: database.Collection("bookings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries. The
// unique index on bookings.bookingId backs up the one-live-booking-per-slot
// guarantee.
func (r *MongoSessionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	sessionIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "mentor_id", Value: 1}}},
	}
	if _, err := r.sessionColl.Indexes().CreateMany(ctx, sessionIndexes); err != nil {
		return fmt.Errorf("failed to create session indexes: %w", err)
	}

	bookingIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "bookingId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "mentee_id", Value: 1}}},
	}
	if _, err := r.bookingColl.Indexes().CreateMany(ctx, bookingIndexes); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}

// Create inserts a new session document.
func (r *MongoSessionRepo) Create(ctx context.Context, session *models.MentorSession) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	session.CreatedAt = now
	session.UpdatedAt = now

	if _, err := r.sessionColl.InsertOne(ctx, session); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetByID retrieves a session by its unique ID. Returns (nil, nil) when no
// session matches.
func (r *MongoSessionRepo) GetByID(ctx context.Context, id string) (*models.MentorSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var session models.MentorSession
	if err := r.sessionColl.FindOne(ctx, bson.M{"id": id}).Decode(&session); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch session with id %s: %w", id, err)
	}
	return &session, nil
}

// GetByMentorID retrieves all sessions owned by a mentor.
func (r *MongoSessionRepo) GetByMentorID(ctx context.Context, mentorID string) ([]models.MentorSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.sessionColl.Find(ctx, bson.M{"mentor_id": mentorID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions for mentor %s: %w", mentorID, err)
	}
	defer cursor.Close(ctx)

	var sessions []models.MentorSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	return sessions, nil
}

// slotFilter matches a session holding a slot with the given booking ID on
// any weekday, optionally restricted to slots still available.
func slotFilter(bookingID string, availableOnly bool) bson.M {
	elem := bson.M{"bookingId": bookingID}
	if availableOnly {
		elem["available"] = true
	}
	or := make([]bson.M, 0, len(models.AllWeekdays))
	for _, day := range models.AllWeekdays {
		or = append(or, bson.M{"timeSlots." + string(day): bson.M{"$elemMatch": elem}})
	}
	return bson.M{"$or": or}
}

// GetBySlotBookingID finds the session and weekday owning the given slot.
func (r *MongoSessionRepo) GetBySlotBookingID(ctx context.Context, bookingID string) (*models.MentorSession, models.Weekday, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var session models.MentorSession
	if err := r.sessionColl.FindOne(ctx, slotFilter(bookingID, false)).Decode(&session); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("failed to look up slot %s: %w", bookingID, err)
	}

	for day, slots := range session.TimeSlots {
		for _, slot := range slots {
			if slot.BookingID == bookingID {
				return &session, day, nil
			}
		}
	}
	// Matched by filter but not found in the decoded document; treat as missing.
	return nil, "", nil
}

// CommitSlot performs the compare-and-set commit: within one Mongo
// transaction it flips the slot's available flag to false, guarded by a
// filter requiring available == true, and inserts the booking record. When
// the guarded update matches no document another commit won the race and
// ErrSlotUnavailable is returned.
func (r *MongoSessionRepo) CommitSlot(ctx context.Context, sessionID string, day models.Weekday, booking *models.Booking) error {
	client := r.sessionColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	slotPath := "timeSlots." + string(day)
	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{
			"id": sessionID,
			slotPath: bson.M{
				"$elemMatch": bson.M{
					"bookingId": booking.BookingID,
					"available": true,
				},
			},
		}
		update := bson.M{
			"$set": bson.M{
				slotPath + ".$.available": false,
				"updated_at":              time.Now(),
			},
		}

		res, err := r.sessionColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("failed to flip slot availability: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrSlotUnavailable
		}

		if _, err := r.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}
