package scheduling

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sessionRepo "mentorhub/database/repository/session"
	"mentorhub/models"
)

// fakeSessionRepo is an in-memory SessionRepository with the same
// compare-and-set commit semantics as the Mongo implementation.
type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*models.MentorSession
	bookings []models.Booking
}

func newFakeSessionRepo(sessions ...*models.MentorSession) *fakeSessionRepo {
	r := &fakeSessionRepo{sessions: make(map[string]*models.MentorSession)}
	for _, s := range sessions {
		r.sessions[s.ID] = s
	}
	return r
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *models.MentorSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, id string) (*models.MentorSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[id], nil
}

func (r *fakeSessionRepo) GetByMentorID(ctx context.Context, mentorID string) ([]models.MentorSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.MentorSession
	for _, s := range r.sessions {
		if s.MentorID == mentorID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) GetBySlotBookingID(ctx context.Context, bookingID string) (*models.MentorSession, models.Weekday, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		for day, slots := range s.TimeSlots {
			for _, slot := range slots {
				if slot.BookingID == bookingID {
					return s, day, nil
				}
			}
		}
	}
	return nil, "", nil
}

func (r *fakeSessionRepo) CommitSlot(ctx context.Context, sessionID string, day models.Weekday, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[sessionID]
	if !ok {
		return sessionRepo.ErrSlotUnavailable
	}
	for i, slot := range s.TimeSlots[day] {
		if slot.BookingID == booking.BookingID {
			if !slot.Available {
				return sessionRepo.ErrSlotUnavailable
			}
			s.TimeSlots[day][i].Available = false
			r.bookings = append(r.bookings, *booking)
			return nil
		}
	}
	return sessionRepo.ErrSlotUnavailable
}

func testSession() *models.MentorSession {
	return &models.MentorSession{
		ID:       "sess-1",
		MentorID: "mentor-1",
		Name:     "Mock interview",
		TimeSlots: models.WeeklySchedule{
			models.Monday: {
				{From: models.NewTimeOfDay(9, 0), To: models.NewTimeOfDay(10, 0), Available: true, BookingID: "slot-1"},
				{From: models.NewTimeOfDay(10, 0), To: models.NewTimeOfDay(11, 0), Available: true, BookingID: "slot-2"},
			},
		},
	}
}

func TestSessionViewProjectsSevenDays(t *testing.T) {
	engine := &DefaultSchedulingEngine{Repo: newFakeSessionRepo(testSession())}

	view, err := engine.SessionView(context.Background(), "sess-1", time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "sess-1", view.Session.ID)
	assert.Len(t, view.Projection, DefaultProjectionDays)
}

func TestSessionViewUnknownID(t *testing.T) {
	engine := &DefaultSchedulingEngine{Repo: newFakeSessionRepo()}

	_, err := engine.SessionView(context.Background(), "nope", time.Now())
	assert.True(t, IsNotFound(err))
}

func TestCommitBookingSuccess(t *testing.T) {
	repo := newFakeSessionRepo(testSession())
	engine := &DefaultSchedulingEngine{Repo: repo}

	booking, err := engine.CommitBooking(context.Background(), "slot-1", "mentee-1")
	require.NoError(t, err)
	assert.Equal(t, "slot-1", booking.BookingID)
	assert.Equal(t, "sess-1", booking.SessionID)
	assert.Equal(t, "mentor-1", booking.MentorID)
	assert.Equal(t, "mentee-1", booking.MenteeID)
	assert.Equal(t, models.Monday, booking.Day)
	assert.False(t, booking.CommittedAt.IsZero())

	// The slot is closed but still present.
	s, _ := repo.GetByID(context.Background(), "sess-1")
	require.Len(t, s.TimeSlots[models.Monday], 2)
	assert.False(t, s.TimeSlots[models.Monday][0].Available)
}

func TestCommitBookingUnknownSlot(t *testing.T) {
	engine := &DefaultSchedulingEngine{Repo: newFakeSessionRepo(testSession())}

	_, err := engine.CommitBooking(context.Background(), "ghost", "mentee-1")
	assert.True(t, IsNotFound(err))
	assert.False(t, IsConflict(err))
}

func TestCommitBookingRepeatConflicts(t *testing.T) {
	engine := &DefaultSchedulingEngine{Repo: newFakeSessionRepo(testSession())}

	_, err := engine.CommitBooking(context.Background(), "slot-1", "mentee-1")
	require.NoError(t, err)

	_, err = engine.CommitBooking(context.Background(), "slot-1", "mentee-2")
	assert.True(t, IsConflict(err))
	assert.False(t, IsNotFound(err))
}

func TestCommitBookingConcurrentSingleWinner(t *testing.T) {
	repo := newFakeSessionRepo(testSession())
	engine := &DefaultSchedulingEngine{Repo: repo}

	const contenders = 16
	results := make(chan error, contenders)
	var start sync.WaitGroup
	start.Add(1)

	for i := 0; i < contenders; i++ {
		go func() {
			start.Wait()
			_, err := engine.CommitBooking(context.Background(), "slot-2", "mentee")
			results <- err
		}()
	}
	start.Done()

	var wins, conflicts int
	for i := 0; i < contenders; i++ {
		err := <-results
		switch {
		case err == nil:
			wins++
		case IsConflict(err):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, wins, "exactly one commit must win")
	assert.Equal(t, contenders-1, conflicts)
	assert.Len(t, repo.bookings, 1)
}
