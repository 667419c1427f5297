package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub/models"
	"mentorhub/services/scheduling"
)

// stubEngine returns canned results for the scheduling endpoints.
type stubEngine struct {
	view    *scheduling.SessionView
	booking *models.Booking
	err     error
}

func (s *stubEngine) SessionView(ctx context.Context, sessionID string, now time.Time) (*scheduling.SessionView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

func (s *stubEngine) CommitBooking(ctx context.Context, bookingID, menteeID string) (*models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.booking, nil
}

func setupRouter(engine scheduling.SchedulingEngine, authed bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	hb := &HandlerBundle{Engine: engine}

	r := gin.New()
	if authed {
		r.Use(func(c *gin.Context) {
			c.Set("userID", "mentee-1")
			c.Set("role", models.RoleMentee)
		})
	}
	r.GET("/api/session/:id", hb.GetSessionHandler)
	r.POST("/api/session/book", hb.BookSessionHandler)
	return r
}

func TestGetSessionHandlerOK(t *testing.T) {
	engine := &stubEngine{view: &scheduling.SessionView{
		Session:    &models.MentorSession{ID: "sess-1"},
		Projection: make([]models.ProjectedDay, 7),
	}}
	r := setupRouter(engine, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/session/sess-1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sess-1"`)
	assert.Contains(t, w.Body.String(), `"projection"`)
}

func TestGetSessionHandlerNotFound(t *testing.T) {
	engine := &stubEngine{err: &scheduling.NotFoundError{Resource: "session", ID: "ghost"}}
	r := setupRouter(engine, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/session/ghost", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookSessionHandlerCreated(t *testing.T) {
	engine := &stubEngine{booking: &models.Booking{BookingID: "slot-1", SessionID: "sess-1", MenteeID: "mentee-1"}}
	r := setupRouter(engine, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/session/book", strings.NewReader(`{"bookingId":"slot-1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"slot-1"`)
}

func TestBookSessionHandlerConflict(t *testing.T) {
	engine := &stubEngine{err: &scheduling.AlreadyBookedError{BookingID: "slot-1"}}
	r := setupRouter(engine, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/session/book", strings.NewReader(`{"bookingId":"slot-1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "no longer available")
}

func TestBookSessionHandlerUnknownSlot(t *testing.T) {
	engine := &stubEngine{err: &scheduling.NotFoundError{Resource: "slot", ID: "ghost"}}
	r := setupRouter(engine, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/session/book", strings.NewReader(`{"bookingId":"ghost"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookSessionHandlerRequiresAuth(t *testing.T) {
	r := setupRouter(&stubEngine{}, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/session/book", strings.NewReader(`{"bookingId":"slot-1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookSessionHandlerBadPayload(t *testing.T) {
	r := setupRouter(&stubEngine{}, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/session/book", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
