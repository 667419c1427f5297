package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mentorhub/models"
	"mentorhub/services/scheduling"
)

// GetSessionHandler returns a session together with its projected next-7-days
// booking window.
func (hb *HandlerBundle) GetSessionHandler(c *gin.Context) {
	logger := getLogger(c)

	sessionID := c.Param("id")
	view, err := hb.Engine.SessionView(c.Request.Context(), sessionID, time.Now())
	if err != nil {
		if scheduling.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to load session view", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// BookSessionHandler commits a booking on the selected slot. Of N concurrent
// requests for the same slot exactly one gets 201; the rest get 409.
func (hb *HandlerBundle) BookSessionHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		BookingID string `json:"bookingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	booking, err := hb.Engine.CommitBooking(c.Request.Context(), req.BookingID, userID.(string))
	if err != nil {
		switch {
		case scheduling.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case scheduling.IsConflict(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Booking commit failed", zap.String("bookingID", req.BookingID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Booking failed, please try again"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// CreateSessionHandler lets an authenticated mentor publish a new session
// offering.
func (hb *HandlerBundle) CreateSessionHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session, err := hb.MentorSvc.CreateSession(c.Request.Context(), userID.(string), req)
	if err != nil {
		var (
			invalid  *scheduling.InvalidRangeError
			overlap  *scheduling.OverlapError
			unsorted *scheduling.UnsortedError
		)
		if errors.As(err, &invalid) || errors.As(err, &overlap) || errors.As(err, &unsorted) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create session", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, session)
}

// ListMentorSessionsHandler returns all session offerings of one mentor.
func (hb *HandlerBundle) ListMentorSessionsHandler(c *gin.Context) {
	logger := getLogger(c)

	mentorID := c.Param("mentorId")
	sessions, err := hb.MentorSvc.ListSessions(c.Request.Context(), mentorID)
	if err != nil {
		logger.Error("Failed to list mentor sessions", zap.String("mentorID", mentorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sessions"})
		return
	}
	if sessions == nil {
		sessions = []models.MentorSession{}
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}
