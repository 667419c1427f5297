package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mentorhub/services/scheduling"
)

func pagingParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}

// AskQuestionHandler posts a new community question.
func (hb *HandlerBundle) AskQuestionHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Question string `json:"question" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	question, err := hb.CommunitySvc.AskQuestion(c.Request.Context(), userID.(string), req.Question)
	if err != nil {
		logger.Error("Failed to post question", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, question)
}

// GetQuestionHandler returns one question with its author info.
func (hb *HandlerBundle) GetQuestionHandler(c *gin.Context) {
	logger := getLogger(c)

	questionID := c.Param("id")
	question, err := hb.CommunitySvc.GetQuestion(c.Request.Context(), questionID)
	if err != nil {
		if scheduling.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to fetch question", zap.String("questionID", questionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch question"})
		return
	}

	c.JSON(http.StatusOK, question)
}

// ListQuestionsHandler returns one page of questions, newest first.
func (hb *HandlerBundle) ListQuestionsHandler(c *gin.Context) {
	logger := getLogger(c)

	page, limit := pagingParams(c)
	result, err := hb.CommunitySvc.ListQuestions(c.Request.Context(), page, limit)
	if err != nil {
		logger.Error("Failed to list questions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list questions"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// AnswerQuestionHandler posts a reply to an existing question.
func (hb *HandlerBundle) AnswerQuestionHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	questionID := c.Param("id")
	var req struct {
		Answer string `json:"answer" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	answer, err := hb.CommunitySvc.AnswerQuestion(c.Request.Context(), userID.(string), questionID, req.Answer)
	if err != nil {
		if scheduling.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to post answer", zap.String("questionID", questionID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, answer)
}

// ListAnswersHandler returns one page of a question's answers, oldest first.
func (hb *HandlerBundle) ListAnswersHandler(c *gin.Context) {
	logger := getLogger(c)

	questionID := c.Param("id")
	page, limit := pagingParams(c)
	result, err := hb.CommunitySvc.ListAnswers(c.Request.Context(), questionID, page, limit)
	if err != nil {
		if scheduling.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list answers", zap.String("questionID", questionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list answers"})
		return
	}

	c.JSON(http.StatusOK, result)
}
