package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"mentorhub/models"
	"mentorhub/services/mentor"
	"mentorhub/services/scheduling"
)

// saveUpload writes one multipart file to a temp path and returns it.
func saveUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	dst := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", fmt.Errorf("failed to save upload %s: %w", file.Filename, err)
	}
	return dst, nil
}

// SubmitVerificationHandler accepts the mentor's credential paperwork as a
// multipart form with three files plus supporting fields.
func (hb *HandlerBundle) SubmitVerificationHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sub := mentor.VerificationSubmission{
		WorkEmail:        c.PostForm("workEmail"),
		LinkedinProfile:  c.PostForm("linkedinProfile"),
		AdditionalInfo:   c.PostForm("additionalInfo"),
		GovernmentIDType: c.PostForm("governmentIdType"),
	}

	fields := []struct {
		form string
		path *string
		name *string
	}{
		{"governmentId", &sub.GovernmentIDPath, &sub.GovernmentIDName},
		{"degreeCertificate", &sub.DegreeCertPath, &sub.DegreeCertName},
		{"additionalFile", &sub.AdditionalFilePath, &sub.AdditionalFileName},
	}
	var tempPaths []string
	defer func() {
		for _, p := range tempPaths {
			os.Remove(p)
		}
	}()
	for _, f := range fields {
		file, err := c.FormFile(f.form)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Missing file %q", f.form)})
			return
		}
		path, err := saveUpload(c, file)
		if err != nil {
			logger.Error("Failed to buffer upload", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed, please try again"})
			return
		}
		tempPaths = append(tempPaths, path)
		*f.path = path
		*f.name = file.Filename
	}

	verification, err := hb.MentorSvc.SubmitVerification(c.Request.Context(), userID.(string), sub)
	if err != nil {
		if scheduling.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Verification submission failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, verification)
}

// GetVerificationHandler returns the authenticated mentor's submission.
func (hb *HandlerBundle) GetVerificationHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	verification, err := hb.MentorSvc.GetVerification(c.Request.Context(), userID.(string))
	if err != nil {
		logger.Error("Failed to fetch verification", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch verification"})
		return
	}
	if verification == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No verification submission on file"})
		return
	}

	c.JSON(http.StatusOK, verification)
}

// DocumentURLHandler resolves a short-lived signed download URL for one
// uploaded verification document. Admins may fetch any document; mentors only
// their own.
func (hb *HandlerBundle) DocumentURLHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	role, _ := c.Get("role")

	documentID := c.Param("documentId")
	url, ownerID, err := hb.MentorSvc.DocumentURL(c.Request.Context(), documentID)
	if err != nil {
		logger.Error("Failed to resolve document URL", zap.String("documentID", documentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve document"})
		return
	}
	if url == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	if role != models.RoleAdmin && ownerID != userID.(string) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// ApproveMentorHandler marks a mentor's credentials as verified. Admin only.
func (hb *HandlerBundle) ApproveMentorHandler(c *gin.Context) {
	logger := getLogger(c)

	mentorID := c.Param("id")
	if err := hb.MentorSvc.Approve(c.Request.Context(), mentorID); err != nil {
		if scheduling.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Mentor approval failed", zap.String("mentorID", mentorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Approval failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mentor credentials approved"})
}
