package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
)

// CreatorHandlers exposes creator-application onboarding.
type CreatorHandlers struct {
	creatorSvc domain.CreatorService
}

// NewCreatorHandlers creates new creator onboarding handlers
func NewCreatorHandlers(creatorSvc domain.CreatorService) *CreatorHandlers {
	return &CreatorHandlers{creatorSvc: creatorSvc}
}

// UploadURLRequest represents a presigned-upload request
type UploadURLRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	IncludeVideo bool   `json:"include_video"`
}

// GenerateUploadURLs requests presigned upload targets for the applicant's
// assets. A duplicate applicant surfaces the platform's message verbatim.
func (h *CreatorHandlers) GenerateUploadURLs(c *gin.Context) {
	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	targets, err := h.creatorSvc.GenerateUploadURLs(c.Request.Context(), req.Email, req.Phone, req.IncludeVideo)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrApplicantExists):
			c.JSON(http.StatusConflict, gin.H{"error": domain.ErrApplicantExists.Error()})
		case errors.Is(err, domain.ErrApplicationIncomplete):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Registration form is incomplete"})
		default:
			respondAuthError(c, err, "Failed to generate upload URLs")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": targets})
}

// SubmitApplication submits the completed application with uploaded asset
// keys
func (h *CreatorHandlers) SubmitApplication(c *gin.Context) {
	var app domain.CreatorApplication
	if err := c.ShouldBindJSON(&app); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.creatorSvc.SubmitApplication(c.Request.Context(), &app); err != nil {
		switch {
		case errors.Is(err, domain.ErrApplicationIncomplete):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Registration form is incomplete"})
		default:
			respondAuthError(c, err, "Failed to submit application")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"message": "Application submitted successfully",
		},
	})
}
