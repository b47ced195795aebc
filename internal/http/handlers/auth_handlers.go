package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
	"github.com/Biffle-Ltd/biffle-chat-web/internal/http/middleware"
)

// AuthHandlers handles the OTP login flow and session lifecycle endpoints.
type AuthHandlers struct {
	authSvc    domain.AuthService
	sessionSvc domain.SessionService
	cookieName string
	cookieTTL  time.Duration
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, sessionSvc domain.SessionService, cookieName string, cookieTTL time.Duration) *AuthHandlers {
	return &AuthHandlers{
		authSvc:    authSvc,
		sessionSvc: sessionSvc,
		cookieName: cookieName,
		cookieTTL:  cookieTTL,
	}
}

// OTPRequest represents an OTP delivery request
type OTPRequest struct {
	CountryCode string `json:"country_code" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// LoginRequest represents an OTP login request
type LoginRequest struct {
	CountryCode string `json:"country_code" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	OTP         string `json:"otp" binding:"required"`
}

// RequestOTP handles OTP delivery requests
func (h *AuthHandlers) RequestOTP(c *gin.Context) {
	var req OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authSvc.RequestOTP(c.Request.Context(), req.CountryCode, req.PhoneNumber); err != nil {
		respondAuthError(c, err, "Failed to send OTP")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "OTP sent successfully",
		},
	})
}

// Login handles OTP verification and session creation
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.LoginWithOTP(c.Request.Context(), req.CountryCode, req.PhoneNumber, req.OTP)
	if err != nil {
		respondAuthError(c, err, "Login failed")
		return
	}

	session := result.Session
	c.SetCookie(h.cookieName, result.CookieToken, int(h.cookieTTL.Seconds()), "/", "", false, true)

	log.Printf("LOGIN_OK: user_id=%s role=%s timestamp=%s",
		session.UserID, session.Role, time.Now().UTC().Format(time.RFC3339))

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"user": gin.H{
				"id":           session.UserID,
				"name":         session.Name,
				"phone":        session.Phone,
				"email":        session.Email,
				"role":         session.Role,
				"is_new_user":  session.IsNewUser,
				"coin_balance": session.CoinBalance,
			},
			"redirect": domain.PageCoins.Path(),
		},
	})
}

// Me returns the restored session's profile (requires authentication)
func (h *AuthHandlers) Me(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":           session.UserID,
			"name":         session.Name,
			"phone":        session.Phone,
			"email":        session.Email,
			"role":         session.Role,
			"is_new_user":  session.IsNewUser,
			"coin_balance": session.CoinBalance,
		},
	})
}

// Logout destroys the session, its purchase-flow state and the cookie
func (h *AuthHandlers) Logout(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.sessionSvc.Logout(c.Request.Context(), session.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}

	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message":  "Logged out successfully",
			"redirect": domain.PageHome.Path(),
		},
	})
}

// respondAuthError maps auth-flow errors onto HTTP responses, preferring
// the platform's own message for server-reported business errors.
func respondAuthError(c *gin.Context, err error, fallback string) {
	var perr *domain.PlatformError
	switch {
	case errors.Is(err, domain.ErrPhoneInvalid), errors.Is(err, domain.ErrOTPInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrLoginRejected):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid OTP code"})
	case errors.As(err, &perr):
		status := perr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		message := perr.Message
		if message == "" {
			message = fallback
		}
		c.JSON(status, gin.H{"error": message})
	case errors.Is(err, domain.ErrPlatformUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Network error, check your connection"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
