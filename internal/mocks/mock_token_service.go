package mocks

import (
	"time"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateSessionTokenFunc func(sessionID string, role string) (string, error)
	ValidateSessionTokenFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// GenerateSessionToken issues a signed cookie token for a session
func (m *MockTokenService) GenerateSessionToken(sessionID string, role string) (string, error) {
	if m.GenerateSessionTokenFunc != nil {
		return m.GenerateSessionTokenFunc(sessionID, role)
	}
	return "mock_cookie_token", nil
}

// ValidateSessionToken validates a cookie token and returns its claims
func (m *MockTokenService) ValidateSessionToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateSessionTokenFunc != nil {
		return m.ValidateSessionTokenFunc(token)
	}
	// Default behavior: return valid claims
	now := time.Now()
	return &domain.TokenClaims{
		SessionID: "mock_session_id",
		Role:      string(domain.RoleFan),
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}, nil
}

// Ensure MockTokenService implements the interface
var _ domain.TokenService = (*MockTokenService)(nil)
