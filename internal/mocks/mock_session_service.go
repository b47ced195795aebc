package mocks

import (
	"context"
	"time"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
)

// MockSessionService implements domain.SessionService interface for testing
type MockSessionService struct {
	RestoreFunc func(ctx context.Context, cookieToken string) (*domain.Session, error)
	LoginFunc   func(ctx context.Context, session *domain.Session) (*domain.AuthResult, error)
	LogoutFunc  func(ctx context.Context, sessionID string) error
}

// NewMockSessionService creates a new MockSessionService with default behaviors
func NewMockSessionService() *MockSessionService {
	return &MockSessionService{}
}

// Restore resolves a cookie token into a session
func (m *MockSessionService) Restore(ctx context.Context, cookieToken string) (*domain.Session, error) {
	if m.RestoreFunc != nil {
		return m.RestoreFunc(ctx, cookieToken)
	}
	// Default behavior: anonymous visitor
	return nil, domain.ErrSessionNotFound
}

// Login persists a session and issues its cookie token
func (m *MockSessionService) Login(ctx context.Context, session *domain.Session) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, session)
	}
	if session.ID == "" {
		session.ID = "mock_session_id"
	}
	session.CreatedAt = time.Now()
	session.ExpiresAt = time.Now().Add(24 * time.Hour)
	return &domain.AuthResult{Session: session, CookieToken: "mock_cookie_token"}, nil
}

// Logout clears a session and its checkout state
func (m *MockSessionService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	return nil
}

// Ensure MockSessionService implements the interface
var _ domain.SessionService = (*MockSessionService)(nil)
