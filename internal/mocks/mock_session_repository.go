package mocks

import (
	"context"
	"time"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
)

// MockSessionRepository implements domain.SessionRepository interface for testing
type MockSessionRepository struct {
	CreateFunc   func(ctx context.Context, session *domain.Session) error
	FindByIDFunc func(ctx context.Context, sessionID string) (*domain.Session, error)
	UpdateFunc   func(ctx context.Context, session *domain.Session) error
	DeleteFunc   func(ctx context.Context, sessionID string) error
}

// NewMockSessionRepository creates a new MockSessionRepository with default behaviors
func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{}
}

// Create stores a session
func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return nil
}

// FindByID retrieves a session by ID
func (m *MockSessionRepository) FindByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, sessionID)
	}
	// Default behavior: return a mock session
	return &domain.Session{
		ID:          sessionID,
		Token:       "mock_platform_token",
		UserID:      "user_1",
		Name:        "Test User",
		Phone:       "9876543210",
		Email:       "test@example.com",
		Role:        domain.RoleFan,
		CoinBalance: 100,
		CreatedAt:   time.Now(),
		ExpiresAt:   time.Now().Add(24 * time.Hour),
	}, nil
}

// Update persists changes to an existing session
func (m *MockSessionRepository) Update(ctx context.Context, session *domain.Session) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, session)
	}
	return nil
}

// Delete removes a session
func (m *MockSessionRepository) Delete(ctx context.Context, sessionID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, sessionID)
	}
	return nil
}

// Ensure MockSessionRepository implements the interface
var _ domain.SessionRepository = (*MockSessionRepository)(nil)
