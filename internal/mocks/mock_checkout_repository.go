package mocks

import (
	"context"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
)

// MockCheckoutRepository implements domain.CheckoutRepository interface for testing
type MockCheckoutRepository struct {
	SaveFunc   func(ctx context.Context, sessionID string, checkout *domain.Checkout) error
	FindFunc   func(ctx context.Context, sessionID string) (*domain.Checkout, error)
	DeleteFunc func(ctx context.Context, sessionID string) error
}

// NewMockCheckoutRepository creates a new MockCheckoutRepository with default behaviors
func NewMockCheckoutRepository() *MockCheckoutRepository {
	return &MockCheckoutRepository{}
}

// Save stores the checkout state for a session
func (m *MockCheckoutRepository) Save(ctx context.Context, sessionID string, checkout *domain.Checkout) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, sessionID, checkout)
	}
	return nil
}

// Find retrieves the checkout state for a session
func (m *MockCheckoutRepository) Find(ctx context.Context, sessionID string) (*domain.Checkout, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, sessionID)
	}
	// Default behavior: empty checkout, same as a fresh session
	return &domain.Checkout{}, nil
}

// Delete removes the checkout state for a session
func (m *MockCheckoutRepository) Delete(ctx context.Context, sessionID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, sessionID)
	}
	return nil
}

// Ensure MockCheckoutRepository implements the interface
var _ domain.CheckoutRepository = (*MockCheckoutRepository)(nil)
