package mocks

import (
	"context"
	"time"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
)

// MockReconcileService implements domain.ReconcileService interface for testing
type MockReconcileService struct {
	ReconcileFunc func(ctx context.Context, sessionID string, params map[string]string) *domain.CallbackOutcome
}

// NewMockReconcileService creates a new MockReconcileService with default behaviors
func NewMockReconcileService() *MockReconcileService {
	return &MockReconcileService{}
}

// Reconcile resolves a payment-provider callback into a terminal outcome
func (m *MockReconcileService) Reconcile(ctx context.Context, sessionID string, params map[string]string) *domain.CallbackOutcome {
	if m.ReconcileFunc != nil {
		return m.ReconcileFunc(ctx, sessionID, params)
	}
	return &domain.CallbackOutcome{
		State:      domain.CallbackSuccess,
		Message:    "Payment successful! Coins have been added to your account.",
		Redirect:   domain.PageCoins,
		HardReload: true,
		Delay:      1500 * time.Millisecond,
	}
}

// Ensure MockReconcileService implements the interface
var _ domain.ReconcileService = (*MockReconcileService)(nil)
