package mocks

import (
	"github.com/Biffle-Ltd/biffle-chat-web/domain"
)

// MockPaymentGateway implements domain.PaymentGateway interface for testing
type MockPaymentGateway struct {
	BuildOrderFunc func(session *domain.Session, breakdown *domain.PriceBreakdown, method domain.PaymentMethod) (*domain.GatewayOrder, error)
}

// NewMockPaymentGateway creates a new MockPaymentGateway with default behaviors
func NewMockPaymentGateway() *MockPaymentGateway {
	return &MockPaymentGateway{}
}

// BuildOrder builds a gateway handoff order
func (m *MockPaymentGateway) BuildOrder(session *domain.Session, breakdown *domain.PriceBreakdown, method domain.PaymentMethod) (*domain.GatewayOrder, error) {
	if m.BuildOrderFunc != nil {
		return m.BuildOrderFunc(session, breakdown, method)
	}
	return &domain.GatewayOrder{
		TxnID:     "mock_txn_id",
		Amount:    breakdown.Total,
		ActionURL: "https://pay.example.com/_payment",
		Params:    map[string]string{"txnid": "mock_txn_id"},
	}, nil
}

// Ensure MockPaymentGateway implements the interface
var _ domain.PaymentGateway = (*MockPaymentGateway)(nil)
