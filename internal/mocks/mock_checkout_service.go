package mocks

import (
	"context"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
)

// MockCheckoutService implements domain.CheckoutService interface for testing
type MockCheckoutService struct {
	PackagesFunc      func(ctx context.Context, token string) ([]domain.CoinPackage, error)
	SelectPackageFunc func(ctx context.Context, sessionID string, pkg *domain.CoinPackage) error
	SummaryFunc       func(ctx context.Context, sessionID string) (*domain.PriceBreakdown, error)
	ApplyCouponFunc   func(ctx context.Context, sessionID, code string) (*domain.PriceBreakdown, error)
	RemoveCouponFunc  func(ctx context.Context, sessionID string) (*domain.PriceBreakdown, error)
	GatewayFunc       func(ctx context.Context, session *domain.Session, method domain.PaymentMethod) (*domain.GatewayOrder, error)
	ClearFunc         func(ctx context.Context, sessionID string) error
}

// NewMockCheckoutService creates a new MockCheckoutService with default behaviors
func NewMockCheckoutService() *MockCheckoutService {
	return &MockCheckoutService{}
}

// Packages lists the purchasable coin packages
func (m *MockCheckoutService) Packages(ctx context.Context, token string) ([]domain.CoinPackage, error) {
	if m.PackagesFunc != nil {
		return m.PackagesFunc(ctx, token)
	}
	return []domain.CoinPackage{
		{ID: 1, Coins: 100, Price: 99, OriginalPrice: 120},
	}, nil
}

// SelectPackage records the chosen package for the session
func (m *MockCheckoutService) SelectPackage(ctx context.Context, sessionID string, pkg *domain.CoinPackage) error {
	if m.SelectPackageFunc != nil {
		return m.SelectPackageFunc(ctx, sessionID, pkg)
	}
	return nil
}

// Summary computes the price breakdown for the current selection
func (m *MockCheckoutService) Summary(ctx context.Context, sessionID string) (*domain.PriceBreakdown, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, sessionID)
	}
	return &domain.PriceBreakdown{
		Coins:           100,
		BasePrice:       120,
		DiscountedPrice: 99,
		Total:           99,
	}, nil
}

// ApplyCoupon applies a coupon to the current selection
func (m *MockCheckoutService) ApplyCoupon(ctx context.Context, sessionID, code string) (*domain.PriceBreakdown, error) {
	if m.ApplyCouponFunc != nil {
		return m.ApplyCouponFunc(ctx, sessionID, code)
	}
	return m.Summary(ctx, sessionID)
}

// RemoveCoupon clears any applied coupon
func (m *MockCheckoutService) RemoveCoupon(ctx context.Context, sessionID string) (*domain.PriceBreakdown, error) {
	if m.RemoveCouponFunc != nil {
		return m.RemoveCouponFunc(ctx, sessionID)
	}
	return m.Summary(ctx, sessionID)
}

// Gateway builds the payment-provider handoff for the current selection
func (m *MockCheckoutService) Gateway(ctx context.Context, session *domain.Session, method domain.PaymentMethod) (*domain.GatewayOrder, error) {
	if m.GatewayFunc != nil {
		return m.GatewayFunc(ctx, session, method)
	}
	return &domain.GatewayOrder{
		TxnID:     "mock_txn_id",
		Amount:    99,
		ActionURL: "https://pay.example.com/_payment",
		Params:    map[string]string{"txnid": "mock_txn_id"},
	}, nil
}

// Clear discards the checkout state for the session
func (m *MockCheckoutService) Clear(ctx context.Context, sessionID string) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, sessionID)
	}
	return nil
}

// Ensure MockCheckoutService implements the interface
var _ domain.CheckoutService = (*MockCheckoutService)(nil)
