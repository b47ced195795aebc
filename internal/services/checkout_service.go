package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
)

// couponTable is the fixed set of recognized coupon codes and their
// percentage discounts, applied to the discounted package price.
var couponTable = map[string]int{
	"FIRST10": 10,
}

// CheckoutServiceImpl implements domain.CheckoutService, the
// selection -> summary -> gateway purchase state machine. Entry into
// summary or gateway with no selection yields ErrNoPackageSelected, which
// callers translate into a redirect back to selection.
type CheckoutServiceImpl struct {
	checkoutRepo domain.CheckoutRepository
	platform     domain.PlatformClient
	gateway      domain.PaymentGateway
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	checkoutRepo domain.CheckoutRepository,
	platform domain.PlatformClient,
	gateway domain.PaymentGateway,
) domain.CheckoutService {
	return &CheckoutServiceImpl{
		checkoutRepo: checkoutRepo,
		platform:     platform,
		gateway:      gateway,
	}
}

// Packages implements domain.CheckoutService
func (s *CheckoutServiceImpl) Packages(ctx context.Context, token string) ([]domain.CoinPackage, error) {
	return s.platform.CoinPacks(ctx, token)
}

// SelectPackage implements domain.CheckoutService. An already-applied
// coupon survives re-selection; it is cleared only by removal, completion
// or logout.
func (s *CheckoutServiceImpl) SelectPackage(ctx context.Context, sessionID string, pkg *domain.CoinPackage) error {
	if pkg == nil || pkg.ID <= 0 || pkg.Coins <= 0 || pkg.Price <= 0 {
		return domain.ErrPackageInvalid
	}
	if pkg.OriginalPrice < pkg.Price {
		pkg.OriginalPrice = pkg.Price
	}

	checkout, err := s.checkoutRepo.Find(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to load checkout state: %w", err)
	}

	checkout.Package = pkg
	return s.checkoutRepo.Save(ctx, sessionID, checkout)
}

// Summary implements domain.CheckoutService
func (s *CheckoutServiceImpl) Summary(ctx context.Context, sessionID string) (*domain.PriceBreakdown, error) {
	checkout, err := s.guarded(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return breakdownFor(checkout), nil
}

// ApplyCoupon implements domain.CheckoutService. Unknown codes are rejected
// without touching stored state; re-applying the same code is a no-op and
// never compounds the discount.
func (s *CheckoutServiceImpl) ApplyCoupon(ctx context.Context, sessionID, code string) (*domain.PriceBreakdown, error) {
	checkout, err := s.guarded(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	normalized := strings.ToUpper(strings.TrimSpace(code))
	if _, ok := couponTable[normalized]; !ok {
		return nil, domain.ErrCouponInvalid
	}

	if checkout.Coupon != normalized {
		checkout.Coupon = normalized
		if err := s.checkoutRepo.Save(ctx, sessionID, checkout); err != nil {
			return nil, fmt.Errorf("failed to save checkout state: %w", err)
		}
	}

	return breakdownFor(checkout), nil
}

// RemoveCoupon implements domain.CheckoutService
func (s *CheckoutServiceImpl) RemoveCoupon(ctx context.Context, sessionID string) (*domain.PriceBreakdown, error) {
	checkout, err := s.guarded(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if checkout.Coupon != "" {
		checkout.Coupon = ""
		if err := s.checkoutRepo.Save(ctx, sessionID, checkout); err != nil {
			return nil, fmt.Errorf("failed to save checkout state: %w", err)
		}
	}

	return breakdownFor(checkout), nil
}

// Gateway implements domain.CheckoutService: recomputes the final amount
// exactly as Summary does and builds the provider handoff.
func (s *CheckoutServiceImpl) Gateway(ctx context.Context, session *domain.Session, method domain.PaymentMethod) (*domain.GatewayOrder, error) {
	if !method.Valid() {
		return nil, domain.ErrMethodInvalid
	}

	checkout, err := s.guarded(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	return s.gateway.BuildOrder(session, breakdownFor(checkout), method)
}

// Clear implements domain.CheckoutService
func (s *CheckoutServiceImpl) Clear(ctx context.Context, sessionID string) error {
	return s.checkoutRepo.Delete(ctx, sessionID)
}

// guarded loads the checkout state and enforces the selection precondition.
func (s *CheckoutServiceImpl) guarded(ctx context.Context, sessionID string) (*domain.Checkout, error) {
	checkout, err := s.checkoutRepo.Find(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load checkout state: %w", err)
	}
	if checkout.Package == nil {
		return nil, domain.ErrNoPackageSelected
	}
	return checkout, nil
}

// breakdownFor decomposes the price for a selected package. Coupon discount
// truncates toward zero so totals reproduce exactly on recomputation.
func breakdownFor(checkout *domain.Checkout) *domain.PriceBreakdown {
	pkg := checkout.Package

	b := &domain.PriceBreakdown{
		Coins:            pkg.Coins,
		BasePrice:        pkg.OriginalPrice,
		DiscountedPrice:  pkg.Price,
		PlatformDiscount: pkg.OriginalPrice - pkg.Price,
		Coupon:           checkout.Coupon,
	}
	if pct, ok := couponTable[checkout.Coupon]; ok {
		b.CouponDiscount = pkg.Price * int64(pct) / 100
	}
	b.Total = pkg.Price - b.CouponDiscount
	return b
}
