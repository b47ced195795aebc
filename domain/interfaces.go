package domain

import "context"

// SessionRepository defines durable session storage. The token and the
// profile live in one record so they are always cleared together.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Update(ctx context.Context, session *Session) error
	Delete(ctx context.Context, sessionID string) error
}

// CheckoutRepository defines purchase-flow state storage, keyed by session.
type CheckoutRepository interface {
	Save(ctx context.Context, sessionID string, checkout *Checkout) error
	Find(ctx context.Context, sessionID string) (*Checkout, error)
	Delete(ctx context.Context, sessionID string) error
}

// TokenService issues and validates the signed session-cookie token.
type TokenService interface {
	GenerateSessionToken(sessionID string, role string) (string, error)
	ValidateSessionToken(token string) (*TokenClaims, error)
}

// PlatformClient talks to the upstream platform API. It is the only
// component that holds upstream request/response shapes.
type PlatformClient interface {
	RequestOTP(ctx context.Context, countryCode, phone string) error
	LoginWithOTP(ctx context.Context, countryCode, phone, otp string) (token string, err error)
	UserDetails(ctx context.Context, token string) (*UserProfile, error)
	WalletBalance(ctx context.Context, token string) (int64, error)
	CoinPacks(ctx context.Context, token string) ([]CoinPackage, error)
	VerifyPayment(ctx context.Context, token string, params map[string]string) error
	GenerateUploadURLs(ctx context.Context, email, phone string, includeVideo bool) (*UploadTargets, error)
	CreateApplication(ctx context.Context, app *CreatorApplication) error
}

// PaymentGateway builds the handoff order for the external payment
// provider.
type PaymentGateway interface {
	BuildOrder(session *Session, breakdown *PriceBreakdown, method PaymentMethod) (*GatewayOrder, error)
}

// SessionService owns the current-session lifecycle.
type SessionService interface {
	Restore(ctx context.Context, cookieToken string) (*Session, error)
	Login(ctx context.Context, session *Session) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
}

// AuthService drives the phone-OTP login flow against the platform.
type AuthService interface {
	RequestOTP(ctx context.Context, countryCode, phone string) error
	LoginWithOTP(ctx context.Context, countryCode, phone, otp string) (*AuthResult, error)
}

// CheckoutService is the selection -> summary -> gateway state machine.
type CheckoutService interface {
	Packages(ctx context.Context, token string) ([]CoinPackage, error)
	SelectPackage(ctx context.Context, sessionID string, pkg *CoinPackage) error
	Summary(ctx context.Context, sessionID string) (*PriceBreakdown, error)
	ApplyCoupon(ctx context.Context, sessionID, code string) (*PriceBreakdown, error)
	RemoveCoupon(ctx context.Context, sessionID string) (*PriceBreakdown, error)
	Gateway(ctx context.Context, session *Session, method PaymentMethod) (*GatewayOrder, error)
	Clear(ctx context.Context, sessionID string) error
}

// ReconcileService handles the return leg from the payment provider.
type ReconcileService interface {
	Reconcile(ctx context.Context, sessionID string, params map[string]string) *CallbackOutcome
}

// CreatorService drives creator-application onboarding.
type CreatorService interface {
	GenerateUploadURLs(ctx context.Context, email, phone string, includeVideo bool) (*UploadTargets, error)
	SubmitApplication(ctx context.Context, app *CreatorApplication) error
}
