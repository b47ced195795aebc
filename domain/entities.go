package domain

import "time"

// Role identifies how a user participates on the platform
type Role string

const (
	RoleFan     Role = "fan"
	RoleCreator Role = "creator"
)

// Valid reports whether the role is one of the known variants.
func (r Role) Valid() bool {
	return r == RoleFan || r == RoleCreator
}

// Session represents the authenticated actor. A session is either fully
// populated or absent; partial sessions are never stored.
type Session struct {
	ID          string    `json:"id"`
	Token       string    `json:"token"` // upstream platform bearer token
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	IsNewUser   bool      `json:"is_new_user"`
	CoinBalance int64     `json:"coin_balance"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// CoinPackage represents a coin bundle offered for purchase.
type CoinPackage struct {
	ID            int64 `json:"id"`
	Coins         int64 `json:"coins"`
	Price         int64 `json:"price"`
	OriginalPrice int64 `json:"original_price"`
	Discount      int   `json:"discount"`
	IsTrialPack   bool  `json:"is_trial_pack"`
	IsBonusPack   bool  `json:"is_bonus_pack"`
}

// Checkout carries the purchase-flow state for one purchase attempt:
// the selected package and an optional applied coupon code.
type Checkout struct {
	Package *CoinPackage `json:"package,omitempty"`
	Coupon  string       `json:"coupon,omitempty"`
}

// PriceBreakdown is the summary-screen price decomposition. All discount
// math uses integer truncation so totals reproduce across recomputations.
type PriceBreakdown struct {
	Coins            int64  `json:"coins"`
	BasePrice        int64  `json:"base_price"`
	DiscountedPrice  int64  `json:"discounted_price"`
	PlatformDiscount int64  `json:"platform_discount"`
	Coupon           string `json:"coupon,omitempty"`
	CouponDiscount   int64  `json:"coupon_discount"`
	Total            int64  `json:"total"`
}

// PaymentMethod is the closed set of gateway payment options.
type PaymentMethod string

const (
	MethodUPI        PaymentMethod = "upi"
	MethodCard       PaymentMethod = "card"
	MethodNetBanking PaymentMethod = "netbanking"
	MethodWallet     PaymentMethod = "wallet"
)

// Valid reports whether the method is one of the supported options.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodUPI, MethodCard, MethodNetBanking, MethodWallet:
		return true
	}
	return false
}

// GatewayOrder is the handoff to the external payment provider: the browser
// submits a hidden form with these params to ActionURL.
type GatewayOrder struct {
	TxnID     string            `json:"txn_id"`
	Amount    int64             `json:"amount"`
	ActionURL string            `json:"action_url"`
	Params    map[string]string `json:"params"`
}

// CallbackState is the reconciler's terminal display state.
type CallbackState string

const (
	CallbackSuccess CallbackState = "success"
	CallbackFailed  CallbackState = "failed"
)

// CallbackOutcome describes what the callback page shows and where it sends
// the user next. HardReload forces a full navigation so balance-dependent
// views re-initialize from the refreshed session.
type CallbackOutcome struct {
	State      CallbackState
	Message    string
	Redirect   Page
	HardReload bool
	Delay      time.Duration
}

// UserProfile is the upstream user-details payload merged into a session.
type UserProfile struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Role      Role   `json:"user_type"`
	IsNewUser bool   `json:"is_new_user"`
}

// AuthResult represents a completed OTP login.
type AuthResult struct {
	Session     *Session
	CookieToken string
}

// CreatorApplication holds the onboarding form fields plus the storage keys
// of the uploaded assets.
type CreatorApplication struct {
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	CountryCode string   `json:"country_code"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Gender      string   `json:"gender"`
	IsAbove18   bool     `json:"is_above_18"`
	Agency      string   `json:"agency"`
	Bio         string   `json:"bio,omitempty"`
	ImageKeys   []string `json:"image_keys"`
	VideoKey    string   `json:"video_key,omitempty"`
}

// UploadTarget is one presigned upload destination returned by the platform.
type UploadTarget struct {
	Key    string            `json:"key"`
	URL    string            `json:"url"`
	Fields map[string]string `json:"fields,omitempty"`
}

// UploadTargets groups the per-asset presigned destinations for a creator
// application.
type UploadTargets struct {
	Images []UploadTarget `json:"images"`
	Video  *UploadTarget  `json:"video,omitempty"`
}

// TokenClaims are the session-cookie JWT claims.
type TokenClaims struct {
	SessionID string `json:"session_id"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
