package mocks

import (
	"context"
	"time"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RequestOTPFunc   func(ctx context.Context, countryCode, phone string) error
	LoginWithOTPFunc func(ctx context.Context, countryCode, phone, otp string) (*domain.AuthResult, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// RequestOTP asks the platform to send a login code
func (m *MockAuthService) RequestOTP(ctx context.Context, countryCode, phone string) error {
	if m.RequestOTPFunc != nil {
		return m.RequestOTPFunc(ctx, countryCode, phone)
	}
	return nil
}

// LoginWithOTP completes the OTP exchange and establishes a session
func (m *MockAuthService) LoginWithOTP(ctx context.Context, countryCode, phone, otp string) (*domain.AuthResult, error) {
	if m.LoginWithOTPFunc != nil {
		return m.LoginWithOTPFunc(ctx, countryCode, phone, otp)
	}
	// Default behavior: return successful auth result
	return &domain.AuthResult{
		Session: &domain.Session{
			ID:          "mock_session_id",
			Token:       "mock_platform_token",
			UserID:      "user_1",
			Name:        "Test User",
			Phone:       countryCode + phone,
			Role:        domain.RoleFan,
			CoinBalance: 100,
			CreatedAt:   time.Now(),
			ExpiresAt:   time.Now().Add(24 * time.Hour),
		},
		CookieToken: "mock_cookie_token",
	}, nil
}

// Ensure MockAuthService implements the interface
var _ domain.AuthService = (*MockAuthService)(nil)
