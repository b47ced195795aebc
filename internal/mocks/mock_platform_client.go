package mocks

import (
	"context"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
)

// MockPlatformClient implements domain.PlatformClient interface for testing
type MockPlatformClient struct {
	RequestOTPFunc         func(ctx context.Context, countryCode, phone string) error
	LoginWithOTPFunc       func(ctx context.Context, countryCode, phone, otp string) (string, error)
	UserDetailsFunc        func(ctx context.Context, token string) (*domain.UserProfile, error)
	WalletBalanceFunc      func(ctx context.Context, token string) (int64, error)
	CoinPacksFunc          func(ctx context.Context, token string) ([]domain.CoinPackage, error)
	VerifyPaymentFunc      func(ctx context.Context, token string, params map[string]string) error
	GenerateUploadURLsFunc func(ctx context.Context, email, phone string, includeVideo bool) (*domain.UploadTargets, error)
	CreateApplicationFunc  func(ctx context.Context, app *domain.CreatorApplication) error
}

// NewMockPlatformClient creates a new MockPlatformClient with default behaviors
func NewMockPlatformClient() *MockPlatformClient {
	return &MockPlatformClient{}
}

// RequestOTP asks the platform to send a login code
func (m *MockPlatformClient) RequestOTP(ctx context.Context, countryCode, phone string) error {
	if m.RequestOTPFunc != nil {
		return m.RequestOTPFunc(ctx, countryCode, phone)
	}
	return nil
}

// LoginWithOTP exchanges a code for a platform bearer token
func (m *MockPlatformClient) LoginWithOTP(ctx context.Context, countryCode, phone, otp string) (string, error) {
	if m.LoginWithOTPFunc != nil {
		return m.LoginWithOTPFunc(ctx, countryCode, phone, otp)
	}
	return "mock_platform_token", nil
}

// UserDetails fetches the user profile for a token
func (m *MockPlatformClient) UserDetails(ctx context.Context, token string) (*domain.UserProfile, error) {
	if m.UserDetailsFunc != nil {
		return m.UserDetailsFunc(ctx, token)
	}
	return &domain.UserProfile{
		UserID: "user_1",
		Name:   "Test User",
		Phone:  "9876543210",
		Email:  "test@example.com",
		Role:   domain.RoleFan,
	}, nil
}

// WalletBalance fetches the current coin balance for a token
func (m *MockPlatformClient) WalletBalance(ctx context.Context, token string) (int64, error) {
	if m.WalletBalanceFunc != nil {
		return m.WalletBalanceFunc(ctx, token)
	}
	return 100, nil
}

// CoinPacks fetches the purchasable coin packages
func (m *MockPlatformClient) CoinPacks(ctx context.Context, token string) ([]domain.CoinPackage, error) {
	if m.CoinPacksFunc != nil {
		return m.CoinPacksFunc(ctx, token)
	}
	return []domain.CoinPackage{
		{ID: 1, Coins: 100, Price: 99, OriginalPrice: 120},
		{ID: 2, Coins: 550, Price: 250, OriginalPrice: 300},
	}, nil
}

// VerifyPayment asks the platform to confirm a gateway transaction
func (m *MockPlatformClient) VerifyPayment(ctx context.Context, token string, params map[string]string) error {
	if m.VerifyPaymentFunc != nil {
		return m.VerifyPaymentFunc(ctx, token, params)
	}
	return nil
}

// GenerateUploadURLs requests presigned upload destinations for creator assets
func (m *MockPlatformClient) GenerateUploadURLs(ctx context.Context, email, phone string, includeVideo bool) (*domain.UploadTargets, error) {
	if m.GenerateUploadURLsFunc != nil {
		return m.GenerateUploadURLsFunc(ctx, email, phone, includeVideo)
	}
	targets := &domain.UploadTargets{
		Images: []domain.UploadTarget{
			{Key: "img_1", URL: "https://uploads.example.com/img_1"},
			{Key: "img_2", URL: "https://uploads.example.com/img_2"},
			{Key: "img_3", URL: "https://uploads.example.com/img_3"},
		},
	}
	if includeVideo {
		targets.Video = &domain.UploadTarget{Key: "vid_1", URL: "https://uploads.example.com/vid_1"}
	}
	return targets, nil
}

// CreateApplication submits a creator application
func (m *MockPlatformClient) CreateApplication(ctx context.Context, app *domain.CreatorApplication) error {
	if m.CreateApplicationFunc != nil {
		return m.CreateApplicationFunc(ctx, app)
	}
	return nil
}

// Ensure MockPlatformClient implements the interface
var _ domain.PlatformClient = (*MockPlatformClient)(nil)
