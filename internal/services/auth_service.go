package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
)

// AuthServiceImpl implements domain.AuthService: the phone-OTP login flow
// against the upstream platform. OTP generation and SMS delivery live on
// the platform side; this service only relays and validates input shape
// before any network call is made.
type AuthServiceImpl struct {
	platform   domain.PlatformClient
	sessionSvc domain.SessionService
}

// NewAuthService creates a new auth service
func NewAuthService(platform domain.PlatformClient, sessionSvc domain.SessionService) domain.AuthService {
	return &AuthServiceImpl{
		platform:   platform,
		sessionSvc: sessionSvc,
	}
}

// RequestOTP implements domain.AuthService
func (s *AuthServiceImpl) RequestOTP(ctx context.Context, countryCode, phone string) error {
	if !allDigits(phone) || len(phone) != 10 {
		return domain.ErrPhoneInvalid
	}
	return s.platform.RequestOTP(ctx, countryCode, phone)
}

// LoginWithOTP implements domain.AuthService: exchanges the OTP for a
// platform token, assembles the full session from profile and wallet, and
// opens the local session.
func (s *AuthServiceImpl) LoginWithOTP(ctx context.Context, countryCode, phone, otp string) (*domain.AuthResult, error) {
	if !allDigits(phone) || len(phone) != 10 {
		return nil, domain.ErrPhoneInvalid
	}
	if !allDigits(otp) || len(otp) != 6 {
		return nil, domain.ErrOTPInvalid
	}

	token, err := s.platform.LoginWithOTP(ctx, countryCode, phone, otp)
	if err != nil {
		return nil, err
	}

	profile, err := s.platform.UserDetails(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user details: %w", err)
	}

	// Wallet fetch is best-effort on login; the coins page refreshes it.
	balance, err := s.platform.WalletBalance(ctx, token)
	if err != nil {
		log.Printf("WALLET_FETCH_FAILED: phone=%s error=%v timestamp=%s",
			phone, err, time.Now().UTC().Format(time.RFC3339))
		balance = 0
	}

	role := profile.Role
	if !role.Valid() {
		role = domain.RoleFan
	}

	sessionPhone := profile.Phone
	if sessionPhone == "" {
		sessionPhone = countryCode + phone
	}

	session := &domain.Session{
		Token:       token,
		UserID:      profile.UserID,
		Name:        profile.Name,
		Phone:       sessionPhone,
		Email:       profile.Email,
		Role:        role,
		IsNewUser:   profile.IsNewUser,
		CoinBalance: balance,
	}

	return s.sessionSvc.Login(ctx, session)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
