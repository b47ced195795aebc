package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
	"github.com/Biffle-Ltd/biffle-chat-web/internal/mocks"
)

func storedSessionForReconcile() *domain.Session {
	return &domain.Session{
		ID:          "sess_1",
		Token:       "platform_token",
		UserID:      "user_1",
		Name:        "Test User",
		Role:        domain.RoleFan,
		CoinBalance: 100,
		CreatedAt:   time.Now(),
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

func TestReconcileServiceImpl_StatusOutcomes(t *testing.T) {
	tests := []struct {
		name             string
		status           string
		expectedState    domain.CallbackState
		expectedRedirect domain.Page
		expectedReload   bool
		expectedDelay    time.Duration
		expectClear      bool
	}{
		{
			name:             "success credits and hard-reloads to coins",
			status:           "success",
			expectedState:    domain.CallbackSuccess,
			expectedRedirect: domain.PageCoins,
			expectedReload:   true,
			expectedDelay:    1500 * time.Millisecond,
			expectClear:      true,
		},
		{
			name:             "uppercase success is recognized",
			status:           "SUCCESS",
			expectedState:    domain.CallbackSuccess,
			expectedRedirect: domain.PageCoins,
			expectedReload:   true,
			expectedDelay:    1500 * time.Millisecond,
			expectClear:      true,
		},
		{
			name:             "failure returns to summary for retry",
			status:           "failure",
			expectedState:    domain.CallbackFailed,
			expectedRedirect: domain.PagePaymentSummary,
			expectedDelay:    1500 * time.Millisecond,
		},
		{
			name:             "failed returns to summary for retry",
			status:           "failed",
			expectedState:    domain.CallbackFailed,
			expectedRedirect: domain.PagePaymentSummary,
			expectedDelay:    1500 * time.Millisecond,
		},
		{
			name:             "error returns to summary for retry",
			status:           "error",
			expectedState:    domain.CallbackFailed,
			expectedRedirect: domain.PagePaymentSummary,
			expectedDelay:    1500 * time.Millisecond,
		},
		{
			name:             "missing status treated as processed after verification",
			status:           "",
			expectedState:    domain.CallbackSuccess,
			expectedRedirect: domain.PageCoins,
			expectedReload:   true,
			expectedDelay:    1200 * time.Millisecond,
			expectClear:      true,
		},
		{
			name:             "unknown status treated as processed after verification",
			status:           "pending",
			expectedState:    domain.CallbackSuccess,
			expectedRedirect: domain.PageCoins,
			expectedReload:   true,
			expectedDelay:    1200 * time.Millisecond,
			expectClear:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionRepo := mocks.NewMockSessionRepository()
			sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
				return storedSessionForReconcile(), nil
			}
			checkoutRepo := mocks.NewMockCheckoutRepository()
			cleared := false
			checkoutRepo.DeleteFunc = func(ctx context.Context, sessionID string) error {
				cleared = true
				return nil
			}
			svc := NewReconcileService(sessionRepo, checkoutRepo, mocks.NewMockPlatformClient())

			params := map[string]string{"txnid": "bfl123"}
			if tt.status != "" {
				params["status"] = tt.status
			}

			outcome := svc.Reconcile(context.Background(), "sess_1", params)
			if outcome.State != tt.expectedState {
				t.Errorf("state = %q, want %q", outcome.State, tt.expectedState)
			}
			if outcome.Redirect != tt.expectedRedirect {
				t.Errorf("redirect = %q, want %q", outcome.Redirect, tt.expectedRedirect)
			}
			if outcome.HardReload != tt.expectedReload {
				t.Errorf("hard reload = %v, want %v", outcome.HardReload, tt.expectedReload)
			}
			if outcome.Delay != tt.expectedDelay {
				t.Errorf("delay = %v, want %v", outcome.Delay, tt.expectedDelay)
			}
			if cleared != tt.expectClear {
				t.Errorf("checkout cleared = %v, want %v", cleared, tt.expectClear)
			}
		})
	}
}

func TestReconcileServiceImpl_VerificationFailure(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepository()
	platform := mocks.NewMockPlatformClient()
	platform.VerifyPaymentFunc = func(ctx context.Context, token string, params map[string]string) error {
		return domain.ErrVerificationFailed
	}
	svc := NewReconcileService(sessionRepo, mocks.NewMockCheckoutRepository(), platform)

	outcome := svc.Reconcile(context.Background(), "sess_1", map[string]string{"status": "success"})
	if outcome.State != domain.CallbackFailed {
		t.Errorf("expected failed state on verification error, got %q", outcome.State)
	}
	if outcome.Redirect != domain.PagePaymentSummary {
		t.Errorf("expected redirect to payment summary, got %q", outcome.Redirect)
	}
}

func TestReconcileServiceImpl_RefreshFailure(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*mocks.MockPlatformClient)
	}{
		{
			name: "user details fetch fails",
			setup: func(p *mocks.MockPlatformClient) {
				p.UserDetailsFunc = func(ctx context.Context, token string) (*domain.UserProfile, error) {
					return nil, errors.New("upstream timeout")
				}
			},
		},
		{
			name: "wallet fetch fails",
			setup: func(p *mocks.MockPlatformClient) {
				p.WalletBalanceFunc = func(ctx context.Context, token string) (int64, error) {
					return 0, errors.New("upstream timeout")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionRepo := mocks.NewMockSessionRepository()
			sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
				return storedSessionForReconcile(), nil
			}
			platform := mocks.NewMockPlatformClient()
			tt.setup(platform)
			svc := NewReconcileService(sessionRepo, mocks.NewMockCheckoutRepository(), platform)

			outcome := svc.Reconcile(context.Background(), "sess_1", map[string]string{"status": "success"})
			if outcome.State != domain.CallbackFailed {
				t.Errorf("expected failed state when refresh fails, got %q", outcome.State)
			}
		})
	}
}

func TestReconcileServiceImpl_RefreshPreservesToken(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepository()
	sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
		return storedSessionForReconcile(), nil
	}
	var updated *domain.Session
	sessionRepo.UpdateFunc = func(ctx context.Context, session *domain.Session) error {
		updated = session
		return nil
	}
	platform := mocks.NewMockPlatformClient()
	platform.WalletBalanceFunc = func(ctx context.Context, token string) (int64, error) {
		if token != "platform_token" {
			t.Errorf("refresh used wrong token %q", token)
		}
		return 650, nil
	}
	svc := NewReconcileService(sessionRepo, mocks.NewMockCheckoutRepository(), platform)

	outcome := svc.Reconcile(context.Background(), "sess_1", map[string]string{"status": "success"})
	if outcome.State != domain.CallbackSuccess {
		t.Fatalf("expected success outcome, got %q", outcome.State)
	}
	if updated == nil {
		t.Fatal("expected session update after refresh")
	}
	if updated.Token != "platform_token" {
		t.Errorf("refresh dropped the platform token: %q", updated.Token)
	}
	if updated.CoinBalance != 650 {
		t.Errorf("expected refreshed balance 650, got %d", updated.CoinBalance)
	}
}

func TestReconcileServiceImpl_AnonymousCallback(t *testing.T) {
	// The provider can return without a resolvable session (cookies dropped
	// on cross-site POST). Verification still runs and the outcome renders.
	sessionRepo := mocks.NewMockSessionRepository()
	sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
		t.Fatal("session lookup must be skipped for an empty session id")
		return nil, nil
	}
	verified := false
	platform := mocks.NewMockPlatformClient()
	platform.VerifyPaymentFunc = func(ctx context.Context, token string, params map[string]string) error {
		verified = true
		if token != "" {
			t.Errorf("expected empty token for anonymous callback, got %q", token)
		}
		return nil
	}
	svc := NewReconcileService(sessionRepo, mocks.NewMockCheckoutRepository(), platform)

	outcome := svc.Reconcile(context.Background(), "", map[string]string{"status": "success"})
	if !verified {
		t.Error("expected verification to run without a session")
	}
	if outcome.State != domain.CallbackSuccess {
		t.Errorf("expected success outcome, got %q", outcome.State)
	}
}

func TestReconcileServiceImpl_SessionUpdateFailureIsNotFatal(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepository()
	sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
		return storedSessionForReconcile(), nil
	}
	sessionRepo.UpdateFunc = func(ctx context.Context, session *domain.Session) error {
		return errors.New("redis write failed")
	}
	svc := NewReconcileService(sessionRepo, mocks.NewMockCheckoutRepository(), mocks.NewMockPlatformClient())

	outcome := svc.Reconcile(context.Background(), "sess_1", map[string]string{"status": "success"})
	if outcome.State != domain.CallbackSuccess {
		t.Errorf("storage write failure must not fail the outcome, got %q", outcome.State)
	}
}
