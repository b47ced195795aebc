package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
	"github.com/Biffle-Ltd/biffle-chat-web/internal/mocks"
)

func TestSessionServiceImpl_Login(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepository()
	var created *domain.Session
	sessionRepo.CreateFunc = func(ctx context.Context, session *domain.Session) error {
		created = session
		return nil
	}
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.GenerateSessionTokenFunc = func(sessionID string, role string) (string, error) {
		if role != string(domain.RoleFan) {
			t.Errorf("token issued with wrong role %q", role)
		}
		return "signed_for_" + sessionID, nil
	}
	svc := NewSessionService(sessionRepo, mocks.NewMockCheckoutRepository(), tokenSvc, time.Hour)

	result, err := svc.Login(context.Background(), &domain.Session{
		Token: "platform_token",
		Role:  domain.RoleFan,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if created == nil {
		t.Fatal("expected session persisted")
	}
	if !strings.HasPrefix(result.Session.ID, "sess_") {
		t.Errorf("unexpected session id %q", result.Session.ID)
	}
	if result.CookieToken != "signed_for_"+result.Session.ID {
		t.Errorf("cookie token does not reference the session: %q", result.CookieToken)
	}
	if result.Session.ExpiresAt.Sub(result.Session.CreatedAt) != time.Hour {
		t.Errorf("unexpected session lifetime: %v", result.Session.ExpiresAt.Sub(result.Session.CreatedAt))
	}
}

func TestSessionServiceImpl_LoginStorageFailure(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepository()
	sessionRepo.CreateFunc = func(ctx context.Context, session *domain.Session) error {
		return errors.New("redis down")
	}
	svc := NewSessionService(sessionRepo, mocks.NewMockCheckoutRepository(), mocks.NewMockTokenService(), time.Hour)

	if _, err := svc.Login(context.Background(), &domain.Session{Role: domain.RoleFan}); err == nil {
		t.Fatal("expected error when session cannot be persisted")
	}
}

func TestSessionServiceImpl_Restore(t *testing.T) {
	tests := []struct {
		name          string
		cookieToken   string
		setupMocks    func(*mocks.MockSessionRepository, *mocks.MockTokenService)
		expectedError error
	}{
		{
			name:        "valid token restores the stored session",
			cookieToken: "valid_token",
			setupMocks: func(repo *mocks.MockSessionRepository, tokenSvc *mocks.MockTokenService) {
				tokenSvc.ValidateSessionTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return &domain.TokenClaims{SessionID: "sess_1", Role: "fan"}, nil
				}
				repo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
					if sessionID != "sess_1" {
						t.Errorf("lookup with wrong session id %q", sessionID)
					}
					return &domain.Session{ID: sessionID, Token: "platform_token", Role: domain.RoleFan}, nil
				}
			},
		},
		{
			name:          "empty cookie degrades to anonymous",
			cookieToken:   "",
			expectedError: domain.ErrSessionNotFound,
		},
		{
			name:        "bad signature degrades to anonymous",
			cookieToken: "tampered",
			setupMocks: func(repo *mocks.MockSessionRepository, tokenSvc *mocks.MockTokenService) {
				tokenSvc.ValidateSessionTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenInvalid
				}
			},
			expectedError: domain.ErrSessionNotFound,
		},
		{
			name:        "missing record degrades to anonymous",
			cookieToken: "valid_token",
			setupMocks: func(repo *mocks.MockSessionRepository, tokenSvc *mocks.MockTokenService) {
				repo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
					return nil, domain.ErrSessionNotFound
				}
			},
			expectedError: domain.ErrSessionNotFound,
		},
		{
			name:        "expired record degrades to anonymous",
			cookieToken: "valid_token",
			setupMocks: func(repo *mocks.MockSessionRepository, tokenSvc *mocks.MockTokenService) {
				repo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
					return nil, domain.ErrSessionExpired
				}
			},
			expectedError: domain.ErrSessionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionRepo := mocks.NewMockSessionRepository()
			tokenSvc := mocks.NewMockTokenService()
			if tt.setupMocks != nil {
				tt.setupMocks(sessionRepo, tokenSvc)
			}
			svc := NewSessionService(sessionRepo, mocks.NewMockCheckoutRepository(), tokenSvc, time.Hour)

			session, err := svc.Restore(context.Background(), tt.cookieToken)
			if !errors.Is(err, tt.expectedError) {
				t.Fatalf("expected error %v, got %v", tt.expectedError, err)
			}
			if tt.expectedError == nil && session == nil {
				t.Fatal("expected restored session")
			}
		})
	}
}

func TestSessionServiceImpl_LoginRestoreRoundTrip(t *testing.T) {
	store := map[string]domain.Session{}
	sessionRepo := mocks.NewMockSessionRepository()
	sessionRepo.CreateFunc = func(ctx context.Context, session *domain.Session) error {
		store[session.ID] = *session
		return nil
	}
	sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
		s, ok := store[sessionID]
		if !ok {
			return nil, domain.ErrSessionNotFound
		}
		return &s, nil
	}
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.GenerateSessionTokenFunc = func(sessionID string, role string) (string, error) {
		return "ref:" + sessionID, nil
	}
	tokenSvc.ValidateSessionTokenFunc = func(token string) (*domain.TokenClaims, error) {
		return &domain.TokenClaims{SessionID: strings.TrimPrefix(token, "ref:"), Role: "fan"}, nil
	}
	svc := NewSessionService(sessionRepo, mocks.NewMockCheckoutRepository(), tokenSvc, time.Hour)
	ctx := context.Background()

	result, err := svc.Login(ctx, &domain.Session{Token: "platform_token", UserID: "user_1", Role: domain.RoleFan})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	restored, err := svc.Restore(ctx, result.CookieToken)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.ID != result.Session.ID || restored.Token != "platform_token" || restored.UserID != "user_1" {
		t.Errorf("round trip mismatch: %+v", restored)
	}
}

func TestSessionServiceImpl_Logout(t *testing.T) {
	t.Run("clears checkout state and session together", func(t *testing.T) {
		var checkoutCleared, sessionCleared bool
		sessionRepo := mocks.NewMockSessionRepository()
		sessionRepo.DeleteFunc = func(ctx context.Context, sessionID string) error {
			sessionCleared = true
			return nil
		}
		checkoutRepo := mocks.NewMockCheckoutRepository()
		checkoutRepo.DeleteFunc = func(ctx context.Context, sessionID string) error {
			checkoutCleared = true
			return nil
		}
		svc := NewSessionService(sessionRepo, checkoutRepo, mocks.NewMockTokenService(), time.Hour)

		if err := svc.Logout(context.Background(), "sess_1"); err != nil {
			t.Fatalf("logout: %v", err)
		}
		if !checkoutCleared || !sessionCleared {
			t.Errorf("expected both cleared: checkout=%v session=%v", checkoutCleared, sessionCleared)
		}
	})

	t.Run("checkout clear failure does not block session removal", func(t *testing.T) {
		sessionCleared := false
		sessionRepo := mocks.NewMockSessionRepository()
		sessionRepo.DeleteFunc = func(ctx context.Context, sessionID string) error {
			sessionCleared = true
			return nil
		}
		checkoutRepo := mocks.NewMockCheckoutRepository()
		checkoutRepo.DeleteFunc = func(ctx context.Context, sessionID string) error {
			return errors.New("redis down")
		}
		svc := NewSessionService(sessionRepo, checkoutRepo, mocks.NewMockTokenService(), time.Hour)

		if err := svc.Logout(context.Background(), "sess_1"); err != nil {
			t.Fatalf("logout: %v", err)
		}
		if !sessionCleared {
			t.Error("expected session removed despite checkout clear failure")
		}
	})
}
