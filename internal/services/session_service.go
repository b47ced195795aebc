package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
)

// SessionServiceImpl implements domain.SessionService
type SessionServiceImpl struct {
	sessionRepo  domain.SessionRepository
	checkoutRepo domain.CheckoutRepository
	tokenSvc     domain.TokenService
	ttl          time.Duration
}

// NewSessionService creates a new session service
func NewSessionService(
	sessionRepo domain.SessionRepository,
	checkoutRepo domain.CheckoutRepository,
	tokenSvc domain.TokenService,
	ttl time.Duration,
) domain.SessionService {
	return &SessionServiceImpl{
		sessionRepo:  sessionRepo,
		checkoutRepo: checkoutRepo,
		tokenSvc:     tokenSvc,
		ttl:          ttl,
	}
}

// Restore implements domain.SessionService. Any failure along the way
// (missing cookie, bad signature, missing or corrupt record) degrades to
// anonymous; no error here is ever user-visible.
func (s *SessionServiceImpl) Restore(ctx context.Context, cookieToken string) (*domain.Session, error) {
	if cookieToken == "" {
		return nil, domain.ErrSessionNotFound
	}

	claims, err := s.tokenSvc.ValidateSessionToken(cookieToken)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	session, err := s.sessionRepo.FindByID(ctx, claims.SessionID)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	return session, nil
}

// Login implements domain.SessionService: persists the freshly built
// session and issues the signed cookie token referencing it.
func (s *SessionServiceImpl) Login(ctx context.Context, session *domain.Session) (*domain.AuthResult, error) {
	now := time.Now()
	session.ID = newSessionID()
	session.CreatedAt = now
	session.ExpiresAt = now.Add(s.ttl)

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	cookieToken, err := s.tokenSvc.GenerateSessionToken(session.ID, string(session.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &domain.AuthResult{
		Session:     session,
		CookieToken: cookieToken,
	}, nil
}

// Logout implements domain.SessionService. Purchase-flow state goes with
// the session; neither survives a logout.
func (s *SessionServiceImpl) Logout(ctx context.Context, sessionID string) error {
	if err := s.checkoutRepo.Delete(ctx, sessionID); err != nil {
		log.Printf("CHECKOUT_CLEAR_FAILED: session_id=%s error=%v", sessionID, err)
	}
	return s.sessionRepo.Delete(ctx, sessionID)
}

func newSessionID() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return "sess_" + hex.EncodeToString(bytes)
}
