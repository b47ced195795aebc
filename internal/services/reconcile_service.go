package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
)

// Acknowledgment display time before the automatic redirect fires.
const (
	ackDelay       = 1500 * time.Millisecond
	ambiguousDelay = 1200 * time.Millisecond
)

// ReconcileServiceImpl implements domain.ReconcileService: the return leg
// after the user finishes (or abandons) payment on the provider's page.
// The provider's query parameters are never trusted for crediting; the
// platform confirms the transaction server-side.
type ReconcileServiceImpl struct {
	sessionRepo  domain.SessionRepository
	checkoutRepo domain.CheckoutRepository
	platform     domain.PlatformClient
}

// NewReconcileService creates a new payment callback reconciler
func NewReconcileService(
	sessionRepo domain.SessionRepository,
	checkoutRepo domain.CheckoutRepository,
	platform domain.PlatformClient,
) domain.ReconcileService {
	return &ReconcileServiceImpl{
		sessionRepo:  sessionRepo,
		checkoutRepo: checkoutRepo,
		platform:     platform,
	}
}

// Reconcile implements domain.ReconcileService. It always produces an
// outcome; failures funnel to the summary page for a retry.
func (s *ReconcileServiceImpl) Reconcile(ctx context.Context, sessionID string, params map[string]string) *domain.CallbackOutcome {
	var session *domain.Session
	token := ""
	if sessionID != "" {
		if found, err := s.sessionRepo.FindByID(ctx, sessionID); err == nil {
			session = found
			token = found.Token
		}
	}

	if err := s.platform.VerifyPayment(ctx, token, params); err != nil {
		log.Printf("PAYMENT_VERIFY_FAILED: session_id=%s error=%v timestamp=%s",
			sessionID, err, time.Now().UTC().Format(time.RFC3339))
		return failedOutcome("Could not verify payment.")
	}

	if session != nil {
		if err := s.refreshSession(ctx, session); err != nil {
			log.Printf("SESSION_REFRESH_FAILED: session_id=%s error=%v timestamp=%s",
				sessionID, err, time.Now().UTC().Format(time.RFC3339))
			return failedOutcome("Could not verify payment.")
		}
	}

	switch strings.ToLower(params["status"]) {
	case "success":
		s.clearCheckout(ctx, sessionID)
		return &domain.CallbackOutcome{
			State:      domain.CallbackSuccess,
			Message:    "Payment successful! Coins have been added to your account.",
			Redirect:   domain.PageCoins,
			HardReload: true,
			Delay:      ackDelay,
		}
	case "failure", "failed", "error":
		return failedOutcome("Payment failed or was cancelled.")
	default:
		// No usable status from the provider: the server-side verification
		// already ran, so treat the payment as processed.
		s.clearCheckout(ctx, sessionID)
		return &domain.CallbackOutcome{
			State:      domain.CallbackSuccess,
			Message:    "Payment processed. Redirecting...",
			Redirect:   domain.PageCoins,
			HardReload: true,
			Delay:      ambiguousDelay,
		}
	}
}

// refreshSession re-fetches profile and wallet and merges them into the
// stored record, preserving the upstream token.
func (s *ReconcileServiceImpl) refreshSession(ctx context.Context, session *domain.Session) error {
	profile, err := s.platform.UserDetails(ctx, session.Token)
	if err != nil {
		return err
	}
	balance, err := s.platform.WalletBalance(ctx, session.Token)
	if err != nil {
		return err
	}

	if profile.Name != "" {
		session.Name = profile.Name
	}
	if profile.Email != "" {
		session.Email = profile.Email
	}
	if profile.Role.Valid() {
		session.Role = profile.Role
	}
	session.IsNewUser = profile.IsNewUser
	session.CoinBalance = balance

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		// Storage write failures degrade silently; the next API call will
		// fetch the balance fresh anyway.
		log.Printf("SESSION_UPDATE_FAILED: session_id=%s error=%v", session.ID, err)
	}
	return nil
}

func (s *ReconcileServiceImpl) clearCheckout(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	if err := s.checkoutRepo.Delete(ctx, sessionID); err != nil {
		log.Printf("CHECKOUT_CLEAR_FAILED: session_id=%s error=%v", sessionID, err)
	}
}

func failedOutcome(message string) *domain.CallbackOutcome {
	return &domain.CallbackOutcome{
		State:    domain.CallbackFailed,
		Message:  message,
		Redirect: domain.PagePaymentSummary,
		Delay:    ackDelay,
	}
}
