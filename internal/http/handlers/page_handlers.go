package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
	"github.com/Biffle-Ltd/biffle-chat-web/internal/content"
	"github.com/Biffle-Ltd/biffle-chat-web/internal/http/middleware"
)

// PageHandlers serves the browser-facing routes. Access guards run here,
// before anything renders: the views themselves never have to check
// preconditions.
type PageHandlers struct {
	checkoutSvc domain.CheckoutService
}

// NewPageHandlers creates new page handlers
func NewPageHandlers(checkoutSvc domain.CheckoutService) *PageHandlers {
	return &PageHandlers{checkoutSvc: checkoutSvc}
}

// Static returns a handler rendering one static-content page.
func (h *PageHandlers) Static(page domain.Page) gin.HandlerFunc {
	copy, ok := content.Static[page]
	if !ok {
		copy = content.Static[domain.PageHome]
	}
	return func(c *gin.Context) {
		renderPage(c, page, copy.Title, copy.Body)
	}
}

// Login serves the login screen; an authenticated visitor is sent to the
// coins page instead.
func (h *PageHandlers) Login(c *gin.Context) {
	_, authenticated := middleware.SessionFrom(c)
	if resolved := domain.Resolve(domain.PageLogin, authenticated); resolved != domain.PageLogin {
		c.Redirect(http.StatusFound, resolved.Path())
		return
	}
	renderPage(c, domain.PageLogin, "Welcome Back!", "Enter your phone number to continue.")
}

// Coins serves the package-selection screen; anonymous visitors are sent
// to login.
func (h *PageHandlers) Coins(c *gin.Context) {
	_, authenticated := middleware.SessionFrom(c)
	if resolved := domain.Resolve(domain.PageCoins, authenticated); resolved != domain.PageCoins {
		c.Redirect(http.StatusFound, resolved.Path())
		return
	}
	renderPage(c, domain.PageCoins, "Buy Coins", "Pick a coin package to get started.")
}

// PaymentSummary serves the summary screen. Arriving with no selection
// (direct URL, stale reload) is corrected silently by redirecting back to
// selection.
func (h *PageHandlers) PaymentSummary(c *gin.Context) {
	h.flowStep(c, domain.PagePaymentSummary, "Payment Summary", "Review your package and apply a coupon.")
}

// PaymentGateway serves the payment-method screen with the same guard as
// the summary.
func (h *PageHandlers) PaymentGateway(c *gin.Context) {
	h.flowStep(c, domain.PagePaymentGateway, "Secure Payment", "Choose a payment method to continue.")
}

func (h *PageHandlers) flowStep(c *gin.Context, page domain.Page, title, body string) {
	session, authenticated := middleware.SessionFrom(c)
	if !authenticated {
		c.Redirect(http.StatusFound, domain.PageLogin.Path())
		return
	}

	// Silent corrective redirect for missing preconditions; storage errors
	// fall back the same way rather than surfacing on a page load.
	if _, err := h.checkoutSvc.Summary(c.Request.Context(), session.ID); err != nil {
		c.Redirect(http.StatusFound, domain.PageCoins.Path())
		return
	}

	renderPage(c, page, title, body)
}

// CreatorRegistration serves the creator onboarding form.
func (h *PageHandlers) CreatorRegistration(c *gin.Context) {
	renderPage(c, domain.PageCreatorRegistration, "Become a Creator", "Tell us about yourself and upload your profile assets.")
}

// AppRedirect sends /app visitors to the Play Store listing.
func (h *PageHandlers) AppRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, content.PlayStoreURL)
}

// NotFound redirects unknown paths to the landing page.
func (h *PageHandlers) NotFound(c *gin.Context) {
	c.Redirect(http.StatusFound, domain.PageHome.Path())
}
