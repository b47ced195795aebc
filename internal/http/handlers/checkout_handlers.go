package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
	"github.com/Biffle-Ltd/biffle-chat-web/internal/http/middleware"
)

// CheckoutHandlers exposes the coin catalog and the purchase state machine
// over the JSON API. All routes require a restored session.
type CheckoutHandlers struct {
	checkoutSvc domain.CheckoutService
	platform    domain.PlatformClient
}

// NewCheckoutHandlers creates new checkout handlers
func NewCheckoutHandlers(checkoutSvc domain.CheckoutService, platform domain.PlatformClient) *CheckoutHandlers {
	return &CheckoutHandlers{
		checkoutSvc: checkoutSvc,
		platform:    platform,
	}
}

// SelectRequest represents a package selection
type SelectRequest struct {
	ID            int64 `json:"id" binding:"required"`
	Coins         int64 `json:"coins" binding:"required"`
	Price         int64 `json:"price" binding:"required"`
	OriginalPrice int64 `json:"original_price"`
	Discount      int   `json:"discount"`
}

// CouponRequest represents a coupon submission
type CouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// PayRequest represents the gateway submission
type PayRequest struct {
	Method domain.PaymentMethod `json:"method" binding:"required"`
	UPIID  string               `json:"upi_id,omitempty"`
	Bank   string               `json:"bank,omitempty"`
	Wallet string               `json:"wallet,omitempty"`
}

// Packages returns the remote coin-pack catalog
func (h *CheckoutHandlers) Packages(c *gin.Context) {
	session, _ := middleware.SessionFrom(c)

	packs, err := h.checkoutSvc.Packages(c.Request.Context(), session.Token)
	if err != nil {
		respondAuthError(c, err, "Failed to load coin packages")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": packs})
}

// WalletBalance proxies the live wallet balance
func (h *CheckoutHandlers) WalletBalance(c *gin.Context) {
	session, _ := middleware.SessionFrom(c)

	balance, err := h.platform.WalletBalance(c.Request.Context(), session.Token)
	if err != nil {
		respondAuthError(c, err, "Failed to load wallet balance")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"balance": balance,
		},
	})
}

// SelectPackage records the chosen package and points the client at the
// summary screen
func (h *CheckoutHandlers) SelectPackage(c *gin.Context) {
	session, _ := middleware.SessionFrom(c)

	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pkg := &domain.CoinPackage{
		ID:            req.ID,
		Coins:         req.Coins,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Discount:      req.Discount,
	}

	if err := h.checkoutSvc.SelectPackage(c.Request.Context(), session.ID, pkg); err != nil {
		if errors.Is(err, domain.ErrPackageInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid package selection"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save selection"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"redirect": domain.PagePaymentSummary.Path(),
		},
	})
}

// Summary returns the price breakdown for the current selection
func (h *CheckoutHandlers) Summary(c *gin.Context) {
	session, _ := middleware.SessionFrom(c)

	breakdown, err := h.checkoutSvc.Summary(c.Request.Context(), session.ID)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": breakdown})
}

// ApplyCoupon validates and applies a coupon code
func (h *CheckoutHandlers) ApplyCoupon(c *gin.Context) {
	session, _ := middleware.SessionFrom(c)

	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	breakdown, err := h.checkoutSvc.ApplyCoupon(c.Request.Context(), session.ID, req.Code)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": breakdown})
}

// RemoveCoupon clears the applied coupon
func (h *CheckoutHandlers) RemoveCoupon(c *gin.Context) {
	session, _ := middleware.SessionFrom(c)

	breakdown, err := h.checkoutSvc.RemoveCoupon(c.Request.Context(), session.ID)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": breakdown})
}

// Pay builds the provider handoff for the chosen payment method
func (h *CheckoutHandlers) Pay(c *gin.Context) {
	session, _ := middleware.SessionFrom(c)

	var req PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.checkoutSvc.Gateway(c.Request.Context(), session, req.Method)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": order})
}

// respondCheckoutError maps purchase-flow errors onto HTTP responses. A
// missing selection is a corrective redirect, not a user-facing error.
func respondCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNoPackageSelected):
		c.JSON(http.StatusConflict, gin.H{
			"error":    "No package selected",
			"redirect": domain.PageCoins.Path(),
		})
	case errors.Is(err, domain.ErrCouponInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon code"})
	case errors.Is(err, domain.ErrMethodInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported payment method"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout operation failed"})
	}
}
