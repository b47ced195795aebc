package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
	"github.com/Biffle-Ltd/biffle-chat-web/internal/http/handlers"
	"github.com/Biffle-Ltd/biffle-chat-web/internal/http/middleware"
)

func BuildRouter(
	ph *handlers.PageHandlers,
	ah *handlers.AuthHandlers,
	ch *handlers.CheckoutHandlers,
	cbh *handlers.CallbackHandlers,
	crh *handlers.CreatorHandlers,
	sess *middleware.SessionMW,
	cb middleware.CasbinMiddleware,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Browser routes. The session is restored optimistically on every page;
	// guards decide redirects before anything renders.
	pages := r.Group("/")
	pages.Use(sess.WithSession())
	pages.GET("/", ph.Static(domain.PageHome))
	pages.GET("/creators", ph.Static(domain.PageCreators))
	pages.GET("/login", ph.Login)
	pages.GET("/coins", ph.Coins)
	pages.GET("/payment-summary", ph.PaymentSummary)
	pages.GET("/payment-gateway", ph.PaymentGateway)
	pages.GET("/payu/callback", cbh.Handle)
	pages.POST("/payu/callback", cbh.Handle)
	pages.GET("/creator-registration", ph.CreatorRegistration)
	pages.GET("/about", ph.Static(domain.PageAbout))
	pages.GET("/guidelines", ph.Static(domain.PageGuidelines))
	pages.GET("/privacy", ph.Static(domain.PagePrivacy))
	pages.GET("/terms", ph.Static(domain.PageTerms))
	pages.GET("/refund", ph.Static(domain.PageRefund))
	pages.GET("/safety", ph.Static(domain.PageSafety))
	pages.GET("/support", ph.Static(domain.PageSupport))
	pages.GET("/products", ph.Static(domain.PageProducts))
	pages.GET("/pricing", ph.Static(domain.PagePricing))
	pages.GET("/app", ph.AppRedirect)

	// Public API: the login funnel and creator onboarding.
	api := r.Group("/api")
	api.Use(sess.WithSession())
	api.POST("/auth/otp/request", ah.RequestOTP)
	api.POST("/auth/login", ah.Login)
	api.POST("/creator/application/upload-urls", crh.GenerateUploadURLs)
	api.POST("/creator/application", crh.SubmitApplication)

	// Authenticated API behind the role policy.
	priv := r.Group("/api")
	priv.Use(sess.WithSession(), sess.RequireAuth(), cb.Enforce())
	priv.GET("/auth/me", ah.Me)
	priv.POST("/auth/logout", ah.Logout)
	priv.GET("/coins/packages", ch.Packages)
	priv.GET("/wallet/balance", ch.WalletBalance)
	priv.POST("/checkout/select", ch.SelectPackage)
	priv.GET("/checkout/summary", ch.Summary)
	priv.POST("/checkout/coupon", ch.ApplyCoupon)
	priv.DELETE("/checkout/coupon", ch.RemoveCoupon)
	priv.POST("/checkout/pay", ch.Pay)

	r.NoRoute(sess.WithSession(), ph.NotFound)

	return r
}
