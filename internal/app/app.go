package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Biffle-Ltd/biffle-chat-web/internal/config"
	httpx "github.com/Biffle-Ltd/biffle-chat-web/internal/http"
	"github.com/Biffle-Ltd/biffle-chat-web/internal/http/handlers"
	"github.com/Biffle-Ltd/biffle-chat-web/internal/http/middleware"
	"github.com/Biffle-Ltd/biffle-chat-web/internal/infrastructure/auth"
	"github.com/Biffle-Ltd/biffle-chat-web/internal/infrastructure/database"
	"github.com/Biffle-Ltd/biffle-chat-web/internal/infrastructure/payment"
	"github.com/Biffle-Ltd/biffle-chat-web/internal/infrastructure/platform"
	"github.com/Biffle-Ltd/biffle-chat-web/internal/infrastructure/repositories"
	"github.com/Biffle-Ltd/biffle-chat-web/internal/services"
)

// checkoutTTL bounds how long an abandoned selection survives. A checkout
// is scratch state, not a session; it should not outlive the shopping
// intent that created it.
const checkoutTTL = 30 * time.Minute

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(cfg.CasbinModelPath, cfg.CasbinPolicyPath)
	if err != nil {
		return err
	}

	// Initialize infrastructure services
	tokenSvc := auth.NewJWTService(cfg.SessionSecret, cfg.SessionIssuer, cfg.SessionTTL)
	platformClient := platform.NewClient(cfg.PlatformBaseURL, cfg.PlatformTimeout)
	gateway := payment.NewPayUGateway(cfg.PayUActionURL, cfg.PayUMerchantKey, cfg.PayUSalt, cfg.BaseURL)

	// Initialize repositories
	sessionRepo := repositories.NewSessionRepository(rdb, cfg.SessionTTL)
	checkoutRepo := repositories.NewCheckoutRepository(rdb, checkoutTTL)

	// Initialize services
	sessionSvc := services.NewSessionService(sessionRepo, checkoutRepo, tokenSvc, cfg.SessionTTL)
	authSvc := services.NewAuthService(platformClient, sessionSvc)
	checkoutSvc := services.NewCheckoutService(checkoutRepo, platformClient, gateway)
	reconcileSvc := services.NewReconcileService(sessionRepo, checkoutRepo, platformClient)
	creatorSvc := services.NewCreatorService(platformClient)

	// Initialize handlers
	pageH := handlers.NewPageHandlers(checkoutSvc)
	authH := handlers.NewAuthHandlers(authSvc, sessionSvc, cfg.SessionCookieName, cfg.SessionTTL)
	checkoutH := handlers.NewCheckoutHandlers(checkoutSvc, platformClient)
	callbackH := handlers.NewCallbackHandlers(reconcileSvc)
	creatorH := handlers.NewCreatorHandlers(creatorSvc)

	// Initialize middleware
	sessionMW := middleware.NewSessionMW(sessionSvc, cfg.SessionCookieName)
	casbinMW := middleware.NewCasbinMW(cas.E)

	r := httpx.BuildRouter(pageH, authH, checkoutH, callbackH, creatorH, sessionMW, casbinMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
