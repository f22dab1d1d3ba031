package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/medlink/portal/internal/pkg/jwt"
	"github.com/medlink/portal/internal/pkg/middleware"
	"github.com/medlink/portal/internal/pkg/models"
	"github.com/medlink/portal/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers for the auth service
type Handler struct {
	authHandler  *http.AuthHandler
	adminHandler *http.AdminHandler
	cfg          *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	adminHandler *http.AdminHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:  authHandler,
		adminHandler: adminHandler,
		cfg:          cfg,
	}
}

// RegisterRoutes registers the auth endpoints. Role fencing is not done
// here: the session middleware is mounted globally so its route table
// covers every portal surface, registered or not. The auth group is where
// sessions get minted and is unclassified by that table, so it stays open.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/auth")
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/otp/request", h.authHandler.RequestOTP)
	authGroup.POST("/otp/verify", h.authHandler.VerifyOTP)
	authGroup.POST("/register/patient", h.authHandler.RegisterPatient)
	authGroup.POST("/register/doctor", h.authHandler.RegisterDoctor)
	authGroup.POST("/oauth/callback", h.authHandler.OAuthCallback)
	authGroup.POST("/logout", h.authHandler.Logout)

	portalGroup := e.Group("/portal")
	portalGroup.GET("/me", h.authHandler.Me)

	adminGroup := e.Group("/admin")
	adminGroup.GET("/doctors", h.adminHandler.ListDoctors)
	adminGroup.POST("/doctors/:id/approval", h.adminHandler.DecideApproval)
}

// SessionMiddleware builds the role routing middleware from startup config
// and the default portal route tables. Mount it on the server root, not on
// route groups: the doctor/patient/superadmin surfaces have no handlers in
// this service, and the routing table must still redirect requests for
// them.
func SessionMiddleware(cfg *models.Config, codec *jwt.Codec) echo.MiddlewareFunc {
	return middleware.SessionMiddleware(middleware.SessionConfig{
		CookieName:  cfg.Auth.CookieName,
		Codec:       codec,
		Rules:       middleware.DefaultRouteRules(),
		Landing:     middleware.DefaultLandingPaths(),
		PublicPaths: middleware.DefaultPublicPaths(),
	})
}
