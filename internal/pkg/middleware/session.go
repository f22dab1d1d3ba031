package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/medlink/portal/internal/pkg/jwt"
	"github.com/medlink/portal/internal/pkg/models"
)

// RouteRule maps a protected path prefix to the roles allowed through it.
// An empty Roles slice admits any authenticated role. LoginPath is where an
// unauthenticated or token-less request for this surface is sent.
type RouteRule struct {
	Prefix    string
	Roles     []models.Role
	LoginPath string
}

// allows reports whether the rule's allow-list contains the given role.
// Membership is exact; no role implies another.
func (r RouteRule) allows(role models.Role) bool {
	if len(r.Roles) == 0 {
		return true
	}
	for _, allowed := range r.Roles {
		if role == allowed {
			return true
		}
	}
	return false
}

// SessionConfig configures the session routing middleware.
type SessionConfig struct {
	CookieName string
	Codec      *jwt.Codec
	Rules      []RouteRule
	Landing    map[models.Role]string
	// PublicPaths are exact paths under classified prefixes that must stay
	// reachable without a session (the login surfaces themselves).
	PublicPaths map[string]bool
}

// DefaultRouteRules is the portal's role-path table. Order matters: the
// first matching prefix classifies the request, so more specific prefixes
// come first. The doctor surface deliberately admits pending_doctor tokens;
// the only content it unlocks for them is the pending-approval notice.
func DefaultRouteRules() []RouteRule {
	return []RouteRule{
		{Prefix: "/superadmin", Roles: []models.Role{models.RoleSuperAdmin}, LoginPath: "/admin/login"},
		{Prefix: "/admin", Roles: []models.Role{models.RoleAdmin, models.RoleSuperAdmin}, LoginPath: "/admin/login"},
		{Prefix: "/doctor", Roles: []models.Role{models.RoleDoctor, models.RolePendingDoctor}, LoginPath: "/doctor/login"},
		{Prefix: "/patient", Roles: []models.Role{models.RolePatient}, LoginPath: "/patient/login"},
		{Prefix: "/portal", Roles: nil, LoginPath: "/"},
	}
}

// DefaultLandingPaths maps each role to its landing surface, used when a
// valid session reaches a surface its role is not allowed on.
func DefaultLandingPaths() map[models.Role]string {
	return map[models.Role]string{
		models.RoleSuperAdmin:    "/superadmin/dashboard",
		models.RoleAdmin:         "/admin/dashboard",
		models.RoleDoctor:        "/doctor/dashboard",
		models.RolePendingDoctor: "/doctor/pending",
		models.RolePatient:       "/patient/dashboard",
	}
}

// DefaultPublicPaths lists the login surfaces that live under classified
// prefixes and must bypass the session check.
func DefaultPublicPaths() map[string]bool {
	return map[string]bool{
		"/admin/login":   true,
		"/doctor/login":  true,
		"/patient/login": true,
	}
}

// SessionMiddleware routes every inbound request by session state.
// Unclassified paths pass through unchanged. For classified paths: a
// missing or invalid token redirects to the surface's login path, and a
// valid token with a disallowed role redirects to that role's landing path.
// The middleware never produces an error response; its only verdicts are
// pass-through, allow, or redirect. The role claim is taken from the token
// as-is and is never re-derived from storage.
func SessionMiddleware(cfg SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			if cfg.PublicPaths[path] {
				return next(c)
			}

			rule, ok := classify(path, cfg.Rules)
			if !ok {
				return next(c)
			}

			cookie, err := c.Cookie(cfg.CookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusFound, rule.LoginPath)
			}

			claims, err := cfg.Codec.Verify(cookie.Value)
			if err != nil {
				// Expired and forged tokens degrade the same way as no token.
				return c.Redirect(http.StatusFound, rule.LoginPath)
			}

			if !rule.allows(claims.Role) {
				// The credential is valid, just misrouted: send the session
				// to its own landing surface rather than to a login page.
				landing, ok := cfg.Landing[claims.Role]
				if !ok {
					landing = "/"
				}
				return c.Redirect(http.StatusFound, landing)
			}

			c.Set("user_id", claims.UserID)
			c.Set("user_role", claims.Role)

			return next(c)
		}
	}
}

// classify returns the first rule whose prefix matches the path on a
// segment boundary.
func classify(path string, rules []RouteRule) (RouteRule, bool) {
	for _, rule := range rules {
		if path == rule.Prefix || strings.HasPrefix(path, rule.Prefix+"/") {
			return rule, true
		}
	}
	return RouteRule{}, false
}
