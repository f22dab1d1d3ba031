package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medlink/portal/internal/pkg/jwt"
	"github.com/medlink/portal/internal/pkg/models"
)

const testCookieName = "portal_session"

func testCodec(t *testing.T) *jwt.Codec {
	codec, err := jwt.NewCodec(models.JWTConfig{
		Secret: "session-middleware-test-secret",
		Issuer: "medlink-portal-test",
	})
	require.NoError(t, err)
	return codec
}

func testSessionConfig(t *testing.T) SessionConfig {
	return SessionConfig{
		CookieName:  testCookieName,
		Codec:       testCodec(t),
		Rules:       DefaultRouteRules(),
		Landing:     DefaultLandingPaths(),
		PublicPaths: DefaultPublicPaths(),
	}
}

// doRequest runs one request through the session middleware with an optional
// session cookie and returns the recorder plus whether the inner handler ran.
func doRequest(t *testing.T, cfg SessionConfig, path, token string) (*httptest.ResponseRecorder, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlerRan := false
	handler := SessionMiddleware(cfg)(func(c echo.Context) error {
		handlerRan = true
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	require.NoError(t, err)
	return rec, handlerRan
}

func issueFor(t *testing.T, codec *jwt.Codec, role models.Role) string {
	token, _, err := codec.Issue(uuid.New(), role)
	require.NoError(t, err)
	return token
}

func TestSessionMiddleware_UnclassifiedPathPassesThrough(t *testing.T) {
	cfg := testSessionConfig(t)

	for _, path := range []string{"/", "/auth/login", "/about", "/health", "/doctors"} {
		rec, ran := doRequest(t, cfg, path, "")
		assert.True(t, ran, "path %s must pass through", path)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestSessionMiddleware_LoginSurfacesArePublic(t *testing.T) {
	cfg := testSessionConfig(t)

	for _, path := range []string{"/admin/login", "/doctor/login", "/patient/login"} {
		_, ran := doRequest(t, cfg, path, "")
		assert.True(t, ran, "login surface %s must not require a session", path)
	}
}

func TestSessionMiddleware_MissingTokenRedirectsToLogin(t *testing.T) {
	cfg := testSessionConfig(t)

	tests := []struct {
		path      string
		wantLogin string
	}{
		{path: "/superadmin/dashboard", wantLogin: "/admin/login"},
		{path: "/admin/dashboard", wantLogin: "/admin/login"},
		{path: "/doctor/dashboard", wantLogin: "/doctor/login"},
		{path: "/patient/records", wantLogin: "/patient/login"},
		{path: "/portal/me", wantLogin: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec, ran := doRequest(t, cfg, tt.path, "")
			assert.False(t, ran)
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tt.wantLogin, rec.Header().Get(echo.HeaderLocation))
		})
	}
}

func TestSessionMiddleware_InvalidTokenRedirectsLikeMissing(t *testing.T) {
	cfg := testSessionConfig(t)

	// Forged with a different key.
	otherCodec, err := jwt.NewCodec(models.JWTConfig{Secret: "some-other-secret"})
	require.NoError(t, err)
	forged := issueFor(t, otherCodec, models.RoleAdmin)

	// Expired but correctly signed.
	expiredClaims := jwt.Claims{
		UserID: uuid.New(),
		Role:   models.RoleAdmin,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expiredToken, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, expiredClaims).
		SignedString([]byte("session-middleware-test-secret"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage": "garbage-token",
		"forged":  forged,
		"expired": expiredToken,
	} {
		t.Run(name, func(t *testing.T) {
			rec, ran := doRequest(t, cfg, "/admin/dashboard", token)
			assert.False(t, ran)
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/admin/login", rec.Header().Get(echo.HeaderLocation))
		})
	}
}

// TestSessionMiddleware_RolePathTable enumerates the full (surface, role)
// grid: every role is either admitted or redirected to its own landing
// surface, never a fall-through.
func TestSessionMiddleware_RolePathTable(t *testing.T) {
	cfg := testSessionConfig(t)

	surfaces := []struct {
		path    string
		allowed map[models.Role]bool
	}{
		{path: "/superadmin/dashboard", allowed: map[models.Role]bool{
			models.RoleSuperAdmin: true,
		}},
		{path: "/admin/dashboard", allowed: map[models.Role]bool{
			models.RoleAdmin:      true,
			models.RoleSuperAdmin: true,
		}},
		{path: "/doctor/dashboard", allowed: map[models.Role]bool{
			models.RoleDoctor:        true,
			models.RolePendingDoctor: true,
		}},
		{path: "/patient/dashboard", allowed: map[models.Role]bool{
			models.RolePatient: true,
		}},
		{path: "/portal/me", allowed: map[models.Role]bool{
			models.RoleSuperAdmin:    true,
			models.RoleAdmin:         true,
			models.RoleDoctor:        true,
			models.RolePendingDoctor: true,
			models.RolePatient:       true,
		}},
	}

	roles := []models.Role{
		models.RoleSuperAdmin,
		models.RoleAdmin,
		models.RoleDoctor,
		models.RolePendingDoctor,
		models.RolePatient,
	}
	landing := DefaultLandingPaths()

	for _, surface := range surfaces {
		for _, role := range roles {
			t.Run(surface.path+"/"+string(role), func(t *testing.T) {
				token := issueFor(t, cfg.Codec, role)
				rec, ran := doRequest(t, cfg, surface.path, token)

				if surface.allowed[role] {
					assert.True(t, ran, "role %s must be admitted to %s", role, surface.path)
					assert.Equal(t, http.StatusOK, rec.Code)
				} else {
					assert.False(t, ran, "role %s must not reach %s", role, surface.path)
					assert.Equal(t, http.StatusFound, rec.Code)
					assert.Equal(t, landing[role], rec.Header().Get(echo.HeaderLocation))
				}
			})
		}
	}
}

func TestSessionMiddleware_SetsSessionContext(t *testing.T) {
	cfg := testSessionConfig(t)
	userID := uuid.New()
	token, _, err := cfg.Codec.Issue(userID, models.RolePatient)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/patient/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := SessionMiddleware(cfg)(func(c echo.Context) error {
		assert.Equal(t, userID, c.Get("user_id"))
		assert.Equal(t, models.RolePatient, c.Get("user_role"))
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionMiddleware_PrefixMatchesOnSegmentBoundary(t *testing.T) {
	cfg := testSessionConfig(t)

	// "/doctors" must not be captured by the "/doctor" rule.
	_, ran := doRequest(t, cfg, "/doctors", "")
	assert.True(t, ran)

	// The bare prefix itself is classified.
	rec, ran := doRequest(t, cfg, "/doctor", "")
	assert.False(t, ran)
	assert.Equal(t, "/doctor/login", rec.Header().Get(echo.HeaderLocation))
}
