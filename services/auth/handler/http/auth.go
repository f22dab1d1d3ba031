package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medlink/portal/internal/pkg/jwt"
	"github.com/medlink/portal/internal/pkg/logger"
	"github.com/medlink/portal/internal/pkg/models"
	"github.com/medlink/portal/internal/utils"
	"github.com/medlink/portal/services/auth"
)

// AuthHandler handles HTTP requests for authentication flows
type AuthHandler struct {
	authUC auth.AuthUC
	cfg    *models.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC, cfg *models.Config) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		cfg:    cfg,
	}
}

// Login handles password login for any of the four identity collections
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Identifier == "" || req.Password == "" || req.Role == "" {
		return utils.BadRequestResponse(c, "identifier, password and role are required")
	}

	resp, err := h.authUC.LoginWithPassword(c.Request().Context(), req.Identifier, req.Password, req.Role)
	if err != nil {
		return h.mapAuthError(c, err, "Login failed")
	}

	h.setSessionCookie(c, resp.Token)
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// RequestOTP handles one-time code requests for patient phone login
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req models.OTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Phone == "" {
		return utils.BadRequestResponse(c, "phone is required")
	}

	debugCode, err := h.authUC.RequestOTP(c.Request().Context(), req.Phone)
	if err != nil {
		return h.mapAuthError(c, err, "Failed to request OTP")
	}

	var data interface{}
	if debugCode != "" {
		data = map[string]string{"otp": debugCode}
	}
	return utils.SuccessResponse(c, http.StatusOK, "OTP sent", data)
}

// VerifyOTP handles one-time code verification and patient sign-in
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.OTPVerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Phone == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "phone and otp are required")
	}

	resp, err := h.authUC.VerifyOTP(c.Request().Context(), req.Phone, req.OTP)
	if err != nil {
		return h.mapAuthError(c, err, "OTP verification failed")
	}

	h.setSessionCookie(c, resp.Token)
	return utils.SuccessResponse(c, http.StatusOK, "OTP verified", resp)
}

// RegisterPatient handles patient self-registration
func (h *AuthHandler) RegisterPatient(c echo.Context) error {
	var req models.RegisterPatientRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Phone == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "email, phone and password are required")
	}

	resp, err := h.authUC.RegisterPatient(c.Request().Context(), &req)
	if err != nil {
		return h.mapAuthError(c, err, "Patient registration failed")
	}

	h.setSessionCookie(c, resp.Token)
	return utils.SuccessResponse(c, http.StatusCreated, "Patient registered", resp)
}

// RegisterDoctor handles doctor sign-up. The account lands in the approval
// queue, so no session cookie is set here.
func (h *AuthHandler) RegisterDoctor(c echo.Context) error {
	var req models.RegisterDoctorRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "email and password are required")
	}

	doctor, err := h.authUC.RegisterDoctor(c.Request().Context(), &req)
	if err != nil {
		return h.mapAuthError(c, err, "Doctor registration failed")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Registration received, awaiting approval", doctor)
}

// OAuthCallback handles sign-in with an external provider token
func (h *AuthHandler) OAuthCallback(c echo.Context) error {
	var req models.OAuthCallbackRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Provider == "" || req.AccessToken == "" {
		return utils.BadRequestResponse(c, "provider and access_token are required")
	}

	resp, err := h.authUC.ResolveOAuth(c.Request().Context(), &req)
	if err != nil {
		return h.mapAuthError(c, err, "OAuth sign-in failed")
	}

	h.setSessionCookie(c, resp.Token)
	return utils.SuccessResponse(c, http.StatusOK, "Signed in", resp)
}

// Logout clears the session cookie. The token itself stays valid until
// expiry; logout only removes it from the browser.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// Me returns the session identity resolved by the routing middleware
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "No active session")
	}
	role, _ := c.Get("user_role").(models.Role)

	return utils.SuccessResponse(c, http.StatusOK, "Session active", models.SessionUser{
		ID:   userID.String(),
		Role: role,
	})
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(jwt.TokenTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// mapAuthError translates usecase errors to HTTP responses. Credential and
// OTP failures collapse to 401 without detail; everything unexpected is a
// logged 500 with a generic body.
func (h *AuthHandler) mapAuthError(c echo.Context, err error, logMsg string) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidOrExpiredOTP):
		return utils.UnauthorizedResponse(c, "Invalid or expired code")
	case errors.Is(err, auth.ErrTooManyOTPAttempts):
		return utils.TooManyRequestsResponse(c, "Too many attempts, request a new code")
	case errors.Is(err, auth.ErrAccountPendingApproval):
		return utils.ForbiddenResponse(c, "Account is awaiting approval")
	case errors.Is(err, auth.ErrAccountRejected):
		return utils.ForbiddenResponse(c, "Account registration was rejected")
	case errors.Is(err, auth.ErrNotFound):
		return utils.NotFoundResponse(c, "No matching account")
	case errors.Is(err, auth.ErrDuplicateIdentity):
		return utils.ConflictResponse(c, "An account with this identifier already exists")
	case errors.Is(err, auth.ErrInvalidTransition):
		return utils.ConflictResponse(c, "Approval already decided")
	default:
		logger.Error(logMsg, logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Something went wrong")
	}
}
