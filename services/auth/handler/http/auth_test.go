package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medlink/portal/internal/pkg/models"
	"github.com/medlink/portal/services/auth"
	"github.com/medlink/portal/services/auth/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Auth: models.AuthConfig{CookieName: "portal_session"},
	}
}

func postJSON(t *testing.T, e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	res := rec.Result()
	defer res.Body.Close()
	for _, cookie := range res.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestLogin_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	userID := uuid.New()
	mockUC.EXPECT().
		LoginWithPassword(gomock.Any(), "admin@medlink.example", "hunter2", models.RoleAdmin).
		Return(&models.AuthResponse{
			Token: "signed.jwt.token",
			User:  models.SessionUser{ID: userID.String(), Role: models.RoleAdmin},
		}, nil)

	e := echo.New()
	c, rec := postJSON(t, e, "/auth/login",
		`{"identifier": "admin@medlink.example", "password": "hunter2", "role": "admin"}`)

	// Act
	err := h.Login(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(t, rec, "portal_session")
	require.NotNil(t, cookie, "login must set the session cookie")
	assert.Equal(t, "signed.jwt.token", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	mockUC.EXPECT().
		LoginWithPassword(gomock.Any(), "admin@medlink.example", "wrong", models.RoleAdmin).
		Return(nil, auth.ErrInvalidCredentials)

	e := echo.New()
	c, rec := postJSON(t, e, "/auth/login",
		`{"identifier": "admin@medlink.example", "password": "wrong", "role": "admin"}`)

	// Act
	err := h.Login(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, sessionCookie(t, rec, "portal_session"))
}

func TestLogin_PendingDoctorForbidden(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	mockUC.EXPECT().
		LoginWithPassword(gomock.Any(), "doc@medlink.example", "pw", models.RoleDoctor).
		Return(nil, auth.ErrAccountPendingApproval)

	e := echo.New()
	c, rec := postJSON(t, e, "/auth/login",
		`{"identifier": "doc@medlink.example", "password": "pw", "role": "doctor"}`)

	// Act
	err := h.Login(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, sessionCookie(t, rec, "portal_session"))
}

func TestLogin_MissingFields(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	e := echo.New()
	c, rec := postJSON(t, e, "/auth/login", `{"identifier": "admin@medlink.example"}`)

	// Act
	err := h.Login(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestOTP_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	mockUC.EXPECT().
		RequestOTP(gomock.Any(), "+62812345678").
		Return("", nil)

	e := echo.New()
	c, rec := postJSON(t, e, "/auth/otp/request", `{"phone": "+62812345678"}`)

	// Act
	err := h.RequestOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "otp", "code must not leak into the response")
}

func TestRequestOTP_UnknownPhone(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	mockUC.EXPECT().
		RequestOTP(gomock.Any(), "+62899999999").
		Return("", auth.ErrNotFound)

	e := echo.New()
	c, rec := postJSON(t, e, "/auth/otp/request", `{"phone": "+62899999999"}`)

	// Act
	err := h.RequestOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVerifyOTP_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	mockUC.EXPECT().
		VerifyOTP(gomock.Any(), "+62812345678", "482913").
		Return(&models.AuthResponse{
			Token: "signed.jwt.token",
			User:  models.SessionUser{ID: uuid.NewString(), Role: models.RolePatient},
		}, nil)

	e := echo.New()
	c, rec := postJSON(t, e, "/auth/otp/verify", `{"phone": "+62812345678", "otp": "482913"}`)

	// Act
	err := h.VerifyOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, sessionCookie(t, rec, "portal_session"))
}

func TestVerifyOTP_TooManyAttempts(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	mockUC.EXPECT().
		VerifyOTP(gomock.Any(), "+62812345678", "000000").
		Return(nil, auth.ErrTooManyOTPAttempts)

	e := echo.New()
	c, rec := postJSON(t, e, "/auth/otp/verify", `{"phone": "+62812345678", "otp": "000000"}`)

	// Act
	err := h.VerifyOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRegisterPatient_Conflict(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	mockUC.EXPECT().
		RegisterPatient(gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrDuplicateIdentity)

	e := echo.New()
	c, rec := postJSON(t, e, "/auth/register/patient",
		`{"full_name": "Pat", "email": "pat@medlink.example", "phone": "+62812345678", "password": "hunter2"}`)

	// Act
	err := h.RegisterPatient(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterDoctor_NoSessionCookie(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	mockUC.EXPECT().
		RegisterDoctor(gomock.Any(), gomock.Any()).
		Return(&models.Identity{
			ID:     uuid.New(),
			Email:  "doc@medlink.example",
			Status: models.DoctorStatusPending,
		}, nil)

	e := echo.New()
	c, rec := postJSON(t, e, "/auth/register/doctor",
		`{"full_name": "Dr. Example", "email": "doc@medlink.example", "password": "stethoscope"}`)

	// Act
	err := h.RegisterDoctor(c)

	// Assert: created, but no session until approval
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, sessionCookie(t, rec, "portal_session"))
}

func TestOAuthCallback_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	mockUC.EXPECT().
		ResolveOAuth(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *models.OAuthCallbackRequest) (*models.AuthResponse, error) {
			assert.Equal(t, "google", req.Provider)
			return &models.AuthResponse{
				Token: "signed.jwt.token",
				User:  models.SessionUser{ID: uuid.NewString(), Role: models.RolePendingDoctor},
			}, nil
		})

	e := echo.New()
	c, rec := postJSON(t, e, "/auth/oauth/callback",
		`{"provider": "google", "access_token": "ya29.token"}`)

	// Act
	err := h.OAuthCallback(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, sessionCookie(t, rec, "portal_session"))
}

func TestOAuthCallback_UpstreamFailure(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	mockUC.EXPECT().
		ResolveOAuth(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("provider unreachable"))

	e := echo.New()
	c, rec := postJSON(t, e, "/auth/oauth/callback",
		`{"provider": "google", "access_token": "ya29.token"}`)

	// Act
	err := h.OAuthCallback(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLogout_ClearsCookie(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	e := echo.New()
	c, rec := postJSON(t, e, "/auth/logout", "")

	// Act
	err := h.Logout(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(t, rec, "portal_session")
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestMe_WithSession(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	userID := uuid.New()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/portal/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("user_role", models.RolePatient)

	// Act
	err := h.Me(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
	assert.Contains(t, rec.Body.String(), string(models.RolePatient))
}

func TestMe_NoSession(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/portal/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Act
	err := h.Me(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
