package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medlink/portal/internal/pkg/models"
)

func TestOAuthGW_FetchProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer provider-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"email":"dr.house@example.com","email_verified":true,"name":"Gregory House"}`))
	}))
	defer srv.Close()

	gw := NewOAuthGW(models.OAuthConfig{GoogleUserInfoURL: srv.URL})

	profile, err := gw.FetchProfile(context.Background(), "google", "provider-token")
	require.NoError(t, err)
	assert.Equal(t, "google", profile.Provider)
	assert.Equal(t, "dr.house@example.com", profile.Email)
	assert.Equal(t, "Gregory House", profile.FullName)
}

func TestOAuthGW_FetchProfile_UnverifiedEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"email":"dr.house@example.com","email_verified":false}`))
	}))
	defer srv.Close()

	gw := NewOAuthGW(models.OAuthConfig{GoogleUserInfoURL: srv.URL})

	profile, err := gw.FetchProfile(context.Background(), "google", "provider-token")
	assert.Error(t, err)
	assert.Nil(t, profile)
}

func TestOAuthGW_FetchProfile_UnsupportedProvider(t *testing.T) {
	gw := NewOAuthGW(models.OAuthConfig{GoogleUserInfoURL: "http://localhost:0"})

	profile, err := gw.FetchProfile(context.Background(), "myspace", "provider-token")
	assert.Error(t, err)
	assert.Nil(t, profile)
}

func TestOAuthGW_FetchProfile_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	gw := NewOAuthGW(models.OAuthConfig{GoogleUserInfoURL: srv.URL})

	profile, err := gw.FetchProfile(context.Background(), "google", "bad-token")
	assert.Error(t, err)
	assert.Nil(t, profile)
}
