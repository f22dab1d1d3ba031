package gateway

import (
	"context"
	"fmt"

	httpclient "github.com/medlink/portal/internal/pkg/http"
	"github.com/medlink/portal/internal/pkg/models"
)

// OAuthGW resolves provider access tokens into verified profiles by calling
// the provider's userinfo endpoint.
type OAuthGW struct {
	client    *httpclient.Client
	endpoints map[string]string
}

// NewOAuthGW creates a new OAuth provider gateway
func NewOAuthGW(cfg models.OAuthConfig) *OAuthGW {
	return &OAuthGW{
		client: httpclient.NewClient("", 0),
		endpoints: map[string]string{
			"google": cfg.GoogleUserInfoURL,
		},
	}
}

// userInfo is the subset of the provider userinfo payload we consume
type userInfo struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

// FetchProfile fetches the profile the provider vouches for
func (g *OAuthGW) FetchProfile(ctx context.Context, provider, accessToken string) (*models.OAuthProfile, error) {
	endpoint, ok := g.endpoints[provider]
	if !ok {
		return nil, fmt.Errorf("unsupported oauth provider %q", provider)
	}

	var info userInfo
	if err := g.client.GetJSON(ctx, endpoint, accessToken, &info); err != nil {
		return nil, fmt.Errorf("failed to fetch %s profile: %w", provider, err)
	}

	if info.Email == "" {
		return nil, fmt.Errorf("%s profile has no email", provider)
	}
	if !info.EmailVerified {
		return nil, fmt.Errorf("%s profile email is not verified", provider)
	}

	return &models.OAuthProfile{
		Provider: provider,
		Email:    info.Email,
		FullName: info.Name,
	}, nil
}
