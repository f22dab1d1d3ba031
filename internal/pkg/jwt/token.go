package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/medlink/portal/internal/pkg/models"
)

// TokenTTL is the fixed session lifetime. Tokens are non-renewable; after
// expiry the subject must authenticate again.
const TokenTTL = 7 * 24 * time.Hour

// ErrMissingSecret is returned by NewCodec when no signing key is configured.
// Callers treat it as fatal: the service must not start unsigned.
var ErrMissingSecret = errors.New("jwt: signing secret is not configured")

// ErrInvalidToken covers malformed, forged and expired tokens alike.
var ErrInvalidToken = errors.New("jwt: invalid token")

// Claims are the session token claims. The role claim is fixed at issuance
// and is never re-derived from storage on verification.
type Claims struct {
	UserID uuid.UUID   `json:"user_id"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and verifies signed session tokens. Both operations are pure
// given the signing key and safe for concurrent use.
type Codec struct {
	secret []byte
	issuer string
}

// NewCodec creates a token codec from startup configuration.
func NewCodec(cfg models.JWTConfig) (*Codec, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	return &Codec{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
	}, nil
}

// Issue generates a signed token for the given subject and role with the
// fixed 7-day expiry. It returns the token string and the expiry unix time.
func (c *Codec) Issue(userID uuid.UUID, role models.Role) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(TokenTTL)

	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

// Verify parses and validates a token string. It never panics on malformed
// input; any structural, signature or expiry failure maps to ErrInvalidToken
// so callers have a single non-throwing verification path for untrusted
// cookies and headers.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
