package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mkravets/tasktrack/internal/common"
)

// Token type discriminators carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the token payload: the registered claims (sub, exp, iat) plus
// the access/refresh discriminator.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"type,omitempty"`
}

// Codec signs and verifies HS256 tokens with a process-wide symmetric
// secret. Rotating the secret invalidates every previously issued token;
// that is the accepted stateless-revocation tradeoff.
type Codec struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewCodec(secret []byte, accessTTL, refreshTTL time.Duration) *Codec {
	return &Codec{secret: secret, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// EncodeAccess mints a short-lived access token for the subject.
func (c *Codec) EncodeAccess(subject string) (string, error) {
	return c.encode(subject, c.accessTTL, TokenTypeAccess)
}

// EncodeRefresh mints a refresh token for the subject.
func (c *Codec) EncodeRefresh(subject string) (string, error) {
	return c.encode(subject, c.refreshTTL, TokenTypeRefresh)
}

func (c *Codec) encode(subject string, ttl time.Duration, tokenType string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		TokenType: tokenType,
	})

	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return tokenString, nil
}

// Decode verifies the signature and returns the claims. Expiry is enforced
// here, not left to callers: a token past its exp claim is ErrInvalidToken.
// Only HS256 is accepted; alg-switching tokens are rejected.
func (c *Codec) Decode(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, common.ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
