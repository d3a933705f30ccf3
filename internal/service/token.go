package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/msomdec/storefront/internal/domain"
)

// TokenIssuer signs bearer tokens for a user.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// TokenVerifier turns a bearer token back into an identity.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// TokenSigner issues and verifies HS256 bearer tokens.
type TokenSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenSigner creates a TokenSigner. An empty secret is accepted so the
// server can start; issuing then fails with domain.ErrMisconfigured and every
// verification is rejected.
func NewTokenSigner(secret string, ttl time.Duration) *TokenSigner {
	return &TokenSigner{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for user carrying its id, email and username.
func (s *TokenSigner) Issue(user *domain.User) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("%w: JWT secret not configured", domain.ErrMisconfigured)
	}

	now := s.now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"email":    user.Email,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses tokenString and returns the identity it carries.
func (s *TokenSigner) Verify(tokenString string) (domain.Identity, error) {
	if len(s.secret) == 0 || tokenString == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return domain.Identity{}, fmt.Errorf("%w: invalid token payload", domain.ErrUnauthenticated)
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return domain.Identity{}, fmt.Errorf("%w: invalid token payload", domain.ErrUnauthenticated)
	}
	username, _ := claims["username"].(string)

	return domain.Identity{UserID: sub, Email: email, Username: username}, nil
}

