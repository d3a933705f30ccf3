package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/msomdec/storefront/internal/domain"
)

// errInvalidCredentials is returned for both unknown emails and wrong
// passwords so callers cannot tell them apart.
var errInvalidCredentials = errors.New("invalid credentials")

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	Username  string
	Firstname string
	Email     string
	Password  string
}

// AuthService handles account registration and login.
type AuthService struct {
	users    domain.UserRepository
	hasher   PasswordHasher
	issuer   TokenIssuer
	verifier TokenVerifier
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, tokens *TokenSigner, bcryptCost int) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   NewPasswordHasher(bcryptCost),
		issuer:   tokens,
		verifier: tokens,
	}
}

// Register creates a new user account after validating inputs.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Firstname = strings.TrimSpace(in.Firstname)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Firstname == "" || in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: missing required fields", domain.ErrInvalidInput)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Firstname:    in.Firstname,
		Email:        in.Email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	return user, nil
}

// Login verifies credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: missing credentials", domain.ErrInvalidInput)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("%w: %w", domain.ErrUnauthenticated, errInvalidCredentials)
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return "", fmt.Errorf("%w: %w", domain.ErrUnauthenticated, errInvalidCredentials)
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}

// VerifyToken returns the identity carried by a bearer token.
func (s *AuthService) VerifyToken(token string) (domain.Identity, error) {
	return s.verifier.Verify(token)
}
