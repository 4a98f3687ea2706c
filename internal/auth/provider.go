package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"reviewhub-backend/internal/apperrors"
	"reviewhub-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// IdentityProvider yields the user identity stamped onto created reviews.
type IdentityProvider interface {
	Verify(ctx context.Context, token string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, email, password, name string) (*models.User, error)
}

type claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// MockProvider accepts any credentials and hands out signed tokens so the
// rest of the service can treat identity as if it came from a real provider.
// Passwords are never checked or stored.
type MockProvider struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewMockProvider(secret string, ttl time.Duration) *MockProvider {
	return &MockProvider{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (p *MockProvider) Login(ctx context.Context, email, _ string) (*models.User, error) {
	return p.Register(ctx, email, "", "")
}

// Register issues a fresh identity. Name defaults to the local part of email.
func (p *MockProvider) Register(_ context.Context, email, _, name string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperrors.InvalidInput("email is required")
	}
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	user := &models.User{
		UID:   "mock-user-" + uuid.New().String(),
		Email: email,
		Name:  name,
	}

	token, err := p.sign(user)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	user.Token = token
	return user, nil
}

// Verify returns the identity carried by a token issued by this provider.
func (p *MockProvider) Verify(_ context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, apperrors.Unauthorized("token is required")
	}

	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.Unauthorized("token has expired")
		}
		return nil, apperrors.Unauthorized("invalid token")
	}

	return &models.User{
		UID:   c.Subject,
		Email: c.Email,
		Name:  c.Name,
	}, nil
}

func (p *MockProvider) sign(user *models.User) (string, error) {
	now := p.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	})

	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
