package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/comitanigiacomo/rings-closed-engine/internal/core/domain"
)

type TokenIssuer interface {
	GenerateToken(userID string) (string, error)
}

type AuthService struct {
	repo            domain.UserRepository
	tokens          TokenIssuer
	defaultTimezone string
}

func NewAuthService(repo domain.UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{
		repo:            repo,
		tokens:          tokens,
		defaultTimezone: domain.DefaultTimezone,
	}
}

// WithDefaultTimezone sets the zone given to users who register without one.
func (s *AuthService) WithDefaultTimezone(tz string) *AuthService {
	if strings.TrimSpace(tz) != "" {
		s.defaultTimezone = tz
	}
	return s
}

type RegisterInput struct {
	Email    string
	Password string
	Timezone string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	id := uuid.NewString()
	user, err := domain.NewUser(id, input.Email)
	if err != nil {
		return nil, err
	}

	tz := strings.TrimSpace(input.Timezone)
	if tz == "" {
		tz = s.defaultTimezone
	}
	if err := user.SetTimezone(tz); err != nil {
		return nil, err
	}

	if err := user.SetPassword(input.Password); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("auth service: failed to create user: %w", err)
	}

	return user, nil
}

type LoginInput struct {
	Email    string
	Password string
}

// Login returns a signed token for valid credentials. Unknown emails and wrong
// passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (string, *domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("auth service: failed to load user: %w", err)
	}

	if err := user.CheckPassword(input.Password); err != nil {
		return "", nil, err
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
