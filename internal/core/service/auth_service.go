package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/devpath/tutorial-platform/internal/core/domain"
	"github.com/devpath/tutorial-platform/internal/core/ports"
)

// AuthService implements signup, signin and token-based identity
// resolution.
type AuthService struct {
	repo   ports.AuthRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// SignUp creates a new account. The user and its profile are persisted
// atomically; the profile username defaults to the email. Returns the
// created user together with a freshly issued session token.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	userID := uuid.New()
	user := &domain.User{
		ID:           userID,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
		Profile: &domain.Profile{
			ID:        uuid.New(),
			UserID:    userID,
			Username:  email,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("user_id", created.ID.String()).Msg("user signed up")
	return created, token, nil
}

// SignIn verifies credentials and issues a session token. Unknown email and
// wrong password deliberately share one error value so the response can
// never be used to enumerate registered accounts.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user signed in")
	return user, token, nil
}

// WhoAmI resolves a bearer token to the user it was issued for. An invalid
// token yields ErrNotAuthenticated; a valid token whose user has since been
// deleted yields ErrUserNotFound.
func (s *AuthService) WhoAmI(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, domain.ErrNotAuthenticated
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}
