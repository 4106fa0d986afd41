package ports

import (
	"context"

	"github.com/devpath/tutorial-platform/internal/core/domain"
)

type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*domain.User, string, error)
	SignIn(ctx context.Context, email, password string) (*domain.User, string, error)
	WhoAmI(ctx context.Context, token string) (*domain.User, error)
}
