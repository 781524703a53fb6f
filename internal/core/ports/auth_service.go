package ports

import (
	"context"

	"github.com/99minutos/auth-service/internal/core/domain"
)

// SignupInput carries the registration payload.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// LoginResult is returned after a successful login.
type LoginResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Profile(ctx context.Context, claims domain.Claims) (*domain.User, error)
	ListUsers(ctx context.Context, claims domain.Claims) ([]*domain.User, error)
}
