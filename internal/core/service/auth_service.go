package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/auth-service/internal/core/domain"
	"github.com/99minutos/auth-service/internal/core/ports"
)

// Public messages for unexpected failures, one per operation.
const (
	msgSignupFailed  = "Server error while signing up"
	msgLoginFailed   = "Server error while logging in"
	msgProfileFailed = "Server error while fetching profile"
	msgListFailed    = "Server error while fetching users"
)

// AuthService implements signup, login and the two token-gated reads.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, log: log}
}

// Signup registers a new user. The email lookup and the insert are not
// atomic; two concurrent signups for one email can both pass the lookup and
// only a store-level constraint would reject the second insert.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, domain.ErrMissingSignupFields
	}
	if !domain.IsValidRole(in.Role) {
		return nil, domain.ErrInvalidRole
	}

	_, err := s.repo.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, domain.NewInternalError(msgSignupFailed, err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, domain.NewInternalError(msgSignupFailed, err)
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		return nil, domain.NewInternalError(msgSignupFailed, err)
	}

	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user created")
	return created, nil
}

// Login checks the credentials and issues a token. Unknown email and wrong
// password both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrMissingLoginFields
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, domain.NewInternalError(msgLoginFailed, err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.Claims{UserID: user.ID, Role: user.Role})
	if err != nil {
		return nil, domain.NewInternalError(msgLoginFailed, err)
	}

	s.log.Debug().Str("user_id", user.ID).Msg("login succeeded")
	return &ports.LoginResult{Token: token, User: user}, nil
}

// Profile returns the user the token was issued to.
func (s *AuthService) Profile(ctx context.Context, claims domain.Claims) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, domain.NewInternalError(msgProfileFailed, err)
	}
	return user, nil
}

// ListUsers returns every stored user. Only admin claims may call it.
func (s *AuthService) ListUsers(ctx context.Context, claims domain.Claims) ([]*domain.User, error) {
	if claims.Role != domain.RoleAdmin {
		return nil, domain.ErrAdminOnly
	}

	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, domain.NewInternalError(msgListFailed, err)
	}
	return users, nil
}
