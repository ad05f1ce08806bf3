package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/JonnyWalker81/moodtrail/backend/internal/logger"
	"github.com/JonnyWalker81/moodtrail/backend/internal/models"
	"github.com/JonnyWalker81/moodtrail/backend/internal/repository"
	"github.com/JonnyWalker81/moodtrail/backend/pkg/supabase"
)

// AuthProvider is the subset of the Supabase Auth client the service uses
type AuthProvider interface {
	SignIn(ctx context.Context, email, password string) (*supabase.Session, error)
	SignUp(ctx context.Context, email, password string) (*supabase.Session, error)
	GetUser(ctx context.Context, accessToken string) (*supabase.User, error)
}

type authService struct {
	provider AuthProvider
	userRepo repository.UserRepository
}

// NewAuthService creates a new auth service. A nil provider disables login
// and signup.
func NewAuthService(provider AuthProvider, userRepo repository.UserRepository) AuthService {
	return &authService{
		provider: provider,
		userRepo: userRepo,
	}
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if s.provider == nil {
		return nil, ErrAuthUnavailable
	}
	session, err := s.provider.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, providerError("login", err)
	}
	return s.respond(ctx, session)
}

func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if s.provider == nil {
		return nil, ErrAuthUnavailable
	}
	session, err := s.provider.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		return nil, providerError("signup", err)
	}
	return s.respond(ctx, session)
}

func (s *authService) CurrentUser(ctx context.Context, userID, accessToken string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err == nil || !errors.Is(err, repository.ErrNotFound) || s.provider == nil || accessToken == "" {
		return user, err
	}

	remote, perr := s.provider.GetUser(ctx, accessToken)
	if perr != nil {
		return nil, providerError("user lookup", perr)
	}
	if remote.ID != userID {
		return nil, err
	}
	return s.userRepo.Upsert(ctx, &models.User{ID: remote.ID, Email: remote.Email})
}

// respond mirrors the provider's user into the users table so entries can
// reference it
func (s *authService) respond(ctx context.Context, session *supabase.Session) (*models.AuthResponse, error) {
	user, err := s.userRepo.Upsert(ctx, &models.User{
		ID:    session.User.ID,
		Email: session.User.Email,
	})
	if err != nil {
		return nil, err
	}

	logger.Ctx(ctx).Info("user authenticated", logger.String("user_id", user.ID))
	return &models.AuthResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		User:         *user,
	}, nil
}

func providerError(op string, err error) error {
	var apiErr *supabase.Error
	if errors.As(err, &apiErr) && apiErr.Unauthorized() {
		return fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	return fmt.Errorf("%s failed: %w", op, err)
}
