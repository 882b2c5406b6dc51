package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/JonnyWalker81/daybook/backend/internal/analysis"
	"github.com/JonnyWalker81/daybook/backend/internal/auth"
	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/pkg/supabase"
)

// PasswordAuthenticator exchanges credentials for a session. The Supabase
// client implements it.
type PasswordAuthenticator interface {
	SignInWithPassword(ctx context.Context, email, password string) (*supabase.Session, error)
}

type authService struct {
	authenticator PasswordAuthenticator
}

// NewAuthService creates a new auth service. A nil authenticator disables
// password login.
func NewAuthService(authenticator PasswordAuthenticator) AuthService {
	return &authService{authenticator: authenticator}
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if s.authenticator == nil {
		return nil, ErrLoginUnavailable
	}

	session, err := s.authenticator.SignInWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		var apiErr *supabase.Error
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusBadRequest || apiErr.StatusCode == http.StatusUnauthorized) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to login: %w", err)
	}

	return &models.AuthResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    session.ExpiresIn,
		User: models.User{
			ID:        session.User.ID,
			Email:     session.User.Email,
			CreatedAt: analysis.ParseTimestamp(session.User.CreatedAt),
		},
	}, nil
}

// Me describes the user behind the current session.
func (s *authService) Me(ctx context.Context, identity auth.Identity) *models.User {
	return &models.User{ID: identity.UserID, Email: identity.Email}
}
