package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/forensicsite/internal/app/auth"
	"github.com/yigit/forensicsite/internal/app/models/dto"
	"github.com/yigit/forensicsite/internal/pkg/auth"
)

// AuthService handles authentication operations
type AuthService struct {
	editor     *appauth.EditorAuthenticator
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(editor *appauth.EditorAuthenticator, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		editor:     editor,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login checks the editor credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)

	if err := s.editor.Login(ctx, username, req.Password); err != nil {
		s.logger.Warn().Str("username", username).Msg("Failed login attempt")
		return nil, err
	}

	token, expiresIn, err := s.jwtService.GenerateToken(username, auth.RoleEditor)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("Failed to generate access token")
		return nil, err
	}

	s.logger.Info().Str("username", username).Msg("Editor signed in")
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		Username:    username,
	}, nil
}
