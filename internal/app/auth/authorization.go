package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/yigit/forensicsite/internal/pkg/apperrors"
	pkgauth "github.com/yigit/forensicsite/internal/pkg/auth"
	"github.com/yigit/forensicsite/internal/pkg/logger"
)

// EditorAuthenticator checks the single editor identity held in configuration.
// The password is only ever compared against a bcrypt hash.
type EditorAuthenticator struct {
	username     string
	passwordHash string
}

// NewEditorAuthenticator creates an authenticator for username and its bcrypt hash.
func NewEditorAuthenticator(username, passwordHash string) *EditorAuthenticator {
	return &EditorAuthenticator{
		username:     username,
		passwordHash: passwordHash,
	}
}

// Login verifies the credentials used to obtain an access token.
func (a *EditorAuthenticator) Login(ctx context.Context, username, password string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !a.knownUser(username) || !pkgauth.CheckPassword(a.passwordHash, password) {
		logger.Warn().Str("username", username).Msg("Rejected editor login")
		return apperrors.ErrInvalidCredentials
	}
	return nil
}

// Authorize re-checks the password of an already signed-in editor before a save.
func (a *EditorAuthenticator) Authorize(ctx context.Context, username, password string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !a.knownUser(username) {
		return fmt.Errorf("%w: unknown editor %q", apperrors.ErrPermissionDenied, username)
	}
	if !pkgauth.CheckPassword(a.passwordHash, password) {
		return apperrors.ErrPasswordMismatch
	}
	return nil
}

func (a *EditorAuthenticator) knownUser(username string) bool {
	return subtle.ConstantTimeCompare([]byte(a.username), []byte(username)) == 1
}
