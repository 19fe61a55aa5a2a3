package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/forensicsite/internal/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
)

func newAuthenticator(t *testing.T) *EditorAuthenticator {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewEditorAuthenticator("admin", string(hash))
}

func TestLogin(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()

	assert.NoError(t, a.Login(ctx, "admin", "s3cret"))
	assert.ErrorIs(t, a.Login(ctx, "admin", "wrong"), apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, a.Login(ctx, "root", "s3cret"), apperrors.ErrInvalidCredentials)
}

func TestAuthorize(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()

	assert.NoError(t, a.Authorize(ctx, "admin", "s3cret"))
	assert.ErrorIs(t, a.Authorize(ctx, "admin", "S3CRET"), apperrors.ErrPasswordMismatch)
	assert.ErrorIs(t, a.Authorize(ctx, "someone", "s3cret"), apperrors.ErrPermissionDenied)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, a.Authorize(cancelled, "admin", "s3cret"), context.Canceled)
}
