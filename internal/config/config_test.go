package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHash = "$2a$12$C6UzMDM.H6dfI/f/IKcEeO5qZ8VxF1yN2sQpKX0E7e1q5YJmT0S4e"

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
store:
  driver: memory
jwt:
  secret: file-secret
editor:
  password_hash: "`+testHash+`"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, "forensic:", cfg.Store.KeyPrefix)
	assert.Equal(t, 5*1024*1024, cfg.Store.QuotaBytes)
	assert.Equal(t, ImageModeDataURI, cfg.Images.Mode)
	assert.Equal(t, "admin", cfg.Editor.Username)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
store:
  driver: memory
jwt:
  secret: file-secret
editor:
  password_hash: "`+testHash+`"
`)
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("STORE_QUOTA_BYTES", "1024")
	t.Setenv("SMTP_USE_TLS", "no")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 1024, cfg.Store.QuotaBytes)
	assert.False(t, cfg.SMTP.UseTLS)
}

func TestLoadConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "missing secret",
			body:    "editor:\n  password_hash: \"" + testHash + "\"\n",
			wantErr: "JWT secret is required",
		},
		{
			name:    "plaintext password",
			body:    "jwt:\n  secret: s\neditor:\n  password_hash: hunter2\n",
			wantErr: "bcrypt",
		},
		{
			name:    "unknown driver",
			body:    "store:\n  driver: redis\njwt:\n  secret: s\neditor:\n  password_hash: \"" + testHash + "\"\n",
			wantErr: "unsupported store driver",
		},
		{
			name:    "bad delay",
			body:    "store:\n  driver: memory\njwt:\n  secret: s\neditor:\n  password_hash: \"" + testHash + "\"\n  edit_delay: soon\n",
			wantErr: "editor edit delay",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSetFieldFromEnv_StringSlice(t *testing.T) {
	var target struct {
		Origins []string `env:"TEST_ORIGINS"`
	}
	t.Setenv("TEST_ORIGINS", "https://a.example, https://b.example,")

	require.NoError(t, processStructFields(&target))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, target.Origins)
}
