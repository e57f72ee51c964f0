package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("debug")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "/api", cfg.Server.BasePath)
	assert.Equal(t, 30, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "lrs_session", cfg.Auth.Session.CookieName)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Same(t, cfg, Get())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("LRS_DATABASE_DRIVER", "postgres")
	t.Setenv("LRS_SERVER_PORT", "8080")
	t.Setenv("LRS_RATELIMIT_ENABLED", "true")

	cfg, err := Load("debug")
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.GetAddr())
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		mode    string
		wantErr string
	}{
		{
			name:    "unsupported driver",
			env:     map[string]string{"LRS_DATABASE_DRIVER": "oracle"},
			mode:    "debug",
			wantErr: "unsupported database driver",
		},
		{
			name:    "default session secret in release",
			mode:    "release",
			wantErr: "auth.session.secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(tt.mode)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadReleaseWithSecret(t *testing.T) {
	t.Setenv("LRS_AUTH_SESSION_SECRET", "a-real-secret")

	cfg, err := Load("release")
	require.NoError(t, err)
	assert.Equal(t, "release", cfg.Server.Mode)
}
