package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"geofence": map[string]any{
			"radiusMeters": 500,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"auth": map[string]any{
			"jwtSecret": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "GEOFENCE_RADIUSMETERS", want: "geofence.radiusMeters"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "AUTH_JWTSECRET", want: "auth.jwtSecret"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Storage.Driver = StorageDriverSQLite

	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "reminders.db", cfg.Storage.SQLitePath)
	assert.Equal(t, GeofenceProviderMemory, cfg.Geofence.Provider)
	assert.InDelta(t, 500.0, cfg.Geofence.RadiusMeters, 0.0001)
	assert.Equal(t, 24*time.Hour, cfg.Geofence.Expiration)
	assert.Equal(t, AuthProviderFirebase, cfg.Auth.Provider)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name: "sqlite with jwt is valid",
			mutate: func(c *Config) {
				c.Storage.Driver = StorageDriverSQLite
				c.Auth.Provider = AuthProviderJWT
				c.Auth.JWTSecret = "secret"
			},
		},
		{
			name: "postgres without section",
			mutate: func(c *Config) {
				c.Storage.Driver = StorageDriverPostgres
			},
			wantErr: "postgres section is missing",
		},
		{
			name: "valkey without addresses",
			mutate: func(c *Config) {
				c.Storage.Driver = StorageDriverSQLite
				c.Geofence.Provider = GeofenceProviderValkey
			},
			wantErr: "valkey.addresses is empty",
		},
		{
			name: "jwt without secret",
			mutate: func(c *Config) {
				c.Storage.Driver = StorageDriverSQLite
				c.Auth.Provider = AuthProviderJWT
			},
			wantErr: "auth.jwtSecret is empty",
		},
		{
			name: "unknown storage driver",
			mutate: func(c *Config) {
				c.Storage.Driver = "mysql"
			},
			wantErr: "unsupported storage driver",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Storage.Driver = StorageDriverSQLite
			tt.mutate(cfg)
			cfg.applyDefaults()

			err := cfg.validate()
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
