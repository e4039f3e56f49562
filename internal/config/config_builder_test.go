// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validConfig returns defaults plus the two required secrets.
func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.SessionSecret = "secret"
	cfg.Storage.DB.DSN = "postgres://localhost/invoices"
	return cfg
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilderFailsValidation verifies that an empty config is
// rejected: the session secret and DSN are mandatory.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	require.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that non-zero values from later
// configs override earlier ones while zero values keep the earlier value.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{SessionSecret: "env-secret", Version: "1.0.0"}, Storage: Storage{DB: DB{DSN: "env-dsn"}}},
		&StructuredConfig{App: App{SessionSecret: "flag-secret"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag-secret", cfg.App.SessionSecret)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "env-dsn", cfg.Storage.DB.DSN)
	assert.Equal(t, 24*time.Hour, cfg.App.SessionDuration)
	assert.Equal(t, ":5000", cfg.Server.HTTPAddress)
	assert.Equal(t, 20, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, 30*time.Second, cfg.Storage.DB.ConnMaxIdleTime)
	assert.Equal(t, 2*time.Second, cfg.Storage.DB.ConnectTimeout)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing secret", mutate: func(c *StructuredConfig) { c.App.SessionSecret = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown environment", mutate: func(c *StructuredConfig) { c.App.Environment = "staging" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "unknown driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no listen address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "mail without timeout", mutate: func(c *StructuredConfig) {
			c.Adapter.Mail.APIURL = "https://mail.example.com"
			c.Adapter.Mail.RequestTimeout = 0
		}, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero cleanup interval", mutate: func(c *StructuredConfig) { c.Workers.SessionCleanupInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApp_IsProduction(t *testing.T) {
	assert.True(t, App{Environment: EnvProduction}.IsProduction())
	assert.False(t, App{Environment: EnvDevelopment}.IsProduction())
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_SESSION_ISSUER", "env-issuer")

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.SessionIssuer)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-session-secret", "flag-secret"}))

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-secret", b.configs[0].App.SessionSecret)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.App.SessionIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-issuer", b.configs[1].App.SessionIssuer)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs carry a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first"
	last := StructuredJSONConfig{}
	last.App.Version = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// TestFullChain_JSONOverridesFlagsAndEnv exercises the whole builder chain
// the way GetStructuredConfig assembles it.
func TestFullChain_JSONOverridesFlagsAndEnv(t *testing.T) {
	t.Setenv("APP_SESSION_SECRET", "env-secret")
	t.Setenv("STORAGE_DB_DATABASE_URI", "env-dsn")

	payload := StructuredJSONConfig{}
	payload.Server.HTTPAddress = ":9000"
	path := writeTempJSONConfig(t, payload)

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-c", path, "-d", "flag-dsn"}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.App.SessionSecret)
	assert.Equal(t, "flag-dsn", cfg.Storage.DB.DSN)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
	assert.Equal(t, EnvDevelopment, cfg.App.Environment)
}
