// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultedValidConfig(t *testing.T) *StructuredConfig {
	t.Helper()
	cfg := validConfig()
	cfg.applyDefaults()
	require.NoError(t, cfg.validate())
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "no allowed ips", mutate: func(cfg *StructuredConfig) { cfg.App.AllowedIPs = nil }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown device policy", mutate: func(cfg *StructuredConfig) { cfg.App.DevicePolicy = "loose" }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown password scheme", mutate: func(cfg *StructuredConfig) { cfg.App.PasswordScheme = "md5" }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown window check", mutate: func(cfg *StructuredConfig) { cfg.App.WindowCheck = "never" }, wantErr: ErrInvalidAppConfigs},
		{name: "inverted window", mutate: func(cfg *StructuredConfig) { cfg.App.WindowStartHour = 18; cfg.App.WindowEndHour = 8 }, wantErr: ErrInvalidAppConfigs},
		{name: "window past midnight", mutate: func(cfg *StructuredConfig) { cfg.App.WindowEndHour = 25 }, wantErr: ErrInvalidAppConfigs},
		{name: "negative ttl", mutate: func(cfg *StructuredConfig) { cfg.App.SessionTTL = -1 }, wantErr: ErrInvalidAppConfigs},
		{name: "empty dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "unsupported dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "mysql://root@db" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty address", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "zero queue", mutate: func(cfg *StructuredConfig) { cfg.Workers.AuditQueueSize = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "valid", mutate: func(cfg *StructuredConfig) {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultedValidConfig(t)
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_DSNRedacted(t *testing.T) {
	cfg := defaultedValidConfig(t)
	cfg.Storage.DB.DSN = "mysql://root:secret@db"

	err := cfg.validate()
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret")
}

func TestSupportedDSN(t *testing.T) {
	assert.True(t, SupportedDSN("postgres://u@h/db"))
	assert.True(t, SupportedDSN("postgresql://u@h/db"))
	assert.True(t, SupportedDSN("sqlite://gate.db"))
	assert.True(t, SupportedDSN("file:gate.db?cache=shared"))
	assert.False(t, SupportedDSN(""))
	assert.False(t, SupportedDSN("mysql://u@h/db"))
}

func TestClientConfigValidate(t *testing.T) {
	assert.NoError(t, (&ClientConfig{ServerURL: "http://x", RequestTimeout: 1}).validate())
	assert.ErrorIs(t, (&ClientConfig{RequestTimeout: 1}).validate(), ErrInvalidAdapterConfigs)
	assert.ErrorIs(t, (&ClientConfig{ServerURL: "http://x"}).validate(), ErrInvalidAdapterConfigs)
}
