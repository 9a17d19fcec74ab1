// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"app": {
			"allowed_ips": ["127.0.0.1"],
			"device_policy": "strict",
			"password_scheme": "bcrypt",
			"session_ttl": "4h",
			"window_check": "after_password",
			"timezone": "UTC",
			"window_start_hour": 9,
			"window_end_hour": 17,
			"log_level": "error",
			"cors_origin": "*",
			"login_rate_per_minute": 5,
			"login_rate_burst": 2
		},
		"storage": {"db": {"dsn": "sqlite://gate.db", "query_timeout": "1s"}},
		"server": {"http_address": ":8080", "request_timeout": "20s"},
		"adapter": {"server_url": "http://gate", "request_timeout": "5s", "device_token": "dev"},
		"workers": {"session_sweep_interval": "30s", "audit_queue_size": 10}
	}`), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"127.0.0.1"}, cfg.App.AllowedIPs)
	assert.Equal(t, "strict", cfg.App.DevicePolicy)
	assert.Equal(t, "bcrypt", cfg.App.PasswordScheme)
	assert.Equal(t, 4*time.Hour, cfg.App.SessionTTL)
	assert.Equal(t, "after_password", cfg.App.WindowCheck)
	assert.Equal(t, 9, cfg.App.WindowStartHour)
	assert.Equal(t, 17, cfg.App.WindowEndHour)
	assert.Equal(t, 5, cfg.App.LoginRatePerMinute)
	assert.Equal(t, "sqlite://gate.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Second, cfg.Storage.DB.QueryTimeout)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://gate", cfg.Adapter.ServerURL)
	assert.Equal(t, "dev", cfg.Adapter.DeviceToken)
	assert.Equal(t, 30*time.Second, cfg.Workers.SessionSweepInterval)
	assert.Equal(t, 10, cfg.Workers.AuditQueueSize)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParseJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"app":`), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"90s"`, want: 90 * time.Second},
		{name: "number", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(8 * time.Hour))
	require.NoError(t, err)
	assert.JSONEq(t, `"8h0m0s"`, string(b))
}
