// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPPort             = "3000"
	defaultRequestTimeout       = 30 * time.Second
	defaultQueryTimeout         = 5 * time.Second
	defaultSessionTTL           = 8 * time.Hour
	defaultTimezone             = "America/Sao_Paulo"
	defaultWindowStartHour      = 8
	defaultWindowEndHour        = 18
	defaultLogLevel             = "debug"
	defaultCORSOrigin           = "*"
	defaultLoginRatePerMinute   = 30
	defaultLoginRateBurst       = 10
	defaultSessionSweepInterval = 5 * time.Minute
	defaultAuditQueueSize       = 256
	defaultClientServerURL      = "http://localhost:3000"
)

// applyDefaults fills every unset field with its default value.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		port := cfg.Port
		if port == "" {
			port = defaultHTTPPort
		}
		cfg.Server.HTTPAddress = ":" + port
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}

	if cfg.Storage.DB.QueryTimeout == 0 {
		cfg.Storage.DB.QueryTimeout = defaultQueryTimeout
	}

	if cfg.App.DevicePolicy == "" {
		cfg.App.DevicePolicy = DevicePolicyLenient
	}
	if cfg.App.PasswordScheme == "" {
		cfg.App.PasswordScheme = PasswordSchemePlain
	}
	if cfg.App.SessionTTL == 0 {
		cfg.App.SessionTTL = defaultSessionTTL
	}
	if cfg.App.WindowCheck == "" {
		cfg.App.WindowCheck = WindowCheckBeforePassword
	}
	if cfg.App.Timezone == "" {
		cfg.App.Timezone = defaultTimezone
	}
	// 0 is a valid start hour, so only the fully unset window gets defaults
	if cfg.App.WindowStartHour == 0 && cfg.App.WindowEndHour == 0 {
		cfg.App.WindowStartHour = defaultWindowStartHour
		cfg.App.WindowEndHour = defaultWindowEndHour
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.App.CORSOrigin == "" {
		cfg.App.CORSOrigin = defaultCORSOrigin
	}
	if cfg.App.LoginRatePerMinute == 0 {
		cfg.App.LoginRatePerMinute = defaultLoginRatePerMinute
	}
	if cfg.App.LoginRateBurst == 0 {
		cfg.App.LoginRateBurst = defaultLoginRateBurst
	}

	if cfg.Workers.SessionSweepInterval == 0 {
		cfg.Workers.SessionSweepInterval = defaultSessionSweepInterval
	}
	if cfg.Workers.AuditQueueSize == 0 {
		cfg.Workers.AuditQueueSize = defaultAuditQueueSize
	}

	if cfg.Adapter.ServerURL == "" {
		cfg.Adapter.ServerURL = defaultClientServerURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
}
