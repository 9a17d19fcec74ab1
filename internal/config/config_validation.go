// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants of the server before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}

	if !SupportedDSN(cfg.Storage.DB.DSN) || cfg.Storage.DB.QueryTimeout <= 0 {
		return fmt.Errorf("%w: unsupported dsn %q", ErrInvalidStorageConfigs, redactDSN(cfg.Storage.DB.DSN))
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.SessionSweepInterval <= 0 || cfg.Workers.AuditQueueSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (app *App) validate() error {
	if len(app.AllowedIPs) == 0 {
		return fmt.Errorf("%w: at least one allowed ip is required", ErrInvalidAppConfigs)
	}

	switch app.DevicePolicy {
	case DevicePolicyStrict, DevicePolicyLenient:
	default:
		return fmt.Errorf("%w: unknown device policy %q", ErrInvalidAppConfigs, app.DevicePolicy)
	}

	switch app.PasswordScheme {
	case PasswordSchemePlain, PasswordSchemeBcrypt:
	default:
		return fmt.Errorf("%w: unknown password scheme %q", ErrInvalidAppConfigs, app.PasswordScheme)
	}

	switch app.WindowCheck {
	case WindowCheckBeforePassword, WindowCheckAfterPassword:
	default:
		return fmt.Errorf("%w: unknown window check %q", ErrInvalidAppConfigs, app.WindowCheck)
	}

	if app.WindowStartHour < 0 || app.WindowEndHour > 24 || app.WindowStartHour >= app.WindowEndHour {
		return fmt.Errorf("%w: window hours must satisfy 0 <= start < end <= 24", ErrInvalidAppConfigs)
	}

	if app.SessionTTL <= 0 {
		return fmt.Errorf("%w: session ttl must be positive", ErrInvalidAppConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerURL == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

// SupportedDSN reports whether dsn selects one of the known drivers.
func SupportedDSN(dsn string) bool {
	for _, prefix := range []string{"postgres://", "postgresql://", "sqlite://", "file:"} {
		if strings.HasPrefix(dsn, prefix) {
			return true
		}
	}

	return false
}

// redactDSN hides everything after the scheme so credentials never reach logs.
func redactDSN(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "***"
	}
	if dsn == "" {
		return ""
	}

	return "***"
}
