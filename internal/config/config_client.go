// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration of the command line client, assembled
// from the same sources as the server configuration.
type ClientConfig struct {
	// ServerURL is the base URL of the gate.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// DeviceToken is sent with login requests when set.
	DeviceToken string
	// LogLevel is the zerolog level of the client logger.
	LogLevel string
}

// GetClientConfig builds and validates the client configuration. Server-only
// requirements (allowed addresses, DSN) are not enforced here.
//
// Client configuration comes from the dotenv file, the environment and the
// optional JSON file; command line arguments belong to the client's own
// subcommands and are not parsed as configuration flags.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withJSON().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		ServerURL:      cfg.Adapter.ServerURL,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		DeviceToken:    cfg.Adapter.DeviceToken,
		LogLevel:       cfg.App.LogLevel,
	}

	return clientCfg, clientCfg.validate()
}
