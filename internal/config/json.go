// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
// Durations are accepted as strings ("8h", "30s") or nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		AllowedIPs         []string `json:"allowed_ips"`
		DevicePolicy       string   `json:"device_policy"`
		PasswordScheme     string   `json:"password_scheme"`
		SessionTTL         Duration `json:"session_ttl"`
		WindowCheck        string   `json:"window_check"`
		Timezone           string   `json:"timezone"`
		WindowStartHour    int      `json:"window_start_hour"`
		WindowEndHour      int      `json:"window_end_hour"`
		LogLevel           string   `json:"log_level"`
		CORSOrigin         string   `json:"cors_origin"`
		LoginRatePerMinute int      `json:"login_rate_per_minute"`
		LoginRateBurst     int      `json:"login_rate_burst"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string   `json:"dsn"`
			QueryTimeout Duration `json:"query_timeout"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		ServerURL      string   `json:"server_url"`
		RequestTimeout Duration `json:"request_timeout"`
		DeviceToken    string   `json:"device_token"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SessionSweepInterval Duration `json:"session_sweep_interval"`
		AuditQueueSize       int      `json:"audit_queue_size"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AllowedIPs:         jsonCfg.App.AllowedIPs,
			DevicePolicy:       jsonCfg.App.DevicePolicy,
			PasswordScheme:     jsonCfg.App.PasswordScheme,
			SessionTTL:         time.Duration(jsonCfg.App.SessionTTL),
			WindowCheck:        jsonCfg.App.WindowCheck,
			Timezone:           jsonCfg.App.Timezone,
			WindowStartHour:    jsonCfg.App.WindowStartHour,
			WindowEndHour:      jsonCfg.App.WindowEndHour,
			LogLevel:           jsonCfg.App.LogLevel,
			CORSOrigin:         jsonCfg.App.CORSOrigin,
			LoginRatePerMinute: jsonCfg.App.LoginRatePerMinute,
			LoginRateBurst:     jsonCfg.App.LoginRateBurst,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				QueryTimeout: time.Duration(jsonCfg.Storage.DB.QueryTimeout),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			ServerURL:      jsonCfg.Adapter.ServerURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			DeviceToken:    jsonCfg.Adapter.DeviceToken,
		},
		Workers: Workers{
			SessionSweepInterval: time.Duration(jsonCfg.Workers.SessionSweepInterval),
			AuditQueueSize:       jsonCfg.Workers.AuditQueueSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
