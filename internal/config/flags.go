// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-allowed-ips comma separated list of allowed client addresses
//	-device-policy strict|lenient
//	-password-scheme plain|bcrypt
//	-session-ttl session lifetime (e.g., "8h")
//	-window-check before_password|after_password
//	-timezone access window timezone
//	-log-level zerolog level
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-query-timeout store call timeout (e.g., "5s")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("access-gate", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var allowedIPs string
	var devicePolicy string
	var passwordScheme string
	var sessionTTL time.Duration
	var windowCheck string
	var timezone string
	var logLevel string
	var requestTimeout time.Duration
	var queryTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&allowedIPs, "allowed-ips", "", "Comma separated allowed client addresses")
	fs.StringVar(&devicePolicy, "device-policy", "", "Device binding policy (strict|lenient)")
	fs.StringVar(&passwordScheme, "password-scheme", "", "Password scheme (plain|bcrypt)")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g., 8h)")
	fs.StringVar(&windowCheck, "window-check", "", "Access window check placement (before_password|after_password)")
	fs.StringVar(&timezone, "timezone", "", "Access window timezone")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&queryTimeout, "query-timeout", 0, "Store call timeout (e.g., 5s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AllowedIPs:     splitList(allowedIPs),
			DevicePolicy:   devicePolicy,
			PasswordScheme: passwordScheme,
			SessionTTL:     sessionTTL,
			WindowCheck:    windowCheck,
			Timezone:       timezone,
			LogLevel:       logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:          databaseDSN,
				QueryTimeout: queryTimeout,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// splitList splits a comma separated list, dropping empty entries.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}

	return list
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (listen on all interfaces). It validates the port
// range and checks IP correctness unless host is "localhost".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
