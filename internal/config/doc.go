// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the access gate.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file (path from CONFIG or -c/-config)
//  2. Environment variables (a .env file in the working directory is loaded
//     first; variables already set in the process environment win)
//  3. Command-line flags
//
// The merged result is completed with defaults and validated once at startup;
// it is treated as immutable afterwards. The main entry points are
// [GetStructuredConfig] for the server and [GetClientConfig] for the CLI client.
package config
