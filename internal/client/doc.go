// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line client of the access gate.
//
// Each subcommand maps to one gate endpoint and prints the decoded response
// as indented JSON on the configured output.
package client
