// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the access gate.
//
// It owns the server lifecycle: startup, signal handling, graceful shutdown
// and the shutdown hooks that stop background work after the listener has
// drained.
package server
