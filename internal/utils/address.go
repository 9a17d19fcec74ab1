// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net"
	"net/http"
	"strings"
)

const ipv4MappedPrefix = "::ffff:"

// ResolveClientAddress returns the originating address of a request.
//
// The first comma separated entry of X-Forwarded-For wins when present.
// Otherwise remoteAddr is used with its port stripped. The IPv4-mapped
// "::ffff:" prefix is removed in both cases. It never fails: an
// unparsable remoteAddr is returned as is.
func ResolveClientAddress(header http.Header, remoteAddr string) string {
	address := ""
	if forwarded := header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		address = strings.TrimSpace(first)
	}

	if address == "" {
		address = stripPort(remoteAddr)
	}

	return strings.TrimPrefix(address, ipv4MappedPrefix)
}

func stripPort(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}

	return host
}
