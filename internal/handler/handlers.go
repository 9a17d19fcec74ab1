// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/access-gate/internal/config"
	"github.com/MKhiriev/access-gate/internal/handler/http"
	"github.com/MKhiriev/access-gate/internal/logger"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(deps http.Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(deps, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
