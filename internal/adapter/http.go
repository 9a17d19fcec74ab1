// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/access-gate/internal/config"
	"github.com/MKhiriev/access-gate/internal/logger"
	"github.com/MKhiriev/access-gate/internal/utils"
	"github.com/MKhiriev/access-gate/models"
	"github.com/go-resty/resty/v2"
)

type httpGateAdapter struct {
	client *utils.HTTPClient

	deviceToken string

	logger *logger.Logger
}

// NewHTTPGateAdapter constructs the HTTP implementation of [GateAdapter]. It
// normalises the base URL from cfg.ServerURL and bounds every request with
// cfg.RequestTimeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a URL.
func NewHTTPGateAdapter(cfg config.ClientConfig, logger *logger.Logger) (GateAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	return &httpGateAdapter{
		client:      utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		deviceToken: strings.TrimSpace(cfg.DeviceToken),
		logger:      logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ClientIP implements [GateAdapter] with GET /api/ip.
func (h *httpGateAdapter) ClientIP(ctx context.Context) (models.IPResponse, error) {
	var result models.IPResponse

	resp, err := h.request(ctx).
		SetResult(&result).
		Get("/api/ip")
	if err != nil {
		return result, fmt.Errorf("client ip request: %w", err)
	}

	return result, mapHTTPError(resp)
}

// BusinessHours implements [GateAdapter] with GET /api/business-hours.
func (h *httpGateAdapter) BusinessHours(ctx context.Context) (models.BusinessHoursResponse, error) {
	var result models.BusinessHoursResponse

	resp, err := h.request(ctx).
		SetResult(&result).
		Get("/api/business-hours")
	if err != nil {
		return result, fmt.Errorf("business hours request: %w", err)
	}

	return result, mapHTTPError(resp)
}

// CheckIPAccess implements [GateAdapter] with GET /api/check-ip-access.
func (h *httpGateAdapter) CheckIPAccess(ctx context.Context) (models.IPAccessResponse, error) {
	var result models.IPAccessResponse

	resp, err := h.request(ctx).
		SetResult(&result).
		Get("/api/check-ip-access")
	if err != nil {
		return result, fmt.Errorf("check ip access request: %w", err)
	}

	return result, mapHTTPError(resp)
}

// Login implements [GateAdapter] with POST /api/login.
func (h *httpGateAdapter) Login(ctx context.Context, request models.LoginRequest) (models.SessionDescriptor, error) {
	if request.DeviceToken == "" {
		request.DeviceToken = h.deviceToken
	}

	var result models.LoginResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&result).
		Post("/api/login")
	if err != nil {
		return models.SessionDescriptor{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionDescriptor{}, err
	}

	h.logger.Debug().
		Int64("user_id", result.Session.UserID).
		Time("expires_at", result.Session.ExpiresAt).
		Msg("session issued")

	return result.Session, nil
}

// VerifySession implements [GateAdapter] with POST /api/verify-session.
func (h *httpGateAdapter) VerifySession(ctx context.Context, sessionToken string) (models.VerifySessionResponse, error) {
	var result models.VerifySessionResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.VerifySessionRequest{SessionToken: sessionToken}).
		SetResult(&result).
		SetError(&result).
		Post("/api/verify-session")
	if err != nil {
		return result, fmt.Errorf("verify session request: %w", err)
	}

	return result, mapHTTPError(resp)
}

// Logout implements [GateAdapter] with POST /api/logout.
func (h *httpGateAdapter) Logout(ctx context.Context, sessionToken string) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LogoutRequest{SessionToken: sessionToken, DeviceToken: h.deviceToken}).
		Post("/api/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// Health implements [GateAdapter] with GET /health.
func (h *httpGateAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var result models.HealthResponse

	resp, err := h.request(ctx).
		SetResult(&result).
		Get("/health")
	if err != nil {
		return result, fmt.Errorf("health request: %w", err)
	}

	return result, mapHTTPError(resp)
}

// request starts a request carrying the trace ID from ctx, if any.
func (h *httpGateAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader("X-Trace-ID", traceID)
	}
	return req
}
