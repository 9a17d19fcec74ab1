// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/MKhiriev/access-gate/internal/config"
	"github.com/MKhiriev/access-gate/internal/logger"
	"github.com/MKhiriev/access-gate/internal/metrics"
	"github.com/MKhiriev/access-gate/models"
)

// Check names, also used as the step label of login metrics.
const (
	stepValidateInput      = "validate_input"
	stepCheckNetworkOrigin = "check_network_origin"
	stepFindUser           = "find_user"
	stepCheckAccessWindow  = "check_access_window"
	stepCheckPassword      = "check_password"
	stepAuthorizeDevice    = "authorize_device"
	stepIssueSession       = "issue_session"
)

// Audit reasons stored with failed attempts.
const (
	reasonMissingFields   = "Campos obrigatórios ausentes"
	reasonIPNotAuthorized = "IP não autorizado"
	reasonUserNotFound    = "Usuário não encontrado"
	reasonUserInactive    = "Usuário inativo"
	reasonUserLookup      = "Erro ao buscar usuário"
	reasonOutsideWindow   = "Fora do horário comercial"
	reasonBadPassword     = "Senha incorreta"
	reasonDeviceMismatch  = "Dispositivo não autorizado"
	reasonDeviceStore     = "Erro ao registrar dispositivo"
	reasonSessionStore    = "Erro ao criar sessão"
)

// loginState carries values between checks of one login.
type loginState struct {
	request models.LoginRequest
	user    models.User
	session models.Session
}

type gateCheck struct {
	name string
	run  func(ctx context.Context, state *loginState) *GateFailure
}

// accessGate is the concrete implementation of AccessGate. Checks run in
// order and the first failure ends the login.
type accessGate struct {
	allowedAddresses []string

	credentials CredentialVerifier
	window      AccessWindowEvaluator
	devices     DeviceAuthorizer
	sessions    SessionManager
	attempts    AttemptLogger

	checks  []gateCheck
	clock   func() time.Time
	metrics metrics.MetricsCollector
	logger  *logger.Logger
}

// GateDependencies groups the collaborators of the access gate.
type GateDependencies struct {
	Credentials CredentialVerifier
	Window      AccessWindowEvaluator
	Devices     DeviceAuthorizer
	Sessions    SessionManager
	Attempts    AttemptLogger
	Metrics     metrics.MetricsCollector
	Clock       func() time.Time
}

func NewAccessGate(deps GateDependencies, cfg config.App, logger *logger.Logger) AccessGate {
	gate := &accessGate{
		allowedAddresses: slices.Clone(cfg.AllowedIPs),
		credentials:      deps.Credentials,
		window:           deps.Window,
		devices:          deps.Devices,
		sessions:         deps.Sessions,
		attempts:         deps.Attempts,
		clock:            deps.Clock,
		metrics:          deps.Metrics,
		logger:           logger,
	}
	if gate.clock == nil {
		gate.clock = time.Now
	}
	if gate.metrics == nil {
		gate.metrics = metrics.Nop{}
	}

	gate.checks = gate.buildChecks(cfg.WindowCheck)
	return gate
}

func (g *accessGate) buildChecks(windowCheck string) []gateCheck {
	checks := []gateCheck{
		{name: stepValidateInput, run: g.validateInput},
		{name: stepCheckNetworkOrigin, run: g.checkNetworkOrigin},
		{name: stepFindUser, run: g.findUser},
	}

	window := gateCheck{name: stepCheckAccessWindow, run: g.checkAccessWindow}
	password := gateCheck{name: stepCheckPassword, run: g.checkPassword}
	if windowCheck == config.WindowCheckAfterPassword {
		checks = append(checks, password, window)
	} else {
		checks = append(checks, window, password)
	}

	return append(checks,
		gateCheck{name: stepAuthorizeDevice, run: g.authorizeDevice},
		gateCheck{name: stepIssueSession, run: g.issueSession},
	)
}

// Login runs every check and issues a session on success. A failure is
// returned as *GateFailure wrapping one of the package sentinels. Exactly one
// attempt is logged per call.
func (g *accessGate) Login(ctx context.Context, request models.LoginRequest) (models.SessionDescriptor, error) {
	log := logger.FromContext(ctx).With().
		Str("username", request.Username).
		Str("ip", request.IPAddress).
		Logger()

	state := &loginState{request: request}
	for _, check := range g.checks {
		failure := check.run(ctx, state)
		if failure == nil {
			continue
		}

		failure.Step = check.name
		log.Info().Str("step", check.name).Str("reason", failure.Reason).Msg("login rejected")
		g.record(ctx, request, check.name, &failure.Reason)
		return models.SessionDescriptor{}, failure
	}

	log.Info().Int64("user_id", state.user.UserID).Msg("login succeeded")
	g.record(ctx, request, "", nil)

	return models.SessionDescriptor{
		UserID:       state.user.UserID,
		Username:     state.user.Username,
		Name:         state.user.Name,
		IsAdmin:      state.user.IsAdmin,
		SessionToken: state.session.SessionToken,
		DeviceToken:  request.DeviceToken,
		IP:           request.IPAddress,
		ExpiresAt:    state.session.ExpiresAt.UTC(),
	}, nil
}

func (g *accessGate) IsAddressAllowed(address string) bool {
	return slices.Contains(g.allowedAddresses, address)
}

func (g *accessGate) AllowedAddresses() []string {
	return slices.Clone(g.allowedAddresses)
}

func (g *accessGate) record(ctx context.Context, request models.LoginRequest, step string, reason *string) {
	success := reason == nil
	g.metrics.RecordLoginAttempt(success, step)

	g.attempts.Log(ctx, models.LoginAttempt{
		Username:      request.Username,
		IPAddress:     request.IPAddress,
		DeviceToken:   request.DeviceToken,
		Success:       success,
		FailureReason: reason,
		Timestamp:     g.clock(),
	})
}

func (g *accessGate) validateInput(_ context.Context, state *loginState) *GateFailure {
	r := state.request
	if r.Username == "" || r.Password == "" || r.DeviceToken == "" {
		return &GateFailure{Reason: reasonMissingFields, Err: ErrMissingFields}
	}
	return nil
}

func (g *accessGate) checkNetworkOrigin(_ context.Context, state *loginState) *GateFailure {
	if !g.IsAddressAllowed(state.request.IPAddress) {
		return &GateFailure{Reason: reasonIPNotAuthorized, Err: ErrIPNotAuthorized}
	}
	return nil
}

func (g *accessGate) findUser(ctx context.Context, state *loginState) *GateFailure {
	user, err := g.credentials.FindUser(ctx, state.request.Username)
	switch {
	case err == nil:
		state.user = user
		return nil
	case errors.Is(err, ErrUserNotFound):
		return &GateFailure{Reason: reasonUserNotFound, Err: err}
	case errors.Is(err, ErrUserInactive):
		return &GateFailure{Reason: reasonUserInactive, Err: err}
	default:
		return &GateFailure{Reason: reasonUserLookup, Err: err}
	}
}

func (g *accessGate) checkAccessWindow(_ context.Context, state *loginState) *GateFailure {
	if state.user.IsAdmin {
		return nil
	}
	if !g.window.Evaluate(g.clock()).Within {
		return &GateFailure{Reason: reasonOutsideWindow, Err: ErrOutsideAccessWindow}
	}
	return nil
}

func (g *accessGate) checkPassword(_ context.Context, state *loginState) *GateFailure {
	if err := g.credentials.CheckPassword(state.user, state.request.Password); err != nil {
		return &GateFailure{Reason: reasonBadPassword, Err: err}
	}
	return nil
}

func (g *accessGate) authorizeDevice(ctx context.Context, state *loginState) *GateFailure {
	_, err := g.devices.Authorize(ctx, state.user.UserID, state.request)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrDeviceMismatch):
		return &GateFailure{Reason: reasonDeviceMismatch, Err: err}
	default:
		return &GateFailure{Reason: reasonDeviceStore, Err: err}
	}
}

func (g *accessGate) issueSession(ctx context.Context, state *loginState) *GateFailure {
	session, err := g.sessions.IssueOrRefresh(ctx, state.user, state.request.DeviceToken, state.request.IPAddress)
	if err != nil {
		return &GateFailure{Reason: reasonSessionStore, Err: err}
	}
	state.session = session
	return nil
}
