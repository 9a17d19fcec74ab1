// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/access-gate/internal/adapter"
	"github.com/MKhiriev/access-gate/internal/logger"
	"github.com/MKhiriev/access-gate/internal/utils"
	"github.com/MKhiriev/access-gate/models"
)

const usage = `usage: access-gate-client <command> [arguments]

commands:
  ip                                   show the address the gate sees
  hours                                show the access window status
  check-ip                             check whether this address may log in
  login -u <user> -p <pass> [-d <dev>] log in and print the session
  verify <session-token>               verify a session token
  logout <session-token>               end a session
  health                               show the gate health report
`

type command func(ctx context.Context, args []string) (any, error)

type App struct {
	gate     adapter.GateAdapter
	out      io.Writer
	commands map[string]command
	traceIDs *utils.UUIDGenerator
	logger   *logger.Logger
}

func NewApp(gate adapter.GateAdapter, out io.Writer, logger *logger.Logger) *App {
	app := &App{
		gate:     gate,
		out:      out,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}

	app.commands = map[string]command{
		"ip":       app.clientIP,
		"hours":    app.businessHours,
		"check-ip": app.checkIP,
		"login":    app.login,
		"verify":   app.verify,
		"logout":   app.logout,
		"health":   app.health,
	}

	return app
}

// Usage writes the command summary to w.
func Usage(w io.Writer) {
	fmt.Fprint(w, usage)
}

// Run executes one subcommand. Every request carries a fresh trace ID so a
// client call can be matched with the gate's logs. A result is printed even
// when the gate rejects the request, as long as the response was decoded.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	traceID := a.traceIDs.Generate()
	ctx = utils.WithTraceID(ctx, traceID)
	a.logger.Debug().Str("command", args[0]).Str("trace_id", traceID).Msg("running command")

	result, err := cmd(ctx, args[1:])
	if result != nil {
		if printErr := a.print(result); printErr != nil {
			return printErr
		}
	}

	return err
}

func (a *App) print(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

func (a *App) clientIP(ctx context.Context, args []string) (any, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("%w: ip takes no arguments", ErrUsage)
	}
	response, err := a.gate.ClientIP(ctx)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (a *App) businessHours(ctx context.Context, args []string) (any, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("%w: hours takes no arguments", ErrUsage)
	}
	response, err := a.gate.BusinessHours(ctx)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (a *App) checkIP(ctx context.Context, args []string) (any, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("%w: check-ip takes no arguments", ErrUsage)
	}
	response, err := a.gate.CheckIPAccess(ctx)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (a *App) login(ctx context.Context, args []string) (any, error) {
	var request models.LoginRequest

	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&request.Username, "u", "", "username")
	fs.StringVar(&request.Password, "p", "", "password")
	fs.StringVar(&request.DeviceToken, "d", "", "device token, overrides CLIENT_DEVICE_TOKEN")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if strings.TrimSpace(request.Username) == "" || request.Password == "" {
		return nil, fmt.Errorf("%w: login requires -u and -p", ErrUsage)
	}

	session, err := a.gate.Login(ctx, request)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// verify prints the decoded response for rejected tokens too, so the reason
// is visible.
func (a *App) verify(ctx context.Context, args []string) (any, error) {
	token, err := singleToken("verify", args)
	if err != nil {
		return nil, err
	}

	response, err := a.gate.VerifySession(ctx, token)
	if err != nil && response.Reason == "" {
		return nil, err
	}
	return response, err
}

func (a *App) logout(ctx context.Context, args []string) (any, error) {
	token, err := singleToken("logout", args)
	if err != nil {
		return nil, err
	}

	if err = a.gate.Logout(ctx, token); err != nil {
		return nil, err
	}
	return models.SuccessResponse{Success: true}, nil
}

func (a *App) health(ctx context.Context, args []string) (any, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("%w: health takes no arguments", ErrUsage)
	}
	response, err := a.gate.Health(ctx)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func singleToken(name string, args []string) (string, error) {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return "", fmt.Errorf("%w: %s requires exactly one session token", ErrUsage, name)
	}
	return strings.TrimSpace(args[0]), nil
}
