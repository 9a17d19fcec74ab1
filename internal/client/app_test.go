// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/access-gate/internal/adapter"
	"github.com/MKhiriev/access-gate/internal/logger"
	"github.com/MKhiriev/access-gate/internal/mock"
	"github.com/MKhiriev/access-gate/internal/utils"
	"github.com/MKhiriev/access-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T) (*App, *mock.MockGateAdapter, *bytes.Buffer) {
	t.Helper()
	gate := mock.NewMockGateAdapter(gomock.NewController(t))
	var out bytes.Buffer
	return NewApp(gate, &out, logger.Nop()), gate, &out
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no command", args: nil, wantErr: ErrNoCommand},
		{name: "unknown command", args: []string{"register"}, wantErr: ErrUnknownCommand},
		{name: "ip with argument", args: []string{"ip", "x"}, wantErr: ErrUsage},
		{name: "login without password", args: []string{"login", "-u", "maria"}, wantErr: ErrUsage},
		{name: "login with unknown flag", args: []string{"login", "-x", "1"}, wantErr: ErrUsage},
		{name: "verify without token", args: []string{"verify"}, wantErr: ErrUsage},
		{name: "logout with two tokens", args: []string{"logout", "a", "b"}, wantErr: ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, out := newTestApp(t)

			err := app.Run(context.Background(), tt.args)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, out.String())
		})
	}
}

func TestRun_ClientIP(t *testing.T) {
	app, gate, out := newTestApp(t)
	gate.EXPECT().ClientIP(gomock.Any()).DoAndReturn(func(ctx context.Context) (models.IPResponse, error) {
		traceID, ok := utils.GetTraceIDFromContext(ctx)
		assert.True(t, ok)
		assert.NotEmpty(t, traceID)
		return models.IPResponse{IP: "203.0.113.7"}, nil
	})

	require.NoError(t, app.Run(context.Background(), []string{"ip"}))

	assert.JSONEq(t, `{"ip":"203.0.113.7"}`, out.String())
}

func TestRun_Hours(t *testing.T) {
	app, gate, out := newTestApp(t)
	gate.EXPECT().BusinessHours(gomock.Any()).
		Return(models.BusinessHoursResponse{IsBusinessHours: false, CurrentTime: "18/10/2026, 11:00:00", Day: 0, Hour: 11}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"hours"}))

	assert.JSONEq(t, `{"isBusinessHours":false,"currentTime":"18/10/2026, 11:00:00","day":0,"hour":11}`, out.String())
}

func TestRun_CheckIP(t *testing.T) {
	app, gate, out := newTestApp(t)
	gate.EXPECT().CheckIPAccess(gomock.Any()).
		Return(models.IPAccessResponse{Authorized: true, IP: "10.0.0.1", RequiredIP: "10.0.0.1"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"check-ip"}))

	assert.JSONEq(t, `{"authorized":true,"ip":"10.0.0.1","requiredIp":"10.0.0.1"}`, out.String())
}

func TestRun_Login(t *testing.T) {
	app, gate, out := newTestApp(t)
	expires := time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC)
	gate.EXPECT().Login(gomock.Any(), models.LoginRequest{Username: "maria", Password: "s3cret", DeviceToken: "dev-a"}).
		Return(models.SessionDescriptor{UserID: 7, Username: "maria", SessionToken: "sess_1", ExpiresAt: expires}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"login", "-u", "maria", "-p", "s3cret", "-d", "dev-a"}))

	var got models.SessionDescriptor
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "sess_1", got.SessionToken)
}

func TestRun_LoginRejected(t *testing.T) {
	app, gate, out := newTestApp(t)
	rejected := fmt.Errorf("%w: Usuário ou senha incorretos", adapter.ErrUnauthorized)
	gate.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.SessionDescriptor{}, rejected)

	err := app.Run(context.Background(), []string{"login", "-u", "maria", "-p", "wrong"})

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Empty(t, out.String())
}

func TestRun_VerifyPrintsReasonOnRejection(t *testing.T) {
	app, gate, out := newTestApp(t)
	gate.EXPECT().VerifySession(gomock.Any(), "sess_1").
		Return(models.VerifySessionResponse{Reason: "session_expired"}, fmt.Errorf("%w: session_expired", adapter.ErrUnauthorized))

	err := app.Run(context.Background(), []string{"verify", "sess_1"})

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.JSONEq(t, `{"valid":false,"reason":"session_expired"}`, out.String())
}

func TestRun_VerifyTransportError(t *testing.T) {
	app, gate, out := newTestApp(t)
	gate.EXPECT().VerifySession(gomock.Any(), "sess_1").
		Return(models.VerifySessionResponse{}, errors.New("verify session request: connection refused"))

	err := app.Run(context.Background(), []string{"verify", "sess_1"})

	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRun_Logout(t *testing.T) {
	app, gate, out := newTestApp(t)
	gate.EXPECT().Logout(gomock.Any(), "sess_1").Return(nil)

	require.NoError(t, app.Run(context.Background(), []string{"logout", " sess_1 "}))

	assert.JSONEq(t, `{"success":true}`, out.String())
}

func TestRun_Health(t *testing.T) {
	app, gate, out := newTestApp(t)
	gate.EXPECT().Health(gomock.Any()).
		Return(models.HealthResponse{Status: "ok", Timestamp: "2026-10-19T13:00:00.000Z", Store: "configured", Database: "ok"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"health"}))

	assert.JSONEq(t, `{"status":"ok","timestamp":"2026-10-19T13:00:00.000Z","store":"configured","database":"ok"}`, out.String())
}

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	Usage(&buf)

	for _, name := range []string{"ip", "hours", "check-ip", "login", "verify", "logout", "health"} {
		assert.Contains(t, buf.String(), name)
	}
}
