// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/access-gate/internal/service"
	"github.com/MKhiriev/access-gate/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const loginBody = `{"username":"Maria","password":"s3cret","deviceToken":"dev-a"}`

func TestLogin_Success(t *testing.T) {
	env := newTestHandlerEnv(t, testConfig(), nil)
	expires := time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC)

	env.gate.EXPECT().Login(gomock.Any(), models.LoginRequest{
		Username:    "Maria",
		Password:    "s3cret",
		DeviceToken: "dev-a",
		IPAddress:   "10.0.0.1",
		UserAgent:   "agent/1.0",
	}).Return(models.SessionDescriptor{
		UserID:       7,
		Username:     "maria",
		Name:         "Maria Silva",
		SessionToken: "sess_1_abc",
		DeviceToken:  "dev-a",
		IP:           "10.0.0.1",
		ExpiresAt:    expires,
	}, nil)

	rec := env.do(http.MethodPost, "/api/login", loginBody, map[string]string{"User-Agent": "agent/1.0"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"session":{"userId":7,"username":"maria","name":"Maria Silva","isAdmin":false,
		"sessionToken":"sess_1_abc","deviceToken":"dev-a","ip":"10.0.0.1","expiresAt":"2026-10-19T20:00:00Z"}}`, rec.Body.String())
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing fields",
			err:        gateFailure("validate_input", service.ErrMissingFields),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Campos obrigatórios ausentes"}`,
		},
		{
			name:       "ip not authorized",
			err:        gateFailure("check_network_origin", service.ErrIPNotAuthorized),
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"Acesso negado","message":"Seu IP não está autorizado a acessar este sistema"}`,
		},
		{
			name:       "user not found",
			err:        gateFailure("find_user", service.ErrUserNotFound),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Usuário ou senha incorretos"}`,
		},
		{
			name:       "user inactive",
			err:        gateFailure("find_user", service.ErrUserInactive),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Usuário ou senha incorretos"}`,
		},
		{
			name:       "bad password",
			err:        gateFailure("check_password", service.ErrBadCredentials),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Usuário ou senha incorretos"}`,
		},
		{
			name:       "outside window",
			err:        gateFailure("check_access_window", service.ErrOutsideAccessWindow),
			wantStatus: http.StatusForbidden,
			wantBody: `{"error":"Fora do horário comercial",
				"message":"Acesso de usuários permitido apenas de segunda a sexta, das 8h às 18h (horário de Brasília)"}`,
		},
		{
			name:       "device mismatch",
			err:        gateFailure("authorize_device", service.ErrDeviceMismatch),
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"Dispositivo não autorizado","message":"Este usuário já está vinculado a outro dispositivo"}`,
		},
		{
			name:       "device store",
			err:        gateFailure("authorize_device", fmt.Errorf("%w: %w", service.ErrDeviceStore, errBoom)),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Erro ao registrar dispositivo","details":"device store failure: boom"}`,
		},
		{
			name:       "session store",
			err:        gateFailure("issue_session", fmt.Errorf("%w: %w", service.ErrSessionStore, errBoom)),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Erro ao criar sessão","details":"session store failure: boom"}`,
		},
		{
			name:       "credential store",
			err:        gateFailure("find_user", fmt.Errorf("%w: %w", service.ErrCredentialStore, errBoom)),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Erro interno no servidor","details":"credential store failure: boom"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestHandlerEnv(t, testConfig(), nil)
			env.gate.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.SessionDescriptor{}, tt.err)

			rec := env.do(http.MethodPost, "/api/login", loginBody, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestLogin_CustomWindowHoursInMessage(t *testing.T) {
	cfg := testConfig()
	cfg.App.WindowStartHour = 7
	cfg.App.WindowEndHour = 19
	env := newTestHandlerEnv(t, cfg, nil)
	env.gate.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.SessionDescriptor{}, gateFailure("check_access_window", service.ErrOutsideAccessWindow))

	rec := env.do(http.MethodPost, "/api/login", loginBody, nil)

	assert.Contains(t, rec.Body.String(), "das 7h às 19h")
}

func TestLogin_InvalidJSONIsStillGated(t *testing.T) {
	env := newTestHandlerEnv(t, testConfig(), nil)
	env.gate.EXPECT().Login(gomock.Any(), models.LoginRequest{IPAddress: "10.0.0.1"}).
		Return(models.SessionDescriptor{}, gateFailure("validate_input", service.ErrMissingFields))

	rec := env.do(http.MethodPost, "/api/login", `{"username":`, map[string]string{"User-Agent": ""})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		env := newTestHandlerEnv(t, testConfig(), nil)
		env.sessions.EXPECT().Invalidate(gomock.Any(), "sess_1_abcdefghijklmnopqrstuvwx").Return(nil)

		rec := env.do(http.MethodPost, "/api/logout", `{"sessionToken":"sess_1_abcdefghijklmnopqrstuvwx","deviceToken":"dev-a"}`, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		env := newTestHandlerEnv(t, testConfig(), nil)

		rec := env.do(http.MethodPost, "/api/logout", `{}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Session token ausente"}`, rec.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		env := newTestHandlerEnv(t, testConfig(), nil)
		env.sessions.EXPECT().Invalidate(gomock.Any(), "sess_1").Return(fmt.Errorf("%w: %w", service.ErrSessionStore, errBoom))

		rec := env.do(http.MethodPost, "/api/logout", `{"sessionToken":"sess_1"}`, nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Erro ao fazer logout"}`, rec.Body.String())
	})
}

func TestVerifySession_Success(t *testing.T) {
	env := newTestHandlerEnv(t, testConfig(), nil)
	env.sessions.EXPECT().Validate(gomock.Any(), "sess_1").
		Return(models.SessionIdentity{UserID: 7, Username: "maria", Name: "Maria Silva", IsAdmin: true}, nil)

	rec := env.do(http.MethodPost, "/api/verify-session", `{"sessionToken":"sess_1"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"valid":true,"session":{"userId":7,"username":"maria","name":"Maria Silva","isAdmin":true}}`, rec.Body.String())
}

func TestVerifySession_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "token missing",
			err:        service.ErrSessionTokenMissing,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"valid":false,"reason":"token_missing"}`,
		},
		{
			name:       "not found",
			err:        service.ErrSessionNotFound,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"valid":false,"reason":"session_not_found"}`,
		},
		{
			name:       "user inactive",
			err:        service.ErrSessionUserInactive,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"valid":false,"reason":"user_inactive"}`,
		},
		{
			name:       "expired",
			err:        service.ErrSessionExpired,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"valid":false,"reason":"session_expired"}`,
		},
		{
			name:       "outside window",
			err:        service.ErrOutsideAccessWindow,
			wantStatus: http.StatusForbidden,
			wantBody: `{"valid":false,"reason":"outside_business_hours",
				"message":"Acesso permitido apenas de segunda a sexta, das 8h às 18h (horário de Brasília)"}`,
		},
		{
			name:       "store failure",
			err:        fmt.Errorf("%w: %w", service.ErrSessionStore, errBoom),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"valid":false,"reason":"server_error","error":"Erro ao verificar sessão"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestHandlerEnv(t, testConfig(), nil)
			env.sessions.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(models.SessionIdentity{}, tt.err)

			rec := env.do(http.MethodPost, "/api/verify-session", `{"sessionToken":"sess_1"}`, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestVerifySession_ExpiredTwiceAnswersTheSame(t *testing.T) {
	env := newTestHandlerEnv(t, testConfig(), nil)
	env.sessions.EXPECT().Validate(gomock.Any(), "sess_1").Return(models.SessionIdentity{}, service.ErrSessionExpired).Times(2)

	first := env.do(http.MethodPost, "/api/verify-session", `{"sessionToken":"sess_1"}`, nil)
	second := env.do(http.MethodPost, "/api/verify-session", `{"sessionToken":"sess_1"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, first.Code)
	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestVerifySession_EmptyBody(t *testing.T) {
	env := newTestHandlerEnv(t, testConfig(), nil)
	env.sessions.EXPECT().Validate(gomock.Any(), "").Return(models.SessionIdentity{}, service.ErrSessionTokenMissing)

	rec := env.do(http.MethodPost, "/api/verify-session", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
