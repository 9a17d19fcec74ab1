// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Client-facing messages. They are part of the API contract.
const (
	msgMissingFields      = "Campos obrigatórios ausentes"
	msgAccessDenied       = "Acesso negado"
	msgIPNotAuthorized    = "Seu IP não está autorizado a acessar este sistema"
	msgOutsideWindow      = "Fora do horário comercial"
	msgDeviceNotAllowed   = "Dispositivo não autorizado"
	msgDeviceBoundElse    = "Este usuário já está vinculado a outro dispositivo"
	msgBadCredentials     = "Usuário ou senha incorretos"
	msgDeviceStoreFailed  = "Erro ao registrar dispositivo"
	msgSessionStoreFailed = "Erro ao criar sessão"
	msgInternalError      = "Erro interno no servidor"
	msgTokenMissing       = "Session token ausente"
	msgLogoutFailed       = "Erro ao fazer logout"
	msgVerifyFailed       = "Erro ao verificar sessão"
	msgRouteNotFound      = "Rota não encontrada"
	msgTooManyRequests    = "Muitas tentativas de login"

	// window messages take the configured start and end hours
	msgLoginWindowFormat  = "Acesso de usuários permitido apenas de segunda a sexta, das %dh às %dh (horário de Brasília)"
	msgVerifyWindowFormat = "Acesso permitido apenas de segunda a sexta, das %dh às %dh (horário de Brasília)"
)

// Verify-session reason codes.
const (
	reasonTokenMissing   = "token_missing"
	reasonOutsideWindow  = "outside_business_hours"
	reasonServerError    = "server_error"
	reasonNotFound       = "session_not_found"
	reasonUserInactive   = "user_inactive"
	reasonSessionExpired = "session_expired"
)
