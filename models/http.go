// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DeviceToken string `json:"deviceToken"`

	// IPAddress and UserAgent are filled by the transport layer.
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

// LogoutRequest is the body of POST /api/logout.
type LogoutRequest struct {
	SessionToken string `json:"sessionToken"`
	DeviceToken  string `json:"deviceToken,omitempty"`
}

// VerifySessionRequest is the body of POST /api/verify-session.
type VerifySessionRequest struct {
	SessionToken string `json:"sessionToken"`
}

// LoginResponse is the success body of POST /api/login.
type LoginResponse struct {
	Success bool              `json:"success"`
	Session SessionDescriptor `json:"session"`
}

// VerifySessionResponse is the body of POST /api/verify-session.
type VerifySessionResponse struct {
	Valid   bool             `json:"valid"`
	Session *SessionIdentity `json:"session,omitempty"`
	Reason  string           `json:"reason,omitempty"`
	Message string           `json:"message,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// SuccessResponse is the body of POST /api/logout.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}

// IPResponse is the body of GET /api/ip.
type IPResponse struct {
	IP string `json:"ip"`
}

// IPAccessResponse is the body of GET /api/check-ip-access.
type IPAccessResponse struct {
	Authorized bool   `json:"authorized"`
	IP         string `json:"ip"`
	RequiredIP string `json:"requiredIp"`
}

// BusinessHoursResponse is the body of GET /api/business-hours.
type BusinessHoursResponse struct {
	IsBusinessHours bool   `json:"isBusinessHours"`
	CurrentTime     string `json:"currentTime"`
	Day             int    `json:"day"`
	Hour            int    `json:"hour"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Store     string `json:"store"`
	Database  string `json:"database"`
}
