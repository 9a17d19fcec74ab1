// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/access-gate/internal/service"
	"github.com/MKhiriev/access-gate/models"
)

// loginErrorResponse maps an AccessGate failure to a status and body.
// Authentication failures share one body so usernames cannot be probed.
func (h *Handler) loginErrorResponse(err error) (int, models.ErrorResponse) {
	switch {
	case errors.Is(err, service.ErrKindInput):
		return http.StatusBadRequest, models.ErrorResponse{Error: msgMissingFields}
	case errors.Is(err, service.ErrIPNotAuthorized):
		return http.StatusForbidden, models.ErrorResponse{Error: msgAccessDenied, Message: msgIPNotAuthorized}
	case errors.Is(err, service.ErrOutsideAccessWindow):
		return http.StatusForbidden, models.ErrorResponse{
			Error:   msgOutsideWindow,
			Message: fmt.Sprintf(msgLoginWindowFormat, h.windowStartHour, h.windowEndHour),
		}
	case errors.Is(err, service.ErrDeviceMismatch):
		return http.StatusForbidden, models.ErrorResponse{Error: msgDeviceNotAllowed, Message: msgDeviceBoundElse}
	case errors.Is(err, service.ErrKindAuthFailed):
		return http.StatusUnauthorized, models.ErrorResponse{Error: msgBadCredentials}
	case errors.Is(err, service.ErrDeviceStore):
		return http.StatusInternalServerError, models.ErrorResponse{Error: msgDeviceStoreFailed, Details: errorDetails(err)}
	case errors.Is(err, service.ErrSessionStore):
		return http.StatusInternalServerError, models.ErrorResponse{Error: msgSessionStoreFailed, Details: errorDetails(err)}
	default:
		return http.StatusInternalServerError, models.ErrorResponse{Error: msgInternalError, Details: errorDetails(err)}
	}
}

// verifyErrorResponse maps a SessionManager.Validate failure to a status and
// body carrying a machine-readable reason.
func (h *Handler) verifyErrorResponse(err error) (int, models.VerifySessionResponse) {
	switch {
	case errors.Is(err, service.ErrSessionTokenMissing):
		return http.StatusBadRequest, models.VerifySessionResponse{Reason: reasonTokenMissing}
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusUnauthorized, models.VerifySessionResponse{Reason: reasonNotFound}
	case errors.Is(err, service.ErrSessionUserInactive):
		return http.StatusUnauthorized, models.VerifySessionResponse{Reason: reasonUserInactive}
	case errors.Is(err, service.ErrSessionExpired):
		return http.StatusUnauthorized, models.VerifySessionResponse{Reason: reasonSessionExpired}
	case errors.Is(err, service.ErrOutsideAccessWindow):
		return http.StatusForbidden, models.VerifySessionResponse{
			Reason:  reasonOutsideWindow,
			Message: fmt.Sprintf(msgVerifyWindowFormat, h.windowStartHour, h.windowEndHour),
		}
	default:
		return http.StatusInternalServerError, models.VerifySessionResponse{Reason: reasonServerError, Error: msgVerifyFailed}
	}
}

// errorDetails returns the message of the failure without the gate step.
func errorDetails(err error) string {
	var failure *service.GateFailure
	if errors.As(err, &failure) && failure.Err != nil {
		return failure.Err.Error()
	}
	return err.Error()
}
