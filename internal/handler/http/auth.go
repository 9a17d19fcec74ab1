// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/access-gate/internal/logger"
	"github.com/MKhiriev/access-gate/internal/utils"
	"github.com/MKhiriev/access-gate/models"
)

// logTokenPrefixLength is how much of a session token is written to logs.
const logTokenPrefixLength = 20

// login runs the access gate. An unreadable body is treated as an empty one,
// so the attempt is still audited as missing fields.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	decodeBody(r, &request)

	request.IPAddress, _ = utils.GetClientAddressFromContext(ctx)
	request.UserAgent = r.UserAgent()

	descriptor, err := h.services.AccessGate.Login(ctx, request)
	if err != nil {
		status, body := h.loginErrorResponse(err)
		if status == http.StatusInternalServerError {
			log.Err(err).Msg("login failed on store")
		}
		utils.WriteJSON(w, body, status)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{Success: true, Session: descriptor}, http.StatusOK)
}

// logout ends the session. Unknown and already ended sessions succeed.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.LogoutRequest
	decodeBody(r, &request)

	if request.SessionToken == "" {
		utils.WriteJSON(w, models.ErrorResponse{Error: msgTokenMissing}, http.StatusBadRequest)
		return
	}

	if err := h.services.SessionManager.Invalidate(r.Context(), request.SessionToken); err != nil {
		log.Err(err).Msg("logout failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgLogoutFailed}, http.StatusInternalServerError)
		return
	}

	log.Info().Str("session", tokenPrefix(request.SessionToken)).Msg("logout completed")
	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) verifySession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.VerifySessionRequest
	decodeBody(r, &request)

	identity, err := h.services.SessionManager.Validate(r.Context(), request.SessionToken)
	if err != nil {
		status, body := h.verifyErrorResponse(err)
		h.metrics.RecordSessionVerification(body.Reason)
		if status == http.StatusInternalServerError {
			log.Err(err).Msg("session verification failed")
		}
		utils.WriteJSON(w, body, status)
		return
	}

	h.metrics.RecordSessionVerification("valid")
	utils.WriteJSON(w, models.VerifySessionResponse{Valid: true, Session: &identity}, http.StatusOK)
}

// decodeBody fills dst from a JSON body. Decoding errors leave dst zeroed.
func decodeBody(r *http.Request, dst any) {
	if r.Body == nil {
		return
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("request body is not valid JSON")
	}
}

func tokenPrefix(token string) string {
	if len(token) <= logTokenPrefixLength {
		return token
	}
	return token[:logTokenPrefixLength] + "..."
}
