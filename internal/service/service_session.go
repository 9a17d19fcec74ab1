// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/access-gate/internal/logger"
	"github.com/MKhiriev/access-gate/internal/store"
	"github.com/MKhiriev/access-gate/internal/utils"
	"github.com/MKhiriev/access-gate/models"
)

// sessionTokenRandomLength is the number of random [a-z0-9] characters in a
// session token.
const sessionTokenRandomLength = 24

// sessionManager is the concrete implementation of SessionManager.
type sessionManager struct {
	sessionRepository store.SessionRepository

	// window is consulted for non-admin users on every validation.
	window AccessWindowEvaluator

	// ttl is added to the issuance time to get the expiry.
	ttl time.Duration

	clock  func() time.Time
	logger *logger.Logger
}

func NewSessionManager(sessionRepository store.SessionRepository, window AccessWindowEvaluator, ttl time.Duration, clock func() time.Time, logger *logger.Logger) SessionManager {
	if clock == nil {
		clock = time.Now
	}

	return &sessionManager{
		sessionRepository: sessionRepository,
		window:            window,
		ttl:               ttl,
		clock:             clock,
		logger:            logger,
	}
}

// IssueOrRefresh gives the (user, device) pair a fresh token. An active
// session of the pair is refreshed in place, otherwise a new one is created.
// Any storage failure is returned as ErrSessionStore.
func (m *sessionManager) IssueOrRefresh(ctx context.Context, user models.User, deviceToken, address string) (models.Session, error) {
	log := logger.FromContext(ctx).With().Int64("user_id", user.UserID).Logger()

	now := m.clock()
	token, err := newSessionToken(now)
	if err != nil {
		log.Err(err).Msg("session token generation failed")
		return models.Session{}, wrapStore(ErrSessionStore, err)
	}

	session, err := m.sessionRepository.IssueOrRefresh(ctx, models.Session{
		UserID:       user.UserID,
		DeviceToken:  deviceToken,
		IPAddress:    address,
		SessionToken: token,
		CreatedAt:    now,
		LastActivity: now,
		ExpiresAt:    now.Add(m.ttl),
		IsActive:     true,
	})
	if err != nil {
		log.Err(err).Msg("session issuance failed")
		return models.Session{}, wrapStore(ErrSessionStore, err)
	}

	return session, nil
}

// Validate checks sessionToken and returns the owner's identity.
//
// Checks run in order: presence, owner active, expiry, access window for
// non-admins. An inactive owner or an expired session deactivates the
// session. A session rejected only by the access window stays active.
//
// A session that was deactivated by expiry (not by logout) keeps answering
// ErrSessionExpired, so repeated validation of an expired token is stable.
func (m *sessionManager) Validate(ctx context.Context, sessionToken string) (models.SessionIdentity, error) {
	if sessionToken == "" {
		return models.SessionIdentity{}, ErrSessionTokenMissing
	}

	log := logger.FromContext(ctx)

	found, err := m.sessionRepository.FindSessionByToken(ctx, sessionToken)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.SessionIdentity{}, ErrSessionNotFound
		}
		log.Err(err).Msg("session lookup failed")
		return models.SessionIdentity{}, wrapStore(ErrSessionStore, err)
	}

	session, user := found.Session, found.User
	now := m.clock()

	if !session.IsActive {
		if session.LogoutAt == nil && session.IsExpired(now) {
			return models.SessionIdentity{}, ErrSessionExpired
		}
		return models.SessionIdentity{}, ErrSessionNotFound
	}

	if !user.IsActive {
		if err = m.deactivate(ctx, sessionToken); err != nil {
			return models.SessionIdentity{}, err
		}
		return models.SessionIdentity{}, ErrSessionUserInactive
	}

	if session.IsExpired(now) {
		if err = m.deactivate(ctx, sessionToken); err != nil {
			return models.SessionIdentity{}, err
		}
		return models.SessionIdentity{}, ErrSessionExpired
	}

	if !user.IsAdmin && !m.window.Evaluate(now).Within {
		return models.SessionIdentity{}, ErrOutsideAccessWindow
	}

	if err = m.sessionRepository.TouchSession(ctx, sessionToken, now); err != nil {
		log.Err(err).Int64("session_id", session.SessionID).Msg("session touch failed")
		return models.SessionIdentity{}, wrapStore(ErrSessionStore, err)
	}

	return user.Identity(), nil
}

// Invalidate ends the session by logout. Unknown and already inactive tokens
// are not an error.
func (m *sessionManager) Invalidate(ctx context.Context, sessionToken string) error {
	if sessionToken == "" {
		return ErrSessionTokenMissing
	}

	changed, err := m.sessionRepository.InvalidateSession(ctx, sessionToken, m.clock())
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("session invalidation failed")
		return wrapStore(ErrSessionStore, err)
	}
	if !changed {
		logger.FromContext(ctx).Debug().Msg("logout of an inactive or unknown session")
	}

	return nil
}

func (m *sessionManager) SweepExpired(ctx context.Context) (int64, error) {
	swept, err := m.sessionRepository.DeactivateExpiredSessions(ctx, m.clock())
	if err != nil {
		return 0, wrapStore(ErrSessionStore, err)
	}

	return swept, nil
}

func (m *sessionManager) deactivate(ctx context.Context, sessionToken string) error {
	if err := m.sessionRepository.DeactivateSession(ctx, sessionToken); err != nil {
		logger.FromContext(ctx).Err(err).Msg("session deactivation failed")
		return wrapStore(ErrSessionStore, err)
	}
	return nil
}

// newSessionToken returns "sess_<unix-ms>_<24 random [a-z0-9]>".
func newSessionToken(now time.Time) (string, error) {
	random, err := utils.RandomAlphanumeric(sessionTokenRandomLength)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("sess_%d_%s", now.UnixMilli(), random), nil
}
