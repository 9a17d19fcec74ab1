// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/MKhiriev/access-gate/internal/config"
	"github.com/MKhiriev/access-gate/internal/logger"
	"github.com/MKhiriev/access-gate/internal/store"
	"github.com/MKhiriev/access-gate/models"
	"golang.org/x/crypto/bcrypt"
)

// credentialVerifier is the concrete implementation of CredentialVerifier.
// Stored passwords are compared either byte for byte ("plain") or as bcrypt
// hashes ("bcrypt").
type credentialVerifier struct {
	// userRepository looks users up by normalized username.
	userRepository store.UserRepository

	// passwordScheme is one of config.PasswordSchemePlain or
	// config.PasswordSchemeBcrypt.
	passwordScheme string

	logger *logger.Logger
}

func NewCredentialVerifier(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) CredentialVerifier {
	return &credentialVerifier{
		userRepository: userRepository,
		passwordScheme: cfg.PasswordScheme,
		logger:         logger,
	}
}

// Verify authenticates username and password.
//
// Returns the matched user or:
//   - ErrMissingFields if either argument is empty.
//   - ErrUserNotFound if no single user matches.
//   - ErrUserInactive if the matched user is deactivated.
//   - ErrBadCredentials if the password does not match.
//   - ErrCredentialStore wrapping any other store failure.
func (v *credentialVerifier) Verify(ctx context.Context, username, password string) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, ErrMissingFields
	}

	user, err := v.FindUser(ctx, username)
	if err != nil {
		return models.User{}, err
	}

	if err = v.CheckPassword(user, password); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// FindUser normalizes username (trim and lowercase) and resolves it to
// exactly one active user. Ambiguous matches count as not found.
func (v *credentialVerifier) FindUser(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	normalized := normalizeUsername(username)
	if normalized == "" {
		return models.User{}, ErrUserNotFound
	}

	users, err := v.userRepository.FindUsersByUsername(ctx, normalized)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("username", normalized).Msg("user lookup failed")
		return models.User{}, wrapStore(ErrCredentialStore, err)
	}

	if len(users) != 1 {
		log.Warn().Str("username", normalized).Int("matches", len(users)).Msg("username does not resolve to a single user")
		return models.User{}, ErrUserNotFound
	}

	user := users[0]
	if !user.IsActive {
		return models.User{}, ErrUserInactive
	}

	return user, nil
}

// CheckPassword compares password against the stored value of user.
func (v *credentialVerifier) CheckPassword(user models.User, password string) error {
	switch v.passwordScheme {
	case config.PasswordSchemeBcrypt:
		err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
		if err == nil {
			return nil
		}
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			v.logger.Warn().Err(err).Int64("user_id", user.UserID).Msg("stored password is not a valid bcrypt hash")
		}
		return ErrBadCredentials
	default:
		if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
			return ErrBadCredentials
		}
		return nil
	}
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
