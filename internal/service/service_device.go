// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/access-gate/internal/config"
	"github.com/MKhiriev/access-gate/internal/logger"
	"github.com/MKhiriev/access-gate/internal/store"
	"github.com/MKhiriev/access-gate/models"
)

// DevicePolicy selects how device bindings are enforced.
type DevicePolicy int

const (
	// DevicePolicyLenient replaces the user's binding on every login.
	DevicePolicyLenient DevicePolicy = iota
	// DevicePolicyStrict binds the first device and rejects any other.
	DevicePolicyStrict
)

// unknownUserAgent labels devices that sent no User-Agent header.
const unknownUserAgent = "Unknown"

// ParseDevicePolicy converts a config value into a DevicePolicy.
func ParseDevicePolicy(value string) (DevicePolicy, error) {
	switch value {
	case config.DevicePolicyLenient, "":
		return DevicePolicyLenient, nil
	case config.DevicePolicyStrict:
		return DevicePolicyStrict, nil
	default:
		return 0, fmt.Errorf("unknown device policy %q", value)
	}
}

func (p DevicePolicy) String() string {
	if p == DevicePolicyStrict {
		return config.DevicePolicyStrict
	}
	return config.DevicePolicyLenient
}

type deviceAuthorizer struct {
	deviceRepository store.DeviceRepository
	policy           DevicePolicy
	clock            func() time.Time
	logger           *logger.Logger
}

func NewDeviceAuthorizer(deviceRepository store.DeviceRepository, policy DevicePolicy, clock func() time.Time, logger *logger.Logger) DeviceAuthorizer {
	if clock == nil {
		clock = time.Now
	}

	return &deviceAuthorizer{
		deviceRepository: deviceRepository,
		policy:           policy,
		clock:            clock,
		logger:           logger,
	}
}

// Authorize binds or checks the device described by request for userID.
//
// Returns ErrDeviceMismatch under the strict policy when the user is bound
// to another token, and ErrDeviceStore wrapping any storage failure.
func (a *deviceAuthorizer) Authorize(ctx context.Context, userID int64, request models.LoginRequest) (models.AuthorizedDevice, error) {
	device := a.newDevice(userID, request)

	if a.policy == DevicePolicyStrict {
		return a.authorizeStrict(ctx, device)
	}

	if err := a.deviceRepository.UpsertDevice(ctx, device); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("device upsert failed")
		return models.AuthorizedDevice{}, wrapStore(ErrDeviceStore, err)
	}

	return device, nil
}

func (a *deviceAuthorizer) authorizeStrict(ctx context.Context, device models.AuthorizedDevice) (models.AuthorizedDevice, error) {
	log := logger.FromContext(ctx).With().Int64("user_id", device.UserID).Logger()

	bound, err := a.deviceRepository.FindDeviceByUserID(ctx, device.UserID)
	if errors.Is(err, store.ErrDeviceNotFound) {
		err = a.deviceRepository.InsertDevice(ctx, device)
		if err == nil {
			return device, nil
		}
		if !errors.Is(err, store.ErrDeviceAlreadyBound) {
			log.Err(err).Msg("device insert failed")
			return models.AuthorizedDevice{}, wrapStore(ErrDeviceStore, err)
		}
		// a concurrent login bound the user first
		bound, err = a.deviceRepository.FindDeviceByUserID(ctx, device.UserID)
	}
	if err != nil {
		log.Err(err).Msg("device lookup failed")
		return models.AuthorizedDevice{}, wrapStore(ErrDeviceStore, err)
	}

	if bound.DeviceToken != device.DeviceToken {
		log.Warn().Msg("login from a device other than the bound one")
		return models.AuthorizedDevice{}, ErrDeviceMismatch
	}

	if err = a.deviceRepository.TouchDevice(ctx, device); err != nil {
		if errors.Is(err, store.ErrDeviceNotUpdated) {
			return models.AuthorizedDevice{}, ErrDeviceMismatch
		}
		log.Err(err).Msg("device refresh failed")
		return models.AuthorizedDevice{}, wrapStore(ErrDeviceStore, err)
	}

	device.DeviceID = bound.DeviceID
	device.CreatedAt = bound.CreatedAt
	return device, nil
}

func (a *deviceAuthorizer) newDevice(userID int64, request models.LoginRequest) models.AuthorizedDevice {
	now := a.clock()

	userAgent := request.UserAgent
	if userAgent == "" {
		userAgent = unknownUserAgent
	}
	label := truncate(userAgent, models.DeviceLabelMaxLength)

	return models.AuthorizedDevice{
		UserID:      userID,
		DeviceToken: request.DeviceToken,
		Fingerprint: fmt.Sprintf("%s_%d", request.DeviceToken, now.UnixMilli()),
		DeviceName:  label,
		UserAgent:   label,
		IPAddress:   request.IPAddress,
		IsActive:    true,
		LastAccess:  now,
		CreatedAt:   now,
	}
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
