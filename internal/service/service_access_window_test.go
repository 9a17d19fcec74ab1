// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/access-gate/internal/config"
	"github.com/MKhiriev/access-gate/internal/logger"
	"github.com/stretchr/testify/assert"
)

func testAppConfig() config.App {
	return config.App{
		AllowedIPs:      []string{"10.0.0.1"},
		DevicePolicy:    config.DevicePolicyLenient,
		PasswordScheme:  config.PasswordSchemePlain,
		SessionTTL:      8 * time.Hour,
		WindowCheck:     config.WindowCheckBeforePassword,
		Timezone:        "America/Sao_Paulo",
		WindowStartHour: 8,
		WindowEndHour:   18,
	}
}

// brt builds a moment in Brasília time (UTC-3, no daylight saving).
func brt(year int, month time.Month, day, hour, minute, second int) time.Time {
	return time.Date(year, month, day, hour+3, minute, second, 0, time.UTC)
}

func TestAccessWindowEvaluator_Evaluate(t *testing.T) {
	evaluator := NewAccessWindowEvaluator(testAppConfig(), nil, logger.Nop())

	tests := []struct {
		name        string
		now         time.Time
		wantWithin  bool
		wantWeekday int
		wantHour    int
	}{
		{name: "monday opening hour", now: brt(2026, 10, 19, 8, 0, 0), wantWithin: true, wantWeekday: 1, wantHour: 8},
		{name: "monday last minute", now: brt(2026, 10, 19, 17, 59, 59), wantWithin: true, wantWeekday: 1, wantHour: 17},
		{name: "monday closing hour", now: brt(2026, 10, 19, 18, 0, 0), wantWithin: false, wantWeekday: 1, wantHour: 18},
		{name: "monday before opening", now: brt(2026, 10, 19, 7, 59, 59), wantWithin: false, wantWeekday: 1, wantHour: 7},
		{name: "friday afternoon", now: brt(2026, 10, 23, 14, 30, 0), wantWithin: true, wantWeekday: 5, wantHour: 14},
		{name: "saturday", now: brt(2026, 10, 24, 10, 0, 0), wantWithin: false, wantWeekday: 6, wantHour: 10},
		{name: "sunday", now: brt(2026, 10, 25, 10, 0, 0), wantWithin: false, wantWeekday: 0, wantHour: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := evaluator.Evaluate(tt.now)

			assert.Equal(t, tt.wantWithin, status.Within)
			assert.Equal(t, tt.wantWeekday, status.Weekday)
			assert.Equal(t, tt.wantHour, status.Hour)
		})
	}
}

func TestAccessWindowEvaluator_UsesLocalTimeNotUTC(t *testing.T) {
	evaluator := NewAccessWindowEvaluator(testAppConfig(), nil, logger.Nop())

	// 10:00 UTC on Monday is 07:00 in Brasília.
	status := evaluator.Evaluate(time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC))

	assert.False(t, status.Within)
	assert.Equal(t, 7, status.Hour)
}

func TestAccessWindowEvaluator_CurrentTimeFormat(t *testing.T) {
	evaluator := NewAccessWindowEvaluator(testAppConfig(), nil, logger.Nop())

	status := evaluator.Evaluate(brt(2026, 3, 5, 9, 7, 3))

	assert.Equal(t, "05/03/2026, 09:07:03", status.CurrentTime)
}

func TestAccessWindowEvaluator_CustomBounds(t *testing.T) {
	cfg := testAppConfig()
	cfg.WindowStartHour = 0
	cfg.WindowEndHour = 24
	evaluator := NewAccessWindowEvaluator(cfg, nil, logger.Nop())

	assert.True(t, evaluator.Evaluate(brt(2026, 10, 19, 0, 0, 0)).Within)
	assert.True(t, evaluator.Evaluate(brt(2026, 10, 19, 23, 59, 59)).Within)
	assert.False(t, evaluator.Evaluate(brt(2026, 10, 24, 12, 0, 0)).Within)
}

func TestAccessWindowEvaluator_UnknownTimezoneFallsBack(t *testing.T) {
	cfg := testAppConfig()
	cfg.Timezone = "Nowhere/Atlantis"
	evaluator := NewAccessWindowEvaluator(cfg, nil, logger.Nop())

	status := evaluator.Evaluate(time.Date(2026, 10, 19, 11, 0, 0, 0, time.UTC))

	assert.True(t, status.Within)
	assert.Equal(t, 8, status.Hour)
	_, offset := status.LocalTime.Zone()
	assert.Equal(t, -3*60*60, offset)
}

func TestAccessWindowEvaluator_NowUsesClock(t *testing.T) {
	fixed := brt(2026, 10, 24, 9, 0, 0)
	evaluator := NewAccessWindowEvaluator(testAppConfig(), func() time.Time { return fixed }, logger.Nop())

	status := evaluator.Now()

	assert.False(t, status.Within)
	assert.Equal(t, 6, status.Weekday)
}
