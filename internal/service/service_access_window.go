// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/access-gate/internal/config"
	"github.com/MKhiriev/access-gate/internal/logger"
	"github.com/MKhiriev/access-gate/models"
)

// currentTimeLayout renders a moment the way pt-BR locales print it.
const currentTimeLayout = "02/01/2006, 15:04:05"

// fallbackZone is Brasília time without tzdata. Brazil has had no daylight
// saving time since 2019.
var fallbackZone = time.FixedZone("BRT", -3*60*60)

// accessWindowEvaluator implements AccessWindowEvaluator for the window
// Monday to Friday, hour in [startHour, endHour).
type accessWindowEvaluator struct {
	location  *time.Location
	startHour int
	endHour   int
	clock     func() time.Time
}

// NewAccessWindowEvaluator builds the evaluator for cfg. A nil clock means
// time.Now. An unknown timezone falls back to a fixed UTC-3 zone.
func NewAccessWindowEvaluator(cfg config.App, clock func() time.Time, log *logger.Logger) AccessWindowEvaluator {
	if clock == nil {
		clock = time.Now
	}

	return &accessWindowEvaluator{
		location:  loadLocation(cfg.Timezone, log),
		startHour: cfg.WindowStartHour,
		endHour:   cfg.WindowEndHour,
		clock:     clock,
	}
}

func loadLocation(name string, log *logger.Logger) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Warn().Err(err).Str("timezone", name).Msg("timezone data unavailable, using fixed UTC-3")
		return fallbackZone
	}

	return location
}

func (e *accessWindowEvaluator) Evaluate(now time.Time) models.AccessWindowStatus {
	local := now.In(e.location)
	weekday := local.Weekday()
	hour := local.Hour()

	workday := weekday >= time.Monday && weekday <= time.Friday

	return models.AccessWindowStatus{
		Within:      workday && hour >= e.startHour && hour < e.endHour,
		LocalTime:   local,
		Weekday:     int(weekday),
		Hour:        hour,
		CurrentTime: local.Format(currentTimeLayout),
	}
}

func (e *accessWindowEvaluator) Now() models.AccessWindowStatus {
	return e.Evaluate(e.clock())
}
