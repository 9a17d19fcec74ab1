// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AccessWindowStatus describes a moment evaluated against the business-hours
// policy in the reference timezone.
type AccessWindowStatus struct {
	// Within reports whether the moment is inside the access window.
	Within bool

	// LocalTime is the evaluated moment in the reference timezone.
	LocalTime time.Time

	// Weekday is 0 for Sunday through 6 for Saturday.
	Weekday int

	// Hour is the local hour, 0-23.
	Hour int

	// CurrentTime is LocalTime formatted as "dd/mm/yyyy, HH:MM:SS".
	CurrentTime string
}
