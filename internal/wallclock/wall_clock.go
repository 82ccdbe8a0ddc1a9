// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package wallclock

import "time"

type (
	// WallClock abstracts the subset of package time used for log records.
	WallClock interface {
		Now() time.Time
	}

	wallClock struct{}
)

// Now indirects time.Now.
func (wallClock) Now() time.Time {
	return time.Now()
}

// Instance is a WallClock singleton used for indirect time-based references to
// package time. Test code can set the instance to control apparent time.
var Instance WallClock = wallClock{}
