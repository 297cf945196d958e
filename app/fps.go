// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import "time"

// fpsInterval is how often the frame rate is reported.
const fpsInterval = 10 * time.Second

// fpsCounter measures the frame rate over fixed intervals.
type fpsCounter struct {
	start  time.Time
	frames int
}

func newFPSCounter(now time.Time) *fpsCounter {
	return &fpsCounter{start: now}
}

// frame counts one frame at time now. When a full interval has passed
// it returns the average frame rate over it and starts a new interval.
func (fc *fpsCounter) frame(now time.Time) (fps float64, ok bool) {
	fc.frames++
	dur := now.Sub(fc.start)
	if dur < fpsInterval {
		return 0, false
	}
	fps = float64(fc.frames) / dur.Seconds()
	fc.frames = 0
	fc.start = now
	return fps, true
}
