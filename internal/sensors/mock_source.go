// Copyright (c) 2026 HoloCube Project
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"math"
	"time"

	"github.com/Heratiki/HoloCube/internal/imu"
)

type mockSource struct {
	start time.Time
}

// NewMockSource creates a mock raw-sample source that sweeps the rotation
// axis back and forth through the turn thresholds, for development without
// hardware.
func NewMockSource() imu.RawSource {
	return &mockSource{start: time.Now()}
}

func (m *mockSource) NextRaw() (imu.RawSample, error) {
	elapsed := time.Since(m.start).Seconds()

	return imu.RawSample{
		Ay: int16(6000 * math.Sin(elapsed/2)),
		Az: 16384,
	}, nil
}
