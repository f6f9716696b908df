package motion

import (
	"github.com/Heratiki/HoloCube/internal/imu"
)

// Orientation describes how the sensor is mounted relative to the device's
// logical frame, as a small bit-set persisted in the settings store.
type Orientation uint8

const (
	OrientNormal  Orientation = 0
	OrientInvertX Orientation = 0x01
	OrientInvertY Orientation = 0x02
	OrientInvertZ Orientation = 0x04
	OrientSwapXY  Orientation = 0x08
)

// orientRecognized is the set of bits Transform understands. Bits outside
// it are ignored, never rejected.
const orientRecognized = OrientInvertX | OrientInvertY | OrientInvertZ | OrientSwapXY

// Unrecognized reports the bits of o outside the recognized mask.
func (o Orientation) Unrecognized() Orientation {
	return o &^ orientRecognized
}

// Transform maps a raw sample into device-logical axes. Each set invert
// flag negates that axis on both the accelerometer and the gyro; the XY
// swap, if set, runs after all inversions. The caller's sample is never
// modified.
func Transform(s imu.RawSample, o Orientation) imu.RawSample {
	o &= orientRecognized

	if o&OrientInvertX != 0 {
		s.Ax = -s.Ax
		s.Gx = -s.Gx
	}
	if o&OrientInvertY != 0 {
		s.Ay = -s.Ay
		s.Gy = -s.Gy
	}
	if o&OrientInvertZ != 0 {
		s.Az = -s.Az
		s.Gz = -s.Gz
	}

	if o&OrientSwapXY != 0 {
		s.Ax, s.Ay = s.Ay, s.Ax
		s.Gx, s.Gy = s.Gy, s.Gx
	}

	return s
}
