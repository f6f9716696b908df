package motion

import (
	"testing"

	"github.com/Heratiki/HoloCube/internal/imu"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		sample imu.RawSample
		want   Gesture
	}{
		{"at rest", imu.RawSample{}, Unknown},

		// Rotation axis: strict cutoffs at ±4000.
		{"Ay just above turn threshold", imu.RawSample{Ay: 4001}, TurnLeft},
		{"Ay at turn threshold stays below rotation", imu.RawSample{Ay: 4000}, Shake},
		{"Ay just below negative turn threshold", imu.RawSample{Ay: -4001}, TurnRight},
		{"Ay at negative turn threshold stays below rotation", imu.RawSample{Ay: -4000}, Shake},
		{"Ay in shake band", imu.RawSample{Ay: 1001}, Shake},
		{"Ay at shake threshold", imu.RawSample{Ay: 1000}, Unknown},
		{"Ay negative shake band", imu.RawSample{Ay: -1001}, Shake},

		// Translation axis: strict cutoffs at ±5000.
		{"Ax just above push threshold", imu.RawSample{Ax: 5001}, Up},
		{"Ax at push threshold stays shake", imu.RawSample{Ax: 5000}, Shake},
		{"Ax just below pull threshold", imu.RawSample{Ax: -5001}, Down},
		{"Ax in shake band", imu.RawSample{Ax: 1001}, Shake},
		{"Ax at shake threshold", imu.RawSample{Ax: 1000}, Unknown},

		// Rotation axis wins over translation axis.
		{"rotation beats translation", imu.RawSample{Ay: 5000, Ax: 6000}, TurnLeft},
		{"rotation shake beats push", imu.RawSample{Ay: 2000, Ax: 6000}, Shake},

		// Gyro components never classify.
		{"gyro only", imu.RawSample{Gx: 30000, Gy: 30000, Gz: 30000}, Unknown},
		{"Z accel only", imu.RawSample{Az: 16384}, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.sample); got != tt.want {
				t.Errorf("Classify(%+v) = %v, want %v", tt.sample, got, tt.want)
			}
		})
	}
}

func TestGestureString(t *testing.T) {
	if got := TurnLeft.String(); got != "TURN_LEFT" {
		t.Errorf("TurnLeft.String() = %q, want TURN_LEFT", got)
	}
	if got := Gesture(200).String(); got != "UNKNOWN" {
		t.Errorf("out-of-range String() = %q, want UNKNOWN", got)
	}
}
