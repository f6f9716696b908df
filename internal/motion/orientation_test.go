package motion

import (
	"testing"

	"github.com/Heratiki/HoloCube/internal/imu"
)

func TestTransformSingleAxisInversion(t *testing.T) {
	in := imu.RawSample{Ax: 100, Ay: 200, Az: 300, Gx: 10, Gy: 20, Gz: 30}

	tests := []struct {
		name   string
		orient Orientation
		want   imu.RawSample
	}{
		{"normal", OrientNormal, in},
		{"invert X", OrientInvertX, imu.RawSample{Ax: -100, Ay: 200, Az: 300, Gx: -10, Gy: 20, Gz: 30}},
		{"invert Y", OrientInvertY, imu.RawSample{Ax: 100, Ay: -200, Az: 300, Gx: 10, Gy: -20, Gz: 30}},
		{"invert Z", OrientInvertZ, imu.RawSample{Ax: 100, Ay: 200, Az: -300, Gx: 10, Gy: 20, Gz: -30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transform(in, tt.orient)
			if got != tt.want {
				t.Errorf("Transform = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTransformSwapXY(t *testing.T) {
	in := imu.RawSample{Ax: 100, Ay: 200, Az: 300, Gx: 10, Gy: 20, Gz: 30}
	want := imu.RawSample{Ax: 200, Ay: 100, Az: 300, Gx: 20, Gy: 10, Gz: 30}

	if got := Transform(in, OrientSwapXY); got != want {
		t.Errorf("Transform = %+v, want %+v", got, want)
	}
}

// Inversion must run strictly before the swap: invert-Y + swap-XY negates
// the original Y components and then moves them into the X slots.
func TestTransformInvertBeforeSwap(t *testing.T) {
	in := imu.RawSample{Ax: 100, Ay: 200, Az: 300, Gx: 10, Gy: 20, Gz: 30}
	want := imu.RawSample{Ax: -200, Ay: 100, Az: 300, Gx: -20, Gy: 10, Gz: 30}

	got := Transform(in, OrientInvertY|OrientSwapXY)
	if got != want {
		t.Errorf("Transform = %+v, want %+v", got, want)
	}
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	in := imu.RawSample{Ax: 100, Ay: 200, Az: 300, Gx: 10, Gy: 20, Gz: 30}
	saved := in

	Transform(in, OrientInvertX|OrientInvertY|OrientInvertZ|OrientSwapXY)
	if in != saved {
		t.Errorf("input mutated: %+v, want %+v", in, saved)
	}
}

func TestTransformIgnoresUnrecognizedBits(t *testing.T) {
	in := imu.RawSample{Ax: 100, Ay: 200, Az: 300, Gx: 10, Gy: 20, Gz: 30}

	if got := Transform(in, 0x80); got != in {
		t.Errorf("unrecognized bits alone changed the sample: %+v", got)
	}

	want := Transform(in, OrientInvertX)
	if got := Transform(in, 0x80|OrientInvertX); got != want {
		t.Errorf("unrecognized bits changed behavior: got %+v, want %+v", got, want)
	}
}

func TestOrientationUnrecognized(t *testing.T) {
	if got := Orientation(0xF0 | 0x03).Unrecognized(); got != 0xF0 {
		t.Errorf("Unrecognized = 0x%02x, want 0xF0", uint8(got))
	}
	if got := OrientSwapXY.Unrecognized(); got != 0 {
		t.Errorf("Unrecognized = 0x%02x, want 0", uint8(got))
	}
}
