package motion

import (
	"github.com/Heratiki/HoloCube/internal/imu"
)

// Gesture is one discrete motion classification produced per sensor tick.
// Unknown covers both "no motion" and "sensor unavailable".
type Gesture uint8

const (
	TurnRight Gesture = iota
	Return
	TurnLeft
	Up
	Down
	GoForward
	Shake
	Unknown
)

var gestureNames = [...]string{
	"TURN_RIGHT", "RETURN",
	"TURN_LEFT", "UP",
	"DOWN", "GO_FORWARD",
	"SHAKE", "UNKNOWN",
}

func (g Gesture) String() string {
	if int(g) < len(gestureNames) {
		return gestureNames[g]
	}
	return "UNKNOWN"
}

// Threshold bands in raw accelerometer counts. These reproduce the physical
// tuning of the device; boundary values do not trigger.
const (
	rotateThreshold = 4000
	linearThreshold = 5000
	shakeThreshold  = 1000
)

// Classify applies the fixed threshold ladder to a transformed sample and
// returns exactly one gesture. The rotation axis (Ay) is evaluated before
// the translation axis (Ax); first match wins.
func Classify(s imu.RawSample) Gesture {
	switch {
	case s.Ay > rotateThreshold:
		return TurnLeft
	case s.Ay < -rotateThreshold:
		return TurnRight
	case s.Ay > shakeThreshold || s.Ay < -shakeThreshold:
		return Shake
	}

	switch {
	case s.Ax > linearThreshold:
		return Up
	case s.Ax < -linearThreshold:
		return Down
	case s.Ax > shakeThreshold || s.Ax < -shakeThreshold:
		return Shake
	}

	return Unknown
}
