package imu

// RawSample is a single raw 6-axis reading from the motion sensor, in
// sensor counts. Samples are transient: the engine never retains one past
// the tick that produced it.
type RawSample struct {
	Ax int16 `json:"ax"` // accel
	Ay int16 `json:"ay"`
	Az int16 `json:"az"`

	Gx int16 `json:"gx"` // gyro
	Gy int16 `json:"gy"`
	Gz int16 `json:"gz"`
}

// RawSource is anything that can provide raw samples on demand.
// Later you'll have: real MPU source, mock source, maybe replay source from file.
type RawSource interface {
	NextRaw() (RawSample, error)
}

// SourceFunc adapts a plain function to a RawSource.
type SourceFunc func() (RawSample, error)

func (f SourceFunc) NextRaw() (RawSample, error) { return f() }

// ZeroSource always returns an all-zero sample. It stands in for a sensor
// that was not detected at start-up: the polling loop keeps running and
// every tick classifies as no motion instead of erroring.
type ZeroSource struct{}

func (ZeroSource) NextRaw() (RawSample, error) { return RawSample{}, nil }
