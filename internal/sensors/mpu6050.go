// Copyright (c) 2026 HoloCube Project
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Heratiki/HoloCube/internal/imu"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// ErrSensorUnavailable is reported when the MPU-6050 does not answer its
// probe within the start-up window. It is non-fatal: callers degrade motion
// input to imu.ZeroSource instead of aborting.
var ErrSensorUnavailable = errors.New("motion sensor unavailable")

// MPU-6050 registers used by this driver.
const (
	mpuAddr = 0x68

	regSmplrtDiv  = 0x19 // sample rate divider
	regConfig     = 0x1A // DLPF config
	regGyroCfg    = 0x1B // gyro full-scale range
	regAccelCfg   = 0x1C // accel full-scale range
	regAccelXoutH = 0x3B // start of the accel/temp/gyro burst block
	regPwrMgmt1   = 0x6B
	regWhoAmI     = 0x75
)

const (
	probeTimeout = 5 * time.Second
	probeRetry   = 100 * time.Millisecond

	calibSamples  = 200
	calibInterval = 2 * time.Millisecond
	gravityCounts = 16384 // 1 g at the ±2g range
)

// Offsets are stored calibration offsets in raw sensor counts, subtracted
// from every reading.
type Offsets struct {
	AccelX, AccelY, AccelZ int16
	GyroX, GyroY, GyroZ    int16
}

// MPU6050 reads raw 6-axis samples from an MPU-6050 over I²C.
type MPU6050 struct {
	bus     i2c.BusCloser
	dev     *i2c.Dev
	offsets Offsets
}

// NewMPU6050 opens the MPU-6050 on the named I²C bus (empty selects the
// first available), probes it within a bounded window, and configures it
// for gesture sampling at ±2g / ±250°/s. A probe failure wraps
// ErrSensorUnavailable.
func NewMPU6050(busName string, offsets Offsets) (*MPU6050, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("imu: periph host init: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("imu: I2C open %q: %w", busName, err)
	}

	m := &MPU6050{
		bus:     bus,
		dev:     &i2c.Dev{Bus: bus, Addr: mpuAddr},
		offsets: offsets,
	}

	if err := m.probe(); err != nil {
		bus.Close()
		return nil, err
	}
	if err := m.configure(); err != nil {
		bus.Close()
		return nil, err
	}

	log.Printf("imu: MPU-6050 ready on %q", busName)
	return m, nil
}

// probe polls WHO_AM_I until the sensor answers or the start-up window
// runs out. The window matches the firmware's 5 s wait for the part to
// come up after power-on.
func (m *MPU6050) probe() error {
	deadline := time.Now().Add(probeTimeout)
	for {
		var who [1]byte
		err := m.dev.Tx([]byte{regWhoAmI}, who[:])
		if err == nil && who[0] == mpuAddr {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("imu: no response at 0x%02x: %w", mpuAddr, ErrSensorUnavailable)
		}
		time.Sleep(probeRetry)
	}
}

// configure wakes the part and sets DLPF, sample rate, and the ±2g/±250°/s
// ranges the gesture thresholds are tuned for.
func (m *MPU6050) configure() error {
	regs := []struct{ reg, val byte }{
		{regPwrMgmt1, 0x00},  // wake, internal oscillator
		{regSmplrtDiv, 0x04}, // 1 kHz / (1+4) = 200 Hz
		{regConfig, 0x03},    // DLPF 44 Hz
		{regGyroCfg, 0x00},   // ±250°/s
		{regAccelCfg, 0x00},  // ±2g
	}
	for _, r := range regs {
		if err := m.writeReg(r.reg, r.val); err != nil {
			return err
		}
	}
	return nil
}

func (m *MPU6050) writeReg(reg, val byte) error {
	if err := m.dev.Tx([]byte{reg, val}, nil); err != nil {
		return fmt.Errorf("imu: write reg 0x%02x: %w", reg, err)
	}
	return nil
}

// NextRaw reads one offset-corrected 6-axis sample.
func (m *MPU6050) NextRaw() (imu.RawSample, error) {
	s, err := m.readRaw()
	if err != nil {
		return imu.RawSample{}, err
	}
	s.Ax -= m.offsets.AccelX
	s.Ay -= m.offsets.AccelY
	s.Az -= m.offsets.AccelZ
	s.Gx -= m.offsets.GyroX
	s.Gy -= m.offsets.GyroY
	s.Gz -= m.offsets.GyroZ
	return s, nil
}

// readRaw burst-reads the accel/temp/gyro block without applying offsets.
func (m *MPU6050) readRaw() (imu.RawSample, error) {
	// ACCEL_XOUT_H..GYRO_ZOUT_L: ax, ay, az, temp, gx, gy, gz, big-endian.
	var buf [14]byte
	if err := m.dev.Tx([]byte{regAccelXoutH}, buf[:]); err != nil {
		return imu.RawSample{}, fmt.Errorf("imu: burst read: %w", err)
	}

	be := func(i int) int16 { return int16(binary.BigEndian.Uint16(buf[i : i+2])) }
	return imu.RawSample{
		Ax: be(0),
		Ay: be(2),
		Az: be(4),
		Gx: be(8),
		Gy: be(10),
		Gz: be(12),
	}, nil
}

// Calibrate averages a run of still readings and replaces the stored
// offsets, compensating the accel Z axis for gravity. The device must be
// at rest with logical Z up. This blocks for roughly
// calibSamples*calibInterval and belongs on the init path, never in the
// polling loop.
func (m *MPU6050) Calibrate() (Offsets, error) {
	var sum [6]int64
	for i := 0; i < calibSamples; i++ {
		s, err := m.readRaw()
		if err != nil {
			return Offsets{}, fmt.Errorf("imu: calibration read %d: %w", i, err)
		}
		sum[0] += int64(s.Ax)
		sum[1] += int64(s.Ay)
		sum[2] += int64(s.Az)
		sum[3] += int64(s.Gx)
		sum[4] += int64(s.Gy)
		sum[5] += int64(s.Gz)
		time.Sleep(calibInterval)
	}

	n := int64(calibSamples)
	o := Offsets{
		AccelX: int16(sum[0] / n),
		AccelY: int16(sum[1] / n),
		AccelZ: int16(sum[2]/n - gravityCounts),
		GyroX:  int16(sum[3] / n),
		GyroY:  int16(sum[4] / n),
		GyroZ:  int16(sum[5] / n),
	}
	m.offsets = o
	return o, nil
}

// Offsets returns the offsets currently applied to readings.
func (m *MPU6050) Offsets() Offsets { return m.offsets }

// SetOffsets replaces the applied calibration offsets.
func (m *MPU6050) SetOffsets(o Offsets) { m.offsets = o }

// Close releases the I²C bus.
func (m *MPU6050) Close() error {
	return m.bus.Close()
}
