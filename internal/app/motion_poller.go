package app

import (
	"errors"
	"log"
	"time"

	"github.com/Heratiki/HoloCube/internal/config"
	"github.com/Heratiki/HoloCube/internal/imu"
	"github.com/Heratiki/HoloCube/internal/motion"
	"github.com/Heratiki/HoloCube/internal/sensors"
)

// RunMotionPoller drives the gesture engine from the shared polling loop:
// one PollAction per sample tick, consuming latched events as they appear
// and logging the encoder snapshot at the slower action-log cadence.
//
// configPath is needed back here because auto-calibration persists fresh
// offsets into the settings file.
func RunMotionPoller(configPath string, useMock bool) error {
	log.Println("starting HoloCube motion poller")

	cfg := config.Get()

	var src imu.RawSource
	if useMock {
		log.Println("using mock motion source")
		src = sensors.NewMockSource()
	} else {
		src = openSensor(cfg, configPath)
	}

	engine := motion.NewEngine(src, motion.Orientation(cfg.IMUOrientation))

	ticker := time.NewTicker(time.Duration(cfg.IMUSampleInterval) * time.Millisecond)
	defer ticker.Stop()

	logEvery := time.Duration(cfg.ActionLogInterval) * time.Millisecond
	lastLog := time.Now()

	for range ticker.C {
		act := engine.PollAction()
		if act.Valid {
			enc := engine.Encoder()
			log.Printf("action: %s sustained=%v encoder diff=%d pressed=%v",
				act.Active, act.Sustained, enc.Diff, enc.Pressed)
			engine.Consume()
		}

		if time.Since(lastLog) >= logEvery {
			enc := engine.Encoder()
			log.Printf("encoder: diff=%d pressed=%v", enc.Diff, enc.Pressed)
			lastLog = time.Now()
		}
	}
	return nil
}

// openSensor opens the real MPU-6050, honoring the auto-calibration flag.
// A probe failure degrades motion input to a permanent no-op source rather
// than killing the device: everything else (display, LEDs) keeps working.
func openSensor(cfg *config.Config, configPath string) imu.RawSource {
	mpu, err := sensors.NewMPU6050(cfg.I2CBus, sensors.Offsets{
		AccelX: cfg.XAccelOffset,
		AccelY: cfg.YAccelOffset,
		AccelZ: cfg.ZAccelOffset,
		GyroX:  cfg.XGyroOffset,
		GyroY:  cfg.YGyroOffset,
		GyroZ:  cfg.ZGyroOffset,
	})
	if err != nil {
		if errors.Is(err, sensors.ErrSensorUnavailable) {
			log.Printf("WARNING: motion sensor not detected, gestures disabled: %v", err)
		} else {
			log.Printf("WARNING: motion sensor init failed, gestures disabled: %v", err)
		}
		return imu.ZeroSource{}
	}

	if cfg.IMUAutoCalibration {
		log.Println("auto-calibrating motion sensor, please don't move")
		o, err := mpu.Calibrate()
		if err != nil {
			log.Printf("WARNING: auto-calibration failed, keeping stored offsets: %v", err)
			return mpu
		}
		cfg.XAccelOffset = o.AccelX
		cfg.YAccelOffset = o.AccelY
		cfg.ZAccelOffset = o.AccelZ
		cfg.XGyroOffset = o.GyroX
		cfg.YGyroOffset = o.GyroY
		cfg.ZGyroOffset = o.GyroZ
		if err := cfg.Save(configPath); err != nil {
			log.Printf("WARNING: could not persist calibration offsets: %v", err)
		} else {
			log.Println("auto-calibration done, offsets persisted")
		}
	}

	return mpu
}
