// Copyright (c) 2026 HoloCube Project
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// ./cmd/calibration/main.go
//
// Guided one-shot calibration for the MPU-6050.
//
// Averages a run of still readings to estimate per-axis accel and gyro
// bias (accel Z compensated for gravity), then writes the offsets back
// into the settings file so the motion daemon applies them at start-up.
//
// Offsets are stored in RAW UNITS (counts); applying them later requires
// the same ±2g / ±250°/s ranges the daemon configures.
//
// Run:
//
//	go run ./cmd/calibration
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/Heratiki/HoloCube/internal/config"
	"github.com/Heratiki/HoloCube/internal/sensors"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.String("config", "./holocube_motion.txt", "path to settings file")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}

	// Open with zero offsets: calibration measures the uncorrected bias.
	mpu, err := sensors.NewMPU6050(cfg.I2CBus, sensors.Offsets{})
	if err != nil {
		log.Fatalf("failed to open motion sensor: %v", err)
	}
	defer mpu.Close()

	fmt.Println("Place the device flat and still (logical Z up), then press Enter.")
	bufio.NewReader(os.Stdin).ReadString('\n')

	log.Println("calibrating, please don't move")
	o, err := mpu.Calibrate()
	if err != nil {
		log.Fatalf("calibration failed: %v", err)
	}

	fmt.Printf("accel offsets: x=%d y=%d z=%d\n", o.AccelX, o.AccelY, o.AccelZ)
	fmt.Printf("gyro offsets:  x=%d y=%d z=%d\n", o.GyroX, o.GyroY, o.GyroZ)

	cfg.XAccelOffset = o.AccelX
	cfg.YAccelOffset = o.AccelY
	cfg.ZAccelOffset = o.AccelZ
	cfg.XGyroOffset = o.GyroX
	cfg.YGyroOffset = o.GyroY
	cfg.ZGyroOffset = o.GyroZ

	if err := cfg.Save(*configPath); err != nil {
		log.Fatalf("failed to persist offsets: %v", err)
	}
	log.Printf("offsets written to %s", *configPath)
}
