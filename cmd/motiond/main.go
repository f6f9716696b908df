// Copyright (c) 2026 HoloCube Project
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package main

import (
	"log"

	"github.com/Heratiki/HoloCube/internal/app"
	"github.com/Heratiki/HoloCube/internal/config"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.String("config", "./holocube_motion.txt", "path to settings file")
	useMock := pflag.Bool("mock", false, "use the mock motion source instead of the MPU-6050")
	pflag.Parse()

	log.Println("starting HoloCube motion daemon (IMU → gestures → encoder)")

	if err := config.InitGlobal(*configPath); err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}

	if err := app.RunMotionPoller(*configPath, *useMock); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
