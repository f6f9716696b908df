package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Config holds the persisted device settings the motion engine consumes.
// The file dialect (flat KEY=VALUE) is owned by the settings store; this
// package only adapts it.
type Config struct {
	// I2C
	// Empty means "first available bus".
	I2CBus string

	// IMU mounting and calibration
	IMUOrientation     uint8 // orientation bit-set (invert X/Y/Z, swap XY)
	IMUAutoCalibration bool  // run self-calibration at start-up and persist offsets

	XGyroOffset  int16
	YGyroOffset  int16
	ZGyroOffset  int16
	XAccelOffset int16
	YAccelOffset int16
	ZAccelOffset int16

	// Timing
	IMUSampleInterval int // milliseconds
	ActionLogInterval int // milliseconds
}

// Package-level unexported variables for singleton pattern:
//   - globalConfig: unexported so other packages cannot access it directly.
//   - configOnce: ensures InitGlobal() only runs once, even if called multiple times.
//   - configMu: RWMutex protects concurrent access; write lock for
//     initialization, read lock for Get().
//
// External code must use InitGlobal() to set and Get() to read.
var (
	globalConfig *Config
	configOnce   sync.Once
	configMu     sync.RWMutex
)

// Load reads the settings file and returns a Config struct.
func Load(configPath string) (*Config, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings file: %w", err)
	}
	defer file.Close()

	cfg := &Config{}
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=VALUE
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid settings line %d: %q", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if err := cfg.setValue(key, value); err != nil {
			return nil, fmt.Errorf("settings line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading settings file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setValue sets a config value based on the key.
func (c *Config) setValue(key, value string) error {
	switch key {
	// I2C
	case "I2C_BUS":
		c.I2CBus = value

	// IMU mounting and calibration
	case "IMU_ORIENTATION":
		bits, err := strconv.ParseUint(value, 0, 8)
		if err != nil {
			return fmt.Errorf("invalid IMU_ORIENTATION %q: %w", value, err)
		}
		c.IMUOrientation = uint8(bits)
	case "IMU_AUTO_CALIBRATION":
		switch value {
		case "0":
			c.IMUAutoCalibration = false
		case "1":
			c.IMUAutoCalibration = true
		default:
			return fmt.Errorf("IMU_AUTO_CALIBRATION must be 0 or 1, got %q", value)
		}

	case "IMU_X_GYRO_OFFSET":
		return parseOffset(value, key, &c.XGyroOffset)
	case "IMU_Y_GYRO_OFFSET":
		return parseOffset(value, key, &c.YGyroOffset)
	case "IMU_Z_GYRO_OFFSET":
		return parseOffset(value, key, &c.ZGyroOffset)
	case "IMU_X_ACCEL_OFFSET":
		return parseOffset(value, key, &c.XAccelOffset)
	case "IMU_Y_ACCEL_OFFSET":
		return parseOffset(value, key, &c.YAccelOffset)
	case "IMU_Z_ACCEL_OFFSET":
		return parseOffset(value, key, &c.ZAccelOffset)

	// Timing
	case "IMU_SAMPLE_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid IMU_SAMPLE_INTERVAL %q: %w", value, err)
		}
		c.IMUSampleInterval = interval
	case "ACTION_LOG_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid ACTION_LOG_INTERVAL %q: %w", value, err)
		}
		c.ActionLogInterval = interval

	default:
		return fmt.Errorf("unknown settings key: %q", key)
	}

	return nil
}

// parseOffset parses a calibration offset in raw sensor counts.
func parseOffset(value, key string, dst *int16) error {
	v, err := strconv.ParseInt(value, 10, 16)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	*dst = int16(v)
	return nil
}

// validate checks that all required fields are set.
func (c *Config) validate() error {
	if c.IMUSampleInterval == 0 {
		return fmt.Errorf("IMU_SAMPLE_INTERVAL is required")
	}
	if c.ActionLogInterval == 0 {
		return fmt.Errorf("ACTION_LOG_INTERVAL is required")
	}
	return nil
}

// Save writes the configuration back out in the same flat KEY=VALUE dialect
// Load reads. Calibration uses this to persist fresh offsets.
func (c *Config) Save(configPath string) error {
	var b strings.Builder

	b.WriteString("# HoloCube motion settings\n")
	fmt.Fprintf(&b, "I2C_BUS=%s\n", c.I2CBus)
	fmt.Fprintf(&b, "IMU_ORIENTATION=%d\n", c.IMUOrientation)
	auto := 0
	if c.IMUAutoCalibration {
		auto = 1
	}
	fmt.Fprintf(&b, "IMU_AUTO_CALIBRATION=%d\n", auto)
	fmt.Fprintf(&b, "IMU_X_GYRO_OFFSET=%d\n", c.XGyroOffset)
	fmt.Fprintf(&b, "IMU_Y_GYRO_OFFSET=%d\n", c.YGyroOffset)
	fmt.Fprintf(&b, "IMU_Z_GYRO_OFFSET=%d\n", c.ZGyroOffset)
	fmt.Fprintf(&b, "IMU_X_ACCEL_OFFSET=%d\n", c.XAccelOffset)
	fmt.Fprintf(&b, "IMU_Y_ACCEL_OFFSET=%d\n", c.YAccelOffset)
	fmt.Fprintf(&b, "IMU_Z_ACCEL_OFFSET=%d\n", c.ZAccelOffset)
	fmt.Fprintf(&b, "IMU_SAMPLE_INTERVAL=%d\n", c.IMUSampleInterval)
	fmt.Fprintf(&b, "ACTION_LOG_INTERVAL=%d\n", c.ActionLogInterval)

	if err := os.WriteFile(configPath, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// InitGlobal initializes the global configuration from file.
// Uses sync.Once so repeated calls are harmless.
func InitGlobal(configPath string) error {
	var err error
	configOnce.Do(func() {
		configMu.Lock()
		defer configMu.Unlock()
		globalConfig, err = Load(configPath)
	})
	return err
}

// Get returns the global configuration instance.
// InitGlobal must be called first, or this will return nil.
func Get() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return globalConfig
}
