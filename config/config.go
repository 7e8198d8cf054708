// Package config loads HardwareIO settings from a TOML file.
//
// Example file:
//
//	lock_timeout     = "3s"
//	transfer_timeout = "1s"
//	vendor_id        = 0x8086
//	product_id       = 0x0A66
//	log_level        = "debug"
//
// Every key is optional; absent keys keep the defaults.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/moffa90/go-ivcam/hwio"
	"github.com/moffa90/go-ivcam/protocol"
)

// Config holds the settings read from a config file.
type Config struct {
	LockTimeout     time.Duration
	TransferTimeout time.Duration
	VendorID        uint16
	ProductID       uint16
	LogLevel        zerolog.Level
}

type fileConfig struct {
	LockTimeout     string `toml:"lock_timeout"`
	TransferTimeout string `toml:"transfer_timeout"`
	VendorID        int64  `toml:"vendor_id"`
	ProductID       int64  `toml:"product_id"`
	LogLevel        string `toml:"log_level"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		LockTimeout:     protocol.DefaultLockTimeout,
		TransferTimeout: protocol.DefaultTransferTimeout,
		VendorID:        protocol.VendorID,
		ProductID:       protocol.ProductID,
		LogLevel:        zerolog.InfoLevel,
	}
}

// Load reads a TOML config file on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("lock_timeout") {
		d, err := parseTimeout(raw.LockTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse lock_timeout: %w", err)
		}
		cfg.LockTimeout = d
	}

	if meta.IsDefined("transfer_timeout") {
		d, err := parseTimeout(raw.TransferTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse transfer_timeout: %w", err)
		}
		cfg.TransferTimeout = d
	}

	if meta.IsDefined("vendor_id") {
		id, err := parseID(raw.VendorID)
		if err != nil {
			return Config{}, fmt.Errorf("parse vendor_id: %w", err)
		}
		cfg.VendorID = id
	}

	if meta.IsDefined("product_id") {
		id, err := parseID(raw.ProductID)
		if err != nil {
			return Config{}, fmt.Errorf("parse product_id: %w", err)
		}
		cfg.ProductID = id
	}

	if meta.IsDefined("log_level") {
		level, err := zerolog.ParseLevel(strings.TrimSpace(raw.LogLevel))
		if err != nil {
			return Config{}, fmt.Errorf("parse log_level: %w", err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

// Options converts the settings to HardwareIO options.
func (c Config) Options() []hwio.Option {
	return []hwio.Option{
		hwio.WithLockTimeout(c.LockTimeout),
		hwio.WithTransferTimeout(c.TransferTimeout),
		hwio.WithVIDPID(c.VendorID, c.ProductID),
	}
}

func parseTimeout(s string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", d)
	}
	return d, nil
}

func parseID(v int64) (uint16, error) {
	if v < 0 || v > 0xFFFF {
		return 0, fmt.Errorf("0x%X out of range", v)
	}
	return uint16(v), nil
}
