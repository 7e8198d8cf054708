package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ivcam.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
lock_timeout = "5s"
transfer_timeout = "250ms"
vendor_id = 0x8086
product_id = 0x0A80
log_level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LockTimeout != 5*time.Second {
		t.Fatalf("unexpected lock timeout: %v", cfg.LockTimeout)
	}
	if cfg.TransferTimeout != 250*time.Millisecond {
		t.Fatalf("unexpected transfer timeout: %v", cfg.TransferTimeout)
	}
	if cfg.VendorID != 0x8086 || cfg.ProductID != 0x0A80 {
		t.Fatalf("unexpected ids: 0x%04X/0x%04X", cfg.VendorID, cfg.ProductID)
	}
	if cfg.LogLevel != zerolog.DebugLevel {
		t.Fatalf("unexpected log level: %v", cfg.LogLevel)
	}
	if len(cfg.Options()) != 3 {
		t.Fatalf("unexpected option count: %d", len(cfg.Options()))
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "# empty\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.LockTimeout != 3*time.Second || cfg.TransferTimeout != time.Second {
		t.Fatalf("unexpected default timeouts: %v/%v", cfg.LockTimeout, cfg.TransferTimeout)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "bad duration", body: `lock_timeout = "soon"`, want: "lock_timeout"},
		{name: "zero duration", body: `transfer_timeout = "0s"`, want: "transfer_timeout"},
		{name: "id out of range", body: `vendor_id = 70000`, want: "vendor_id"},
		{name: "negative id", body: `product_id = -1`, want: "product_id"},
		{name: "bad level", body: `log_level = "loud"`, want: "log_level"},
		{name: "bad syntax", body: `lock_timeout = `, want: "load config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
