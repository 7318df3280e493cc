package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTunables(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tunables.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write tunables: %v", err)
	}
	return path
}

func TestLoadTunables_DefaultsWithoutFile(t *testing.T) {
	tun, err := LoadTunables("")
	if err != nil {
		t.Fatalf("load tunables: %v", err)
	}
	if tun.Extraction.MaxCaptureLength != 50 {
		t.Fatalf("expected max_capture_length=50, got %d", tun.Extraction.MaxCaptureLength)
	}
	if tun.Pricing.Tolerance != 0.05 {
		t.Fatalf("expected tolerance=0.05, got %v", tun.Pricing.Tolerance)
	}
	if len(tun.Pricing.Breakpoints) != 7 || tun.Pricing.Breakpoints[0] != 48 {
		t.Fatalf("unexpected breakpoints: %#v", tun.Pricing.Breakpoints)
	}
}

func TestLoadTunables_OverlaysFile(t *testing.T) {
	path := writeTunables(t, `extraction:
  max_capture_length: 40
pricing:
  tolerance: 0.1
  breakpoints: [100, 500]
defaults:
  fabric: "Cotton Twill"
  color: ["Navy"]
`)
	tun, err := LoadTunables(path)
	if err != nil {
		t.Fatalf("load tunables: %v", err)
	}
	if tun.Extraction.MaxCaptureLength != 40 {
		t.Fatalf("expected max_capture_length=40, got %d", tun.Extraction.MaxCaptureLength)
	}
	if tun.Pricing.Tolerance != 0.1 {
		t.Fatalf("expected tolerance=0.1, got %v", tun.Pricing.Tolerance)
	}
	if tun.Pricing.DiscrepancyConfidence != 0.8 {
		t.Fatalf("expected untouched discrepancy_confidence=0.8, got %v", tun.Pricing.DiscrepancyConfidence)
	}
	rules := tun.PricingRules()
	if len(rules.Breakpoints) != 2 || rules.Breakpoints[1] != 500 {
		t.Fatalf("unexpected breakpoints: %#v", rules.Breakpoints)
	}
	if tun.Defaults.Fabric != "Cotton Twill" || len(tun.Defaults.Color) != 1 || tun.Defaults.Color[0] != "Navy" {
		t.Fatalf("unexpected defaults: %#v", tun.Defaults)
	}
}

func TestLoadTunables_Invalid(t *testing.T) {
	cases := map[string]string{
		"tolerance":   "pricing:\n  tolerance: 1.5\n",
		"breakpoints": "pricing:\n  breakpoints: [500, 100]\n",
		"ceiling":     "extraction:\n  max_capture_length: 0\n",
		"confidence":  "pricing:\n  discrepancy_confidence: 0\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadTunables(writeTunables(t, content))
			if !errors.Is(err, ErrInvalidTunables) {
				t.Fatalf("expected ErrInvalidTunables, got %v", err)
			}
		})
	}
}

func TestLoadTunables_MissingFile(t *testing.T) {
	if _, err := LoadTunables(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PERSISTENCE_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/q.db")
	t.Setenv("QUOTE_TUNABLES_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" || cfg.PersistenceDriver != DriverSQLite || cfg.SQLitePath != "/tmp/q.db" {
		t.Fatalf("unexpected config: %#v", cfg)
	}
	if cfg.ThreadsTable != "quote_threads" {
		t.Fatalf("expected default threads table, got %q", cfg.ThreadsTable)
	}
}

func TestLoad_UnsupportedDriver(t *testing.T) {
	t.Setenv("PERSISTENCE_DRIVER", "postgres")
	if _, err := Load(); err == nil {
		t.Fatalf("expected unsupported driver error")
	}
}
