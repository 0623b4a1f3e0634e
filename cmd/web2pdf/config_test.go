package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if len(cfg.Targets) != 3 {
		t.Errorf("Targets = %v, want 3 entries", cfg.Targets)
	}
	if cfg.DownloadDir != "downloaded_pdfs" {
		t.Errorf("DownloadDir = %q, want %q", cfg.DownloadDir, "downloaded_pdfs")
	}
	if cfg.MergedFilename != "combined_report.pdf" {
		t.Errorf("MergedFilename = %q, want %q", cfg.MergedFilename, "combined_report.pdf")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("LoadConfig(\"\") = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "absent.yaml")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig() = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "run.yaml")
		content := `targets:
  - https://example.com/
  - https://example.org/
downloadDir: reports
timeout: 45s
`
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(cfg.Targets) != 2 {
			t.Errorf("Targets = %v, want 2 entries", cfg.Targets)
		}
		if cfg.DownloadDir != "reports" {
			t.Errorf("DownloadDir = %q, want %q", cfg.DownloadDir, "reports")
		}
		if cfg.Timeout != "45s" {
			t.Errorf("Timeout = %q, want %q", cfg.Timeout, "45s")
		}
		// Absent fields keep their defaults
		if cfg.MergedFilename != "combined_report.pdf" {
			t.Errorf("MergedFilename = %q, want default", cfg.MergedFilename)
		}
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("bogus: true\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("LoadConfig() = %v, want ErrConfigParse", err)
		}
	})

	t.Run("empty target list is preserved", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "empty.yaml")
		if err := os.WriteFile(path, []byte("targets: []\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cfg.Targets) != 0 {
			t.Errorf("Targets = %v, want empty list", cfg.Targets)
		}
	})
}
