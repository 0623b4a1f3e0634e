package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-web2pdf/internal/fileutil"
)

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	t.Run("creates nested directories", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "a", "b", "c")
		if err := fileutil.EnsureDir(dir); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("directory was not created: %v", err)
		}
	})

	t.Run("idempotent on existing directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := fileutil.EnsureDir(dir); err != nil {
			t.Errorf("EnsureDir on existing dir: %v", err)
		}
	})

	t.Run("fails when path is a file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "occupied")
		if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
		if err := fileutil.EnsureDir(path); err == nil {
			t.Error("expected error, got nil")
		}
	})
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "present.pdf")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", file, true},
		{"missing file", filepath.Join(dir, "absent.pdf"), false},
		{"directory is not a file", dir, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"default", false},
		{"./local.yaml", true},
		{"../shared/config.yaml", true},
		{"/etc/web2pdf.yaml", true},
		{`C:\configs\web2pdf.yaml`, true},
		{"my-config", false},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"https://example.com/", true},
		{"http://example.com", true},
		{"ftp://example.com", false},
		{"example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := fileutil.IsURL(tt.input); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
