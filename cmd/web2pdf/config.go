package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-web2pdf/internal/fileutil"
	"github.com/alnah/go-web2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds the run configuration for the CLI.
// Zero-value fields fall back to the built-in defaults.
type Config struct {
	Targets        []string `yaml:"targets"`        // URLs, fetched and merged in this order
	DownloadDir    string   `yaml:"downloadDir"`    // where page PDFs and the merged file go
	MergedFilename string   `yaml:"mergedFilename"` // name of the merged output
	Timeout        string   `yaml:"timeout"`        // per-target fetch timeout, Go duration (e.g. "45s")
	SettleDelay    string   `yaml:"settleDelay"`    // post-load pause before export, Go duration
}

// DefaultConfig returns the built-in target list and output layout.
func DefaultConfig() *Config {
	return &Config{
		Targets: []string{
			"https://www.google.com/",
			"https://en.wikipedia.org/wiki/Python_(programming_language)",
			"https://example.com/",
		},
		DownloadDir:    "downloaded_pdfs",
		MergedFilename: "combined_report.pdf",
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
//
// Fields absent from the file keep their built-in defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults restores built-in values for fields the file cleared.
func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()
	if cfg.DownloadDir == "" {
		cfg.DownloadDir = defaults.DownloadDir
	}
	if cfg.MergedFilename == "" {
		cfg.MergedFilename = defaults.MergedFilename
	}
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-web2pdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-web2pdf", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
