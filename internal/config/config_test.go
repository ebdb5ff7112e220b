package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default APIURL is the xwordinfo endpoint", func(t *testing.T) {
		t.Parallel()
		if cfg.APIURL != "https://www.xwordinfo.com/JSON/Data.aspx" {
			t.Errorf("expected xwordinfo endpoint, got %q", cfg.APIURL)
		}
	})

	t.Run("default Referer is the JSON page", func(t *testing.T) {
		t.Parallel()
		if cfg.Referer != "https://www.xwordinfo.com/JSON/" {
			t.Errorf("unexpected Referer %q", cfg.Referer)
		}
	})

	t.Run("default Timeout is 30 seconds", func(t *testing.T) {
		t.Parallel()
		if cfg.Timeout != 30*time.Second {
			t.Errorf("expected Timeout to be 30s, got %v", cfg.Timeout)
		}
	})

	t.Run("default MaxBodySize is 2MB", func(t *testing.T) {
		t.Parallel()
		if cfg.MaxBodySize != 2*1024*1024 {
			t.Errorf("expected 2MB, got %d", cfg.MaxBodySize)
		}
	})

	t.Run("default OutputDir is the current directory", func(t *testing.T) {
		t.Parallel()
		if cfg.OutputDir != "." {
			t.Errorf("expected '.', got %q", cfg.OutputDir)
		}
	})

	t.Run("history is enabled in the XDG data dir", func(t *testing.T) {
		t.Parallel()
		if !cfg.SaveHistory {
			t.Error("expected SaveHistory to be true")
		}
		if cfg.DBDir != XDGDataDir() {
			t.Errorf("expected DBDir %q, got %q", XDGDataDir(), cfg.DBDir)
		}
	})

	t.Run("defaults validate", func(t *testing.T) {
		t.Parallel()
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{name: "empty API URL returns ErrNoAPIURL", modify: func(c *Config) { c.APIURL = "" }, want: ErrNoAPIURL},
		{name: "zero timeout returns ErrInvalidTimeout", modify: func(c *Config) { c.Timeout = 0 }, want: ErrInvalidTimeout},
		{name: "negative timeout returns ErrInvalidTimeout", modify: func(c *Config) { c.Timeout = -time.Second }, want: ErrInvalidTimeout},
		{name: "zero body size returns ErrInvalidMaxBodySize", modify: func(c *Config) { c.MaxBodySize = 0 }, want: ErrInvalidMaxBodySize},
		{name: "empty output dir returns ErrNoOutputDir", modify: func(c *Config) { c.OutputDir = "" }, want: ErrNoOutputDir},
		{
			name:   "json and markdown both enabled returns ErrConflictingReportFormats",
			modify: func(c *Config) { c.JSONReport, c.MarkdownReport = true, true },
			want:   ErrConflictingReportFormats,
		},
		{name: "json only is valid", modify: func(c *Config) { c.JSONReport = true }},
		{name: "markdown only is valid", modify: func(c *Config) { c.MarkdownReport = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

// TestFileApply tests layering a config file over defaults.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("empty file changes nothing", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		(&File{}).Apply(cfg)
		if cfg.Headers != nil {
			t.Error("expected no headers")
		}
		if cfg.APIURL != DefaultAPIURL || cfg.Timeout != DefaultTimeout || !cfg.SaveHistory {
			t.Errorf("unexpected change: %+v", cfg)
		}
	})

	t.Run("set values override defaults", func(t *testing.T) {
		t.Parallel()
		off := false
		cfg := NewConfig()
		(&File{
			APIURL:    "https://example.com/api",
			Timeout:   5 * time.Second,
			OutputDir: "/tmp/puzzles",
			History:   &off,
			DBDir:     "/tmp/db",
		}).Apply(cfg)

		if cfg.APIURL != "https://example.com/api" {
			t.Errorf("APIURL = %q", cfg.APIURL)
		}
		if cfg.Timeout != 5*time.Second {
			t.Errorf("Timeout = %v", cfg.Timeout)
		}
		if cfg.OutputDir != "/tmp/puzzles" {
			t.Errorf("OutputDir = %q", cfg.OutputDir)
		}
		if cfg.SaveHistory {
			t.Error("expected history to be disabled")
		}
		if cfg.DBDir != "/tmp/db" {
			t.Errorf("DBDir = %q", cfg.DBDir)
		}
		if cfg.Referer != DefaultReferer {
			t.Errorf("Referer should keep its default, got %q", cfg.Referer)
		}
	})

	t.Run("headers are merged", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Headers = map[string]string{"X-A": "1", "X-B": "2"}
		(&File{Headers: map[string]string{"X-B": "3", "X-C": "4"}}).Apply(cfg)

		want := map[string]string{"X-A": "1", "X-B": "3", "X-C": "4"}
		if len(cfg.Headers) != len(want) {
			t.Fatalf("headers = %v, want %v", cfg.Headers, want)
		}
		for k, v := range want {
			if cfg.Headers[k] != v {
				t.Errorf("header %s = %q, want %q", k, cfg.Headers[k], v)
			}
		}
	})
}

// TestLoadConfigFile tests the LoadConfigFile function.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFile("/nonexistent/path/.xwpuz")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cfg != nil {
			t.Error("expected nil config when file not found")
		}
	})

	t.Run("loads valid YAML config", func(t *testing.T) {
		t.Parallel()
		configPath := filepath.Join(t.TempDir(), ".xwpuz")

		content := `apiURL: "https://example.com/JSON/Data.aspx"
referer: "https://example.com/JSON/"
userAgent: "custom/1.0"
timeout: 45s
outputDir: "/srv/puzzles"
history: false
headers:
  Cookie: "session=abc"
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cf, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cf.APIURL != "https://example.com/JSON/Data.aspx" {
			t.Errorf("APIURL = %q", cf.APIURL)
		}
		if cf.UserAgent != "custom/1.0" {
			t.Errorf("UserAgent = %q", cf.UserAgent)
		}
		if cf.Timeout != 45*time.Second {
			t.Errorf("Timeout = %v", cf.Timeout)
		}
		if cf.OutputDir != "/srv/puzzles" {
			t.Errorf("OutputDir = %q", cf.OutputDir)
		}
		if cf.History == nil || *cf.History {
			t.Errorf("expected history to be explicitly false")
		}
		if cf.Headers["Cookie"] != "session=abc" {
			t.Errorf("expected Cookie header")
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()
		configPath := filepath.Join(t.TempDir(), ".xwpuz")

		if err := os.WriteFile(configPath, []byte(`invalid: yaml: content: [}`), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfigFile(configPath); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})

	t.Run("omitted history stays nil", func(t *testing.T) {
		t.Parallel()
		configPath := filepath.Join(t.TempDir(), ".xwpuz")

		if err := os.WriteFile(configPath, []byte("outputDir: out\n"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cf, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.History != nil {
			t.Error("expected History to be nil")
		}
	})
}

// TestFindConfigFile tests the FindConfigFile function.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns explicit path if exists", func(t *testing.T) {
		t.Parallel()
		configPath := filepath.Join(t.TempDir(), "custom.yaml")

		if err := os.WriteFile(configPath, []byte("timeout: 10s\n"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if result := FindConfigFile(configPath); result != configPath {
			t.Errorf("expected %q, got %q", configPath, result)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		t.Parallel()
		if result := FindConfigFile("/nonexistent/path/config.yaml"); result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})
}

// TestXDGDirs tests XDG directory functions.
func TestXDGDirs(t *testing.T) {
	t.Parallel()

	t.Run("XDGDataDir ends with the app name", func(t *testing.T) {
		t.Parallel()
		if filepath.Base(XDGDataDir()) != AppName {
			t.Errorf("unexpected XDG data dir %q", XDGDataDir())
		}
	})

	t.Run("XDGConfigDir ends with the app name", func(t *testing.T) {
		t.Parallel()
		if filepath.Base(XDGConfigDir()) != AppName {
			t.Errorf("unexpected XDG config dir %q", XDGConfigDir())
		}
	})
}
