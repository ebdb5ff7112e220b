package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultAPIURL is the xwordinfo JSON endpoint that serves one puzzle
	// per date.
	DefaultAPIURL = "https://www.xwordinfo.com/JSON/Data.aspx"

	// DefaultReferer is sent with every request. The endpoint refuses
	// requests that do not appear to come from its own JSON page.
	DefaultReferer = "https://www.xwordinfo.com/JSON/"

	// DefaultTimeout bounds a single fetch including reading the body.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies xwpuz in HTTP requests.
	DefaultUserAgent = "xwpuz/1.0 (+https://github.com/nao1215/xwpuz)"

	// DefaultMaxBodySize limits how much of a response is read. A puzzle
	// document is a few tens of kilobytes; 2MB leaves ample headroom.
	DefaultMaxBodySize = 2 * 1024 * 1024 // 2MB

	// DefaultOutputDir is where puzzle files are written.
	DefaultOutputDir = "."

	// AppName is the application name used for XDG directory paths.
	AppName = "xwpuz"
)

// Config holds all configuration options for xwpuz.
// It is populated from defaults, the config file, the environment and CLI
// flags, in that order, and passed explicitly to the commands.
type Config struct {
	// Date is the raw date token from the command line. Empty means today.
	Date string

	// APIURL is the puzzle JSON endpoint.
	APIURL string

	// Referer is sent as the Referer header.
	Referer string

	// UserAgent is the User-Agent header sent with requests.
	UserAgent string

	// Timeout is the HTTP timeout for a single fetch.
	Timeout time.Duration

	// MaxBodySize is the maximum response body size in bytes to read.
	MaxBodySize int64

	// Headers are extra HTTP headers sent with every request.
	Headers map[string]string

	// OutputDir is the directory puzzle files are written to.
	OutputDir string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches the locations listed in FindConfigFile.
	ConfigFilePath string

	// SaveHistory records each written puzzle in the history database.
	SaveHistory bool

	// DBDir is the directory holding the history database.
	// Defaults to the XDG data directory (~/.local/share/xwpuz on Linux).
	DBDir string

	// JSONReport selects JSON output for the history command.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output for the history command.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		APIURL:      DefaultAPIURL,
		Referer:     DefaultReferer,
		UserAgent:   DefaultUserAgent,
		Timeout:     DefaultTimeout,
		MaxBodySize: DefaultMaxBodySize,
		OutputDir:   DefaultOutputDir,
		SaveHistory: true,
		DBDir:       XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for xwpuz.
// On Linux: ~/.local/share/xwpuz
// On macOS: ~/Library/Application Support/xwpuz
// On Windows: %LOCALAPPDATA%\xwpuz
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for xwpuz.
// On Linux: ~/.config/xwpuz
// On macOS: ~/Library/Application Support/xwpuz
// On Windows: %APPDATA%\xwpuz
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid and returns the first
// problem found.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return ErrNoAPIURL
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.MaxBodySize <= 0 {
		return ErrInvalidMaxBodySize
	}

	if c.OutputDir == "" {
		return ErrNoOutputDir
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
