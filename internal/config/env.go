package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvAPIURL      = "XWPUZ_API_URL"
	EnvReferer     = "XWPUZ_REFERER"
	EnvUserAgent   = "XWPUZ_USER_AGENT"
	EnvTimeout     = "XWPUZ_TIMEOUT"
	EnvMaxBodySize = "XWPUZ_MAX_BODY_SIZE"
	EnvOutputDir   = "XWPUZ_OUTPUT_DIR"
	EnvHistory     = "XWPUZ_HISTORY"
	EnvDBDir       = "XWPUZ_DB_DIR"
)

// DefaultEnvFile is the dotenv file read from the current directory.
const DefaultEnvFile = ".env"

// LookupFunc reports the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// EnvLookup returns a LookupFunc over the process environment backed by the
// given dotenv file. Process variables win over the file, matching
// godotenv.Load. A missing file is not an error.
func EnvLookup(dotenvPath string) (LookupFunc, error) {
	values := map[string]string{}
	if dotenvPath != "" {
		if _, err := os.Stat(dotenvPath); err == nil {
			values, err = godotenv.Read(dotenvPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", dotenvPath, err)
			}
		}
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}, nil
}

// ApplyEnv overrides c with the XWPUZ_* variables reported by lookup.
// Empty values are ignored.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		return v, ok && v != ""
	}

	if v, ok := get(EnvAPIURL); ok {
		c.APIURL = v
	}
	if v, ok := get(EnvReferer); ok {
		c.Referer = v
	}
	if v, ok := get(EnvUserAgent); ok {
		c.UserAgent = v
	}
	if v, ok := get(EnvTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}
	if v, ok := get(EnvMaxBodySize); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxBodySize, err)
		}
		c.MaxBodySize = n
	}
	if v, ok := get(EnvOutputDir); ok {
		c.OutputDir = v
	}
	if v, ok := get(EnvHistory); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHistory, err)
		}
		c.SaveHistory = b
	}
	if v, ok := get(EnvDBDir); ok {
		c.DBDir = v
	}
	return nil
}
