package config

import (
	"maps"
	"time"
)

// File represents the structure of the .xwpuz configuration file.
// Zero values mean "not set" and leave the current setting untouched.
type File struct {
	APIURL      string            `yaml:"apiURL,omitempty"`
	Referer     string            `yaml:"referer,omitempty"`
	UserAgent   string            `yaml:"userAgent,omitempty"`
	Timeout     time.Duration     `yaml:"timeout,omitempty"`
	MaxBodySize int64             `yaml:"maxBodySize,omitempty"`
	OutputDir   string            `yaml:"outputDir,omitempty"`
	Headers     map[string]string `yaml:"headers,omitempty"`

	// History turns the history database on or off. A nil pointer keeps
	// the default.
	History *bool `yaml:"history,omitempty"`

	// DBDir overrides the history database directory.
	DBDir string `yaml:"dbDir,omitempty"`
}

// Apply copies every value set in the file onto c. Headers are merged,
// with file values replacing existing keys.
func (f *File) Apply(c *Config) {
	if f.APIURL != "" {
		c.APIURL = f.APIURL
	}
	if f.Referer != "" {
		c.Referer = f.Referer
	}
	if f.UserAgent != "" {
		c.UserAgent = f.UserAgent
	}
	if f.Timeout != 0 {
		c.Timeout = f.Timeout
	}
	if f.MaxBodySize != 0 {
		c.MaxBodySize = f.MaxBodySize
	}
	if f.OutputDir != "" {
		c.OutputDir = f.OutputDir
	}
	if len(f.Headers) > 0 {
		if c.Headers == nil {
			c.Headers = make(map[string]string, len(f.Headers))
		}
		maps.Copy(c.Headers, f.Headers)
	}
	if f.History != nil {
		c.SaveHistory = *f.History
	}
	if f.DBDir != "" {
		c.DBDir = f.DBDir
	}
}
