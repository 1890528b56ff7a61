// Package config reads the settings of the dstv2svg executable from the
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/tsawler/dstv/internal/logging"
	"github.com/tsawler/dstv/internal/source"
)

// Environment variables.
const (
	EnvLogLevel      = "DSTV_LOG_LEVEL"
	EnvLogFormat     = "DSTV_LOG_FORMAT"
	EnvListenAddr    = "DSTV_LISTEN_ADDR"
	EnvStyleFile     = "DSTV_STYLE_FILE"
	EnvMaxBodyBytes  = "DSTV_MAX_BODY_BYTES"
	EnvReadTimeout   = "DSTV_READ_TIMEOUT"
	EnvS3Region      = "DSTV_S3_REGION"
	EnvS3Endpoint    = "DSTV_S3_ENDPOINT"
	EnvS3AccessKeyID = "DSTV_S3_ACCESS_KEY_ID"
	EnvS3SecretKey   = "DSTV_S3_SECRET_ACCESS_KEY"
)

const (
	DefaultListenAddr  = ":8080"
	DefaultMaxBodySize = 10 << 20
	DefaultReadTimeout = 30 * time.Second
)

var envVars = []string{
	EnvLogLevel,
	EnvLogFormat,
	EnvListenAddr,
	EnvStyleFile,
	EnvMaxBodyBytes,
	EnvReadTimeout,
	EnvS3Region,
	EnvS3Endpoint,
	EnvS3AccessKeyID,
	EnvS3SecretKey,
}

type Config struct {
	values map[string]string
}

// Load reads the DSTV_* variables and checks the numeric ones.
func Load() (*Config, error) {
	cfg := &Config{
		values: make(map[string]string),
	}

	cfg.loadFromEnv()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFromEnv() {
	for _, envVar := range envVars {
		if value := os.Getenv(envVar); value != "" {
			c.values[envVar] = value
		}
	}
}

func (c *Config) validate() error {
	if v, ok := c.values[EnvMaxBodyBytes]; ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %q", EnvMaxBodyBytes, v)
		}
	}
	if v, ok := c.values[EnvReadTimeout]; ok {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return fmt.Errorf("%s must be a positive duration, got %q", EnvReadTimeout, v)
		}
	}
	if v, ok := c.values[EnvLogFormat]; ok && v != "json" && v != "console" {
		return fmt.Errorf("%s must be json or console, got %q", EnvLogFormat, v)
	}
	return nil
}

// Set overrides a value, typically from a command line flag.
func (c *Config) Set(key, value string) {
	if value == "" {
		return
	}
	c.values[key] = value
}

func (c *Config) GetString(key, defaultValue string) string {
	if value, exists := c.values[key]; exists {
		return value
	}
	return defaultValue
}

func (c *Config) GetInt64(key string, defaultValue int64) int64 {
	if value, exists := c.values[key]; exists {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func (c *Config) GetDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := c.values[key]; exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func (c *Config) ListenAddr() string {
	return c.GetString(EnvListenAddr, DefaultListenAddr)
}

func (c *Config) StyleFile() string {
	return c.GetString(EnvStyleFile, "")
}

func (c *Config) MaxBodyBytes() int64 {
	return c.GetInt64(EnvMaxBodyBytes, DefaultMaxBodySize)
}

func (c *Config) ReadTimeout() time.Duration {
	return c.GetDuration(EnvReadTimeout, DefaultReadTimeout)
}

// Logging returns the logger settings.
func (c *Config) Logging() logging.Config {
	return logging.Config{
		Level:  c.GetString(EnvLogLevel, "info"),
		Format: c.GetString(EnvLogFormat, "json"),
	}
}

// S3 returns the object storage settings.
func (c *Config) S3() source.S3Config {
	return source.S3Config{
		Region:          c.GetString(EnvS3Region, ""),
		Endpoint:        c.GetString(EnvS3Endpoint, ""),
		AccessKeyID:     c.GetString(EnvS3AccessKeyID, ""),
		SecretAccessKey: c.GetString(EnvS3SecretKey, ""),
	}
}
