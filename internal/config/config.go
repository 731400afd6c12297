// Package config loads the settings of the backend from the environment,
// an optional .env file and an optional config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Keys. They are used as environment variable names and as keys in the
// config file.
const (
	KeyGinMode          = "GIN_MODE"
	KeyLogFormat        = "LOG_FORMAT"
	KeyAPIURL           = "API_URL"
	KeyDataDir          = "DATA_DIR"
	KeyListenAddr       = "LISTEN_ADDR"
	KeyCORSAllowOrigins = "CORS_ALLOW_ORIGINS"
	KeyEnablePprof      = "ENABLE_PPROF"
)

const (
	LogFormatHuman = "human"
	LogFormatJSON  = "json"
)

var (
	ErrAPIURLMissing = errors.New("API_URL must be set")
	ErrAPIURLInvalid = errors.New("API_URL must be an absolute http or https URL")
)

type Config struct {
	GinMode          string
	LogFormat        string // human or json. When empty, human is used in debug mode
	APIURL           string
	DataDir          string
	ListenAddr       string
	CORSAllowOrigins []string
	EnablePprof      bool
}

// New returns a viper instance with the defaults set and environment
// variables bound.
func New() *viper.Viper {
	v := viper.New()

	// gin uses debug as the default mode, we use release for
	// security reasons
	v.SetDefault(KeyGinMode, gin.ReleaseMode)
	v.SetDefault(KeyDataDir, "data")
	v.SetDefault(KeyListenAddr, ":8080")
	v.SetDefault(KeyEnablePprof, false)

	for _, key := range []string{KeyLogFormat, KeyAPIURL, KeyCORSAllowOrigins} {
		_ = v.BindEnv(key)
	}

	v.AutomaticEnv()
	return v
}

// Load reads the .env files and the config file, if given, and returns the
// resulting configuration. Missing .env files are ignored, a missing config
// file is not.
func Load(v *viper.Viper, configFile string, envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, f := range envFiles {
		// godotenv never overrides variables that are already set
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return Config{
		GinMode:          v.GetString(KeyGinMode),
		LogFormat:        strings.ToLower(v.GetString(KeyLogFormat)),
		APIURL:           v.GetString(KeyAPIURL),
		DataDir:          v.GetString(KeyDataDir),
		ListenAddr:       v.GetString(KeyListenAddr),
		CORSAllowOrigins: v.GetStringSlice(KeyCORSAllowOrigins),
		EnablePprof:      v.GetBool(KeyEnablePprof),
	}, nil
}

// Validate returns all problems with the configuration at once.
func (c Config) Validate() error {
	var errs []error

	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		errs = append(errs, fmt.Errorf("%s must be one of %s, %s or %s, got %q", KeyGinMode, gin.DebugMode, gin.ReleaseMode, gin.TestMode, c.GinMode))
	}

	switch c.LogFormat {
	case "", LogFormatHuman, LogFormatJSON:
	default:
		errs = append(errs, fmt.Errorf("%s must be %s or %s, got %q", KeyLogFormat, LogFormatHuman, LogFormatJSON, c.LogFormat))
	}

	if c.APIURL != "" {
		if _, err := c.URL(); err != nil {
			errs = append(errs, err)
		}
	}

	if strings.TrimSpace(c.DataDir) == "" {
		errs = append(errs, fmt.Errorf("%s must not be empty", KeyDataDir))
	}

	if _, _, err := net.SplitHostPort(c.ListenAddr); err != nil {
		errs = append(errs, fmt.Errorf("%s is invalid: %w", KeyListenAddr, err))
	}

	for _, origin := range c.CORSAllowOrigins {
		if origin == "*" {
			continue
		}

		if u, err := url.Parse(origin); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("%s contains the invalid origin %q", KeyCORSAllowOrigins, origin))
		}
	}

	return errors.Join(errs...)
}

// URL parses the API URL. It is required to serve the API.
func (c Config) URL() (*url.URL, error) {
	if c.APIURL == "" {
		return nil, ErrAPIURLMissing
	}

	u, err := url.Parse(c.APIURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAPIURLInvalid, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrAPIURLInvalid
	}

	return u, nil
}

// HumanLogs reports if logs are written for humans instead of as JSON.
func (c Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.GinMode == gin.DebugMode
	}

	return c.LogFormat == LogFormatHuman
}
