package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "KEYMARK_"

// LookupFunc reports the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// envSetters maps environment variables to the setting they override.
var envSetters = map[string]func(c *Config, v string) error{
	EnvPrefix + "LOG_LEVEL": func(c *Config, v string) error {
		c.Log.Level = v
		return nil
	},
	EnvPrefix + "LOG_FORMAT": func(c *Config, v string) error {
		c.Log.Format = v
		return nil
	},
	EnvPrefix + "LINE_NUMBERS": func(c *Config, v string) error {
		return setBool(&c.Gutter.ShowLineNumbers, v)
	},
	EnvPrefix + "SIGNS": func(c *Config, v string) error {
		return setBool(&c.Gutter.ShowSigns, v)
	},
	EnvPrefix + "SIGN_COLUMN_WIDTH": func(c *Config, v string) error {
		return setInt(&c.Gutter.SignColumnWidth, v)
	},
}

// ApplyEnv overrides settings from environment variables and validates the
// result. A nil lookup reads the process environment.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	for key, set := range envSetters {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		if err := set(cfg, v); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return cfg.Validate()
}

func setBool(dst *bool, s string) error {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		*dst = true
	case "false", "no", "off", "0":
		*dst = false
	default:
		return fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, s)
	}
	return nil
}

func setInt(dst *int, s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, s)
	}
	*dst = n
	return nil
}
