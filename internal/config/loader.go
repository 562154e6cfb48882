package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Overrides carries CLI flag values that take precedence over file and
// environment configuration. Zero values mean "not set on the command line".
type Overrides struct {
	APIKey     string
	BaseURL    string
	PostalCode string
	Miles      int
	Species    string
	AuthToken  string
}

// Load reads configFile (if non-empty) or searches the working directory
// for config.toml, config.yaml, or config.json, merges in the recognized
// environment variables, applies CLI overrides, and validates the result.
//
// Precedence, lowest to highest: config file, environment, CLI flags.
func Load(configFile string, ov Overrides) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// No config file is fine; environment and flags may fully supply
		// the required settings.
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, err
	}

	applyEnv(&s)
	applyOverrides(&s, ov)

	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// applyEnv layers in the gateway's named environment variables. These are
// deliberately NOT a generic viper.AutomaticEnv prefix scheme: the spec
// fixes the exact variable names operators already depend on.
func applyEnv(s *Settings) {
	if v := os.Getenv("RESCUE_GROUPS_API_KEY"); v != "" {
		s.APIKey = v
	}
	if v := os.Getenv("MCP_AUTH_TOKEN"); v != "" {
		s.AuthToken = v
	}
}

func applyOverrides(s *Settings, ov Overrides) {
	if ov.APIKey != "" {
		s.APIKey = ov.APIKey
	}
	if ov.BaseURL != "" {
		s.BaseURL = strings.TrimRight(ov.BaseURL, "/")
	}
	if ov.PostalCode != "" {
		s.PostalCode = ov.PostalCode
	}
	if ov.Miles != 0 {
		s.Miles = ov.Miles
	}
	if ov.Species != "" {
		s.Species = ov.Species
	}
	if ov.AuthToken != "" {
		s.AuthToken = ov.AuthToken
	}
}
