// Package config provides the gateway's merged, validated Settings record.
//
// Settings are assembled once at startup from three sources, file then
// environment then CLI flags (last writer wins), following the same
// viper-plus-validator pattern the rest of this codebase's ancestry uses
// for its own configuration surface.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DefaultBaseURL is the RescueGroups.org v5 API root.
const DefaultBaseURL = "https://api.rescuegroups.org/v5"

// Settings is the immutable, merged configuration record shared by every
// request handler for the lifetime of the process.
type Settings struct {
	// APIKey authenticates every upstream request via the Authorization header.
	APIKey string `mapstructure:"api_key" validate:"required"`

	// BaseURL overrides the upstream API root, primarily for testing.
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// PostalCode, Miles, and Species seed defaults for tool arguments of the
	// same name when the caller omits them.
	PostalCode string `mapstructure:"postal_code"`
	Miles      int    `mapstructure:"miles"`
	Species    string `mapstructure:"species"`

	// Lazy, when true, restricts tools/list to the core tool subset.
	Lazy bool `mapstructure:"lazy"`

	// RateLimitRequests and RateLimitWindow size the upstream token bucket:
	// RateLimitRequests tokens replenished continuously over RateLimitWindow.
	RateLimitRequests int `mapstructure:"rate_limit_requests" validate:"required,min=1"`
	RateLimitWindow   int `mapstructure:"rate_limit_window" validate:"required,min=1"`

	// AuthToken, when set, is the bearer token the HTTP transport requires.
	AuthToken string `mapstructure:"auth_token"`
}

// setDefaults fills in zero-valued optional fields before validation runs.
func setDefaults(v *viper.Viper) {
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("miles", 25)
	v.SetDefault("rate_limit_requests", 60)
	v.SetDefault("rate_limit_window", 60)
}

// Validate checks a Settings record against its struct tags.
// Returns a plain error on failure, which the CLI's engine builder maps
// into errs.Config — this package stays decoupled from internal/errs
// to avoid an import cycle with packages that depend on config.
func Validate(s *Settings) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(s); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
