package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rescuegate/rescuegate/internal/config"
	"github.com/rescuegate/rescuegate/internal/engine"
	"github.com/rescuegate/rescuegate/internal/errs"
	"github.com/rescuegate/rescuegate/internal/logging"
	"github.com/rescuegate/rescuegate/internal/metrics"
)

// buildEngine loads settings from config file, environment, and the
// persistent CLI flags, then constructs an engine. Callers must Close it.
// m may be nil, for call sites (the CLI's one-shot tool commands) that have
// no metrics registry of their own.
func buildEngine(ov config.Overrides, logger *slog.Logger, m *metrics.Metrics) (*engine.Engine, error) {
	ov.APIKey = firstNonEmpty(ov.APIKey, apiKey)
	ov.AuthToken = firstNonEmpty(ov.AuthToken, authToken)

	settings, err := config.Load(cfgFile, ov)
	if err != nil {
		return nil, errs.Config("%v", err)
	}
	return engine.New(settings, logger, m), nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// runTool marshals args, looks up the named tool in the engine's registry,
// and invokes its handler exactly as the MCP protocol core would — the CLI
// is simply another caller of the same tool surface.
func runTool(cmd *cobra.Command, name string, args any, ov config.Overrides) error {
	eng, err := buildEngine(ov, logging.New(), nil)
	if err != nil {
		return err
	}
	defer eng.Close()

	raw, err := json.Marshal(args)
	if err != nil {
		return err
	}

	desc, err := eng.Registry().Describe(name)
	if err != nil {
		return err
	}

	out, err := desc.Handler(cmd.Context(), eng, raw)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
