package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/statuswatch/checker/internal/checker"
	"github.com/statuswatch/checker/internal/config"
	"github.com/statuswatch/checker/internal/pkg/ctxlog"
	"github.com/statuswatch/checker/internal/registry"
	"github.com/statuswatch/checker/internal/report"
	"github.com/statuswatch/checker/internal/statuspage"
	"github.com/statuswatch/checker/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "checker [service]",
	Short: "Check a service's public status page for active incidents",
	Long: `checker queries the public status page of a known service and reports
whether there are active incidents. With no argument the default service
is checked. Service tokens are case-insensitive and may be any of the
registered aliases (e.g. "gh" for GitHub).`,
	Args:          cobra.MaximumNArgs(1),
	Version:       version.String(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheck,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to a config file")
	rootCmd.PersistentFlags().String("services", "", "path to a YAML file overriding the built-in service registry")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (text, json)")
	rootCmd.Flags().Duration("timeout", 0, "request timeout")
	rootCmd.Flags().StringP("output", "o", "", "output format (text, json)")
}

// setup loads configuration, applies flag overrides and builds the
// logger and registry shared by all commands.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, *registry.Registry, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, _ = cmd.Flags().GetDuration("timeout")
	}
	if cmd.Flags().Changed("output") {
		cfg.Output, _ = cmd.Flags().GetString("output")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format, _ = cmd.Flags().GetString("log-format")
	}
	if cmd.Flags().Changed("services") {
		cfg.Services, _ = cmd.Flags().GetString("services")
	}

	logger := ctxlog.New(cfg.Log.Level, cfg.Log.Format)

	reg, err := registry.Load(cfg.Services)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, logger, reg, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, logger, reg, err := setup(cmd)
	if err != nil {
		return err
	}

	var token string
	if len(args) == 1 {
		token = args[0]
	}

	ctx := ctxlog.WithLogger(cmd.Context(), logger)

	client := statuspage.NewClient(statuspage.Config{Timeout: cfg.Timeout})
	chk := checker.New(reg, client)

	summary, err := chk.Check(ctx, token)
	if err != nil {
		return err
	}

	switch cfg.Output {
	case "json":
		out, err := report.JSON(summary)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	default:
		fmt.Fprint(cmd.OutOrStdout(), report.Text(summary))
	}

	return nil
}
