package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/thrivemum/internal/config"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration after the config file, environment variables
and flags are applied. The API key is masked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			printConfig(cmd, cfg)
			return nil
		},
	}
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configFlag
			if path == "" {
				var err error
				if path, err = config.GetConfigPath(); err != nil {
					return err
				}
			}
			if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
}

func printConfig(cmd *cobra.Command, cfg config.Config) {
	out := cmd.OutOrStdout()
	rows := []struct{ key, value string }{
		{"backend", cfg.Backend},
		{"endpoint", cfg.Endpoint},
		{"model", cfg.Model},
		{"api_key", cfg.MaskedAPIKey()},
		{"replies", replySource(cfg)},
		{"offline", fmt.Sprintf("%t", cfg.Offline)},
		{"verbose", fmt.Sprintf("%t", cfg.Verbose)},
		{"copy_to_clipboard", fmt.Sprintf("%t", cfg.CopyToClipboard)},
		{"refresh_interval", cfg.GetRefreshInterval().String()},
		{"markdown.style", cfg.Markdown.Style},
	}
	if cfg.BaseURL != "" {
		rows = append(rows, struct{ key, value string }{"base_url", cfg.BaseURL})
	}
	for _, r := range rows {
		fmt.Fprintf(out, "%-18s %s\n", r.key+":", r.value)
	}
}

// replySource describes where replies will come from with cfg
func replySource(cfg config.Config) string {
	switch {
	case cfg.Offline:
		return "built-in keyword table (offline)"
	case !cfg.HasCredentials():
		return "built-in fallback tips (no API key)"
	default:
		return backendLabel(cfg)
	}
}
