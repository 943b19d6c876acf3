// The root command for the CLI.
// Running it without a subcommand prints the banner; global flags configure the probes.
package cmd

import (
	"fmt"

	"github.com/redjax/tuxfetch/internal/commands/factsCommand"
	"github.com/redjax/tuxfetch/internal/commands/showCommand"
	versioncommand "github.com/redjax/tuxfetch/internal/commands/versionCommand"
	"github.com/redjax/tuxfetch/internal/config"
	"github.com/redjax/tuxfetch/internal/logger"
	fetchservice "github.com/redjax/tuxfetch/internal/services/fetchService"

	"github.com/spf13/cobra"
)

var (
	// A path to a file to load configuration from
	cfgFile string
)

// NewRootCmd builds the command tree. Execute uses a single instance; tests build their own.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		// The command you run to call the compiled binary
		Use: "tuxfetch",
		// A short description of what the command does
		Short: "A tiny system information banner",
		// A longer description for the command
		Long: `Print a short banner with the OS, kernel, package counts, shell, memory,
init system, desktop, uptime and disk usage next to a small penguin.

Every probe falls back to "Unknown" when its tool is missing.`,
		SilenceUsage:      true,
		PersistentPreRunE: initRuntime,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := fetchservice.FromContext(cmd.Context())
			if rt == nil {
				return fmt.Errorf("runtime not initialized")
			}

			facts := rt.Gather(cmd.Context())
			return fetchservice.Render(cmd.OutOrStdout(), facts, rt.Palette())
		},
	}

	// Add flags to the CLI's root command, making them 'global'
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (json, yaml, toml or .env)")
	rootCmd.PersistentFlags().BoolP("debug", "D", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("color", true, "Color the banner (NO_COLOR also disables it)")
	rootCmd.PersistentFlags().Bool("spinner", true, "Show a spinner on stderr while probing")
	rootCmd.PersistentFlags().Duration("timeout", config.DefaultTimeout, "Timeout for each external command")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")

	// Add other CLI subcommands
	rootCmd.AddCommand(factsCommand.NewFactsCmd())
	rootCmd.AddCommand(showCommand.NewShowCmd())
	rootCmd.AddCommand(versioncommand.NewVersionCommand())

	return rootCmd
}

// Execute the root Cobra command
func Execute() {
	// Import this into a main.go and call with cmd.Execute()
	cobra.CheckErr(NewRootCmd().Execute())
}

// initRuntime loads configuration, builds the logger and classifies the
// platform, then hands the result to subcommands through the context.
func initRuntime(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags(), cfgFile)
	if err != nil {
		// A broken config file should not stop the banner
		fmt.Fprintf(cmd.ErrOrStderr(), "Error loading config: %v\n", err)
		if cfg, err = config.Load(cmd.Flags(), ""); err != nil {
			return err
		}
	}

	log := logger.Init(cfg.LogLevel())
	log.Debug().
		Str("config", cfgFile).
		Dur("timeout", cfg.Timeout).
		Bool("color", cfg.Color).
		Msg("configuration loaded")

	rt := fetchservice.NewRuntime(cmd.Context(), cfg, log)
	cmd.SetContext(fetchservice.WithRuntime(cmd.Context(), rt))

	return nil
}
