package showCommand

import (
	"github.com/spf13/cobra"
)

func NewShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show what tuxfetch detected, i.e. show platform.",
		Long: `Print debug data about the probes.

Show the detected platform family, the color palette, and which external tools the probes can use.

Run tuxfetch show --help to see all options.
`,
	}

	// Attach subcommands
	showCmd.AddCommand(NewPlatformCmd())
	showCmd.AddCommand(NewPaletteCmd())
	showCmd.AddCommand(NewToolsCmd())

	return showCmd
}
