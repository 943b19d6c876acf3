package showCommand

import (
	"fmt"
	"strings"

	fetchservice "github.com/redjax/tuxfetch/internal/services/fetchService"

	"github.com/spf13/cobra"
)

func NewPlatformCmd() *cobra.Command {
	var properties []string

	cmd := &cobra.Command{
		Use:   "platform",
		Short: "Show the detected platform. You can pass multiple --property <propertyname> flags.",
		Long: `Show the platform family the probes were selected for.

Available properties for --property:
  - family
  - kernel (alias: kernelname)
  - release (alias: kernelrelease)
  - arch (alias: architecture)
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := fetchservice.FromContext(cmd.Context())
			if rt == nil {
				return fmt.Errorf("runtime not initialized")
			}
			pi := rt.Platform
			out := cmd.OutOrStdout()

			if len(properties) == 0 {
				fmt.Fprintf(out, "Family:         %s\n", pi.Family)
				fmt.Fprintf(out, "Kernel:         %s\n", pi.KernelName)
				fmt.Fprintf(out, "Kernel Release: %s\n", pi.KernelRelease)
				fmt.Fprintf(out, "Architecture:   %s\n", pi.Architecture)
				return nil
			}

			for _, prop := range properties {
				switch strings.ToLower(prop) {
				case "family":
					fmt.Fprintf(out, "family: %s\n", pi.Family)
				case "kernel", "kernelname":
					fmt.Fprintf(out, "kernel: %s\n", pi.KernelName)
				case "release", "kernelrelease":
					fmt.Fprintf(out, "release: %s\n", pi.KernelRelease)
				case "arch", "architecture":
					fmt.Fprintf(out, "arch: %s\n", pi.Architecture)
				default:
					fmt.Fprintf(out, "Unknown property: %s\n", prop)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&properties, "property", nil, "Show only specific properties (can be repeated)")
	return cmd
}
