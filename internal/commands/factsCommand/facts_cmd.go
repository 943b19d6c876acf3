package factsCommand

import (
	"fmt"
	"strings"

	fetchservice "github.com/redjax/tuxfetch/internal/services/fetchService"

	"github.com/spf13/cobra"
)

func NewFactsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "facts",
		Short: "Print the gathered host facts as structured data",
		Long: `Gather the same facts as the banner and write them as json, yaml, toml, or a table.

Example:
  tuxfetch facts -o yaml
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := fetchservice.FromContext(cmd.Context())
			if rt == nil {
				return fmt.Errorf("runtime not initialized")
			}

			facts := rt.Gather(cmd.Context())
			return fetchservice.Encode(cmd.OutOrStdout(), facts, strings.ToLower(output))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", fetchservice.FormatJSON, "Output format: json, yaml, toml, table")

	return cmd
}
