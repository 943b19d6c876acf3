package showCommand

import (
	"fmt"
	"strconv"

	fetchservice "github.com/redjax/tuxfetch/internal/services/fetchService"

	"github.com/spf13/cobra"
)

func NewPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "Show the banner's color palette",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := fetchservice.FromContext(cmd.Context())
			if rt == nil {
				return fmt.Errorf("runtime not initialized")
			}
			p := rt.Palette()

			for _, c := range p.Named() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-9s %s%s%s %s\n",
					c.Name, c.Code, "sample", p.Reset, strconv.Quote(c.Code))
			}
			return nil
		},
	}
}
