package versioncommand

import (
	"fmt"

	"github.com/redjax/tuxfetch/internal/version"
	"github.com/spf13/cobra"
)

func NewVersionCommand() *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print CLI's version",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.GetPackageInfo()
			out := cmd.OutOrStdout()

			if !long {
				fmt.Fprintln(out, info)
				return
			}

			fmt.Fprintf(out,
				"Program: %s\nOwner: %s\nRepository Name: %s\nRepository URL: %s\nVersion: %s\nCommit: %s\nRelease Date: %s\n",
				info.PackageName,
				info.RepoUser,
				info.RepoName,
				info.RepoUrl,
				info.PackageVersion,
				info.PackageCommit,
				info.PackageReleaseDate,
			)
		},
	}

	cmd.Flags().BoolVarP(&long, "long", "l", false, "Show repository info along with the version")

	return cmd
}
