package showCommand

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/redjax/tuxfetch/internal/constants"
	"github.com/redjax/tuxfetch/internal/utils"
)

// probeTools lists the executables each probe may call, besides the package managers.
var probeTools = []struct {
	probe string
	tools []string
}{
	{"init", []string{"pidof"}},
	{"packages", []string{"snap", "flatpak", "brew"}},
	{"disk", []string{"df"}},
	{"ram", []string{"free", "sysctl", "vm_stat"}},
	{"up", []string{"uptime"}},
	{"de/wm", []string{"xprop", "pgrep"}},
	{"os", []string{"sw_vers"}},
	{"phone", []string{"getprop"}},
}

func NewToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Show which external tools the probes can find on PATH",
		Long: `Like 'which' for every tool tuxfetch may run. A missing tool is not an error;
the probe that needs it falls back to "Unknown".`,
		Run: func(cmd *cobra.Command, args []string) {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Probe", "Tool", "Path"})

			for _, m := range constants.PrimaryPackageManagers {
				t.AppendRow(table.Row{"pkgs", m, pathOrDash(m)})
			}
			for _, pt := range probeTools {
				for _, tool := range pt.tools {
					t.AppendRow(table.Row{pt.probe, tool, pathOrDash(tool)})
				}
			}

			t.Render()
		},
	}
}

func pathOrDash(tool string) string {
	if p := utils.Which(tool); p != "" {
		return p
	}
	return "-"
}
