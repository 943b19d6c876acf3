package probeservice

import (
	"context"
	"fmt"

	"github.com/redjax/tuxfetch/internal/constants"
	platformservice "github.com/redjax/tuxfetch/internal/services/platformService"
)

// PackageCounts holds the primary manager's count next to the supplementary
// snap, flatpak and brew counts. Zero means absent or empty.
type PackageCounts struct {
	PrimaryManager string
	Primary        int
	Snaps          int
	Flatpaks       int
	Formulas       int
	Casks          int
}

// Brews is formulas plus casks.
func (c PackageCounts) Brews() int {
	return c.Formulas + c.Casks
}

// listing is the command that enumerates installed packages for a manager,
// one package per line after skipping header lines.
type listing struct {
	exe    string
	args   []string
	header int
}

var primaryListings = map[string]listing{
	"xbps-install": {exe: "xbps-query", args: []string{"-l"}},
	"apk":          {exe: "apk", args: []string{"search"}},
	"port":         {exe: "port", args: []string{"installed"}},
	"apt":          {exe: "apt", args: []string{"list", "--installed"}, header: 1},
	"pacman":       {exe: "pacman", args: []string{"-Q"}},
	"nix":          {exe: "nix-env", args: []string{"-qa", "--installed", "*"}},
	"dnf":          {exe: "dnf", args: []string{"list", "installed"}},
	"rpm":          {exe: "rpm", args: []string{"-qa"}},
	"emerge":       {exe: "qlist", args: []string{"-I"}},
	"eopkg":        {exe: "eopkg", args: []string{"li"}},
}

func (l listing) count(ctx context.Context, h Host) int {
	return nonNegative(countLines(h.Runner.Output(ctx, l.exe, l.args...)) - l.header)
}

// primaryCount returns the first manager found in priority order and its count.
// Later managers are never consulted, even when the first one reports zero.
func primaryCount(ctx context.Context, h Host, family platformservice.Family) (string, int) {
	for _, manager := range constants.PrimaryPackageManagers {
		if !h.Runner.LookPath(manager) {
			continue
		}
		// /usr/bin/apt on macOS is the Java annotation tool.
		if manager == "apt" && family == platformservice.FamilyDarwin {
			return manager, 0
		}
		l, ok := primaryListings[manager]
		if !ok {
			return manager, 0
		}
		return manager, l.count(ctx, h)
	}
	return "", 0
}

func snapCount(ctx context.Context, h Host) int {
	if !h.Runner.LookPath("snap") {
		return 0
	}
	return listing{exe: "snap", args: []string{"list"}, header: 1}.count(ctx, h)
}

func flatpakCount(ctx context.Context, h Host) int {
	if !h.Runner.LookPath("flatpak") {
		return 0
	}
	return listing{exe: "flatpak", args: []string{"list"}}.count(ctx, h)
}

func brewCounts(ctx context.Context, h Host) (formulas, casks int) {
	if !h.Runner.LookPath("brew") {
		return 0, 0
	}
	formulas = listing{exe: "brew", args: []string{"list", "--formula"}}.count(ctx, h)
	casks = listing{exe: "brew", args: []string{"list", "--casks"}}.count(ctx, h)
	return formulas, casks
}

// CountPackages runs the primary and every supplementary sub-probe.
func CountPackages(ctx context.Context, h Host, family platformservice.Family) PackageCounts {
	var c PackageCounts
	c.PrimaryManager, c.Primary = primaryCount(ctx, h, family)
	c.Snaps = snapCount(ctx, h)
	c.Flatpaks = flatpakCount(ctx, h)
	c.Formulas, c.Casks = brewCounts(ctx, h)

	h.Log.Debug().
		Str("primary_manager", c.PrimaryManager).
		Int("primary", c.Primary).
		Int("snaps", c.Snaps).
		Int("flatpaks", c.Flatpaks).
		Int("formulas", c.Formulas).
		Int("casks", c.Casks).
		Msg("counted packages")

	return c
}

// FormatPackages renders counts for the "pkgs" line. Snaps take precedence over
// flatpaks, which take precedence over brews; only snaps can be shown
// alongside flatpaks.
func FormatPackages(c PackageCounts) string {
	brews := func() string {
		return fmt.Sprintf("%d brews (%d formulas & %d casks)", c.Brews(), c.Formulas, c.Casks)
	}

	switch {
	case c.Primary > 0:
		result := fmt.Sprintf("%d", c.Primary)
		switch {
		case c.Snaps > 0:
			result += fmt.Sprintf(" (%d snaps", c.Snaps)
			if c.Flatpaks > 0 {
				result += fmt.Sprintf(", %d flatpaks)", c.Flatpaks)
			} else {
				result += ")"
			}
		case c.Flatpaks > 0:
			result += fmt.Sprintf(" (%d flatpaks)", c.Flatpaks)
		case c.Brews() > 0:
			result += ", " + brews()
		}
		return result
	case c.Snaps > 0:
		return fmt.Sprintf("%d snaps", c.Snaps)
	case c.Flatpaks > 0:
		return fmt.Sprintf("%d flatpaks", c.Flatpaks)
	case c.Brews() > 0:
		return brews()
	default:
		return constants.Unknown
	}
}
