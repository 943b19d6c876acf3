package fetchservice

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/redjax/tuxfetch/internal/constants"
	platformservice "github.com/redjax/tuxfetch/internal/services/platformService"
)

const (
	// mascotColumn is the width reserved on the left of every info line.
	mascotColumn = 15
	// labelWidth fits the longest label ("phone", "de/wm") plus two spaces.
	labelWidth = 7
)

// labelColors assigns each field key its label color.
func labelColors(p constants.Palette) map[string]string {
	return map[string]string{
		"device":   p.Cyan,
		"os":       p.Magenta,
		"kernel":   p.Green,
		"packages": p.Yellow,
		"shell":    p.Blue,
		"memory":   p.Red,
		"init":     p.Magenta,
		"desktop":  p.Green,
		"uptime":   p.Yellow,
		"disk":     p.Red,
	}
}

// mascot is the penguin drawn beside the pkgs through init lines.
func mascot(p constants.Palette) []string {
	return []string{
		fmt.Sprintf("     %s•%s_%s•%s", p.White, p.Black, p.White, p.Reset),
		fmt.Sprintf("     %soo%s|", p.Black, p.Reset),
		fmt.Sprintf("    %s/\\%s'\\", p.Yellow, p.Reset),
		fmt.Sprintf("   %s(%s\\_;/%s)%s", p.BgYellow, p.Reset, p.BgYellow, p.Reset),
	}
}

// glyphRow is the nerd-font color strip shown on generic Unix hosts.
func glyphRow(p constants.Palette) string {
	return fmt.Sprintf("        %s󰮯  %s󰊠  %s󰊠  %s󰊠  %s󰊠%s",
		p.Red, p.Blue, p.Green, p.Yellow, p.Cyan, p.Reset)
}

func padVisible(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Banner lays out the mascot and the labelled facts.
func Banner(f HostFacts, p constants.Palette) string {
	colors := labelColors(p)

	info := []string{""}
	mascotRow := -1
	for _, field := range f.Fields() {
		if field.Key == "packages" {
			mascotRow = len(info)
		}
		info = append(info, fmt.Sprintf("%s%s%s%s%s",
			colors[field.Key], runewidth.FillRight(field.Label, labelWidth), p.White, field.Value, p.Reset))
	}
	info = append(info, "")

	var left []string
	for i := 0; i < mascotRow; i++ {
		left = append(left, "")
	}
	left = append(left, mascot(p)...)
	for i := range left {
		left[i] = padVisible(left[i], mascotColumn)
	}

	var b strings.Builder
	joined := lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(left, "\n"), strings.Join(info, "\n"))
	// JoinHorizontal pads every row to the widest one
	for _, line := range strings.Split(joined, "\n") {
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteString("\n")
	}

	if f.Family == platformservice.FamilyUnix.String() {
		b.WriteString(glyphRow(p))
		b.WriteString("\n")
	}
	b.WriteString(p.Reset)
	b.WriteString("\n")

	return b.String()
}

// Render writes the banner to w.
func Render(w io.Writer, f HostFacts, p constants.Palette) error {
	_, err := io.WriteString(w, Banner(f, p))
	return err
}
