package probeservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/redjax/tuxfetch/internal/constants"
	convert "github.com/redjax/tuxfetch/internal/utils/convert"
)

type darwinProber struct{ base }

func (p darwinProber) Distro(ctx context.Context) string {
	version := strings.TrimSpace(p.h.Runner.Output(ctx, "sw_vers", "-productVersion"))
	return strings.TrimSpace(fmt.Sprintf("macOS %s %s", p.pi.KernelName, version))
}

func (p darwinProber) Init(context.Context) string {
	return "launchd"
}

func (p darwinProber) Storage(ctx context.Context) string {
	out := p.h.Runner.Output(ctx, "df", "-Hl")
	v, err := parseDarwinDF(out)
	return p.h.orUnknown("storage", v, err)
}

// parseDarwinDF finds the row mounted on "/" and derives used space from size
// minus available, both in whole gigabytes.
func parseDarwinDF(out string) (string, error) {
	for _, row := range lines(out) {
		f := strings.Fields(row)
		if len(f) < 4 || f[len(f)-1] != "/" {
			continue
		}
		total, err := strconv.Atoi(trimUnit(f[1]))
		if err != nil {
			return "", fmt.Errorf("df: parsing size %q: %w", f[1], err)
		}
		free, err := strconv.Atoi(trimUnit(f[3]))
		if err != nil {
			return "", fmt.Errorf("df: parsing available %q: %w", f[3], err)
		}
		return fmt.Sprintf("%dG / %s", total-free, f[1]), nil
	}
	return "", errors.New("df: no row mounted on /")
}

// Memory reports the vm_stat page-out counter as "used". That is not resident
// memory; it is kept for output compatibility.
func (p darwinProber) Memory(ctx context.Context) string {
	bytes, err := strconv.ParseUint(strings.TrimSpace(p.h.Runner.Output(ctx, "sysctl", "-n", "hw.memsize")), 10, 64)
	if err != nil || bytes == 0 {
		return constants.Unknown
	}
	total := convert.BytesToMebibytes(bytes)

	used := 0
	for _, row := range lines(p.h.Runner.Output(ctx, "vm_stat")) {
		f := strings.Fields(row)
		if len(f) >= 2 && f[0] == "Pageouts:" {
			used = parseCount(f[1])
			break
		}
	}

	return fmt.Sprintf("%d / %d MB", used, total)
}

// Uptime is the third field of `uptime` without its trailing comma.
func (p darwinProber) Uptime(ctx context.Context) string {
	f := strings.Fields(p.h.Runner.Output(ctx, "uptime"))
	if len(f) < 3 {
		return constants.Unknown
	}
	up := trimUnit(f[2])
	if up == "" {
		return constants.Unknown
	}
	return up
}
