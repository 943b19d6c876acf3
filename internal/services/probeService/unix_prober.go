package probeservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redjax/tuxfetch/internal/constants"
)

type unixProber struct{ base }

var osReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

func (p unixProber) Distro(context.Context) string {
	for _, path := range osReleasePaths {
		content, err := p.h.readFile(path)
		if err != nil {
			continue
		}
		if name := osReleaseField(content, "PRETTY_NAME"); name != "" {
			return name
		}
	}
	return constants.Unknown
}

func (p unixProber) Init(ctx context.Context) string {
	return unixInit(ctx, p.h)
}

func (p unixProber) Storage(ctx context.Context) string {
	out := p.h.Runner.Output(ctx, "df", "-h", "--output=used,size", "/")
	v, err := parseUnixDF(out)
	return p.h.orUnknown("storage", v, err)
}

// parseUnixDF reads the row after the header of `df --output=used,size`.
func parseUnixDF(out string) (string, error) {
	rows := lines(out)
	if len(rows) < 2 {
		return "", errors.New("df: no data row")
	}
	f := strings.Fields(rows[1])
	if len(f) < 2 {
		return "", fmt.Errorf("df: unexpected row %q", rows[1])
	}
	return fmt.Sprintf("%s / %s", f[0], f[1]), nil
}

func (p unixProber) Memory(ctx context.Context) string {
	return freeMemory(ctx, p.h)
}

func (p unixProber) Uptime(ctx context.Context) string {
	return prettyUptime(ctx, p.h)
}

// freeMemory formats the used and total columns of `free --mega`.
func freeMemory(ctx context.Context, h Host) string {
	out := h.Runner.Output(ctx, "free", "--mega")
	for _, row := range lines(out) {
		f := strings.Fields(row)
		if len(f) >= 3 && f[0] == "Mem:" {
			return fmt.Sprintf("%s / %s MB", f[2], f[1])
		}
	}
	return constants.Unknown
}

func prettyUptime(ctx context.Context, h Host) string {
	out := strings.TrimSpace(h.Runner.Output(ctx, "uptime", "-p"))
	out = strings.TrimSpace(strings.TrimPrefix(out, "up"))
	if out == "" {
		return constants.Unknown
	}
	return out
}
