package probeservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redjax/tuxfetch/internal/constants"
	"github.com/redjax/tuxfetch/internal/utils/strutils"
)

const androidDataMount = "/data"

type androidProber struct{ base }

func (p androidProber) Distro(context.Context) string {
	return "Android"
}

func (p androidProber) Init(context.Context) string {
	return "init.rc"
}

func (p androidProber) Storage(ctx context.Context) string {
	out := p.h.Runner.Output(ctx, "df", "-h")
	v, err := parseAndroidDF(out)
	return p.h.orUnknown("storage", v, err)
}

// parseAndroidDF takes the first row mentioning the data mount and reports its
// used and size columns verbatim.
func parseAndroidDF(out string) (string, error) {
	for _, row := range lines(out) {
		if !strings.Contains(row, androidDataMount) {
			continue
		}
		f := strings.Fields(row)
		if len(f) < 3 {
			return "", fmt.Errorf("df: unexpected row %q", row)
		}
		return fmt.Sprintf("%sB / %sB", f[2], f[1]), nil
	}
	return "", errors.New("df: no row for " + androidDataMount)
}

func (p androidProber) Memory(ctx context.Context) string {
	return freeMemory(ctx, p.h)
}

func (p androidProber) Uptime(ctx context.Context) string {
	return prettyUptime(ctx, p.h)
}

func (p androidProber) Device(ctx context.Context) string {
	brand := strutils.ToTitleCase(strings.TrimSpace(p.h.Runner.Output(ctx, "getprop", "ro.product.brand")))
	model := strings.TrimSpace(p.h.Runner.Output(ctx, "getprop", "ro.product.model"))

	device := strings.TrimSpace(brand + " " + model)
	if device == "" {
		return constants.Unknown
	}
	return device
}
