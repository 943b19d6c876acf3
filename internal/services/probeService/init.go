package probeservice

import (
	"context"

	"github.com/redjax/tuxfetch/internal/constants"
	"github.com/redjax/tuxfetch/internal/utils/strutils"
)

// unixInit finds the supervisor of PID 1: a running systemd, then marker
// executables, then the raw command name of PID 1.
func unixInit(ctx context.Context, h Host) string {
	if h.Runner.Succeeds(ctx, "pidof", "-q", "systemd") {
		return "systemd"
	}

	for _, m := range constants.InitMarkers {
		if h.exists(m.Path) {
			return m.Name
		}
	}

	comm, err := h.readFile("/proc/1/comm")
	if err != nil {
		h.Log.Debug().Err(err).Msg("reading PID 1 command name")
	}
	if name := strutils.FirstField(comm); name != "" {
		return name
	}
	return constants.UnknownLower
}
