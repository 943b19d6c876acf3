package probeservice

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/redjax/tuxfetch/internal/constants"
)

// DesktopEnvironment names the running desktop or window manager. It tries, in
// order: XDG_CURRENT_DESKTOP, the EWMH check window via xprop, then known
// non-EWMH window managers by process name.
func DesktopEnvironment(ctx context.Context, h Host) string {
	wm := h.getenv(constants.EnvCurrentDesktop)

	if wm == "" && h.HasEnv(constants.EnvDisplay) && h.Runner.LookPath("xprop") {
		wm = ewmhWindowManager(ctx, h)
	}

	if wm == "" || wm == constants.PlaceholderDesktop {
		wm = ""
		for _, name := range constants.NonEWMHWindowManagers {
			if h.Runner.Succeeds(ctx, "pgrep", "-x", name) {
				wm = name
				break
			}
		}
	}

	if wm == "" {
		return constants.UnknownLower
	}
	return wm
}

func ewmhWindowManager(ctx context.Context, h Host) string {
	// _NET_SUPPORTING_WM_CHECK: window id # 0x1e00003
	out := strings.Fields(h.Runner.Output(ctx, "xprop", "-root", "-notype", "_NET_SUPPORTING_WM_CHECK"))
	if len(out) == 0 {
		return ""
	}
	id := out[len(out)-1]
	if !strings.HasPrefix(id, "0x") {
		return ""
	}

	props := h.Runner.Output(ctx, "xprop", "-id", id, "-notype", "-len", "100", "-f", "_NET_WM_NAME", "8t")
	for _, line := range strings.Split(props, "\n") {
		if !strings.HasPrefix(line, "_NET_WM_NAME") {
			continue
		}
		// _NET_WM_NAME = "i3"
		parts := strings.Split(line, "\"")
		if len(parts) >= 2 {
			return parts[1]
		}
	}
	return ""
}

// Shell returns the base name of $SHELL.
func Shell(h Host) string {
	sh := h.getenv(constants.EnvShell)
	if sh == "" {
		return constants.UnknownLower
	}
	return filepath.Base(sh)
}
