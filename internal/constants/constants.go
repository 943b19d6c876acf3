package constants

// PrimaryPackageManagers is the priority order used to pick the primary package
// manager. Only the first executable found on PATH is counted.
var PrimaryPackageManagers = []string{
	"xbps-install",
	"apk",
	"port",
	"apt",
	"pacman",
	"nix",
	"dnf",
	"rpm",
	"emerge",
	"eopkg",
}

// InitMarker maps an executable path to the init system it implies.
type InitMarker struct {
	Path string
	Name string
}

// InitMarkers are checked in order after systemd.
var InitMarkers = []InitMarker{
	{Path: "/sbin/openrc", Name: "openrc"},
	{Path: "/sbin/dinit", Name: "dinit"},
	{Path: "/sbin/runit", Name: "runit"},
	{Path: "/sbin/s6-svscan", Name: "s6"},
}

// NonEWMHWindowManagers don't advertise themselves through _NET_SUPPORTING_WM_CHECK,
// so they can only be found by process name.
var NonEWMHWindowManagers = []string{
	"sway",
	"kiwmi",
	"wayfire",
	"sowm",
	"catwm",
	"fvwm",
	"dwm",
	"2bwm",
	"monsterwm",
	"tinywm",
	"xmonad",
}

// Fallback values shown when a probe can't produce an answer.
const (
	Unknown      = "Unknown"
	UnknownLower = "unknown"
)

// Environment variables read by the probes.
const (
	EnvCurrentDesktop = "XDG_CURRENT_DESKTOP"
	EnvDisplay        = "DISPLAY"
	EnvShell          = "SHELL"
	EnvAndroidRoot    = "ANDROID_ROOT"
	EnvNoColor        = "NO_COLOR"
)

// PlaceholderDesktop is set by some Java window setups and never names a real desktop.
const PlaceholderDesktop = "LG3D"
