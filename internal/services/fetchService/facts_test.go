package fetchservice

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"

	"github.com/redjax/tuxfetch/internal/constants"
	platformservice "github.com/redjax/tuxfetch/internal/services/platformService"
	probeservice "github.com/redjax/tuxfetch/internal/services/probeService"
)

// absentRunner behaves like a host with no external tools installed.
type absentRunner struct{}

func (absentRunner) LookPath(string) bool                             { return false }
func (absentRunner) Output(context.Context, string, ...string) string { return "" }
func (absentRunner) Succeeds(context.Context, string, ...string) bool { return false }

func bareHost(env map[string]string) probeservice.Host {
	return probeservice.Host{
		Runner: absentRunner{},
		LookupEnv: func(k string) (string, bool) {
			v, ok := env[k]
			return v, ok
		},
		FS:  fstest.MapFS{},
		Log: zerolog.Nop(),
	}
}

func gatherBare(family platformservice.Family, env map[string]string) HostFacts {
	h := bareHost(env)
	pi := platformservice.PlatformInfo{
		Family:        family,
		KernelName:    "Linux",
		KernelRelease: "6.8.0",
		Architecture:  "x86_64",
	}
	return Gather(context.Background(), probeservice.New(pi, h), h)
}

func TestGather_NothingInstalled(t *testing.T) {
	f := gatherBare(platformservice.FamilyUnix, map[string]string{"DISPLAY": ":0"})

	want := map[string]string{
		"distro":   "Unknown",
		"packages": "Unknown",
		"shell":    "unknown",
		"memory":   "Unknown",
		"init":     "unknown",
		"desktop":  "unknown",
		"uptime":   "Unknown",
		"storage":  "Unknown",
	}
	got := map[string]string{
		"distro":   f.DistroName,
		"packages": f.Packages,
		"shell":    f.Shell,
		"memory":   f.Memory,
		"init":     f.Init,
		"desktop":  f.Desktop,
		"uptime":   f.Uptime,
		"storage":  f.Storage,
	}
	for k, w := range want {
		if got[k] != w {
			t.Errorf("%s = %q, want %q", k, got[k], w)
		}
	}
	if f.KernelRelease != "6.8.0" || f.Architecture != "x86_64" {
		t.Errorf("platform fields not carried over: %+v", f)
	}
}

func TestGather_DesktopOnlyWithDisplay(t *testing.T) {
	f := gatherBare(platformservice.FamilyUnix, map[string]string{"XDG_CURRENT_DESKTOP": "KDE"})

	if f.HasDisplay {
		t.Error("HasDisplay should be false without DISPLAY")
	}
	if f.Desktop != "" {
		t.Errorf("Desktop = %q, should not be probed without DISPLAY", f.Desktop)
	}

	f = gatherBare(platformservice.FamilyUnix, map[string]string{"XDG_CURRENT_DESKTOP": "KDE", "DISPLAY": ":1"})
	if f.Desktop != "KDE" {
		t.Errorf("Desktop = %q, want KDE", f.Desktop)
	}
}

func TestBanner_CompleteWithFallbacks(t *testing.T) {
	f := gatherBare(platformservice.FamilyUnix, map[string]string{"DISPLAY": ":0"})
	out := Banner(f, constants.PlainPalette())

	for _, want := range []string{
		"os     Unknown x86_64",
		"ker    6.8.0",
		"pkgs   Unknown",
		"sh     unknown",
		"ram    Unknown",
		"init   unknown",
		"de/wm  unknown",
		"up     Unknown",
		"disk   Unknown",
		"󰮯",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("banner missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "phone") {
		t.Error("phone line shown on a unix host")
	}
	if strings.Contains(out, "\033[") {
		t.Error("plain palette produced escape codes")
	}
}

func TestBanner_MascotAlignedWithPackages(t *testing.T) {
	f := gatherBare(platformservice.FamilyUnix, nil)
	lines := strings.Split(Banner(f, constants.PlainPalette()), "\n")

	var pkgs, initLine string
	for _, l := range lines {
		if strings.Contains(l, "pkgs") {
			pkgs = l
		}
		if strings.Contains(l, "init ") {
			initLine = l
		}
	}
	if !strings.HasPrefix(pkgs, "     •_•") {
		t.Errorf("mascot head not on the pkgs line: %q", pkgs)
	}
	if !strings.HasPrefix(initLine, "   (\\_;/)") {
		t.Errorf("mascot feet not on the init line: %q", initLine)
	}
	col := runewidth.StringWidth(pkgs[:strings.Index(pkgs, "pkgs")])
	if col != mascotColumn {
		t.Errorf("label starts at column %d, want %d", col, mascotColumn)
	}
}

func TestBanner_NoTrailingPadding(t *testing.T) {
	f := gatherBare(platformservice.FamilyUnix, map[string]string{"DISPLAY": ":0"})

	for _, p := range []constants.Palette{constants.PlainPalette(), constants.DefaultPalette()} {
		lines := strings.Split(Banner(f, p), "\n")
		for i, l := range lines {
			if strings.HasSuffix(l, " ") {
				t.Errorf("line %d has trailing spaces: %q", i, l)
			}
		}
		if lines[0] != "" {
			t.Errorf("first line = %q, want empty", lines[0])
		}
	}
}

func TestBanner_ConditionalLines(t *testing.T) {
	android := gatherBare(platformservice.FamilyAndroid, nil)
	out := Banner(android, constants.PlainPalette())
	if !strings.Contains(out, "phone  Unknown") {
		t.Errorf("android banner missing phone line:\n%s", out)
	}
	if strings.Contains(out, "de/wm") {
		t.Error("de/wm shown without a display")
	}
	if strings.Contains(out, "󰮯") {
		t.Error("glyph row shown on android")
	}

	darwin := gatherBare(platformservice.FamilyDarwin, nil)
	out = Banner(darwin, constants.PlainPalette())
	if strings.Contains(out, "󰮯") || strings.Contains(out, "phone") {
		t.Errorf("darwin banner has unix/android-only lines:\n%s", out)
	}
	if !strings.Contains(out, "init   launchd") {
		t.Errorf("darwin banner missing launchd:\n%s", out)
	}
}

func TestBanner_DefaultPaletteColorsLabels(t *testing.T) {
	f := gatherBare(platformservice.FamilyUnix, nil)
	p := constants.DefaultPalette()
	out := Banner(f, p)

	if !strings.Contains(out, p.Yellow+"pkgs") {
		t.Error("pkgs label is not yellow")
	}
	if !strings.HasSuffix(out, p.Reset+"\n") {
		t.Error("banner should end by resetting attributes")
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	f := gatherBare(platformservice.FamilyUnix, nil)
	if err := Render(&buf, f, constants.PlainPalette()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if buf.String() != Banner(f, constants.PlainPalette()) {
		t.Error("Render output differs from Banner")
	}
}

func TestEncode_JSON(t *testing.T) {
	f := HostFacts{
		Family:        "unix",
		DistroName:    "Debian GNU/Linux 12 (bookworm)",
		Packages:      "1500 (3 snaps)",
		PackageCounts: probeservice.PackageCounts{PrimaryManager: "apt", Primary: 1500, Snaps: 3},
		HasDisplay:    true,
		Desktop:       "GNOME",
	}

	var buf bytes.Buffer
	if err := Encode(&buf, f, "json"); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if doc["distro"] != "Debian GNU/Linux 12 (bookworm)" || doc["desktop"] != "GNOME" {
		t.Errorf("unexpected document: %v", doc)
	}
	if _, ok := doc["device"]; ok {
		t.Error("device should be omitted off Android")
	}
	pkgs, ok := doc["packages"].(map[string]interface{})
	if !ok || pkgs["primary_manager"] != "apt" || pkgs["primary"] != float64(1500) {
		t.Errorf("packages = %v", doc["packages"])
	}
}

func TestEncode_YAMLAndTOML(t *testing.T) {
	f := HostFacts{Family: "unix", Shell: "zsh"}

	for _, format := range []string{"yaml", "toml"} {
		var buf bytes.Buffer
		if err := Encode(&buf, f, format); err != nil {
			t.Fatalf("Encode(%s): %v", format, err)
		}
		if !strings.Contains(buf.String(), "zsh") {
			t.Errorf("%s output missing shell:\n%s", format, buf.String())
		}
	}
}

func TestEncode_Table(t *testing.T) {
	f := gatherBare(platformservice.FamilyUnix, nil)

	var buf bytes.Buffer
	if err := Encode(&buf, f, "table"); err != nil {
		t.Fatalf("Encode(table): %v", err)
	}
	for _, want := range []string{"pkgs", "disk", "Unknown"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("table missing %q:\n%s", want, buf.String())
		}
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, HostFacts{}, "xml"); err == nil {
		t.Fatal("expected error for xml")
	}
}
