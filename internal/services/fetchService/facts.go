package fetchservice

import (
	"context"

	"github.com/redjax/tuxfetch/internal/constants"
	probeservice "github.com/redjax/tuxfetch/internal/services/probeService"
)

// HostFacts is one snapshot of the host. Gather fills it once; nothing
// modifies it afterwards.
type HostFacts struct {
	Family        string
	KernelName    string
	DistroName    string
	KernelRelease string
	Architecture  string
	// Device is only set on Android.
	Device        string
	Packages      string
	PackageCounts probeservice.PackageCounts
	Shell         string
	Memory        string
	Init          string
	// Desktop is only probed when HasDisplay is true.
	HasDisplay bool
	Desktop    string
	Uptime     string
	Storage    string
}

// Gather runs every probe once, in order. A failing probe only affects its
// own field.
func Gather(ctx context.Context, p probeservice.Prober, h probeservice.Host) HostFacts {
	pi := p.Platform()

	f := HostFacts{
		Family:        pi.Family.String(),
		KernelName:    pi.KernelName,
		KernelRelease: pi.KernelRelease,
		Architecture:  pi.Architecture,
	}

	f.Device = p.Device(ctx)
	f.DistroName = p.Distro(ctx)

	f.PackageCounts = p.Packages(ctx)
	f.Packages = probeservice.FormatPackages(f.PackageCounts)

	f.Shell = probeservice.Shell(h)
	f.Memory = p.Memory(ctx)
	f.Init = p.Init(ctx)

	f.HasDisplay = h.HasEnv(constants.EnvDisplay)
	if f.HasDisplay {
		f.Desktop = probeservice.DesktopEnvironment(ctx, h)
	}

	f.Uptime = p.Uptime(ctx)
	f.Storage = p.Storage(ctx)

	h.Log.Debug().Interface("facts", f).Msg("gathered host facts")

	return f
}

// Field is one labelled fact, in display order.
type Field struct {
	Key   string
	Label string
	Value string
}

// Fields lists the facts that apply to this host, in banner order.
func (f HostFacts) Fields() []Field {
	var out []Field
	if f.Device != "" {
		out = append(out, Field{"device", "phone", f.Device})
	}
	out = append(out,
		Field{"os", "os", f.DistroName + " " + f.Architecture},
		Field{"kernel", "ker", f.KernelRelease},
		Field{"packages", "pkgs", f.Packages},
		Field{"shell", "sh", f.Shell},
		Field{"memory", "ram", f.Memory},
		Field{"init", "init", f.Init},
	)
	if f.HasDisplay {
		out = append(out, Field{"desktop", "de/wm", f.Desktop})
	}
	out = append(out,
		Field{"uptime", "up", f.Uptime},
		Field{"disk", "disk", f.Storage},
	)
	return out
}
