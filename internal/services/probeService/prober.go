package probeservice

import (
	"context"

	platformservice "github.com/redjax/tuxfetch/internal/services/platformService"
)

// Prober answers every platform-dependent question. There is exactly one
// implementation per platform family, chosen once by New.
type Prober interface {
	Platform() platformservice.PlatformInfo
	Distro(ctx context.Context) string
	Init(ctx context.Context) string
	Packages(ctx context.Context) PackageCounts
	Storage(ctx context.Context) string
	Memory(ctx context.Context) string
	Uptime(ctx context.Context) string
	// Device is the phone brand and model; "" where it doesn't apply.
	Device(ctx context.Context) string
}

// New returns the Prober for pi.Family.
func New(pi platformservice.PlatformInfo, h Host) Prober {
	b := base{pi: pi, h: h}
	switch pi.Family {
	case platformservice.FamilyAndroid:
		return androidProber{b}
	case platformservice.FamilyDarwin:
		return darwinProber{b}
	default:
		return unixProber{b}
	}
}

// base carries the shared state and the probes that behave the same on
// every family.
type base struct {
	pi platformservice.PlatformInfo
	h  Host
}

func (b base) Platform() platformservice.PlatformInfo { return b.pi }

func (b base) Packages(ctx context.Context) PackageCounts {
	return CountPackages(ctx, b.h, b.pi.Family)
}

func (b base) Device(context.Context) string { return "" }
