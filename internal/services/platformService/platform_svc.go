package platformservice

import (
	"context"
	"io/fs"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/redjax/tuxfetch/internal/constants"
)

// Family is the closed set of platforms the probes know how to query.
type Family int

const (
	// FamilyUnix is the generic Unix-like path and the fallback when nothing else matches.
	FamilyUnix Family = iota
	FamilyAndroid
	FamilyDarwin
)

func (f Family) String() string {
	switch f {
	case FamilyAndroid:
		return "android"
	case FamilyDarwin:
		return "darwin"
	default:
		return "unix"
	}
}

// PlatformInfo is computed once at startup and passed to everything that
// needs to branch on the platform.
type PlatformInfo struct {
	Family Family
	// e.g. "Linux", "Darwin", "Android"
	KernelName string
	// e.g. "6.8.0-45-generic"
	KernelRelease string
	// e.g. "x86_64", "arm64"
	Architecture string
}

// androidBuildProp is relative to the fs.FS root, which is "/" in production.
const androidBuildProp = "system/build.prop"

// Classify determines the platform family from GOOS and Android markers.
func Classify(goos string, lookupEnv func(string) (string, bool), fsys fs.FS) Family {
	switch goos {
	case "android":
		return FamilyAndroid
	case "darwin", "ios":
		return FamilyDarwin
	case "linux":
		if v, ok := lookupEnv(constants.EnvAndroidRoot); ok && v != "" {
			return FamilyAndroid
		}
		if fsys != nil {
			if _, err := fs.Stat(fsys, androidBuildProp); err == nil {
				return FamilyAndroid
			}
		}
	}
	return FamilyUnix
}

// Detect classifies the running host and reads its kernel identity.
func Detect(ctx context.Context, lookupEnv func(string) (string, bool), fsys fs.FS) PlatformInfo {
	pi := PlatformInfo{
		Family: Classify(runtime.GOOS, lookupEnv, fsys),
	}

	sysname, release, machine := uname()

	pi.KernelName = sysname
	if pi.Family == FamilyAndroid {
		pi.KernelName = "Android"
	}

	if v, err := host.KernelVersionWithContext(ctx); err == nil && v != "" {
		pi.KernelRelease = strings.TrimSpace(v)
	} else {
		pi.KernelRelease = release
	}

	if v, err := host.KernelArch(); err == nil && v != "" {
		pi.Architecture = strings.TrimSpace(v)
	} else {
		pi.Architecture = machine
	}

	pi.fillUnknown()

	return pi
}

func (p *PlatformInfo) fillUnknown() {
	for _, field := range []*string{&p.KernelName, &p.KernelRelease, &p.Architecture} {
		if *field == "" {
			*field = constants.UnknownLower
		}
	}
}
