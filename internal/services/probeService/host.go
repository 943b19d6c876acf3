// Package probeservice gathers individual host facts. Every probe talks to the
// machine only through Host, so tests can swap in canned command output, a
// fake environment and an in-memory filesystem.
package probeservice

import (
	"context"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/redjax/tuxfetch/internal/constants"
)

// Runner runs external commands. Implementations never fail on a non-zero exit
// status; callers just get whatever text the command produced, possibly "".
type Runner interface {
	// LookPath reports whether name resolves to an executable on PATH.
	LookPath(name string) bool
	// Output returns the command's stdout.
	Output(ctx context.Context, name string, args ...string) string
	// Succeeds reports whether the command ran and exited 0.
	Succeeds(ctx context.Context, name string, args ...string) bool
}

// Host bundles everything a probe may read.
type Host struct {
	Runner    Runner
	LookupEnv func(string) (string, bool)
	// FS is rooted at "/"; absolute paths are accessed without the leading slash.
	FS  fs.FS
	Log zerolog.Logger
}

// NewHost returns a Host backed by the real environment and root filesystem.
func NewHost(r Runner, log zerolog.Logger) Host {
	return Host{
		Runner:    r,
		LookupEnv: os.LookupEnv,
		FS:        os.DirFS("/"),
		Log:       log,
	}
}

func (h Host) getenv(key string) string {
	if h.LookupEnv == nil {
		return ""
	}
	v, _ := h.LookupEnv(key)
	return v
}

// HasEnv reports whether key is present in the environment, even if empty.
func (h Host) HasEnv(key string) bool {
	if h.LookupEnv == nil {
		return false
	}
	_, ok := h.LookupEnv(key)
	return ok
}

func (h Host) exists(path string) bool {
	if h.FS == nil {
		return false
	}
	_, err := fs.Stat(h.FS, strings.TrimPrefix(path, "/"))
	return err == nil
}

func (h Host) readFile(path string) (string, error) {
	if h.FS == nil {
		return "", fs.ErrNotExist
	}
	data, err := fs.ReadFile(h.FS, strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// orUnknown contains a probe failure: the error is logged and the fallback
// value is returned in its place.
func (h Host) orUnknown(probe string, value string, err error) string {
	if err != nil {
		h.Log.Error().Err(err).Str("probe", probe).Msg("probe failed")
		return constants.Unknown
	}
	return value
}
