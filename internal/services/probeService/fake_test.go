package probeservice

import (
	"context"
	"strings"
	"testing/fstest"

	"github.com/rs/zerolog"
)

// fakeRunner answers from canned tables and records every call as
// "which <name>" or "<name> <args...>".
type fakeRunner struct {
	paths   map[string]bool
	outputs map[string]string
	ok      map[string]bool
	calls   []string
}

func (f *fakeRunner) LookPath(name string) bool {
	f.calls = append(f.calls, "which "+name)
	return f.paths[name]
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) string {
	key := commandKey(name, args)
	f.calls = append(f.calls, key)
	return f.outputs[key]
}

func (f *fakeRunner) Succeeds(_ context.Context, name string, args ...string) bool {
	key := commandKey(name, args)
	f.calls = append(f.calls, key)
	return f.ok[key]
}

// ran reports whether a command (not a PATH lookup) with the given prefix was run.
func (f *fakeRunner) ran(prefix string) bool {
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

func (f *fakeRunner) commands() []string {
	var out []string
	for _, c := range f.calls {
		if !strings.HasPrefix(c, "which ") {
			out = append(out, c)
		}
	}
	return out
}

func commandKey(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

func testHost(r *fakeRunner, env map[string]string, files fstest.MapFS) Host {
	if files == nil {
		files = fstest.MapFS{}
	}
	return Host{
		Runner: r,
		LookupEnv: func(k string) (string, bool) {
			v, ok := env[k]
			return v, ok
		},
		FS:  files,
		Log: zerolog.Nop(),
	}
}
