package fetchservice

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/redjax/tuxfetch/internal/config"
	"github.com/redjax/tuxfetch/internal/constants"
	platformservice "github.com/redjax/tuxfetch/internal/services/platformService"
	probeservice "github.com/redjax/tuxfetch/internal/services/probeService"
	"github.com/redjax/tuxfetch/internal/utils/spinner"
)

// Runtime holds everything built once per process: config, logger, the
// classified platform and the matching prober.
type Runtime struct {
	Config   *config.Config
	Log      zerolog.Logger
	Host     probeservice.Host
	Platform platformservice.PlatformInfo
	Prober   probeservice.Prober
}

// NewRuntime classifies the platform and selects its prober.
func NewRuntime(ctx context.Context, cfg *config.Config, log zerolog.Logger) *Runtime {
	host := probeservice.NewHost(probeservice.NewExecRunner(cfg.Timeout, log), log)
	pi := platformservice.Detect(ctx, host.LookupEnv, host.FS)

	log.Debug().
		Str("family", pi.Family.String()).
		Str("kernel", pi.KernelName).
		Str("release", pi.KernelRelease).
		Str("arch", pi.Architecture).
		Msg("classified platform")

	return &Runtime{
		Config:   cfg,
		Log:      log,
		Host:     host,
		Platform: pi,
		Prober:   probeservice.New(pi, host),
	}
}

// Palette is the default palette unless color is disabled by config or NO_COLOR.
func (r *Runtime) Palette() constants.Palette {
	if !r.Config.Color {
		return constants.PlainPalette()
	}
	if v, ok := os.LookupEnv(constants.EnvNoColor); ok && v != "" {
		return constants.PlainPalette()
	}
	return constants.DefaultPalette()
}

// Gather collects the host facts, showing a spinner on stderr while the
// probes run if stderr is a terminal.
func (r *Runtime) Gather(ctx context.Context) HostFacts {
	stop := spinner.Noop()
	if r.Config.Spinner && term.IsTerminal(int(os.Stderr.Fd())) {
		stop = spinner.StartSpinner(os.Stderr, "probing host")
	}
	facts := Gather(ctx, r.Prober, r.Host)
	stop()

	return facts
}

type runtimeKey struct{}

// WithRuntime stores rt in ctx for subcommands.
func WithRuntime(ctx context.Context, rt *Runtime) context.Context {
	return context.WithValue(ctx, runtimeKey{}, rt)
}

// FromContext returns the Runtime stored by WithRuntime, or nil.
func FromContext(ctx context.Context) *Runtime {
	rt, _ := ctx.Value(runtimeKey{}).(*Runtime)
	return rt
}
