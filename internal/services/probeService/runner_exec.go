package probeservice

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/rs/zerolog"

	"github.com/redjax/tuxfetch/internal/utils"
)

// waitDelay bounds how long Run waits for the output pipes after the command
// is killed. A forked child that inherited stdout would otherwise keep them open.
const waitDelay = 500 * time.Millisecond

// ExecRunner runs real commands. Each command gets its own Timeout so a hung
// tool can't stall the whole run.
type ExecRunner struct {
	Timeout time.Duration
	Log     zerolog.Logger
}

func NewExecRunner(timeout time.Duration, log zerolog.Logger) *ExecRunner {
	return &ExecRunner{Timeout: timeout, Log: log}
}

func (r *ExecRunner) LookPath(name string) bool {
	return utils.IsCommandAvailable(name)
}

func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) string {
	var stdout bytes.Buffer
	r.run(ctx, &stdout, name, args...)
	return stdout.String()
}

func (r *ExecRunner) Succeeds(ctx context.Context, name string, args ...string) bool {
	return r.run(ctx, nil, name, args...) == nil
}

func (r *ExecRunner) run(ctx context.Context, stdout *bytes.Buffer, name string, args ...string) error {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	if stdout != nil {
		cmd.Stdout = stdout
	}
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	start := time.Now()
	err := cmd.Run()

	r.Log.Debug().
		Str("cmd", name).
		Strs("args", args).
		Dur("took", time.Since(start)).
		Err(err).
		Int("stderr_bytes", stderr.Len()).
		Msg("ran command")

	return err
}
