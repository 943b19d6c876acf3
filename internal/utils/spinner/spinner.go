package spinner

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// StartSpinner starts a terminal spinner with the given message on w.
// Returns a stop function to halt and clear the spinner.
//
// Usage: assign the spinner to a 'stop' variable, run some code, then call stop().
// i.e.:
//
//	stop := spinner.StartSpinner(os.Stderr, "probing host")
//	facts := fetchservice.Gather(ctx, prober)
//	stop()
func StartSpinner(w io.Writer, message string) func() {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithWriter(w),
		spinner.WithHiddenCursor(true),
	)
	s.Suffix = " " + message
	s.Start()

	return func() {
		s.Stop()
	}
}

// Noop is returned in place of a spinner when output isn't a terminal.
func Noop() func() {
	return func() {}
}
