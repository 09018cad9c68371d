package completion

import (
	"fmt"
	"os"
)

// BestEffort runs side effects whose failure must never fail the
// surrounding operation. Each Run logs and swallows the error, so a
// skipped step is visible in output but invisible to the caller.
type BestEffort struct {
	logf func(format string, args ...any)
}

// NewBestEffort creates a runner. logf may be nil, in which case
// failures are written to stderr.
func NewBestEffort(logf func(format string, args ...any)) BestEffort {
	if logf == nil {
		logf = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	return BestEffort{logf: logf}
}

// Run executes fn and reports whether it succeeded. A failure is logged
// under name and otherwise discarded.
func (b BestEffort) Run(name string, fn func() error) bool {
	if err := fn(); err != nil {
		b.logf("warning: %s failed: %v", name, err)
		return false
	}
	return true
}
