package objsys

import "go.uber.org/zap"

// logger is package-level because the core is a per-process, per-interpreter
// singleton facility (spec.md §3 Foundation) and every Foundation in a
// process shares the same logging sink, in the manner of the teacher
// repo's convention of a package logger rather than threading one through
// every call. Only epoch bumps are logged, at Debug; chain builds,
// invocations, cache activity and rejected structural edits are not
// logged, so the hot path pays no formatting cost.
var logger = zap.NewNop()

// SetLogger installs the zap logger used for diagnostic output. Passing
// nil resets to a no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		logger = zap.NewNop()
		return
	}
	logger = l
}
