package buddy

import "go.uber.org/zap"

// logger is silent by default so embedding a pool in a larger binary
// never produces output the host program didn't ask for. SetLogger lets
// that program opt in to structured diagnostics.
var logger = zap.NewNop()

// SetLogger replaces the package-level logger used for pool lifecycle,
// out-of-memory, and fatal-mapping-failure events. Passing nil restores
// the silent default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
