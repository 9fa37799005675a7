package slides

// Logger receives diagnostics about ignored operations.
// *core.Logger satisfies it.
type Logger interface {
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

type nopLogger struct{}

func (nopLogger) Warnf(format string, v ...any)  {}
func (nopLogger) Debugf(format string, v ...any) {}
