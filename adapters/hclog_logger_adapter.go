package adapters

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

var hclogLevels = map[LogLevel]hclog.Level{
	LogLevelDebug: hclog.Debug,
	LogLevelInfo:  hclog.Info,
	LogLevelWarn:  hclog.Warn,
	LogLevelError: hclog.Error,
	LogLevelNone:  hclog.Off,
}

// NewHCLogLoggerAdapter creates an hclog logger named "profile" writing to
// stderr at the given level.
func NewHCLogLoggerAdapter(level LogLevel) hclog.Logger {
	return NewHCLogLoggerAdapterWithOutput(level, nil)
}

// NewHCLogLoggerAdapterWithOutput is like NewHCLogLoggerAdapter but writes to
// output. A nil output means stderr.
func NewHCLogLoggerAdapterWithOutput(level LogLevel, output io.Writer) hclog.Logger {
	lvl, ok := hclogLevels[level]
	if !ok {
		lvl = hclog.Warn
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "profile",
		Level:  lvl,
		Output: output,
	})
}

var _ LoggerAdapter = hclog.Logger(nil)
