package adapters

// NoOpLoggerAdapter implements LoggerAdapter with no-op methods
type NoOpLoggerAdapter struct{}

// NewNoOpLoggerAdapter creates a new no-op logger
func NewNoOpLoggerAdapter() *NoOpLoggerAdapter {
	return &NoOpLoggerAdapter{}
}

func (n *NoOpLoggerAdapter) Debug(msg string, args ...any) {}
func (n *NoOpLoggerAdapter) Info(msg string, args ...any)  {}
func (n *NoOpLoggerAdapter) Warn(msg string, args ...any)  {}
func (n *NoOpLoggerAdapter) Error(msg string, args ...any) {}
