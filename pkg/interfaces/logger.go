package interfaces

import "context"

// Logger is the leveled logging contract consumed across the site builder.
// It matches the surface of github.com/goliatone/go-logger so hosts using
// that package can inject it without an adapter.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out named loggers. Implementations may scope children
// per name (module loggers) or return a shared instance for every name.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is an optional extension for loggers that can carry persistent
// structured fields. Implementations return a new logger that emits the
// supplied fields on every entry.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
