// Package observability defines the logging facade the library emits
// diagnostics through. The generator itself never prints; callers who want
// diagnostics hand a Logger to the document options, and everything else
// sees the silent default.
package observability

// Logger receives diagnostic events from the library. Implementations
// adapt it to whatever logging backend the host application uses.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Field is one typed key/value attribute attached to a log event.
type Field interface {
	Key() string
	Value() interface{}
}

// field is the sole Field implementation. The typed constructors below
// exist so call sites state the value type they mean, not for distinct
// runtime representations.
type field struct {
	key string
	val interface{}
}

func (f field) Key() string        { return f.key }
func (f field) Value() interface{} { return f.val }

func String(key, value string) Field          { return field{key, value} }
func Int(key string, value int) Field         { return field{key, value} }
func Int64(key string, value int64) Field     { return field{key, value} }
func Float64(key string, value float64) Field { return field{key, value} }
func Error(key string, err error) Field       { return field{key, err} }

// NopLogger discards everything. It is the default logger of a document.
type NopLogger struct{}

func (NopLogger) Debug(string, ...Field) {}
func (NopLogger) Info(string, ...Field)  {}
func (NopLogger) Warn(string, ...Field)  {}
func (NopLogger) Error(string, ...Field) {}
func (NopLogger) With(...Field) Logger   { return NopLogger{} }
