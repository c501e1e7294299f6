package lookup

import "log/slog"

// Option is a function type for configuring a Lookup.
type Option func(*Lookup)

// WithLogger sets the logger used by the lookup.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Lookup) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithDefaultFile overrides the file name used when a term carries no
// file= option.
func WithDefaultFile(name string) Option {
	return func(l *Lookup) {
		if name != "" {
			l.defaultFile = name
		}
	}
}

// WithDefaultDelimiter overrides the delimiter used when a term carries no
// delimiter= option. The literal string "TAB" means a horizontal tab.
func WithDefaultDelimiter(delim string) Option {
	return func(l *Lookup) {
		if delim != "" {
			l.defaultDelimiter = delim
		}
	}
}

// WithDefaultEncoding overrides the character encoding used when a term
// carries no encoding= option.
func WithDefaultEncoding(name string) Option {
	return func(l *Lookup) {
		if name != "" {
			l.defaultEncoding = name
		}
	}
}
