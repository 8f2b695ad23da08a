package lnkobj

type options struct {
	log Logger
}

// Option configures a decode.
type Option func(*options)

// WithLogger installs a logger for decode diagnostics: name repairs at Warn,
// a per-object summary at Debug. Without it, logging is disabled.
func WithLogger(l Logger) Option {
	return func(o *options) { o.log = l }
}
