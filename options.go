package maudesdk

import "log/slog"

// GatewayOptions holds the resolved configuration for a Gateway.
// Most callers should use the functional Option helpers instead of
// constructing this directly.
type GatewayOptions struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// MaudePath is the explicit path to the Maude binary.
	// If empty, the binary is searched in PATH and common locations.
	MaudePath string

	// ModuleFiles are .maude files the interpreter loads at startup,
	// in order, after the fixed flag set.
	ModuleFiles []string

	// Env provides additional environment variables for the Maude
	// process, merged over the parent environment.
	Env map[string]string

	// Cwd is the working directory for the Maude process.
	Cwd string

	// Stderr receives each line the interpreter writes to stderr.
	// Stderr is always drained regardless; the callback is for
	// observation only and must not block.
	Stderr func(string)
}

// Option configures GatewayOptions using the functional options pattern.
type Option func(*GatewayOptions)

// applyGatewayOptions applies functional options to a GatewayOptions struct.
func applyGatewayOptions(opts []Option) *GatewayOptions {
	options := &GatewayOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *GatewayOptions) {
		o.Logger = logger
	}
}

// WithMaudePath sets the explicit path to the Maude binary.
// If not set, the binary will be searched in PATH.
func WithMaudePath(path string) Option {
	return func(o *GatewayOptions) {
		o.MaudePath = path
	}
}

// WithModuleFiles adds .maude files for the interpreter to load at
// startup, after the fixed flag set, in the order given.
func WithModuleFiles(files ...string) Option {
	return func(o *GatewayOptions) {
		o.ModuleFiles = append(o.ModuleFiles, files...)
	}
}

// WithEnv provides additional environment variables for the Maude process.
func WithEnv(env map[string]string) Option {
	return func(o *GatewayOptions) {
		o.Env = env
	}
}

// WithCwd sets the working directory for the Maude process.
func WithCwd(cwd string) Option {
	return func(o *GatewayOptions) {
		o.Cwd = cwd
	}
}

// WithStderr sets a callback invoked with each line the interpreter
// writes to stderr.
func WithStderr(fn func(string)) Option {
	return func(o *GatewayOptions) {
		o.Stderr = fn
	}
}
