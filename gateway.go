package maudesdk

import "context"

// Gateway is a handle on one live Maude interpreter session and its I/O
// streams.
//
// Lifecycle: a gateway is created unstarted, becomes ready after Start
// completes its handshake with the interpreter, and is terminated for
// good by Stop (or by a failed startup). Exactly one live process is ever
// associated with a handle; a gateway never respawns its process. After
// Stop, create a new gateway with NewGateway().
//
// Concurrency: Execute calls must not overlap on one gateway — the wire
// protocol has no request correlation, so a second in-flight Execute is
// rejected with ErrExecuteInFlight. Stop and Alive are safe to call from
// any goroutine at any time, including while an Execute is blocked; Stop
// will cause that Execute to observe a read error or premature
// end-of-stream.
//
// Example usage:
//
//	gw := maudesdk.NewGateway()
//	defer gw.Stop()
//
//	if err := gw.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := gw.Execute(ctx, "reduce in NAT : 2 + 2 .")
//	if err != nil {
//	    log.Fatal(err)
//	}
type Gateway interface {
	// Start locates the Maude binary, spawns it with the fixed interactive
	// flag set, and consumes startup output up to the first prompt. It
	// must be called before Execute. Returns MaudeNotFoundError if the
	// binary cannot be located, SpawnError or PipeError if process setup
	// fails, and ErrAlreadyStarted on reuse.
	Start(ctx context.Context, opts ...Option) error

	// Execute sends one command line to the interpreter and returns the
	// response text accumulated before the next prompt, with surrounding
	// whitespace trimmed. If the interpreter exits mid-response, the
	// partial text up to end-of-stream is returned without error. The
	// context is honored only until the command is written; after that
	// the read can be aborted only by Stop.
	Execute(ctx context.Context, command string) (string, error)

	// Stop shuts the session down: a best-effort quit command, a short
	// grace period, then an unconditional kill and reap. Stop never
	// fails, is idempotent, and is safe to call from any state.
	Stop()

	// Alive reports whether the interpreter process is still running.
	// It never fails; any error determining the status reads as false.
	Alive() bool

	// Close is an io.Closer adapter over Stop. The returned error is
	// always nil.
	Close() error
}

// NewGateway creates a new, unstarted gateway handle.
func NewGateway() Gateway {
	return &gatewayImpl{}
}
