package errors

import (
	"errors"
	"fmt"
)

// MaudeSDKError is the base interface for all SDK errors.
type MaudeSDKError interface {
	error
	IsMaudeSDKError() bool
}

// Compile-time verification that all error types implement MaudeSDKError.
var (
	_ MaudeSDKError = (*MaudeNotFoundError)(nil)
	_ MaudeSDKError = (*SpawnError)(nil)
	_ MaudeSDKError = (*PipeError)(nil)
	_ MaudeSDKError = (*WriteError)(nil)
	_ MaudeSDKError = (*FlushError)(nil)
	_ MaudeSDKError = (*ReadError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrNotStarted indicates the gateway has not been started.
	ErrNotStarted = errors.New("gateway not started")

	// ErrAlreadyStarted indicates Start was called on a live gateway.
	// Gateways never respawn; create a new one with NewGateway().
	ErrAlreadyStarted = errors.New("gateway already started")

	// ErrTerminated indicates the gateway has been stopped and cannot be
	// reused. Gateways are single-use, create a new one with NewGateway().
	ErrTerminated = errors.New("gateway terminated")

	// ErrExecuteInFlight indicates another Execute call is in progress on
	// the same gateway. The protocol is strictly request/response: a second
	// command cannot be written until the previous response frame is read.
	ErrExecuteInFlight = errors.New("execute already in flight")
)

// MaudeNotFoundError indicates the Maude binary was not found.
type MaudeNotFoundError struct {
	SearchedPaths []string
}

func (e *MaudeNotFoundError) Error() string {
	return fmt.Sprintf("maude binary not found in: %v", e.SearchedPaths)
}

// IsMaudeSDKError implements MaudeSDKError.
func (e *MaudeNotFoundError) IsMaudeSDKError() bool { return true }

// SpawnError indicates the Maude process could not be spawned.
type SpawnError struct {
	Path string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to spawn maude process %q: %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// IsMaudeSDKError implements MaudeSDKError.
func (e *SpawnError) IsMaudeSDKError() bool { return true }

// PipeError indicates a standard I/O pipe could not be acquired after spawn.
type PipeError struct {
	Stream string // "stdin", "stdout" or "stderr"
	Err    error
}

func (e *PipeError) Error() string {
	return fmt.Sprintf("failed to acquire %s pipe: %v", e.Stream, e.Err)
}

func (e *PipeError) Unwrap() error {
	return e.Err
}

// IsMaudeSDKError implements MaudeSDKError.
func (e *PipeError) IsMaudeSDKError() bool { return true }

// WriteError indicates writing a command to the Maude stdin failed.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write command to maude: %v", e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// IsMaudeSDKError implements MaudeSDKError.
func (e *WriteError) IsMaudeSDKError() bool { return true }

// FlushError indicates flushing a written command to the Maude stdin failed.
// The command may have been partially delivered; the gateway should be
// stopped rather than reused.
type FlushError struct {
	Err error
}

func (e *FlushError) Error() string {
	return fmt.Sprintf("failed to flush command to maude: %v", e.Err)
}

func (e *FlushError) Unwrap() error {
	return e.Err
}

// IsMaudeSDKError implements MaudeSDKError.
func (e *FlushError) IsMaudeSDKError() bool { return true }

// ReadError indicates reading a response frame from the Maude stdout failed.
// Partial output accumulated before the failure is discarded.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read response from maude: %v", e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// IsMaudeSDKError implements MaudeSDKError.
func (e *ReadError) IsMaudeSDKError() bool { return true }
