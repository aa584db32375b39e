package maudesdk

import "github.com/exmaude/maude-sdk-go/internal/errors"

// Re-export error types from internal package

// MaudeNotFoundError indicates the Maude binary was not found.
type MaudeNotFoundError = errors.MaudeNotFoundError

// SpawnError indicates the Maude process could not be spawned.
type SpawnError = errors.SpawnError

// PipeError indicates a standard I/O pipe could not be acquired after spawn.
type PipeError = errors.PipeError

// WriteError indicates writing a command to the Maude stdin failed.
type WriteError = errors.WriteError

// FlushError indicates flushing a written command to the Maude stdin failed.
type FlushError = errors.FlushError

// ReadError indicates reading a response frame from the Maude stdout failed.
type ReadError = errors.ReadError

// MaudeSDKError is the base interface for all SDK errors.
type MaudeSDKError = errors.MaudeSDKError

// Re-export sentinel errors from internal package.
var (
	// ErrNotStarted indicates the gateway has not been started.
	ErrNotStarted = errors.ErrNotStarted

	// ErrAlreadyStarted indicates Start was called on a live gateway.
	ErrAlreadyStarted = errors.ErrAlreadyStarted

	// ErrTerminated indicates the gateway has been stopped and cannot be reused.
	ErrTerminated = errors.ErrTerminated

	// ErrExecuteInFlight indicates another Execute call is in progress on
	// the same gateway.
	ErrExecuteInFlight = errors.ErrExecuteInFlight
)
