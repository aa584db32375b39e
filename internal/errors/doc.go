// Package errors defines error types for the Maude SDK.
//
// This package provides structured error types that wrap different failure
// scenarios when supervising a Maude subprocess. All error types support
// error unwrapping and can be checked using errors.Is, errors.As, and errors.AsType.
package errors
