package maudesdk

import (
	"context"
	"fmt"
)

// Eval starts a fresh interpreter, executes one command, and stops the
// interpreter again. It is the one-shot counterpart to Gateway for
// callers that do not need to keep module state between commands.
//
// Example usage:
//
//	out, err := maudesdk.Eval(ctx, "reduce in NAT : 2 + 2 .")
func Eval(ctx context.Context, command string, opts ...Option) (string, error) {
	gw := NewGateway()
	defer gw.Stop()

	if err := gw.Start(ctx, opts...); err != nil {
		return "", fmt.Errorf("failed to start gateway: %w", err)
	}

	return gw.Execute(ctx, command)
}
