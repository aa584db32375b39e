package maudesdk

import (
	"context"
	"fmt"
)

// WithGateway manages gateway lifecycle with automatic cleanup.
//
// This helper creates a gateway, starts it with the provided options,
// executes the callback function, and ensures the interpreter is stopped
// when done. Stop never fails, so cleanup cannot mask the callback's error.
//
// Example usage:
//
//	err := maudesdk.WithGateway(ctx, func(gw maudesdk.Gateway) error {
//	    out, err := gw.Execute(ctx, "reduce in NAT : 2 + 2 .")
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(out)
//	    return nil
//	}, maudesdk.WithModuleFiles("nat-ext.maude"))
func WithGateway(ctx context.Context, fn func(Gateway) error, opts ...Option) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	gw := NewGateway()
	if err := gw.Start(ctx, opts...); err != nil {
		return fmt.Errorf("failed to start gateway: %w", err)
	}

	defer gw.Stop()

	return fn(gw)
}
