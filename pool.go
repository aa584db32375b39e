package maudesdk

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Pool runs a fixed set of gateways and fans commands out across them.
//
// One interpreter evaluates one command at a time, so parallel workloads
// need parallel interpreters. The pool starts all of them up front (a
// gateway never respawns, so a pool never grows a replacement either) and
// hands each Execute to a free one. Pools are single-use: after Close all
// member gateways are terminated.
type Pool struct {
	log      *slog.Logger
	gateways []Gateway
	free     chan Gateway

	closeOnce sync.Once
}

// NewPool creates a pool of size gateways, starting them concurrently
// with the given options. If any gateway fails to start, the ones that
// did start are stopped and the first error is returned.
func NewPool(ctx context.Context, size int, opts ...Option) (*Pool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("pool size must be positive, got %d", size)
	}

	options := applyGatewayOptions(opts)

	log := options.Logger
	if log == nil {
		log = NopLogger()
	}

	log = log.With("component", "gateway_pool")
	log.Info("Starting gateway pool", "size", size)

	gateways := make([]Gateway, size)

	eg, egCtx := errgroup.WithContext(ctx)
	for i := range gateways {
		eg.Go(func() error {
			gw := NewGateway()
			if err := gw.Start(egCtx, opts...); err != nil {
				gw.Stop()

				return err
			}

			gateways[i] = gw

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		for _, gw := range gateways {
			if gw != nil {
				gw.Stop()
			}
		}

		return nil, fmt.Errorf("failed to start gateway pool: %w", err)
	}

	free := make(chan Gateway, size)
	for _, gw := range gateways {
		free <- gw
	}

	return &Pool{
		log:      log,
		gateways: gateways,
		free:     free,
	}, nil
}

// Size returns the number of gateways in the pool.
func (p *Pool) Size() int { return len(p.gateways) }

// Execute runs one command on the next free gateway, blocking until one
// is available or the context is done. On a closed pool the acquired
// gateway is terminated and the call fails with ErrTerminated.
func (p *Pool) Execute(ctx context.Context, command string) (string, error) {
	select {
	case gw := <-p.free:
		defer func() { p.free <- gw }()

		return gw.Execute(ctx, command)
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// ExecuteAll runs every command concurrently across the pool and returns
// the results in command order. The first failure cancels the remaining
// commands and is returned.
func (p *Pool) ExecuteAll(ctx context.Context, commands []string) ([]string, error) {
	results := make([]string, len(commands))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(len(p.gateways))

	for i, command := range commands {
		eg.Go(func() error {
			out, err := p.Execute(egCtx, command)
			if err != nil {
				return fmt.Errorf("command %d: %w", i, err)
			}

			results[i] = out

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Alive reports how many member gateways still have a running interpreter.
func (p *Pool) Alive() int {
	alive := 0

	for _, gw := range p.gateways {
		if gw.Alive() {
			alive++
		}
	}

	return alive
}

// Close stops every gateway in the pool. Like Gateway.Stop it never
// fails and is safe to call multiple times.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.log.Info("Closing gateway pool")

		for _, gw := range p.gateways {
			gw.Stop()
		}
	})
}
