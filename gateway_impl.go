package maudesdk

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/exmaude/maude-sdk-go/internal/errors"
	"github.com/exmaude/maude-sdk-go/internal/maude"
	"github.com/exmaude/maude-sdk-go/internal/subprocess"
)

// gatewayImpl implements Gateway on top of an internal subprocess session.
type gatewayImpl struct {
	mu      sync.Mutex
	session *subprocess.Session
}

// Compile-time verification that gatewayImpl implements Gateway.
var _ Gateway = (*gatewayImpl)(nil)

func (g *gatewayImpl) Start(ctx context.Context, opts ...Option) error {
	options := applyGatewayOptions(opts)

	log := options.Logger
	if log == nil {
		log = NopLogger()
	}

	g.mu.Lock()
	if g.session != nil {
		g.mu.Unlock()

		return errors.ErrAlreadyStarted
	}

	discoverer := maude.NewDiscoverer(&maude.Config{
		MaudePath: options.MaudePath,
		Logger:    log,
	})

	maudePath, err := discoverer.Discover(ctx)
	if err != nil {
		g.mu.Unlock()

		return fmt.Errorf("discover maude: %w", err)
	}

	session := subprocess.NewSession(&subprocess.Config{
		Logger:      log,
		MaudePath:   maudePath,
		ModuleFiles: options.ModuleFiles,
		Env:         buildEnv(options.Env),
		Cwd:         options.Cwd,
		Stderr:      options.Stderr,
	})

	// Stored before the handshake so Stop and Alive work even when
	// startup fails partway through.
	g.session = session
	g.mu.Unlock()

	return session.Start(ctx)
}

func (g *gatewayImpl) Execute(ctx context.Context, command string) (string, error) {
	session := g.current()
	if session == nil {
		return "", errors.ErrNotStarted
	}

	return session.Execute(ctx, command)
}

func (g *gatewayImpl) Stop() {
	if session := g.current(); session != nil {
		session.Stop()
	}
}

func (g *gatewayImpl) Alive() bool {
	session := g.current()

	return session != nil && session.Alive()
}

func (g *gatewayImpl) Close() error {
	g.Stop()

	return nil
}

func (g *gatewayImpl) current() *subprocess.Session {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.session
}

// buildEnv merges extra variables over the parent environment.
// Returns nil (inherit) when there is nothing to add.
func buildEnv(extra map[string]string) []string {
	if len(extra) == 0 {
		return nil
	}

	env := os.Environ()
	for k, v := range extra {
		env = append(env, k+"="+v)
	}

	return env
}
