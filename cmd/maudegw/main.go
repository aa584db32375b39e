// Package main is the entry point for the maudegw gateway server.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	maudesdk "github.com/exmaude/maude-sdk-go"
	"github.com/exmaude/maude-sdk-go/internal/config"
	"github.com/exmaude/maude-sdk-go/internal/server"
)

var (
	version = "1.0.0"
	commit  = "dev"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var (
		configPath  = flag.String("config", "", "Path to config file")
		host        = flag.String("host", "", "Server host (default: 127.0.0.1)")
		port        = flag.Int("port", 0, "Server port (default: 7423)")
		maudePath   = flag.String("maude", "", "Path to the Maude binary")
		modules     = flag.String("modules", "", "Comma-separated .maude files to load at startup")
		poolSize    = flag.Int("pool", 0, "Number of interpreters for serve mode")
		evalCommand = flag.String("e", "", "Evaluate one command and exit")
		repl        = flag.Bool("repl", false, "Run an interactive read-eval-print loop")
		debug       = flag.Bool("debug", false, "Enable debug logging")
		showVersion = flag.Bool("version", false, "Show version and exit")
		initConfig  = flag.Bool("init", false, "Initialize default config and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("maudegw %s (%s)\n", version, commit)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Override with flags
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *maudePath != "" {
		cfg.Maude.Path = *maudePath
	}
	if *modules != "" {
		cfg.Maude.ModuleFiles = strings.Split(*modules, ",")
	}
	if *poolSize != 0 {
		cfg.Maude.PoolSize = *poolSize
	}

	if *initConfig {
		if err := cfg.Save(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Config written")
		os.Exit(0)
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []maudesdk.Option{
		maudesdk.WithLogger(log),
		maudesdk.WithMaudePath(cfg.Maude.Path),
		maudesdk.WithModuleFiles(cfg.Maude.ModuleFiles...),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *evalCommand != "":
		err = runEval(ctx, *evalCommand, opts)
	case *repl:
		err = runREPL(ctx, opts)
	default:
		err = runServe(ctx, log, cfg, opts)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runEval evaluates one command on a fresh interpreter.
func runEval(ctx context.Context, command string, opts []maudesdk.Option) error {
	out, err := maudesdk.Eval(ctx, command, opts...)
	if err != nil {
		return err
	}

	fmt.Println(out)

	return nil
}

// runREPL forwards stdin lines to one interpreter session and prints
// each framed response.
func runREPL(ctx context.Context, opts []maudesdk.Option) error {
	return maudesdk.WithGateway(ctx, func(gw maudesdk.Gateway) error {
		scanner := bufio.NewScanner(os.Stdin)

		for {
			fmt.Print("Maude> ")

			if !scanner.Scan() {
				fmt.Println()

				return scanner.Err()
			}

			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			if line == "quit" || line == "q" {
				return nil
			}

			out, err := gw.Execute(ctx, line)
			if err != nil {
				return err
			}

			if out != "" {
				fmt.Println(out)
			}
		}
	}, opts...)
}

// runServe runs the HTTP eval server over a pool of interpreters until
// the context is cancelled by a signal.
func runServe(ctx context.Context, log *slog.Logger, cfg *config.Config, opts []maudesdk.Option) error {
	pool, err := maudesdk.NewPool(ctx, cfg.Maude.PoolSize, opts...)
	if err != nil {
		return err
	}
	defer pool.Close()

	srv := server.New(log, pool, cfg.Addr())

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return <-errCh
}
