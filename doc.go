// Package maudesdk provides a Go SDK for supervising the Maude
// term-rewriting interpreter as a subprocess.
//
// Maude speaks an unframed, line-oriented textual protocol: commands go in
// on stdin, responses come back on stdout, and the only structure in the
// stream is the interactive prompt the interpreter prints when it is ready
// for the next command. This SDK turns that into a request/response API by
// framing stdout on the prompt literal.
//
// # Basic Usage
//
// For a one-shot evaluation, use the Eval function:
//
//	ctx := context.Background()
//	out, err := maudesdk.Eval(ctx, "reduce in NAT : 2 + 2 .")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out)
//
// # Sessions
//
// For multiple commands against one interpreter, use a Gateway:
//
//	gw := maudesdk.NewGateway()
//	defer gw.Stop()
//
//	if err := gw.Start(ctx, maudesdk.WithModuleFiles("my-theory.maude")); err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := gw.Execute(ctx, "reduce in MY-THEORY : f(a, b) .")
//
// Gateways are single-use: after Stop the handle is terminated for good
// and a new one must be created. Executes are strictly serialized per
// gateway; the protocol carries no request identifiers, so a concurrent
// Execute fails with ErrExecuteInFlight instead of interleaving frames.
//
// # Parallelism
//
// A single interpreter evaluates one command at a time. For parallel
// workloads, Pool runs a fixed set of gateways and fans commands out
// across them:
//
//	pool, err := maudesdk.NewPool(ctx, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pool.Close()
//
//	results, err := pool.ExecuteAll(ctx, commands)
//
// # Logging
//
// For detailed operation tracking, use WithLogger:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	out, err := maudesdk.Eval(ctx, "red true and false .", maudesdk.WithLogger(logger))
//
// # Error Handling
//
// The SDK provides typed errors for different failure scenarios:
//
//	out, err := maudesdk.Eval(ctx, command)
//	if err != nil {
//	    if nf, ok := errors.AsType[*maudesdk.MaudeNotFoundError](err); ok {
//	        log.Fatalf("maude not installed, searched: %v", nf.SearchedPaths)
//	    }
//	    log.Fatal(err)
//	}
//
// # Requirements
//
// The Maude binary must be installed and on PATH, or its location given
// with WithMaudePath. The interpreter is always launched with
// -no-banner -no-wrap -no-advise -interactive; response framing depends
// on those flags.
//
// # Protocol limitations
//
// The prompt literal ("Maude>") is the only frame delimiter. If a
// response legitimately contains that substring mid-content, the frame
// ends there and the remainder of the line is discarded. This is inherent
// to Maude's textual protocol and is not detected or repaired.
package maudesdk
