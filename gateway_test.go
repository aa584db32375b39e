package maudesdk

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubMaude writes an executable shell script standing in for the Maude
// binary and returns its path.
func stubMaude(t *testing.T, script string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("stub interpreter requires a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "maude")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))

	return path
}

// echoStub answers every command with "echo: <command>" and exits on quit.
const echoStub = `printf 'stub banner\nMaude> \n'
while IFS= read -r line; do
  if [ "$line" = "quit" ]; then exit 0; fi
  printf 'echo: %s\nMaude> \n' "$line"
done
`

func TestGateway_Lifecycle(t *testing.T) {
	ctx := context.Background()

	gw := NewGateway()
	defer gw.Stop()

	require.NoError(t, gw.Start(ctx, WithMaudePath(stubMaude(t, echoStub))))
	require.True(t, gw.Alive())

	out, err := gw.Execute(ctx, "reduce in NAT : 2 + 2 .")
	require.NoError(t, err)
	require.Equal(t, "echo: reduce in NAT : 2 + 2 .", out)

	gw.Stop()
	require.False(t, gw.Alive())

	_, err = gw.Execute(ctx, "red 1 .")
	require.ErrorIs(t, err, ErrTerminated)
}

func TestGateway_ExecuteBeforeStart(t *testing.T) {
	gw := NewGateway()

	_, err := gw.Execute(context.Background(), "red 1 .")
	require.ErrorIs(t, err, ErrNotStarted)
}

func TestGateway_AliveBeforeStart(t *testing.T) {
	require.False(t, NewGateway().Alive())
}

func TestGateway_StartNotFound(t *testing.T) {
	gw := NewGateway()

	err := gw.Start(context.Background(), WithMaudePath(filepath.Join(t.TempDir(), "nonexistent")))
	require.Error(t, err)

	var notFound *MaudeNotFoundError

	require.ErrorAs(t, err, &notFound)
	require.False(t, gw.Alive())
}

func TestGateway_StartTwice(t *testing.T) {
	ctx := context.Background()

	gw := NewGateway()
	defer gw.Stop()

	require.NoError(t, gw.Start(ctx, WithMaudePath(stubMaude(t, echoStub))))
	require.ErrorIs(t, gw.Start(ctx), ErrAlreadyStarted)
}

func TestGateway_Close(t *testing.T) {
	ctx := context.Background()

	gw := NewGateway()
	require.NoError(t, gw.Start(ctx, WithMaudePath(stubMaude(t, echoStub))))
	require.NoError(t, gw.Close())
	require.False(t, gw.Alive())

	// Close is as idempotent as Stop.
	require.NoError(t, gw.Close())
}

func TestGateway_StopNeverFailsOnDeadProcess(t *testing.T) {
	ctx := context.Background()

	gw := NewGateway()
	require.NoError(t, gw.Start(ctx, WithMaudePath(stubMaude(t, `printf 'Maude> \n'
exit 0
`))))

	// The process is already gone; Stop must still complete quietly.
	gw.Stop()
	require.False(t, gw.Alive())
}

func TestGateway_ModuleFilesPassedToInterpreter(t *testing.T) {
	ctx := context.Background()

	// The stub answers with its own argv so the test can see the full
	// fixed flag set plus the module files appended after it.
	gw := NewGateway()
	defer gw.Stop()

	require.NoError(t, gw.Start(ctx,
		WithMaudePath(stubMaude(t, `args="$*"
printf 'Maude> \n'
while IFS= read -r line; do
  if [ "$line" = "quit" ]; then exit 0; fi
  printf '%s\nMaude> \n' "$args"
done
`)),
		WithModuleFiles("prelude-ext.maude", "nat-list.maude"),
	))

	out, err := gw.Execute(ctx, "argv .")
	require.NoError(t, err)
	require.Equal(t, "-no-banner -no-wrap -no-advise -interactive prelude-ext.maude nat-list.maude", out)
}
