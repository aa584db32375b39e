package maude

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	sdkerrors "github.com/exmaude/maude-sdk-go/internal/errors"
)

func TestDiscover_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maude")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))

	d := NewDiscoverer(&Config{MaudePath: path})

	found, err := d.Discover(context.Background())
	require.NoError(t, err)
	require.Equal(t, path, found)
}

func TestDiscover_ExplicitPathMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-maude")

	d := NewDiscoverer(&Config{MaudePath: missing})

	_, err := d.Discover(context.Background())
	require.Error(t, err)

	var notFound *sdkerrors.MaudeNotFoundError

	require.ErrorAs(t, err, &notFound)
	require.Equal(t, []string{missing}, notFound.SearchedPaths)
}

func TestDiscover_ExplicitPathSkipsSearch(t *testing.T) {
	// An explicit path that does not exist must fail even if a binary
	// named maude happens to be reachable some other way: the caller
	// asked for exactly this path.
	d := NewDiscoverer(&Config{MaudePath: "/definitely/not/here/maude"})

	_, err := d.Discover(context.Background())

	var notFound *sdkerrors.MaudeNotFoundError

	require.ErrorAs(t, err, &notFound)
	require.Len(t, notFound.SearchedPaths, 1)
}

func TestNewDiscoverer_NilConfig(t *testing.T) {
	require.NotNil(t, NewDiscoverer(nil))
}
