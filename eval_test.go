package maudesdk

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEval_OneShot(t *testing.T) {
	out, err := Eval(context.Background(), "reduce in NAT : 2 + 2 .",
		WithMaudePath(stubMaude(t, echoStub)))
	require.NoError(t, err)
	require.Equal(t, "echo: reduce in NAT : 2 + 2 .", out)
}

func TestEval_StartFailure(t *testing.T) {
	_, err := Eval(context.Background(), "red 1 .",
		WithMaudePath(filepath.Join(t.TempDir(), "nonexistent")))
	require.Error(t, err)

	var notFound *MaudeNotFoundError

	require.ErrorAs(t, err, &notFound)
}
