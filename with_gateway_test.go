package maudesdk

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithGateway_RunsCallbackAndCleansUp(t *testing.T) {
	ctx := context.Background()

	var held Gateway

	err := WithGateway(ctx, func(gw Gateway) error {
		held = gw

		out, execErr := gw.Execute(ctx, "red 1 .")
		require.NoError(t, execErr)
		require.Equal(t, "echo: red 1 .", out)

		return nil
	}, WithMaudePath(stubMaude(t, echoStub)))

	require.NoError(t, err)
	require.False(t, held.Alive())
}

func TestWithGateway_PropagatesCallbackError(t *testing.T) {
	boom := errors.New("boom")

	err := WithGateway(context.Background(), func(Gateway) error {
		return boom
	}, WithMaudePath(stubMaude(t, echoStub)))

	require.ErrorIs(t, err, boom)
}

func TestWithGateway_PropagatesStartError(t *testing.T) {
	err := WithGateway(context.Background(), func(Gateway) error {
		t.Fatal("callback must not run when start fails")

		return nil
	}, WithMaudePath("/definitely/not/here/maude"))

	var notFound *MaudeNotFoundError

	require.ErrorAs(t, err, &notFound)
}

func TestWithGateway_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithGateway(ctx, func(Gateway) error {
		t.Fatal("callback must not run on a cancelled context")

		return nil
	})

	require.ErrorIs(t, err, context.Canceled)
}
