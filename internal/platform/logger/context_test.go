package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithLoggerAndFromContext(t *testing.T) {
	t.Parallel()

	stored := slog.Default().With(slog.String("component", "test"))
	ctx := WithLogger(context.Background(), stored)

	assert.Same(t, stored, FromContext(ctx))
}

func TestWithLoggerNilPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		WithLogger(context.Background(), nil)
	})
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	t.Parallel()

	assert.Same(t, slog.Default(), FromContext(context.Background()))
	assert.Same(t, slog.Default(), FromContext(nil)) //nolint:staticcheck // nil ctx fallback is part of the contract
}

func TestFromContextOrDefault(t *testing.T) {
	t.Parallel()

	stored := slog.Default().With(slog.String("component", "stored"))
	fallback := slog.Default().With(slog.String("component", "fallback"))

	ctx := WithLogger(context.Background(), stored)
	assert.Same(t, stored, FromContextOrDefault(ctx, fallback))

	assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))

	assert.Same(t, slog.Default(), FromContextOrDefault(context.Background(), nil))
}
