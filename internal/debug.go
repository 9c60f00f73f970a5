package internal

import (
	"context"
	"io"
	"time"

	"github.com/davidmdm/ansi"
)

type debugKey struct{}

func WithDebug(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, debugKey{}, enabled)
}

// Debug returns a terminal writing to the context's stderr when debugging is enabled, and discarding otherwise.
func Debug(ctx context.Context) ansi.Terminal {
	if enabled, _ := ctx.Value(debugKey{}).(bool); !enabled {
		return ansi.Terminal{Writer: io.Discard}
	}
	return ansi.Terminal{Writer: Stderr(ctx)}
}

func DebugTimer(ctx context.Context, msg string) func() {
	start := time.Now()
	Debug(ctx).Printf("start: %s\n", msg)
	return func() {
		Debug(ctx).Printf("done:  %s: %s\n", msg, time.Since(start).Round(time.Microsecond))
	}
}
