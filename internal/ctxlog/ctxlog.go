// Package ctxlog provides context-aware structured logging utilities.
package ctxlog

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Setup installs a text slog handler writing to stderr and stores the
// logger in the returned context. When verbose is true the handler emits
// Debug records as well.
func Setup(ctx context.Context, verbose bool) context.Context {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	return Store(ctx, logger)
}

type ctxKey struct{}

var key ctxKey

func Store(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, key, log)
}

func Get(ctx context.Context) *slog.Logger {
	log, ok := ctx.Value(key).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return log
}

// Close closes closer and logs a failure through the context logger.
func Close(ctx context.Context, name string, closer io.Closer) error {
	err := closer.Close()
	if err != nil {
		Get(ctx).Error("failed to close", "closer", name, "error", err)
		return err
	}
	return nil
}

func With(ctx context.Context, kv ...any) context.Context {
	return Store(ctx, Get(ctx).With(kv...))
}
