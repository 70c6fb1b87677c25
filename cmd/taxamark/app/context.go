package app

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/agentstation/taxamark/pkg/logging"
)

// ContextWithSignals creates a context that is cancelled when the application
// receives an interrupt or termination signal.
func ContextWithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

// commandContext attaches the app logger, tagged with the operation name,
// to ctx.
func (a *App) commandContext(ctx context.Context, operation string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, a.logger)
	return logging.WithOperation(ctx, operation)
}
