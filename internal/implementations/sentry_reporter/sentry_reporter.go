package sentryreporter

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
)

type Sentry struct{}

// New initializes the global Sentry client. The returned function flushes
// buffered events and must be called on shutdown.
func New(dsn string, environment string) (*Sentry, func(timeout time.Duration) bool, error) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		TracesSampleRate: 0.01,
	})
	if err != nil {
		return nil, nil, err
	}
	return &Sentry{}, sentry.Flush, nil
}

func (s *Sentry) ReportPanic(ctx context.Context, recovered interface{}) {
	hub(ctx).RecoverWithContext(ctx, recovered)
}

func (s *Sentry) ReportError(ctx context.Context, err error) {
	hub(ctx).CaptureException(err)
}

func hub(ctx context.Context) *sentry.Hub {
	if h := sentry.GetHubFromContext(ctx); h != nil {
		return h
	}
	return sentry.CurrentHub()
}

// Noop is used when no DSN is configured.
type Noop struct{}

func (Noop) ReportPanic(ctx context.Context, recovered interface{}) {}

func (Noop) ReportError(ctx context.Context, err error) {}
