package reporting

import "context"

// Reporter ships unexpected failures to an external error tracker.
type Reporter interface {
	ReportPanic(ctx context.Context, recovered interface{})
	ReportError(ctx context.Context, err error)
}
