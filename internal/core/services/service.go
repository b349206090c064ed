package services

import "context"

// Service is a single use case. Decorators such as rate limiting wrap a
// Service and expose the same interface.
type Service[T any, S any] interface {
	Run(ctx context.Context, input T) (S, error)
}
