package reporting

import (
	"context"
	"sync"
)

type FakeReporter struct {
	Panics []interface{}
	Errors []error
	lock   sync.Mutex
}

func NewFakeReporter() *FakeReporter {
	return &FakeReporter{}
}

func (r *FakeReporter) ReportPanic(ctx context.Context, recovered interface{}) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Panics = append(r.Panics, recovered)
}

func (r *FakeReporter) ReportError(ctx context.Context, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Errors = append(r.Errors, err)
}
