package middleware

import (
	"net/http"
	"signupsite/internal/core/domain/logging"
	"signupsite/internal/core/domain/reporting"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// LogRequests writes one log record per request once it has been served.
func LogRequests(log logging.Logger, now func() time.Time) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(rw, r.ProtoMajor)
			start := now()
			defer func() {
				log.Info(
					r.Context(),
					"Request served.",
					logging.Entry("method", r.Method),
					logging.Entry("path", r.URL.Path),
					logging.Entry("status", statusOf(ww)),
					logging.Entry("bytes", ww.BytesWritten()),
					logging.Entry("duration", now().Sub(start)),
					logging.Entry("remoteAddr", r.RemoteAddr),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// Recover turns a panicking handler into a 500 response, reporting the panic.
func Recover(log logging.Logger, reporter reporting.Reporter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}
				log.Error(
					r.Context(),
					"Request handler panicked.",
					logging.Entry("panic", recovered),
					logging.Entry("path", r.URL.Path),
				)
				reporter.ReportPanic(r.Context(), recovered)
				http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

func statusOf(ww chimiddleware.WrapResponseWriter) int {
	if status := ww.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}
