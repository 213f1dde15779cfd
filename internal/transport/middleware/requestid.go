package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/frahmantamala/employee-directory/pkg/logger"
)

// TraceID attaches a trace id to the request context logger and echoes it
// back to the caller, reusing an inbound X-Trace-ID when one is supplied.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := logger.With(r.Context(), "traceID", traceID)

		w.Header().Set("X-Trace-ID", traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
