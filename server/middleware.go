package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const REQUEST_ID_HEADER = "X-Request-ID"

// requestIDMiddleware tags every request with an id, reusing the one sent by the client.
func requestIDMiddleware(logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(REQUEST_ID_HEADER)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(REQUEST_ID_HEADER, id)

			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("[Router] Handled request",
				zap.String("request_id", id),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("duration", time.Since(start)))
		})
	}
}
