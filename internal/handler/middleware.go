package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bagdasarian/member-search/internal/metrics"
)

const RequestIDHeader = "X-Request-ID"

type ctxKey struct{}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware проставляет X-Request-ID, пишет access-лог и HTTP-метрики.
// Метка path берется из шаблона маршрута, чтобы id в пути не раздували кардинальность.
func Middleware(logger *zap.Logger, next http.Handler) http.Handler {
	log := logger.Sugar()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		req := r.WithContext(context.WithValue(r.Context(), ctxKey{}, requestID))
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, req)

		path := req.Pattern
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTP(path, r.Method, rec.status, start)
		log.Infow("request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
