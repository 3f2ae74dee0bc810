package backend

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	log "gopkg.in/inconshreveable/log15.v2"
)

// requestLogger logs every request at info level. Request bodies are never
// logged since they carry card data.
func requestLogger(logger log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, req)

			logger.Info("http request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		})
	}
}
