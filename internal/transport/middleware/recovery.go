package middleware

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// panicBody matches the error envelope the REST layer writes for 5xx.
const panicBody = `{"status":"error","message":"Internal server error"}`

// Recovery returns middleware that recovers from panics, logs the value
// with a stack trace and responds with a 500 JSON error envelope.
func Recovery(logger *zap.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Error("panic recovered",
						zap.String("error", fmt.Sprint(rec)),
						zap.Stack("stack"),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(panicBody))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
