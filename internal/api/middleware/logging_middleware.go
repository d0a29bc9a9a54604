package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestLoggingMiddleware は各リクエストにリクエストIDを割り当て、
// 受信と完了をログに出力するミドルウェアです。
func RequestLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		start := time.Now()
		log.Printf("[%s] %s %s 受信", requestID, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s 完了 (%s)", requestID, r.Method, r.URL.Path, time.Since(start))
	})
}
