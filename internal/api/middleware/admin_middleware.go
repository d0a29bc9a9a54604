package middleware

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/renuda-project/renuda-backend/internal/auth"
)

// writeJSONError writes a JSON error response
func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// AdminAuthMiddleware は管理者パスワードを検証するミドルウェアを返します。
// パスワードはクエリパラメータ password で受け取り、検証に失敗した場合は
// ハンドラーを実行せずに403を返します。
func AdminAuthMiddleware(gate *auth.Gate) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			password := r.URL.Query().Get("password")
			if !gate.Authenticate(password) {
				log.Printf("AdminAuthMiddleware: 管理者認証に失敗しました (path=%s)", r.URL.Path)
				writeJSONError(w, http.StatusForbidden, "管理者パスワードが正しくありません")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
