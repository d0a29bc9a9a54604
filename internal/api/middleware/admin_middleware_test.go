package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renuda-project/renuda-backend/internal/auth"
)

func newTestGate() *auth.Gate {
	return auth.NewGate(func(password string) bool {
		return password == "correct"
	})
}

func TestAdminAuthMiddlewareAllowsValidPassword(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	handler := AdminAuthMiddleware(newTestGate())(next)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/texts?password=correct", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminAuthMiddlewareRejectsWrongPassword(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	handler := AdminAuthMiddleware(newTestGate())(next)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/texts?password=wrong", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// ハンドラーは実行されない(副作用なしで403)
	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error": "管理者パスワードが正しくありません"}`, rec.Body.String())
}

func TestAdminAuthMiddlewareRejectsMissingPassword(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	handler := AdminAuthMiddleware(newTestGate())(next)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/rankings", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
