package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renuda-project/renuda-backend/internal/api/middleware"
	"github.com/renuda-project/renuda-backend/internal/auth"
	"github.com/renuda-project/renuda-backend/internal/catalog"
	"github.com/renuda-project/renuda-backend/internal/models"
)

// newAdminTextRouter は管理者テキストAPIのルーティング一式を組み立てます。
func newAdminTextRouter(catalogService *catalog.Service) *mux.Router {
	gate := auth.NewGate(func(password string) bool {
		return password == "correct"
	})
	handler := NewAdminTextHandler(catalogService)

	r := mux.NewRouter()
	adminRouter := r.PathPrefix("/api/admin").Subrouter()
	adminRouter.Use(middleware.AdminAuthMiddleware(gate))
	adminRouter.HandleFunc("/texts", handler.GetAll).Methods("GET")
	adminRouter.HandleFunc("/texts", handler.Create).Methods("POST")
	adminRouter.HandleFunc("/texts/{id}", handler.Update).Methods("PUT")
	adminRouter.HandleFunc("/texts/{id}", handler.Delete).Methods("DELETE")
	return r
}

func seedCatalogFile(t *testing.T) (string, *catalog.Service) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "texts.json")
	doc := `{"texts":[{"id":1,"title":"こんにちは","content":"こんにちは","difficulty":"easy","is_active":true}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path, catalog.NewService(path)
}

func TestAdminTextsRejectedWithoutPassword(t *testing.T) {
	path, svc := seedCatalogFile(t)
	router := newAdminTextRouter(svc)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	body := `{"title":"新規","content":"新規","difficulty":"easy"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/texts", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	// 認証失敗時はカタログが変更されない
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAdminTextsRejectedWithWrongPassword(t *testing.T) {
	path, svc := seedCatalogFile(t)
	router := newAdminTextRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/texts/1?password=wrong", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "こんにちは")
}

func TestAdminCreateText(t *testing.T) {
	_, svc := seedCatalogFile(t)
	router := newAdminTextRouter(svc)

	body := `{"title":"新しいテキスト","content":"新しいテキスト","difficulty":"medium"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/texts?password=correct", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var created models.TextContent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 2, created.ID)
	assert.Equal(t, "新しいテキスト", created.Title)
	assert.True(t, created.Active())
}

func TestAdminGetAllTexts(t *testing.T) {
	_, svc := seedCatalogFile(t)
	router := newAdminTextRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/texts?password=correct", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var texts []models.TextContent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &texts))
	assert.Len(t, texts, 1)
}

func TestAdminUpdateText(t *testing.T) {
	_, svc := seedCatalogFile(t)
	router := newAdminTextRouter(svc)

	body := `{"is_active":false}`
	req := httptest.NewRequest(http.MethodPut, "/api/admin/texts/1?password=correct", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var updated models.TextContent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.False(t, updated.Active())
	// 指定しなかったフィールドは保持される
	assert.Equal(t, "こんにちは", updated.Title)
}

func TestAdminUpdateTextNotFound(t *testing.T) {
	_, svc := seedCatalogFile(t)
	router := newAdminTextRouter(svc)

	body := `{"title":"x"}`
	req := httptest.NewRequest(http.MethodPut, "/api/admin/texts/99?password=correct", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminDeleteTextNotFound(t *testing.T) {
	_, svc := seedCatalogFile(t)
	router := newAdminTextRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/texts/99?password=correct", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
