package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renuda-project/renuda-backend/internal/database"
	"github.com/renuda-project/renuda-backend/internal/models"
)

// newAdminRankingRouter は管理者ランキングAPIのルーティング一式を組み立てます。
// 認証はミドルウェアのテストで検証済みのため、ここでは素のルーターを使います。
func newAdminRankingRouter(repo database.RankingRepository) *mux.Router {
	handler := NewAdminRankingHandler(repo)

	r := mux.NewRouter()
	r.HandleFunc("/api/admin/rankings", handler.GetAll).Methods("GET")
	r.HandleFunc("/api/admin/rankings", handler.DeleteAll).Methods("DELETE")
	r.HandleFunc("/api/admin/rankings/{id}", handler.Update).Methods("PUT")
	r.HandleFunc("/api/admin/rankings/{id}", handler.Delete).Methods("DELETE")
	return r
}

func TestAdminGetAllRankings(t *testing.T) {
	repo := &fakeRankingRepo{rankings: []models.Ranking{
		{ID: 2, Nickname: "はなこ", WPM: 70, CreatedAt: time.Now().UTC()},
		{ID: 1, Nickname: "たろう", WPM: 50, CreatedAt: time.Now().UTC().Add(-time.Hour)},
	}}
	router := newAdminRankingRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/rankings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var rankings []models.Ranking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rankings))
	assert.Len(t, rankings, 2)
}

func TestAdminUpdateRanking(t *testing.T) {
	repo := &fakeRankingRepo{rankings: []models.Ranking{
		{ID: 5, Nickname: "じろう", WPM: 90},
	}}
	router := newAdminRankingRouter(repo)

	body := `{"wpm":95.5}`
	req := httptest.NewRequest(http.MethodPut, "/api/admin/rankings/5", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminUpdateRankingNotFound(t *testing.T) {
	repo := &fakeRankingRepo{updateErr: database.ErrNotFound}
	router := newAdminRankingRouter(repo)

	body := `{"wpm":95.5}`
	req := httptest.NewRequest(http.MethodPut, "/api/admin/rankings/99", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminDeleteRankingNotFound(t *testing.T) {
	repo := &fakeRankingRepo{deleteErr: database.ErrNotFound}
	router := newAdminRankingRouter(repo)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/rankings/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminDeleteAllRankings(t *testing.T) {
	repo := &fakeRankingRepo{deleteAll: 8}
	router := newAdminRankingRouter(repo)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/rankings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(8), resp["deleted"])
}
