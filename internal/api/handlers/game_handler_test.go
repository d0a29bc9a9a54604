package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renuda-project/renuda-backend/internal/catalog"
	"github.com/renuda-project/renuda-backend/internal/models"
)

// fakeSessionRepo はSessionRepositoryのテスト用実装です。
type fakeSessionRepo struct {
	created   *models.GameSessionRequest
	createErr error
}

func (f *fakeSessionRepo) Create(req *models.GameSessionRequest) (*models.GameSession, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = req
	return &models.GameSession{
		ID:            1,
		Nickname:      req.Nickname,
		TextContentID: req.TextContentID,
		Difficulty:    req.Difficulty,
		StartTime:     time.Now().UTC(),
	}, nil
}

func TestCreateSession(t *testing.T) {
	repo := &fakeSessionRepo{}
	handler := NewGameHandler(repo, catalog.NewService(filepath.Join(t.TempDir(), "texts.json")))

	body := `{"nickname":"たろう","text_content_id":7,"difficulty":"hard"}`
	req := httptest.NewRequest(http.MethodPost, "/api/game/session", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.CreateSession(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, repo.created)
	assert.Equal(t, 7, repo.created.TextContentID)

	var session models.GameSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.False(t, session.IsCompleted)
}

func TestCreateSessionMissingNickname(t *testing.T) {
	repo := &fakeSessionRepo{}
	handler := NewGameHandler(repo, catalog.NewService(filepath.Join(t.TempDir(), "texts.json")))

	body := `{"text_content_id":1,"difficulty":"easy"}`
	req := httptest.NewRequest(http.MethodPost, "/api/game/session", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.CreateSession(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, repo.created)
}

func TestCreateSessionStoreFailure(t *testing.T) {
	repo := &fakeSessionRepo{createErr: errors.New("connection lost")}
	handler := NewGameHandler(repo, catalog.NewService(filepath.Join(t.TempDir(), "texts.json")))

	body := `{"nickname":"たろう","text_content_id":1,"difficulty":"easy"}`
	req := httptest.NewRequest(http.MethodPost, "/api/game/session", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.CreateSession(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetTextsFallsBackToDefaults(t *testing.T) {
	// カタログファイルが存在しなくても200でフォールバックテキストを返す
	handler := NewGameHandler(&fakeSessionRepo{}, catalog.NewService(filepath.Join(t.TempDir(), "missing.json")))

	req := httptest.NewRequest(http.MethodGet, "/api/game/texts", nil)
	rec := httptest.NewRecorder()
	handler.GetTexts(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var texts []models.TextContent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &texts))
	require.Len(t, texts, 3)
	assert.Equal(t, 1, texts[0].ID)
	assert.Equal(t, 3, texts[2].ID)
	for _, text := range texts {
		assert.Equal(t, "easy", text.Difficulty)
	}
}
