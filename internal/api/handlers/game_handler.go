package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/renuda-project/renuda-backend/internal/catalog"
	"github.com/renuda-project/renuda-backend/internal/database"
	"github.com/renuda-project/renuda-backend/internal/models"
)

// GameHandler はゲーム関連(セッション開始・テキスト取得)のハンドラーを管理する構造体です。
type GameHandler struct {
	sessionRepo database.SessionRepository
	catalog     *catalog.Service
}

// NewGameHandler は新しいGameHandlerインスタンスを作成します。
func NewGameHandler(sessionRepo database.SessionRepository, catalogService *catalog.Service) *GameHandler {
	return &GameHandler{
		sessionRepo: sessionRepo,
		catalog:     catalogService,
	}
}

// CreateSession はゲームセッションを開始するハンドラーです。
// POST /api/game/session
func (h *GameHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.GameSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "無効なリクエストボディです")
		return
	}

	// バリデーション
	if req.Nickname == "" {
		writeJSONError(w, http.StatusBadRequest, "nicknameは必須です")
		return
	}
	if req.Difficulty == "" {
		writeJSONError(w, http.StatusBadRequest, "difficultyは必須です")
		return
	}

	session, err := h.sessionRepo.Create(&req)
	if err != nil {
		log.Printf("ゲームセッション作成エラー: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "ゲームセッションの作成に失敗しました")
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// GetTexts は配信対象のテキスト一覧を取得するハンドラーです。
// カタログが読めない場合でもデフォルトテキストを返すため、このエンドポイントは失敗しません。
// GET /api/game/texts
func (h *GameHandler) GetTexts(w http.ResponseWriter, r *http.Request) {
	texts := h.catalog.ListActive()
	writeJSON(w, http.StatusOK, texts)
}
