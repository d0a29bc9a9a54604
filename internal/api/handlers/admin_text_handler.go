package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/renuda-project/renuda-backend/internal/catalog"
	"github.com/renuda-project/renuda-backend/internal/models"
)

// AdminTextHandler はテキストカタログの管理者向けCRUDハンドラーを管理する構造体です。
// 認証は管理者ミドルウェア側で行われるため、ここでは行いません。
type AdminTextHandler struct {
	catalog *catalog.Service
}

// NewAdminTextHandler は新しいAdminTextHandlerインスタンスを作成します。
func NewAdminTextHandler(catalogService *catalog.Service) *AdminTextHandler {
	return &AdminTextHandler{catalog: catalogService}
}

// GetAll は非アクティブ分も含めたカタログ全件を取得するハンドラーです。
// GET /api/admin/texts
func (h *AdminTextHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	texts, err := h.catalog.ListAll()
	if err != nil {
		log.Printf("テキスト読み込みエラー: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "テキストの読み込みに失敗しました")
		return
	}
	writeJSON(w, http.StatusOK, texts)
}

// Create は新しいテキストをカタログへ追加するハンドラーです。
// POST /api/admin/texts
func (h *AdminTextHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.TextContentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "無効なリクエストボディです")
		return
	}
	if req.Title == "" || req.Content == "" || req.Difficulty == "" {
		writeJSONError(w, http.StatusBadRequest, "title・content・difficultyは必須です")
		return
	}

	created, err := h.catalog.Create(&req)
	if err != nil {
		log.Printf("テキスト保存エラー: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "テキストの保存に失敗しました")
		return
	}
	writeJSON(w, http.StatusOK, created)
}

// Update は指定IDのテキストを部分更新するハンドラーです。
// PUT /api/admin/texts/{id}
func (h *AdminTextHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "無効なテキストIDです")
		return
	}

	var req models.TextContentUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "無効なリクエストボディです")
		return
	}

	updated, err := h.catalog.Update(id, &req)
	if errors.Is(err, catalog.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, "テキストが見つかりません")
		return
	}
	if err != nil {
		log.Printf("テキスト更新エラー: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "テキストの更新に失敗しました")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete は指定IDのテキストをカタログから削除するハンドラーです。
// DELETE /api/admin/texts/{id}
func (h *AdminTextHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "無効なテキストIDです")
		return
	}

	err = h.catalog.Delete(id)
	if errors.Is(err, catalog.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, "テキストが見つかりません")
		return
	}
	if err != nil {
		log.Printf("テキスト削除エラー: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "テキストの削除に失敗しました")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "テキストが削除されました"})
}
