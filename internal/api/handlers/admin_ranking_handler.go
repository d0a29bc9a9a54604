package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/renuda-project/renuda-backend/internal/database"
	"github.com/renuda-project/renuda-backend/internal/models"
)

// AdminRankingHandler はランキングの管理者向け操作ハンドラーを管理する構造体です。
// 認証は管理者ミドルウェア側で行われるため、ここでは行いません。
type AdminRankingHandler struct {
	rankingRepo database.RankingRepository
}

// NewAdminRankingHandler は新しいAdminRankingHandlerインスタンスを作成します。
func NewAdminRankingHandler(rankingRepo database.RankingRepository) *AdminRankingHandler {
	return &AdminRankingHandler{rankingRepo: rankingRepo}
}

// GetAll は全ランキングを作成日時の降順で取得するハンドラーです。
// GET /api/admin/rankings
func (h *AdminRankingHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	rankings, err := h.rankingRepo.GetAll()
	if err != nil {
		log.Printf("ランキング取得エラー: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "ランキングの取得に失敗しました")
		return
	}
	writeJSON(w, http.StatusOK, rankings)
}

// Update は指定IDのランキングを部分更新するハンドラーです。
// PUT /api/admin/rankings/{id}
func (h *AdminRankingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "無効なランキングIDです")
		return
	}

	var req models.RankingUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "無効なリクエストボディです")
		return
	}

	updated, err := h.rankingRepo.Update(id, &req)
	if errors.Is(err, database.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, "ランキングが見つかりません")
		return
	}
	if err != nil {
		log.Printf("ランキング更新エラー: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "ランキングの更新に失敗しました")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete は指定IDのランキングを削除するハンドラーです。
// DELETE /api/admin/rankings/{id}
func (h *AdminRankingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "無効なランキングIDです")
		return
	}

	err = h.rankingRepo.Delete(id)
	if errors.Is(err, database.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, "ランキングが見つかりません")
		return
	}
	if err != nil {
		log.Printf("ランキング削除エラー: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "ランキングの削除に失敗しました")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "ランキングが削除されました"})
}

// DeleteAll は全ランキングを削除するハンドラーです。
// DELETE /api/admin/rankings
func (h *AdminRankingHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.rankingRepo.DeleteAll()
	if err != nil {
		log.Printf("ランキングリセットエラー: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "ランキングのリセットに失敗しました")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("%d件のランキングがリセットされました", deleted),
		"deleted": deleted,
	})
}
