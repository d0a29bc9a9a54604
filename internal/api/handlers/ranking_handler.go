package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/renuda-project/renuda-backend/internal/database"
	"github.com/renuda-project/renuda-backend/internal/models"
)

// defaultLeaderboardLimit はlimit未指定時のランキング取得件数です。
const defaultLeaderboardLimit = 10

// RankingHandler はランキング関連の公開ハンドラーを管理する構造体です。
type RankingHandler struct {
	rankingRepo database.RankingRepository
}

// NewRankingHandler は新しいRankingHandlerインスタンスを作成します。
func NewRankingHandler(rankingRepo database.RankingRepository) *RankingHandler {
	return &RankingHandler{rankingRepo: rankingRepo}
}

// GetRankings はランキング上位を取得するハンドラーです。
// GET /api/rankings?limit=10&date_filter=today
func (h *RankingHandler) GetRankings(w http.ResponseWriter, r *http.Request) {
	limit := defaultLeaderboardLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	dateFilter := r.URL.Query().Get("date_filter")

	rankings, err := h.rankingRepo.GetLeaderboard(limit, dateFilter)
	if err != nil {
		log.Printf("ランキング取得エラー: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "ランキングの取得に失敗しました")
		return
	}

	writeJSON(w, http.StatusOK, rankings)
}

// SubmitRanking はランキングを登録するハンドラーです。
// POST /api/rankings
func (h *RankingHandler) SubmitRanking(w http.ResponseWriter, r *http.Request) {
	var req models.RankingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "無効なリクエストボディです")
		return
	}

	// バリデーション (accuracyの値域チェックは行わず、送信された値をそのまま保存する)
	if req.Nickname == "" {
		writeJSONError(w, http.StatusBadRequest, "nicknameは必須です")
		return
	}
	if req.WPM == nil {
		writeJSONError(w, http.StatusBadRequest, "wpmは必須です")
		return
	}
	if req.Accuracy == nil {
		writeJSONError(w, http.StatusBadRequest, "accuracyは必須です")
		return
	}
	if req.Difficulty == "" {
		writeJSONError(w, http.StatusBadRequest, "difficultyは必須です")
		return
	}

	ranking, err := h.rankingRepo.Create(nil, &req)
	if err != nil {
		log.Printf("ランキング保存エラー: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "ランキング保存に失敗しました")
		return
	}

	log.Printf("ランキング保存成功: ID=%d (nickname=%s, wpm=%.1f)", ranking.ID, ranking.Nickname, ranking.WPM)
	writeJSON(w, http.StatusOK, ranking)
}
