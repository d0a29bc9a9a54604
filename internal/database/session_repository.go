package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/renuda-project/renuda-backend/internal/models"
)

// SessionRepository はゲームセッション関連のデータベース操作を定義するインターフェースです。
type SessionRepository interface {
	// Create は新しいゲームセッションレコードを作成します。
	Create(req *models.GameSessionRequest) (*models.GameSession, error)
}

// sessionRepositoryImpl はSessionRepositoryインターフェースの実装です。
type sessionRepositoryImpl struct {
	db *sql.DB
}

// NewSessionRepository はSessionRepositoryの新しいインスタンスを作成します。
func NewSessionRepository(db *sql.DB) SessionRepository {
	return &sessionRepositoryImpl{db: db}
}

// Create は新しいゲームセッションレコードを作成します。
// start_timeはサーバーの受付時刻(UTC)、is_completedはfalseで記録されます。
// text_content_idの存在チェックは行いません(カタログとは独立管理)。
func (r *sessionRepositoryImpl) Create(req *models.GameSessionRequest) (*models.GameSession, error) {
	now := time.Now().UTC()
	var id int64

	err := r.db.QueryRow(
		`INSERT INTO game_sessions (nickname, text_content_id, difficulty, start_time, is_completed)
		 VALUES ($1, $2, $3, $4, FALSE) RETURNING id`,
		req.Nickname, req.TextContentID, req.Difficulty, now,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("ゲームセッションレコードの作成に失敗しました: %w", err)
	}

	return &models.GameSession{
		ID:            id,
		Nickname:      req.Nickname,
		TextContentID: req.TextContentID,
		Difficulty:    req.Difficulty,
		StartTime:     now,
		IsCompleted:   false,
	}, nil
}
