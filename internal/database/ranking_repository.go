package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/renuda-project/renuda-backend/internal/models"
)

// RankingRepository はランキング関連のデータベース操作を定義するインターフェースです。
type RankingRepository interface {
	// Create は新しいランキングレコードを作成します。
	// txがnilの場合は内部でトランザクションを開始し、失敗時はロールバックします。
	Create(tx *sql.Tx, req *models.RankingRequest) (*models.Ranking, error)

	// GetLeaderboard は上位N件のランキングを取得します。
	// dateFilterは "today" / "week" / "month" / "all" / 空文字列を受け付けます。
	GetLeaderboard(limit int, dateFilter string) ([]models.Ranking, error)

	// GetAll は全ランキングを作成日時の降順で取得します(管理者用)。
	GetAll() ([]models.Ranking, error)

	// GetByID は指定したIDのランキングを取得します。
	GetByID(id int64) (*models.Ranking, error)

	// Update は指定したIDのランキングを部分更新します。
	Update(id int64, req *models.RankingUpdateRequest) (*models.Ranking, error)

	// Delete は指定したIDのランキングを削除します。
	Delete(id int64) error

	// DeleteAll は全ランキングを削除し、削除件数を返します。
	DeleteAll() (int64, error)
}

// rankingRepositoryImpl はRankingRepositoryインターフェースの実装です。
type rankingRepositoryImpl struct {
	db *sql.DB
}

// NewRankingRepository はRankingRepositoryの新しいインスタンスを作成します。
func NewRankingRepository(db *sql.DB) RankingRepository {
	return &rankingRepositoryImpl{db: db}
}

const rankingColumns = "id, nickname, text_content_id, wpm, accuracy, errors, time_elapsed, characters_typed, difficulty, created_at"

// scanRanking は1行分のランキングレコードをスキャンします。
func scanRanking(scanner interface{ Scan(...interface{}) error }) (*models.Ranking, error) {
	var ranking models.Ranking
	var textContentID sql.NullInt64
	err := scanner.Scan(
		&ranking.ID,
		&ranking.Nickname,
		&textContentID,
		&ranking.WPM,
		&ranking.Accuracy,
		&ranking.Errors,
		&ranking.TimeElapsed,
		&ranking.CharactersTyped,
		&ranking.Difficulty,
		&ranking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if textContentID.Valid {
		id := int(textContentID.Int64)
		ranking.TextContentID = &id
	}
	return &ranking, nil
}

// Create は新しいランキングレコードを作成します。
// created_atはクライアントの値ではなく、サーバーの受付時刻(UTC)を使用します。
func (r *rankingRepositoryImpl) Create(tx *sql.Tx, req *models.RankingRequest) (*models.Ranking, error) {
	ownTx := tx == nil
	if ownTx {
		var err error
		tx, err = r.db.Begin()
		if err != nil {
			return nil, fmt.Errorf("トランザクションの開始に失敗しました: %w", err)
		}
		defer tx.Rollback()
	}

	now := time.Now().UTC()
	var id int64
	var textContentID sql.NullInt64
	if req.TextContentID != nil {
		textContentID = sql.NullInt64{Int64: int64(*req.TextContentID), Valid: true}
	}

	err := tx.QueryRow(
		`INSERT INTO rankings (nickname, text_content_id, wpm, accuracy, errors, time_elapsed, characters_typed, difficulty, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		req.Nickname, textContentID, *req.WPM, *req.Accuracy, req.Errors, req.TimeElapsed, req.CharactersTyped, req.Difficulty, now,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("ランキングレコードの作成に失敗しました: %w", err)
	}

	if ownTx {
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("トランザクションのコミットに失敗しました: %w", err)
		}
	}

	return &models.Ranking{
		ID:              id,
		Nickname:        req.Nickname,
		TextContentID:   req.TextContentID,
		WPM:             *req.WPM,
		Accuracy:        *req.Accuracy,
		Errors:          req.Errors,
		TimeElapsed:     req.TimeElapsed,
		CharactersTyped: req.CharactersTyped,
		Difficulty:      req.Difficulty,
		CreatedAt:       now,
	}, nil
}

// leaderboardCutoff は日付フィルタに対応する下限時刻を返します。
// "today"は当日0時(UTC)、"week"は7日前、"month"は30日前の固定長ウィンドウです。
// 未知の値・"all"・空文字列は全期間扱い(okがfalse)になります。
func leaderboardCutoff(dateFilter string, now time.Time) (time.Time, bool) {
	switch dateFilter {
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), true
	case "week":
		return now.Add(-7 * 24 * time.Hour), true
	case "month":
		return now.Add(-30 * 24 * time.Hour), true
	default:
		return time.Time{}, false
	}
}

// GetLeaderboard は上位N件のランキングをwpm降順で取得します。
func (r *rankingRepositoryImpl) GetLeaderboard(limit int, dateFilter string) ([]models.Ranking, error) {
	query := "SELECT " + rankingColumns + " FROM rankings"
	args := []interface{}{}

	if cutoff, ok := leaderboardCutoff(dateFilter, time.Now().UTC()); ok {
		query += " WHERE created_at >= $1"
		args = append(args, cutoff)
	}
	query += fmt.Sprintf(" ORDER BY wpm DESC LIMIT $%d", len(args)+1)
	args = append(args, limit)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("ランキング取得に失敗しました: %w", err)
	}
	defer rows.Close()

	return collectRankings(rows)
}

// GetAll は全ランキングを作成日時の降順で取得します。
func (r *rankingRepositoryImpl) GetAll() ([]models.Ranking, error) {
	rows, err := r.db.Query("SELECT " + rankingColumns + " FROM rankings ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("ランキング取得に失敗しました: %w", err)
	}
	defer rows.Close()

	return collectRankings(rows)
}

// collectRankings は結果セットからランキングの一覧を組み立てます。
func collectRankings(rows *sql.Rows) ([]models.Ranking, error) {
	rankings := []models.Ranking{}
	for rows.Next() {
		ranking, err := scanRanking(rows)
		if err != nil {
			return nil, fmt.Errorf("ランキングデータのスキャンに失敗しました: %w", err)
		}
		rankings = append(rankings, *ranking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ランキング取得中にエラーが発生しました: %w", err)
	}
	return rankings, nil
}

// GetByID は指定したIDのランキングを取得します。存在しない場合はErrNotFoundを返します。
func (r *rankingRepositoryImpl) GetByID(id int64) (*models.Ranking, error) {
	row := r.db.QueryRow("SELECT "+rankingColumns+" FROM rankings WHERE id = $1", id)
	ranking, err := scanRanking(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ランキングの取得に失敗しました: %w", err)
	}
	return ranking, nil
}

// Update は指定したIDのランキングを部分更新します。
// リクエストで指定されたフィールドのみをSET句に含めます。
func (r *rankingRepositoryImpl) Update(id int64, req *models.RankingUpdateRequest) (*models.Ranking, error) {
	setClauses := []string{}
	args := []interface{}{}
	idx := 1

	appendClause := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if req.Nickname != nil {
		appendClause("nickname", *req.Nickname)
	}
	if req.WPM != nil {
		appendClause("wpm", *req.WPM)
	}
	if req.Accuracy != nil {
		appendClause("accuracy", *req.Accuracy)
	}
	if req.Errors != nil {
		appendClause("errors", *req.Errors)
	}
	if req.TimeElapsed != nil {
		appendClause("time_elapsed", *req.TimeElapsed)
	}
	if req.CharactersTyped != nil {
		appendClause("characters_typed", *req.CharactersTyped)
	}
	if req.Difficulty != nil {
		appendClause("difficulty", *req.Difficulty)
	}

	// 更新対象フィールドが無い場合は現在のレコードをそのまま返す
	if len(setClauses) == 0 {
		return r.GetByID(id)
	}

	query := fmt.Sprintf("UPDATE rankings SET %s WHERE id = $%d", strings.Join(setClauses, ", "), idx)
	args = append(args, id)

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return nil, fmt.Errorf("ランキングの更新に失敗しました: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("更新件数の取得に失敗しました: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(id)
}

// Delete は指定したIDのランキングを削除します。存在しない場合はErrNotFoundを返します。
func (r *rankingRepositoryImpl) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM rankings WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("ランキングの削除に失敗しました: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("削除件数の取得に失敗しました: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAll は全ランキングを削除し、削除件数を返します。
func (r *rankingRepositoryImpl) DeleteAll() (int64, error) {
	result, err := r.db.Exec("DELETE FROM rankings")
	if err != nil {
		return 0, fmt.Errorf("ランキングのリセットに失敗しました: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("削除件数の取得に失敗しました: %w", err)
	}
	return deleted, nil
}
