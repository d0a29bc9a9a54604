package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	_ "github.com/lib/pq" // PostgreSQLドライバー
)

// ErrNotFound は対象のレコードが存在しない場合に返されるエラーです。
var ErrNotFound = errors.New("レコードが見つかりません")

// DatabaseService provides methods for interacting with the database.
type DatabaseService struct {
	DB *sql.DB
}

// NewDatabaseService creates a new instance of DatabaseService and establishes a database connection.
func NewDatabaseService(databaseURL string) (*DatabaseService, error) {
	log.Printf("データベース接続を試行中: URLの最初の50文字: %s...", databaseURL[:min(len(databaseURL), 50)])
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		log.Printf("DatabaseService Error: sql.Openに失敗しました: %v", err)
		return nil, fmt.Errorf("データベースへの接続オブジェクト作成に失敗しました: %w", err)
	}

	// データベース接続の確認 (Ping)
	if err := db.Ping(); err != nil {
		log.Printf("DatabaseService Error: db.Pingに失敗しました: %v", err)
		return nil, fmt.Errorf("データベースのPingに失敗しました。接続情報やネットワークを確認してください: %w", err)
	}

	log.Println("データベースに正常に接続しました。")
	return &DatabaseService{DB: db}, nil
}

// EnsureSchema は必要なテーブルが存在しない場合に作成します。
func (s *DatabaseService) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS game_sessions (
			id BIGSERIAL PRIMARY KEY,
			nickname VARCHAR(50) NOT NULL,
			text_content_id INTEGER NOT NULL,
			difficulty VARCHAR(20) NOT NULL,
			start_time TIMESTAMPTZ NOT NULL,
			end_time TIMESTAMPTZ,
			wpm DOUBLE PRECISION,
			accuracy DOUBLE PRECISION,
			is_completed BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS rankings (
			id BIGSERIAL PRIMARY KEY,
			nickname VARCHAR(50) NOT NULL,
			text_content_id INTEGER,
			wpm DOUBLE PRECISION NOT NULL,
			accuracy DOUBLE PRECISION NOT NULL,
			errors INTEGER NOT NULL DEFAULT 0,
			time_elapsed DOUBLE PRECISION NOT NULL DEFAULT 0,
			characters_typed INTEGER NOT NULL DEFAULT 0,
			difficulty VARCHAR(20) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS admin_settings (
			id BIGSERIAL PRIMARY KEY,
			setting_key VARCHAR(100) UNIQUE NOT NULL,
			setting_value TEXT NOT NULL,
			description VARCHAR(500),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("テーブルの作成に失敗しました: %w", err)
		}
	}
	log.Println("データベーススキーマを確認しました。")
	return nil
}
