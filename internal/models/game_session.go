package models

import "time"

// GameSession はgame_sessionsテーブルのレコードに対応する構造体です。
// end_time / wpm / accuracy / is_completed はセッション開始時点では未設定で、
// 現状のAPIに更新経路はありません。
type GameSession struct {
	ID            int64      `json:"id"`
	Nickname      string     `json:"nickname"`
	TextContentID int        `json:"text_content_id"`
	Difficulty    string     `json:"difficulty"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	WPM           *float64   `json:"wpm,omitempty"`
	Accuracy      *float64   `json:"accuracy,omitempty"`
	IsCompleted   bool       `json:"is_completed"`
}

// GameSessionRequest はセッション開始リクエスト用の構造体です。
type GameSessionRequest struct {
	Nickname      string `json:"nickname"`
	TextContentID int    `json:"text_content_id"`
	Difficulty    string `json:"difficulty"`
}
