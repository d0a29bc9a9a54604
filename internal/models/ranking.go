package models

import "time"

// Ranking はrankingsテーブルのレコードに対応する構造体です。
// created_atはサーバー側で送信受付時刻(UTC)が設定されます。
type Ranking struct {
	ID              int64     `json:"id"`
	Nickname        string    `json:"nickname"`
	TextContentID   *int      `json:"text_content_id,omitempty"`
	WPM             float64   `json:"wpm"`
	Accuracy        float64   `json:"accuracy"`
	Errors          int       `json:"errors"`
	TimeElapsed     float64   `json:"time_elapsed"`
	CharactersTyped int       `json:"characters_typed"`
	Difficulty      string    `json:"difficulty"`
	CreatedAt       time.Time `json:"created_at"`
}

// RankingRequest はランキング送信リクエスト用の構造体です。
// timeElapsed / charactersTyped はフロントエンドの送信形式に合わせてcamelCaseです。
// wpmとaccuracyは必須フィールドのため、欠落検出用にポインタで受け取ります。
type RankingRequest struct {
	Nickname        string   `json:"nickname"`
	WPM             *float64 `json:"wpm"`
	Accuracy        *float64 `json:"accuracy"`
	Errors          int      `json:"errors"`
	TimeElapsed     float64  `json:"timeElapsed"`
	CharactersTyped int      `json:"charactersTyped"`
	Difficulty      string   `json:"difficulty"`
	TextContentID   *int     `json:"text_content_id,omitempty"`
}

// RankingUpdateRequest は管理者によるランキング部分更新用の構造体です。
// nilのフィールドは変更されません。
type RankingUpdateRequest struct {
	Nickname        *string  `json:"nickname,omitempty"`
	WPM             *float64 `json:"wpm,omitempty"`
	Accuracy        *float64 `json:"accuracy,omitempty"`
	Errors          *int     `json:"errors,omitempty"`
	TimeElapsed     *float64 `json:"time_elapsed,omitempty"`
	CharactersTyped *int     `json:"characters_typed,omitempty"`
	Difficulty      *string  `json:"difficulty,omitempty"`
}
