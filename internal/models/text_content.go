package models

// TextContent はタイピング練習用テキスト1件を表す構造体です。
// カタログファイル(texts.json)の1エントリに対応します。
type TextContent struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Difficulty string `json:"difficulty"` // easy / medium / hard
	// 旧形式のエントリにはis_activeが存在しないことがあるため、
	// ポインタで保持し、欠落時はアクティブ扱いにします。
	IsActive *bool `json:"is_active,omitempty"`
}

// Active はテキストが配信対象かどうかを返します。is_active欠落時はtrueです。
func (t *TextContent) Active() bool {
	return t.IsActive == nil || *t.IsActive
}

// TextCatalog はカタログファイル全体のJSONドキュメントに対応する構造体です。
type TextCatalog struct {
	Texts []TextContent `json:"texts"`
}

// TextContentCreateRequest はテキスト作成リクエスト用の構造体です。
type TextContentCreateRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Difficulty string `json:"difficulty"`
	IsActive   *bool  `json:"is_active,omitempty"` // 省略時はtrue
}

// TextContentUpdateRequest はテキスト部分更新リクエスト用の構造体です。
// nilのフィールドは変更されません。
type TextContentUpdateRequest struct {
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
	Difficulty *string `json:"difficulty,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}
