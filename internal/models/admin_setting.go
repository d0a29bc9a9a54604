package models

import "time"

// AdminSetting はadmin_settingsテーブルのレコードに対応する構造体です。
// 値はすべて文字列として保持し、利用側で解釈します。
type AdminSetting struct {
	ID           int64     `json:"id"`
	SettingKey   string    `json:"setting_key"`
	SettingValue string    `json:"setting_value"`
	Description  string    `json:"description,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}
