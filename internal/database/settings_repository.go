package database

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/renuda-project/renuda-backend/internal/models"
)

// SettingsRepository は管理者設定のデータベース操作を定義するインターフェースです。
type SettingsRepository interface {
	// Seed は既定の設定値を未登録の場合のみ投入します。
	Seed() error

	// Get は指定したキーの設定を取得します。
	Get(key string) (*models.AdminSetting, error)

	// Update は指定したキーの設定値と説明を更新します。
	Update(key, value, description string) error
}

// settingsRepositoryImpl はSettingsRepositoryインターフェースの実装です。
type settingsRepositoryImpl struct {
	db *sql.DB
}

// NewSettingsRepository はSettingsRepositoryの新しいインスタンスを作成します。
func NewSettingsRepository(db *sql.DB) SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

// defaultSettings は初回起動時に投入される既定の管理者設定です。
var defaultSettings = []models.AdminSetting{
	{SettingKey: "game_time_limit", SettingValue: "300", Description: "ゲームの時間制限（秒）"},
	{SettingKey: "max_errors", SettingValue: "10", Description: "最大エラー数"},
	{SettingKey: "ranking_display_limit", SettingValue: "50", Description: "ランキング表示件数"},
}

// Seed は既定の設定値を投入します。既に存在するキーは変更しません。
func (r *settingsRepositoryImpl) Seed() error {
	for _, s := range defaultSettings {
		_, err := r.db.Exec(
			`INSERT INTO admin_settings (setting_key, setting_value, description, updated_at)
			 VALUES ($1, $2, $3, NOW())
			 ON CONFLICT (setting_key) DO NOTHING`,
			s.SettingKey, s.SettingValue, s.Description,
		)
		if err != nil {
			return fmt.Errorf("管理者設定の初期投入に失敗しました: %w", err)
		}
	}
	log.Println("管理者設定を確認しました。")
	return nil
}

// Get は指定したキーの設定を取得します。存在しない場合はErrNotFoundを返します。
func (r *settingsRepositoryImpl) Get(key string) (*models.AdminSetting, error) {
	var setting models.AdminSetting
	var description sql.NullString
	err := r.db.QueryRow(
		`SELECT id, setting_key, setting_value, description, updated_at FROM admin_settings WHERE setting_key = $1`,
		key,
	).Scan(&setting.ID, &setting.SettingKey, &setting.SettingValue, &description, &setting.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("管理者設定の取得に失敗しました: %w", err)
	}
	setting.Description = description.String
	return &setting, nil
}

// Update は指定したキーの設定値と説明を更新します。存在しない場合はErrNotFoundを返します。
func (r *settingsRepositoryImpl) Update(key, value, description string) error {
	result, err := r.db.Exec(
		`UPDATE admin_settings SET setting_value = $1, description = $2, updated_at = NOW() WHERE setting_key = $3`,
		value, description, key,
	)
	if err != nil {
		return fmt.Errorf("管理者設定の更新に失敗しました: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("更新件数の取得に失敗しました: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
