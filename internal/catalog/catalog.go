package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/renuda-project/renuda-backend/internal/models"
)

// ErrNotFound は対象のテキストがカタログに存在しない場合に返されるエラーです。
var ErrNotFound = errors.New("テキストが見つかりません")

// Service はJSONファイルに保存されたテキストカタログを管理する構造体です。
// すべての変更操作はファイル全体の読み込み→変更→書き戻しで行うため、
// mutexで書き込みの直列化を保証します。
type Service struct {
	path string
	mu   sync.Mutex
}

// NewService は指定されたファイルパスのカタログを扱うServiceを作成します。
func NewService(path string) *Service {
	return &Service{path: path}
}

// DefaultTexts はカタログが読めない場合に配信する固定のフォールバックテキストです。
// プレイ不能を避けるため、公開取得APIはエラーの代わりに必ずこれを返します。
func DefaultTexts() []models.TextContent {
	active := true
	return []models.TextContent{
		{ID: 1, Title: "こんにちは", Content: "こんにちは", Difficulty: "easy", IsActive: &active},
		{ID: 2, Title: "ありがとう", Content: "ありがとう", Difficulty: "easy", IsActive: &active},
		{ID: 3, Title: "おはよう", Content: "おはよう", Difficulty: "easy", IsActive: &active},
	}
}

// load はカタログファイルを読み込んでテキスト一覧を返します。
// 呼び出し側でmuを保持している必要があります。
func (s *Service) load() ([]models.TextContent, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var doc models.TextCatalog
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("カタログファイルの解析に失敗しました: %w", err)
	}
	return doc.Texts, nil
}

// save はテキスト一覧をカタログファイルへ書き戻します。
// 先にシリアライズを完了させ、一時ファイルへ書いてからrenameで置き換えるため、
// 途中失敗しても既存ファイルの内容は保たれます。
func (s *Service) save(texts []models.TextContent) error {
	data, err := json.MarshalIndent(models.TextCatalog{Texts: texts}, "", "  ")
	if err != nil {
		return fmt.Errorf("カタログのシリアライズに失敗しました: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("カタログディレクトリの作成に失敗しました: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "texts-*.json")
	if err != nil {
		return fmt.Errorf("一時ファイルの作成に失敗しました: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("カタログの書き込みに失敗しました: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("一時ファイルのクローズに失敗しました: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("カタログファイルの置き換えに失敗しました: %w", err)
	}
	return nil
}

// ListActive は配信対象(is_activeがtrue)のテキスト一覧を返します。
// ファイルの欠如・読み込み失敗・解析失敗のいずれでもエラーにせず、
// フォールバックテキストを返します。
func (s *Service) ListActive() []models.TextContent {
	s.mu.Lock()
	defer s.mu.Unlock()

	texts, err := s.load()
	if err != nil {
		log.Printf("Catalog: カタログを読み込めないため、デフォルトテキストを返します: %v", err)
		return DefaultTexts()
	}

	active := make([]models.TextContent, 0, len(texts))
	for _, t := range texts {
		if t.Active() {
			active = append(active, t)
		}
	}
	return active
}

// ListAll は非アクティブ分も含めたカタログ全件を返します(管理者用)。
// ファイルが存在しない場合は空の一覧を返し、それ以外の失敗はエラーとして返します。
func (s *Service) ListAll() ([]models.TextContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	texts, err := s.load()
	if os.IsNotExist(err) {
		return []models.TextContent{}, nil
	}
	if err != nil {
		return nil, err
	}
	return texts, nil
}

// Create は新しいテキストをカタログへ追加します。
// IDは既存の最大ID+1(空カタログなら1)を割り当てます。
func (s *Service) Create(req *models.TextContentCreateRequest) (*models.TextContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	texts, err := s.load()
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	maxID := 0
	for _, t := range texts {
		if t.ID > maxID {
			maxID = t.ID
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	created := models.TextContent{
		ID:         maxID + 1,
		Title:      req.Title,
		Content:    req.Content,
		Difficulty: req.Difficulty,
		IsActive:   &isActive,
	}
	texts = append(texts, created)

	if err := s.save(texts); err != nil {
		return nil, err
	}
	log.Printf("Catalog: テキストID %d を作成しました (title=%s)", created.ID, created.Title)
	return &created, nil
}

// Update は指定IDのテキストを部分更新します。
// 指定されなかったフィールドは変更されません。カタログファイルが存在しない場合、
// またはIDが見つからない場合はErrNotFoundを返します。
func (s *Service) Update(id int, req *models.TextContentUpdateRequest) (*models.TextContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	texts, err := s.load()
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range texts {
		if texts[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotFound
	}

	if req.Title != nil {
		texts[idx].Title = *req.Title
	}
	if req.Content != nil {
		texts[idx].Content = *req.Content
	}
	if req.Difficulty != nil {
		texts[idx].Difficulty = *req.Difficulty
	}
	if req.IsActive != nil {
		texts[idx].IsActive = req.IsActive
	}

	if err := s.save(texts); err != nil {
		return nil, err
	}
	log.Printf("Catalog: テキストID %d を更新しました", id)
	updated := texts[idx]
	return &updated, nil
}

// Delete は指定IDのテキストをカタログから削除します。
// カタログファイルが存在しない場合、またはIDが見つからない場合はErrNotFoundを返します。
func (s *Service) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	texts, err := s.load()
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	remaining := make([]models.TextContent, 0, len(texts))
	for _, t := range texts {
		if t.ID != id {
			remaining = append(remaining, t)
		}
	}
	if len(remaining) == len(texts) {
		return ErrNotFound
	}

	if err := s.save(remaining); err != nil {
		return err
	}
	log.Printf("Catalog: テキストID %d を削除しました", id)
	return nil
}
