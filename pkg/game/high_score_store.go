package game

import (
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// HighScoreStore 最高分持久化接口
type HighScoreStore interface {
	// Load 读取已保存的最高分，没有记录时返回 0
	Load() (int, error)
	// Save 保存最高分
	Save(score int) error
}

// 存储路径常量
const (
	scoresObject      = "scores"
	highScoreProperty = "high"
)

// highScoreRecord 最高分存档格式
type highScoreRecord struct {
	HighScore int       `yaml:"highScore"`
	UpdatedAt time.Time `yaml:"updatedAt"`
}

// GdataScoreStore 基于 gdata 的最高分存储
// gdataManager 为 nil 时进入降级模式：Load 返回 0，Save 静默成功
type GdataScoreStore struct {
	gdataManager *gdata.Manager
}

// NewGdataScoreStore 创建 gdata 最高分存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
func NewGdataScoreStore(gdataManager *gdata.Manager) *GdataScoreStore {
	return &GdataScoreStore{gdataManager: gdataManager}
}

// Load 从 gdata 读取最高分
func (s *GdataScoreStore) Load() (int, error) {
	if s.gdataManager == nil {
		return 0, nil
	}
	if !s.gdataManager.ObjectPropExists(scoresObject, highScoreProperty) {
		return 0, nil
	}

	data, err := s.gdataManager.LoadObjectProp(scoresObject, highScoreProperty)
	if err != nil {
		return 0, fmt.Errorf("failed to load high score: %w", err)
	}

	var record highScoreRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return 0, fmt.Errorf("failed to unmarshal high score: %w", err)
	}
	return record.HighScore, nil
}

// Save 把最高分写入 gdata
func (s *GdataScoreStore) Save(score int) error {
	if s.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&highScoreRecord{HighScore: score, UpdatedAt: time.Now()})
	if err != nil {
		return fmt.Errorf("failed to marshal high score: %w", err)
	}
	if err := s.gdataManager.SaveObjectProp(scoresObject, highScoreProperty, data); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}

	log.Printf("[GdataScoreStore] High score saved: %d", score)
	return nil
}

// MemoryScoreStore 仅保存在内存中的最高分（终端版和测试使用）
type MemoryScoreStore struct {
	score int
	saves int
}

// NewMemoryScoreStore 创建内存最高分存储，initial 为初始最高分
func NewMemoryScoreStore(initial int) *MemoryScoreStore {
	return &MemoryScoreStore{score: initial}
}

// Load 返回内存中的最高分
func (s *MemoryScoreStore) Load() (int, error) {
	return s.score, nil
}

// Save 更新内存中的最高分
func (s *MemoryScoreStore) Save(score int) error {
	s.score = score
	s.saves++
	return nil
}

// SaveCount 返回 Save 被调用的次数
func (s *MemoryScoreStore) SaveCount() int {
	return s.saves
}
