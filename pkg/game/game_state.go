package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/snake/pkg/utils"
)

// GameState 跨场景共享的持久化服务
//
// 由入口创建一次并传给各场景；gdata 打开失败时 Storage 为 nil，
// 其余服务以降级模式运行（设置和最高分只保存在内存中）
type GameState struct {
	Storage  *gdata.Manager
	Settings *SettingsManager
	Scores   HighScoreStore
}

// NewGameState 打开 gdata 存储并创建设置与最高分服务
//
// 参数：
//   - appName: gdata 应用名，决定存档目录
func NewGameState(appName string) *GameState {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[GameState] Warning: Failed to prepare storage directory: %v", err)
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[GameState] Warning: Failed to open gdata storage %q: %v (running without persistence)", appName, err)
		manager = nil
	}
	return NewGameStateWithStorage(manager)
}

// NewGameStateWithStorage 使用已打开的存储管理器创建服务，manager 可为 nil
func NewGameStateWithStorage(manager *gdata.Manager) *GameState {
	return &GameState{
		Storage:  manager,
		Settings: NewSettingsManager(manager),
		Scores:   NewGdataScoreStore(manager),
	}
}

// HasStorage 是否具备持久化能力
func (gs *GameState) HasStorage() bool {
	return gs.Storage != nil
}
