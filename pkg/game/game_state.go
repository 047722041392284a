package game

import (
	"log"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

// GameState 全局游戏状态单例
//
// 持有跨场景存活的管理器：战绩持久化与全局设置。
// 战斗内的实时状态不放这里，那些归战斗场景的实体世界管
type GameState struct {
	saveManager     *SaveManager
	settingsManager *SettingsManager
}

var (
	gameStateInstance *GameState
	gameStateOnce     sync.Once
)

// GetGameState 获取全局游戏状态单例
// 首次调用时初始化 gdata 存储；存储不可用时降级为仅内存模式
func GetGameState() *GameState {
	gameStateOnce.Do(func() {
		gdataManager, err := gdata.Open(gdata.Config{AppName: "darkmoon"})
		if err != nil {
			log.Printf("[GameState] Warning: gdata storage unavailable: %v (progress will not persist)", err)
			gdataManager = nil
		}

		gameStateInstance = &GameState{
			saveManager:     NewSaveManager(gdataManager),
			settingsManager: NewSettingsManager(gdataManager),
		}
	})
	return gameStateInstance
}

// GetSaveManager 返回战绩管理器
func (gs *GameState) GetSaveManager() *SaveManager {
	return gs.saveManager
}

// GetSettingsManager 返回设置管理器
func (gs *GameState) GetSettingsManager() *SettingsManager {
	return gs.settingsManager
}
