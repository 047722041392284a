package game

import (
	"fmt"
	"log"
	"sort"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// RunSummary 单局战斗的结算记录
type RunSummary struct {
	WaveReached  int     `yaml:"waveReached"`  // 达到的波次
	Kills        int     `yaml:"kills"`        // 击杀数
	Level        int     `yaml:"level"`        // 结束时的玩家等级
	TimeSurvived float64 `yaml:"timeSurvived"` // 存活时间（秒）
}

// SaveData 持久化的玩家战绩
type SaveData struct {
	BestWave     int          `yaml:"bestWave"`     // 历史最高波次
	TotalKills   int          `yaml:"totalKills"`   // 累计击杀
	TotalRuns    int          `yaml:"totalRuns"`    // 累计局数
	RecentRuns   []RunSummary `yaml:"recentRuns"`   // 最近若干局（新的在前）
	BestSurvival float64      `yaml:"bestSurvival"` // 历史最长存活（秒）
}

// 存储路径常量
const (
	saveObject    = "survival"
	saveProperty  = "progress"
	maxRecentRuns = 10
)

// SaveManager 战绩持久化管理器
//
// 基于 gdata 的跨平台存储，gdataManager 可为 nil（降级模式，
// 仅内存记录，退出即丢）。所有失败都不致命：
// 战绩丢失不应该阻止玩家继续游戏
type SaveManager struct {
	gdataManager *gdata.Manager
	data         *SaveData
}

// NewSaveManager 创建战绩管理器并尝试加载已有数据
func NewSaveManager(gdataManager *gdata.Manager) *SaveManager {
	sm := &SaveManager{
		gdataManager: gdataManager,
		data:         &SaveData{},
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SaveManager] Warning: Failed to load save data: %v (starting fresh)", err)
		sm.data = &SaveData{}
	}
	return sm
}

// Load 从 gdata 加载战绩
// 管理器为 nil 或数据不存在时保持空白战绩
func (sm *SaveManager) Load() error {
	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(saveObject, saveProperty) {
		return nil
	}

	raw, err := sm.gdataManager.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		return fmt.Errorf("failed to load save data: %w", err)
	}

	var data SaveData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse save data: %w", err)
	}
	sm.data = &data
	return nil
}

// Save 把当前战绩写入 gdata
func (sm *SaveManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	raw, err := yaml.Marshal(sm.data)
	if err != nil {
		return fmt.Errorf("failed to serialize save data: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(saveObject, saveProperty, raw); err != nil {
		return fmt.Errorf("failed to persist save data: %w", err)
	}
	return nil
}

// RecordRun 记录一局结算并立即持久化
func (sm *SaveManager) RecordRun(run RunSummary) {
	sm.data.TotalRuns++
	sm.data.TotalKills += run.Kills
	if run.WaveReached > sm.data.BestWave {
		sm.data.BestWave = run.WaveReached
	}
	if run.TimeSurvived > sm.data.BestSurvival {
		sm.data.BestSurvival = run.TimeSurvived
	}

	sm.data.RecentRuns = append([]RunSummary{run}, sm.data.RecentRuns...)
	if len(sm.data.RecentRuns) > maxRecentRuns {
		sm.data.RecentRuns = sm.data.RecentRuns[:maxRecentRuns]
	}

	if err := sm.Save(); err != nil {
		log.Printf("[SaveManager] Warning: Failed to save run record: %v", err)
	}
}

// BestWave 历史最高波次
func (sm *SaveManager) BestWave() int {
	return sm.data.BestWave
}

// TotalKills 累计击杀数
func (sm *SaveManager) TotalKills() int {
	return sm.data.TotalKills
}

// RecentRuns 返回最近的局记录副本（新的在前）
func (sm *SaveManager) RecentRuns() []RunSummary {
	out := make([]RunSummary, len(sm.data.RecentRuns))
	copy(out, sm.data.RecentRuns)
	return out
}

// TopWaves 返回按波次降序排列的最近局波次列表
func (sm *SaveManager) TopWaves() []int {
	waves := make([]int, 0, len(sm.data.RecentRuns))
	for _, run := range sm.data.RecentRuns {
		waves = append(waves, run.WaveReached)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(waves)))
	return waves
}
