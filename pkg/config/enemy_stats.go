package config

import (
	"fmt"

	"github.com/soulwax/darkmoon-sub000/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// EnemyStats 单个敌人类型的属性配置
type EnemyStats struct {
	Health              int     `yaml:"health"`              // 基础血量
	Damage              int     `yaml:"damage"`              // 接触伤害
	Speed               float64 `yaml:"speed"`               // 追击速度（像素/秒）
	Radius              float64 `yaml:"radius"`              // 碰撞半径（像素）
	XPValue             int     `yaml:"xpValue"`             // 击杀经验值
	KnockbackResistance float64 `yaml:"knockbackResistance"` // 击退抗性乘数
	Weight              int     `yaml:"weight"`              // 加权随机选择的权重
	UnlockWave          int     `yaml:"unlockWave"`          // 最早出现的波次
}

// EnemyStatsConfig 敌人属性配置文件结构
type EnemyStatsConfig struct {
	Enemies map[string]EnemyStats `yaml:"enemies"` // 敌人类型到属性的映射
}

// LoadEnemyStats 从嵌入的 YAML 文件加载敌人属性配置
//
// 参数：
//
//	filepath - 配置文件路径（data/ 下）
//
// 返回：
//
//	*EnemyStatsConfig - 解析后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadEnemyStats(filepath string) (*EnemyStatsConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy stats file %s: %w", filepath, err)
	}
	return ParseEnemyStats(data)
}

// ParseEnemyStats 解析并校验敌人属性配置
// 拆出来是为了让热重载 watcher 可以直接喂磁盘数据
func ParseEnemyStats(data []byte) (*EnemyStatsConfig, error) {
	var config EnemyStatsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse enemy stats YAML: %w", err)
	}

	if err := validateEnemyStats(&config); err != nil {
		return nil, fmt.Errorf("invalid enemy stats: %w", err)
	}

	return &config, nil
}

// validateEnemyStats 验证敌人属性配置的完整性和合法性
// 配置错误必须在启动期暴露，绝不允许流入 tick 循环
func validateEnemyStats(config *EnemyStatsConfig) error {
	if len(config.Enemies) == 0 {
		return fmt.Errorf("at least one enemy type is required")
	}

	for enemyType, stats := range config.Enemies {
		if enemyType == "" {
			return fmt.Errorf("enemy type key cannot be empty")
		}
		if stats.Health <= 0 {
			return fmt.Errorf("enemy %s: health must be positive, got %d", enemyType, stats.Health)
		}
		if stats.Damage < 0 {
			return fmt.Errorf("enemy %s: damage cannot be negative, got %d", enemyType, stats.Damage)
		}
		if stats.Speed <= 0 {
			return fmt.Errorf("enemy %s: speed must be positive, got %f", enemyType, stats.Speed)
		}
		if stats.Radius <= 0 {
			return fmt.Errorf("enemy %s: radius must be positive, got %f", enemyType, stats.Radius)
		}
		if stats.XPValue < 0 {
			return fmt.Errorf("enemy %s: xpValue cannot be negative, got %d", enemyType, stats.XPValue)
		}
		if stats.KnockbackResistance < 0 {
			return fmt.Errorf("enemy %s: knockbackResistance cannot be negative, got %f", enemyType, stats.KnockbackResistance)
		}
		if stats.Weight < 0 {
			return fmt.Errorf("enemy %s: weight cannot be negative, got %d", enemyType, stats.Weight)
		}
		if stats.UnlockWave < 0 {
			return fmt.Errorf("enemy %s: unlockWave cannot be negative, got %d", enemyType, stats.UnlockWave)
		}
	}

	return nil
}

// GetEnemyStats 获取指定敌人类型的完整属性
// 类型不存在时返回 (零值, false)
func (c *EnemyStatsConfig) GetEnemyStats(enemyType string) (EnemyStats, bool) {
	stats, ok := c.Enemies[enemyType]
	return stats, ok
}

// GetEnemyWeight 获取指定敌人类型的权重
// 类型不存在时返回默认权重 0
func (c *EnemyStatsConfig) GetEnemyWeight(enemyType string) int {
	if stats, ok := c.Enemies[enemyType]; ok {
		return stats.Weight
	}
	return 0
}

// UnlockedTypes 返回在指定波次已解锁的敌人类型列表
func (c *EnemyStatsConfig) UnlockedTypes(waveNumber int) []string {
	result := make([]string, 0, len(c.Enemies))
	for enemyType, stats := range c.Enemies {
		if stats.UnlockWave <= waveNumber {
			result = append(result, enemyType)
		}
	}
	return result
}
