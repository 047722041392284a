package config

import (
	"fmt"

	"github.com/soulwax/darkmoon-sub000/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// WeaponLevelStats 武器单个等级的数值
// 所有武器共用一张字段表，各武器种类只读取自己关心的字段；
// 数值是逐级手工配置的表查找，不是连续公式
type WeaponLevelStats struct {
	Damage   int     `yaml:"damage"`   // 基础伤害
	Cooldown float64 `yaml:"cooldown"` // 冷却时间（秒）

	// 近战挥砍
	Range         float64 `yaml:"range"`         // 攻击距离（像素）
	ArcDegrees    float64 `yaml:"arcDegrees"`    // 挥砍弧度（角度制）
	SwingDuration float64 `yaml:"swingDuration"` // 挥砍时长（秒）
	Knockback     float64 `yaml:"knockback"`     // 击退冲量（像素/秒）

	// 环绕法球
	Count       int     `yaml:"count"`       // 法球/飞弹数量
	OrbitRadius float64 `yaml:"orbitRadius"` // 公转半径（像素）
	OrbRadius   float64 `yaml:"orbRadius"`   // 单个法球碰撞半径（像素）
	RotateSpeed float64 `yaml:"rotateSpeed"` // 公转角速度（弧度/秒）

	// 追踪飞弹
	Speed    float64 `yaml:"speed"`    // 飞行速度（像素/秒）
	Lifetime float64 `yaml:"lifetime"` // 存活时间（秒）
	Pierce   int     `yaml:"pierce"`   // 穿透预算
	TurnRate float64 `yaml:"turnRate"` // 追踪转向速率（每秒比例）
	Radius   float64 `yaml:"radius"`   // 弹体碰撞半径（像素）

	// 范围落雷
	Strikes      int     `yaml:"strikes"`      // 落雷次数
	StrikeRadius float64 `yaml:"strikeRadius"` // 单次落雷的伤害半径（像素）
}

// WeaponTable 单种武器的逐级数值表
type WeaponTable struct {
	MaxLevel int                `yaml:"maxLevel"` // 最大等级
	Levels   []WeaponLevelStats `yaml:"levels"`   // 下标 0 对应等级 1
}

// WeaponTablesConfig 武器等级配置文件结构
type WeaponTablesConfig struct {
	Weapons map[string]WeaponTable `yaml:"weapons"` // 武器种类到等级表的映射
}

// LoadWeaponTables 从嵌入的 YAML 文件加载武器等级配置
func LoadWeaponTables(filepath string) (*WeaponTablesConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read weapon tables file %s: %w", filepath, err)
	}
	return ParseWeaponTables(data)
}

// ParseWeaponTables 解析并校验武器等级配置
func ParseWeaponTables(data []byte) (*WeaponTablesConfig, error) {
	var config WeaponTablesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse weapon tables YAML: %w", err)
	}

	if err := validateWeaponTables(&config); err != nil {
		return nil, fmt.Errorf("invalid weapon tables: %w", err)
	}

	return &config, nil
}

// validateWeaponTables 验证武器等级配置
// 等级表残缺属于启动期致命错误（畸形配置不允许进入战斗循环）
func validateWeaponTables(config *WeaponTablesConfig) error {
	if len(config.Weapons) == 0 {
		return fmt.Errorf("at least one weapon is required")
	}

	for kind, table := range config.Weapons {
		if table.MaxLevel < 1 {
			return fmt.Errorf("weapon %s: maxLevel must be at least 1, got %d", kind, table.MaxLevel)
		}
		if len(table.Levels) != table.MaxLevel {
			return fmt.Errorf("weapon %s: expected %d level entries, got %d", kind, table.MaxLevel, len(table.Levels))
		}
		for i, lv := range table.Levels {
			if lv.Damage < 0 {
				return fmt.Errorf("weapon %s level %d: damage cannot be negative, got %d", kind, i+1, lv.Damage)
			}
			if lv.Cooldown < 0 {
				return fmt.Errorf("weapon %s level %d: cooldown cannot be negative, got %f", kind, i+1, lv.Cooldown)
			}
			if lv.Pierce < 0 {
				return fmt.Errorf("weapon %s level %d: pierce cannot be negative, got %d", kind, i+1, lv.Pierce)
			}
		}
	}

	return nil
}

// GetTable 获取指定武器的等级表
func (c *WeaponTablesConfig) GetTable(kind string) (WeaponTable, bool) {
	table, ok := c.Weapons[kind]
	return table, ok
}

// GetLevelStats 获取指定武器在指定等级的数值
// 等级越界时返回 (零值, false)
func (c *WeaponTablesConfig) GetLevelStats(kind string, level int) (WeaponLevelStats, bool) {
	table, ok := c.Weapons[kind]
	if !ok {
		return WeaponLevelStats{}, false
	}
	if level < 1 || level > len(table.Levels) {
		return WeaponLevelStats{}, false
	}
	return table.Levels[level-1], true
}
