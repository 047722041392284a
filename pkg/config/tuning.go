package config

import (
	"fmt"

	"github.com/soulwax/darkmoon-sub000/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// PlayerTuning 玩家基础数值
type PlayerTuning struct {
	MaxHealth             int     `yaml:"maxHealth"`             // 基础最大生命
	MoveSpeed             float64 `yaml:"moveSpeed"`             // 基础移动速度（像素/秒）
	PickupRange           float64 `yaml:"pickupRange"`           // 基础拾取范围（像素）
	InvulnerabilityWindow float64 `yaml:"invulnerabilityWindow"` // 受击后无敌窗口（秒）
	ShieldCapacity        float64 `yaml:"shieldCapacity"`        // 护盾基础容量
	ShieldRechargeDelay   float64 `yaml:"shieldRechargeDelay"`   // 护盾回充延迟（秒）
	ShieldRechargeRate    float64 `yaml:"shieldRechargeRate"`    // 护盾回充速度（点/秒）
	DashSpeed             float64 `yaml:"dashSpeed"`             // 冲刺速度（像素/秒）
	DashDuration          float64 `yaml:"dashDuration"`          // 冲刺时长（秒）
	DashCooldown          float64 `yaml:"dashCooldown"`          // 冲刺冷却（秒）
}

// CombatTuning 战斗判定数值
type CombatTuning struct {
	CritBaseChance             float64 `yaml:"critBaseChance"`             // 基础暴击率
	EnemyInvulnerabilityWindow float64 `yaml:"enemyInvulnerabilityWindow"` // 敌人受击无敌窗口（秒）
	ContactCooldownPerEnemy    float64 `yaml:"contactCooldownPerEnemy"`    // 单个敌人接触伤害冷却（秒）
	ContactCooldownGlobal      float64 `yaml:"contactCooldownGlobal"`      // 全局接触伤害冷却（秒）
	HitFlashDuration           float64 `yaml:"hitFlashDuration"`           // 受击闪烁时长（秒）
}

// PhysicsTuning 物理与击退数值
type PhysicsTuning struct {
	KnockbackFriction      float64 `yaml:"knockbackFriction"`      // 击退衰减系数
	KnockbackSnapThreshold float64 `yaml:"knockbackSnapThreshold"` // 击退归零阈值（像素/秒）
	KnockbackStunDuration  float64 `yaml:"knockbackStunDuration"`  // 击退硬直时长（秒）
	MaxKnockbackSpeed      float64 `yaml:"maxKnockbackSpeed"`      // 击退速度上限（像素/秒）
	TileCollisionMargin    float64 `yaml:"tileCollisionMargin"`    // 瓦片碰撞有效半径收缩边距（像素）
}

// ProgressionTuning 升级曲线数值
type ProgressionTuning struct {
	XPBase   float64 `yaml:"xpBase"`   // 升级曲线基数
	XPGrowth float64 `yaml:"xpGrowth"` // 升级曲线增长率
}

// WorldTuning 世界边界
type WorldTuning struct {
	Width  float64 `yaml:"width"`  // 世界宽度（像素）
	Height float64 `yaml:"height"` // 世界高度（像素）
}

// TuningConfig 战斗核心调参配置
// 启动时一次性加载并校验为完整配置记录，
// tick 循环内所有系统直接读字段，不做任何"取值或默认"兜底
type TuningConfig struct {
	Player      PlayerTuning      `yaml:"player"`
	Combat      CombatTuning      `yaml:"combat"`
	Physics     PhysicsTuning     `yaml:"physics"`
	Progression ProgressionTuning `yaml:"progression"`
	World       WorldTuning       `yaml:"world"`
}

// LoadTuning 从嵌入的 YAML 文件加载调参配置
func LoadTuning(filepath string) (*TuningConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file %s: %w", filepath, err)
	}
	return ParseTuning(data)
}

// ParseTuning 解析并校验调参配置
func ParseTuning(data []byte) (*TuningConfig, error) {
	var config TuningConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}

	if err := validateTuning(&config); err != nil {
		return nil, fmt.Errorf("invalid tuning config: %w", err)
	}

	return &config, nil
}

// validateTuning 验证调参配置
func validateTuning(config *TuningConfig) error {
	if config.Player.MaxHealth <= 0 {
		return fmt.Errorf("player.maxHealth must be positive, got %d", config.Player.MaxHealth)
	}
	if config.Player.MoveSpeed <= 0 {
		return fmt.Errorf("player.moveSpeed must be positive, got %f", config.Player.MoveSpeed)
	}
	if config.Player.PickupRange <= 0 {
		return fmt.Errorf("player.pickupRange must be positive, got %f", config.Player.PickupRange)
	}
	if config.Player.InvulnerabilityWindow < 0 {
		return fmt.Errorf("player.invulnerabilityWindow cannot be negative, got %f", config.Player.InvulnerabilityWindow)
	}
	if config.Player.ShieldCapacity < 0 {
		return fmt.Errorf("player.shieldCapacity cannot be negative, got %f", config.Player.ShieldCapacity)
	}
	if config.Player.ShieldRechargeRate < 0 {
		return fmt.Errorf("player.shieldRechargeRate cannot be negative, got %f", config.Player.ShieldRechargeRate)
	}
	if config.Combat.CritBaseChance < 0 || config.Combat.CritBaseChance > 1 {
		return fmt.Errorf("combat.critBaseChance must be in [0, 1], got %f", config.Combat.CritBaseChance)
	}
	if config.Combat.ContactCooldownPerEnemy <= 0 {
		return fmt.Errorf("combat.contactCooldownPerEnemy must be positive, got %f", config.Combat.ContactCooldownPerEnemy)
	}
	if config.Combat.ContactCooldownGlobal <= 0 {
		return fmt.Errorf("combat.contactCooldownGlobal must be positive, got %f", config.Combat.ContactCooldownGlobal)
	}
	if config.Physics.KnockbackFriction <= 0 {
		return fmt.Errorf("physics.knockbackFriction must be positive, got %f", config.Physics.KnockbackFriction)
	}
	if config.Physics.KnockbackSnapThreshold < 0 {
		return fmt.Errorf("physics.knockbackSnapThreshold cannot be negative, got %f", config.Physics.KnockbackSnapThreshold)
	}
	if config.Physics.MaxKnockbackSpeed <= 0 {
		return fmt.Errorf("physics.maxKnockbackSpeed must be positive, got %f", config.Physics.MaxKnockbackSpeed)
	}
	if config.Progression.XPBase <= 0 {
		return fmt.Errorf("progression.xpBase must be positive, got %f", config.Progression.XPBase)
	}
	if config.Progression.XPGrowth <= 1 {
		return fmt.Errorf("progression.xpGrowth must be greater than 1, got %f", config.Progression.XPGrowth)
	}
	if config.World.Width <= 0 || config.World.Height <= 0 {
		return fmt.Errorf("world dimensions must be positive, got %fx%f", config.World.Width, config.World.Height)
	}
	return nil
}
