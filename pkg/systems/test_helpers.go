package systems

import (
	"math/rand"

	"github.com/soulwax/darkmoon-sub000/pkg/config"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
	"github.com/soulwax/darkmoon-sub000/pkg/entities"
	"github.com/soulwax/darkmoon-sub000/pkg/events"
)

// 本文件提供系统测试的共享脚手架
// 测试直接用手写的配置结构体，不经过 YAML 解析

// newTestTuning 返回一套测试用调参配置
// 数值刻意取整，便于在断言里手算
func newTestTuning() *config.TuningConfig {
	return &config.TuningConfig{
		Player: config.PlayerTuning{
			MaxHealth:             100,
			MoveSpeed:             100,
			PickupRange:           50,
			InvulnerabilityWindow: 0.8,
			ShieldCapacity:        30,
			ShieldRechargeDelay:   4,
			ShieldRechargeRate:    8,
			DashSpeed:             400,
			DashDuration:          0.2,
			DashCooldown:          1.5,
		},
		Combat: config.CombatTuning{
			CritBaseChance:             0, // 测试默认关掉暴击，伤害可精确断言
			EnemyInvulnerabilityWindow: 0,
			ContactCooldownPerEnemy:    0.8,
			ContactCooldownGlobal:      0.35,
			HitFlashDuration:           0.12,
		},
		Physics: config.PhysicsTuning{
			KnockbackFriction:      6,
			KnockbackSnapThreshold: 4,
			KnockbackStunDuration:  0.15,
			MaxKnockbackSpeed:      900,
			TileCollisionMargin:    2,
		},
		Progression: config.ProgressionTuning{
			XPBase:   10,
			XPGrowth: 2, // 10, 20, 40, ... 便于手算
		},
		World: config.WorldTuning{Width: 2000, Height: 2000},
	}
}

// newTestRNG 固定种子的随机源，保证测试可复现
func newTestRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// newTestWorld 组一个最小战斗世界：实体管理器、事件队列、调参
func newTestWorld() (*ecs.EntityManager, *events.Queue, *config.TuningConfig) {
	return ecs.NewEntityManager(), events.NewQueue(), newTestTuning()
}

// spawnTestEnemy 在 (x, y) 放一个测试敌人
func spawnTestEnemy(em *ecs.EntityManager, tuning *config.TuningConfig, x, y float64, health int) ecs.EntityID {
	return entities.CreateEnemy(em, entities.EnemyParams{
		TypeKey: "slime",
		Stats: config.EnemyStats{
			Health:              health,
			Damage:              10,
			Speed:               60,
			Radius:              12,
			XPValue:             5,
			KnockbackResistance: 1,
			Weight:              10,
		},
		X:      x,
		Y:      y,
		Tuning: tuning,
	})
}

// spawnTestPlayer 在 (x, y) 放一个测试玩家
func spawnTestPlayer(em *ecs.EntityManager, tuning *config.TuningConfig, x, y float64) ecs.EntityID {
	return entities.CreatePlayer(em, tuning, x, y)
}

// newTestWeaponTables 手写的武器等级表
func newTestWeaponTables() *config.WeaponTablesConfig {
	return &config.WeaponTablesConfig{
		Weapons: map[string]config.WeaponTable{
			"sword": {
				MaxLevel: 2,
				Levels: []config.WeaponLevelStats{
					{Damage: 10, Cooldown: 1, Range: 80, ArcDegrees: 180, SwingDuration: 0.3, Knockback: 200},
					{Damage: 15, Cooldown: 0.9, Range: 90, ArcDegrees: 200, SwingDuration: 0.3, Knockback: 220},
				},
			},
			"orbs": {
				MaxLevel: 1,
				Levels: []config.WeaponLevelStats{
					{Damage: 8, Count: 2, OrbitRadius: 60, OrbRadius: 10, RotateSpeed: 3.14159},
				},
			},
			"missiles": {
				MaxLevel: 1,
				Levels: []config.WeaponLevelStats{
					{Damage: 12, Cooldown: 2, Count: 3, Speed: 300, Lifetime: 3, Pierce: 2, TurnRate: 8, Radius: 5, Knockback: 100},
				},
			},
			"lightning": {
				MaxLevel: 1,
				Levels: []config.WeaponLevelStats{
					{Damage: 20, Cooldown: 3, Strikes: 2, Range: 200, StrikeRadius: 40},
				},
			},
			"body": {
				MaxLevel: 1,
				Levels: []config.WeaponLevelStats{
					{Damage: 6, Knockback: 150},
				},
			},
		},
	}
}
