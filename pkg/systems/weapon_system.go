package systems

import (
	"fmt"
	"math/rand"

	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/config"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
	"github.com/soulwax/darkmoon-sub000/pkg/events"
)

// WeaponSystem 武器引擎
//
// 玩家持有的每件武器是注册表里的一个带标签变体（WeaponKind），
// 本系统每帧推进所有武器的冷却，并按种类分发触发逻辑：
//
//	sword     近战弧形挥砍（冷却好且射程内有敌人时起手）
//	orbs      环绕法球（无冷却概念，持续公转，每圈每敌至多一次命中）
//	missiles  追踪飞弹（冷却好且场上有目标时齐射）
//	lightning 范围落雷（冷却好且范围内有敌人时落下）
//	body      被动反伤，不在这里触发（见 ContactDamageSystem）
//
// 所有等级数值来自武器等级表的逐级查表，本系统不做数值插值
type WeaponSystem struct {
	hit    hitContext
	tables *config.WeaponTablesConfig
}

// NewWeaponSystem 创建武器系统
func NewWeaponSystem(em *ecs.EntityManager, queue *events.Queue,
	tuning *config.TuningConfig, tables *config.WeaponTablesConfig, rng *rand.Rand) *WeaponSystem {
	return &WeaponSystem{
		hit:    hitContext{em: em, queue: queue, tuning: tuning, rng: rng},
		tables: tables,
	}
}

// AddWeapon 给玩家装备一件新武器（等级 1）
// 已持有同种武器时返回错误，升级走 UpgradeWeapon
func (s *WeaponSystem) AddWeapon(playerID ecs.EntityID, kind components.WeaponKind) error {
	owner, ok := ecs.GetComponent[*components.WeaponOwnerComponent](s.hit.em, playerID)
	if !ok {
		return fmt.Errorf("entity %d has no weapon registry", playerID)
	}
	if owner.HasWeapon(kind) {
		return fmt.Errorf("weapon %s already owned", kind)
	}
	if _, found := s.tables.GetTable(string(kind)); !found {
		return fmt.Errorf("unknown weapon kind %s", kind)
	}

	owner.Weapons[kind] = &components.WeaponState{
		Kind:   kind,
		Level:  1,
		Active: true,
	}
	s.hit.queue.Publish(events.Event{
		Type:   events.EventWeaponAcquired,
		Entity: playerID,
		Amount: 1,
		Kind:   string(kind),
	})
	return nil
}

// UpgradeWeapon 把已持有的武器提升一级
// 未持有或已满级时返回错误
func (s *WeaponSystem) UpgradeWeapon(playerID ecs.EntityID, kind components.WeaponKind) error {
	owner, ok := ecs.GetComponent[*components.WeaponOwnerComponent](s.hit.em, playerID)
	if !ok {
		return fmt.Errorf("entity %d has no weapon registry", playerID)
	}
	weapon := owner.GetWeapon(kind)
	if weapon == nil {
		return fmt.Errorf("weapon %s not owned", kind)
	}
	table, found := s.tables.GetTable(string(kind))
	if !found {
		return fmt.Errorf("unknown weapon kind %s", kind)
	}
	if weapon.Level >= table.MaxLevel {
		return fmt.Errorf("weapon %s already at max level %d", kind, table.MaxLevel)
	}

	weapon.Level++
	s.hit.queue.Publish(events.Event{
		Type:   events.EventWeaponUpgraded,
		Entity: playerID,
		Amount: weapon.Level,
		Kind:   string(kind),
	})
	return nil
}

// Update 推进所有玩家的所有武器
func (s *WeaponSystem) Update(dt float64) {
	em := s.hit.em

	ids := ecs.GetEntitiesWith3[*components.PlayerComponent, *components.WeaponOwnerComponent, *components.PositionComponent](em)
	for _, playerID := range ids {
		owner, _ := ecs.GetComponent[*components.WeaponOwnerComponent](em, playerID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, playerID)
		stats := s.hit.playerStats(playerID)

		for _, weapon := range owner.Weapons {
			if !weapon.Active {
				continue
			}
			levelStats, ok := s.tables.GetLevelStats(string(weapon.Kind), weapon.Level)
			if !ok {
				continue
			}
			if weapon.Cooldown > 0 {
				weapon.Cooldown -= dt
			}

			switch weapon.Kind {
			case components.WeaponSword:
				s.updateSword(playerID, weapon, levelStats, stats, pos, dt)
			case components.WeaponOrbs:
				s.updateOrbs(playerID, weapon, levelStats, stats, pos, dt)
			case components.WeaponMissiles:
				s.updateMissiles(playerID, weapon, levelStats, stats, pos)
			case components.WeaponLightning:
				s.updateLightning(playerID, weapon, levelStats, stats, pos)
			case components.WeaponBody:
				// 被动武器：接触判定在 ContactDamageSystem
			}
		}
	}
}

// canFire 武器是否可以触发
func canFire(weapon *components.WeaponState) bool {
	return weapon.Active && weapon.Cooldown <= 0
}
