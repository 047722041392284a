package systems

import (
	"math"
	"math/rand"

	"github.com/soulwax/darkmoon-sub000/pkg/collision"
	"github.com/soulwax/darkmoon-sub000/pkg/combat"
	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/config"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
	"github.com/soulwax/darkmoon-sub000/pkg/events"
	"github.com/soulwax/darkmoon-sub000/pkg/utils"
)

// ContactDamageSystem 玩家与敌人的接触伤害结算
//
// 防怪群叠伤的双重冷却：
//   - 每个敌人有独立的接触冷却，冷却中的敌人不参与任何接触判定
//   - 玩家有全局接触冷却，一次成功受击后的短窗口内
//     任何敌人的接触都不再扣血
//
// 被动"荆棘之躯"武器挂在同一条接触判定上：
// 接触发生时敌人吃反伤与击退，与玩家是否实际扣血无关
type ContactDamageSystem struct {
	hit    hitContext
	tables *config.WeaponTablesConfig
}

// NewContactDamageSystem 创建接触伤害系统
func NewContactDamageSystem(em *ecs.EntityManager, queue *events.Queue,
	tuning *config.TuningConfig, tables *config.WeaponTablesConfig, rng *rand.Rand) *ContactDamageSystem {
	return &ContactDamageSystem{
		hit:    hitContext{em: em, queue: queue, tuning: tuning, rng: rng},
		tables: tables,
	}
}

// Update 推进冷却计时并结算本帧的所有接触
func (s *ContactDamageSystem) Update(dt float64) {
	em := s.hit.em

	// 敌人侧冷却计时
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		if enemy.ContactCooldown > 0 {
			enemy.ContactCooldown -= dt
		}
	}

	for _, playerID := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](em) {
		player, _ := ecs.GetComponent[*components.PlayerComponent](em, playerID)
		if player.ContactCooldown > 0 {
			player.ContactCooldown -= dt
		}
		s.resolvePlayerContacts(playerID, player)
	}
}

// resolvePlayerContacts 结算单个玩家与所有敌人的接触
func (s *ContactDamageSystem) resolvePlayerContacts(playerID ecs.EntityID, player *components.PlayerComponent) {
	em := s.hit.em

	playerPos, ok := ecs.GetComponent[*components.PositionComponent](em, playerID)
	if !ok {
		return
	}
	playerCol, ok := ecs.GetComponent[*components.ColliderComponent](em, playerID)
	if !ok {
		return
	}
	playerHealth, ok := ecs.GetComponent[*components.HealthComponent](em, playerID)
	if !ok || playerHealth.Dead {
		return
	}

	stats := combat.EffectiveStats(player)
	bodyDamage, bodyKnockback, hasBody := s.bodyWeaponStats(playerID)

	for _, enemyID := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.ColliderComponent](em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, enemyID)
		if enemy.ContactCooldown > 0 {
			continue
		}
		enemyHealth, ok := ecs.GetComponent[*components.HealthComponent](em, enemyID)
		if !ok || enemyHealth.Dead {
			continue
		}
		enemyPos, _ := ecs.GetComponent[*components.PositionComponent](em, enemyID)
		enemyCol, _ := ecs.GetComponent[*components.ColliderComponent](em, enemyID)

		if !collision.Intersects(playerPos, playerCol, enemyPos, enemyCol) {
			continue
		}

		// 本次接触成立：该敌人进入独立冷却
		enemy.ContactCooldown = s.hit.tuning.Combat.ContactCooldownPerEnemy

		// 反伤武器：击退方向为从玩家指向敌人
		if hasBody {
			dir := utils.Vec2{X: enemyPos.X - playerPos.X, Y: enemyPos.Y - playerPos.Y}.Normalized()
			s.hit.applyHit(playerID, stats, enemyID, bodyDamage, bodyKnockback, dir.X, dir.Y, components.WeaponBody)
		}

		// 玩家扣血侧：全局冷却与无敌窗口都要过
		if player.ContactCooldown > 0 || playerHealth.Invulnerable {
			continue
		}
		s.damagePlayer(playerID, player, playerHealth, stats, enemy, enemyID)
	}
}

// damagePlayer 对玩家结算一次接触伤害
// 管线：护甲减免 → 护盾吸收 → 生命扣除（开启无敌窗口）
func (s *ContactDamageSystem) damagePlayer(playerID ecs.EntityID, player *components.PlayerComponent,
	health *components.HealthComponent, stats components.StatBundle,
	enemy *components.EnemyComponent, enemyID ecs.EntityID) {

	reduced := int(math.Floor(float64(enemy.Damage) * combat.DamageTakenMultiplier(stats.Armor)))
	if reduced <= 0 {
		return
	}

	player.ContactCooldown = s.hit.tuning.Combat.ContactCooldownGlobal

	overflow := combat.AbsorbShieldDamage(player, reduced)
	if overflow <= 0 {
		// 护盾完全吸收，不扣血也不开无敌窗口
		s.hit.queue.Publish(events.Event{
			Type:   events.EventPlayerDamaged,
			Entity: playerID,
			Source: enemyID,
			Amount: 0,
			Kind:   enemy.TypeKey,
		})
		return
	}

	if !combat.ApplyDamage(health, overflow, enemyID) {
		return
	}

	s.hit.queue.Publish(events.Event{
		Type:   events.EventPlayerDamaged,
		Entity: playerID,
		Source: enemyID,
		Amount: overflow,
		Kind:   enemy.TypeKey,
	})

	if health.Dead {
		s.hit.queue.Publish(events.Event{Type: events.EventPlayerDied, Entity: playerID})
	}
}

// bodyWeaponStats 读取玩家被动反伤武器的当前等级数值
func (s *ContactDamageSystem) bodyWeaponStats(playerID ecs.EntityID) (damage int, knockback float64, ok bool) {
	owner, found := ecs.GetComponent[*components.WeaponOwnerComponent](s.hit.em, playerID)
	if !found {
		return 0, 0, false
	}
	weapon := owner.GetWeapon(components.WeaponBody)
	if weapon == nil || !weapon.Active {
		return 0, 0, false
	}
	stats, found := s.tables.GetLevelStats(string(components.WeaponBody), weapon.Level)
	if !found {
		return 0, 0, false
	}
	return stats.Damage, stats.Knockback, true
}
