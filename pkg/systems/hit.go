package systems

import (
	"math"
	"math/rand"

	"github.com/soulwax/darkmoon-sub000/pkg/combat"
	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/config"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
	"github.com/soulwax/darkmoon-sub000/pkg/entities"
	"github.com/soulwax/darkmoon-sub000/pkg/events"
	"github.com/soulwax/darkmoon-sub000/pkg/utils"
)

// hitContext 武器命中结算的共享上下文
// 所有会对敌人造成伤害的系统（近战、环绕、投射物、落雷、接触反伤）
// 都通过它走同一条结算管线：暴击判定 → 伤害 → 击退 → 击杀善后
type hitContext struct {
	em     *ecs.EntityManager
	queue  *events.Queue
	tuning *config.TuningConfig
	rng    *rand.Rand
}

// applyHit 对单个敌人结算一次武器命中
//
// 流程：
//  1. 按攻击方属性掷暴击
//  2. 最终伤害 = floor(等级伤害 × 伤害倍率 × 暴击倍率)
//  3. 击退冲量沿 (dirX, dirY) 施加，乘以敌人抗性并钳制上限
//  4. 击杀时销毁敌人、掉落经验宝石、发布击杀事件
//
// 返回：
//   - bool: 是否实际造成了伤害（目标死亡或无敌时为 false）
func (h *hitContext) applyHit(attacker ecs.EntityID, stats components.StatBundle,
	enemyID ecs.EntityID, levelDamage int, knockback, dirX, dirY float64,
	kind components.WeaponKind) bool {

	health, ok := ecs.GetComponent[*components.HealthComponent](h.em, enemyID)
	if !ok || health.Dead {
		return false
	}
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](h.em, enemyID)
	if !ok {
		return false
	}

	// 暴击判定
	crit := false
	chance := combat.CritChance(h.tuning.Combat.CritBaseChance, stats.Luck)
	if chance > 0 && h.rng.Float64() < chance {
		crit = true
	}
	damage := combat.WeaponDamage(levelDamage, stats.DamageMult, crit, combat.CritMultiplier(stats.Luck))

	if !combat.ApplyDamage(health, damage, attacker) {
		return false
	}

	// 受击表现
	enemy.BlinkTimer = h.tuning.Combat.HitFlashDuration

	// 击退：冲量乘抗性，叠加到现有击退速度上，钳制速度上限
	if knockback > 0 {
		impulse := knockback * enemy.KnockbackResistance
		enemy.KnockbackVX += dirX * impulse
		enemy.KnockbackVY += dirY * impulse

		speed := math.Hypot(enemy.KnockbackVX, enemy.KnockbackVY)
		if limit := h.tuning.Physics.MaxKnockbackSpeed; speed > limit && speed > 0 {
			scale := limit / speed
			enemy.KnockbackVX *= scale
			enemy.KnockbackVY *= scale
		}
		enemy.KnockedBack = true
		enemy.StunTimer = h.tuning.Physics.KnockbackStunDuration
	}

	h.queue.Publish(events.Event{
		Type:   events.EventEnemyDamaged,
		Entity: enemyID,
		Source: attacker,
		Amount: damage,
		Kind:   string(kind),
		Crit:   crit,
	})

	if health.Dead {
		h.killEnemy(enemyID, attacker, enemy, stats)
	}
	return true
}

// killEnemy 击杀善后：掉落经验宝石、发布击杀事件、标记销毁
// 实体销毁是延迟的，本帧内后续系统仍能看到尸体但所有查询会跳过它
func (h *hitContext) killEnemy(enemyID, attacker ecs.EntityID,
	enemy *components.EnemyComponent, stats components.StatBundle) {

	var x, y float64
	if pos, ok := ecs.GetComponent[*components.PositionComponent](h.em, enemyID); ok {
		x, y = pos.X, pos.Y
	}

	// 经验掉落受幸运的掉落倍率加成，向下取整但至少 1 点
	if enemy.XPValue > 0 {
		value := int(math.Floor(float64(enemy.XPValue) * combat.DropRateMultiplier(stats.Luck)))
		if value < 1 {
			value = 1
		}
		entities.CreateXPPickup(h.em, x, y, value)
	}

	h.queue.Publish(events.Event{
		Type:   events.EventEnemyKilled,
		Entity: enemyID,
		Source: attacker,
		Amount: enemy.XPValue,
		X:      x,
		Y:      y,
		Kind:   enemy.TypeKey,
	})

	h.em.DestroyEntity(enemyID)
}

// playerStats 读取玩家当前生效的派生属性
// 玩家缺失时返回中性属性（测试场景常无完整玩家实体）
func (h *hitContext) playerStats(playerID ecs.EntityID) components.StatBundle {
	player, ok := ecs.GetComponent[*components.PlayerComponent](h.em, playerID)
	if !ok {
		return components.NeutralStatBundle()
	}
	return combat.EffectiveStats(player)
}

// nearestEnemy 返回距 (x, y) 最近的存活敌人及其距离平方
// maxRangeSq < 0 表示不限距离；无敌人时返回 (0, false)
func nearestEnemy(em *ecs.EntityManager, x, y, maxRangeSq float64) (ecs.EntityID, float64, bool) {
	best := ecs.EntityID(0)
	bestDistSq := math.MaxFloat64
	found := false

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
		if !ok || health.Dead {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		distSq := utils.DistanceSquared(utils.Vec2{X: pos.X, Y: pos.Y}, utils.Vec2{X: x, Y: y})
		if maxRangeSq >= 0 && distSq > maxRangeSq {
			continue
		}
		if distSq < bestDistSq {
			best = id
			bestDistSq = distSq
			found = true
		}
	}
	return best, bestDistSq, found
}

// aliveEnemiesWithin 返回距 (x, y) 不超过 radius 的所有存活敌人
func aliveEnemiesWithin(em *ecs.EntityManager, x, y, radius float64) []ecs.EntityID {
	radiusSq := radius * radius
	var result []ecs.EntityID

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
		if !ok || health.Dead {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		dx, dy := pos.X-x, pos.Y-y
		if dx*dx+dy*dy <= radiusSq {
			result = append(result, id)
		}
	}
	return result
}
