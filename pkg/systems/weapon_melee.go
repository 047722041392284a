package systems

import (
	"math"

	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/config"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
	"github.com/soulwax/darkmoon-sub000/pkg/events"
	"github.com/soulwax/darkmoon-sub000/pkg/utils"
)

// 挥砍进度的有效命中窗口
// 起手与收尾阶段（剑还没抡开/已经收势）不判定命中
const (
	swingHitWindowStart = 0.12
	swingHitWindowEnd   = 0.88
)

// updateSword 近战弧形挥砍
//
// 触发：冷却好且射程内有敌人时起手，挥砍中心角指向最近的敌人。
// 判定：挥砍进度用二次方缓出推进，只在进度 [0.12, 0.88] 内判定，
// 命中条件为敌人处于射程内且落在整个挥砍弧范围内，
// 每次挥砍对同一敌人至多命中一次（HitSet 去重）。
// 击退沿玩家指向敌人的径向施加
func (s *WeaponSystem) updateSword(playerID ecs.EntityID, weapon *components.WeaponState,
	levelStats config.WeaponLevelStats, stats components.StatBundle,
	pos *components.PositionComponent, dt float64) {

	swing := &weapon.Swing

	if !swing.Active {
		if !canFire(weapon) {
			return
		}
		rangeSq := levelStats.Range * levelStats.Range
		targetID, _, found := nearestEnemy(s.hit.em, pos.X, pos.Y, rangeSq)
		if !found {
			// 没有目标就不挥空刀，冷却保持就绪
			return
		}

		targetPos, ok := ecs.GetComponent[*components.PositionComponent](s.hit.em, targetID)
		if !ok {
			return
		}

		swing.Active = true
		swing.Elapsed = 0
		swing.Duration = levelStats.SwingDuration
		swing.TargetAngle = math.Atan2(targetPos.Y-pos.Y, targetPos.X-pos.X)
		// 正反手交替
		if swing.Direction >= 0 {
			swing.Direction = -1
		} else {
			swing.Direction = 1
		}
		swing.HitSet = make(map[ecs.EntityID]bool)
		weapon.Cooldown = levelStats.Cooldown

		s.hit.queue.Publish(events.Event{
			Type:   events.EventWeaponFired,
			Entity: playerID,
			Kind:   string(components.WeaponSword),
			X:      pos.X,
			Y:      pos.Y,
		})
	}

	swing.Elapsed += dt
	if swing.Elapsed >= swing.Duration {
		swing.Active = false
		return
	}

	progress := utils.EaseOutQuad(swing.Elapsed / swing.Duration)
	if progress < swingHitWindowStart || progress > swingHitWindowEnd {
		return
	}

	halfArc := levelStats.ArcDegrees * math.Pi / 180 / 2
	for _, enemyID := range aliveEnemiesWithin(s.hit.em, pos.X, pos.Y, levelStats.Range) {
		if swing.HitSet[enemyID] {
			continue
		}
		enemyPos, ok := ecs.GetComponent[*components.PositionComponent](s.hit.em, enemyID)
		if !ok {
			continue
		}

		angle := math.Atan2(enemyPos.Y-pos.Y, enemyPos.X-pos.X)
		if math.Abs(angleDiff(angle, swing.TargetAngle)) > halfArc {
			continue
		}

		dir := utils.Vec2{X: enemyPos.X - pos.X, Y: enemyPos.Y - pos.Y}.Normalized()
		if s.hit.applyHit(playerID, stats, enemyID, levelStats.Damage,
			levelStats.Knockback, dir.X, dir.Y, components.WeaponSword) {
			swing.HitSet[enemyID] = true
		}
	}
}

// angleDiff 两个角度的最短差值，结果落在 (-π, π]
func angleDiff(a, b float64) float64 {
	diff := math.Mod(a-b, 2*math.Pi)
	if diff > math.Pi {
		diff -= 2 * math.Pi
	}
	if diff <= -math.Pi {
		diff += 2 * math.Pi
	}
	return diff
}
