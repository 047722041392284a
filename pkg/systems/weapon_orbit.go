package systems

import (
	"math"

	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/config"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
	"github.com/soulwax/darkmoon-sub000/pkg/utils"
)

// updateOrbs 环绕法球
//
// Count 个法球均匀分布在公转圆周上随玩家移动，没有冷却概念。
// 命中集按整圈轮换：累积旋转量每跨过 2π 清空一次，
// 保证同一敌人每圈至多吃一次伤害，站在圆周上也不会被连续磨血
func (s *WeaponSystem) updateOrbs(playerID ecs.EntityID, weapon *components.WeaponState,
	levelStats config.WeaponLevelStats, stats components.StatBundle,
	pos *components.PositionComponent, dt float64) {

	orbit := &weapon.Orbit
	if orbit.HitSet == nil {
		orbit.HitSet = make(map[ecs.EntityID]bool)
	}

	orbit.Angle += levelStats.RotateSpeed * dt
	orbit.RotationAccum += math.Abs(levelStats.RotateSpeed) * dt
	if orbit.RotationAccum >= 2*math.Pi {
		orbit.RotationAccum -= 2 * math.Pi
		orbit.HitSet = make(map[ecs.EntityID]bool)
	}

	if levelStats.Count <= 0 {
		return
	}
	step := 2 * math.Pi / float64(levelStats.Count)

	for i := 0; i < levelStats.Count; i++ {
		orbAngle := orbit.Angle + float64(i)*step
		orbX := pos.X + math.Cos(orbAngle)*levelStats.OrbitRadius
		orbY := pos.Y + math.Sin(orbAngle)*levelStats.OrbitRadius

		for _, enemyID := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.ColliderComponent](s.hit.em) {
			if orbit.HitSet[enemyID] {
				continue
			}
			enemyPos, _ := ecs.GetComponent[*components.PositionComponent](s.hit.em, enemyID)
			enemyCol, _ := ecs.GetComponent[*components.ColliderComponent](s.hit.em, enemyID)

			cx, cy := enemyPos.X+enemyCol.OffsetX, enemyPos.Y+enemyCol.OffsetY
			dx, dy := cx-orbX, cy-orbY
			sum := levelStats.OrbRadius + enemyCol.Radius
			if dx*dx+dy*dy >= sum*sum {
				continue
			}

			// 击退沿法球指向敌人的方向
			dir := utils.Vec2{X: dx, Y: dy}.Normalized()
			if s.hit.applyHit(playerID, stats, enemyID, levelStats.Damage,
				levelStats.Knockback, dir.X, dir.Y, components.WeaponOrbs) {
				orbit.HitSet[enemyID] = true
			}
		}
	}
}
