package systems

import (
	"math"
	"sort"

	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/config"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
	"github.com/soulwax/darkmoon-sub000/pkg/entities"
	"github.com/soulwax/darkmoon-sub000/pkg/events"
	"github.com/soulwax/darkmoon-sub000/pkg/utils"
)

// updateMissiles 追踪飞弹齐射
//
// 冷却好且场上有存活敌人时，朝至多 Count 个互不相同的最近敌人
// 各发射一枚追踪弹；同一轮齐射绝不重复选中同一目标，
// 目标数不足 Count 时少发。场上没有任何敌人时不发射也不消耗冷却
func (s *WeaponSystem) updateMissiles(playerID ecs.EntityID, weapon *components.WeaponState,
	levelStats config.WeaponLevelStats, stats components.StatBundle,
	pos *components.PositionComponent) {

	if !canFire(weapon) || levelStats.Count <= 0 {
		return
	}

	targets := nearestEnemies(s.hit.em, pos.X, pos.Y, levelStats.Count)
	if len(targets) == 0 {
		return
	}

	weapon.Cooldown = levelStats.Cooldown

	for _, targetID := range targets {
		targetPos, ok := ecs.GetComponent[*components.PositionComponent](s.hit.em, targetID)
		if !ok {
			continue
		}

		dir := utils.Vec2{X: targetPos.X - pos.X, Y: targetPos.Y - pos.Y}.Normalized()
		if dir.X == 0 && dir.Y == 0 {
			dir = utils.Vec2{X: 1, Y: 0}
		}

		entities.CreateMissile(s.hit.em, entities.MissileParams{
			X:         pos.X,
			Y:         pos.Y,
			DirX:      dir.X,
			DirY:      dir.Y,
			Speed:     levelStats.Speed,
			Lifetime:  levelStats.Lifetime,
			Pierce:    levelStats.Pierce,
			TurnRate:  levelStats.TurnRate,
			Radius:    levelStats.Radius,
			Damage:    levelStats.Damage,
			Knockback: levelStats.Knockback,
			TargetID:  targetID,
		})
	}

	s.hit.queue.Publish(events.Event{
		Type:   events.EventWeaponFired,
		Entity: playerID,
		Amount: len(targets),
		Kind:   string(components.WeaponMissiles),
		X:      pos.X,
		Y:      pos.Y,
	})
}

// nearestEnemies 返回距 (x, y) 最近的至多 n 个互不相同的存活敌人
// 结果按距离从近到远排序
func nearestEnemies(em *ecs.EntityManager, x, y float64, n int) []ecs.EntityID {
	type candidate struct {
		id     ecs.EntityID
		distSq float64
	}
	var candidates []candidate

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
		if !ok || health.Dead {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		dx, dy := pos.X-x, pos.Y-y
		candidates = append(candidates, candidate{id: id, distSq: dx*dx + dy*dy})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distSq != candidates[j].distSq {
			return candidates[i].distSq < candidates[j].distSq
		}
		return candidates[i].id < candidates[j].id
	})

	count := int(math.Min(float64(n), float64(len(candidates))))
	result := make([]ecs.EntityID, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, candidates[i].id)
	}
	return result
}
