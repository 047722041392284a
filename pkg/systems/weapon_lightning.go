package systems

import (
	"math"

	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/config"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
	"github.com/soulwax/darkmoon-sub000/pkg/entities"
	"github.com/soulwax/darkmoon-sub000/pkg/events"
)

// 落雷特效实体的存活时长（秒），纯表现用
const strikeEffectLifetime = 0.3

// updateLightning 范围落雷
//
// 冷却好且射程内有存活敌人时触发：在射程内随机挑选至多
// Strikes 个互不相同的敌人作为落点，伤害在落雷创建的瞬间
// 一次性结算给落点半径内的所有敌人，之后的雷柱只是特效。
// 目标数不足 Strikes 时，差额的雷落在玩家附近的随机位置，
// 纯表现不结算伤害。射程内无敌人时不触发也不消耗冷却
func (s *WeaponSystem) updateLightning(playerID ecs.EntityID, weapon *components.WeaponState,
	levelStats config.WeaponLevelStats, stats components.StatBundle,
	pos *components.PositionComponent) {

	if !canFire(weapon) || levelStats.Strikes <= 0 {
		return
	}

	inRange := aliveEnemiesWithin(s.hit.em, pos.X, pos.Y, levelStats.Range)
	if len(inRange) == 0 {
		return
	}

	weapon.Cooldown = levelStats.Cooldown

	// 随机挑选互不相同的落点敌人
	s.hit.rng.Shuffle(len(inRange), func(i, j int) {
		inRange[i], inRange[j] = inRange[j], inRange[i]
	})
	strikeCount := levelStats.Strikes
	if strikeCount > len(inRange) {
		strikeCount = len(inRange)
	}

	for i := 0; i < strikeCount; i++ {
		targetPos, ok := ecs.GetComponent[*components.PositionComponent](s.hit.em, inRange[i])
		if !ok {
			continue
		}
		s.strike(playerID, stats, levelStats, targetPos.X, targetPos.Y)
	}

	// 表现补齐：没有足够目标时，多出来的雷落在玩家附近
	for i := strikeCount; i < levelStats.Strikes; i++ {
		angle := s.hit.rng.Float64() * 2 * math.Pi
		dist := s.hit.rng.Float64() * levelStats.Range
		entities.CreateStrikeEffect(s.hit.em,
			pos.X+math.Cos(angle)*dist, pos.Y+math.Sin(angle)*dist,
			levelStats.StrikeRadius, strikeEffectLifetime)
	}

	s.hit.queue.Publish(events.Event{
		Type:   events.EventWeaponFired,
		Entity: playerID,
		Amount: levelStats.Strikes,
		Kind:   string(components.WeaponLightning),
		X:      pos.X,
		Y:      pos.Y,
	})
}

// strike 在 (x, y) 落下一道雷：结算范围伤害并生成雷柱特效
// 落雷不产生击退（垂直打击没有水平冲量）
func (s *WeaponSystem) strike(playerID ecs.EntityID, stats components.StatBundle,
	levelStats config.WeaponLevelStats, x, y float64) {

	for _, enemyID := range aliveEnemiesWithin(s.hit.em, x, y, levelStats.StrikeRadius) {
		s.hit.applyHit(playerID, stats, enemyID, levelStats.Damage, 0, 0, 0, components.WeaponLightning)
	}
	entities.CreateStrikeEffect(s.hit.em, x, y, levelStats.StrikeRadius, strikeEffectLifetime)
}
