package systems

import (
	"github.com/soulwax/darkmoon-sub000/pkg/combat"
	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/config"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
	"github.com/soulwax/darkmoon-sub000/pkg/events"
	"github.com/soulwax/darkmoon-sub000/pkg/utils"
)

// 磁吸飞行速度区间（像素/秒），离玩家越近飞得越快
const (
	magnetSpeedMin = 120
	magnetSpeedMax = 640
)

// PickupSystem 拾取物磁吸与收集
//
// 拾取物进入玩家拾取范围后开始磁吸（一旦开始就不会停止，
// 玩家跑出范围也继续追），接触玩家碰撞体时收集。
// 经验收集后立即结算升级曲线，可能连续升多级
type PickupSystem struct {
	em     *ecs.EntityManager
	queue  *events.Queue
	tuning *config.TuningConfig
}

// NewPickupSystem 创建拾取系统
func NewPickupSystem(em *ecs.EntityManager, queue *events.Queue, tuning *config.TuningConfig) *PickupSystem {
	return &PickupSystem{em: em, queue: queue, tuning: tuning}
}

// Update 推进所有拾取物
func (s *PickupSystem) Update(dt float64) {
	playerID, ok := s.findPlayer()
	if !ok {
		return
	}
	player, _ := ecs.GetComponent[*components.PlayerComponent](s.em, playerID)
	playerPos, _ := ecs.GetComponent[*components.PositionComponent](s.em, playerID)
	playerCol, okCol := ecs.GetComponent[*components.ColliderComponent](s.em, playerID)
	if !okCol {
		return
	}

	pickupRange := player.BasePickupRange * combat.EffectiveStats(player).PickupRangeMult
	rangeSq := pickupRange * pickupRange

	ids := ecs.GetEntitiesWith2[*components.PickupComponent, *components.PositionComponent](s.em)
	for _, id := range ids {
		pickup, _ := ecs.GetComponent[*components.PickupComponent](s.em, id)
		if pickup.Collected {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		dx, dy := playerPos.X-pos.X, playerPos.Y-pos.Y
		distSq := dx*dx + dy*dy

		if !pickup.Magnetized && distSq <= rangeSq {
			pickup.Magnetized = true
		}

		if pickup.Magnetized {
			s.flyTowardPlayer(pos, playerPos, pickupRange, dt)
			dx, dy = playerPos.X-pos.X, playerPos.Y-pos.Y
			distSq = dx*dx + dy*dy
		}

		// 接触收集：拾取物自身半径 + 玩家碰撞半径
		collectRadius := playerCol.Radius
		if col, ok := ecs.GetComponent[*components.ColliderComponent](s.em, id); ok {
			collectRadius += col.Radius
		}
		if distSq < collectRadius*collectRadius {
			s.collect(playerID, player, id, pickup, pos)
		}
	}
}

// flyTowardPlayer 磁吸飞行：离玩家越近速度越快（二次方缓入）
func (s *PickupSystem) flyTowardPlayer(pos, playerPos *components.PositionComponent,
	pickupRange, dt float64) {

	dir := utils.Vec2{X: playerPos.X - pos.X, Y: playerPos.Y - pos.Y}
	dist := dir.Length()
	if dist == 0 {
		return
	}

	closeness := utils.Clamp(1-dist/pickupRange, 0, 1)
	speed := utils.Lerp(magnetSpeedMin, magnetSpeedMax, utils.EaseInQuad(closeness))

	step := speed * dt
	if step > dist {
		step = dist
	}
	pos.X += dir.X / dist * step
	pos.Y += dir.Y / dist * step
}

// collect 收集一个拾取物并结算其效果
// Collected 标记保证重复触碰是无害的空操作
func (s *PickupSystem) collect(playerID ecs.EntityID, player *components.PlayerComponent,
	pickupID ecs.EntityID, pickup *components.PickupComponent, pos *components.PositionComponent) {

	pickup.Collected = true
	s.em.DestroyEntity(pickupID)

	s.queue.Publish(events.Event{
		Type:   events.EventPickupCollected,
		Entity: pickupID,
		Source: playerID,
		Amount: pickup.Value,
		X:      pos.X,
		Y:      pos.Y,
		Kind:   string(pickup.Kind),
	})

	switch pickup.Kind {
	case components.PickupXP:
		s.grantXP(playerID, player, pickup.Value)
	case components.PickupHealth:
		s.grantHealth(playerID, pickup.Value)
	}
}

// grantXP 结算经验与升级
// 升级曲线是指数型，一次大额经验可能连续升多级，逐级发布事件
func (s *PickupSystem) grantXP(playerID ecs.EntityID, player *components.PlayerComponent, value int) {
	player.XP += float64(value)
	s.queue.Publish(events.Event{
		Type:   events.EventXPGained,
		Entity: playerID,
		Amount: value,
	})

	for {
		need := combat.XPRequiredForLevel(player.Level,
			s.tuning.Progression.XPBase, s.tuning.Progression.XPGrowth)
		if player.XP < need {
			break
		}
		player.XP -= need
		player.Level++
		s.queue.Publish(events.Event{
			Type:   events.EventPlayerLeveledUp,
			Entity: playerID,
			Amount: player.Level,
		})
	}
}

// grantHealth 回复生命，不超过当前最大值
func (s *PickupSystem) grantHealth(playerID ecs.EntityID, value int) {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.em, playerID)
	if !ok || health.Dead {
		return
	}
	health.CurrentHealth += value
	if health.CurrentHealth > health.MaxHealth {
		health.CurrentHealth = health.MaxHealth
	}
}

// findPlayer 找到第一个玩家实体
func (s *PickupSystem) findPlayer() (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith3[*components.PlayerComponent, *components.PositionComponent, *components.ColliderComponent](s.em) {
		return id, true
	}
	return 0, false
}
