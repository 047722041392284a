package systems

import (
	"github.com/soulwax/darkmoon-sub000/pkg/collision"
	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/config"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
	"github.com/soulwax/darkmoon-sub000/pkg/utils"
)

// TileCollisionSystem 位置积分与瓦片碰撞解算
//
// 每帧对所有可移动实体执行离散的逐轴移动解算：
// 先走 X 轴再走 Y 轴，被阻挡的轴速度归零（贴墙滑行），
// 最后把位置钳制到世界边界内。
//
// 离散解算意味着极高速实体理论上可以穿过薄墙，
// 当前数值下击退速度上限不足以触发，接受这个限制
type TileCollisionSystem struct {
	em     *ecs.EntityManager
	tuning *config.TuningConfig
	grid   collision.TileGrid // 可为 nil（无墙世界）
}

// NewTileCollisionSystem 创建瓦片碰撞系统
// grid 为 nil 时退化为纯积分加世界边界钳制
func NewTileCollisionSystem(em *ecs.EntityManager, tuning *config.TuningConfig, grid collision.TileGrid) *TileCollisionSystem {
	return &TileCollisionSystem{em: em, tuning: tuning, grid: grid}
}

// Update 积分所有带速度实体的位置并解算碰撞
func (s *TileCollisionSystem) Update(dt float64) {
	margin := s.tuning.Physics.TileCollisionMargin

	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.VelocityComponent](s.em)
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		velocity, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)

		if velocity.VX == 0 && velocity.VY == 0 {
			continue
		}

		// 投射物是触发器，无视墙体直接积分
		if collider, ok := ecs.GetComponent[*components.ColliderComponent](s.em, id); !ok || collider.IsTrigger {
			pos.X += velocity.VX * dt
			pos.Y += velocity.VY * dt
			s.clampToWorldIfBounded(id, pos)
			continue
		}

		collider, _ := ecs.GetComponent[*components.ColliderComponent](s.em, id)
		targetX := pos.X + velocity.VX*dt
		targetY := pos.Y + velocity.VY*dt

		result := collision.ResolveMove(s.grid, pos.X, pos.Y, targetX, targetY, collider.Radius, margin)
		pos.X = result.X
		pos.Y = result.Y

		// 被阻挡的轴：普通速度与击退分量一起归零，
		// 否则击退会把敌人持续压在墙上抖动
		if result.BlockedX {
			velocity.VX = 0
			if enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.em, id); ok {
				enemy.KnockbackVX = 0
			}
		}
		if result.BlockedY {
			velocity.VY = 0
			if enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.em, id); ok {
				enemy.KnockbackVY = 0
			}
		}

		s.clampToWorldIfBounded(id, pos)
	}
}

// clampToWorldIfBounded 把带边界限制的实体钳制到其边界矩形内
// 投射物等不带 MovementComponent 的实体飞出世界由存活时间兜底
func (s *TileCollisionSystem) clampToWorldIfBounded(id ecs.EntityID, pos *components.PositionComponent) {
	movement, ok := ecs.GetComponent[*components.MovementComponent](s.em, id)
	if !ok {
		return
	}
	if movement.BoundsMaxX <= movement.BoundsMinX || movement.BoundsMaxY <= movement.BoundsMinY {
		return
	}
	pos.X = utils.Clamp(pos.X, movement.BoundsMinX, movement.BoundsMaxX)
	pos.Y = utils.Clamp(pos.Y, movement.BoundsMinY, movement.BoundsMaxY)
}
