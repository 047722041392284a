package entities

import (
	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
)

// MissileParams 追踪飞弹创建参数
// 数值来自武器等级表，伤害是等级基础值，倍率与暴击在命中时折算
type MissileParams struct {
	X, Y       float64      // 发射点世界坐标
	DirX, DirY float64      // 初始飞行方向（单位向量）
	Speed      float64      // 飞行速度（像素/秒）
	Lifetime   float64      // 存活时间（秒）
	Pierce     int          // 穿透预算
	TurnRate   float64      // 追踪转向速率
	Radius     float64      // 弹体碰撞半径（像素）
	Damage     int          // 命中基础伤害
	Knockback  float64      // 命中击退冲量（像素/秒）
	TargetID   ecs.EntityID // 追踪目标（弱引用，可为 0）
}

// CreateMissile 创建追踪飞弹实体
// 弹体是触发器：与敌人只做重叠判定，无视墙体
func CreateMissile(em *ecs.EntityManager, params MissileParams) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: params.X, Y: params.Y})
	em.AddComponent(id, &components.VelocityComponent{
		VX: params.DirX * params.Speed,
		VY: params.DirY * params.Speed,
	})
	em.AddComponent(id, components.NewTagComponent(components.TagProjectile))

	em.AddComponent(id, &components.ColliderComponent{
		Shape:     components.ShapeCircle,
		Radius:    params.Radius,
		Layer:     components.LayerProjectile,
		IsTrigger: true,
	})

	pierce := params.Pierce
	if pierce < 1 {
		pierce = 1
	}
	em.AddComponent(id, &components.ProjectileComponent{
		DirX:      params.DirX,
		DirY:      params.DirY,
		Speed:     params.Speed,
		Lifetime:  params.Lifetime,
		Pierce:    pierce,
		Hits:      make(map[ecs.EntityID]bool),
		TargetID:  params.TargetID,
		TurnRate:  params.TurnRate,
		Damage:    params.Damage,
		Knockback: params.Knockback,
		Source:    components.WeaponMissiles,
	})

	return id
}
