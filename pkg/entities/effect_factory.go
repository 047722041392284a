package entities

import (
	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
)

// CreateStrikeEffect 创建落雷特效实体
// 纯表现实体：伤害在落雷创建时已经结算完，
// 这个实体只是给渲染层一个画雷柱的锚点，到期自动销毁
func CreateStrikeEffect(em *ecs.EntityManager, x, y, radius, lifetime float64) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, components.NewTagComponent(components.TagAreaEffect))
	em.AddComponent(id, &components.ColliderComponent{
		Shape:     components.ShapeCircle,
		Radius:    radius,
		IsTrigger: true,
	})
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: lifetime})

	return id
}
