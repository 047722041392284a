package entities

import (
	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
)

// 拾取物碰撞半径（像素）
const pickupRadius = 6.0

// CreateXPPickup 创建经验宝石
// 掉落倍率已由击杀方折算进 value
func CreateXPPickup(em *ecs.EntityManager, x, y float64, value int) ecs.EntityID {
	return createPickup(em, x, y, components.PickupXP, value)
}

// CreateHealthPickup 创建回复道具
func CreateHealthPickup(em *ecs.EntityManager, x, y float64, value int) ecs.EntityID {
	return createPickup(em, x, y, components.PickupHealth, value)
}

func createPickup(em *ecs.EntityManager, x, y float64, kind components.PickupKind, value int) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, components.NewTagComponent(components.TagPickup))
	em.AddComponent(id, &components.ColliderComponent{
		Shape:     components.ShapeCircle,
		Radius:    pickupRadius,
		Layer:     components.LayerPickup,
		IsTrigger: true,
	})
	em.AddComponent(id, &components.PickupComponent{
		Kind:  kind,
		Value: value,
	})

	return id
}
