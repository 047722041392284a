package entities

import (
	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/config"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
)

// 玩家碰撞半径（像素）
const playerRadius = 14.0

// CreatePlayer 创建玩家实体
//
// 基础数值（生命、移速、拾取范围、护盾、冲刺）全部来自调参配置，
// 派生属性从中性倍率起步，由升级与增益往上堆
//
// 参数:
//   - em: 实体管理器
//   - tuning: 启动期校验过的调参配置
//   - x, y: 出生点世界坐标
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
func CreatePlayer(em *ecs.EntityManager, tuning *config.TuningConfig, x, y float64) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{})
	em.AddComponent(id, components.NewTagComponent(components.TagPlayer))

	em.AddComponent(id, &components.HealthComponent{
		CurrentHealth:         tuning.Player.MaxHealth,
		MaxHealth:             tuning.Player.MaxHealth,
		InvulnerabilityWindow: tuning.Player.InvulnerabilityWindow,
	})

	em.AddComponent(id, &components.MovementComponent{
		Speed:      tuning.Player.MoveSpeed,
		MaxSpeed:   tuning.Player.DashSpeed,
		BoundsMinX: 0,
		BoundsMinY: 0,
		BoundsMaxX: tuning.World.Width,
		BoundsMaxY: tuning.World.Height,
	})

	em.AddComponent(id, &components.ColliderComponent{
		Shape:  components.ShapeCircle,
		Radius: playerRadius,
		Layer:  components.LayerPlayer,
	})

	em.AddComponent(id, &components.PlayerComponent{
		Level:               1,
		Stats:               components.NeutralStatBundle(),
		Shield:              tuning.Player.ShieldCapacity,
		ShieldBaseCapacity:  tuning.Player.ShieldCapacity,
		ShieldRechargeDelay: tuning.Player.ShieldRechargeDelay,
		ShieldRechargeRate:  tuning.Player.ShieldRechargeRate,
		BasePickupRange:     tuning.Player.PickupRange,
	})

	em.AddComponent(id, components.NewWeaponOwnerComponent())

	return id
}
