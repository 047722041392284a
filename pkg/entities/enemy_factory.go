package entities

import (
	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/config"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
)

// EnemyParams 敌人创建参数
type EnemyParams struct {
	TypeKey  string            // 敌人类型键
	Stats    config.EnemyStats // 启动期解析好的属性记录
	TargetID ecs.EntityID      // 追击目标（弱引用）
	X, Y     float64           // 出生点世界坐标
	Tuning   *config.TuningConfig
}

// CreateEnemy 创建敌人实体
// 属性在生成瞬间从配置记录一次性解析进组件，
// 之后配置热重载只影响新生成的敌人，场上的不回写
func CreateEnemy(em *ecs.EntityManager, params EnemyParams) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: params.X, Y: params.Y})
	em.AddComponent(id, &components.VelocityComponent{})
	em.AddComponent(id, components.NewTagComponent(components.TagEnemy))

	em.AddComponent(id, &components.HealthComponent{
		CurrentHealth:         params.Stats.Health,
		MaxHealth:             params.Stats.Health,
		InvulnerabilityWindow: params.Tuning.Combat.EnemyInvulnerabilityWindow,
	})

	em.AddComponent(id, &components.MovementComponent{
		Speed:      params.Stats.Speed,
		MaxSpeed:   params.Tuning.Physics.MaxKnockbackSpeed,
		BoundsMinX: 0,
		BoundsMinY: 0,
		BoundsMaxX: params.Tuning.World.Width,
		BoundsMaxY: params.Tuning.World.Height,
	})

	em.AddComponent(id, &components.ColliderComponent{
		Shape:  components.ShapeCircle,
		Radius: params.Stats.Radius,
		Layer:  components.LayerEnemy,
	})

	em.AddComponent(id, &components.EnemyComponent{
		TypeKey:             params.TypeKey,
		TargetID:            params.TargetID,
		Damage:              params.Stats.Damage,
		XPValue:             params.Stats.XPValue,
		KnockbackResistance: params.Stats.KnockbackResistance,
	})

	return id
}
