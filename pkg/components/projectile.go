package components

import "github.com/soulwax/darkmoon-sub000/pkg/ecs"

// ProjectileComponent 投射物行为组件
//
// 不变量：
//   - 同一实体至多被命中一次（Hits 集合保证）
//   - 穿透预算耗尽或存活时间到期时，投射物恰好自毁一次
type ProjectileComponent struct {
	DirX  float64 // 飞行方向（单位向量）
	DirY  float64
	Speed float64 // 飞行速度（像素/秒）

	Lifetime float64 // 剩余存活时间（秒）

	// Pierce 穿透预算：还能命中多少个不同实体
	// 每次命中递减，降到 0 时自毁
	Pierce int

	// Hits 已命中的实体集合，保证同一实体不会被重复命中
	Hits map[ecs.EntityID]bool

	// TargetID 追踪目标的弱引用（0 表示无目标，直线飞行）
	// 每帧朝目标当前位置做指数转向，目标死亡后保持直线
	TargetID ecs.EntityID

	// TurnRate 指数转向速率（每秒转向比例系数）
	TurnRate float64

	Damage    int        // 命中伤害（已折算等级表数值，暴击在命中时判定）
	Knockback float64    // 命中击退冲量（像素/秒）
	Source    WeaponKind // 发射武器种类
}
