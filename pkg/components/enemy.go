package components

import "github.com/soulwax/darkmoon-sub000/pkg/ecs"

// EnemyComponent 敌人行为组件
// 生成时由 EnemyFactory 从属性配置表解析出完整数值，
// tick 循环内不再回查配置（启动期一次性解析原则）
type EnemyComponent struct {
	TypeKey string // 敌人类型键（对应 enemy_stats.yaml）

	// TargetID 追击目标的弱引用（通常是玩家实体）
	// 目标实体销毁后该ID失效，追击逻辑必须先验证存在性
	TargetID ecs.EntityID

	// 追击速度在 MovementComponent.Speed 上
	Damage  int // 接触伤害
	XPValue int // 击杀后掉落的经验值

	// 击退状态
	KnockbackVX         float64 // 击退速度X分量（像素/秒）
	KnockbackVY         float64 // 击退速度Y分量（像素/秒）
	KnockbackResistance float64 // 击退抗性乘数（1.0 = 吃满击退）
	KnockedBack         bool    // 是否处于击退状态
	StunTimer           float64 // 击退硬直剩余时间（秒），期间追击转向被抑制

	// ContactCooldown 对玩家的接触伤害冷却（秒）
	// 防止同一敌人每帧重复伤害玩家
	ContactCooldown float64

	// BlinkTimer 受击闪烁剩余时间（秒）
	// 纯表现用，不影响任何伤害判定
	BlinkTimer float64
}
