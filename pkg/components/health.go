package components

import "github.com/soulwax/darkmoon-sub000/pkg/ecs"

// HealthComponent 存储实体的生命值信息
// 用于玩家、敌人等可被攻击的实体
//
// 不变量：
//   - CurrentHealth ∈ [0, MaxHealth]
//   - Dead 只能从 false 变为 true 一次，OnDeath 至多触发一次
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值

	Dead bool // 是否已死亡（死亡转换恰好发生一次）

	Invulnerable          bool    // 是否处于无敌状态
	InvulnerabilityTimer  float64 // 无敌窗口剩余时间（秒），归零后 Invulnerable 清除
	InvulnerabilityWindow float64 // 每次受击后的无敌窗口时长（秒），玩家为配置值，敌人接近于零

	// OnDamage 受击回调，每次实际扣血后触发（可为 nil）
	// 参数为本次伤害值和伤害来源实体ID（0 表示无来源）
	OnDamage func(amount int, source ecs.EntityID)

	// OnDeath 死亡回调，生命值首次降到 0 时触发恰好一次（可为 nil）
	OnDeath func()
}
