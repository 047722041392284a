package components

// StatBundle 乘法叠加的属性倍率包
// 玩家基础属性与限时增益都用它表示，最终值 = 基础值 × 各倍率连乘
type StatBundle struct {
	MoveSpeedMult      float64 // 移动速度倍率
	MaxHealthMult      float64 // 最大生命倍率
	PickupRangeMult    float64 // 拾取范围倍率
	DamageMult         float64 // 伤害倍率
	ShieldCapacityMult float64 // 护盾容量倍率
	Armor              float64 // 护甲值（受伤倍率 = 1 - clamp(armor, 0, 0.8)，加法叠加）
	Luck               float64 // 幸运值（影响暴击与掉落，加法叠加）
}

// NeutralStatBundle 返回不改变任何数值的中性倍率包
func NeutralStatBundle() StatBundle {
	return StatBundle{
		MoveSpeedMult:      1,
		MaxHealthMult:      1,
		PickupRangeMult:    1,
		DamageMult:         1,
		ShieldCapacityMult: 1,
		Armor:              0,
		Luck:               0,
	}
}

// TimedEffect 限时增益记录
// 到期后由 EffectSystem 移除，倍率乘法叠加进派生属性
type TimedEffect struct {
	ID        string     // 效果标识（同ID刷新时长而非叠加）
	Remaining float64    // 剩余时间（秒）
	Bundle    StatBundle // 生效期间叠加的倍率包
}

// PlayerComponent 玩家专属状态
type PlayerComponent struct {
	// 经验与等级，升级曲线为指数型：
	// need(level) = xpBase * xpGrowth^(level-1)
	XP    float64
	Level int

	// Stats 永久属性倍率（升级奖励、被动加成已折算在内）
	Stats StatBundle

	// Effects 当前生效的限时增益列表
	Effects []TimedEffect

	// 护盾：独立于生命值的吸收层
	Shield              float64 // 当前护盾值
	ShieldBaseCapacity  float64 // 护盾基础容量（上限 = 基础容量 × 容量倍率）
	ShieldRechargeDelay float64 // 未受击多久后开始回充（秒）
	ShieldRechargeRate  float64 // 回充速度（点/秒）
	ShieldDelayTimer    float64 // 回充延迟剩余时间（秒），受击时重置

	// ContactCooldown 全局接触伤害冷却（秒）
	// 一次成功的接触伤害后，短时间内任何敌人的接触都不再扣血，
	// 防止怪群重叠时在一个判定窗口内叠满伤害
	ContactCooldown float64

	// 基础数值（来自调参配置，启动期写入）
	// 基础移动速度在 MovementComponent.Speed 上
	BasePickupRange float64 // 基础拾取范围（像素）
}
