package combat

import "github.com/soulwax/darkmoon-sub000/pkg/components"

// EffectiveStats 计算玩家当前生效的派生属性
//
// 永久属性与所有限时增益做乘法叠加（倍率字段连乘），
// Armor 与 Luck 例外：它们是数值而非倍率，做加法叠加
func EffectiveStats(player *components.PlayerComponent) components.StatBundle {
	if player == nil {
		return components.NeutralStatBundle()
	}

	result := player.Stats
	for _, effect := range player.Effects {
		result.MoveSpeedMult *= effect.Bundle.MoveSpeedMult
		result.MaxHealthMult *= effect.Bundle.MaxHealthMult
		result.PickupRangeMult *= effect.Bundle.PickupRangeMult
		result.DamageMult *= effect.Bundle.DamageMult
		result.ShieldCapacityMult *= effect.Bundle.ShieldCapacityMult
		result.Armor += effect.Bundle.Armor
		result.Luck += effect.Bundle.Luck
	}
	return result
}

// ShieldCapacity 计算护盾当前容量上限
// 公式: 基础容量 × 容量倍率
func ShieldCapacity(player *components.PlayerComponent) float64 {
	if player == nil {
		return 0
	}
	stats := EffectiveStats(player)
	return player.ShieldBaseCapacity * stats.ShieldCapacityMult
}

// AbsorbShieldDamage 护盾吸收伤害
//
// 先从护盾扣除，超出护盾剩余值的部分作为溢出伤害返回，
// 由调用方结算到生命值上。受击会重置护盾回充延迟计时
//
// 返回：
//   - int: 溢出伤害（护盾足够吸收时为 0）
func AbsorbShieldDamage(player *components.PlayerComponent, amount int) int {
	if player == nil || amount <= 0 {
		return amount
	}

	// 任何受击都推迟护盾回充
	player.ShieldDelayTimer = player.ShieldRechargeDelay

	if player.Shield <= 0 {
		return amount
	}

	absorbed := float64(amount)
	if absorbed <= player.Shield {
		player.Shield -= absorbed
		return 0
	}

	overflow := absorbed - player.Shield
	player.Shield = 0
	return int(overflow)
}

// RechargeShield 推进护盾回充
//
// 受击后的延迟计时归零前不回充；之后按固定速率回充，
// 上限为 基础容量 × 容量倍率
func RechargeShield(player *components.PlayerComponent, dt float64) {
	if player == nil {
		return
	}

	if player.ShieldDelayTimer > 0 {
		player.ShieldDelayTimer -= dt
		if player.ShieldDelayTimer > 0 {
			return
		}
		player.ShieldDelayTimer = 0
	}

	cap := ShieldCapacity(player)
	if player.Shield >= cap {
		player.Shield = cap
		return
	}

	player.Shield += player.ShieldRechargeRate * dt
	if player.Shield > cap {
		player.Shield = cap
	}
}

// XPRequiredForLevel 指定等级升到下一级所需经验
// 指数曲线: need(level) = xpBase * xpGrowth^(level-1)
func XPRequiredForLevel(level int, xpBase, xpGrowth float64) float64 {
	need := xpBase
	for i := 1; i < level; i++ {
		need *= xpGrowth
	}
	return need
}
