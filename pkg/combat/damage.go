package combat

import (
	"math"

	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
	"github.com/soulwax/darkmoon-sub000/pkg/utils"
)

// 伤害结算管线
//
// 所有派生战斗数值的公式集中在这里，系统代码只调用，不自己算。
// 稳态路径一律静默空操作：打死人、打无敌帧、打不存在的目标
// 都不是错误，只是不产生效果。

// DamageTakenMultiplier 受伤倍率
// 公式: 1 - clamp(armor, 0, 0.8)，护甲最多减免 80%
func DamageTakenMultiplier(armor float64) float64 {
	return 1 - utils.Clamp(armor, 0, 0.8)
}

// CritChance 暴击率
// 公式: clamp(base + luck*0.5, 0, 0.65)，上限 65%
func CritChance(baseChance, luck float64) float64 {
	return utils.Clamp(baseChance+luck*0.5, 0, 0.65)
}

// CritMultiplier 暴击倍率
// 公式: 1.8 + luck*0.4
func CritMultiplier(luck float64) float64 {
	return 1.8 + luck*0.4
}

// DropRateMultiplier 掉落倍率
// 公式: 1 + max(0, luck)
func DropRateMultiplier(luck float64) float64 {
	return 1 + math.Max(0, luck)
}

// WeaponDamage 计算武器单次命中的最终伤害
// 公式: floor(levelDamage × ownerDamageMult × (crit ? critMult : 1))
// ownerDamageMult 已折算永久升级与限时增益
func WeaponDamage(levelDamage int, ownerDamageMult float64, crit bool, critMult float64) int {
	damage := float64(levelDamage) * ownerDamageMult
	if crit {
		damage *= critMult
	}
	return int(math.Floor(damage))
}

// ApplyDamage 对生命组件结算一次伤害
//
// 行为：
//   - 已死亡或处于无敌窗口时为静默空操作，返回 false
//   - 实际扣血后触发 OnDamage，并按组件配置开启无敌窗口
//   - 生命值首次降到 0 时做死亡转换恰好一次，触发 OnDeath
//
// 返回：
//   - bool: 是否实际造成了伤害
func ApplyDamage(health *components.HealthComponent, amount int, source ecs.EntityID) bool {
	if health == nil || amount <= 0 {
		return false
	}
	if health.Dead || health.Invulnerable {
		return false
	}

	health.CurrentHealth -= amount
	if health.CurrentHealth < 0 {
		health.CurrentHealth = 0
	}

	// 开启受击无敌窗口（敌人的窗口接近于零，等效无）
	if health.InvulnerabilityWindow > 0 {
		health.Invulnerable = true
		health.InvulnerabilityTimer = health.InvulnerabilityWindow
	}

	if health.OnDamage != nil {
		health.OnDamage(amount, source)
	}

	if health.CurrentHealth <= 0 {
		// 死亡转换恰好发生一次
		health.Dead = true
		if health.OnDeath != nil {
			health.OnDeath()
		}
	}

	return true
}

// TickInvulnerability 推进无敌窗口计时
// 计时归零后清除无敌标记
func TickInvulnerability(health *components.HealthComponent, dt float64) {
	if health == nil || !health.Invulnerable {
		return
	}
	health.InvulnerabilityTimer -= dt
	if health.InvulnerabilityTimer <= 0 {
		health.InvulnerabilityTimer = 0
		health.Invulnerable = false
	}
}
