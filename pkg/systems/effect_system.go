package systems

import (
	"math"

	"github.com/soulwax/darkmoon-sub000/pkg/combat"
	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/config"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
)

// EffectSystem 状态计时的统一推进
//
// 每帧做四件事：
//   - 限时增益到期移除（同 ID 的增益刷新时长而非叠加）
//   - 护盾回充（受击延迟后按固定速率回到容量上限）
//   - 无敌窗口计时
//   - 敌人受击闪烁计时（纯表现）
//
// 最大生命倍率变化时同步调整生命组件：
// 保持"已损失生命值"不变，上限增减直接反映到当前值上
type EffectSystem struct {
	em     *ecs.EntityManager
	tuning *config.TuningConfig
}

// NewEffectSystem 创建状态计时系统
func NewEffectSystem(em *ecs.EntityManager, tuning *config.TuningConfig) *EffectSystem {
	return &EffectSystem{em: em, tuning: tuning}
}

// AddTimedEffect 给玩家施加一个限时增益
// 已存在同 ID 增益时刷新剩余时长（取较大值），不叠加倍率
func (s *EffectSystem) AddTimedEffect(playerID ecs.EntityID, effect components.TimedEffect) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, playerID)
	if !ok {
		return
	}
	for i := range player.Effects {
		if player.Effects[i].ID == effect.ID {
			if effect.Remaining > player.Effects[i].Remaining {
				player.Effects[i].Remaining = effect.Remaining
			}
			return
		}
	}
	player.Effects = append(player.Effects, effect)
}

// Update 推进所有状态计时
func (s *EffectSystem) Update(dt float64) {
	s.updatePlayers(dt)
	s.updateInvulnerability(dt)
	s.updateBlinkTimers(dt)
}

// updatePlayers 限时增益到期、护盾回充、最大生命同步
func (s *EffectSystem) updatePlayers(dt float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.HealthComponent](s.em) {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.em, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](s.em, id)

		// 就地过滤到期增益
		kept := player.Effects[:0]
		for i := range player.Effects {
			player.Effects[i].Remaining -= dt
			if player.Effects[i].Remaining > 0 {
				kept = append(kept, player.Effects[i])
			}
		}
		player.Effects = kept

		combat.RechargeShield(player, dt)
		s.syncMaxHealth(player, health)
	}
}

// syncMaxHealth 按当前生效的最大生命倍率调整生命组件
func (s *EffectSystem) syncMaxHealth(player *components.PlayerComponent, health *components.HealthComponent) {
	stats := combat.EffectiveStats(player)
	desired := int(math.Floor(float64(s.tuning.Player.MaxHealth) * stats.MaxHealthMult))
	if desired < 1 {
		desired = 1
	}
	if desired == health.MaxHealth {
		return
	}

	delta := desired - health.MaxHealth
	health.MaxHealth = desired
	health.CurrentHealth += delta
	if health.CurrentHealth > health.MaxHealth {
		health.CurrentHealth = health.MaxHealth
	}
	if health.CurrentHealth < 1 && !health.Dead {
		// 上限缩水不应该直接打死玩家
		health.CurrentHealth = 1
	}
}

// updateInvulnerability 推进所有实体的无敌窗口
func (s *EffectSystem) updateInvulnerability(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.HealthComponent](s.em) {
		health, _ := ecs.GetComponent[*components.HealthComponent](s.em, id)
		combat.TickInvulnerability(health, dt)
	}
}

// updateBlinkTimers 推进敌人受击闪烁
func (s *EffectSystem) updateBlinkTimers(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		if enemy.BlinkTimer > 0 {
			enemy.BlinkTimer -= dt
			if enemy.BlinkTimer < 0 {
				enemy.BlinkTimer = 0
			}
		}
	}
}
