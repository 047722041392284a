package systems

import (
	"math"

	"github.com/soulwax/darkmoon-sub000/pkg/combat"
	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/config"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
	"github.com/soulwax/darkmoon-sub000/pkg/utils"
)

// MovementSystem 负责所有实体的速度决策
//
// 职责划分：本系统只把"意图"转换成 VelocityComponent
// （玩家输入、敌人追击转向、冲刺、击退衰减），
// 位置积分与瓦片碰撞解算在 TileCollisionSystem 中完成
type MovementSystem struct {
	em     *ecs.EntityManager
	tuning *config.TuningConfig

	// 玩家本帧输入意图（由场景层每帧写入）
	moveX, moveY  float64
	dashRequested bool
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, tuning *config.TuningConfig) *MovementSystem {
	return &MovementSystem{em: em, tuning: tuning}
}

// SetMoveInput 写入玩家本帧的移动意图
// 输入向量会被归一化，斜向移动不会更快
func (s *MovementSystem) SetMoveInput(dx, dy float64) {
	v := utils.Vec2{X: dx, Y: dy}.Normalized()
	s.moveX, s.moveY = v.X, v.Y
}

// RequestDash 请求在本帧触发冲刺
// 冷却未好时静默忽略
func (s *MovementSystem) RequestDash() {
	s.dashRequested = true
}

// Update 更新所有可移动实体的速度
func (s *MovementSystem) Update(dt float64) {
	s.updatePlayers(dt)
	s.updateEnemies(dt)
	s.dashRequested = false
}

// updatePlayers 玩家速度 = 输入方向 × 速度 ×倍率，冲刺期间覆盖为冲刺速度
func (s *MovementSystem) updatePlayers(dt float64) {
	ids := ecs.GetEntitiesWith3[*components.PlayerComponent, *components.MovementComponent, *components.VelocityComponent](s.em)
	for _, id := range ids {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.em, id)
		movement, _ := ecs.GetComponent[*components.MovementComponent](s.em, id)
		velocity, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)

		dash := &movement.Dash
		if dash.CooldownTimer > 0 {
			dash.CooldownTimer -= dt
		}

		// 冲刺触发：需要有明确的移动方向
		if s.dashRequested && !dash.Active && dash.CooldownTimer <= 0 &&
			(s.moveX != 0 || s.moveY != 0) {
			dash.Active = true
			dash.Timer = s.tuning.Player.DashDuration
			dash.CooldownTimer = s.tuning.Player.DashCooldown
			dash.DirX = s.moveX
			dash.DirY = s.moveY
		}

		if dash.Active {
			dash.Timer -= dt
			if dash.Timer <= 0 {
				dash.Active = false
			} else {
				velocity.VX = dash.DirX * s.tuning.Player.DashSpeed
				velocity.VY = dash.DirY * s.tuning.Player.DashSpeed
				continue
			}
		}

		// 基础移速在移动组件上，倍率堆完后不超过速度上限
		speed := movement.Speed * combat.EffectiveStats(player).MoveSpeedMult
		if speed > movement.MaxSpeed {
			speed = movement.MaxSpeed
		}
		velocity.VX = s.moveX * speed
		velocity.VY = s.moveY * speed

		if s.moveX != 0 || s.moveY != 0 {
			movement.Facing = math.Atan2(s.moveY, s.moveX)
		}
	}
}

// updateEnemies 敌人速度 = 追击分量 + 击退分量
//
// 追击：朝目标当前位置的单位向量 × 追击速度，硬直期间抑制为零。
// 击退：独立速度分量，按 v *= max(0, 1-friction*dt) 指数衰减，
// 低于归零阈值时直接吸附到零并清除击退状态
func (s *MovementSystem) updateEnemies(dt float64) {
	friction := s.tuning.Physics.KnockbackFriction
	snapSq := s.tuning.Physics.KnockbackSnapThreshold * s.tuning.Physics.KnockbackSnapThreshold

	ids := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.VelocityComponent](s.em)
	for _, id := range ids {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		velocity, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)

		if enemy.StunTimer > 0 {
			enemy.StunTimer -= dt
		}

		// 追击分量：目标是弱引用，先验证存在性
		var chaseX, chaseY float64
		if enemy.TargetID != 0 && s.em.Exists(enemy.TargetID) && enemy.StunTimer <= 0 {
			if targetPos, ok := ecs.GetComponent[*components.PositionComponent](s.em, enemy.TargetID); ok {
				if movement, ok := ecs.GetComponent[*components.MovementComponent](s.em, id); ok {
					dir := utils.Vec2{X: targetPos.X - pos.X, Y: targetPos.Y - pos.Y}.Normalized()
					chaseX = dir.X * movement.Speed
					chaseY = dir.Y * movement.Speed
				}
			}
		}

		// 击退衰减
		if enemy.KnockedBack {
			decay := 1 - friction*dt
			if decay < 0 {
				decay = 0
			}
			enemy.KnockbackVX *= decay
			enemy.KnockbackVY *= decay
			if enemy.KnockbackVX*enemy.KnockbackVX+enemy.KnockbackVY*enemy.KnockbackVY < snapSq {
				enemy.KnockbackVX = 0
				enemy.KnockbackVY = 0
				enemy.KnockedBack = false
			}
		}

		velocity.VX = chaseX + enemy.KnockbackVX
		velocity.VY = chaseY + enemy.KnockbackVY
	}
}
