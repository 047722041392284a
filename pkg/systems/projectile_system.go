package systems

import (
	"math/rand"

	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/config"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
	"github.com/soulwax/darkmoon-sub000/pkg/events"
	"github.com/soulwax/darkmoon-sub000/pkg/utils"
)

// ProjectileSystem 投射物推进与命中
//
// 每帧三件事：追踪转向、存活计时、重叠判定。
// 不变量：
//   - 同一投射物对同一敌人至多命中一次（Hits 集合）
//   - 穿透预算耗尽或存活时间到期时，投射物恰好自毁一次
//
// 位置积分不在这里：投射物带速度组件，由 TileCollisionSystem
// 统一积分（投射物是触发器，无视墙体）
type ProjectileSystem struct {
	hit hitContext
}

// NewProjectileSystem 创建投射物系统
func NewProjectileSystem(em *ecs.EntityManager, queue *events.Queue,
	tuning *config.TuningConfig, rng *rand.Rand) *ProjectileSystem {
	return &ProjectileSystem{
		hit: hitContext{em: em, queue: queue, tuning: tuning, rng: rng},
	}
}

// Update 推进所有投射物
func (s *ProjectileSystem) Update(dt float64) {
	em := s.hit.em

	ids := ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.VelocityComponent](em)
	for _, id := range ids {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		velocity, _ := ecs.GetComponent[*components.VelocityComponent](em, id)

		proj.Lifetime -= dt
		if proj.Lifetime <= 0 {
			em.DestroyEntity(id)
			continue
		}

		s.steer(proj, pos, dt)
		velocity.VX = proj.DirX * proj.Speed
		velocity.VY = proj.DirY * proj.Speed

		if s.resolveHits(id, proj, pos) {
			em.DestroyEntity(id)
		}
	}
}

// steer 朝目标当前位置做指数转向
//
// 每帧把飞行方向向目标方向插值 min(1, turnRate*dt) 的比例后
// 重新归一化。目标死亡或销毁后保持直线飞行（弱引用失效是常态）
func (s *ProjectileSystem) steer(proj *components.ProjectileComponent,
	pos *components.PositionComponent, dt float64) {

	if proj.TargetID == 0 || proj.TurnRate <= 0 {
		return
	}
	if !s.hit.em.Exists(proj.TargetID) {
		proj.TargetID = 0
		return
	}
	targetPos, ok := ecs.GetComponent[*components.PositionComponent](s.hit.em, proj.TargetID)
	if !ok {
		proj.TargetID = 0
		return
	}

	desired := utils.Vec2{X: targetPos.X - pos.X, Y: targetPos.Y - pos.Y}.Normalized()
	if desired.X == 0 && desired.Y == 0 {
		return
	}

	blend := proj.TurnRate * dt
	if blend > 1 {
		blend = 1
	}
	turned := utils.Vec2{
		X: proj.DirX + (desired.X-proj.DirX)*blend,
		Y: proj.DirY + (desired.Y-proj.DirY)*blend,
	}.Normalized()
	if turned.X == 0 && turned.Y == 0 {
		return
	}
	proj.DirX = turned.X
	proj.DirY = turned.Y
}

// resolveHits 结算本帧的所有重叠命中
//
// 返回：
//   - bool: 穿透预算是否耗尽（需要自毁）
func (s *ProjectileSystem) resolveHits(id ecs.EntityID,
	proj *components.ProjectileComponent, pos *components.PositionComponent) bool {

	collider, ok := ecs.GetComponent[*components.ColliderComponent](s.hit.em, id)
	if !ok {
		return false
	}
	if proj.Hits == nil {
		proj.Hits = make(map[ecs.EntityID]bool)
	}

	// 命中事件的攻击方记为投射物本身
	owner := id
	stats := s.projectileOwnerStats()

	for _, enemyID := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.ColliderComponent](s.hit.em) {
		if proj.Hits[enemyID] {
			continue
		}
		enemyPos, _ := ecs.GetComponent[*components.PositionComponent](s.hit.em, enemyID)
		enemyCol, _ := ecs.GetComponent[*components.ColliderComponent](s.hit.em, enemyID)

		cx, cy := enemyPos.X+enemyCol.OffsetX, enemyPos.Y+enemyCol.OffsetY
		dx, dy := cx-pos.X, cy-pos.Y
		sum := collider.Radius + enemyCol.Radius
		if dx*dx+dy*dy >= sum*sum {
			continue
		}

		// 击退沿飞行方向
		if !s.hit.applyHit(owner, stats, enemyID, proj.Damage,
			proj.Knockback, proj.DirX, proj.DirY, proj.Source) {
			continue
		}
		proj.Hits[enemyID] = true

		proj.Pierce--
		if proj.Pierce <= 0 {
			return true
		}
	}
	return false
}

// projectileOwnerStats 投射物命中时使用的玩家派生属性
// 单玩家战斗核心：取第一个玩家实体的属性，没有玩家时用中性属性
func (s *ProjectileSystem) projectileOwnerStats() components.StatBundle {
	for _, playerID := range ecs.GetEntitiesWith1[*components.PlayerComponent](s.hit.em) {
		return s.hit.playerStats(playerID)
	}
	return components.NeutralStatBundle()
}
