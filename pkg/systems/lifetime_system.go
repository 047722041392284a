package systems

import (
	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
)

// LifetimeSystem 管理短命实体的存活时间
// 落雷特效等表现实体到期后标记销毁，实际移除发生在帧末
type LifetimeSystem struct {
	em *ecs.EntityManager
}

// NewLifetimeSystem 创建生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{em: em}
}

// Update 推进所有带生命周期组件的实体
func (s *LifetimeSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.em) {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.em, id)
		if !ok {
			continue
		}

		lifetime.CurrentLifetime += dt
		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
		}

		if lifetime.IsExpired {
			s.em.DestroyEntity(id)
		}
	}
}
