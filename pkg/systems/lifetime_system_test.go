package systems

import (
	"testing"

	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
	"github.com/soulwax/darkmoon-sub000/pkg/entities"
)

// TestLifetimeExpiry 短命实体到期后被销毁
func TestLifetimeExpiry(t *testing.T) {
	em := ecs.NewEntityManager()
	effectID := entities.CreateStrikeEffect(em, 100, 100, 40, 0.3)

	s := NewLifetimeSystem(em)

	s.Update(0.1)
	em.RemoveMarkedEntities()
	if !em.Exists(effectID) {
		t.Fatal("Effect should still be alive at 0.1s")
	}

	s.Update(0.25)
	em.RemoveMarkedEntities()
	if em.Exists(effectID) {
		t.Error("Effect should be destroyed after its lifetime")
	}
}

// TestLifetimeExactBoundary 恰好到期的帧也触发销毁
func TestLifetimeExactBoundary(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: 0.5})

	s := NewLifetimeSystem(em)
	s.Update(0.5)
	em.RemoveMarkedEntities()

	if em.Exists(id) {
		t.Error("Entity should be destroyed when lifetime is exactly reached")
	}
}
