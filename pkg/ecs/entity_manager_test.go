package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始单调递增
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 添加组件
	pos := &testPositionComponent{X: 100, Y: 200}
	em.AddComponent(id, pos)

	// 获取组件
	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Error("Component should be found")
	}

	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestAddComponentReplacesExisting(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 同类型组件至多一个：第二次添加应替换第一次
	em.AddComponent(id, &testPositionComponent{X: 1, Y: 1})
	em.AddComponent(id, &testPositionComponent{X: 9, Y: 9})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	pos := comp.(*testPositionComponent)
	if pos.X != 9 || pos.Y != 9 {
		t.Errorf("Expected replacement component (9, 9), got (%f, %f)", pos.X, pos.Y)
	}
}

func TestGetComponentMissing(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 组件缺失不是错误，只返回 found=false
	_, found := em.GetComponent(id, reflect.TypeOf(&testVelocityComponent{}))
	if found {
		t.Error("Expected found=false for missing component")
	}
}

func TestDeferredDestroy(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	// 标记删除后，实体仍然存在（延迟删除语义）
	em.DestroyEntity(id)
	if !em.Exists(id) {
		t.Error("Entity should still exist before RemoveMarkedEntities")
	}
	if !em.IsDestroyed(id) {
		t.Error("Entity should be marked destroyed")
	}

	// 已标记删除的实体不应出现在查询结果中
	ids := em.GetEntitiesWith(reflect.TypeOf(&testPositionComponent{}))
	if len(ids) != 0 {
		t.Errorf("Destroyed entity should not appear in queries, got %d results", len(ids))
	}

	// 清理后实体彻底消失
	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after RemoveMarkedEntities")
	}
}

func TestDestroyEntityIdempotent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 重复标记删除应无害
	em.DestroyEntity(id)
	em.DestroyEntity(id)
	em.RemoveMarkedEntities()

	if em.Exists(id) {
		t.Error("Entity should be removed")
	}
	if em.EntityCount() != 0 {
		t.Errorf("Expected 0 entities, got %d", em.EntityCount())
	}
}

func TestGetEntitiesWithCombination(t *testing.T) {
	em := NewEntityManager()

	// e1: 位置+速度, e2: 仅位置, e3: 无组件
	e1 := em.CreateEntity()
	em.AddComponent(e1, &testPositionComponent{})
	em.AddComponent(e1, &testVelocityComponent{})

	e2 := em.CreateEntity()
	em.AddComponent(e2, &testPositionComponent{})

	em.CreateEntity()

	both := em.GetEntitiesWith(
		reflect.TypeOf(&testPositionComponent{}),
		reflect.TypeOf(&testVelocityComponent{}),
	)
	if len(both) != 1 || both[0] != e1 {
		t.Errorf("Expected only e1 with both components, got %v", both)
	}

	posOnly := em.GetEntitiesWith(reflect.TypeOf(&testPositionComponent{}))
	if len(posOnly) != 2 {
		t.Errorf("Expected 2 entities with position, got %d", len(posOnly))
	}
}

func TestGenericHelpers(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 3, Y: 4})

	// 泛型读取
	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("GetComponent should find the component")
	}
	if pos.X != 3 || pos.Y != 4 {
		t.Errorf("Expected (3, 4), got (%f, %f)", pos.X, pos.Y)
	}

	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("HasComponent should return true")
	}
	if HasComponent[*testVelocityComponent](em, id) {
		t.Error("HasComponent should return false for missing component")
	}

	// 泛型查询
	ids := GetEntitiesWith1[*testPositionComponent](em)
	if len(ids) != 1 || ids[0] != id {
		t.Errorf("GetEntitiesWith1 mismatch: %v", ids)
	}

	// 泛型移除
	RemoveComponent[*testPositionComponent](em, id)
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Component should be removed")
	}
}
