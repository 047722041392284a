package ecs

import "reflect"

// 泛型组件访问辅助函数
//
// 系统代码里大量出现"取组件-类型断言-判空"三连，
// 这里用泛型包一层，让调用点保持一行：
//
//	health, ok := ecs.GetComponent[*components.HealthComponent](em, id)

// typeOf 返回泛型参数 T 的 reflect.Type
// T 约定为组件指针类型（如 *components.HealthComponent）
func typeOf[T any]() reflect.Type {
	var zero T
	return reflect.TypeOf(zero)
}

// AddComponent 为实体添加组件（替换同类型旧组件）
func AddComponent(em *EntityManager, id EntityID, component interface{}) {
	em.AddComponent(id, component)
}

// GetComponent 获取实体的 T 类型组件
// 返回 (零值, false) 表示组件缺失，调用方必须按存在性检查处理
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, typeOf[T]())
	if !ok {
		return zero, false
	}
	cast, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return cast, true
}

// HasComponent 检查实体是否拥有 T 类型组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, typeOf[T]())
}

// RemoveComponent 移除实体的 T 类型组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.RemoveComponent(id, typeOf[T]())
}

// GetEntitiesWith1 查询拥有 T 组件的所有实体
func GetEntitiesWith1[T any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T]())
}

// GetEntitiesWith2 查询同时拥有 T1、T2 组件的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2]())
}

// GetEntitiesWith3 查询同时拥有 T1、T2、T3 组件的所有实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2](), typeOf[T3]())
}
