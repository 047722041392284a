package components

import "github.com/soulwax/darkmoon-sub000/pkg/ecs"

// WeaponKind 武器种类枚举
// 武器按种类注册到玩家身上（带标签的变体注册表），
// 所有权查询走 WeaponKind，不做运行时类型判断
type WeaponKind string

const (
	WeaponSword     WeaponKind = "sword"     // 近战弧形挥砍
	WeaponOrbs      WeaponKind = "orbs"      // 环绕法球
	WeaponMissiles  WeaponKind = "missiles"  // 追踪飞弹
	WeaponLightning WeaponKind = "lightning" // 范围落雷
	WeaponBody      WeaponKind = "body"      // 被动接触伤害
)

// SwingState 挥砍瞬态状态（仅近战武器使用）
// 挥砍角度从 TargetAngle - HalfArc 推进到 TargetAngle + HalfArc，
// 进度用二次方缓出，只在进度 [0.12, 0.88] 区间内做命中判定
type SwingState struct {
	Active      bool                    // 是否正在挥砍
	Elapsed     float64                 // 已进行时间（秒）
	Duration    float64                 // 挥砍总时长（秒）
	TargetAngle float64                 // 挥砍中心角度（弧度）
	Direction   float64                 // 挥砍方向：+1 顺时针，-1 逆时针
	HitSet      map[ecs.EntityID]bool   // 本次挥砍已命中的实体集合（每次挥砍至多命中一次）
}

// OrbitState 环绕瞬态状态（仅环绕武器使用）
type OrbitState struct {
	Angle         float64               // 当前公转角度（弧度，持续累积）
	RotationAccum float64               // 自上次清空命中集以来累积的旋转量（弧度）
	HitSet        map[ecs.EntityID]bool // 本圈已命中的实体集合，每跨过 2π 清空一次
}

// WeaponState 单个武器实例的状态
// 等级数值来自 weapon_tables.yaml 的逐级手工表
type WeaponState struct {
	Kind   WeaponKind // 武器种类
	Level  int        // 当前等级（1..maxLevel）
	Active bool       // 是否启用

	// Cooldown 冷却剩余时间（秒），canFire = Active && Cooldown <= 0
	Cooldown float64

	// 变体专属瞬态状态（只有对应种类的武器会使用）
	Swing SwingState // 近战挥砍
	Orbit OrbitState // 环绕法球
}

// WeaponOwnerComponent 玩家持有的武器注册表
// 同种武器至多一件，按 WeaponKind 索引
type WeaponOwnerComponent struct {
	Weapons map[WeaponKind]*WeaponState
}

// NewWeaponOwnerComponent 创建空的武器注册表
func NewWeaponOwnerComponent() *WeaponOwnerComponent {
	return &WeaponOwnerComponent{Weapons: make(map[WeaponKind]*WeaponState)}
}

// HasWeapon 检查是否拥有指定种类的武器
func (c *WeaponOwnerComponent) HasWeapon(kind WeaponKind) bool {
	if c == nil || c.Weapons == nil {
		return false
	}
	_, ok := c.Weapons[kind]
	return ok
}

// GetWeapon 获取指定种类的武器状态
// 未持有时返回 nil，调用方需判空
func (c *WeaponOwnerComponent) GetWeapon(kind WeaponKind) *WeaponState {
	if c == nil || c.Weapons == nil {
		return nil
	}
	return c.Weapons[kind]
}
