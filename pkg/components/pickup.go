package components

// PickupKind 拾取物种类
type PickupKind string

const (
	PickupXP     PickupKind = "xp"     // 经验宝石
	PickupHealth PickupKind = "health" // 回复道具
)

// PickupComponent 拾取物组件
// 进入玩家拾取范围后被磁吸，接触后收集
type PickupComponent struct {
	Kind  PickupKind // 种类
	Value int        // 数值（经验值或回复量）

	// Magnetized 是否已被磁吸（一旦开始吸附就不再停止）
	Magnetized bool

	// Collected 是否已收集
	// 已收集的拾取物再次触碰是无害的空操作
	Collected bool
}
