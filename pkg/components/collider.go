package components

// ColliderShape 碰撞体形状
type ColliderShape int

const (
	// ShapeCircle 圆形碰撞体（半径 Radius）
	ShapeCircle ColliderShape = iota
	// ShapeBox 轴对齐矩形碰撞体（宽 Width 高 Height，中心对齐）
	ShapeBox
)

// 碰撞层位掩码
const (
	LayerPlayer     uint32 = 1 << 0
	LayerEnemy      uint32 = 1 << 1
	LayerProjectile uint32 = 1 << 2
	LayerPickup     uint32 = 1 << 3
)

// ColliderComponent 定义实体的碰撞边界
// 圆形用于所有战斗判定，矩形保留给触发区域
type ColliderComponent struct {
	Shape   ColliderShape // 形状
	Radius  float64       // 圆形半径（像素）
	Width   float64       // 矩形宽度（像素）
	Height  float64       // 矩形高度（像素）
	OffsetX float64       // 相对实体位置的X偏移（像素）
	OffsetY float64       // 相对实体位置的Y偏移（像素）

	Layer uint32 // 所属碰撞层位掩码

	// IsTrigger 为 true 时只做重叠检测，不产生物理推挤
	IsTrigger bool
}
