package components

// DashState 冲刺子状态
// 由输入层触发，MovementSystem 驱动计时
type DashState struct {
	Active        bool    // 是否正在冲刺
	Timer         float64 // 冲刺剩余时间（秒）
	CooldownTimer float64 // 冲刺冷却剩余时间（秒）
	DirX          float64 // 冲刺方向（单位向量）
	DirY          float64
}

// MovementComponent 存储实体的移动属性
// 由控制方（玩家输入或敌人追击逻辑）写入意图，MovementSystem 积分
type MovementComponent struct {
	Speed    float64 // 当前移动速度（像素/秒）
	MaxSpeed float64 // 速度上限（像素/秒）
	Facing   float64 // 朝向（弧度）

	Dash DashState // 冲刺子状态

	// 世界边界限制，位置积分后被钳制到该矩形内
	BoundsMinX float64
	BoundsMinY float64
	BoundsMaxX float64
	BoundsMaxY float64
}
