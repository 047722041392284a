package components

// PositionComponent 存储实体的世界坐标
// 坐标单位为像素，原点在世界左上角
type PositionComponent struct {
	X float64 // 世界X坐标
	Y float64 // 世界Y坐标
}

// VelocityComponent 存储实体的速度
// MovementSystem 每帧按 dt 积分到位置上
type VelocityComponent struct {
	VX float64 // X方向速度（像素/秒）
	VY float64 // Y方向速度（像素/秒）
}
