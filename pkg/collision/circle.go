package collision

import (
	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/utils"
)

// CircleIntersects 圆-圆重叠测试
// 比较距离平方与半径和的平方，全程不开方：
// intersects ⇔ distanceSquared < (ra+rb)²
func CircleIntersects(ax, ay, ar, bx, by, br float64) bool {
	dx := ax - bx
	dy := ay - by
	sum := ar + br
	return dx*dx+dy*dy < sum*sum
}

// Center 计算碰撞体的实际圆心（实体位置加上局部偏移）
func Center(pos *components.PositionComponent, col *components.ColliderComponent) utils.Vec2 {
	return utils.Vec2{X: pos.X + col.OffsetX, Y: pos.Y + col.OffsetY}
}

// Intersects 检查两个圆形碰撞体是否重叠
// 圆心先按各自的局部偏移修正
func Intersects(
	posA *components.PositionComponent, colA *components.ColliderComponent,
	posB *components.PositionComponent, colB *components.ColliderComponent) bool {

	a := Center(posA, colA)
	b := Center(posB, colB)
	return CircleIntersects(a.X, a.Y, colA.Radius, b.X, b.Y, colB.Radius)
}

// PointInCircle 检查点是否落在圆内
func PointInCircle(px, py, cx, cy, radius float64) bool {
	dx := px - cx
	dy := py - cy
	return dx*dx+dy*dy < radius*radius
}
