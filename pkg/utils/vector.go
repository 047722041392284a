package utils

import "math"

// Vec2 二维向量
// 战斗核心里所有位置、速度、方向都用它表示
type Vec2 struct {
	X float64
	Y float64
}

// Add 向量加法
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 向量减法
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 标量乘法
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// LengthSquared 长度的平方
// 距离比较一律用平方值，避免开方
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length 向量长度
func (v Vec2) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalized 返回单位向量
// 零向量返回零向量（不产生 NaN）
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// DistanceSquared 两点距离的平方
func DistanceSquared(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Distance 两点距离
func Distance(a, b Vec2) float64 {
	return math.Sqrt(DistanceSquared(a, b))
}

// FromAngle 由弧度角构造单位向量
func FromAngle(radians float64) Vec2 {
	return Vec2{X: math.Cos(radians), Y: math.Sin(radians)}
}

// Angle 返回向量的弧度角
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Clamp 将数值限制在 [min, max] 区间
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
