package utils

import (
	"math"
	"testing"
)

// TestVec2Arithmetic 测试向量基本运算
func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: -2}

	sum := a.Add(b)
	if sum.X != 4 || sum.Y != 2 {
		t.Errorf("Add mismatch: got (%v, %v)", sum.X, sum.Y)
	}

	diff := a.Sub(b)
	if diff.X != 2 || diff.Y != 6 {
		t.Errorf("Sub mismatch: got (%v, %v)", diff.X, diff.Y)
	}

	scaled := a.Scale(2)
	if scaled.X != 6 || scaled.Y != 8 {
		t.Errorf("Scale mismatch: got (%v, %v)", scaled.X, scaled.Y)
	}
}

// TestVec2Length 测试长度与平方长度
func TestVec2Length(t *testing.T) {
	v := Vec2{X: 3, Y: 4}

	if v.LengthSquared() != 25 {
		t.Errorf("LengthSquared expected 25, got %v", v.LengthSquared())
	}
	if math.Abs(v.Length()-5) > 1e-9 {
		t.Errorf("Length expected 5, got %v", v.Length())
	}
}

// TestVec2Normalized 测试单位化
func TestVec2Normalized(t *testing.T) {
	v := Vec2{X: 10, Y: 0}
	n := v.Normalized()
	if n.X != 1 || n.Y != 0 {
		t.Errorf("Normalized expected (1, 0), got (%v, %v)", n.X, n.Y)
	}

	// 零向量单位化不能产生 NaN
	zero := Vec2{}.Normalized()
	if zero.X != 0 || zero.Y != 0 {
		t.Errorf("Normalized zero vector should stay zero, got (%v, %v)", zero.X, zero.Y)
	}
}

// TestDistanceSquared 测试距离平方
func TestDistanceSquared(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 6, Y: 8}
	if DistanceSquared(a, b) != 100 {
		t.Errorf("DistanceSquared expected 100, got %v", DistanceSquared(a, b))
	}
}

// TestClamp 测试区间限制
func TestClamp(t *testing.T) {
	tests := []struct {
		name          string
		v, min, max   float64
		expected      float64
	}{
		{"区间内", 0.5, 0, 1, 0.5},
		{"低于下界", -2, 0, 1, 0},
		{"高于上界", 3, 0, 1, 1},
		{"边界值", 1, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.min, tt.max); got != tt.expected {
				t.Errorf("Clamp(%v, %v, %v) = %v, 期望 %v", tt.v, tt.min, tt.max, got, tt.expected)
			}
		})
	}
}

// TestFromAngle 测试角度构造
func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi / 2)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y-1) > 1e-9 {
		t.Errorf("FromAngle(π/2) expected (0, 1), got (%v, %v)", v.X, v.Y)
	}
}
