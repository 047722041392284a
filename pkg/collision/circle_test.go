package collision

import (
	"math"
	"testing"

	"github.com/soulwax/darkmoon-sub000/pkg/components"
)

// TestCircleIntersects 测试圆-圆重叠判定与真实欧氏距离的一致性
// intersects 为真当且仅当圆心欧氏距离小于半径之和
func TestCircleIntersects(t *testing.T) {
	tests := []struct {
		name     string
		ax, ay, ar float64
		bx, by, br float64
		expected bool
	}{
		{"明显重叠", 0, 0, 10, 5, 0, 10, true},
		{"明显分离", 0, 0, 5, 100, 0, 5, false},
		{"恰好相切", 0, 0, 5, 10, 0, 5, false}, // 距离 == 半径和，不算重叠
		{"斜向重叠", 0, 0, 5, 3, 4, 1, true},  // 距离 5 < 半径和 6
		{"同心", 0, 0, 3, 0, 0, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CircleIntersects(tt.ax, tt.ay, tt.ar, tt.bx, tt.by, tt.br)
			if got != tt.expected {
				t.Errorf("CircleIntersects = %v, 期望 %v", got, tt.expected)
			}

			// 与真实欧氏距离判定对照
			dist := math.Hypot(tt.ax-tt.bx, tt.ay-tt.by)
			want := dist < tt.ar+tt.br
			if got != want {
				t.Errorf("Result %v disagrees with Euclidean check %v", got, want)
			}
		})
	}
}

// TestIntersectsWithOffsets 测试带局部偏移的碰撞体判定
func TestIntersectsWithOffsets(t *testing.T) {
	posA := &components.PositionComponent{X: 0, Y: 0}
	colA := &components.ColliderComponent{Shape: components.ShapeCircle, Radius: 5, OffsetX: 10}

	posB := &components.PositionComponent{X: 18, Y: 0}
	colB := &components.ColliderComponent{Shape: components.ShapeCircle, Radius: 5}

	// A 的实际圆心在 (10,0)，与 (18,0) 距离 8 < 10，应重叠
	if !Intersects(posA, colA, posB, colB) {
		t.Error("Expected overlap with offset-adjusted centers")
	}

	// 去掉偏移后距离 18 > 10，不重叠
	colA.OffsetX = 0
	if Intersects(posA, colA, posB, colB) {
		t.Error("Expected no overlap without offset")
	}
}

// TestCircleIntersectsSweep 随机参数下与欧氏距离判定完全一致
func TestCircleIntersectsSweep(t *testing.T) {
	// 遍历一组确定性的参数网格，避免随机种子不稳定
	coords := []float64{-7.5, -3, 0, 1.25, 4, 9.5}
	radii := []float64{0.5, 2, 5.5}

	for _, ax := range coords {
		for _, ay := range coords {
			for _, bx := range coords {
				for _, by := range coords {
					for _, ar := range radii {
						for _, br := range radii {
							got := CircleIntersects(ax, ay, ar, bx, by, br)
							want := math.Hypot(ax-bx, ay-by) < ar+br
							if got != want {
								t.Fatalf("Mismatch at a=(%v,%v,r%v) b=(%v,%v,r%v): got %v want %v",
									ax, ay, ar, bx, by, br, got, want)
							}
						}
					}
				}
			}
		}
	}
}
