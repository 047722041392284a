package collision

import "testing"

// testGrid 测试用瓦片网格
// walls 中列出的瓦片不可通行，其余全部可通行
type testGrid struct {
	size  float64
	walls map[[2]int]bool
}

func newTestGrid(size float64, walls ...[2]int) *testGrid {
	g := &testGrid{size: size, walls: make(map[[2]int]bool)}
	for _, w := range walls {
		g.walls[w] = true
	}
	return g
}

func (g *testGrid) IsWalkable(tileX, tileY int) bool {
	return !g.walls[[2]int{tileX, tileY}]
}

func (g *testGrid) TileSize() float64 {
	return g.size
}

// TestResolveMoveOpenField 无障碍时移动不受影响
func TestResolveMoveOpenField(t *testing.T) {
	grid := newTestGrid(32)

	result := ResolveMove(grid, 10, 10, 50, 70, 8, 2)
	if result.X != 50 || result.Y != 70 {
		t.Errorf("Expected free move to (50, 70), got (%v, %v)", result.X, result.Y)
	}
	if result.BlockedX || result.BlockedY {
		t.Error("No axis should be blocked in open field")
	}
}

// TestResolveMoveBlockedX 仅X轴被墙阻挡
func TestResolveMoveBlockedX(t *testing.T) {
	// 墙占据瓦片 (2, 0)，即世界坐标 [64, 96) x [0, 32)
	grid := newTestGrid(32, [2]int{2, 0})

	// 从 (50, 16) 向右移入墙中
	result := ResolveMove(grid, 50, 16, 70, 16, 8, 2)
	if !result.BlockedX {
		t.Error("X axis should be blocked")
	}
	if result.X != 50 {
		t.Errorf("X should revert to 50, got %v", result.X)
	}
	if result.BlockedY {
		t.Error("Y axis should not be blocked")
	}
	if result.Y != 16 {
		t.Errorf("Y should stay 16, got %v", result.Y)
	}
}

// TestResolveMoveBlockedYOnly 斜向移动时逐轴独立解算
// X方向通畅、Y方向撞墙：只回退Y，X照常前进（沿墙滑动）
func TestResolveMoveBlockedYOnly(t *testing.T) {
	// 墙占据瓦片 (1, 2)，即世界坐标 [32, 64) x [64, 96)
	grid := newTestGrid(32, [2]int{1, 2})

	// 从 (48, 50) 斜向移动到 (56, 70)：X 通畅，Y 进入墙
	result := ResolveMove(grid, 48, 50, 56, 70, 8, 2)
	if result.BlockedX {
		t.Error("X axis should not be blocked")
	}
	if result.X != 56 {
		t.Errorf("X should advance to 56, got %v", result.X)
	}
	if !result.BlockedY {
		t.Error("Y axis should be blocked")
	}
	if result.Y != 50 {
		t.Errorf("Y should revert to 50, got %v", result.Y)
	}
}

// TestResolveMoveMarginPreventsSnag 边距收缩让贴墙移动不卡角
func TestResolveMoveMarginPreventsSnag(t *testing.T) {
	grid := newTestGrid(32, [2]int{2, 0})

	// 实体半径 8，圆心在墙左边缘外 7 像素处平行于墙移动：
	// 无边距时会持续擦墙，收缩 2 像素后通畅
	result := ResolveMove(grid, 57, 100, 57, 120, 8, 2)
	if result.BlockedX || result.BlockedY {
		t.Error("Parallel move along wall should not be blocked")
	}
}

// TestResolveMoveNilGrid 无网格时退化为自由移动
func TestResolveMoveNilGrid(t *testing.T) {
	result := ResolveMove(nil, 0, 0, 100, 100, 8, 2)
	if result.X != 100 || result.Y != 100 || result.BlockedX || result.BlockedY {
		t.Error("Nil grid should mean unobstructed movement")
	}
}
