package game

import (
	"testing"
)

// TestNewWorldGridValidation 非法尺寸与瓦片边长返回错误
func TestNewWorldGridValidation(t *testing.T) {
	if _, err := NewWorldGrid(0, 10, 32); err == nil {
		t.Error("Expected error for zero width")
	}
	if _, err := NewWorldGrid(10, -1, 32); err == nil {
		t.Error("Expected error for negative height")
	}
	if _, err := NewWorldGrid(10, 10, 0); err == nil {
		t.Error("Expected error for zero tile size")
	}
}

// TestWorldGridBlocking 设置阻挡后 IsWalkable 反映状态
func TestWorldGridBlocking(t *testing.T) {
	grid, err := NewWorldGrid(8, 6, 32)
	if err != nil {
		t.Fatalf("NewWorldGrid: %v", err)
	}

	if !grid.IsWalkable(3, 2) {
		t.Error("Fresh grid should be fully walkable")
	}

	grid.SetBlocked(3, 2, true)
	if grid.IsWalkable(3, 2) {
		t.Error("Blocked tile should not be walkable")
	}

	grid.SetBlocked(3, 2, false)
	if !grid.IsWalkable(3, 2) {
		t.Error("Unblocked tile should be walkable again")
	}
}

// TestWorldGridOutOfBounds 越界瓦片视为可通行，越界设置静默忽略
func TestWorldGridOutOfBounds(t *testing.T) {
	grid, _ := NewWorldGrid(4, 4, 16)

	if !grid.IsWalkable(-1, 0) || !grid.IsWalkable(0, 4) {
		t.Error("Out-of-bounds tiles should be walkable")
	}

	grid.SetBlocked(-1, -1, true) // 不应 panic
	grid.SetBlocked(99, 99, true)

	if grid.TileSize() != 16 {
		t.Errorf("TileSize: got %v, want 16", grid.TileSize())
	}
}
