package game

import (
	"fmt"
)

// WorldGrid 内存瓦片网格
// 实现战斗核心的 TileGrid 协作方接口；true 表示不可通行。
// 越界瓦片视为可通行（世界边界由移动边界钳制兜底）
type WorldGrid struct {
	blocked  [][]bool
	width    int
	height   int
	tileSize float64
}

// NewWorldGrid 创建空网格（全部可通行）
// 尺寸或瓦片边长非法属于编程错误，直接返回 error 让启动失败
func NewWorldGrid(width, height int, tileSize float64) (*WorldGrid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("grid size must be positive, got %dx%d", width, height)
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("tile size must be positive, got %f", tileSize)
	}

	blocked := make([][]bool, height)
	for y := range blocked {
		blocked[y] = make([]bool, width)
	}
	return &WorldGrid{
		blocked:  blocked,
		width:    width,
		height:   height,
		tileSize: tileSize,
	}, nil
}

// SetBlocked 设置指定瓦片是否不可通行，越界静默忽略
func (g *WorldGrid) SetBlocked(tileX, tileY int, value bool) {
	if tileX < 0 || tileX >= g.width || tileY < 0 || tileY >= g.height {
		return
	}
	g.blocked[tileY][tileX] = value
}

// IsWalkable 返回指定瓦片是否可通行，越界视为可通行
func (g *WorldGrid) IsWalkable(tileX, tileY int) bool {
	if tileX < 0 || tileX >= g.width || tileY < 0 || tileY >= g.height {
		return true
	}
	return !g.blocked[tileY][tileX]
}

// TileSize 返回瓦片边长（像素）
func (g *WorldGrid) TileSize() float64 {
	return g.tileSize
}
