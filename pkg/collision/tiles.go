package collision

import "math"

// TileGrid 瓦片网格协作方接口
// 战斗核心只用它做碰撞判定，不关心瓦片的来源和渲染
type TileGrid interface {
	// IsWalkable 返回指定瓦片坐标是否可通行
	// 越界瓦片应由实现方决定（通常视为不可通行）
	IsWalkable(tileX, tileY int) bool

	// TileSize 返回瓦片边长（像素），必须为正
	TileSize() float64
}

// MoveResult 逐轴移动解算结果
type MoveResult struct {
	X        float64 // 解算后的X坐标
	Y        float64 // 解算后的Y坐标
	BlockedX bool    // X轴被阻挡（调用方应清零X方向速度与击退分量）
	BlockedY bool    // Y轴被阻挡
}

// circleOverlapsBlockedTile 检查圆是否与任何不可通行瓦片重叠
// 只扫描圆的包围盒覆盖到的瓦片范围
func circleOverlapsBlockedTile(grid TileGrid, cx, cy, radius float64) bool {
	size := grid.TileSize()

	minTX := int(math.Floor((cx - radius) / size))
	maxTX := int(math.Floor((cx + radius) / size))
	minTY := int(math.Floor((cy - radius) / size))
	maxTY := int(math.Floor((cy + radius) / size))

	for ty := minTY; ty <= maxTY; ty++ {
		for tx := minTX; tx <= maxTX; tx++ {
			if grid.IsWalkable(tx, ty) {
				continue
			}
			// 圆与瓦片矩形的精确重叠测试：
			// 取矩形上离圆心最近的点，比较距离平方
			left := float64(tx) * size
			top := float64(ty) * size
			nearestX := clampF(cx, left, left+size)
			nearestY := clampF(cy, top, top+size)
			dx := cx - nearestX
			dy := cy - nearestY
			if dx*dx+dy*dy < radius*radius {
				return true
			}
		}
	}
	return false
}

// ResolveMove 对一次移动做逐轴离散碰撞解算
//
// 流程：
//  1. 有效半径按 margin 收缩，避免贴墙卡角
//  2. 先单独尝试X轴位移：被阻挡则回退X并报告 BlockedX
//  3. 再以解算后的X为基础单独尝试Y轴位移，同样处理
//
// 这是离散的逐轴解算而非连续扫掠：极端击退速度下可能穿过
// 薄障碍，这是已知且被接受的限制
func ResolveMove(grid TileGrid, fromX, fromY, toX, toY, radius, margin float64) MoveResult {
	if grid == nil {
		return MoveResult{X: toX, Y: toY}
	}

	effective := radius - margin
	if effective < 0 {
		effective = 0
	}

	result := MoveResult{X: toX, Y: toY}

	// X轴单独解算
	if circleOverlapsBlockedTile(grid, toX, fromY, effective) {
		result.X = fromX
		result.BlockedX = true
	}

	// Y轴单独解算（基于已解算的X）
	if circleOverlapsBlockedTile(grid, result.X, toY, effective) {
		result.Y = fromY
		result.BlockedY = true
	}

	return result
}

func clampF(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
