package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 游戏场景接口（战斗、暂停菜单等）
// 每个场景自带更新与渲染逻辑
type Scene interface {
	// Update 按增量时间推进场景逻辑
	// deltaTime 为距上次更新的秒数
	Update(deltaTime float64)

	// Draw 把场景渲染到目标图像
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口：场景退出时保存状态
// 实现此接口的场景会在窗口关闭时被调用 SaveOnExit()
type Saveable interface {
	// SaveOnExit 在场景退出时保存状态
	// 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}
