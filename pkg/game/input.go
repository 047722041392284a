package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputFrame 单帧输入快照
// 战斗场景每帧采样一次，战斗核心不直接触碰 ebiten
type InputFrame struct {
	MoveX float64 // 移动意图X分量（-1/0/+1，归一化交给移动系统）
	MoveY float64
	Dash  bool // 本帧按下冲刺
	Pause bool // 本帧按下暂停
}

// ReadInput 采样当前帧的键盘输入
// WASD 与方向键等价；空格冲刺；Esc 或 P 暂停
func ReadInput() InputFrame {
	var frame InputFrame

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		frame.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		frame.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		frame.MoveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		frame.MoveY += 1
	}

	frame.Dash = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	frame.Pause = inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyP)

	return frame
}

// IsRestartPressed 结算画面上的重开键
func IsRestartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}
