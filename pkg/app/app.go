// Package app 提供游戏应用的核心包装器
//
// 把初始化逻辑从 main 包提出来，让桌面端和测试共用。
// 调用 NewApp 前必须先调用 embedded.Init() 初始化嵌入资源。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/soulwax/darkmoon-sub000/pkg/config"
	"github.com/soulwax/darkmoon-sub000/pkg/game"
	"github.com/soulwax/darkmoon-sub000/pkg/scenes"
)

// Config 应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// WatchDir 非空时监视该目录下的调参 YAML 实现热重载（开发模式）
	WatchDir string
}

// App 游戏应用包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	watcher      *config.Watcher
	verbose      bool
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 启动期一次性加载并校验全部配置：
	// 畸形配置在这里失败，绝不流入战斗循环
	tuning, err := config.LoadTuning("data/tuning.yaml")
	if err != nil {
		return nil, fmt.Errorf("tuning config: %w", err)
	}
	waves, err := config.LoadWaveConfig("data/wave_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("wave config: %w", err)
	}
	enemyStats, err := config.LoadEnemyStats("data/enemy_stats.yaml")
	if err != nil {
		return nil, fmt.Errorf("enemy stats: %w", err)
	}
	weapons, err := config.LoadWeaponTables("data/weapon_tables.yaml")
	if err != nil {
		return nil, fmt.Errorf("weapon tables: %w", err)
	}

	var watcher *config.Watcher
	if cfg.WatchDir != "" {
		watcher, err = config.NewWatcher(cfg.WatchDir)
		if err != nil {
			log.Printf("[App] Config watcher disabled: %v", err)
			watcher = nil
		} else {
			log.Printf("[App] Watching %s for config changes", cfg.WatchDir)
		}
	}

	// 初始化全局状态（gdata 存储在这里第一次打开）
	gameState := game.GetGameState()
	log.Printf("[App] Best wave so far: %d", gameState.GetSaveManager().BestWave())

	sceneManager := game.NewSceneManager()
	battle := scenes.NewBattleScene(sceneManager, scenes.Configs{
		Tuning:     tuning,
		Waves:      waves,
		EnemyStats: enemyStats,
		Weapons:    weapons,
	}, watcher)
	sceneManager.SwitchTo(battle)

	return &App{
		sceneManager: sceneManager,
		watcher:      watcher,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 每个 tick 调用一次（固定 60 TPS）
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 控制全屏缩放与 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸，独立于实际窗口大小
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return scenes.ViewWidth, scenes.ViewHeight
}

// Shutdown 退出前的善后：保存当前场景状态并停掉 watcher
func (a *App) Shutdown() {
	if saveable, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		if !saveable.SaveOnExit() {
			log.Printf("[App] Warning: scene state was not saved on exit")
		}
	}
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
}
