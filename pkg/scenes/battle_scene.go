package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/config"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
	"github.com/soulwax/darkmoon-sub000/pkg/entities"
	"github.com/soulwax/darkmoon-sub000/pkg/events"
	"github.com/soulwax/darkmoon-sub000/pkg/game"
	"github.com/soulwax/darkmoon-sub000/pkg/systems"
)

// 逻辑屏幕尺寸（像素）
const (
	ViewWidth  = 800
	ViewHeight = 600
)

// 瓦片边长（像素）
const tileSize = 32.0

// 升级时自动补强的武器顺序：先把已有的升满，再按序解锁新的
var weaponProgression = []components.WeaponKind{
	components.WeaponSword,
	components.WeaponOrbs,
	components.WeaponMissiles,
	components.WeaponLightning,
	components.WeaponBody,
}

// Configs 战斗场景依赖的全部配置
// 启动期一次性加载并校验，tick 循环内只读
type Configs struct {
	Tuning     *config.TuningConfig
	Waves      *config.WaveConfig
	EnemyStats *config.EnemyStatsConfig
	Weapons    *config.WeaponTablesConfig
}

// BattleScene 战斗场景：实体世界与所有系统的宿主
//
// 固定节拍单线程推进，每个 tick 的系统更新顺序是固定的：
// 输入 → 刷怪 → 移动决策 → 位置积分与瓦片碰撞 → 接触伤害 →
// 武器 → 投射物 → 拾取 → 状态计时 → 生命周期 →
// 延迟销毁结算 → 事件派发
type BattleScene struct {
	em    *ecs.EntityManager
	queue *events.Queue
	cfgs  Configs

	movementSystem      *systems.MovementSystem
	tileCollisionSystem *systems.TileCollisionSystem
	contactSystem       *systems.ContactDamageSystem
	weaponSystem        *systems.WeaponSystem
	projectileSystem    *systems.ProjectileSystem
	spawnSystem         *systems.SpawnSystem
	pickupSystem        *systems.PickupSystem
	effectSystem        *systems.EffectSystem
	lifetimeSystem      *systems.LifetimeSystem

	sceneManager *game.SceneManager
	watcher      *config.Watcher // 可为 nil（发布模式无热重载）

	playerID ecs.EntityID
	waveID   ecs.EntityID

	paused   bool
	gameOver bool
	elapsed  float64
	kills    int
	runSaved bool
}

// NewBattleScene 创建战斗场景并搭好实体世界
func NewBattleScene(sceneManager *game.SceneManager, cfgs Configs, watcher *config.Watcher) *BattleScene {
	em := ecs.NewEntityManager()
	queue := events.NewQueue()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	grid := buildArenaGrid(cfgs.Tuning)

	s := &BattleScene{
		em:           em,
		queue:        queue,
		cfgs:         cfgs,
		sceneManager: sceneManager,
		watcher:      watcher,

		movementSystem:      systems.NewMovementSystem(em, cfgs.Tuning),
		tileCollisionSystem: systems.NewTileCollisionSystem(em, cfgs.Tuning, grid),
		contactSystem:       systems.NewContactDamageSystem(em, queue, cfgs.Tuning, cfgs.Weapons, rng),
		weaponSystem:        systems.NewWeaponSystem(em, queue, cfgs.Tuning, cfgs.Weapons, rng),
		projectileSystem:    systems.NewProjectileSystem(em, queue, cfgs.Tuning, rng),
		spawnSystem:         systems.NewSpawnSystem(em, queue, cfgs.Waves, cfgs.EnemyStats, cfgs.Tuning, rng, ViewWidth, ViewHeight),
		pickupSystem:        systems.NewPickupSystem(em, queue, cfgs.Tuning),
		effectSystem:        systems.NewEffectSystem(em, cfgs.Tuning),
		lifetimeSystem:      systems.NewLifetimeSystem(em),
	}

	s.playerID = entities.CreatePlayer(em, cfgs.Tuning,
		cfgs.Tuning.World.Width/2, cfgs.Tuning.World.Height/2)

	s.waveID = em.CreateEntity()
	em.AddComponent(s.waveID, &components.WaveStateComponent{})

	// 起手武器
	if err := s.weaponSystem.AddWeapon(s.playerID, components.WeaponSword); err != nil {
		log.Printf("[BattleScene] Failed to grant starting weapon: %v", err)
	}

	log.Printf("[BattleScene] Battle started, world %gx%g",
		cfgs.Tuning.World.Width, cfgs.Tuning.World.Height)
	return s
}

// buildArenaGrid 构建竞技场瓦片网格
// 中圈摆四根石柱做掩体，其余全部可通行
func buildArenaGrid(tuning *config.TuningConfig) *game.WorldGrid {
	cols := int(tuning.World.Width / tileSize)
	rows := int(tuning.World.Height / tileSize)
	grid, err := game.NewWorldGrid(cols, rows, tileSize)
	if err != nil {
		log.Printf("[BattleScene] Failed to build arena grid: %v (walls disabled)", err)
		return nil
	}

	centerX, centerY := cols/2, rows/2
	for _, offset := range [][2]int{{-8, -6}, {8, -6}, {-8, 6}, {8, 6}} {
		px, py := centerX+offset[0], centerY+offset[1]
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				grid.SetBlocked(px+dx, py+dy, true)
			}
		}
	}
	return grid
}

// Update 推进一个战斗 tick
func (s *BattleScene) Update(deltaTime float64) {
	s.pollConfigReload()

	frame := game.ReadInput()
	if frame.Pause && !s.gameOver {
		s.togglePause()
	}
	if s.gameOver {
		if game.IsRestartPressed() {
			s.sceneManager.SwitchTo(NewBattleScene(s.sceneManager, s.cfgs, s.watcher))
		}
		return
	}
	if s.paused {
		return
	}

	s.elapsed += deltaTime
	s.movementSystem.SetMoveInput(frame.MoveX, frame.MoveY)
	if frame.Dash {
		s.movementSystem.RequestDash()
	}

	s.spawnSystem.Update(deltaTime)
	s.movementSystem.Update(deltaTime)
	s.tileCollisionSystem.Update(deltaTime)
	s.contactSystem.Update(deltaTime)
	s.weaponSystem.Update(deltaTime)
	s.projectileSystem.Update(deltaTime)
	s.pickupSystem.Update(deltaTime)
	s.effectSystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)

	s.em.RemoveMarkedEntities()
	s.dispatchEvents()
}

// togglePause 切换暂停：冻结刷怪计时，系统更新整体跳过
func (s *BattleScene) togglePause() {
	s.paused = !s.paused
	if wave, ok := ecs.GetComponent[*components.WaveStateComponent](s.em, s.waveID); ok {
		wave.IsPaused = s.paused
	}
	log.Printf("[BattleScene] Paused: %v", s.paused)
}

// dispatchEvents 在 tick 边界消费本帧事件
// 战斗核心只发布，这里是协作方：统计、自动升级、结算
func (s *BattleScene) dispatchEvents() {
	for _, evt := range s.queue.Drain() {
		switch evt.Type {
		case events.EventEnemyKilled:
			s.kills++
		case events.EventPlayerLeveledUp:
			s.autoGrantUpgrade()
		case events.EventPlayerDied:
			s.onPlayerDied()
		case events.EventWaveStarted:
			log.Printf("[BattleScene] Wave %d started", evt.Amount)
		}
	}
}

// autoGrantUpgrade 升级奖励的自动选择
// 按固定顺序：先把已持有的武器升一级，都满级了再解锁下一种
func (s *BattleScene) autoGrantUpgrade() {
	for _, kind := range weaponProgression {
		if err := s.weaponSystem.UpgradeWeapon(s.playerID, kind); err == nil {
			return
		}
	}
	for _, kind := range weaponProgression {
		if err := s.weaponSystem.AddWeapon(s.playerID, kind); err == nil {
			return
		}
	}
}

// onPlayerDied 结算：记录战绩并切到结算状态
func (s *BattleScene) onPlayerDied() {
	s.gameOver = true
	if s.runSaved {
		return
	}
	s.runSaved = true

	wave, _ := ecs.GetComponent[*components.WaveStateComponent](s.em, s.waveID)
	level := 0
	if player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, s.playerID); ok {
		level = player.Level
	}

	run := game.RunSummary{
		WaveReached:  wave.WaveNumber,
		Kills:        s.kills,
		Level:        level,
		TimeSurvived: s.elapsed,
	}
	game.GetGameState().GetSaveManager().RecordRun(run)
	log.Printf("[BattleScene] Run over: wave=%d kills=%d survived=%.1fs",
		run.WaveReached, run.Kills, run.TimeSurvived)
}

// SaveOnExit 窗口关闭时把未结算的局也记录下来
func (s *BattleScene) SaveOnExit() bool {
	if !s.gameOver {
		s.onPlayerDied()
	}
	return true
}

// pollConfigReload 非阻塞地消费配置热重载事件（开发模式）
// 解析失败只告警，场上继续用旧数值跑
func (s *BattleScene) pollConfigReload() {
	if s.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-s.watcher.Events:
			if !ok {
				s.watcher = nil
				return
			}
			s.reloadConfigFile(path)
		case err, ok := <-s.watcher.Errors:
			if ok {
				log.Printf("[BattleScene] Config watcher error: %v", err)
			}
		default:
			return
		}
	}
}

// reloadConfigFile 重新解析变更的配置文件并原地替换
// 只影响之后生成的敌人和之后的武器触发，场上实体不回写
func (s *BattleScene) reloadConfigFile(path string) {
	data, err := config.ReadDiskFile(path)
	if err != nil {
		log.Printf("[BattleScene] Reload failed for %s: %v", path, err)
		return
	}

	switch {
	case config.MatchesFile(path, "enemy_stats"):
		parsed, err := config.ParseEnemyStats(data)
		if err != nil {
			log.Printf("[BattleScene] Invalid enemy stats, keeping old values: %v", err)
			return
		}
		*s.cfgs.EnemyStats = *parsed
	case config.MatchesFile(path, "weapon_tables"):
		parsed, err := config.ParseWeaponTables(data)
		if err != nil {
			log.Printf("[BattleScene] Invalid weapon tables, keeping old values: %v", err)
			return
		}
		*s.cfgs.Weapons = *parsed
	case config.MatchesFile(path, "wave_config"):
		parsed, err := config.ParseWaveConfig(data)
		if err != nil {
			log.Printf("[BattleScene] Invalid wave config, keeping old values: %v", err)
			return
		}
		*s.cfgs.Waves = *parsed
	case config.MatchesFile(path, "tuning"):
		parsed, err := config.ParseTuning(data)
		if err != nil {
			log.Printf("[BattleScene] Invalid tuning, keeping old values: %v", err)
			return
		}
		*s.cfgs.Tuning = *parsed
	default:
		return
	}
	log.Printf("[BattleScene] Reloaded config: %s", path)
}

// Draw 调试渲染：纯色圆形与文本 HUD
func (s *BattleScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 26, B: 33, A: 255})

	camX, camY := s.cameraOrigin()

	s.drawPickups(screen, camX, camY)
	s.drawEnemies(screen, camX, camY)
	s.drawProjectiles(screen, camX, camY)
	s.drawEffects(screen, camX, camY)
	s.drawPlayer(screen, camX, camY)
	s.drawHUD(screen)
}

// cameraOrigin 相机左上角的世界坐标：居中玩家，钳制到世界内
func (s *BattleScene) cameraOrigin() (float64, float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, s.playerID)
	if !ok {
		return 0, 0
	}
	camX := pos.X - ViewWidth/2
	camY := pos.Y - ViewHeight/2
	camX = clampCamera(camX, s.cfgs.Tuning.World.Width-ViewWidth)
	camY = clampCamera(camY, s.cfgs.Tuning.World.Height-ViewHeight)
	return camX, camY
}

func clampCamera(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

func (s *BattleScene) drawPlayer(screen *ebiten.Image, camX, camY float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, s.playerID)
	if !ok {
		return
	}
	col, _ := ecs.GetComponent[*components.ColliderComponent](s.em, s.playerID)
	vector.DrawFilledCircle(screen,
		float32(pos.X-camX), float32(pos.Y-camY), float32(col.Radius),
		color.RGBA{R: 90, G: 220, B: 120, A: 255}, true)
}

func (s *BattleScene) drawEnemies(screen *ebiten.Image, camX, camY float64) {
	for _, id := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.ColliderComponent](s.em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		col, _ := ecs.GetComponent[*components.ColliderComponent](s.em, id)

		fill := color.RGBA{R: 210, G: 70, B: 70, A: 255}
		if enemy.BlinkTimer > 0 {
			fill = color.RGBA{R: 255, G: 230, B: 230, A: 255}
		}
		vector.DrawFilledCircle(screen,
			float32(pos.X-camX), float32(pos.Y-camY), float32(col.Radius), fill, true)
	}
}

func (s *BattleScene) drawProjectiles(screen *ebiten.Image, camX, camY float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](s.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vector.DrawFilledCircle(screen,
			float32(pos.X-camX), float32(pos.Y-camY), 5,
			color.RGBA{R: 250, G: 210, B: 90, A: 255}, true)
	}
}

func (s *BattleScene) drawPickups(screen *ebiten.Image, camX, camY float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.PickupComponent, *components.PositionComponent](s.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vector.DrawFilledCircle(screen,
			float32(pos.X-camX), float32(pos.Y-camY), 5,
			color.RGBA{R: 100, G: 200, B: 250, A: 255}, true)
	}
}

func (s *BattleScene) drawEffects(screen *ebiten.Image, camX, camY float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.LifetimeComponent, *components.PositionComponent](s.em) {
		col, ok := ecs.GetComponent[*components.ColliderComponent](s.em, id)
		if !ok {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vector.StrokeCircle(screen,
			float32(pos.X-camX), float32(pos.Y-camY), float32(col.Radius), 2,
			color.RGBA{R: 240, G: 240, B: 255, A: 255}, true)
	}
}

func (s *BattleScene) drawHUD(screen *ebiten.Image) {
	wave, _ := ecs.GetComponent[*components.WaveStateComponent](s.em, s.waveID)
	health, _ := ecs.GetComponent[*components.HealthComponent](s.em, s.playerID)
	player, _ := ecs.GetComponent[*components.PlayerComponent](s.em, s.playerID)

	hud := fmt.Sprintf("Wave %d  HP %d/%d  Shield %.0f  Lv %d  Kills %d",
		wave.WaveNumber, health.CurrentHealth, health.MaxHealth,
		player.Shield, player.Level, s.kills)
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)

	if s.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", ViewWidth/2-24, ViewHeight/2)
	}
	if s.gameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press R to restart", ViewWidth/2-100, ViewHeight/2)
	}
}
