package systems

import (
	"math/rand"
	"sort"

	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/config"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
	"github.com/soulwax/darkmoon-sub000/pkg/entities"
	"github.com/soulwax/darkmoon-sub000/pkg/events"
	"github.com/soulwax/darkmoon-sub000/pkg/utils"
)

// SpawnSystem 波次调度与敌人生成
//
// 难度随波次爬升的三条杠杆，全部是查表/公式而非脚本：
//   - 刷怪间隔随波次单调递减（下限为基础间隔的 30%）
//   - 每次刷怪的数量 1 + wave/2 随波次增长
//   - 敌人种类按 unlockWave 逐波解锁，加权随机挑选
//
// 场上敌人数达到硬上限时静默拒绝生成（不是错误，不排队补偿），
// 波次计时照常推进
type SpawnSystem struct {
	em         *ecs.EntityManager
	queue      *events.Queue
	waveConfig *config.WaveConfig
	enemyStats *config.EnemyStatsConfig
	tuning     *config.TuningConfig
	rng        *rand.Rand

	// 可视矩形尺寸：刷怪点放在以玩家为中心的可视矩形
	// 向外扩 SpawnMargin 的边框上，玩家看不到敌人凭空出现
	viewWidth  float64
	viewHeight float64
}

// NewSpawnSystem 创建刷怪系统
func NewSpawnSystem(em *ecs.EntityManager, queue *events.Queue,
	waveConfig *config.WaveConfig, enemyStats *config.EnemyStatsConfig,
	tuning *config.TuningConfig, rng *rand.Rand, viewWidth, viewHeight float64) *SpawnSystem {
	return &SpawnSystem{
		em:         em,
		queue:      queue,
		waveConfig: waveConfig,
		enemyStats: enemyStats,
		tuning:     tuning,
		rng:        rng,
		viewWidth:  viewWidth,
		viewHeight: viewHeight,
	}
}

// Update 推进波次与刷怪计时
func (s *SpawnSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.WaveStateComponent](s.em) {
		wave, _ := ecs.GetComponent[*components.WaveStateComponent](s.em, id)
		if wave.IsPaused {
			continue
		}
		s.tick(wave, dt)
	}
}

// tick 推进单个波次状态
func (s *SpawnSystem) tick(wave *components.WaveStateComponent, dt float64) {
	wave.WaveTimer += dt
	for wave.WaveTimer >= s.waveConfig.WaveDuration {
		wave.WaveTimer -= s.waveConfig.WaveDuration
		wave.WaveNumber++
		s.queue.Publish(events.Event{
			Type:   events.EventWaveStarted,
			Amount: wave.WaveNumber,
		})
	}

	wave.SpawnTimer -= dt
	for wave.SpawnTimer <= 0 {
		s.spawnBurst(wave.WaveNumber)
		wave.SpawnTimer += s.waveConfig.SpawnInterval(wave.WaveNumber)
	}
}

// spawnBurst 生成一批敌人
func (s *SpawnSystem) spawnBurst(waveNumber int) {
	playerID, playerPos, ok := s.findPlayer()
	if !ok {
		return
	}

	burst := s.waveConfig.BurstSize(waveNumber)
	for i := 0; i < burst; i++ {
		// 人口硬上限：达到后静默拒绝
		if s.enemyCount() >= s.waveConfig.MaxEnemies {
			return
		}

		typeKey, ok := s.pickEnemyType(waveNumber)
		if !ok {
			return
		}
		stats, _ := s.enemyStats.GetEnemyStats(typeKey)

		x, y := s.pickSpawnPoint(playerPos)
		enemyID := entities.CreateEnemy(s.em, entities.EnemyParams{
			TypeKey:  typeKey,
			Stats:    stats,
			TargetID: playerID,
			X:        x,
			Y:        y,
			Tuning:   s.tuning,
		})

		s.queue.Publish(events.Event{
			Type:   events.EventEnemySpawned,
			Entity: enemyID,
			Kind:   typeKey,
			X:      x,
			Y:      y,
		})
	}
}

// pickEnemyType 在当前波次已解锁的敌人类型中做加权随机
func (s *SpawnSystem) pickEnemyType(waveNumber int) (string, bool) {
	unlocked := s.enemyStats.UnlockedTypes(waveNumber)
	if len(unlocked) == 0 {
		return "", false
	}

	// 遍历 map 派生的列表顺序不稳定，先排序保证同种子下可复现
	sort.Strings(unlocked)

	total := 0
	for _, typeKey := range unlocked {
		total += s.enemyStats.GetEnemyWeight(typeKey)
	}
	if total <= 0 {
		return "", false
	}

	roll := s.rng.Intn(total)
	for _, typeKey := range unlocked {
		roll -= s.enemyStats.GetEnemyWeight(typeKey)
		if roll < 0 {
			return typeKey, true
		}
	}
	return unlocked[len(unlocked)-1], true
}

// pickSpawnPoint 在以玩家为中心的可视矩形外缘随机取刷怪点
// 结果钳制到世界边界内（玩家贴边时刷怪点会落在可见范围内，接受）
func (s *SpawnSystem) pickSpawnPoint(playerPos *components.PositionComponent) (float64, float64) {
	halfW := s.viewWidth/2 + s.waveConfig.SpawnMargin
	halfH := s.viewHeight/2 + s.waveConfig.SpawnMargin

	var x, y float64
	switch s.rng.Intn(4) {
	case 0: // 上边
		x = playerPos.X + (s.rng.Float64()*2-1)*halfW
		y = playerPos.Y - halfH
	case 1: // 下边
		x = playerPos.X + (s.rng.Float64()*2-1)*halfW
		y = playerPos.Y + halfH
	case 2: // 左边
		x = playerPos.X - halfW
		y = playerPos.Y + (s.rng.Float64()*2-1)*halfH
	default: // 右边
		x = playerPos.X + halfW
		y = playerPos.Y + (s.rng.Float64()*2-1)*halfH
	}

	x = utils.Clamp(x, 0, s.tuning.World.Width)
	y = utils.Clamp(y, 0, s.tuning.World.Height)
	return x, y
}

// enemyCount 当前场上的存活敌人数量
func (s *SpawnSystem) enemyCount() int {
	return len(ecs.GetEntitiesWith1[*components.EnemyComponent](s.em))
}

// findPlayer 找到第一个玩家实体（单玩家战斗核心）
func (s *SpawnSystem) findPlayer() (ecs.EntityID, *components.PositionComponent, bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		return id, pos, true
	}
	return 0, nil, false
}
