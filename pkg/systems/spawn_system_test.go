package systems

import (
	"testing"

	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/config"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
	"github.com/soulwax/darkmoon-sub000/pkg/events"
)

func newTestWaveConfig() *config.WaveConfig {
	return &config.WaveConfig{
		WaveDuration: 10,
		BaseInterval: 2,
		SpawnRate:    1,
		MaxEnemies:   50,
		SpawnMargin:  64,
	}
}

func newTestEnemyStats() *config.EnemyStatsConfig {
	return &config.EnemyStatsConfig{
		Enemies: map[string]config.EnemyStats{
			"slime": {Health: 20, Damage: 5, Speed: 50, Radius: 10, XPValue: 3, KnockbackResistance: 1, Weight: 10, UnlockWave: 0},
			"bat":   {Health: 10, Damage: 3, Speed: 90, Radius: 8, XPValue: 2, KnockbackResistance: 1.2, Weight: 5, UnlockWave: 3},
		},
	}
}

func newTestSpawnWorld() (*ecs.EntityManager, *events.Queue, *SpawnSystem, *components.WaveStateComponent) {
	em, queue, tuning := newTestWorld()
	spawnTestPlayer(em, tuning, 1000, 1000)

	s := NewSpawnSystem(em, queue, newTestWaveConfig(), newTestEnemyStats(), tuning, newTestRNG(), 800, 600)

	waveID := em.CreateEntity()
	wave := &components.WaveStateComponent{SpawnTimer: 0}
	em.AddComponent(waveID, wave)
	return em, queue, s, wave
}

// TestSpawnOnTimer 刷怪计时归零时生成一批敌人
func TestSpawnOnTimer(t *testing.T) {
	em, queue, s, _ := newTestSpawnWorld()

	s.Update(0.016)

	// 第 0 波：每批 1 + 0/2 = 1 个
	if n := len(ecs.GetEntitiesWith1[*components.EnemyComponent](em)); n != 1 {
		t.Fatalf("Expected 1 enemy after first spawn, got %d", n)
	}

	found := false
	for _, evt := range queue.Drain() {
		if evt.Type == events.EventEnemySpawned && evt.Kind == "slime" {
			found = true
		}
	}
	if !found {
		t.Error("Expected a spawn event for the unlocked type")
	}
}

// TestUnlockGating 未解锁的敌人类型在早期波次绝不出现
func TestUnlockGating(t *testing.T) {
	em, _, s, wave := newTestSpawnWorld()

	// 第 0 波跑很多个刷怪周期
	for i := 0; i < 200; i++ {
		s.Update(0.05)
		if wave.WaveNumber > 2 {
			break
		}
	}

	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		if enemy.TypeKey == "bat" {
			t.Fatal("Enemy type with unlockWave 3 must not spawn before wave 3")
		}
	}
}

// TestWaveAdvances 波次随时间推进并发布事件
func TestWaveAdvances(t *testing.T) {
	_, queue, s, wave := newTestSpawnWorld()

	for i := 0; i < 11; i++ {
		s.Update(1.0)
	}

	if wave.WaveNumber != 1 {
		t.Errorf("Expected wave 1 after 11 seconds of a 10-second wave, got %d", wave.WaveNumber)
	}

	found := false
	for _, evt := range queue.Drain() {
		if evt.Type == events.EventWaveStarted && evt.Amount == 1 {
			found = true
		}
	}
	if !found {
		t.Error("Expected a wave started event")
	}
}

// TestMaxEnemiesCap 人口硬上限：达到后静默拒绝生成
func TestMaxEnemiesCap(t *testing.T) {
	em, queue, tuning := newTestWorld()
	spawnTestPlayer(em, tuning, 1000, 1000)

	waveConfig := newTestWaveConfig()
	waveConfig.MaxEnemies = 3

	s := NewSpawnSystem(em, queue, waveConfig, newTestEnemyStats(), tuning, newTestRNG(), 800, 600)
	waveID := em.CreateEntity()
	em.AddComponent(waveID, &components.WaveStateComponent{})

	for i := 0; i < 500; i++ {
		s.Update(0.1)
	}

	if n := len(ecs.GetEntitiesWith1[*components.EnemyComponent](em)); n != 3 {
		t.Errorf("Enemy count must be capped at 3, got %d", n)
	}
}

// TestPausedWaveDoesNotSpawn 暂停时计时与生成全部冻结
func TestPausedWaveDoesNotSpawn(t *testing.T) {
	em, _, s, wave := newTestSpawnWorld()
	wave.IsPaused = true

	for i := 0; i < 100; i++ {
		s.Update(0.1)
	}

	if n := len(ecs.GetEntitiesWith1[*components.EnemyComponent](em)); n != 0 {
		t.Errorf("Paused wave must not spawn, got %d enemies", n)
	}
	if wave.WaveNumber != 0 || wave.WaveTimer != 0 {
		t.Error("Paused wave timers must not advance")
	}
}

// TestSpawnPointsOffscreen 刷怪点落在可视矩形之外（玩家不贴边时）
func TestSpawnPointsOffscreen(t *testing.T) {
	em, _, s, _ := newTestSpawnWorld()

	for i := 0; i < 20; i++ {
		s.Update(2.1)
	}

	halfW, halfH := 400.0, 300.0
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		dx := pos.X - 1000
		dy := pos.Y - 1000
		if dx > -halfW && dx < halfW && dy > -halfH && dy < halfH {
			t.Errorf("Spawn point (%v, %v) is inside the view rectangle", pos.X, pos.Y)
		}
	}
}
