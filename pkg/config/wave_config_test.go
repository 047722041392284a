package config

import (
	"math"
	"testing"
)

const validWaveYAML = `
wave:
  waveDuration: 30.0
  baseInterval: 2.4
  spawnRate: 1.0
  maxEnemies: 220
  spawnMargin: 48.0
`

// TestParseWaveConfig 测试正常配置解析
func TestParseWaveConfig(t *testing.T) {
	config, err := ParseWaveConfig([]byte(validWaveYAML))
	if err != nil {
		t.Fatalf("ParseWaveConfig failed: %v", err)
	}

	if config.WaveDuration != 30.0 {
		t.Errorf("Expected waveDuration 30.0, got %f", config.WaveDuration)
	}
	if config.MaxEnemies != 220 {
		t.Errorf("Expected maxEnemies 220, got %d", config.MaxEnemies)
	}
}

// TestParseWaveConfigInvalid 测试畸形配置
func TestParseWaveConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"零波长", "wave:\n  waveDuration: 0\n  baseInterval: 2\n  spawnRate: 1\n  maxEnemies: 10"},
		{"零间隔", "wave:\n  waveDuration: 30\n  baseInterval: 0\n  spawnRate: 1\n  maxEnemies: 10"},
		{"零速率", "wave:\n  waveDuration: 30\n  baseInterval: 2\n  spawnRate: 0\n  maxEnemies: 10"},
		{"零上限", "wave:\n  waveDuration: 30\n  baseInterval: 2\n  spawnRate: 1\n  maxEnemies: 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseWaveConfig([]byte(tt.yaml)); err == nil {
				t.Error("Expected error for invalid config")
			}
		})
	}
}

// TestSpawnIntervalMonotonic 测试刷怪间隔单调递减且有下限
//
// 规则：间隔 = baseInterval * (1 - min(wave*0.1, 0.7)) / spawnRate，
// 无论波次多大，间隔永远不低于 0.3 * baseInterval / spawnRate
func TestSpawnIntervalMonotonic(t *testing.T) {
	config, err := ParseWaveConfig([]byte(validWaveYAML))
	if err != nil {
		t.Fatalf("ParseWaveConfig failed: %v", err)
	}

	floor := 0.3 * config.BaseInterval / config.SpawnRate

	prev := math.Inf(1)
	for wave := 0; wave <= 1000; wave++ {
		interval := config.SpawnInterval(wave)
		if interval > prev+1e-9 {
			t.Fatalf("Interval increased at wave %d: %f -> %f", wave, prev, interval)
		}
		if interval < floor-1e-9 {
			t.Fatalf("Interval %f below floor %f at wave %d", interval, floor, wave)
		}
		prev = interval
	}

	// 第 7 波及以后应锁定在下限
	if got := config.SpawnInterval(7); math.Abs(got-floor) > 1e-9 {
		t.Errorf("Expected interval %f at wave 7, got %f", floor, got)
	}
	if got := config.SpawnInterval(9999); math.Abs(got-floor) > 1e-9 {
		t.Errorf("Expected interval %f at wave 9999, got %f", floor, got)
	}
}

// TestBurstSize 测试每次刷怪数量公式
func TestBurstSize(t *testing.T) {
	config, err := ParseWaveConfig([]byte(validWaveYAML))
	if err != nil {
		t.Fatalf("ParseWaveConfig failed: %v", err)
	}

	tests := []struct {
		wave     int
		expected int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{5, 3},
		{10, 6},
		{100, 51},
	}

	for _, tt := range tests {
		if got := config.BurstSize(tt.wave); got != tt.expected {
			t.Errorf("BurstSize(%d) = %d, 期望 %d", tt.wave, got, tt.expected)
		}
	}
}
