package config

import (
	"fmt"

	"github.com/soulwax/darkmoon-sub000/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// WaveConfig 波次与刷怪节奏配置
type WaveConfig struct {
	WaveDuration float64 `yaml:"waveDuration"` // 每波持续时间（秒）
	BaseInterval float64 `yaml:"baseInterval"` // 基础刷怪间隔（秒）
	SpawnRate    float64 `yaml:"spawnRate"`    // 全局刷怪速率系数
	MaxEnemies   int     `yaml:"maxEnemies"`   // 场上敌人硬上限
	SpawnMargin  float64 `yaml:"spawnMargin"`  // 刷怪点在可视矩形外扩的边距（像素）
}

// waveConfigFile 配置文件顶层结构
type waveConfigFile struct {
	Wave WaveConfig `yaml:"wave"`
}

// LoadWaveConfig 从嵌入的 YAML 文件加载波次配置
func LoadWaveConfig(filepath string) (*WaveConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read wave config file %s: %w", filepath, err)
	}
	return ParseWaveConfig(data)
}

// ParseWaveConfig 解析并校验波次配置
func ParseWaveConfig(data []byte) (*WaveConfig, error) {
	var file waveConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse wave config YAML: %w", err)
	}

	config := file.Wave
	if err := validateWaveConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid wave config: %w", err)
	}

	return &config, nil
}

// validateWaveConfig 验证波次配置
func validateWaveConfig(config *WaveConfig) error {
	if config.WaveDuration <= 0 {
		return fmt.Errorf("waveDuration must be positive, got %f", config.WaveDuration)
	}
	if config.BaseInterval <= 0 {
		return fmt.Errorf("baseInterval must be positive, got %f", config.BaseInterval)
	}
	if config.SpawnRate <= 0 {
		return fmt.Errorf("spawnRate must be positive, got %f", config.SpawnRate)
	}
	if config.MaxEnemies < 1 {
		return fmt.Errorf("maxEnemies must be at least 1, got %d", config.MaxEnemies)
	}
	if config.SpawnMargin < 0 {
		return fmt.Errorf("spawnMargin cannot be negative, got %f", config.SpawnMargin)
	}
	return nil
}

// SpawnInterval 计算指定波次的刷怪间隔
//
// 公式: baseInterval * (1 - min(wave*0.1, 0.7)) / spawnRate
// 单调递减，下限为基础间隔的 30%（再高的波次也不会更快）
func (c *WaveConfig) SpawnInterval(waveNumber int) float64 {
	reduction := float64(waveNumber) * 0.1
	if reduction > 0.7 {
		reduction = 0.7
	}
	return c.BaseInterval * (1 - reduction) / c.SpawnRate
}

// BurstSize 计算指定波次每次刷怪的数量
//
// 公式: 1 + wave/2（整除），增长无上限，
// 实际数量只受 MaxEnemies 人口上限间接约束
func (c *WaveConfig) BurstSize(waveNumber int) int {
	return 1 + waveNumber/2
}
