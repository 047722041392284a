package components

// WaveStateComponent 刷怪调度器状态
// 注意：遵循 ECS 原则，组件仅存储数据，计算逻辑在 SpawnSystem 中
type WaveStateComponent struct {
	// WaveNumber 当前波次（从 0 开始，无上限）
	// 每经过 waveDuration 秒递增一次
	WaveNumber int

	// WaveTimer 当前波次已进行时间（秒）
	WaveTimer float64

	// SpawnTimer 距下次刷怪的剩余时间（秒）
	SpawnTimer float64

	// IsPaused 暂停时计时器不递减
	IsPaused bool
}
