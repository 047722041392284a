package components

// LifetimeComponent 实体存活时间组件
// 到期后由 LifetimeSystem 标记删除（用于落雷特效等短命实体）
type LifetimeComponent struct {
	CurrentLifetime float64 // 已存活时间（秒）
	MaxLifetime     float64 // 最大存活时间（秒）
	IsExpired       bool    // 是否已过期
}
