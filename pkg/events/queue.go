package events

import "github.com/soulwax/darkmoon-sub000/pkg/ecs"

// EventType 领域事件类型
type EventType string

const (
	EventEnemySpawned    EventType = "enemy_spawned"
	EventEnemyDamaged    EventType = "enemy_damaged"
	EventEnemyKilled     EventType = "enemy_killed"
	EventWeaponFired     EventType = "weapon_fired"
	EventWeaponAcquired  EventType = "weapon_acquired"
	EventWeaponUpgraded  EventType = "weapon_upgraded"
	EventPickupCollected EventType = "pickup_collected"
	EventXPGained        EventType = "xp_gained"
	EventPlayerDamaged   EventType = "player_damaged"
	EventPlayerLeveledUp EventType = "player_leveled_up"
	EventPlayerDied      EventType = "player_died"
	EventWaveStarted     EventType = "wave_started"
)

// Event 单条领域事件
// 战斗核心只发布事件（fire-and-forget），从不消费；
// 粒子、音效、HUD 等协作方在每个 tick 结束后统一 Drain
type Event struct {
	Type   EventType    // 事件类型
	Entity ecs.EntityID // 主体实体（可为 0）
	Source ecs.EntityID // 来源实体（可为 0）
	Amount int          // 数值载荷（伤害值、经验值、等级等，按类型解释）
	X      float64      // 事件发生的世界坐标（刷怪点、落雷点等）
	Y      float64
	Kind   string       // 附加种类信息（敌人类型、武器种类等）
	Crit   bool         // 本次伤害是否暴击
}

// Queue 追加式领域事件队列
// 由战斗模拟独占持有；零订阅者时一切照常工作
type Queue struct {
	items []Event
}

// NewQueue 创建空事件队列
func NewQueue() *Queue {
	return &Queue{}
}

// Publish 追加一条事件
// 发布即忘：不阻塞、不失败、不关心是否有人消费
func (q *Queue) Publish(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain 取出全部事件并清空队列
// 协作方在 tick 边界调用，事件顺序与发布顺序一致
func (q *Queue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len 返回当前待消费的事件数量
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
