package events

import "testing"

// TestPublishAndDrain 测试事件发布与批量取出
func TestPublishAndDrain(t *testing.T) {
	q := NewQueue()

	q.Publish(Event{Type: EventEnemySpawned, Entity: 1, Kind: "slime"})
	q.Publish(Event{Type: EventEnemyDamaged, Entity: 1, Amount: 12})
	q.Publish(Event{Type: EventEnemyKilled, Entity: 1})

	if q.Len() != 3 {
		t.Errorf("Expected 3 pending events, got %d", q.Len())
	}

	drained := q.Drain()
	if len(drained) != 3 {
		t.Fatalf("Expected 3 drained events, got %d", len(drained))
	}

	// 事件顺序必须与发布顺序一致
	if drained[0].Type != EventEnemySpawned ||
		drained[1].Type != EventEnemyDamaged ||
		drained[2].Type != EventEnemyKilled {
		t.Error("Event order must match publish order")
	}

	// Drain 后队列应为空
	if q.Len() != 0 {
		t.Errorf("Queue should be empty after Drain, got %d", q.Len())
	}
	if q.Drain() != nil {
		t.Error("Draining empty queue should return nil")
	}
}

// TestNilQueueSafe 空指针队列上的操作是无害的空操作
func TestNilQueueSafe(t *testing.T) {
	var q *Queue

	q.Publish(Event{Type: EventPlayerDied})
	if q.Drain() != nil {
		t.Error("Nil queue Drain should return nil")
	}
	if q.Len() != 0 {
		t.Error("Nil queue Len should be 0")
	}
}
