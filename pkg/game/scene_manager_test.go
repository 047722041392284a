package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// stubScene 记录调用情况的场景桩
type stubScene struct {
	updates int
	draws   int
	lastDT  float64
}

func (s *stubScene) Update(deltaTime float64) {
	s.updates++
	s.lastDT = deltaTime
}

func (s *stubScene) Draw(screen *ebiten.Image) {
	s.draws++
}

// TestSceneManagerSwitchAndUpdate 切换后只有当前场景收到更新
func TestSceneManagerSwitchAndUpdate(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Fatal("Expected no active scene initially")
	}

	first := &stubScene{}
	second := &stubScene{}

	sm.SwitchTo(first)
	sm.Update(0.016)
	if first.updates != 1 || first.lastDT != 0.016 {
		t.Errorf("First scene should receive the update, updates=%d dt=%v", first.updates, first.lastDT)
	}

	sm.SwitchTo(second)
	sm.Update(0.032)
	if first.updates != 1 {
		t.Error("Replaced scene must not receive further updates")
	}
	if second.updates != 1 || second.lastDT != 0.032 {
		t.Errorf("Second scene should receive the update, updates=%d dt=%v", second.updates, second.lastDT)
	}
}

// TestSceneManagerNoScene 无场景时更新与渲染不崩溃
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.Draw(nil)
}
