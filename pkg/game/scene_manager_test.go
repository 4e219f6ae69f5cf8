package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	entered      int
	deltaTime    float64
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *MockScene) OnEnter() {
	m.entered++
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Error("Expected current scene to be nil initially")
	}
	// 没有场景时 Update/Draw 不应 panic
	sm.Update(0.016)
	sm.Draw(nil)
}

// TestSceneManagerUpdateAndDraw 验证 Update/Draw 转发给当前场景
func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Update(0.016)
	sm.Draw(nil)

	if !mockScene.updateCalled || !mockScene.drawCalled {
		t.Errorf("update=%v draw=%v, want both true", mockScene.updateCalled, mockScene.drawCalled)
	}
	if mockScene.deltaTime != 0.016 {
		t.Errorf("Expected deltaTime 0.016, got %.3f", mockScene.deltaTime)
	}
	if mockScene.entered != 1 {
		t.Errorf("OnEnter called %d times, want 1", mockScene.entered)
	}
}

// TestSceneManagerSwitchRegistered 验证按 ID 切换已注册场景
func TestSceneManagerSwitchRegistered(t *testing.T) {
	sm := NewSceneManager()
	menu := &MockScene{}
	play := &MockScene{}
	sm.Register(SceneMenu, menu)
	sm.Register(SceneGame, play)

	tests := []struct {
		name      string
		id        SceneID
		wantOK    bool
		wantScene Scene
		wantID    SceneID
	}{
		{"menu", SceneMenu, true, menu, SceneMenu},
		{"game", SceneGame, true, play, SceneGame},
		{"unregistered keeps current", SceneGameOver, false, play, SceneGame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sm.Switch(tt.id); got != tt.wantOK {
				t.Errorf("Switch(%s) = %v, want %v", tt.id, got, tt.wantOK)
			}
			if sm.GetCurrentScene() != tt.wantScene {
				t.Error("unexpected current scene")
			}
			if sm.CurrentID() != tt.wantID {
				t.Errorf("CurrentID() = %s, want %s", sm.CurrentID(), tt.wantID)
			}
		})
	}

	sm.Update(0.016)
	if menu.updateCalled {
		t.Error("inactive scene should not be updated")
	}
	if !play.updateCalled {
		t.Error("active scene was not updated")
	}
}
