package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager controls which scene is active.
// Only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentID    SceneID
	scenes       map[SceneID]Scene
}

// NewSceneManager creates a SceneManager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		scenes: make(map[SceneID]Scene),
	}
}

// Register 注册一个可通过 Switch 切换的场景
func (sm *SceneManager) Register(id SceneID, scene Scene) {
	sm.scenes[id] = scene
}

// SwitchTo changes the active scene to the provided scene.
// 如果场景实现了 Enterable，会先调用 OnEnter
func (sm *SceneManager) SwitchTo(scene Scene) {
	if e, ok := scene.(Enterable); ok {
		e.OnEnter()
	}
	sm.currentScene = scene
}

// Switch 切换到已注册的场景
//
// 返回：
//   - bool: 场景未注册时返回 false，当前场景保持不变
func (sm *SceneManager) Switch(id SceneID) bool {
	scene, ok := sm.scenes[id]
	if !ok {
		log.Printf("[SceneManager] 错误: 场景未注册: %s", id)
		return false
	}
	log.Printf("[SceneManager] 切换场景: %s -> %s", sm.currentID, id)
	sm.currentID = id
	sm.SwitchTo(scene)
	return true
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentID 返回通过 Switch 切换的当前场景标识
func (sm *SceneManager) CurrentID() SceneID {
	return sm.currentID
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
