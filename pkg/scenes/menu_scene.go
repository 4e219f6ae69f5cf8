package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/snake/pkg/game"
	"github.com/gonewx/snake/pkg/utils"
)

// MenuScene 开始界面：显示最高分，回车/空格/点击开始游戏，M 切换音效
type MenuScene struct {
	ctx *Context
}

// NewMenuScene 创建开始界面
func NewMenuScene(ctx *Context) *MenuScene {
	return &MenuScene{ctx: ctx}
}

// Update 处理开始和音效开关
func (m *MenuScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		m.toggleSound()
	}
	if utils.IsConfirmJustPressed() || utils.IsJustTouchedOrClicked() {
		m.startGame()
	}
}

func (m *MenuScene) toggleSound() {
	settings := m.ctx.State.Settings
	enabled := settings.ToggleSound()
	if err := settings.Save(); err != nil {
		log.Printf("[MenuScene] Warning: Failed to save settings: %v", err)
	}
	log.Printf("[MenuScene] Sound enabled: %v", enabled)
}

// startGame 开始新的一局并切换到游戏场景
func (m *MenuScene) startGame() {
	if err := m.ctx.Session.Start(); err != nil {
		log.Printf("[MenuScene] Error: Failed to start session: %v", err)
		return
	}
	m.ctx.Scenes.Switch(game.SceneGame)
}

// Draw 绘制空场地和提示文字
func (m *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	layout := m.ctx.Layout()
	drawField(screen, layout, m.ctx.Session.Config().Margin)
	drawBoard(screen, m.ctx.Session.Board(), layout)
	drawOverlay(screen)

	sound := "ON"
	if !m.ctx.State.Settings.GetSettings().SoundEnabled {
		sound = "OFF"
	}
	lines := []string{
		"S N A K E",
		"",
		fmt.Sprintf("BEST: %d", m.ctx.Session.HighScore()),
		"",
	}
	if utils.IsMobile() {
		lines = append(lines, "TAP TO START", "SWIPE TO STEER")
	} else {
		lines = append(lines,
			"ENTER / SPACE / CLICK TO START",
			"ARROWS OR WASD TO STEER",
			"P OR ESC TO PAUSE",
			fmt.Sprintf("M: SOUND %s", sound),
		)
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 100, 240+i*18)
	}
}
