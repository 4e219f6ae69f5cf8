package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/snake/pkg/config"
	"github.com/gonewx/snake/pkg/game"
	"github.com/gonewx/snake/pkg/utils"
)

// GameOverScene 结算界面：回车/点击再来一局，Esc 回到菜单
type GameOverScene struct {
	ctx *Context
	// newBest 本局是否刷新了最高分
	newBest bool
}

// NewGameOverScene 创建结算界面
func NewGameOverScene(ctx *Context) *GameOverScene {
	return &GameOverScene{ctx: ctx}
}

// OnEnter 记录本局是否刷新最高分
func (s *GameOverScene) OnEnter() {
	session := s.ctx.Session
	s.newBest = session.Score() > 0 && session.Score() == session.HighScore()
}

// Update 处理再来一局和返回菜单
func (s *GameOverScene) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.backToMenu()
	case utils.IsConfirmJustPressed() || utils.IsJustTouchedOrClicked():
		s.restart()
	}
}

func (s *GameOverScene) backToMenu() {
	s.ctx.Session.ReturnToMenu()
	s.ctx.Scenes.Switch(game.SceneMenu)
}

func (s *GameOverScene) restart() {
	if err := s.ctx.Session.Start(); err != nil {
		log.Printf("[GameOverScene] Error: Failed to restart session: %v", err)
		s.backToMenu()
		return
	}
	s.ctx.Scenes.Switch(game.SceneGame)
}

// Draw 在最终局面上绘制结算面板
func (s *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	session := s.ctx.Session
	layout := s.ctx.Layout()
	drawField(screen, layout, session.Config().Margin)
	drawBoard(screen, session.Board(), layout)
	drawOverlay(screen)

	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("SCORE: %d", session.Score()),
		fmt.Sprintf("BEST:  %d", session.HighScore()),
	}
	if s.newBest {
		lines = append(lines, "NEW BEST!")
	}
	lines = append(lines, "", "ENTER: PLAY AGAIN", "ESC: MENU")
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, config.GameWindowWidth/2-60, 260+i*18)
	}
}
