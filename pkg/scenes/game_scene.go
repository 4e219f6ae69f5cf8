package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/snake/pkg/config"
	"github.com/gonewx/snake/pkg/game"
	"github.com/gonewx/snake/pkg/utils"
)

// GameScene 游戏进行中的场景
//
// 每帧把方向键转交给会话，推进会话，并在会话结算后切换到结算场景
type GameScene struct {
	ctx   *Context
	swipe *utils.SwipeTracker
}

// NewGameScene 创建游戏场景
func NewGameScene(ctx *Context) *GameScene {
	return &GameScene{ctx: ctx, swipe: utils.NewSwipeTracker()}
}

// Update 处理输入并推进会话
func (s *GameScene) Update(deltaTime float64) {
	for _, dir := range utils.JustPressedDirections() {
		s.ctx.Session.PushDirection(dir)
	}
	if dir, ok := s.swipe.Update(); ok {
		s.ctx.Session.PushDirection(dir)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.ctx.Session.TogglePause()
	}
	s.advance(deltaTime)
}

// advance 推进会话并根据会话状态切换场景
func (s *GameScene) advance(deltaTime float64) {
	s.ctx.Session.Update(deltaTime)
	if s.ctx.Session.State() == game.StateGameOver {
		s.ctx.Scenes.Switch(game.SceneGameOver)
	}
}

// Draw 绘制分数栏和网格
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	session := s.ctx.Session
	layout := s.ctx.Layout()

	drawField(screen, layout, session.Config().Margin)
	drawBoard(screen, session.Board(), layout)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE: %d", session.Score()), 10, 12)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("BEST: %d", session.HighScore()), config.GameWindowWidth-100, 12)

	if session.State() == game.StatePaused {
		drawOverlay(screen)
		ebitenutil.DebugPrintAt(screen, "PAUSED", config.GameWindowWidth/2-18, 300)
	}
}
