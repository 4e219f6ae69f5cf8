package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/snake/pkg/game"
)

// 网格左上角在终端中的位置（留出分数栏和墙）
const (
	boardOriginX = 1
	boardOriginY = 2
)

// terminalGame 终端版游戏循环
type terminalGame struct {
	screen  tcell.Screen
	session *game.Session
}

func newTerminalGame(screen tcell.Screen, session *game.Session) *terminalGame {
	return &terminalGame{screen: screen, session: session}
}

// handleKey 处理一次按键，返回 false 表示退出
func (g *terminalGame) handleKey(ev *tcell.EventKey) bool {
	action, dir := classifyKey(ev)
	switch action {
	case actionQuit:
		return false
	case actionSteer:
		g.session.PushDirection(dir)
	case actionPause:
		g.session.TogglePause()
	case actionConfirm:
		switch g.session.State() {
		case game.StateMenu, game.StateGameOver:
			if err := g.session.Start(); err != nil {
				log.Printf("[Terminal] Failed to start session: %v", err)
			}
		}
	}
	return true
}

// run 主循环：按键事件来自 PollEvent 协程，状态推进和绘制由 ticker 驱动
func (g *terminalGame) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	g.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !g.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				g.screen.Sync()
			}
		case now := <-ticker.C:
			g.session.Update(now.Sub(last).Seconds())
			last = now
			g.draw()
		}
	}
}

// draw 绘制分数栏、墙、网格和状态提示
func (g *terminalGame) draw() {
	g.screen.Clear()
	b := g.session.Board()
	width := b.Columns()*cellWidth + 2

	drawText(g.screen, 0, 0, styleText, fmt.Sprintf("SCORE %d", g.session.Score()))
	best := fmt.Sprintf("BEST %d", g.session.HighScore())
	drawText(g.screen, width-len(best), 0, styleText, best)

	for x := 0; x < width; x++ {
		g.screen.SetContent(x, boardOriginY-1, '▀', nil, styleWall)
		g.screen.SetContent(x, boardOriginY+b.Rows(), '▄', nil, styleWall)
	}
	for y := 0; y < b.Rows(); y++ {
		g.screen.SetContent(boardOriginX-1, boardOriginY+y, '█', nil, styleWall)
		g.screen.SetContent(width-1, boardOriginY+y, '█', nil, styleWall)
	}

	for p := range b.Positions() {
		tile := b.At(p)
		mainc, filler, style := Glyph(b.Visible(p.X, p.Y), tile.Rotation)
		x := boardOriginX + p.X*cellWidth
		y := boardOriginY + p.Y
		g.screen.SetContent(x, y, mainc, nil, style)
		g.screen.SetContent(x+1, y, filler, nil, style)
	}

	statusY := boardOriginY + b.Rows() + 1
	switch g.session.State() {
	case game.StateMenu:
		drawText(g.screen, 0, statusY, styleText, "ENTER: START  ARROWS/WASD: STEER  P: PAUSE  Q: QUIT")
	case game.StatePaused:
		drawText(g.screen, 0, statusY, styleText, "PAUSED - P TO RESUME")
	case game.StateGameOver:
		drawText(g.screen, 0, statusY, styleText, fmt.Sprintf("GAME OVER (%s) - ENTER TO PLAY AGAIN", g.session.Reason()))
	}
	g.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
