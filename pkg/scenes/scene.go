package scenes

import (
	"github.com/gonewx/snake/pkg/config"
	"github.com/gonewx/snake/pkg/game"
	"github.com/gonewx/snake/pkg/utils"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// scoreBarHeight 顶部分数栏高度（像素）
const scoreBarHeight = 40

// Context 场景共享的依赖
type Context struct {
	Session *game.Session
	Scenes  *game.SceneManager
	State   *game.GameState
	Audio   *game.AudioManager // 可为 nil
}

// Layout 返回当前配置下网格在窗口中的布局
func (c *Context) Layout() utils.BoardLayout {
	cfg := c.Session.Config()
	return utils.NewBoardLayout(config.GameWindowWidth, cfg.Margin, cfg.Columns, cfg.Rows, scoreBarHeight)
}

// RegisterAll 创建并注册菜单、游戏和结算三个场景，并切换到菜单
func RegisterAll(ctx *Context) {
	ctx.Scenes.Register(game.SceneMenu, NewMenuScene(ctx))
	ctx.Scenes.Register(game.SceneGame, NewGameScene(ctx))
	ctx.Scenes.Register(game.SceneGameOver, NewGameOverScene(ctx))
	ctx.Scenes.Switch(game.SceneMenu)
}
