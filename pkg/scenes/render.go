package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/snake/pkg/board"
	"github.com/gonewx/snake/pkg/snake"
	"github.com/gonewx/snake/pkg/types"
	"github.com/gonewx/snake/pkg/utils"
)

var (
	colorBackground = color.RGBA{R: 24, G: 28, B: 20, A: 255}
	colorWall       = color.RGBA{R: 92, G: 110, B: 60, A: 255}
	colorField      = color.RGBA{R: 156, G: 186, B: 92, A: 255}
	colorApple      = color.RGBA{R: 200, G: 48, B: 40, A: 255}
	colorBonus      = color.RGBA{R: 240, G: 190, B: 40, A: 255}
	colorSnake      = color.RGBA{R: 40, G: 60, B: 30, A: 255}
	colorSnakeHead  = color.RGBA{R: 20, G: 34, B: 16, A: 255}
	colorEye        = color.RGBA{R: 230, G: 230, B: 210, A: 255}
	colorOverlay    = color.RGBA{R: 0, G: 0, B: 0, A: 150}
)

// TileColor 返回图块内容的填充颜色，空格返回 false
func TileColor(content types.TileContent) (color.RGBA, bool) {
	switch {
	case content == types.TileApple:
		return colorApple, true
	case content == types.TileBonus:
		return colorBonus, true
	case content == types.TileSnakeHead:
		return colorSnakeHead, true
	case content.IsSnake():
		return colorSnake, true
	}
	return color.RGBA{}, false
}

// TileInset 图块相对格子边缘的内缩比例；鼓起的蛇身更粗
func TileInset(content types.TileContent) float32 {
	switch content {
	case types.TileSnakeBulge, types.TileSnakeCornerBulge:
		return 0.05
	case types.TileApple, types.TileBonus:
		return 0.2
	case types.TileSnakeTail:
		return 0.25
	}
	return 0.15
}

// drawField 绘制墙和空场地
func drawField(screen *ebiten.Image, layout utils.BoardLayout, margin float64) {
	w := float32(layout.TileSize*float64(layout.Columns) + margin*2)
	h := float32(layout.Height(margin))
	vector.DrawFilledRect(screen, float32(layout.OriginX-margin), float32(layout.OriginY-margin), w, h, colorWall, false)

	fw := float32(layout.TileSize * float64(layout.Columns))
	fh := float32(layout.TileSize * float64(layout.Rows))
	vector.DrawFilledRect(screen, float32(layout.OriginX), float32(layout.OriginY), fw, fh, colorField, false)
}

// drawBoard 绘制所有可见图块
//
// 蛇身每段画成内缩方块，再向相邻段方向补齐连接条，头部在朝向一侧画眼睛
func drawBoard(screen *ebiten.Image, b *board.Board, layout utils.BoardLayout) {
	size := float32(layout.TileSize)
	for p := range b.Positions() {
		content := b.Visible(p.X, p.Y)
		clr, ok := TileColor(content)
		if !ok {
			continue
		}

		x, y := layout.GridToScreen(p.X, p.Y)
		fx, fy := float32(x), float32(y)
		inset := size * TileInset(content)
		vector.DrawFilledRect(screen, fx+inset, fy+inset, size-inset*2, size-inset*2, clr, false)

		if !content.IsSnake() {
			continue
		}
		rotation := b.Get(p.X, p.Y).Rotation
		for _, d := range snake.Connections(content, rotation) {
			drawConnection(screen, fx, fy, size, inset, d, clr)
		}
		if content == types.TileSnakeHead {
			drawEyes(screen, fx, fy, size, rotation.Facing())
		}
	}
}

// drawConnection 从内缩方块向 d 方向的格子边缘补一条连接
func drawConnection(screen *ebiten.Image, x, y, size, inset float32, d types.Direction, clr color.RGBA) {
	switch d {
	case types.DirUp:
		vector.DrawFilledRect(screen, x+inset, y, size-inset*2, inset, clr, false)
	case types.DirDown:
		vector.DrawFilledRect(screen, x+inset, y+size-inset, size-inset*2, inset, clr, false)
	case types.DirLeft:
		vector.DrawFilledRect(screen, x, y+inset, inset, size-inset*2, clr, false)
	case types.DirRight:
		vector.DrawFilledRect(screen, x+size-inset, y+inset, inset, size-inset*2, clr, false)
	}
}

func drawEyes(screen *ebiten.Image, x, y, size float32, facing types.Direction) {
	eye := size * 0.12
	cx, cy := x+size/2, y+size/2
	// 两只眼睛沿朝向前移，并在垂直方向分开
	fx, fy := float32(facing.X)*size*0.18, float32(facing.Y)*size*0.18
	sx, sy := float32(facing.Y)*size*0.18, float32(facing.X)*size*0.18
	vector.DrawFilledRect(screen, cx+fx+sx-eye/2, cy+fy+sy-eye/2, eye, eye, colorEye, false)
	vector.DrawFilledRect(screen, cx+fx-sx-eye/2, cy+fy-sy-eye/2, eye, eye, colorEye, false)
}

// drawOverlay 在整个屏幕上覆盖半透明遮罩
func drawOverlay(screen *ebiten.Image) {
	bounds := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), colorOverlay, false)
}
