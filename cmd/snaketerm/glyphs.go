package main

import (
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/snake/pkg/snake"
	"github.com/gonewx/snake/pkg/types"
)

// cellWidth 每个网格格子占用的终端列数（终端字符约为 1:2 的宽高比）
const cellWidth = 2

var (
	styleDefault = tcell.StyleDefault
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleApple   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBonus   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleSnake   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHead    = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// headGlyphs 头部按朝向显示的箭头
var headGlyphs = map[types.Direction]rune{
	types.DirUp:    '▲',
	types.DirDown:  '▼',
	types.DirLeft:  '◀',
	types.DirRight: '▶',
}

// cornerGlyph 按两个连接方向选择制表符
func cornerGlyph(conns []types.Direction) rune {
	up := slices.Contains(conns, types.DirUp)
	right := slices.Contains(conns, types.DirRight)
	switch {
	case up && right:
		return '╚'
	case up:
		return '╝'
	case right:
		return '╔'
	default:
		return '╗'
	}
}

// Glyph 返回一个格子的两个终端字符和样式
//
// 第二个字符用于向右连接：蛇身连向右侧时画横线，否则留空
func Glyph(content types.TileContent, rotation types.Rotation) (main, filler rune, style tcell.Style) {
	filler = ' '
	switch content {
	case types.TileEmpty:
		return ' ', ' ', styleDefault
	case types.TileApple:
		return '●', ' ', styleApple
	case types.TileBonus:
		return '★', ' ', styleBonus
	}

	conns := snake.Connections(content, rotation)
	if slices.Contains(conns, types.DirRight) {
		filler = '═'
	}

	switch content {
	case types.TileSnakeHead:
		return headGlyphs[rotation.Facing()], filler, styleHead
	case types.TileSnakeTail:
		return '•', filler, styleSnake
	case types.TileSnakeBulge:
		return '◆', filler, styleSnake.Bold(true)
	case types.TileSnakeBody:
		if rotation == types.Rotation0 {
			return '║', filler, styleSnake
		}
		return '═', filler, styleSnake
	case types.TileSnakeCornerBulge:
		return cornerGlyph(conns), filler, styleSnake.Bold(true)
	case types.TileSnakeCorner:
		return cornerGlyph(conns), filler, styleSnake
	}
	return '?', ' ', styleDefault
}
