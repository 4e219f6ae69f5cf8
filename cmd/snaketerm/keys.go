package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/snake/pkg/types"
)

// keyAction 按键对应的操作
type keyAction int

const (
	actionNone keyAction = iota
	actionSteer
	actionConfirm
	actionPause
	actionQuit
)

var runeDirections = map[rune]types.Direction{
	'w': types.DirUp, 'W': types.DirUp,
	's': types.DirDown, 'S': types.DirDown,
	'a': types.DirLeft, 'A': types.DirLeft,
	'd': types.DirRight, 'D': types.DirRight,
}

// classifyKey 把终端按键转换为操作，转向操作同时返回方向
func classifyKey(ev *tcell.EventKey) (keyAction, types.Direction) {
	switch ev.Key() {
	case tcell.KeyUp:
		return actionSteer, types.DirUp
	case tcell.KeyDown:
		return actionSteer, types.DirDown
	case tcell.KeyLeft:
		return actionSteer, types.DirLeft
	case tcell.KeyRight:
		return actionSteer, types.DirRight
	case tcell.KeyEnter:
		return actionConfirm, types.DirNone
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit, types.DirNone
	case tcell.KeyRune:
		r := ev.Rune()
		if d, ok := runeDirections[r]; ok {
			return actionSteer, d
		}
		switch r {
		case ' ':
			return actionConfirm, types.DirNone
		case 'p', 'P':
			return actionPause, types.DirNone
		case 'q', 'Q':
			return actionQuit, types.DirNone
		}
	}
	return actionNone, types.DirNone
}
