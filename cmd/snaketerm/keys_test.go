package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/snake/pkg/types"
)

// TestClassifyKey 测试按键分类
func TestClassifyKey(t *testing.T) {
	tests := []struct {
		name       string
		key        tcell.Key
		r          rune
		wantAction keyAction
		wantDir    types.Direction
	}{
		{"arrow up", tcell.KeyUp, 0, actionSteer, types.DirUp},
		{"arrow left", tcell.KeyLeft, 0, actionSteer, types.DirLeft},
		{"wasd d", tcell.KeyRune, 'd', actionSteer, types.DirRight},
		{"wasd upper S", tcell.KeyRune, 'S', actionSteer, types.DirDown},
		{"enter", tcell.KeyEnter, 0, actionConfirm, types.DirNone},
		{"space", tcell.KeyRune, ' ', actionConfirm, types.DirNone},
		{"pause", tcell.KeyRune, 'p', actionPause, types.DirNone},
		{"quit q", tcell.KeyRune, 'q', actionQuit, types.DirNone},
		{"quit escape", tcell.KeyEscape, 0, actionQuit, types.DirNone},
		{"unbound rune", tcell.KeyRune, 'x', actionNone, types.DirNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, dir := classifyKey(tcell.NewEventKey(tt.key, tt.r, tcell.ModNone))
			if action != tt.wantAction || dir != tt.wantDir {
				t.Errorf("classifyKey() = %d, %v; want %d, %v", action, dir, tt.wantAction, tt.wantDir)
			}
		})
	}
}
