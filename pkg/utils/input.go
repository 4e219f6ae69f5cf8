// Package utils 提供通用工具函数
package utils

import (
	"github.com/gonewx/snake/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// directionKeys 键盘按键到方向的映射（方向键 + WASD）
var directionKeys = []struct {
	key ebiten.Key
	dir types.Direction
}{
	{ebiten.KeyArrowUp, types.DirUp},
	{ebiten.KeyW, types.DirUp},
	{ebiten.KeyArrowDown, types.DirDown},
	{ebiten.KeyS, types.DirDown},
	{ebiten.KeyArrowLeft, types.DirLeft},
	{ebiten.KeyA, types.DirLeft},
	{ebiten.KeyArrowRight, types.DirRight},
	{ebiten.KeyD, types.DirRight},
}

// KeyDirection 返回按键对应的方向
func KeyDirection(key ebiten.Key) (types.Direction, bool) {
	for _, dk := range directionKeys {
		if dk.key == key {
			return dk.dir, true
		}
	}
	return types.DirNone, false
}

// JustPressedDirections 返回本帧刚按下的方向键对应的方向（按按键顺序）
func JustPressedDirections() []types.Direction {
	var dirs []types.Direction
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		if dir, ok := KeyDirection(key); ok {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// IsConfirmJustPressed 检查确认键（回车或空格）是否刚刚按下
func IsConfirmJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
func IsJustTouchedOrClicked() bool {
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
