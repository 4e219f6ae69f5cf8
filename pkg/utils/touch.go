package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/snake/pkg/types"
)

// DefaultSwipeThreshold 识别为滑动的最小距离（逻辑像素）
const DefaultSwipeThreshold = 24

// SwipeDirection 根据位移判断滑动方向，取位移较大的轴
//
// 返回:
//   - types.Direction: 滑动方向
//   - bool: 位移小于阈值时返回 false（视为点击）
func SwipeDirection(dx, dy, threshold float64) (types.Direction, bool) {
	ax, ay := dx, dy
	if ax < 0 {
		ax = -ax
	}
	if ay < 0 {
		ay = -ay
	}
	if ax < threshold && ay < threshold {
		return types.DirNone, false
	}
	if ax >= ay {
		if dx > 0 {
			return types.DirRight, true
		}
		return types.DirLeft, true
	}
	if dy > 0 {
		return types.DirDown, true
	}
	return types.DirUp, true
}

// SwipeTracker 跟踪触摸，在手指移动超过阈值时立即给出方向
//
// 一次按下只产生一个方向；手指继续移动时以新的位置作为起点，可以连续转向
type SwipeTracker struct {
	Threshold float64
	active    bool
	id        ebiten.TouchID
	startX    int
	startY    int
}

// NewSwipeTracker 创建滑动跟踪器
func NewSwipeTracker() *SwipeTracker {
	return &SwipeTracker{Threshold: DefaultSwipeThreshold}
}

// Update 每帧调用一次，返回本帧识别出的滑动方向
func (s *SwipeTracker) Update() (types.Direction, bool) {
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		s.active = true
		s.id = id
		s.startX, s.startY = ebiten.TouchPosition(id)
	}
	if !s.active {
		return types.DirNone, false
	}
	if inpututil.IsTouchJustReleased(s.id) {
		s.active = false
		x, y := inpututil.TouchPositionInPreviousTick(s.id)
		return SwipeDirection(float64(x-s.startX), float64(y-s.startY), s.Threshold)
	}

	x, y := ebiten.TouchPosition(s.id)
	dir, ok := SwipeDirection(float64(x-s.startX), float64(y-s.startY), s.Threshold)
	if ok {
		s.startX, s.startY = x, y
	}
	return dir, ok
}
