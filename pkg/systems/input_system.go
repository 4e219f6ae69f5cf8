package systems

import (
	"github.com/gonewx/snake/pkg/types"
)

// maxQueuedDirections 方向队列上限，超出的按键被丢弃
const maxQueuedDirections = 8

// DirectionInputSystem 方向指令队列
//
// 每个 tick 最多取出一个方向；队列为空时沿用上一次应用的方向。
// 与当前方向（队尾方向或上次应用的方向）相反的指令会被静默丢弃
type DirectionInputSystem struct {
	queue []types.Direction
	last  types.Direction // 最近一次被 Next 取出的方向
}

// NewDirectionInputSystem 创建方向输入系统，initial 为初始方向
func NewDirectionInputSystem(initial types.Direction) *DirectionInputSystem {
	s := &DirectionInputSystem{}
	s.Reset(initial)
	return s
}

// Reset 清空队列并把 initial 作为第一个待执行方向
func (s *DirectionInputSystem) Reset(initial types.Direction) {
	s.queue = append(s.queue[:0], initial)
	s.last = initial
}

// Current 返回当前方向：队尾方向，队列为空时为上次应用的方向
func (s *DirectionInputSystem) Current() types.Direction {
	if len(s.queue) == 0 {
		return s.last
	}
	return s.queue[len(s.queue)-1]
}

// Push 加入一个方向指令
//
// 返回:
//   - bool: 是否被接受（非单位方向、反向或队列已满时返回 false）
func (s *DirectionInputSystem) Push(d types.Direction) bool {
	if !d.IsUnit() {
		return false
	}
	if d == s.Current().Reverse() {
		return false
	}
	if len(s.queue) >= maxQueuedDirections {
		return false
	}
	s.queue = append(s.queue, d)
	return true
}

// Next 取出下一个方向；队列为空时返回上次应用的方向
func (s *DirectionInputSystem) Next() types.Direction {
	if len(s.queue) == 0 {
		return s.last
	}
	s.last = s.queue[0]
	s.queue = s.queue[1:]
	return s.last
}

// Pending 返回队列中待执行的指令数量
func (s *DirectionInputSystem) Pending() int {
	return len(s.queue)
}
