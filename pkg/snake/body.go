package snake

import (
	"iter"

	"github.com/gonewx/snake/pkg/types"
)

// Body 蛇身坐标的双端队列（环形缓冲区）
//
// 顺序为尾部（最早）到头部（最新）；At(0) 是尾，At(Len()-1) 是头。
// Body 本身不做重复检查，唯一性由会话控制器的碰撞检测保证
type Body struct {
	buf   []types.Vector2i
	start int // 尾部在 buf 中的位置
	size  int
}

// NewBody 创建指定初始容量的空蛇身
func NewBody(capacity int) *Body {
	if capacity < 1 {
		capacity = 1
	}
	return &Body{buf: make([]types.Vector2i, capacity)}
}

// Len 返回段数
func (b *Body) Len() int { return b.size }

// At 返回第 i 段（0 为尾部）
func (b *Body) At(i int) types.Vector2i {
	if i < 0 || i >= b.size {
		panic("snake: body index out of range")
	}
	return b.buf[(b.start+i)%len(b.buf)]
}

// Head 返回头部坐标
func (b *Body) Head() types.Vector2i { return b.At(b.size - 1) }

// Tail 返回尾部坐标
func (b *Body) Tail() types.Vector2i { return b.At(0) }

// PushHead 在头部追加一段
func (b *Body) PushHead(p types.Vector2i) {
	if b.size == len(b.buf) {
		b.grow()
	}
	b.buf[(b.start+b.size)%len(b.buf)] = p
	b.size++
}

// PopTail 移除并返回尾部坐标
func (b *Body) PopTail() types.Vector2i {
	tail := b.Tail()
	b.start = (b.start + 1) % len(b.buf)
	b.size--
	return tail
}

// Contains 检查坐标是否属于蛇身
func (b *Body) Contains(p types.Vector2i) bool {
	for i := 0; i < b.size; i++ {
		if b.At(i) == p {
			return true
		}
	}
	return false
}

// All 按尾到头的顺序遍历
func (b *Body) All() iter.Seq[types.Vector2i] {
	return func(yield func(types.Vector2i) bool) {
		for i := 0; i < b.size; i++ {
			if !yield(b.At(i)) {
				return
			}
		}
	}
}

// Slice 返回尾到头顺序的副本
func (b *Body) Slice() []types.Vector2i {
	out := make([]types.Vector2i, b.size)
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}

// Clear 清空蛇身，保留底层缓冲区
func (b *Body) Clear() {
	b.start = 0
	b.size = 0
}

// grow 容量翻倍并把数据整理为从 0 开始
func (b *Body) grow() {
	next := make([]types.Vector2i, len(b.buf)*2)
	for i := 0; i < b.size; i++ {
		next[i] = b.At(i)
	}
	b.buf = next
	b.start = 0
}
