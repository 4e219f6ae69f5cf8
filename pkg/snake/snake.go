// Package snake 实现蛇身状态引擎
//
// Snake 持有有序的蛇身坐标和鼓起标记集合，负责推进、生长，
// 并在每次变化后把每一段的形态和朝向写回网格
package snake

import (
	"errors"
	"fmt"
	"iter"

	"github.com/gonewx/snake/pkg/board"
	"github.com/gonewx/snake/pkg/types"
)

// ErrInvalidLength 初始长度非法（< 1 或生成的格子超出网格）
var ErrInvalidLength = errors.New("invalid snake length")

// Snake 蛇身状态引擎
//
// 碰撞和边界检查由会话控制器负责，引擎只在前置条件被破坏时 panic
type Snake struct {
	board  *board.Board
	body   *Body
	bulges map[types.Vector2i]struct{}
}

// New 创建绑定到指定网格的空蛇，需要调用 Reset 初始化
func New(b *board.Board) *Snake {
	return &Snake{
		board:  b,
		body:   NewBody(16),
		bulges: make(map[types.Vector2i]struct{}),
	}
}

// Reset 把蛇重置到起点
//
// 蛇身从 start 开始向上（y 递减）延伸 length 格：start 为尾，最上方的格子为头。
//
// 参数:
//   - start: 尾部坐标
//   - length: 段数，必须 >= 1
//
// 返回:
//   - error: 长度非法或任一格子越界时返回 ErrInvalidLength，蛇和网格保持不变
func (s *Snake) Reset(start types.Vector2i, length int) error {
	if length < 1 {
		return fmt.Errorf("%w: length=%d", ErrInvalidLength, length)
	}
	top := types.Vector2i{X: start.X, Y: start.Y - (length - 1)}
	if !s.board.InBounds(start) || !s.board.InBounds(top) {
		return fmt.Errorf("%w: %d cells from %v leave the %dx%d board",
			ErrInvalidLength, length, start, s.board.Columns(), s.board.Rows())
	}

	for p := range s.body.All() {
		s.clearTile(p)
	}
	s.body.Clear()
	clear(s.bulges)

	for i := 0; i < length; i++ {
		s.body.PushHead(types.Vector2i{X: start.X, Y: start.Y - i})
	}

	s.refresh()
	return nil
}

// NextHeadPosition 返回沿 direction 前进一格后的头部坐标
//
// 纯函数，不修改状态，也不检查边界
func (s *Snake) NextHeadPosition(direction types.Direction) types.Vector2i {
	return s.body.Head().Add(direction)
}

// Move 沿 direction 前进一格
//
// grow 为 true 时保留尾部并把新头标记为鼓起；否则移除尾部并清空其格子。
// 调用方必须保证新头在网格内且不与蛇身（不增长时不含尾部）重叠
func (s *Snake) Move(direction types.Direction, grow bool) {
	newHead := s.NextHeadPosition(direction)
	if !s.board.InBounds(newHead) {
		panic(&board.OutOfRangeError{X: newHead.X, Y: newHead.Y, Columns: s.board.Columns(), Rows: s.board.Rows()})
	}

	s.body.PushHead(newHead)
	if grow {
		s.bulges[newHead] = struct{}{}
	} else {
		tail := s.body.PopTail()
		delete(s.bulges, tail)
		s.clearTile(tail)
	}

	s.refresh()
}

// Contains 检查坐标是否被蛇身占据
func (s *Snake) Contains(p types.Vector2i) bool {
	return s.body.Contains(p)
}

// WithoutTail 按尾到头顺序遍历除尾部以外的所有段
//
// 不增长的移动会在同一步腾出尾部格子，因此碰撞检测排除尾部
func (s *Snake) WithoutTail() iter.Seq[types.Vector2i] {
	return func(yield func(types.Vector2i) bool) {
		for i := 1; i < s.body.Len(); i++ {
			if !yield(s.body.At(i)) {
				return
			}
		}
	}
}

// WithoutTailContains 检查坐标是否属于除尾部以外的蛇身
func (s *Snake) WithoutTailContains(p types.Vector2i) bool {
	for q := range s.WithoutTail() {
		if q == p {
			return true
		}
	}
	return false
}

// Hide 隐藏所有蛇身格子（不改变内容）
func (s *Snake) Hide() {
	s.setHidden(true)
}

// Show 取消隐藏所有蛇身格子
func (s *Snake) Show() {
	s.setHidden(false)
}

// Head 返回头部坐标
func (s *Snake) Head() types.Vector2i { return s.body.Head() }

// Tail 返回尾部坐标
func (s *Snake) Tail() types.Vector2i { return s.body.Tail() }

// Len 返回段数
func (s *Snake) Len() int { return s.body.Len() }

// Positions 按尾到头顺序返回所有坐标的副本
func (s *Snake) Positions() []types.Vector2i { return s.body.Slice() }

// All 按尾到头顺序遍历所有坐标
func (s *Snake) All() iter.Seq[types.Vector2i] { return s.body.All() }

// IsBulge 检查坐标是否处于鼓起状态
func (s *Snake) IsBulge(p types.Vector2i) bool {
	_, ok := s.bulges[p]
	return ok
}

// BulgeCount 返回鼓起标记数量
func (s *Snake) BulgeCount() int { return len(s.bulges) }

func (s *Snake) setHidden(hidden bool) {
	for p := range s.body.All() {
		s.board.SetHidden(p.X, p.Y, hidden)
	}
}

func (s *Snake) clearTile(p types.Vector2i) {
	s.board.Set(p.X, p.Y, types.TileEmpty)
	s.board.SetHidden(p.X, p.Y, false)
}

// refresh 对整条蛇重新推导形态并写入网格
//
// 每次移动至少会改变两段的分类（旧头变身体、新尾），因此总是全量推导
func (s *Snake) refresh() {
	for _, shape := range DeriveShapes(s.body.Slice(), s.IsBulge) {
		s.board.Set(shape.Position.X, shape.Position.Y, shape.Content)
		s.board.SetRotation(shape.Position.X, shape.Position.Y, shape.Rotation)
	}
}
