// Package board 实现贪吃蛇的网格占用模型
//
// 网格是 Columns × Rows 的格子矩阵，按行优先顺序存储；
// 每个格子保存内容标签、朝向以及隐藏标记
package board

import (
	"fmt"
	"iter"

	"github.com/gonewx/snake/pkg/types"
)

// Board 固定尺寸的游戏网格
type Board struct {
	columns int
	rows    int
	tiles   []Tile // 行优先：index = y*columns + x
}

// NewBoard 创建网格，所有格子初始为空、朝向 0、未隐藏
//
// 参数:
//   - columns: 列数（水平尺寸），必须 > 0
//   - rows: 行数（垂直尺寸），必须 > 0
//
// 返回:
//   - *Board: 网格实例
//   - error: 尺寸非法时返回 ErrInvalidDimension
func NewBoard(columns, rows int) (*Board, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: columns=%d, rows=%d", ErrInvalidDimension, columns, rows)
	}
	return &Board{
		columns: columns,
		rows:    rows,
		tiles:   make([]Tile, columns*rows),
	}, nil
}

// Columns 返回列数
func (b *Board) Columns() int { return b.columns }

// Rows 返回行数
func (b *Board) Rows() int { return b.rows }

// InBounds 检查坐标是否位于网格内
func (b *Board) InBounds(p types.Vector2i) bool {
	return p.X >= 0 && p.X < b.columns && p.Y >= 0 && p.Y < b.rows
}

// index 计算格子下标，越界时 panic
func (b *Board) index(x, y int) int {
	if x < 0 || x >= b.columns || y < 0 || y >= b.rows {
		panic(&OutOfRangeError{X: x, Y: y, Columns: b.columns, Rows: b.rows})
	}
	return y*b.columns + x
}

// Get 返回指定格子的副本
func (b *Board) Get(x, y int) Tile {
	return b.tiles[b.index(x, y)]
}

// At 按坐标返回格子副本
func (b *Board) At(p types.Vector2i) Tile {
	return b.Get(p.X, p.Y)
}

// Set 设置格子内容，同时将朝向重置为 0
func (b *Board) Set(x, y int, content types.TileContent) {
	t := &b.tiles[b.index(x, y)]
	t.Content = content
	t.Rotation = types.Rotation0
}

// SetAt 按坐标设置格子内容
func (b *Board) SetAt(p types.Vector2i, content types.TileContent) {
	b.Set(p.X, p.Y, content)
}

// SetRotation 设置格子朝向，不影响内容
func (b *Board) SetRotation(x, y int, rotation types.Rotation) {
	b.tiles[b.index(x, y)].Rotation = rotation
}

// SetHidden 设置隐藏标记，不影响内容
func (b *Board) SetHidden(x, y int, hidden bool) {
	b.tiles[b.index(x, y)].Hidden = hidden
}

// Visible 返回格子当前显示的内容（隐藏时为空）
func (b *Board) Visible(x, y int) types.TileContent {
	return b.Get(x, y).Visible()
}

// EmptyPositions 按行优先顺序惰性遍历所有内容为空的格子
//
// 返回的序列可以重复遍历，每次都反映网格的当前状态
func (b *Board) EmptyPositions() iter.Seq[types.Vector2i] {
	return func(yield func(types.Vector2i) bool) {
		for i, t := range b.tiles {
			if t.Content != types.TileEmpty {
				continue
			}
			if !yield(types.Vector2i{X: i % b.columns, Y: i / b.columns}) {
				return
			}
		}
	}
}

// Positions 按行优先顺序遍历全部坐标
func (b *Board) Positions() iter.Seq[types.Vector2i] {
	return func(yield func(types.Vector2i) bool) {
		for y := 0; y < b.rows; y++ {
			for x := 0; x < b.columns; x++ {
				if !yield(types.Vector2i{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Reset 原地清空所有格子，不重新分配内存
func (b *Board) Reset() {
	for i := range b.tiles {
		b.tiles[i] = Tile{}
	}
}
