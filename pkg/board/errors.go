package board

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension 网格尺寸非法（列数或行数 <= 0）
var ErrInvalidDimension = errors.New("invalid board dimension")

// OutOfRangeError 访问越界格子时 panic 使用的错误类型
//
// 越界访问属于调用方的编程错误（会话控制器应先做边界检查），
// 因此以 panic 形式暴露，而不是返回默认值
type OutOfRangeError struct {
	X, Y          int
	Columns, Rows int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("board position out of range: x=%d, y=%d (valid range: x 0-%d, y 0-%d)",
		e.X, e.Y, e.Columns-1, e.Rows-1)
}
