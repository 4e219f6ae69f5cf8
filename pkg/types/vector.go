package types

import "fmt"

// Vector2i 整数二维坐标（网格列 X、行 Y）
// 值类型，可直接用 == 比较，也可作为 map 键
type Vector2i struct {
	X int
	Y int
}

// Vec 创建坐标的便捷函数
func Vec(x, y int) Vector2i {
	return Vector2i{X: x, Y: y}
}

// Add 返回两个坐标逐分量相加的结果
func (v Vector2i) Add(o Vector2i) Vector2i {
	return Vector2i{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 返回两个坐标逐分量相减的结果
func (v Vector2i) Sub(o Vector2i) Vector2i {
	return Vector2i{X: v.X - o.X, Y: v.Y - o.Y}
}

// ManhattanDistance 返回两点之间的曼哈顿距离
func ManhattanDistance(a, b Vector2i) int {
	return abs(b.X-a.X) + abs(b.Y-a.Y)
}

// String 返回 "(x,y)" 形式
func (v Vector2i) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
