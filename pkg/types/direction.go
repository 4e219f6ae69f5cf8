package types

// Direction 蛇的移动方向（单位向量）
//
// 坐标约定：行号向下递增，"上" 使行号减小（朝第 0 行移动）
type Direction = Vector2i

var (
	// DirNone 零向量，表示没有方向
	DirNone = Direction{}
	// DirUp 向上（行号减 1）
	DirUp = Direction{X: 0, Y: -1}
	// DirDown 向下（行号加 1）
	DirDown = Direction{X: 0, Y: 1}
	// DirLeft 向左（列号减 1）
	DirLeft = Direction{X: -1, Y: 0}
	// DirRight 向右（列号加 1）
	DirRight = Direction{X: 1, Y: 0}
)

// Reverse 返回相反方向
func (v Vector2i) Reverse() Vector2i {
	return Vector2i{X: -v.X, Y: -v.Y}
}

// IsUnit 判断是否为四个单位方向之一
func (v Vector2i) IsUnit() bool {
	return (v.X == 0 && (v.Y == 1 || v.Y == -1)) || (v.Y == 0 && (v.X == 1 || v.X == -1))
}

// DirectionName 返回方向的可读名称，用于日志
func DirectionName(d Direction) string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return d.String()
	}
}
