// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// TileContent 定义格子中内容的语义标签
type TileContent int

const (
	// TileEmpty 空格子
	TileEmpty TileContent = iota
	// TileApple 苹果（1 分）
	TileApple
	// TileBonus 奖励果实（10 分，限时出现）
	TileBonus
	// TileSnakeHead 蛇头
	TileSnakeHead
	// TileSnakeBody 直线身体
	TileSnakeBody
	// TileSnakeBulge 直线身体（正在消化，鼓起）
	TileSnakeBulge
	// TileSnakeTail 蛇尾
	TileSnakeTail
	// TileSnakeCorner 拐角身体
	TileSnakeCorner
	// TileSnakeCornerBulge 拐角身体（正在消化，鼓起）
	TileSnakeCornerBulge
)

// String 返回格子内容的字符串表示
func (c TileContent) String() string {
	switch c {
	case TileEmpty:
		return "Empty"
	case TileApple:
		return "Apple"
	case TileBonus:
		return "Bonus"
	case TileSnakeHead:
		return "SnakeHead"
	case TileSnakeBody:
		return "SnakeBody"
	case TileSnakeBulge:
		return "SnakeBulge"
	case TileSnakeTail:
		return "SnakeTail"
	case TileSnakeCorner:
		return "SnakeCorner"
	case TileSnakeCornerBulge:
		return "SnakeCornerBulge"
	default:
		return "Unknown"
	}
}

// IsSnake 判断内容是否属于蛇的某一段
func (c TileContent) IsSnake() bool {
	return c >= TileSnakeHead && c <= TileSnakeCornerBulge
}

// IsFood 判断内容是否为可食用的果实
func (c TileContent) IsFood() bool {
	return c == TileApple || c == TileBonus
}

// Rotation 图块旋转角度（度），取值 0 / 90 / 180 / 270
// 0 表示朝上；屏幕坐标下 90 朝左、180 朝下、270 朝右
type Rotation int

const (
	Rotation0   Rotation = 0
	Rotation90  Rotation = 90
	Rotation180 Rotation = 180
	Rotation270 Rotation = 270
)

// NormalizeRotation 将任意角度归一化到 [0, 360)，例如 -90 → 270
func NormalizeRotation(degrees int) Rotation {
	d := degrees % 360
	if d < 0 {
		d += 360
	}
	return Rotation(d)
}

// Facing 返回旋转角度在屏幕坐标下指向的方向，非法角度返回 DirNone
func (r Rotation) Facing() Direction {
	switch NormalizeRotation(int(r)) {
	case Rotation0:
		return DirUp
	case Rotation90:
		return DirLeft
	case Rotation180:
		return DirDown
	case Rotation270:
		return DirRight
	}
	return DirNone
}
