package snake

import (
	"fmt"

	"github.com/gonewx/snake/pkg/types"
)

// Shape 某一段蛇身推导出的显示形态
type Shape struct {
	Position types.Vector2i
	Content  types.TileContent
	Rotation types.Rotation
}

// cornerKey 拐角查表的键
//
// horizontalIsPrev 表示与当前段横向相邻（x 不同）的是靠尾一侧的邻居；
// dx 是横向邻居相对当前段的 x 符号，dy 是纵向邻居相对当前段的 y 符号
type cornerKey struct {
	horizontalIsPrev bool
	dx, dy           int
}

// cornerRotations 拐角的 8 种符号组合到 4 个朝向的映射
var cornerRotations = map[cornerKey]types.Rotation{
	{horizontalIsPrev: true, dx: 1, dy: -1}:   types.Rotation0,
	{horizontalIsPrev: false, dx: 1, dy: -1}:  types.Rotation0,
	{horizontalIsPrev: true, dx: -1, dy: -1}:  types.Rotation90,
	{horizontalIsPrev: false, dx: -1, dy: -1}: types.Rotation90,
	{horizontalIsPrev: true, dx: -1, dy: 1}:   types.Rotation180,
	{horizontalIsPrev: false, dx: -1, dy: 1}:  types.Rotation180,
	{horizontalIsPrev: true, dx: 1, dy: 1}:    types.Rotation270,
	{horizontalIsPrev: false, dx: 1, dy: 1}:   types.Rotation270,
}

// DeriveShapes 根据每段与相邻段的几何关系推导形态和朝向
//
// 参数:
//   - body: 尾到头顺序的坐标
//   - bulged: 判断某坐标是否处于鼓起（消化中）状态，可为 nil
//
// 返回:
//   - []Shape: 与 body 一一对应的形态；纯函数，相同输入总是得到相同输出
func DeriveShapes(body []types.Vector2i, bulged func(types.Vector2i) bool) []Shape {
	n := len(body)
	if n == 0 {
		return nil
	}
	if bulged == nil {
		bulged = func(types.Vector2i) bool { return false }
	}

	shapes := make([]Shape, n)

	head := body[n-1]
	if n == 1 {
		shapes[0] = Shape{Position: head, Content: types.TileSnakeHead, Rotation: types.Rotation0}
		return shapes
	}

	shapes[n-1] = Shape{
		Position: head,
		Content:  types.TileSnakeHead,
		Rotation: endRotation(head, body[n-2]),
	}

	for i := 1; i < n-1; i++ {
		shapes[i] = interiorShape(body[i-1], body[i], body[i+1], bulged(body[i]))
	}

	shapes[0] = Shape{
		Position: body[0],
		Content:  types.TileSnakeTail,
		Rotation: endRotation(body[0], body[1]),
	}
	return shapes
}

// endRotation 头部或尾部的朝向，由唯一邻居的方位决定
func endRotation(end, neighbour types.Vector2i) types.Rotation {
	switch {
	case neighbour.Y > end.Y:
		return types.Rotation0
	case neighbour.Y < end.Y:
		return types.Rotation180
	case neighbour.X > end.X:
		return types.Rotation90
	case neighbour.X < end.X:
		return types.NormalizeRotation(-90)
	}
	return types.Rotation0
}

// interiorShape 中间段：直线或拐角，以及是否鼓起
func interiorShape(prev, cur, next types.Vector2i, bulge bool) Shape {
	switch {
	case prev.X == next.X:
		return Shape{Position: cur, Content: straightContent(bulge), Rotation: types.Rotation0}
	case prev.Y == next.Y:
		return Shape{Position: cur, Content: straightContent(bulge), Rotation: types.Rotation90}
	}

	var key cornerKey
	if prev.X != cur.X {
		key = cornerKey{horizontalIsPrev: true, dx: sign(prev.X - cur.X), dy: sign(next.Y - cur.Y)}
	} else {
		key = cornerKey{horizontalIsPrev: false, dx: sign(next.X - cur.X), dy: sign(prev.Y - cur.Y)}
	}

	rotation, ok := cornerRotations[key]
	if !ok {
		panic(fmt.Sprintf("snake: segment %v has non-adjacent neighbours %v and %v", cur, prev, next))
	}

	content := types.TileSnakeCorner
	if bulge {
		content = types.TileSnakeCornerBulge
	}
	return Shape{Position: cur, Content: content, Rotation: rotation}
}

func straightContent(bulge bool) types.TileContent {
	if bulge {
		return types.TileSnakeBulge
	}
	return types.TileSnakeBody
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

// Connections 返回某种形态与相邻段相连的方向（屏幕坐标）
//
// 头尾连向唯一的邻居；直线段连向两端；拐角连向朝向方向和它顺时针旁边的方向。
// 单段蛇（旋转 0 的头部）返回朝下，渲染时可以忽略
func Connections(content types.TileContent, rotation types.Rotation) []types.Direction {
	facing := rotation.Facing()
	switch content {
	case types.TileSnakeHead, types.TileSnakeTail:
		return []types.Direction{facing.Reverse()}
	case types.TileSnakeBody, types.TileSnakeBulge:
		return []types.Direction{facing, facing.Reverse()}
	case types.TileSnakeCorner, types.TileSnakeCornerBulge:
		return []types.Direction{facing, types.NormalizeRotation(int(rotation) + 270).Facing()}
	}
	return nil
}
