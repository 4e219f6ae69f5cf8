package board

import "github.com/gonewx/snake/pkg/types"

// Tile 网格中的单个格子
//
// Hidden 只影响显示：隐藏时格子显示为空，但 Content 保持不变（用于闪烁效果）
type Tile struct {
	Content  types.TileContent // 语义内容
	Rotation types.Rotation    // 显示朝向（角度）
	Hidden   bool              // 是否临时隐藏
}

// Visible 返回格子当前应显示的内容
func (t Tile) Visible() types.TileContent {
	if t.Hidden {
		return types.TileEmpty
	}
	return t.Content
}
