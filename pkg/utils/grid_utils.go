package utils

// BoardLayout 网格在屏幕上的布局参数
type BoardLayout struct {
	OriginX  float64 // 网格左上角 X（含边距）
	OriginY  float64 // 网格左上角 Y（含边距）
	TileSize float64 // 每格边长（像素）
	Columns  int
	Rows     int
}

// NewBoardLayout 按照可用宽度计算格子大小（网格总是铺满宽度，与原版面板一致）
//
// 参数:
//   - width: 面板宽度（像素）
//   - margin: 四周边距（墙的厚度）
//   - columns, rows: 网格尺寸
//   - originY: 面板顶部 Y 坐标（上方留给分数栏）
func NewBoardLayout(width, margin float64, columns, rows int, originY float64) BoardLayout {
	tile := 0.0
	if columns > 0 {
		tile = (width - margin*2) / float64(columns)
	}
	return BoardLayout{
		OriginX:  margin,
		OriginY:  originY + margin,
		TileSize: tile,
		Columns:  columns,
		Rows:     rows,
	}
}

// Height 返回网格区域（含上下边距）所需的高度
func (l BoardLayout) Height(margin float64) float64 {
	return l.TileSize*float64(l.Rows) + margin*2
}

// GridToScreen 返回格子左上角的屏幕坐标
func (l BoardLayout) GridToScreen(col, row int) (x, y float64) {
	return l.OriginX + float64(col)*l.TileSize, l.OriginY + float64(row)*l.TileSize
}

// GridToScreenCenter 返回格子中心的屏幕坐标
func (l BoardLayout) GridToScreenCenter(col, row int) (x, y float64) {
	x, y = l.GridToScreen(col, row)
	return x + l.TileSize/2, y + l.TileSize/2
}

// ScreenToGrid 将屏幕坐标转换为网格坐标
//
// 返回:
//   - col, row: 网格坐标
//   - isValid: 是否在网格范围内
func (l BoardLayout) ScreenToGrid(x, y float64) (col, row int, isValid bool) {
	if l.TileSize <= 0 || x < l.OriginX || y < l.OriginY {
		return 0, 0, false
	}
	col = int((x - l.OriginX) / l.TileSize)
	row = int((y - l.OriginY) / l.TileSize)
	if col >= l.Columns || row >= l.Rows {
		return 0, 0, false
	}
	return col, row, true
}
