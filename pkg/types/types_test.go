package types

import "testing"

// TestVectorAdd 测试坐标加法与相等比较
func TestVectorAdd(t *testing.T) {
	got := Vec(5, 13).Add(DirUp)
	if got != Vec(5, 12) {
		t.Errorf("Vec(5,13)+Up = %v, want (5,12)", got)
	}
	if Vec(1, 2) != (Vector2i{X: 1, Y: 2}) {
		t.Error("component-wise equality failed")
	}
}

// TestManhattanDistance 测试曼哈顿距离
func TestManhattanDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector2i
		want int
	}{
		{"same point", Vec(3, 3), Vec(3, 3), 0},
		{"horizontal", Vec(0, 0), Vec(4, 0), 4},
		{"diagonal negative", Vec(2, 5), Vec(-1, 1), 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ManhattanDistance(tt.a, tt.b); got != tt.want {
				t.Errorf("ManhattanDistance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := ManhattanDistance(tt.b, tt.a); got != tt.want {
				t.Errorf("distance should be symmetric, got %d", got)
			}
		})
	}
}

// TestDirectionReverse 测试方向取反和单位向量判断
func TestDirectionReverse(t *testing.T) {
	pairs := [][2]Direction{{DirUp, DirDown}, {DirLeft, DirRight}}
	for _, p := range pairs {
		if p[0].Reverse() != p[1] || p[1].Reverse() != p[0] {
			t.Errorf("%s and %s should be reverses", DirectionName(p[0]), DirectionName(p[1]))
		}
	}
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if !d.IsUnit() {
			t.Errorf("%v should be a unit direction", d)
		}
	}
	if DirNone.IsUnit() || Vec(1, 1).IsUnit() || Vec(0, 2).IsUnit() {
		t.Error("non-unit vectors reported as unit")
	}
}

// TestNormalizeRotation 测试角度归一化
func TestNormalizeRotation(t *testing.T) {
	tests := []struct {
		in   int
		want Rotation
	}{
		{0, Rotation0},
		{90, Rotation90},
		{-90, Rotation270},
		{360, Rotation0},
		{450, Rotation90},
		{-180, Rotation180},
	}
	for _, tt := range tests {
		if got := NormalizeRotation(tt.in); got != tt.want {
			t.Errorf("NormalizeRotation(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// TestTileContentCategories 测试内容标签分类
func TestTileContentCategories(t *testing.T) {
	snakeParts := []TileContent{TileSnakeHead, TileSnakeBody, TileSnakeBulge, TileSnakeTail, TileSnakeCorner, TileSnakeCornerBulge}
	for _, c := range snakeParts {
		if !c.IsSnake() {
			t.Errorf("%s should be a snake part", c)
		}
		if c.IsFood() {
			t.Errorf("%s should not be food", c)
		}
	}
	for _, c := range []TileContent{TileEmpty, TileApple, TileBonus} {
		if c.IsSnake() {
			t.Errorf("%s should not be a snake part", c)
		}
	}
	if !TileApple.IsFood() || !TileBonus.IsFood() || TileEmpty.IsFood() {
		t.Error("food classification wrong")
	}
	if TileContent(99).String() != "Unknown" {
		t.Error("unknown content should stringify as Unknown")
	}
}

// TestRotationFacing 测试旋转角度对应的屏幕方向
func TestRotationFacing(t *testing.T) {
	tests := []struct {
		r    Rotation
		want Direction
	}{
		{Rotation0, DirUp},
		{Rotation90, DirLeft},
		{Rotation180, DirDown},
		{Rotation270, DirRight},
		{Rotation(-90), DirRight},
		{Rotation(45), DirNone},
	}
	for _, tt := range tests {
		if got := tt.r.Facing(); got != tt.want {
			t.Errorf("Rotation(%d).Facing() = %v, want %v", tt.r, got, tt.want)
		}
	}
}
