package snake

import (
	"slices"
	"testing"

	"github.com/gonewx/snake/pkg/types"
)

// TestDeriveCornerRotations 覆盖拐角的全部 8 种符号组合
func TestDeriveCornerRotations(t *testing.T) {
	cur := types.Vec(5, 5)
	up, down, left, right := types.Vec(5, 4), types.Vec(5, 6), types.Vec(4, 5), types.Vec(6, 5)

	tests := []struct {
		name       string
		prev, next types.Vector2i
		want       types.Rotation
	}{
		{"right then up", right, up, types.Rotation0},
		{"up then right", up, right, types.Rotation0},
		{"left then up", left, up, types.Rotation90},
		{"up then left", up, left, types.Rotation90},
		{"left then down", left, down, types.Rotation180},
		{"down then left", down, left, types.Rotation180},
		{"right then down", right, down, types.Rotation270},
		{"down then right", down, right, types.Rotation270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shapes := DeriveShapes([]types.Vector2i{tt.prev, cur, tt.next}, nil)
			mid := shapes[1]
			if mid.Content != types.TileSnakeCorner {
				t.Errorf("content = %s, want SnakeCorner", mid.Content)
			}
			if mid.Rotation != tt.want {
				t.Errorf("rotation = %d, want %d", mid.Rotation, tt.want)
			}

			bulged := DeriveShapes([]types.Vector2i{tt.prev, cur, tt.next}, func(p types.Vector2i) bool { return p == cur })
			if bulged[1].Content != types.TileSnakeCornerBulge || bulged[1].Rotation != tt.want {
				t.Errorf("bulged corner = %+v, want CornerBulge/%d", bulged[1], tt.want)
			}
		})
	}
}

// TestDeriveStraightSegments 测试直线身体及鼓起变体
func TestDeriveStraightSegments(t *testing.T) {
	tests := []struct {
		name        string
		body        []types.Vector2i
		bulge       bool
		wantContent types.TileContent
		wantRot     types.Rotation
	}{
		{"vertical", []types.Vector2i{types.Vec(5, 6), types.Vec(5, 5), types.Vec(5, 4)}, false, types.TileSnakeBody, types.Rotation0},
		{"horizontal", []types.Vector2i{types.Vec(4, 5), types.Vec(5, 5), types.Vec(6, 5)}, false, types.TileSnakeBody, types.Rotation90},
		{"vertical bulge", []types.Vector2i{types.Vec(5, 4), types.Vec(5, 5), types.Vec(5, 6)}, true, types.TileSnakeBulge, types.Rotation0},
		{"horizontal bulge", []types.Vector2i{types.Vec(6, 5), types.Vec(5, 5), types.Vec(4, 5)}, true, types.TileSnakeBulge, types.Rotation90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shapes := DeriveShapes(tt.body, func(types.Vector2i) bool { return tt.bulge })
			mid := shapes[1]
			if mid.Content != tt.wantContent || mid.Rotation != tt.wantRot {
				t.Errorf("got %s/%d, want %s/%d", mid.Content, mid.Rotation, tt.wantContent, tt.wantRot)
			}
		})
	}
}

// TestDeriveHeadAndTail 测试头尾朝向由唯一邻居的方位决定
func TestDeriveHeadAndTail(t *testing.T) {
	end := types.Vec(3, 3)
	tests := []struct {
		name      string
		neighbour types.Vector2i
		want      types.Rotation
	}{
		{"neighbour below", types.Vec(3, 4), types.Rotation0},
		{"neighbour above", types.Vec(3, 2), types.Rotation180},
		{"neighbour right", types.Vec(4, 3), types.Rotation90},
		{"neighbour left", types.Vec(2, 3), types.Rotation270},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 作为头部
			shapes := DeriveShapes([]types.Vector2i{tt.neighbour, end}, nil)
			if shapes[1].Content != types.TileSnakeHead || shapes[1].Rotation != tt.want {
				t.Errorf("head = %+v, want SnakeHead/%d", shapes[1], tt.want)
			}
			// 作为尾部
			shapes = DeriveShapes([]types.Vector2i{end, tt.neighbour}, nil)
			if shapes[0].Content != types.TileSnakeTail || shapes[0].Rotation != tt.want {
				t.Errorf("tail = %+v, want SnakeTail/%d", shapes[0], tt.want)
			}
		})
	}
}

// TestDeriveHeadAndTailIgnoreBulge 头尾不使用鼓起变体
func TestDeriveHeadAndTailIgnoreBulge(t *testing.T) {
	body := []types.Vector2i{types.Vec(0, 2), types.Vec(0, 1), types.Vec(0, 0)}
	shapes := DeriveShapes(body, func(types.Vector2i) bool { return true })
	if shapes[0].Content != types.TileSnakeTail {
		t.Errorf("tail content = %s", shapes[0].Content)
	}
	if shapes[2].Content != types.TileSnakeHead {
		t.Errorf("head content = %s", shapes[2].Content)
	}
}

// TestDeriveSingleSegment 单段蛇只有头部
func TestDeriveSingleSegment(t *testing.T) {
	shapes := DeriveShapes([]types.Vector2i{types.Vec(1, 1)}, nil)
	if len(shapes) != 1 || shapes[0].Content != types.TileSnakeHead || shapes[0].Rotation != types.Rotation0 {
		t.Errorf("single segment = %+v", shapes)
	}
	if DeriveShapes(nil, nil) != nil {
		t.Error("empty body should derive no shapes")
	}
}

// TestDeriveIsIdempotent 相同输入重复推导结果一致
func TestDeriveIsIdempotent(t *testing.T) {
	body := []types.Vector2i{
		types.Vec(2, 4), types.Vec(2, 3), types.Vec(3, 3), types.Vec(4, 3),
		types.Vec(4, 2), types.Vec(3, 2), types.Vec(3, 1),
	}
	bulged := func(p types.Vector2i) bool { return p == types.Vec(4, 3) || p == types.Vec(3, 2) }

	first := DeriveShapes(body, bulged)
	for i := 0; i < 3; i++ {
		if again := DeriveShapes(body, bulged); !slices.Equal(first, again) {
			t.Fatalf("derivation not deterministic:\n%v\n%v", first, again)
		}
	}
	if first[3].Content != types.TileSnakeCornerBulge || first[5].Content != types.TileSnakeCornerBulge {
		t.Errorf("bulged corners not detected: %+v", first)
	}
}

// TestDeriveNonAdjacentPanics 不相邻的邻居属于前置条件破坏
func TestDeriveNonAdjacentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for duplicated segment")
		}
	}()
	DeriveShapes([]types.Vector2i{types.Vec(1, 1), types.Vec(1, 1), types.Vec(2, 2)}, nil)
}

// TestConnectionsMatchNeighbours 测试每段形态的连接方向正好指向它的相邻段
func TestConnectionsMatchNeighbours(t *testing.T) {
	// 覆盖四种拐角、横竖直线和头尾各个朝向的一条蛇形路径
	body := []types.Vector2i{
		types.Vec(0, 4), types.Vec(0, 3), types.Vec(1, 3), types.Vec(2, 3),
		types.Vec(2, 2), types.Vec(1, 2), types.Vec(0, 2), types.Vec(0, 1),
		types.Vec(0, 0), types.Vec(1, 0), types.Vec(2, 0), types.Vec(3, 0),
		types.Vec(3, 1), types.Vec(3, 2), types.Vec(4, 2),
	}
	shapes := DeriveShapes(body, nil)

	for i, shape := range shapes {
		want := map[types.Vector2i]bool{}
		if i > 0 {
			want[body[i-1].Sub(body[i])] = true
		}
		if i < len(body)-1 {
			want[body[i+1].Sub(body[i])] = true
		}

		got := Connections(shape.Content, shape.Rotation)
		if len(got) != len(want) {
			t.Errorf("segment %d %v (%s/%d): got %v, want %d connections", i, shape.Position, shape.Content, shape.Rotation, got, len(want))
			continue
		}
		for _, d := range got {
			if !want[d] {
				t.Errorf("segment %d %v (%s/%d): unexpected connection %v", i, shape.Position, shape.Content, shape.Rotation, d)
			}
		}
	}
}
