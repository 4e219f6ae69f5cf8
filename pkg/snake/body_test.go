package snake

import (
	"slices"
	"testing"

	"github.com/gonewx/snake/pkg/types"
)

// TestBodyPushPop 测试头部追加和尾部弹出的顺序
func TestBodyPushPop(t *testing.T) {
	b := NewBody(2)
	for i := 0; i < 5; i++ {
		b.PushHead(types.Vec(i, 0))
	}
	if b.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", b.Len())
	}
	if b.Tail() != types.Vec(0, 0) || b.Head() != types.Vec(4, 0) {
		t.Fatalf("tail=%v head=%v", b.Tail(), b.Head())
	}

	if got := b.PopTail(); got != types.Vec(0, 0) {
		t.Errorf("PopTail() = %v, want (0,0)", got)
	}
	b.PushHead(types.Vec(5, 0))
	want := []types.Vector2i{types.Vec(1, 0), types.Vec(2, 0), types.Vec(3, 0), types.Vec(4, 0), types.Vec(5, 0)}
	if got := b.Slice(); !slices.Equal(got, want) {
		t.Errorf("Slice() = %v, want %v", got, want)
	}
	if got := slices.Collect(b.All()); !slices.Equal(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
}

// TestBodyWrapAround 测试环形缓冲区绕回后再扩容的正确性
func TestBodyWrapAround(t *testing.T) {
	b := NewBody(4)
	for i := 0; i < 4; i++ {
		b.PushHead(types.Vec(0, i))
	}
	// 弹出两段使 start 前移，再追加使写入位置绕回
	b.PopTail()
	b.PopTail()
	b.PushHead(types.Vec(0, 4))
	b.PushHead(types.Vec(0, 5))
	// 满容量后继续追加触发扩容
	b.PushHead(types.Vec(0, 6))

	want := []types.Vector2i{types.Vec(0, 2), types.Vec(0, 3), types.Vec(0, 4), types.Vec(0, 5), types.Vec(0, 6)}
	if got := b.Slice(); !slices.Equal(got, want) {
		t.Errorf("Slice() = %v, want %v", got, want)
	}
}

// TestBodyContainsAndClear 测试成员判断与清空
func TestBodyContainsAndClear(t *testing.T) {
	b := NewBody(0)
	b.PushHead(types.Vec(1, 1))
	b.PushHead(types.Vec(1, 2))

	if !b.Contains(types.Vec(1, 2)) || b.Contains(types.Vec(2, 2)) {
		t.Error("Contains reports wrong membership")
	}

	b.Clear()
	if b.Len() != 0 || b.Contains(types.Vec(1, 1)) {
		t.Error("Clear should empty the body")
	}
}

// TestBodyAtOutOfRange 测试越界索引 panic
func TestBodyAtOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for At on empty body")
		}
	}()
	NewBody(1).At(0)
}
