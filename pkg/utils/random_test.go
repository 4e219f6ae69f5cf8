package utils

import "testing"

// fixedSource 总是返回固定下标的随机源
type fixedSource struct{ n int }

func (f fixedSource) IntN(n int) int { return f.n % n }

// TestPickRandomEmpty 空列表不选取
func TestPickRandomEmpty(t *testing.T) {
	if _, ok := PickRandom[int](fixedSource{}, nil); ok {
		t.Error("PickRandom on empty list should report false")
	}
}

// TestPickRandomUsesSource 选取结果由随机源决定
func TestPickRandomUsesSource(t *testing.T) {
	items := []string{"a", "b", "c"}
	got, ok := PickRandom(fixedSource{n: 2}, items)
	if !ok || got != "c" {
		t.Errorf("PickRandom = %q, %v; want c, true", got, ok)
	}
}

// TestPickRandomUniform 种子随机源覆盖所有元素
func TestPickRandomUniform(t *testing.T) {
	r := NewRandomSource(42)
	items := []int{0, 1, 2, 3}
	counts := make([]int, len(items))
	for i := 0; i < 4000; i++ {
		v, _ := PickRandom(r, items)
		counts[v]++
	}
	for i, c := range counts {
		if c < 800 || c > 1200 {
			t.Errorf("item %d picked %d times, expected roughly 1000", i, c)
		}
	}
}

// TestRandomRange 测试区间随机数
func TestRandomRange(t *testing.T) {
	r := NewRandomSource(7)
	for i := 0; i < 100; i++ {
		v := RandomRange(r, 2, 4)
		if v < 2 || v >= 4 {
			t.Fatalf("RandomRange = %v, out of [2,4)", v)
		}
	}
	if RandomRange(r, 5, 5) != 5 {
		t.Error("degenerate range should return min")
	}
}
