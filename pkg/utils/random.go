package utils

import (
	"math/rand/v2"
	"time"
)

// RandomSource 均匀随机数来源
type RandomSource interface {
	// IntN 返回 [0, n) 内的均匀随机整数，n 必须 > 0
	IntN(n int) int
}

// NewRandomSource 创建基于 PCG 的随机源
// seed 为 0 时使用当前时间作为种子
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// PickRandom 从列表中均匀选取一个元素
//
// 返回:
//   - T: 选中的元素
//   - bool: 列表为空时返回 false，调用方应跳过后续操作
func PickRandom[T any](r RandomSource, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[r.IntN(len(items))], true
}

// RandomRange 返回 [min, max) 内的均匀随机浮点数；max <= min 时返回 min
func RandomRange(r RandomSource, min, max float64) float64 {
	if max <= min {
		return min
	}
	const resolution = 1 << 20
	return min + (max-min)*float64(r.IntN(resolution))/resolution
}
