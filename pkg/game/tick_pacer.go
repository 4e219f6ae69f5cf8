package game

// maxCatchUpTicks 单次 Advance 最多追赶的 tick 数
// 窗口拖动或调试暂停后积累的多余时间会被丢弃
const maxCatchUpTicks = 5

// TickPacer 把帧间隔累积成固定节拍
//
// 只负责计数，不修改任何游戏状态；调用方对返回的每个 tick 执行一次状态推进
type TickPacer struct {
	interval    float64
	accumulated float64
}

// NewTickPacer 创建节拍器，interval 为 tick 间隔（秒），必须 > 0
func NewTickPacer(interval float64) *TickPacer {
	return &TickPacer{interval: interval}
}

// Advance 累积 dt 并返回本帧应执行的 tick 数
//
// 累积时间超过间隔时触发一个 tick 并扣除一个间隔，可以一次返回多个
func (p *TickPacer) Advance(dt float64) int {
	p.accumulated += dt
	ticks := 0
	for p.accumulated > p.interval {
		p.accumulated -= p.interval
		ticks++
		if ticks == maxCatchUpTicks {
			p.accumulated = 0
			break
		}
	}
	return ticks
}

// Reset 清空累积时间
func (p *TickPacer) Reset() {
	p.accumulated = 0
}

// Interval 返回 tick 间隔（秒）
func (p *TickPacer) Interval() float64 {
	return p.interval
}
