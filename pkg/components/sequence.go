package components

// SequenceStep 限时序列中的一步：等待 Delay 秒后执行 Effect
type SequenceStep struct {
	Delay  float64 // 距上一步的等待时间（秒）
	Effect func()  // 对网格状态的修改，可为 nil（纯等待）
}

// SequenceComponent 可取消的限时序列
// 用于奖励果实的出现/闪烁/消失以及死亡时蛇身闪烁
//
// 取消只会阻止尚未执行的步骤，已经写入网格的修改保持不变
type SequenceComponent struct {
	Name     string         // 序列名称，如 "bonus"、"death_blink"
	Steps    []SequenceStep // 全部步骤
	Next     int            // 下一个待执行步骤的下标
	Elapsed  float64        // 自上一步执行后经过的时间（秒）
	OnFinish func()         // 全部步骤执行完毕后的回调，可为 nil
}

// Done 是否所有步骤都已执行
func (c *SequenceComponent) Done() bool {
	return c.Next >= len(c.Steps)
}
