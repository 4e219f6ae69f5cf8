package systems

import (
	"log"

	"github.com/gonewx/snake/pkg/components"
	"github.com/gonewx/snake/pkg/ecs"
)

// SequenceSystem 推进所有限时序列
//
// 单线程调用：Update 与 Start/Cancel 都只由游戏循环触发
type SequenceSystem struct {
	entityManager *ecs.EntityManager
}

// NewSequenceSystem 创建限时序列系统
func NewSequenceSystem(em *ecs.EntityManager) *SequenceSystem {
	return &SequenceSystem{entityManager: em}
}

// Start 启动一个新的限时序列
//
// 参数:
//   - name: 序列名称（用于日志）
//   - steps: 步骤列表，按顺序执行
//   - onFinish: 全部步骤完成后的回调，可为 nil；取消的序列不会调用
//
// 返回:
//   - ecs.EntityID: 序列实体ID，用于 Cancel
func (s *SequenceSystem) Start(name string, steps []components.SequenceStep, onFinish func()) ecs.EntityID {
	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, &components.SequenceComponent{
		Name:     name,
		Steps:    steps,
		OnFinish: onFinish,
	})
	log.Printf("[SequenceSystem] Started sequence %q (entity %d, %d steps)", name, id, len(steps))
	return id
}

// Cancel 取消序列，后续步骤不再执行
// 对已结束或不存在的序列调用是安全的
func (s *SequenceSystem) Cancel(id ecs.EntityID) {
	seq, ok := ecs.GetComponent[*components.SequenceComponent](s.entityManager, id)
	if !ok {
		return
	}
	ecs.RemoveComponent[*components.SequenceComponent](s.entityManager, id)
	s.entityManager.DestroyEntity(id)
	log.Printf("[SequenceSystem] Cancelled sequence %q (entity %d) at step %d/%d", seq.Name, id, seq.Next, len(seq.Steps))
}

// CancelAll 取消所有正在运行的序列
func (s *SequenceSystem) CancelAll() {
	for _, id := range ecs.GetEntitiesWith1[*components.SequenceComponent](s.entityManager) {
		s.Cancel(id)
	}
	s.entityManager.RemoveMarkedEntities()
}

// IsRunning 检查序列是否仍在运行
func (s *SequenceSystem) IsRunning(id ecs.EntityID) bool {
	return ecs.HasComponent[*components.SequenceComponent](s.entityManager, id)
}

// RunningCount 返回正在运行的序列数量
func (s *SequenceSystem) RunningCount() int {
	return len(ecs.GetEntitiesWith1[*components.SequenceComponent](s.entityManager))
}

// Update 推进所有序列
//
// 一次 Update 中可能连续执行多个步骤（dt 较大时追赶）；
// 步骤的 Effect 中允许取消任意序列，包括自身
func (s *SequenceSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.SequenceComponent](s.entityManager) {
		seq, ok := ecs.GetComponent[*components.SequenceComponent](s.entityManager, id)
		if !ok {
			continue // 在本帧更早的步骤中被取消
		}

		seq.Elapsed += dt
		for !seq.Done() && seq.Elapsed >= seq.Steps[seq.Next].Delay {
			step := seq.Steps[seq.Next]
			seq.Elapsed -= step.Delay
			seq.Next++
			if step.Effect != nil {
				step.Effect()
			}
			if !s.IsRunning(id) {
				break
			}
		}

		if s.IsRunning(id) && seq.Done() {
			ecs.RemoveComponent[*components.SequenceComponent](s.entityManager, id)
			s.entityManager.DestroyEntity(id)
			if seq.OnFinish != nil {
				seq.OnFinish()
			}
		}
	}
	s.entityManager.RemoveMarkedEntities()
}
