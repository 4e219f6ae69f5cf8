package systems

import (
	"slices"
	"testing"

	"github.com/gonewx/snake/pkg/components"
	"github.com/gonewx/snake/pkg/ecs"
)

func recordStep(log *[]string, delay float64, name string) components.SequenceStep {
	return components.SequenceStep{Delay: delay, Effect: func() { *log = append(*log, name) }}
}

// TestSequenceRunsStepsInOrder 按延时顺序执行步骤
func TestSequenceRunsStepsInOrder(t *testing.T) {
	s := NewSequenceSystem(ecs.NewEntityManager())
	var got []string
	finished := false
	id := s.Start("test", []components.SequenceStep{
		recordStep(&got, 1.0, "a"),
		recordStep(&got, 0.5, "b"),
		recordStep(&got, 2.0, "c"),
	}, func() { finished = true })

	s.Update(0.5)
	if len(got) != 0 {
		t.Fatalf("no step should run before its delay, got %v", got)
	}
	s.Update(0.5)
	if !slices.Equal(got, []string{"a"}) {
		t.Fatalf("after 1.0s got %v, want [a]", got)
	}
	// 一次大的 dt 追赶执行多个步骤
	s.Update(3.0)
	if !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("after catch-up got %v", got)
	}
	if !finished || s.IsRunning(id) {
		t.Error("sequence should be finished and removed")
	}
}

// TestSequenceCancelStopsFutureSteps 取消只阻止后续步骤
func TestSequenceCancelStopsFutureSteps(t *testing.T) {
	s := NewSequenceSystem(ecs.NewEntityManager())
	var got []string
	finished := false
	id := s.Start("bonus", []components.SequenceStep{
		recordStep(&got, 1, "place"),
		recordStep(&got, 1, "remove"),
	}, func() { finished = true })

	s.Update(1)
	s.Cancel(id)
	s.Update(5)

	if !slices.Equal(got, []string{"place"}) {
		t.Errorf("got %v, want only [place]", got)
	}
	if finished {
		t.Error("cancelled sequence must not call OnFinish")
	}
	if s.IsRunning(id) {
		t.Error("cancelled sequence should not be running")
	}

	// 重复取消是安全的
	s.Cancel(id)
}

// TestSequenceCancelIsolated 取消一个序列不影响其他序列
func TestSequenceCancelIsolated(t *testing.T) {
	s := NewSequenceSystem(ecs.NewEntityManager())
	var a, b []string
	idA := s.Start("a", []components.SequenceStep{recordStep(&a, 1, "a1"), recordStep(&a, 1, "a2")}, nil)
	s.Start("b", []components.SequenceStep{recordStep(&b, 1, "b1"), recordStep(&b, 1, "b2")}, nil)

	s.Update(1)
	s.Cancel(idA)
	s.Update(1)

	if !slices.Equal(a, []string{"a1"}) || !slices.Equal(b, []string{"b1", "b2"}) {
		t.Errorf("a=%v b=%v", a, b)
	}
}

// TestSequenceSelfCancelInEffect 步骤中取消自身后不再执行后续步骤
func TestSequenceSelfCancelInEffect(t *testing.T) {
	s := NewSequenceSystem(ecs.NewEntityManager())
	var got []string
	var id ecs.EntityID
	id = s.Start("self", []components.SequenceStep{
		{Delay: 0, Effect: func() { got = append(got, "first"); s.Cancel(id) }},
		recordStep(&got, 0, "second"),
	}, nil)

	s.Update(0)
	if !slices.Equal(got, []string{"first"}) {
		t.Errorf("got %v, want [first]", got)
	}
}

// TestSequenceOnFinishRestarts OnFinish 中重新启动序列形成循环
func TestSequenceOnFinishRestarts(t *testing.T) {
	s := NewSequenceSystem(ecs.NewEntityManager())
	count := 0
	var start func()
	start = func() {
		s.Start("loop", []components.SequenceStep{{Delay: 1, Effect: func() { count++ }}}, start)
	}
	start()

	for i := 0; i < 3; i++ {
		s.Update(1)
	}
	if count != 3 {
		t.Errorf("loop ran %d times, want 3", count)
	}
	if s.RunningCount() != 1 {
		t.Errorf("RunningCount() = %d, want 1", s.RunningCount())
	}

	s.CancelAll()
	if s.RunningCount() != 0 {
		t.Error("CancelAll should stop every sequence")
	}
}
