package ecs

import (
	"slices"
	"testing"
)

// 测试组件类型定义
type testTimerComponent struct {
	Elapsed float64
}

type testTagComponent struct {
	Name string
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if !em.IsAlive(id1) || em.EntityCount() != 2 {
		t.Error("created entities should be alive")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testTimerComponent{Elapsed: 1.5})

	timer, ok := GetComponent[*testTimerComponent](em, id)
	if !ok {
		t.Fatal("Component should be found")
	}
	if timer.Elapsed != 1.5 {
		t.Errorf("Elapsed = %f, want 1.5", timer.Elapsed)
	}

	// 修改通过指针生效
	timer.Elapsed = 2
	again, _ := GetComponent[*testTimerComponent](em, id)
	if again.Elapsed != 2 {
		t.Error("component pointer should be shared")
	}

	if _, ok := GetComponent[*testTagComponent](em, id); ok {
		t.Error("missing component type should not be found")
	}
	if _, ok := GetComponent[*testTimerComponent](em, 999); ok {
		t.Error("unknown entity should not have components")
	}
}

func TestHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if HasComponent[*testTagComponent](em, id) {
		t.Error("Should not have component before adding")
	}
	AddComponent(em, id, &testTagComponent{Name: "bonus"})
	if !HasComponent[*testTagComponent](em, id) {
		t.Error("Should have component after adding")
	}
	RemoveComponent[*testTagComponent](em, id)
	if HasComponent[*testTagComponent](em, id) {
		t.Error("Should not have component after removing")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testTimerComponent{})

	// 标记删除后实体仍然存在，直到清理
	em.DestroyEntity(id)
	em.DestroyEntity(id)
	if !em.IsAlive(id) || !em.IsMarkedForDestroy(id) {
		t.Error("entity should stay alive until RemoveMarkedEntities")
	}

	em.RemoveMarkedEntities()
	if em.IsAlive(id) || HasComponent[*testTimerComponent](em, id) {
		t.Error("entity should be removed")
	}
	if em.IsMarkedForDestroy(id) {
		t.Error("destroy list should be empty after cleanup")
	}
}

func TestGetEntitiesWith1Ordered(t *testing.T) {
	em := NewEntityManager()
	var want []EntityID
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		if i%2 == 0 {
			AddComponent(em, id, &testTimerComponent{})
			want = append(want, id)
		} else {
			AddComponent(em, id, &testTagComponent{})
		}
	}

	got := GetEntitiesWith1[*testTimerComponent](em)
	if !slices.Equal(got, want) {
		t.Errorf("GetEntitiesWith1 = %v, want %v", got, want)
	}
}

func TestClear(t *testing.T) {
	em := NewEntityManager()
	em.CreateEntity()
	last := em.CreateEntity()
	em.DestroyEntity(last)

	em.Clear()
	if em.EntityCount() != 0 || em.IsMarkedForDestroy(last) {
		t.Error("Clear should remove everything")
	}
	if next := em.CreateEntity(); next <= last {
		t.Errorf("IDs must not be reused after Clear, got %d", next)
	}
}
