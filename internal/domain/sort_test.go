package domain

import (
	"testing"
	"time"
)

func TestSort_Toggle(t *testing.T) {
	s := &Sort{Field: SortByPriority, Order: SortAsc}

	// Same field toggles direction
	s.Toggle(SortByPriority)
	if s.Order != SortDesc {
		t.Errorf("Toggle same field: Order = %v, want SortDesc", s.Order)
	}

	// Different field resets to ascending
	s.Toggle(SortByDue)
	if s.Field != SortByDue || s.Order != SortAsc {
		t.Errorf("Toggle new field: got %v/%v, want due/SortAsc", s.Field, s.Order)
	}
}

func TestSort_Apply_Priority(t *testing.T) {
	s := &Sort{Field: SortByPriority, Order: SortAsc}
	tasks := []Task{
		{ID: "d-1", Priority: PriorityLow},
		{ID: "d-2", Priority: PriorityHigh},
		{ID: "d-3", Priority: PriorityMedium},
	}

	result := s.Apply(tasks)

	want := []string{"d-2", "d-3", "d-1"}
	for i, id := range want {
		if result[i].ID != id {
			t.Errorf("result[%d] = %s, want %s", i, result[i].ID, id)
		}
	}

	// Input slice untouched
	if tasks[0].ID != "d-1" {
		t.Error("Apply() modified the input slice")
	}
}

func TestSort_Apply_Created(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	s := &Sort{Field: SortByCreated, Order: SortDesc}
	tasks := []Task{
		{ID: "d-1", CreatedAt: base},
		{ID: "d-2", CreatedAt: base.AddDate(0, 0, 2)},
		{ID: "d-3", CreatedAt: base.AddDate(0, 0, 1)},
	}

	result := s.Apply(tasks)

	want := []string{"d-2", "d-3", "d-1"}
	for i, id := range want {
		if result[i].ID != id {
			t.Errorf("result[%d] = %s, want %s", i, result[i].ID, id)
		}
	}
}

func TestSort_Apply_DueNilLast(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	soon := base.AddDate(0, 0, 1)
	later := base.AddDate(0, 0, 5)

	s := &Sort{Field: SortByDue, Order: SortAsc}
	tasks := []Task{
		{ID: "d-1"},
		{ID: "d-2", DueAt: &later},
		{ID: "d-3", DueAt: &soon},
	}

	result := s.Apply(tasks)

	want := []string{"d-3", "d-2", "d-1"}
	for i, id := range want {
		if result[i].ID != id {
			t.Errorf("result[%d] = %s, want %s", i, result[i].ID, id)
		}
	}
}

func TestSort_Apply_Empty(t *testing.T) {
	s := &Sort{Field: SortByPriority}
	if got := s.Apply(nil); len(got) != 0 {
		t.Errorf("Apply(nil) = %v, want empty", got)
	}
}
