package store

import (
	"errors"
	"testing"
	"time"

	"github.com/tgienger/todo/internal/models"
)

func sample() []models.Task {
	return []models.Task{
		{ID: 1, Title: "A"},
		{ID: 2, Title: "B", Done: true},
	}
}

func TestAdd(t *testing.T) {
	tasks, err := Add(nil, "Buy milk", 10)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("len: got %d, want 1", len(tasks))
	}
	want := models.Task{ID: 10, Title: "Buy milk", Done: false}
	if tasks[0] != want {
		t.Errorf("task: got %+v, want %+v", tasks[0], want)
	}

	again, err := Add(tasks, "Buy milk", 11)
	if !errors.Is(err, ErrDuplicateTitle) {
		t.Fatalf("err: got %v, want ErrDuplicateTitle", err)
	}
	if len(again) != 1 || again[0] != want {
		t.Errorf("duplicate add changed tasks: %+v", again)
	}
}

func TestAddAppendsInOrder(t *testing.T) {
	orig := sample()
	tasks, err := Add(orig, "C", 3)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if len(tasks) != 3 || tasks[2].Title != "C" || tasks[2].Done {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
	if len(orig) != 2 {
		t.Errorf("input slice changed: %+v", orig)
	}
}

func TestAddIsCaseSensitive(t *testing.T) {
	tasks, err := Add(sample(), "a", 3)
	if err != nil {
		t.Fatalf("Add(\"a\") rejected: %v", err)
	}
	if len(tasks) != 3 {
		t.Errorf("len: got %d, want 3", len(tasks))
	}
}

func TestToggleDone(t *testing.T) {
	tests := []struct {
		name string
		id   int64
		want []bool
	}{
		{"flips pending", 1, []bool{true, true}},
		{"flips done", 2, []bool{false, false}},
		{"missing id", 99, []bool{false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := sample()
			got := ToggleDone(orig, tt.id)
			for i, done := range tt.want {
				if got[i].Done != done {
					t.Errorf("task %d done: got %v, want %v", i, got[i].Done, done)
				}
			}
			if orig[0].Done || !orig[1].Done {
				t.Errorf("input mutated: %+v", orig)
			}
		})
	}
}

func TestToggleDoneTwiceIsIdentity(t *testing.T) {
	orig := sample()
	got := ToggleDone(ToggleDone(orig, 1), 1)
	for i := range orig {
		if got[i] != orig[i] {
			t.Errorf("task %d: got %+v, want %+v", i, got[i], orig[i])
		}
	}
}

func TestEdit(t *testing.T) {
	orig := sample()

	got := Edit(orig, 1, "B")
	if got[0].Title != "B" {
		t.Errorf("title: got %q, want %q", got[0].Title, "B")
	}
	if got[1] != orig[1] {
		t.Errorf("other task changed: %+v", got[1])
	}
	if orig[0].Title != "A" {
		t.Errorf("input mutated: %+v", orig[0])
	}

	missing := Edit(orig, 42, "Z")
	for i := range orig {
		if missing[i] != orig[i] {
			t.Errorf("missing id changed task %d: %+v", i, missing[i])
		}
	}
}

func TestRemove(t *testing.T) {
	orig := sample()

	got := Remove(orig, 1)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("unexpected tasks: %+v", got)
	}
	if len(orig) != 2 || orig[0].ID != 1 {
		t.Errorf("input mutated: %+v", orig)
	}

	if same := Remove(orig, 99); len(same) != 2 {
		t.Errorf("missing id: got %d tasks, want 2", len(same))
	}
}

func TestNextID(t *testing.T) {
	now := time.UnixMilli(1000)

	if id := NextID(nil, now); id != 1000 {
		t.Errorf("empty: got %d, want 1000", id)
	}

	tasks := []models.Task{{ID: 1000}, {ID: 1001}}
	if id := NextID(tasks, now); id != 1002 {
		t.Errorf("collision: got %d, want 1002", id)
	}

	if id := NextID([]models.Task{{ID: 5}}, now); id != 1000 {
		t.Errorf("older tasks: got %d, want 1000", id)
	}
}

func TestCount(t *testing.T) {
	done, pending := Count(sample())
	if done != 1 || pending != 1 {
		t.Errorf("got done=%d pending=%d, want 1/1", done, pending)
	}
}
