// Package store holds the state transitions of the task list.
//
// Every function takes the current sequence and returns the next one. Inputs
// are never mutated: a changed sequence is always a fresh slice of copied
// tasks, so callers may keep rendering from an old slice safely.
package store

import (
	"errors"
	"time"

	"github.com/tgienger/todo/internal/models"
)

// ErrDuplicateTitle is returned by Add when a task with the same title exists
var ErrDuplicateTitle = errors.New("task already registered")

// NextID derives a task ID from now, bumped past every existing ID
func NextID(tasks []models.Task, now time.Time) int64 {
	id := now.UnixMilli()
	for _, t := range tasks {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}

// Add appends a new pending task. Titles are compared exactly.
func Add(tasks []models.Task, title string, id int64) ([]models.Task, error) {
	for _, t := range tasks {
		if t.Title == title {
			return tasks, ErrDuplicateTitle
		}
	}

	next := make([]models.Task, len(tasks), len(tasks)+1)
	copy(next, tasks)
	return append(next, models.Task{ID: id, Title: title}), nil
}

// ToggleDone flips the done flag of the task with the given ID
func ToggleDone(tasks []models.Task, id int64) []models.Task {
	return update(tasks, id, func(t *models.Task) {
		t.Done = !t.Done
	})
}

// Edit renames the task with the given ID.
// Unlike Add there is no duplicate check.
func Edit(tasks []models.Task, id int64, title string) []models.Task {
	return update(tasks, id, func(t *models.Task) {
		t.Title = title
	})
}

// Remove drops the task with the given ID
func Remove(tasks []models.Task, id int64) []models.Task {
	if _, ok := Find(tasks, id); !ok {
		return tasks
	}

	next := make([]models.Task, 0, len(tasks)-1)
	for _, t := range tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}
	return next
}

// Find returns the task with the given ID
func Find(tasks []models.Task, id int64) (models.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// Count splits the sequence into done and pending totals
func Count(tasks []models.Task) (done, pending int) {
	for _, t := range tasks {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

// update copies every task into a new slice and applies fn to the match.
// Returns tasks unchanged when no task has the ID.
func update(tasks []models.Task, id int64, fn func(*models.Task)) []models.Task {
	next := make([]models.Task, len(tasks))
	copy(next, tasks)

	for i := range next {
		if next[i].ID == id {
			fn(&next[i])
			return next
		}
	}
	return tasks
}
