package models

// Task represents a single to-do entry
type Task struct {
	ID    int64 // creation timestamp in milliseconds, unique per list
	Title string
	Done  bool
}
