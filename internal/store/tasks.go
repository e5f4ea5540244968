package store

import (
	"io"

	"tempoclaro/internal/task"
)

// TaskStore owns the persisted task list.
type TaskStore struct {
	path     string
	debugOut io.Writer
}

// NewTaskStore creates a store backed by the file at path. Parse failures are
// logged to debugOut when non-nil.
func NewTaskStore(path string, debugOut io.Writer) *TaskStore {
	return &TaskStore{path: path, debugOut: debugOut}
}

// Load reads the task list. Missing or corrupt files yield an empty list.
func (s *TaskStore) Load() []task.Task {
	var tasks []task.Task
	loadList(s.path, &tasks, s.debugOut)
	return tasks
}

// Save writes the task list.
func (s *TaskStore) Save(tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	return saveList(s.path, tasks)
}
