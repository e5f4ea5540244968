package store

import (
	"io"

	"tempoclaro/internal/routine"
)

// RoutineStore owns the persisted routine list.
type RoutineStore struct {
	path     string
	debugOut io.Writer
}

// NewRoutineStore creates a store backed by the file at path.
func NewRoutineStore(path string, debugOut io.Writer) *RoutineStore {
	return &RoutineStore{path: path, debugOut: debugOut}
}

// Load reads the routine list. Missing or corrupt files yield an empty list.
func (s *RoutineStore) Load() []routine.Routine {
	var routines []routine.Routine
	loadList(s.path, &routines, s.debugOut)
	return routines
}

// Save writes the routine list.
func (s *RoutineStore) Save(routines []routine.Routine) error {
	if routines == nil {
		routines = []routine.Routine{}
	}
	return saveList(s.path, routines)
}
