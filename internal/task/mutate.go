package task

import "time"

// Create builds a new task from a form. The id is the creation timestamp in
// milliseconds; two creations within the same millisecond collide, which is
// acceptable at this scale.
func Create(f Form, now time.Time) Task {
	return Task{
		ID:          now.UnixMilli(),
		Title:       f.Title,
		Description: f.Description,
		Date:        f.Date,
		Priority:    f.Priority,
		Completed:   false,
		Location:    f.Location,
		Latitude:    f.Latitude,
		Longitude:   f.Longitude,
		CreatedAt:   now.Format(time.RFC3339),
	}
}

// Delete returns tasks without the entry matching id. Unknown ids are a no-op.
func Delete(tasks []Task, id int64) []Task {
	result := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			result = append(result, t)
		}
	}
	return result
}

// ToggleComplete flips the completed flag on the task matching id.
func ToggleComplete(tasks []Task, id int64) []Task {
	result := make([]Task, len(tasks))
	for i, t := range tasks {
		if t.ID == id {
			t.Completed = !t.Completed
		}
		result[i] = t
	}
	return result
}

// Update replaces the task whose id matches updated.ID wholesale.
// If no task matches, the list comes back unchanged.
func Update(tasks []Task, updated Task) []Task {
	result := make([]Task, len(tasks))
	for i, t := range tasks {
		if t.ID == updated.ID {
			result[i] = updated
		} else {
			result[i] = t
		}
	}
	return result
}

// Find returns the task matching id, or false if absent.
func Find(tasks []Task, id int64) (Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}
