package domain

// NextID returns the identifier the next added task receives.
// Identifiers follow the collection length, so an id freed by a removal
// can be handed out again while a later task still holds it.
func NextID(tasks []Task) int64 {
	return int64(len(tasks)) + 1
}

// FirstWithStatus returns the first task, in collection order, whose status
// equals status exactly.
func FirstWithStatus(tasks []Task, status string) (Task, bool) {
	for _, task := range tasks {
		if task.Status == status {
			return task, true
		}
	}
	return Task{}, false
}

// WithoutID returns a new collection holding every task whose id differs
// from id. The input slice is left untouched.
func WithoutID(tasks []Task, id int64) []Task {
	kept := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if task.ID != id {
			kept = append(kept, task)
		}
	}
	return kept
}
