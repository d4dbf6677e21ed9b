package tracker

// TaskStore is the in-memory authoritative collection of all tasks for
// every user that has ever logged in on this device. Every mutation
// re-saves the full collection through the gateway; there is no
// partial or batched persistence.
type TaskStore struct {
	gateway *Gateway
	tasks   []Task
}

// NewTaskStore loads the persisted collection once and keeps it in
// memory from then on.
func NewTaskStore(gateway *Gateway) *TaskStore {
	return &TaskStore{
		gateway: gateway,
		tasks:   gateway.LoadTasks(),
	}
}

// Add prepends a task to the collection. Callers must have validated
// the title (ValidateTitle) before constructing the task.
func (s *TaskStore) Add(task Task) {
	s.tasks = append([]Task{task}, s.tasks...)
	s.gateway.SaveTasks(s.tasks)
}

// Update replaces the task with a matching ID. Unknown IDs are a
// no-op; Update never creates. ID, UserID and CreatedAt of the stored
// task are kept regardless of what the caller passes in.
func (s *TaskStore) Update(task Task) {
	for i, existing := range s.tasks {
		if existing.ID == task.ID {
			task.UserID = existing.UserID
			task.CreatedAt = existing.CreatedAt
			s.tasks[i] = task
			s.gateway.SaveTasks(s.tasks)
			return
		}
	}
}

// Remove deletes the task with a matching ID, a no-op when absent.
func (s *TaskStore) Remove(id string) {
	for i, existing := range s.tasks {
		if existing.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.gateway.SaveTasks(s.tasks)
			return
		}
	}
}

// All returns a copy of the full cross-user collection.
func (s *TaskStore) All() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}
