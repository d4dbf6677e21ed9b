package tracker

import (
	"encoding/json"

	"taskflow/pkg/storage"
	"taskflow/pkg/utils"
)

// Gateway reads and writes the three persisted records through a
// storage.Store. Durability is best-effort: Save* never returns an
// error (failures are logged and the prior persisted value is left
// untouched), and Load* never fails (absent or corrupt data yields the
// documented default).
type Gateway struct {
	store storage.Store
}

func NewGateway(store storage.Store) *Gateway {
	return &Gateway{store: store}
}

// SaveTasks persists the full task collection.
func (g *Gateway) SaveTasks(tasks []Task) {
	data, err := json.Marshal(tasks)
	if err != nil {
		utils.Error("saving tasks: %v", err)
		return
	}
	if err := g.store.Set(storage.TasksSlot, string(data)); err != nil {
		utils.Error("saving tasks: %v", err)
	}
}

// LoadTasks returns the persisted task collection, or an empty one
// when the slot is absent or unreadable.
func (g *Gateway) LoadTasks() []Task {
	raw, ok, err := g.store.Get(storage.TasksSlot)
	if err != nil {
		utils.Error("loading tasks: %v", err)
		return []Task{}
	}
	if !ok {
		return []Task{}
	}
	var tasks []Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		utils.Error("loading tasks: %v", err)
		return []Task{}
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks
}

// SaveUser persists the current user record.
func (g *Gateway) SaveUser(user User) {
	data, err := json.Marshal(user)
	if err != nil {
		utils.Error("saving user: %v", err)
		return
	}
	if err := g.store.Set(storage.UserSlot, string(data)); err != nil {
		utils.Error("saving user: %v", err)
	}
}

// LoadUser returns the persisted current user. The second result is
// false when nobody is logged in or the record is unreadable.
func (g *Gateway) LoadUser() (User, bool) {
	raw, ok, err := g.store.Get(storage.UserSlot)
	if err != nil {
		utils.Error("loading user: %v", err)
		return User{}, false
	}
	if !ok {
		return User{}, false
	}
	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		utils.Error("loading user: %v", err)
		return User{}, false
	}
	return user, true
}

// ClearUser removes the current-user record. Tasks are not touched.
func (g *Gateway) ClearUser() {
	if err := g.store.Delete(storage.UserSlot); err != nil {
		utils.Error("clearing user: %v", err)
	}
}

// SaveDarkMode persists the process-wide theme flag.
func (g *Gateway) SaveDarkMode(dark bool) {
	data, err := json.Marshal(dark)
	if err != nil {
		utils.Error("saving dark mode: %v", err)
		return
	}
	if err := g.store.Set(storage.ThemeSlot, string(data)); err != nil {
		utils.Error("saving dark mode: %v", err)
	}
}

// LoadDarkMode returns the persisted theme flag, defaulting to false.
func (g *Gateway) LoadDarkMode() bool {
	raw, ok, err := g.store.Get(storage.ThemeSlot)
	if err != nil {
		utils.Error("loading dark mode: %v", err)
		return false
	}
	if !ok {
		return false
	}
	var dark bool
	if err := json.Unmarshal([]byte(raw), &dark); err != nil {
		utils.Error("loading dark mode: %v", err)
		return false
	}
	return dark
}
