// Package storage provides the durable key-value store the tracker
// persists into. Records live in independent named slots; a slot holds
// one textual value and is saved or loaded as a whole.
package storage

// Slot names for the three persisted records.
const (
	TasksSlot = "taskTracker_tasks"
	UserSlot  = "taskTracker_user"
	ThemeSlot = "taskTracker_darkMode"
)

// Store is a durable key-value store. Implementations must make a Set
// visible to an immediately following Get and must survive process
// restarts.
type Store interface {
	// Get returns the value of a slot. The second result is false when
	// the slot has never been set or has been deleted.
	Get(name string) (string, bool, error)
	// Set writes the full value of a slot, replacing any prior value.
	Set(name, value string) error
	// Delete removes a slot. Deleting an absent slot is not an error.
	Delete(name string) error
	Close() error
}
