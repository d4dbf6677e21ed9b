// Package view derives the visible task list and per-status counts
// from the full task collection. The pipeline is a pure function: it
// never mutates its inputs and identical inputs always produce
// identical results.
package view

import (
	"sort"
	"strings"
	"time"

	"taskflow/pkg/tracker"
)

// Filter selects which status bucket is shown.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterCompleted Filter = "completed"
	FilterPending   Filter = "pending"
	FilterOverdue   Filter = "overdue"
)

// Filters lists the selectable filters in display order.
var Filters = []Filter{FilterAll, FilterPending, FilterCompleted, FilterOverdue}

// Counts is the per-status breakdown of the current user's complete
// task set. It ignores the search term and the active filter so that
// filter badges always show the full picture.
type Counts struct {
	All       int `json:"all"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Overdue   int `json:"overdue"`
}

// CompletionRate returns completed tasks as a rounded percentage of
// all tasks, 0 when there are none.
func (c Counts) CompletionRate() int {
	if c.All == 0 {
		return 0
	}
	return int(float64(c.Completed)/float64(c.All)*100 + 0.5)
}

// Result is the derived view: the filtered, searched, sorted task list
// plus the counts over the scoped set.
type Result struct {
	Tasks  []tracker.Task
	Counts Counts
}

// Apply runs the derivation pipeline: scope to the user's tasks,
// apply the search term, apply the status filter, sort, and count.
func Apply(tasks []tracker.Task, userID, search string, filter Filter, now time.Time) Result {
	scoped := make([]tracker.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.UserID == userID {
			scoped = append(scoped, t)
		}
	}

	visible := scoped
	if search != "" {
		term := strings.ToLower(search)
		matched := make([]tracker.Task, 0, len(visible))
		for _, t := range visible {
			if strings.Contains(strings.ToLower(t.Title), term) ||
				strings.Contains(strings.ToLower(t.Description), term) ||
				strings.Contains(strings.ToLower(t.Category), term) {
				matched = append(matched, t)
			}
		}
		visible = matched
	}

	if filter != FilterAll {
		filtered := make([]tracker.Task, 0, len(visible))
		for _, t := range visible {
			if matchesFilter(t, filter, now) {
				filtered = append(filtered, t)
			}
		}
		visible = filtered
	}

	sorted := make([]tracker.Task, len(visible))
	copy(sorted, visible)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		// Incomplete tasks come first
		if a.Completed != b.Completed {
			return !a.Completed
		}
		// Then by priority, most urgent first
		if a.Priority.Weight() != b.Priority.Weight() {
			return a.Priority.Weight() > b.Priority.Weight()
		}
		// Then newest first
		return a.CreatedAt.After(b.CreatedAt)
	})

	return Result{Tasks: sorted, Counts: countTasks(scoped, now)}
}

func matchesFilter(t tracker.Task, filter Filter, now time.Time) bool {
	switch filter {
	case FilterCompleted:
		return t.Completed
	case FilterPending:
		return !t.Completed
	case FilterOverdue:
		return t.Overdue(now)
	}
	return true
}

func countTasks(scoped []tracker.Task, now time.Time) Counts {
	c := Counts{All: len(scoped)}
	for _, t := range scoped {
		if t.Completed {
			c.Completed++
		} else {
			c.Pending++
		}
		if t.Overdue(now) {
			c.Overdue++
		}
	}
	return c
}
