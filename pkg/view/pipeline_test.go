package view

import (
	"reflect"
	"testing"
	"time"

	"taskflow/pkg/tracker"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func task(id, userID string, priority tracker.Priority, completed bool, createdAt time.Time) tracker.Task {
	return tracker.Task{
		ID:        id,
		Title:     "Task " + id,
		Completed: completed,
		CreatedAt: createdAt,
		Priority:  priority,
		Category:  "General",
		UserID:    userID,
	}
}

func ids(tasks []tracker.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func scenarioTasks() []tracker.Task {
	t0 := testNow.Add(-24 * time.Hour)
	return []tracker.Task{
		{ID: "1", Title: "Buy milk", Priority: tracker.PriorityLow, CreatedAt: t0, UserID: "u1"},
		{ID: "2", Title: "File taxes", Priority: tracker.PriorityUrgent, CreatedAt: t0, UserID: "u1"},
	}
}

func TestApplySortsByPriority(t *testing.T) {
	// Scenario: urgent task sorts above low, same user, no filters
	result := Apply(scenarioTasks(), "u1", "", FilterAll, testNow)

	want := []string{"2", "1"}
	if got := ids(result.Tasks); !reflect.DeepEqual(got, want) {
		t.Errorf("expected order %v, got %v", want, got)
	}
}

func TestApplyStatusFilters(t *testing.T) {
	tasks := scenarioTasks()
	tasks[1].Completed = true // "File taxes" done

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"pending hides completed", FilterPending, []string{"1"}},
		{"completed hides pending", FilterCompleted, []string{"2"}},
		{"all keeps everything, pending first", FilterAll, []string{"1", "2"}},
		{"overdue empty without due dates", FilterOverdue, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Apply(tasks, "u1", "", tt.filter, testNow)
			if got := ids(result.Tasks); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}

			want := Counts{All: 2, Completed: 1, Pending: 1, Overdue: 0}
			if result.Counts != want {
				t.Errorf("expected counts %+v, got %+v", want, result.Counts)
			}
		})
	}
}

func TestApplyOverdue(t *testing.T) {
	yesterday := testNow.Add(-24 * time.Hour)
	overdueTask := task("1", "u1", tracker.PriorityMedium, false, yesterday)
	overdueTask.DueDate = &yesterday

	result := Apply([]tracker.Task{overdueTask}, "u1", "", FilterOverdue, testNow)
	if got := ids(result.Tasks); !reflect.DeepEqual(got, []string{"1"}) {
		t.Fatalf("expected overdue task to be visible, got %v", got)
	}
	if result.Counts.Overdue != 1 {
		t.Errorf("expected overdue count 1, got %d", result.Counts.Overdue)
	}

	// Completing the task removes it from both the filter and the count
	overdueTask.Completed = true
	result = Apply([]tracker.Task{overdueTask}, "u1", "", FilterOverdue, testNow)
	if len(result.Tasks) != 0 {
		t.Errorf("expected no overdue tasks after completion, got %v", ids(result.Tasks))
	}
	if result.Counts.Overdue != 0 {
		t.Errorf("expected overdue count 0 after completion, got %d", result.Counts.Overdue)
	}
}

func TestApplySearch(t *testing.T) {
	tasks := scenarioTasks()
	tasks[0].Description = "from the corner shop"
	tasks[0].Category = "Shopping"

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"matches title case-insensitively", "tax", []string{"2"}},
		{"matches description", "CORNER", []string{"1"}},
		{"matches category", "shopp", []string{"1"}},
		{"no match", "holiday", []string{}},
		{"empty term keeps everything", "", []string{"2", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Apply(tasks, "u1", tt.search, FilterAll, testNow)
			if got := ids(result.Tasks); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("search %q: expected %v, got %v", tt.search, tt.want, got)
			}
			// Counts ignore the search term
			if result.Counts.All != 2 {
				t.Errorf("search %q: expected counts over the full scoped set, got %+v", tt.search, result.Counts)
			}
		})
	}
}

func TestApplyScopeIsolation(t *testing.T) {
	t0 := testNow.Add(-time.Hour)
	tasks := []tracker.Task{
		task("a", "u1", tracker.PriorityLow, false, t0),
		task("b", "u2", tracker.PriorityUrgent, false, t0),
		task("c", "u1", tracker.PriorityHigh, true, t0),
	}

	result := Apply(tasks, "u1", "", FilterAll, testNow)
	for _, got := range result.Tasks {
		if got.UserID != "u1" {
			t.Errorf("task %s belongs to %s, leaked into u1's view", got.ID, got.UserID)
		}
	}
	if result.Counts.All != 2 {
		t.Errorf("expected 2 scoped tasks, got %d", result.Counts.All)
	}
}

func TestApplyIsPure(t *testing.T) {
	tasks := scenarioTasks()
	first := Apply(tasks, "u1", "", FilterAll, testNow)
	second := Apply(tasks, "u1", "", FilterAll, testNow)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different results:\n%+v\n%+v", first, second)
	}
	// The input collection must not be reordered
	if tasks[0].ID != "1" || tasks[1].ID != "2" {
		t.Errorf("pipeline mutated its input: %v", ids(tasks))
	}
}

func TestApplySortStability(t *testing.T) {
	t0 := testNow.Add(-time.Hour)
	// Same completion state, priority and creation time: input order wins
	tasks := []tracker.Task{
		task("first", "u1", tracker.PriorityMedium, false, t0),
		task("second", "u1", tracker.PriorityMedium, false, t0),
		task("third", "u1", tracker.PriorityMedium, false, t0),
	}

	result := Apply(tasks, "u1", "", FilterAll, testNow)
	want := []string{"first", "second", "third"}
	if got := ids(result.Tasks); !reflect.DeepEqual(got, want) {
		t.Errorf("expected stable order %v, got %v", want, got)
	}
}

func TestApplySortComposite(t *testing.T) {
	older := testNow.Add(-2 * time.Hour)
	newer := testNow.Add(-time.Hour)
	tasks := []tracker.Task{
		task("done-urgent", "u1", tracker.PriorityUrgent, true, newer),
		task("low-old", "u1", tracker.PriorityLow, false, older),
		task("low-new", "u1", tracker.PriorityLow, false, newer),
		task("high", "u1", tracker.PriorityHigh, false, older),
	}

	result := Apply(tasks, "u1", "", FilterAll, testNow)
	// Incomplete before completed, then priority, then newest first
	want := []string{"high", "low-new", "low-old", "done-urgent"}
	if got := ids(result.Tasks); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCountCompleteness(t *testing.T) {
	t0 := testNow.Add(-time.Hour)
	tasks := []tracker.Task{
		task("a", "u1", tracker.PriorityLow, false, t0),
		task("b", "u1", tracker.PriorityLow, true, t0),
		task("c", "u1", tracker.PriorityLow, true, t0),
		task("d", "u2", tracker.PriorityLow, false, t0),
	}

	result := Apply(tasks, "u1", "", FilterAll, testNow)
	if result.Counts.All != result.Counts.Completed+result.Counts.Pending {
		t.Errorf("counts.all (%d) != completed (%d) + pending (%d)",
			result.Counts.All, result.Counts.Completed, result.Counts.Pending)
	}
}

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name   string
		counts Counts
		want   int
	}{
		{"empty", Counts{}, 0},
		{"half", Counts{All: 2, Completed: 1}, 50},
		{"rounds", Counts{All: 3, Completed: 2}, 67},
		{"full", Counts{All: 4, Completed: 4}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.counts.CompletionRate(); got != tt.want {
				t.Errorf("expected %d%%, got %d%%", tt.want, got)
			}
		})
	}
}
