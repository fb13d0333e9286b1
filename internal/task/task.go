package task

import (
	"fmt"
	"strings"

	todoerrors "todo/internal/errors"
)

// Priority indicates how urgent a task is.
// Priority values use capitalized names for JSON serialization compatibility.
type Priority string

// Priority constants define the valid priority levels. PriorityNone is the
// zero value and marks a task with no priority assigned; it is omitted from
// serialized output.
const (
	// PriorityNone indicates no priority was assigned.
	PriorityNone Priority = ""

	// PriorityHigh indicates the task should be handled first.
	PriorityHigh Priority = "High"

	// PriorityMedium indicates normal urgency.
	PriorityMedium Priority = "Medium"

	// PriorityLow indicates the task can wait.
	PriorityLow Priority = "Low"
)

// String returns the string representation of the Priority.
// This implements fmt.Stringer for convenient logging and debugging.
func (p Priority) String() string {
	return string(p)
}

// IsValid reports whether p is one of the known priority levels.
// The unset priority is valid.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityNone, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// ValidPriorities returns the assignable priority levels in display order.
func ValidPriorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// ParsePriority converts user input into a Priority. Matching is
// case-insensitive, and the empty string parses to PriorityNone.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PriorityNone, nil
	case "high":
		return PriorityHigh, nil
	case "medium":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	default:
		return PriorityNone, fmt.Errorf("failed to parse priority %q: %w", s, todoerrors.ErrInvalidPriority)
	}
}

// Filter selects which tasks a listing yields.
type Filter string

// Filter constants define the valid listing filters.
const (
	// FilterAll yields every task.
	FilterAll Filter = "all"

	// FilterCompleted yields only completed tasks.
	FilterCompleted Filter = "completed"

	// FilterPending yields only tasks not yet completed.
	FilterPending Filter = "pending"
)

// String returns the string representation of the Filter.
func (f Filter) String() string {
	return string(f)
}

// IsValid reports whether f is a known filter.
func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterCompleted, FilterPending:
		return true
	default:
		return false
	}
}

// ValidFilters returns the known filters in display order.
func ValidFilters() []Filter {
	return []Filter{FilterAll, FilterCompleted, FilterPending}
}

// Match reports whether t passes the filter. Unknown filters match
// everything; they are rejected at parse time, not here.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterCompleted:
		return t.Completed
	case FilterPending:
		return !t.Completed
	default:
		return true
	}
}

// ParseFilter converts user input into a Filter. Matching is
// case-insensitive, and the empty string parses to FilterAll.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "completed":
		return FilterCompleted, nil
	case "pending":
		return FilterPending, nil
	default:
		return FilterAll, fmt.Errorf("failed to parse filter %q: %w", s, todoerrors.ErrInvalidFilter)
	}
}

// Task is a single todo item.
//
// Example JSON representation:
//
//	{
//	    "title": "Pay bills",
//	    "completed": true,
//	    "priority": "High"
//	}
type Task struct {
	// Title is the human-readable description of the task.
	// It is never empty after validation.
	Title string `json:"title" yaml:"title"`

	// Completed reports whether the task has been marked done.
	Completed bool `json:"completed" yaml:"completed"`

	// Priority is the optional urgency level (High, Medium, Low).
	// The unset priority is omitted from serialized output.
	Priority Priority `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// New creates a task from a title and optional priority. The title is
// trimmed of surrounding whitespace and must not be empty afterward.
func New(title string, priority Priority) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, fmt.Errorf("failed to create task: %w", todoerrors.ErrEmptyTitle)
	}
	if !priority.IsValid() {
		return Task{}, fmt.Errorf("failed to create task: priority %q: %w", priority, todoerrors.ErrInvalidPriority)
	}
	return Task{Title: title, Priority: priority}, nil
}

// Complete marks the task as done.
// Completing an already-completed task is a no-op.
func (t *Task) Complete() {
	t.Completed = true
}

// Validate checks that a task loaded from disk is well formed.
// Titles are kept as stored; only empty and whitespace-only titles
// are rejected.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return todoerrors.ErrEmptyTitle
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("priority %q: %w", t.Priority, todoerrors.ErrInvalidPriority)
	}
	return nil
}
