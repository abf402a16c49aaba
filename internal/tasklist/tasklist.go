// Package tasklist implements the operations on the ordered to-do list.
//
// Tasks have no stable identity: they are addressed by their 1-based
// position in the list. Every operation takes a snapshot of the list and
// returns a new one, leaving its input untouched, so positions are always
// recomputed from the latest snapshot.
package tasklist

import (
	"errors"
	"strings"
)

// Task is a single to-do item.
type Task struct {
	Name string `json:"name"`
	Done bool   `json:"done"`
}

// List is an ordered sequence of tasks. Order is display order.
type List []Task

var (
	// ErrEmptyList is returned when an operation needs at least one task.
	ErrEmptyList = errors.New("task list is empty")

	// ErrIndexOutOfRange is returned when an index is outside [1, len].
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEmptyName is returned by Add for a blank task name.
	ErrEmptyName = errors.New("task name required")

	// ErrAllDone is returned by MarkDone when every task is already done.
	ErrAllDone = errors.New("all tasks already completed")

	// ErrAlreadyDone is returned by MarkDone when the target task is done.
	ErrAlreadyDone = errors.New("task already done")

	// ErrAlreadyPending is returned by MarkUndone when the target task is pending.
	ErrAlreadyPending = errors.New("task still pending")

	// ErrNoChange is returned when an operation would leave the list as is.
	ErrNoChange = errors.New("no updates made")
)

// IsNoOp reports whether err means the list already was in the requested state.
func IsNoOp(err error) bool {
	return errors.Is(err, ErrAllDone) ||
		errors.Is(err, ErrAlreadyDone) ||
		errors.Is(err, ErrAlreadyPending) ||
		errors.Is(err, ErrNoChange)
}

// Clone returns a copy of l. A nil list clones to an empty, non-nil list.
func (l List) Clone() List {
	out := make(List, len(l))
	copy(out, l)
	return out
}

// AllDone reports whether every task is done. An empty list counts as all
// done, which makes the renderer show the all-clear message for it.
func AllDone(l List) bool {
	for _, t := range l {
		if !t.Done {
			return false
		}
	}
	return true
}

// Add appends a pending task named name.
func Add(l List, name string) (List, error) {
	if strings.TrimSpace(name) == "" {
		return l, ErrEmptyName
	}
	out := make(List, len(l), len(l)+1)
	copy(out, l)
	return append(out, Task{Name: name}), nil
}

// Delete removes the task at the 1-based index and returns it.
func Delete(l List, index int) (List, Task, error) {
	if len(l) == 0 {
		return l, Task{}, ErrEmptyList
	}
	if !inRange(l, index) {
		return l, Task{}, ErrIndexOutOfRange
	}
	removed := l[index-1]
	out := make(List, 0, len(l)-1)
	out = append(out, l[:index-1]...)
	out = append(out, l[index:]...)
	return out, removed, nil
}

// MarkDone marks the task at the 1-based index as done. When every task is
// already done it returns ErrAllDone without looking at the index.
func MarkDone(l List, index int) (List, error) {
	if len(l) == 0 {
		return l, ErrEmptyList
	}
	if AllDone(l) {
		return l, ErrAllDone
	}
	if !inRange(l, index) {
		return l, ErrIndexOutOfRange
	}
	if l[index-1].Done {
		return l, ErrAlreadyDone
	}
	out := l.Clone()
	out[index-1].Done = true
	return out, nil
}

// MarkUndone marks the task at the 1-based index as pending.
func MarkUndone(l List, index int) (List, error) {
	if len(l) == 0 {
		return l, ErrEmptyList
	}
	if !inRange(l, index) {
		return l, ErrIndexOutOfRange
	}
	if !l[index-1].Done {
		return l, ErrAlreadyPending
	}
	out := l.Clone()
	out[index-1].Done = false
	return out, nil
}

// Move swaps the tasks at two 1-based positions. It is a swap, not an
// insert: moving 1 to 3 exchanges tasks 1 and 3 and leaves task 2 in place.
func Move(l List, oldIndex, newIndex int) (List, error) {
	if len(l) == 0 {
		return l, ErrEmptyList
	}
	if !inRange(l, oldIndex) || !inRange(l, newIndex) {
		return l, ErrIndexOutOfRange
	}
	if oldIndex == newIndex {
		return l, ErrNoChange
	}
	out := l.Clone()
	out[oldIndex-1], out[newIndex-1] = out[newIndex-1], out[oldIndex-1]
	return out, nil
}

// Clean drops done tasks, keeping pending ones in their relative order.
func Clean(l List) (List, error) {
	out := make(List, 0, len(l))
	for _, t := range l {
		if !t.Done {
			out = append(out, t)
		}
	}
	if len(out) == len(l) {
		return l, ErrNoChange
	}
	return out, nil
}

func inRange(l List, index int) bool {
	return index >= 1 && index <= len(l)
}
