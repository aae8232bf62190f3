// Package history keeps the linear undo/redo log of layer mutations.
package history

import (
	"fmt"

	"github.com/milk9111/paintbox/canvas"
)

// DefaultMaxDepth bounds the log when no depth is configured.
const DefaultMaxDepth = 100

// Log is a linear history with a cursor at the last applied action.
// -1 <= cursor < len(actions) at all times.
type Log struct {
	actions  []Action
	cursor   int
	maxDepth int
}

// NewLog returns an empty log. maxDepth <= 0 means unbounded.
func NewLog(maxDepth int) *Log {
	return &Log{cursor: -1, maxDepth: maxDepth}
}

// Record appends a, discarding anything after the cursor.
func (l *Log) Record(a Action) {
	l.actions = append(l.actions[:l.cursor+1], a)
	if l.maxDepth > 0 && len(l.actions) > l.maxDepth {
		drop := len(l.actions) - l.maxDepth
		l.actions = append(l.actions[:0], l.actions[drop:]...)
	}
	l.cursor = len(l.actions) - 1
}

// Undo reverts the action at the cursor. With nothing to undo it returns
// (nil, nil). The cursor only moves when the inverse applied cleanly.
func (l *Log) Undo(s *canvas.Stack) (Action, error) {
	if l.cursor < 0 {
		return nil, nil
	}
	a := l.actions[l.cursor]
	if err := revert(s, a); err != nil {
		return a, fmt.Errorf("undo %s: %w", a, err)
	}
	l.cursor--
	return a, nil
}

// Redo re-applies the action after the cursor. With nothing to redo it
// returns (nil, nil).
func (l *Log) Redo(s *canvas.Stack) (Action, error) {
	if l.cursor+1 >= len(l.actions) {
		return nil, nil
	}
	a := l.actions[l.cursor+1]
	if err := apply(s, a); err != nil {
		return a, fmt.Errorf("redo %s: %w", a, err)
	}
	l.cursor++
	return a, nil
}

func (l *Log) CanUndo() bool { return l.cursor >= 0 }
func (l *Log) CanRedo() bool { return l.cursor+1 < len(l.actions) }

// Cursor is the index of the last applied action, -1 when none is.
func (l *Log) Cursor() int { return l.cursor }
func (l *Log) Len() int    { return len(l.actions) }

// Actions returns a copy of the recorded history.
func (l *Log) Actions() []Action {
	out := make([]Action, len(l.actions))
	copy(out, l.actions)
	return out
}

// Clear forgets all history.
func (l *Log) Clear() {
	l.actions = nil
	l.cursor = -1
}
