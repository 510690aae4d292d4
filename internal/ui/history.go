package ui

const defaultMaxDepth = 50

// Snapshot captures the raw R/W/V field text at a point in time.
type Snapshot struct {
	R, W, V string
	Label   string // e.g. "Increment W"
}

// Snapshot returns the current fields as a Snapshot.
func (s *CalculatorState) Snapshot(label string) Snapshot {
	return Snapshot{R: s.R, W: s.W, V: s.V, Label: label}
}

// Restore puts the fields of snap back and clears the last outcome.
func (s *CalculatorState) Restore(snap Snapshot) {
	s.R, s.W, s.V = snap.R, snap.W, snap.V
	s.Err = nil
	s.Results = nil
}

// History keeps bounded undo and redo stacks of field snapshots.
type History struct {
	undo     []Snapshot
	redo     []Snapshot
	maxDepth int
}

// NewHistory creates a History holding at most 50 undo steps.
func NewHistory() *History {
	return &History{maxDepth: defaultMaxDepth}
}

// Push records the state before a change and drops any redo steps.
// Pushing a snapshot equal to the top of the undo stack is a no-op.
func (h *History) Push(s Snapshot) {
	if n := len(h.undo); n > 0 && sameFields(h.undo[n-1], s) {
		return
	}
	h.undo = append(h.undo, s)
	if over := len(h.undo) - h.maxDepth; over > 0 {
		h.undo = h.undo[over:]
	}
	h.redo = nil
}

// Undo returns the snapshot to restore and saves current for Redo.
// ok is false when there is nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	snap, ok := pop(&h.undo)
	if ok {
		h.redo = append(h.redo, current)
	}
	return snap, ok
}

// Redo is the inverse of Undo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	snap, ok := pop(&h.redo)
	if ok {
		h.undo = append(h.undo, current)
	}
	return snap, ok
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Clear drops all history.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}

func pop(stack *[]Snapshot) (Snapshot, bool) {
	n := len(*stack)
	if n == 0 {
		return Snapshot{}, false
	}
	top := (*stack)[n-1]
	*stack = (*stack)[:n-1]
	return top, true
}

func sameFields(a, b Snapshot) bool {
	return a.R == b.R && a.W == b.W && a.V == b.V
}
