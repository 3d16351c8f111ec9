package lineMap

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
)

const (
	LineSnapshotTypeInitial  = "initial"
	LineSnapshotTypeChange   = "change"
	LineSnapshotTypeNoChange = "no-change"

	LineSnapshotTypeExpanding   = "expanding"
	LineSnapshotTypeContracting = "contracting"
	lineChangeTypeUnchanged     = "unchanged"
)

// LineChange describes what happened to a single line number between one
// snapshot and the next: it either passed through unchanged (possibly at a
// shifted index), was introduced by an expansion, or was removed along with
// a contracted block.
type LineChange struct {
	_type  string // expanding, contracting, or unchanged
	origin int    // Line number in the previous snapshot, or -1 if none.

	// Expanding information.
	expandingRangeStart int
	expandingRangeEnd   int
	expandingLines      []string

	// Contracting information.
	contractingRangeStart int
	contractingRangeEnd   int
	contractingLines      []string
}

func newLineChange(_type string, origin, rangeStart, rangeEnd int) (*LineChange, error) {
	if rangeStart > rangeEnd || rangeStart < 0 || rangeEnd < 0 {
		return nil, errors.New("invalid line change range")
	}

	if _type != LineSnapshotTypeExpanding && _type != LineSnapshotTypeContracting && _type != lineChangeTypeUnchanged {
		return nil, errors.New("invalid line change type")
	}

	if _type == lineChangeTypeUnchanged && rangeStart != rangeEnd {
		return nil, errors.New("unchanged line change must have rangeStart equal to rangeEnd")
	}

	switch _type {
	case LineSnapshotTypeExpanding:
		return &LineChange{_type: _type, origin: origin, expandingRangeStart: rangeStart, expandingRangeEnd: rangeEnd}, nil
	case LineSnapshotTypeContracting:
		return &LineChange{_type: _type, origin: origin, contractingRangeStart: rangeStart, contractingRangeEnd: rangeEnd}, nil
	default:
		return &LineChange{_type: _type, origin: origin}, nil
	}
}

// Type returns the kind of change: "expanding", "contracting", or "unchanged".
func (lc *LineChange) Type() string { return lc._type }

// Origin returns the line number in the previous snapshot this line traces
// back to, or -1 if the line has no predecessor (it was introduced by an
// expansion).
func (lc *LineChange) Origin() int { return lc.origin }

// String returns a string representation of the LineChange for debugging purposes.
func (lc *LineChange) String() string {
	switch lc._type {
	case LineSnapshotTypeExpanding:
		return fmt.Sprintf("LineChange{Type: %s, Origin: %d, ExpandingRange: [%d-%d], ExpandingLines: %v}",
			lc._type, lc.origin, lc.expandingRangeStart, lc.expandingRangeEnd, lc.expandingLines)
	case LineSnapshotTypeContracting:
		return fmt.Sprintf("LineChange{Type: %s, Origin: %d, ContractingRange: [%d-%d], ContractingLines: %v}",
			lc._type, lc.origin, lc.contractingRangeStart, lc.contractingRangeEnd, lc.contractingLines)
	default:
		return fmt.Sprintf("LineChange{Type: %s, Origin: %d}", lc._type, lc.origin)
	}
}

type LinesSnapshot struct {
	_type   string
	hash    string
	source  string
	lines   []string
	changes *map[int]LineChange
}

type History struct {
	hasInitialSnapshot bool
	items              []LinesSnapshot
}

// empty returns true if the history is empty.
func (h *History) empty() bool {
	return len(h.items) == 0
}

// LineOrigin traces a line number in the current (latest) snapshot back through
// all change snapshots to find the original line number in the initial snapshot.
// Returns -1 if the line cannot be traced (e.g. it was inserted by the macro
// expander).
func (h *History) LineOrigin(lineNumber int) int {
	if h.empty() {
		return -1
	}

	current := lineNumber

	// Walk backwards through snapshots (skip the initial one at index 0).
	for i := len(h.items) - 1; i > 0; i-- {
		snapshot := h.items[i]
		if snapshot.changes == nil {
			continue
		}

		change, exists := (*snapshot.changes)[current]
		if !exists {
			// Line was not part of any change, it maps 1:1.
			continue
		}

		switch change._type {
		case LineSnapshotTypeExpanding:
			// This line was inserted by the preprocessor; it has no origin.
			return -1
		case LineSnapshotTypeContracting:
			// This line was removed; it has no origin.
			return -1
		default:
			// unchanged — trace through to the original position
			current = change.origin
		}
	}

	return current
}

// LineHistory returns the chronological (oldest-first) evolution of a line
// across every recorded snapshot, tracing it back the same way LineOrigin
// does but keeping one entry per step instead of collapsing to a single
// origin line.
func (h *History) LineHistory(lineNumber int) []LineChange {
	if h.empty() {
		return nil
	}

	current := lineNumber
	var steps []LineChange

	for i := len(h.items) - 1; i > 0; i-- {
		snapshot := h.items[i]

		var change LineChange
		if snapshot.changes != nil {
			if recorded, exists := (*snapshot.changes)[current]; exists {
				change = recorded
			} else {
				change = LineChange{_type: lineChangeTypeUnchanged, origin: current}
			}
		} else {
			change = LineChange{_type: lineChangeTypeUnchanged, origin: current}
		}

		steps = append(steps, change)

		switch change._type {
		case LineSnapshotTypeExpanding, LineSnapshotTypeContracting:
			// No predecessor to continue tracing from.
			current = -1
		default:
			current = change.origin
		}
	}

	// steps was built latest-first; reverse it to oldest-first.
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return steps
}

// snapshot creates a snapshot of the current state of Instance and appends it
// to the history. When the snapshot type is LineSnapshotTypeChange, changes
// should contain the computed diff; for other types it may be nil.
func (h *History) snapshot(instance *Instance, _type string, changes *map[int]LineChange) error {
	// Cannot have more than one initial snapshot in the history.
	if _type == LineSnapshotTypeInitial && h.hasInitialSnapshot {
		return errors.New("initial snapshot already exists in history")
	}

	h.items = append(h.items, LinesSnapshot{
		_type:   _type,
		hash:    h.snapshotHashGenerate(instance.value),
		source:  instance.value,
		lines:   strings.Split(instance.value, "\n"),
		changes: changes,
	})

	if _type == LineSnapshotTypeInitial {
		h.hasInitialSnapshot = true
	}

	return nil
}

// snapshotHashGenerate generates a hash for the source of a snapshot. This is
// used to quickly compare snapshots and determine if they are identical.
func (h *History) snapshotHashGenerate(source string) string {
	return generateSourceHash(source)
}

// SourceCompare compares the source of a snapshot with a given value. Returns
// true if the sources are equal.
func (s *LinesSnapshot) SourceCompare(value string) bool {
	return s.hash == generateSourceHash(value)
}

// generateSourceHash generates a hash for a given source string. This is used
// to quickly compare sources and determine if they are identical.
func generateSourceHash(source string) string {
	hash := sha256.Sum256([]byte(source))
	return fmt.Sprintf("%x", hash)
}
