package domain

// BoardGroup represents the board column a status belongs to
type BoardGroup int

const (
	GroupPlanned BoardGroup = iota
	GroupActive
	GroupResolved
)

// String returns the display string
func (g BoardGroup) String() string {
	switch g {
	case GroupPlanned:
		return "Planned"
	case GroupActive:
		return "Active"
	case GroupResolved:
		return "Resolved"
	default:
		return "Unknown"
	}
}

// GroupFor maps a status to its board group. The second return value is
// false for statuses outside the known enumeration; those tasks belong to
// no column and are skipped rather than rejected, so snapshots written by
// a newer version of the app still render.
func GroupFor(s Status) (BoardGroup, bool) {
	switch s {
	case StatusPlan:
		return GroupPlanned, true
	case StatusPending, StatusOverdue:
		return GroupActive, true
	case StatusDone, StatusCancelled:
		return GroupResolved, true
	default:
		return 0, false
	}
}

// Board holds tasks partitioned into the three board columns
type Board struct {
	Planned  []Task
	Active   []Task
	Resolved []Task
}

// BuildBoard partitions tasks into board columns, preserving the relative
// order of the input within each column
func BuildBoard(tasks []Task) Board {
	var b Board
	for _, t := range tasks {
		group, ok := GroupFor(t.Status)
		if !ok {
			continue
		}
		switch group {
		case GroupPlanned:
			b.Planned = append(b.Planned, t)
		case GroupActive:
			b.Active = append(b.Active, t)
		case GroupResolved:
			b.Resolved = append(b.Resolved, t)
		}
	}
	return b
}
