package alloc

// Limited wraps an underlying allocation strategy, refusing allocations once a
// number of slots are live.
//
// By default, a Pool is used as backend.
type Limited struct {
	limit    int
	failures int64
	backend  Interface
}

// Init (re-)initializes the strategy with the given backend and slot budget.
// A nil backend selects a new Pool.
func (l *Limited) Init(backend Interface, limit int) {
	if backend == nil {
		backend = new(Pool)
	}
	l.limit = limit
	l.failures = 0
	l.backend = backend
}

// Alloc returns a free slot from the backend, or ErrNoSlots if the budget is
// exhausted.
func (l *Limited) Alloc() (Slot, error) {
	if l.backend == nil {
		l.backend = new(Pool)
	}
	if l.limit > 0 && l.backend.Len() >= l.limit {
		l.failures++
		return Nil, ErrNoSlots
	}
	return l.backend.Alloc()
}

// Free returns slot to the backend.
func (l *Limited) Free(slot Slot) {
	if l.backend == nil {
		l.backend = new(Pool)
	}
	l.backend.Free(slot)
}

// Len returns the number of slots currently allocated.
func (l *Limited) Len() int {
	if l.backend != nil {
		return l.backend.Len()
	}
	return 0
}

// Limit returns the slot budget, zero meaning unlimited.
func (l *Limited) Limit() int { return l.limit }

// Fork returns a new empty strategy with the same budget and a fork of the
// backend.
func (l *Limited) Fork() Interface {
	f := new(Limited)
	if l.backend != nil {
		f.Init(l.backend.Fork(), l.limit)
	} else {
		f.Init(nil, l.limit)
	}
	return f
}

// Stats returns the statistics of the backend, adding the allocations refused
// because of the budget. Backends which do not collect statistics only report
// the live slots and refused allocations.
func (l *Limited) Stats() Stats {
	var stats Stats
	if s, ok := l.backend.(interface{ Stats() Stats }); ok {
		stats = s.Stats()
	} else {
		stats.Live = int64(l.Len())
	}
	stats.Failures += l.failures
	return stats
}
