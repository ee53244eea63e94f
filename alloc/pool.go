package alloc

import "fmt"

// Pool is an unbounded allocation strategy. Slots are allocated sequentially
// and freed slots are recycled, most recently freed first.
//
// The zero-value is a valid, empty pool.
type Pool struct {
	next  Slot
	freed []Slot
	free  map[Slot]struct{} // set of the slots held in freed
	poolStats
}

type poolStats struct {
	allocs   int64
	frees    int64
	failures int64
}

// Stats is a structure carrying statistics collected on an allocation
// strategy.
//
// All counters are absolute values accumulated since the strategy was created.
type Stats struct {
	Allocs   int64 // slots handed out
	Frees    int64 // slots returned
	Failures int64 // allocations that returned an error
	Live     int64 // slots currently allocated
}

// Alloc returns a free slot.
//
// Complexity: O(1) amortized
func (p *Pool) Alloc() (Slot, error) {
	if i := len(p.freed) - 1; i >= 0 {
		slot := p.freed[i]
		p.freed = p.freed[:i]
		delete(p.free, slot)
		p.allocs++
		return slot, nil
	}
	if p.next == MaxSlots {
		p.failures++
		return Nil, ErrNoSlots
	}
	p.next++
	p.allocs++
	return p.next, nil
}

// Free returns slot to the pool.
//
// The method panics if slot was never allocated by the pool, or if it was
// already freed.
func (p *Pool) Free(slot Slot) {
	if slot == Nil || slot > p.next {
		panic(fmt.Errorf("cannot free slot %d which was not allocated by this pool", slot))
	}
	if _, freed := p.free[slot]; freed {
		panic(fmt.Errorf("cannot free slot %d twice", slot))
	}
	if p.free == nil {
		p.free = make(map[Slot]struct{})
	}
	p.free[slot] = struct{}{}
	p.freed = append(p.freed, slot)
	p.frees++
}

// Len returns the number of slots currently allocated.
func (p *Pool) Len() int { return int(p.next) - len(p.freed) }

// Fork returns a new empty pool.
func (p *Pool) Fork() Interface { return new(Pool) }

// Stats returns the current values of the pool statistics.
func (p *Pool) Stats() Stats {
	return Stats{
		Allocs:   p.allocs,
		Frees:    p.frees,
		Failures: p.failures,
		Live:     int64(p.Len()),
	}
}
