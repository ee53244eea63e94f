// Package alloc contains the allocation strategies used by the containers of
// this module to hand out node slots.
//
// Containers keep their nodes in an arena indexed by slots. A strategy decides
// which slot a new node goes into, when freed slots are recycled, and whether
// an allocation may fail. Slot zero is reserved by containers to represent the
// absence of a node and is never returned by Alloc.
//
// Like the rest of the module, strategies do not synchronize access, which
// makes them unsafe to use concurrently from multiple goroutines.
package alloc

import (
	"errors"
	"math"
)

// Slot is the index of a node in the arena of a container.
type Slot uint32

const (
	// Nil is the reserved slot, it never designates an allocated node.
	Nil Slot = 0

	// MaxSlots is the largest number of slots a strategy can hand out.
	MaxSlots Slot = math.MaxUint32 - 1
)

var (
	// ErrNoSlots is returned when a strategy refuses to allocate more slots,
	// either because its budget is exhausted or the address space is.
	ErrNoSlots = errors.New("there are no free slots left in the allocator")
)

// Interface is the interface implemented by allocation strategies.
type Interface interface {
	// Returns a free slot, or an error if no slot could be allocated.
	Alloc() (Slot, error)

	// Returns a slot obtained from Alloc to the strategy.
	Free(Slot)

	// Returns the number of slots currently allocated.
	Len() int

	// Returns a new, empty strategy configured like this one. Containers use
	// it to give copies their own allocator.
	Fork() Interface
}

// Limiter is implemented by strategies which cap the number of slots they
// allocate.
type Limiter interface {
	Limit() int
}

// DefaultSlotLimit is the default slot budget, zero means no budget beyond
// the slot address space.
const DefaultSlotLimit = 0

// Config carries the configuration of allocation strategies.
type Config struct {
	SlotLimit int
}

// DefaultConfig constructs a new Config instance initialized with the default
// configuration.
func DefaultConfig() *Config {
	return &Config{
		SlotLimit: DefaultSlotLimit,
	}
}

// Apply applies the list of options passed as arguments to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

// Option is an interface implemented by options allowing configuration of new
// allocation strategies.
type Option interface {
	Configure(*Config)
}

type option func(*Config)

func (opt option) Configure(config *Config) { opt(config) }

// SlotLimit is a configuration option setting the maximum number of slots that
// may be allocated at the same time. Allocations beyond the limit fail with
// ErrNoSlots.
//
// Default: 0 (unlimited)
func SlotLimit(limit int) Option {
	return option(func(config *Config) { config.SlotLimit = limit })
}

// New constructs a new allocation strategy, using the list of options passed as
// arguments to configure it.
func New(options ...Option) Interface {
	config := DefaultConfig()
	config.Apply(options...)
	return NewWithConfig(config)
}

// NewWithConfig is like New but uses a Config instance to pass the
// configuration instead of a list of options.
func NewWithConfig(config *Config) Interface {
	if config.SlotLimit <= 0 || uint64(config.SlotLimit) >= uint64(MaxSlots) {
		return new(Pool)
	}
	l := new(Limited)
	l.Init(new(Pool), config.SlotLimit)
	return l
}
