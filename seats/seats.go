/*
Package seats allocates numbered seats from an ordered pool.

An allocation session inserts all seat numbers into a red-black tree and hands
out seats by repeatedly extracting the smallest free seat number. Released
seats return to the pool and will be handed out again before any higher seat.

Allocators are not safe for concurrent use. Allocation events are broadcast
asynchronously to subscribers.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package seats

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/guiguan/caster"
	"github.com/npillmayer/rbtree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SeatError is an error type for the seats module
type SeatError string

func (e SeatError) Error() string {
	return string(e)
}

// ErrSoldOut is flagged when more seats are requested than are free.
const ErrSoldOut = SeatError("not enough free seats")

// ErrNotAllocated is flagged when releasing a seat which is free.
const ErrNotAllocated = SeatError("seat is not allocated")

// ErrClosed is flagged when subscribing to a closed allocator.
const ErrClosed = SeatError("allocator is closed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SeatError("illegal arguments")

// Config configures an allocator. The zero value numbers seats starting at 1.
//
// A FirstSeat of 0 selects the default, i.e. seat numbers cannot start at 0.
// Negative seat numbers are allowed.
type Config struct {
	FirstSeat int // number of the first seat; 0 means 1
}

func (cfg *Config) normalized() Config {
	c := Config{}
	if cfg != nil {
		c = *cfg
	}
	if c.FirstSeat == 0 {
		c.FirstSeat = 1
	}
	return c
}

// Required computes the number of seats to allocate for an expected
// occupancy, given as a fraction in [0…1]. The result is rounded down.
func Required(seatCount int, occupancy float64) (int, error) {
	if seatCount < 0 || math.IsNaN(occupancy) || occupancy < 0 || occupancy > 1 {
		return 0, fmt.Errorf("%w: %d seats at occupancy %g", ErrIllegalArguments, seatCount, occupancy)
	}
	return int(math.Floor(occupancy * float64(seatCount))), nil
}

// EventKind tells allocation events apart.
type EventKind uint8

const (
	Allocated EventKind = iota // seats have been handed out
	Released                   // a seat has been returned to the pool
)

func (k EventKind) String() string {
	if k == Allocated {
		return "allocated"
	}
	return "released"
}

// Event is broadcast to subscribers for every Allocate and Release.
type Event struct {
	Kind  EventKind
	Seats []int // seats allocated or released, in ascending order
	Free  int   // number of free seats after the operation
}

// Allocator hands out seats in ascending order of seat numbers.
type Allocator struct {
	cfg   Config
	count int
	pool  *rbtree.Tree
	cast  *caster.Caster // broadcaster for allocation events
}

// NewAllocator creates an allocator for seatCount seats, all of them free.
func NewAllocator(seatCount int, cfg *Config) (*Allocator, error) {
	if seatCount < 1 {
		return nil, fmt.Errorf("%w: seat count %d", ErrIllegalArguments, seatCount)
	}
	c := cfg.normalized()
	if c.FirstSeat > math.MaxInt-seatCount+1 {
		return nil, fmt.Errorf("%w: %d seats starting at %d exceed the range of int",
			ErrIllegalArguments, seatCount, c.FirstSeat)
	}
	a := &Allocator{
		cfg:   c,
		count: seatCount,
		pool:  rbtree.New(),
		cast:  caster.New(nil), // we will broadcast messages when seats change hands
	}
	last := c.FirstSeat + seatCount - 1
	for i := 0; i < seatCount; i++ {
		if err := a.pool.Insert(c.FirstSeat + i); err != nil {
			return nil, err
		}
	}
	T().Infof("seats: new session with seats %d…%d", a.cfg.FirstSeat, last)
	return a, nil
}

// Allocate hands out the n smallest free seats. If fewer than n seats are free,
// Allocate hands out the remaining seats and returns them together with
// ErrSoldOut.
func (a *Allocator) Allocate(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: cannot allocate %d seats", ErrIllegalArguments, n)
	}
	seats := make([]int, 0, min(n, a.pool.Len()))
	var err error
	for i := 0; i < n; i++ {
		seat, e := a.pool.ExtractMin()
		if errors.Is(e, rbtree.ErrEmptyTree) {
			err = fmt.Errorf("%w: requested %d, allocated %d", ErrSoldOut, n, len(seats))
			break
		}
		seats = append(seats, seat)
	}
	T().Infof("seats: allocated %d seats, %d left", len(seats), a.pool.Len())
	if len(seats) > 0 {
		a.publish(Event{Kind: Allocated, Seats: seats, Free: a.pool.Len()})
	}
	return seats, err
}

// Release returns an allocated seat to the pool.
func (a *Allocator) Release(seat int) error {
	// the difference may exceed int, but always fits into uint
	if seat < a.cfg.FirstSeat || uint(seat)-uint(a.cfg.FirstSeat) >= uint(a.count) {
		return fmt.Errorf("%w: no seat %d", ErrIllegalArguments, seat)
	}
	if err := a.pool.Insert(seat); err != nil {
		if errors.Is(err, rbtree.ErrDuplicateKey) {
			return fmt.Errorf("%w: %d", ErrNotAllocated, seat)
		}
		return err
	}
	T().Debugf("seats: released seat %d", seat)
	a.publish(Event{Kind: Released, Seats: []int{seat}, Free: a.pool.Len()})
	return nil
}

// Free returns the number of free seats.
func (a *Allocator) Free() int {
	return a.pool.Len()
}

// Allocated returns the number of seats handed out.
func (a *Allocator) Allocated() int {
	return a.count - a.pool.Len()
}

// Tree returns the pool of free seats for inspection. Clients must not modify it.
func (a *Allocator) Tree() *rbtree.Tree {
	return a.pool
}

// Subscribe returns a channel which receives allocation events until ctx is
// done or the allocator is closed. The channel is closed when ctx is done. Subscribers have to keep draining the
// channel, otherwise Allocate and Release will eventually block.
func (a *Allocator) Subscribe(ctx context.Context, capacity uint) (<-chan Event, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	sub, ok := a.cast.Sub(ctx, capacity)
	if !ok {
		return nil, ErrClosed
	}
	events := make(chan Event, capacity)
	go func() {
		defer close(events)
		for {
			select {
			case msg, ok := <-sub:
				if !ok {
					return
				}
				ev, isEvent := msg.(Event)
				if !isEvent {
					continue
				}
				select {
				case events <- ev:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return events, nil
}

// Close stops broadcasting events and closes all subscriptions. Events of
// later calls to Allocate and Release are dropped.
func (a *Allocator) Close() {
	a.cast.Close()
}

func (a *Allocator) publish(ev Event) {
	if !a.cast.Pub(ev) {
		T().Debugf("seats: dropped %s event, allocator closed", ev.Kind)
	}
}
