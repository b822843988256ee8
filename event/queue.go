package event

import (
	"time"

	"github.com/elliotmr/sdl"
	"github.com/elliotmr/sdl/sys"
	"github.com/pkg/errors"
)

// MaxQueued bounds the number of events a Queue holds.
const MaxQueued = 65535

// Action selects what Peep does.
type Action int

const (
	Add Action = iota
	Peek
	Get
)

// ErrWaitTimeout is returned by WaitTimeout when no event arrived in time.
var ErrWaitTimeout error = waitTimeoutError{}

type waitTimeoutError struct{}

func (waitTimeoutError) Error() string   { return "wait timeout exceeded" }
func (waitTimeoutError) Timeout() bool   { return true }
func (waitTimeoutError) Temporary() bool { return true }

var (
	ErrQueueFull     = errors.New("event queue is full")
	ErrQueueInactive = errors.New("event queue is not active")
)

// Filter decides whether an event is kept.
type Filter func(ev Event) bool

// Watcher is called for every event entering the queue, after the filter.
type Watcher struct {
	Callback func(ev Event)
}

type entry struct {
	raw  Data
	ev   Event
	prev *entry
	next *entry
}

// Queue is an application-side event queue fed from the native one. It adds
// what SDL 1.2 leaves to the caller: per-type enabling, a filter, watchers
// and type-range peeking. Like the library it is single-threaded.
type Queue struct {
	ctx    *sdl.Context
	active bool
	count  int

	head *entry
	tail *entry
	free *entry

	maxEventsSeen int

	watchers []*Watcher
	ok       Filter

	disabled [256]bool
}

// NewQueue returns an active queue reading from ctx. SysWM events are
// disabled by default since they cannot be decoded.
func NewQueue(ctx *sdl.Context) *Queue {
	q := &Queue{ctx: ctx, active: true}
	q.Disable(SysWMEvent)
	return q
}

// Stop drops every queued event and watcher and deactivates the queue.
func (q *Queue) Stop() {
	q.active = false
	q.count = 0
	q.maxEventsSeen = 0
	q.head = nil
	q.tail = nil
	q.free = nil
	q.watchers = q.watchers[:0]
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return q.count
}

// MaxSeen returns the high-water mark of Len.
func (q *Queue) MaxSeen() int {
	return q.maxEventsSeen
}

func (q *Queue) add(raw Data, ev Event) error {
	if q.count >= MaxQueued {
		return ErrQueueFull
	}

	var e *entry
	if q.free == nil {
		e = &entry{}
	} else {
		e = q.free
		q.free = q.free.next
	}
	e.raw = raw
	e.ev = ev

	if q.tail != nil {
		q.tail.next = e
		e.prev = q.tail
		q.tail = e
		e.next = nil
	} else {
		if q.head != nil {
			panic("invalid queue state, tail exists without head")
		}
		q.head = e
		q.tail = e
		e.prev = nil
		e.next = nil
	}

	q.count++
	if q.count > q.maxEventsSeen {
		q.maxEventsSeen = q.count
	}
	return nil
}

func (q *Queue) cut(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	}
	if e == q.head {
		if e.prev != nil {
			panic("invalid event queue state, queue head is not beginning")
		}
		q.head = e.next
	}
	if e == q.tail {
		if e.next != nil {
			panic("invalid event queue state, queue tail is not the end")
		}
		q.tail = e.prev
	}
	e.ev = nil
	e.prev = nil
	e.next = q.free
	q.free = e
	q.count--
}

// Peep adds events to the queue, or copies (Peek) or removes (Get) up to
// len(events) queued events whose type lies in [minType, maxType]. It
// returns how many events were handled.
func (q *Queue) Peep(events []Event, action Action, minType, maxType Type) (int, error) {
	if !q.active {
		return 0, ErrQueueInactive
	}

	used := 0
	switch action {
	case Add:
		for _, ev := range events {
			d, err := Encode(ev)
			if err != nil {
				return used, err
			}
			if err := q.add(d, ev); err != nil {
				return used, errors.Wrap(err, "unable to add event")
			}
			used++
		}
	case Peek, Get:
		for e := q.head; e != nil && used < len(events); {
			next := e.next
			if t := e.raw.Type(); minType <= t && t <= maxType {
				events[used] = e.ev
				used++
				if action == Get {
					q.cut(e)
				}
			}
			e = next
		}
	default:
		return 0, errors.Errorf("unknown peep action %d", action)
	}
	return used, nil
}

// FlushType drops every queued event of type t.
func (q *Queue) FlushType(t Type) {
	q.FlushTypes(t, t)
}

// FlushTypes drops every queued event with a type in [minType, maxType].
func (q *Queue) FlushTypes(minType, maxType Type) {
	for e := q.head; e != nil; {
		next := e.next
		if t := e.raw.Type(); minType <= t && t <= maxType {
			q.cut(e)
		}
		e = next
	}
}

// Pump moves pending native events into the queue. It stops once the queue
// holds MaxQueued events and leaves the rest on the native queue.
func (q *Queue) Pump() error {
	if !q.active {
		return ErrQueueInactive
	}
	if q.ctx.Closed() {
		return sdl.ErrContextClosed
	}
	lib := q.ctx.Library()
	var raw sys.Event
	for q.count < MaxQueued && lib.PollEvent(&raw) != 0 {
		if _, err := q.push(Data(raw)); err != nil {
			return err
		}
	}
	return nil
}

// Push runs ev through the type mask, the filter and the watchers and
// queues it. It reports whether the event was kept.
func (q *Queue) Push(ev Event) (bool, error) {
	d, err := Encode(ev)
	if err != nil {
		return false, err
	}
	return q.push(d)
}

func (q *Queue) push(d Data) (bool, error) {
	if !q.active {
		return false, ErrQueueInactive
	}
	if q.disabled[d.Type()] {
		return false, nil
	}
	if q.count >= MaxQueued {
		return false, ErrQueueFull
	}
	ev := Decode(d)
	if q.ok != nil && !q.ok(ev) {
		return false, nil
	}
	for _, w := range q.watchers {
		w.Callback(ev)
	}
	if err := q.add(d, ev); err != nil {
		return true, errors.Wrap(err, "unable to add event to queue")
	}
	return true, nil
}

// Poll pumps the native queue and returns the oldest queued event. A full
// queue is still drained.
func (q *Queue) Poll() (Event, bool, error) {
	if err := q.Pump(); err != nil && !errors.Is(err, ErrQueueFull) {
		return nil, false, err
	}
	buf := make([]Event, 1)
	n, err := q.Peep(buf, Get, 0, 255)
	if err != nil || n == 0 {
		return nil, false, err
	}
	return buf[0], true, nil
}

// Wait blocks until an event is queued.
func (q *Queue) Wait() (Event, error) {
	return q.WaitTimeout(-1)
}

// WaitTimeout polls every 10ms, sleeping through the library's Delay, until
// an event arrives or timeout passes. A negative timeout waits forever.
func (q *Queue) WaitTimeout(timeout time.Duration) (Event, error) {
	if q.ctx.Closed() {
		return nil, sdl.ErrContextClosed
	}
	lib := q.ctx.Library()
	start := lib.GetTicks()
	for {
		ev, ok, err := q.Poll()
		switch {
		case err != nil:
			return nil, errors.Wrap(err, "queue poll error")
		case ok:
			return ev, nil
		case timeout >= 0 && time.Duration(lib.GetTicks()-start)*time.Millisecond >= timeout:
			return nil, ErrWaitTimeout
		}
		lib.Delay(10)
	}
}

// SetFilter installs f and drops every queued event.
func (q *Queue) SetFilter(f Filter) {
	q.FlushTypes(0, 255)
	q.ok = f
}

func (q *Queue) GetFilter() Filter {
	return q.ok
}

func (q *Queue) AddWatch(w *Watcher) {
	q.watchers = append(q.watchers, w)
}

func (q *Queue) DelWatch(w *Watcher) {
	kept := q.watchers[:0]
	for _, x := range q.watchers {
		if x != w {
			kept = append(kept, x)
		}
	}
	q.watchers = kept
}

// Filter drops every queued event f rejects.
func (q *Queue) Filter(f Filter) {
	for e := q.head; e != nil; {
		next := e.next
		if !f(e.ev) {
			q.cut(e)
		}
		e = next
	}
}

// Disable stops events of type t from entering the queue and drops the
// ones already queued.
func (q *Queue) Disable(t Type) {
	q.disabled[t] = true
	q.FlushType(t)
}

func (q *Queue) Enable(t Type) {
	q.disabled[t] = false
}

func (q *Queue) Enabled(t Type) bool {
	return !q.disabled[t]
}
