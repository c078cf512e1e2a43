package wl

import (
	"context"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/elliotmr/wlclient/wl/wlp"
)

// MaxQueued is the default queue bound.
const MaxQueued = 65535

// Filter decides whether an event enters a Queue.
type Filter func(ev wlp.Event) bool

// Queue buffers events for a consumer that pulls them at its own pace. It is
// a wlp.Handler; register it with AddListener or AddObjectListener.
type Queue struct {
	mu      sync.Mutex
	events  []wlp.Event
	max     int
	ok      Filter
	dropped uint64
	notify  chan struct{}
}

// NewQueue returns a queue holding at most size events. A zero size uses
// MaxQueued; a nil filter accepts everything.
func NewQueue(size int, filter Filter) *Queue {
	if size <= 0 {
		size = MaxQueued
	}
	return &Queue{
		max:    size,
		ok:     filter,
		notify: make(chan struct{}, 1),
	}
}

// HandleEvent enqueues ev. When the queue is full the event is dropped and
// any descriptors it carries are closed.
func (q *Queue) HandleEvent(ev wlp.Event) {
	if q.ok != nil && !q.ok(ev) {
		return
	}
	q.mu.Lock()
	if len(q.events) >= q.max {
		q.dropped++
		q.mu.Unlock()
		closeFDs(ev)
		return
	}
	q.events = append(q.events, ev)
	q.mu.Unlock()
	q.signal()
}

func (q *Queue) signal() {
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

func closeFDs(ev wlp.Event) {
	msg := ev.Message()
	if msg == nil {
		return
	}
	for i, a := range msg.Args {
		if a.Type == wlp.ArgFD {
			if fd := ev.FD(i); fd >= 0 {
				unix.Close(fd)
			}
		}
	}
}

// Poll removes and returns the oldest event without blocking.
func (q *Queue) Poll() (wlp.Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return wlp.Event{}, false
	}
	ev := q.events[0]
	q.events[0] = wlp.Event{}
	q.events = q.events[1:]
	if len(q.events) > 0 {
		q.signal()
	}
	return ev, true
}

// Wait blocks until an event is available or ctx is done.
func (q *Queue) Wait(ctx context.Context) (wlp.Event, error) {
	for {
		if ev, ok := q.Poll(); ok {
			return ev, nil
		}
		select {
		case <-q.notify:
		case <-ctx.Done():
			return wlp.Event{}, ctx.Err()
		}
	}
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Dropped returns how many events were discarded because the queue was full.
func (q *Queue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}

// Flush discards every queued event matching f, or all of them if f is nil.
func (q *Queue) Flush(f Filter) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	kept := q.events[:0]
	n := 0
	for _, ev := range q.events {
		if f == nil || f(ev) {
			closeFDs(ev)
			n++
			continue
		}
		kept = append(kept, ev)
	}
	for i := len(kept); i < len(q.events); i++ {
		q.events[i] = wlp.Event{}
	}
	q.events = kept
	return n
}
