package core

import "time"

// FrameID identifies a pending frame request. Zero means "no request".
type FrameID uint64

// FrameFunc receives the loop time of the display frame it runs in.
type FrameFunc func(now time.Duration)

// FrameScheduler schedules a callback for the next display frame and returns
// a handle that can cancel it.
type FrameScheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn FrameFunc
}

// FrameQueue is a FrameScheduler driven by an external loop calling Run once
// per display frame. Callbacks requested while Run executes are deferred to
// the following frame.
type FrameQueue struct {
	next    FrameID
	pending []frameRequest
	running []frameRequest
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame queues fn for the next Run.
func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameID {
	q.next++
	q.pending = append(q.pending, frameRequest{id: q.next, fn: fn})
	return q.next
}

// CancelFrame drops a queued callback. Unknown or already-run ids are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	if id == 0 {
		return
	}
	for i := range q.pending {
		if q.pending[i].id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
			return
		}
	}
}

// Pending reports how many callbacks wait for the next Run.
func (q *FrameQueue) Pending() int { return len(q.pending) }

// Run executes every callback queued before the call and returns how many ran.
func (q *FrameQueue) Run(now time.Duration) int {
	q.running, q.pending = q.pending, nil
	ran := 0
	for i := range q.running {
		fn := q.running[i].fn
		if fn == nil {
			continue
		}
		q.running[i].fn = nil
		fn(now)
		ran++
	}
	q.running = nil
	return ran
}
