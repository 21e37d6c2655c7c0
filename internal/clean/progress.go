package clean

import (
	"sync"
)

// Event is one message from a running operation. The last event of a
// stream carries Scan or Clean.
type Event struct {
	Percent int
	Message string
	Scan    *ScanResult
	Clean   *CleanResult
}

// Done reports whether ev is the terminal event.
func (ev Event) Done() bool {
	return ev.Scan != nil || ev.Clean != nil
}

// Reporter carries events from the worker to the presentation layer.
// Report never blocks: events queue up until the consumer reads them, in
// the order they were produced. The consumer must drain Events until it
// is closed.
type Reporter struct {
	mu     sync.Mutex
	queue  []Event
	closed bool
	notify chan struct{}
	out    chan Event
}

// NewReporter starts a reporter and its delivery goroutine.
func NewReporter() *Reporter {
	r := &Reporter{
		notify: make(chan struct{}, 1),
		out:    make(chan Event),
	}
	go r.pump()
	return r
}

// Events returns the delivery channel. It is closed after Close once
// every queued event has been delivered.
func (r *Reporter) Events() <-chan Event {
	return r.out
}

// Report queues a progress event.
func (r *Reporter) Report(percent int, message string) {
	r.push(Event{Percent: percent, Message: message})
}

// Progress returns Report as a ProgressFunc.
func (r *Reporter) Progress() ProgressFunc {
	return r.Report
}

// FinishScan queues the terminal scan event.
func (r *Reporter) FinishScan(res ScanResult, message string) {
	r.push(Event{Percent: 100, Message: message, Scan: &res})
}

// FinishClean queues the terminal clean event.
func (r *Reporter) FinishClean(res CleanResult, message string) {
	r.push(Event{Percent: 100, Message: message, Clean: &res})
}

// Close ends the stream. Events reported after Close are dropped.
func (r *Reporter) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	r.wake()
}

func (r *Reporter) push(ev Event) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.queue = append(r.queue, ev)
	r.mu.Unlock()
	r.wake()
}

func (r *Reporter) wake() {
	select {
	case r.notify <- struct{}{}:
	default:
	}
}

func (r *Reporter) pump() {
	for {
		r.mu.Lock()
		if len(r.queue) > 0 {
			ev := r.queue[0]
			r.queue[0] = Event{}
			r.queue = r.queue[1:]
			r.mu.Unlock()
			r.out <- ev
			continue
		}
		if r.closed {
			r.mu.Unlock()
			close(r.out)
			return
		}
		r.mu.Unlock()
		<-r.notify
	}
}

// Wait drains r and returns the terminal event. It is the blocking
// consumer used by tests and non-interactive callers.
func Wait(r *Reporter, onEvent func(Event)) Event {
	var last Event
	for ev := range r.Events() {
		if onEvent != nil {
			onEvent(ev)
		}
		if ev.Done() {
			last = ev
		}
	}
	return last
}
