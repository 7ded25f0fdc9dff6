// This file is part of GopherDragon.
//
// GopherDragon is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDragon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDragon.  If not, see <https://www.gnu.org/licenses/>.

package future

import (
	"strings"

	"github.com/jetsetilly/gopherdragon/logger"
)

// Queue is an ordered list of pending events.
type Queue struct {
	Label string

	clock *Cycle
	head  *Event
}

func (q *Queue) String() string {
	s := strings.Builder{}
	for e := q.head; e != nil; e = e.next {
		if q.Label != "" {
			s.WriteString(q.Label)
			s.WriteString(": ")
		}
		s.WriteString(e.String())
		s.WriteString("\n")
	}
	return s.String()
}

// Schedule the event to be dispatched at the specified cycle. If the event is
// already queued it is first removed, even if it is in another queue.
func (q *Queue) Schedule(ev *Event, at Cycle) {
	if ev.queue != nil {
		ev.queue.unlink(ev)
	}

	ev.At = at
	ev.queue = q

	// events due on the same cycle as existing events are placed after those
	// events
	if q.head == nil || Diff(at, q.head.At) < 0 {
		ev.next = q.head
		q.head = ev
		return
	}

	e := q.head
	for e.next != nil && Diff(at, e.next.At) >= 0 {
		e = e.next
	}
	ev.next = e.next
	e.next = ev
}

// ScheduleIn schedules the event to be dispatched delay ticks from now. Delays
// greater than MaxDelay are clamped.
func (q *Queue) ScheduleIn(ev *Event, delay int) {
	if delay > MaxDelay {
		logger.Logf(logger.Allow, "future", "%s: %s delay of %d clamped", q.Label, ev.Label, delay)
		delay = MaxDelay
	}
	q.Schedule(ev, q.clock.Add(delay))
}

// Cancel removes the event from the queue. It is safe to cancel an event that
// is not queued. An event in another queue is left where it is.
func (q *Queue) Cancel(ev *Event) {
	if ev.queue != q {
		return
	}
	q.unlink(ev)
}

// unlink the event from the queue. the event must be in the queue
func (q *Queue) unlink(ev *Event) {
	if q.head == ev {
		q.head = ev.next
	} else {
		e := q.head
		for e != nil && e.next != ev {
			e = e.next
		}
		if e != nil {
			e.next = ev.next
		}
	}

	ev.next = nil
	ev.queue = nil
}

// HasDue returns true if there is an event whose trigger cycle has been
// reached or passed.
func (q *Queue) HasDue() bool {
	return q.head != nil && q.clock.AtOrAfter(q.head.At)
}

// DispatchNext removes the event at the front of the queue and runs its
// payload. The payload may reschedule the event. Callers should check HasDue()
// first.
func (q *Queue) DispatchNext() {
	ev := q.head
	if ev == nil {
		return
	}

	q.head = ev.next
	ev.next = nil
	ev.queue = nil

	if ev.Payload != nil {
		ev.Payload()
	}
}

// RunDue dispatches all events that are due.
func (q *Queue) RunDue() {
	for q.HasDue() {
		q.DispatchNext()
	}
}

// Pending returns the number of events in the queue.
func (q *Queue) Pending() int {
	n := 0
	for e := q.head; e != nil; e = e.next {
		n++
	}
	return n
}

// Next returns the event at the front of the queue. Returns nil if the queue
// is empty.
func (q *Queue) Next() *Event {
	return q.head
}
