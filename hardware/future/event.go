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
	"fmt"
	"strings"
)

// Event is a callback to be run at a specific cycle. The Event type is
// created and owned by the caller.
type Event struct {
	// label is a short decription describing the event. useful for debugging
	Label string

	// the cycle at which the event is due. only valid while queued
	At Cycle

	// the function to run when the event is dispatched
	Payload func()

	// the queue the event is in. nil if the event is not queued. an event
	// can only be in one queue at a time
	queue *Queue

	// next event in the queue
	next *Event
}

func (ev *Event) String() string {
	label := strings.TrimSpace(ev.Label)
	if label == "" {
		label = "[unlabelled event]"
	}
	if ev.queue == nil {
		return fmt.Sprintf("%s (not queued)", label)
	}
	return fmt.Sprintf("%s -> %s", label, ev.At)
}

// Queued returns true if the event is currently in a queue.
func (ev *Event) Queued() bool {
	return ev.queue != nil
}
