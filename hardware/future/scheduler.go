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

// List of queue labels.
const (
	MachineQueue = "machine"
	UIQueue      = "ui"
)

// Scheduler owns the clock and the named event queues.
type Scheduler struct {
	now Cycle

	// events used by the emulated hardware. drained on every bus cycle
	Machine *Queue

	// events used by whatever is driving the emulation. drained when the
	// driver chooses
	UI *Queue
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler() *Scheduler {
	sch := &Scheduler{}
	sch.Machine = &Queue{Label: MachineQueue, clock: &sch.now}
	sch.UI = &Queue{Label: UIQueue, clock: &sch.now}
	return sch
}

// Now returns the current clock reading.
func (sch *Scheduler) Now() Cycle {
	return sch.now
}

// Advance the clock. Does not dispatch any events.
func (sch *Scheduler) Advance(ticks int) {
	sch.now += Cycle(ticks)
}

// SetNow sets the clock to a specific value. Should only be used when
// restoring a snapshot and before any events are scheduled.
func (sch *Scheduler) SetNow(now Cycle) {
	sch.now = now
}

// Queue returns the queue with the specified label. Returns nil if there is
// no queue with that label.
func (sch *Scheduler) Queue(label string) *Queue {
	switch label {
	case MachineQueue:
		return sch.Machine
	case UIQueue:
		return sch.UI
	}
	return nil
}
