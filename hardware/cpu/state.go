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

package cpu

import "github.com/jetsetilly/gopherdragon/hardware/cpu/registers"

// ExecState is the state of the CPU state machine.
type ExecState uint8

// List of valid execution states.
const (
	Reset ExecState = iota
	ResetCheckHalt
	LabelA // check HALT line
	LabelB // check for interrupts
	DispatchIRQ
	CwaiCheckHalt
	NextInstruction
	InstructionPage2
	InstructionPage3
	Sync
	SyncCheckHalt
	HCF
)

func (s ExecState) String() string {
	switch s {
	case Reset:
		return "reset"
	case ResetCheckHalt:
		return "reset check halt"
	case LabelA:
		return "label a"
	case LabelB:
		return "label b"
	case DispatchIRQ:
		return "dispatch irq"
	case CwaiCheckHalt:
		return "cwai check halt"
	case NextInstruction:
		return "next instruction"
	case InstructionPage2:
		return "instruction page 2"
	case InstructionPage3:
		return "instruction page 3"
	case Sync:
		return "sync"
	case SyncCheckHalt:
		return "sync check halt"
	case HCF:
		return "halt and catch fire"
	}
	return "unknown state"
}

// Waiting returns true if the CPU is waiting for an interrupt or is locked.
func (s ExecState) Waiting() bool {
	switch s {
	case DispatchIRQ, CwaiCheckHalt, Sync, SyncCheckHalt, HCF:
		return true
	}
	return false
}

// State is a copy of everything in the CPU that changes. All fields are of a
// fixed size so that the type can be serialised with encoding/binary.
type State struct {
	CC registers.CC
	A  uint8
	B  uint8
	DP uint8
	X  uint16
	Y  uint16
	U  uint16
	S  uint16
	PC uint16

	HALT bool
	NMI  bool
	FIRQ bool
	IRQ  bool

	NMIArmed   bool
	NMILatched bool
	NMILine    bool
	NMIAt      uint64

	BusCycles uint64
	Exec      ExecState

	// cycle accounting for an instruction that has been interrupted after a
	// prefix byte
	Used     uint8
	Prefixes uint8
}

// GetState returns a copy of the CPU state. Should only be called between
// calls to Step().
func (mc *CPU) GetState() State {
	return State{
		CC:         mc.CC,
		A:          mc.A,
		B:          mc.B,
		DP:         mc.DP,
		X:          mc.X,
		Y:          mc.Y,
		U:          mc.U,
		S:          mc.S,
		PC:         mc.PC,
		HALT:       mc.HALT,
		NMI:        mc.NMI,
		FIRQ:       mc.FIRQ,
		IRQ:        mc.IRQ,
		NMIArmed:   mc.nmiArmed,
		NMILatched: mc.nmiLatched,
		NMILine:    mc.nmiLine,
		NMIAt:      mc.nmiAt,
		BusCycles:  mc.BusCycles,
		Exec:       mc.Exec,
		Used:       uint8(mc.used),
		Prefixes:   uint8(mc.prefixes),
	}
}

// SetState restores the CPU to a state previously returned by GetState().
func (mc *CPU) SetState(s State) {
	mc.CC = s.CC
	mc.A = s.A
	mc.B = s.B
	mc.DP = s.DP
	mc.X = s.X
	mc.Y = s.Y
	mc.U = s.U
	mc.S = s.S
	mc.PC = s.PC
	mc.HALT = s.HALT
	mc.NMI = s.NMI
	mc.FIRQ = s.FIRQ
	mc.IRQ = s.IRQ
	mc.nmiArmed = s.NMIArmed
	mc.nmiLatched = s.NMILatched
	mc.nmiLine = s.NMILine
	mc.nmiAt = s.NMIAt
	mc.BusCycles = s.BusCycles
	mc.Exec = s.Exec
	mc.used = int(s.Used)
	mc.prefixes = int(s.Prefixes)
	mc.extra = 0
}
