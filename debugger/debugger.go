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

package debugger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gopherdragon/curated"
	"github.com/jetsetilly/gopherdragon/debugger/easyterm"
	"github.com/jetsetilly/gopherdragon/disassembly"
	"github.com/jetsetilly/gopherdragon/hardware"
	"github.com/jetsetilly/gopherdragon/paths"
	"github.com/jetsetilly/gopherdragon/snapshot"
)

// the default number of instructions shown by the disassemble command
const listingLength = 8

// Debugger is the single-stepping front end.
type Debugger struct {
	m      *hardware.Machine
	input  io.Reader
	output io.Writer

	tracer *disassembly.Tracer
	rewind *hardware.Rewind
	term   *easyterm.Terminal
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type.
func NewDebugger(m *hardware.Machine, input io.Reader, output io.Writer) *Debugger {
	return &Debugger{
		m:      m,
		input:  input,
		output: output,
		tracer: disassembly.NewTracer(m.CPU, m, output),
		rewind: m.EnableRewind(0),
	}
}

// Start the debugger. Returns when the quit command is received or when the
// input is exhausted.
func (dbg *Debugger) Start() error {
	input := dbg.input

	if in, ok := dbg.input.(*os.File); ok && easyterm.IsTerminal(in) {
		out, _ := dbg.output.(*os.File)
		t, err := easyterm.NewTerminal(out)
		if err != nil {
			return curated.Errorf("debugger: %v", err)
		}
		defer t.CleanUp()
		dbg.term = t
		input = t
	}

	dbg.printf("%s\n", dbg.m)
	dbg.help()

	b := make([]byte, 1)
	for {
		n, err := input.Read(b)
		if n > 0 {
			if !dbg.Command(b[0]) {
				return nil
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return curated.Errorf("debugger: %v", err)
		}
	}
}

func (dbg *Debugger) printf(format string, a ...any) {
	fmt.Fprintf(dbg.output, format, a...)
}

func (dbg *Debugger) help() {
	dbg.printf("s step, c continue to end of frame, b back one frame, r registers, d disassemble, t trace, w save snapshot, h help, q quit\n")
}

// Command performs the action for the key. Returns false if the debugger
// should quit.
func (dbg *Debugger) Command(key byte) bool {
	switch key {
	case 's', 'S':
		dbg.m.Step()
		dbg.next()

	case 'c', 'C':
		dbg.m.StepFrame()
		dbg.printf("frame %s\n", dbg.m.TV.GetCoords())
		dbg.next()

	case 'b', 'B':
		if err := dbg.rewind.Back(1); err != nil {
			dbg.printf("%v\n", err)
		} else {
			dbg.printf("rewound to frame %s\n", dbg.m.TV.GetCoords())
			dbg.next()
		}

	case 'r', 'R':
		dbg.printf("%s [%s]\n", dbg.m.CPU, dbg.m.CPU.Exec)
		dbg.printf("SAM %s\n", dbg.m.SAM)
		dbg.printf("%s\n%s\n", dbg.m.PIA0, dbg.m.PIA1)

	case 'd', 'D':
		n := listingLength
		if dbg.term != nil {
			n = max(n, dbg.term.Rows(0)/2)
		}
		disassembly.Write(dbg.output, disassembly.Linear(dbg.m, dbg.m.CPU.PC, n))

	case 't', 'T':
		if dbg.tracer.Attached() {
			dbg.tracer.Detach()
			dbg.printf("tracing off\n")
		} else {
			dbg.tracer.Attach()
			dbg.printf("tracing on\n")
		}

	case 'w', 'W':
		fn := paths.UniqueFilename("snapshot", dbg.m.Config.Arch.String()) + ".snap"
		fn = strings.ReplaceAll(fn, " ", "")
		if err := snapshot.Save(fn, dbg.m); err != nil {
			dbg.printf("%v\n", err)
		} else {
			dbg.printf("snapshot saved to %s\n", fn)
		}

	case 'h', 'H', '?':
		dbg.help()

	case 'q', 'Q':
		return false

	case ' ', '\n', '\r', '\t':

	default:
		dbg.printf("unknown command (%c)\n", key)
	}

	return true
}

// print the next instruction to be executed
func (dbg *Debugger) next() {
	e := disassembly.Decode(dbg.m, dbg.m.CPU.PC)
	dbg.printf("%s\n", e)
}
