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

package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopherdragon/hardware/memory/cpubus"
)

// Linear disassembles count instructions starting at the address. Every
// instruction is assumed to follow the previous one. No attempt is made to
// follow the flow of the program.
func Linear(mem cpubus.Peeker, address uint16, count int) []Entry {
	l := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		e := Decode(mem, address)
		l = append(l, e)
		address = e.Next()
	}
	return l
}

// Write the list of entries to the io.Writer, one per line.
func Write(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return err
		}
	}
	return nil
}
