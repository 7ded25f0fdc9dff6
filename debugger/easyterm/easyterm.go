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

// Package easyterm is a wrapper for "github.com/pkg/term". It opens the
// controlling terminal in cbreak mode and uses golang.org/x/term to find out
// if a file is a terminal and what size it is.
package easyterm

import (
	"fmt"
	"os"

	pkgterm "github.com/pkg/term"
	"golang.org/x/term"
)

// the controlling terminal of the process
const tty = "/dev/tty"

// Terminal is an open terminal in cbreak mode. Key presses are available to
// Read() immediately and are not echoed.
type Terminal struct {
	t      *pkgterm.Term
	output *os.File
}

// IsTerminal returns true if the file is a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewTerminal opens the controlling terminal in cbreak mode. The output file
// is used to find the size of the terminal.
func NewTerminal(output *os.File) (*Terminal, error) {
	t, err := pkgterm.Open(tty, pkgterm.CBreakMode)
	if err != nil {
		return nil, fmt.Errorf("easyterm: %w", err)
	}
	return &Terminal{t: t, output: output}, nil
}

// Read implements the io.Reader interface.
func (pt *Terminal) Read(p []byte) (int, error) {
	return pt.t.Read(p)
}

// CleanUp restores the terminal to the mode it was in before NewTerminal()
// and closes it.
func (pt *Terminal) CleanUp() {
	_ = pt.t.Restore()
	_ = pt.t.Close()
}

// Rows returns the number of rows in the output terminal. Returns the
// default value if the size can not be found.
func (pt *Terminal) Rows(def int) int {
	if pt.output == nil {
		return def
	}
	_, h, err := term.GetSize(int(pt.output.Fd()))
	if err != nil || h <= 0 {
		return def
	}
	return h
}
