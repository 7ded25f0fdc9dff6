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

package hardware

import (
	"strings"

	"github.com/jetsetilly/gopherdragon/curated"
)

// position of a key in the matrix. the CoCo layout is used for the table.
// the Dragon layout has the first six rows rotated
type matrixPos struct {
	row int
	col int
}

var keyMatrix map[string]matrixPos

func init() {
	keyMatrix = make(map[string]matrixPos)
	rows := [][]string{
		{"@", "A", "B", "C", "D", "E", "F", "G"},
		{"H", "I", "J", "K", "L", "M", "N", "O"},
		{"P", "Q", "R", "S", "T", "U", "V", "W"},
		{"X", "Y", "Z", "UP", "DOWN", "LEFT", "RIGHT", "SPACE"},
		{"0", "1", "2", "3", "4", "5", "6", "7"},
		{"8", "9", ":", ";", ",", "-", ".", "/"},
		{"ENTER", "CLEAR", "BREAK", "", "", "", "", "SHIFT"},
	}
	for r, row := range rows {
		for c, k := range row {
			if k != "" {
				keyMatrix[k] = matrixPos{row: r, col: c}
			}
		}
	}
}

// Keyboard is the key matrix read through PIA0. The columns are driven by
// port B and the rows are read on port A.
type Keyboard struct {
	m      *Machine
	dragon bool

	// rows pressed for each column
	matrix [8]uint8
}

func newKeyboard(m *Machine) *Keyboard {
	return &Keyboard{
		m:      m,
		dragon: m.Config.Arch != CoCo,
	}
}

func (kb *Keyboard) lookup(key string) (matrixPos, error) {
	p, ok := keyMatrix[strings.ToUpper(key)]
	if !ok {
		return p, curated.Errorf("keyboard: unknown key (%s)", key)
	}
	if kb.dragon && p.row < 6 {
		p.row = (p.row + 2) % 6
	}
	return p, nil
}

// Press a key. Keys are named by the legend on the key. Keys without a
// single character legend are UP, DOWN, LEFT, RIGHT, SPACE, ENTER, CLEAR,
// BREAK and SHIFT.
func (kb *Keyboard) Press(key string) error {
	p, err := kb.lookup(key)
	if err != nil {
		return err
	}
	kb.matrix[p.col] |= 1 << p.row
	kb.m.updateInputs()
	return nil
}

// Release a key.
func (kb *Keyboard) Release(key string) error {
	p, err := kb.lookup(key)
	if err != nil {
		return err
	}
	kb.matrix[p.col] &^= 1 << p.row
	kb.m.updateInputs()
	return nil
}

// ReleaseAll releases every key.
func (kb *Keyboard) ReleaseAll() {
	kb.matrix = [8]uint8{}
	kb.m.updateInputs()
}

// rows returns the rows pulled low by the columns that are being driven low
func (kb *Keyboard) rows(columns uint8) uint8 {
	var rows uint8
	for c := 0; c < 8; c++ {
		if columns&(1<<c) == 0 {
			rows |= kb.matrix[c]
		}
	}
	return rows
}
