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

package instructions

// Operator is the operation performed by an instruction, independent of the
// addressing mode.
type Operator int

// List of operators.
//
// Operators that work on a register operand use the register width of the
// Definition. For example, LD with register X is the LDX instruction.
const (
	Prefix Operator = iota // 0x10 and 0x11

	// unary operators. these work on memory or on the A or B accumulator
	NEG
	NGC // undocumented. NEG if carry is clear, otherwise COM
	COM
	LSR
	ROR
	ASR
	ASL
	ROL
	DEC
	INC
	TST
	CLR
	JMP

	// binary operators
	SUB
	CMP
	SBC
	AND
	BIT
	LD
	ST
	EOR
	ADC
	OR
	ADD

	// flow control
	Branch
	BSR
	JSR
	RTS
	RTI
	SWI
	SWI2
	SWI3
	CWAI
	SYNC

	// miscellaneous
	NOP
	DAA
	ORCC
	ANDCC
	SEX
	EXG
	TFR
	LEA
	PSH
	PUL
	ABX
	MUL

	// undocumented operators that have no documented equivalent
	SHCC  // shift condition codes left, keeping only H and Z
	RESET // software reset through the reset vector
	HCF   // halt and catch fire
)

// IsUnary returns true if the operator is one of the single operand
// operators that can address memory or an accumulator.
func (o Operator) IsUnary() bool {
	return o >= NEG && o <= JMP
}

// IsBinary returns true if the operator combines a register with an operand
// read from memory or from the instruction stream.
func (o Operator) IsBinary() bool {
	return o >= SUB && o <= ADD
}

// Writes returns true if the operator writes the operand back to memory.
func (o Operator) Writes() bool {
	switch o {
	case NEG, NGC, COM, LSR, ROR, ASR, ASL, ROL, DEC, INC, CLR, ST:
		return true
	}
	return false
}
