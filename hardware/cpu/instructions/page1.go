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

var page1 = [256]Definition{
	// direct mode unary operators
	0x00: {Mnemonic: "NEG", Mode: Direct, Operator: NEG, Cycles: 6},
	0x01: {Mnemonic: "NEG", Mode: Direct, Operator: NEG, Cycles: 7, Undocumented: true},
	0x02: {Mnemonic: "NGC", Mode: Direct, Operator: NGC, Cycles: 7, Undocumented: true},
	0x03: {Mnemonic: "COM", Mode: Direct, Operator: COM, Cycles: 6},
	0x04: {Mnemonic: "LSR", Mode: Direct, Operator: LSR, Cycles: 6},
	0x05: {Mnemonic: "LSR", Mode: Direct, Operator: LSR, Cycles: 7, Undocumented: true},
	0x06: {Mnemonic: "ROR", Mode: Direct, Operator: ROR, Cycles: 6},
	0x07: {Mnemonic: "ASR", Mode: Direct, Operator: ASR, Cycles: 6},
	0x08: {Mnemonic: "ASL", Mode: Direct, Operator: ASL, Cycles: 6},
	0x09: {Mnemonic: "ROL", Mode: Direct, Operator: ROL, Cycles: 6},
	0x0a: {Mnemonic: "DEC", Mode: Direct, Operator: DEC, Cycles: 6},
	0x0b: {Mnemonic: "DEC", Mode: Direct, Operator: DEC, Cycles: 7, Undocumented: true},
	0x0c: {Mnemonic: "INC", Mode: Direct, Operator: INC, Cycles: 6},
	0x0d: {Mnemonic: "TST", Mode: Direct, Operator: TST, Cycles: 6},
	0x0e: {Mnemonic: "JMP", Mode: Direct, Operator: JMP, Cycles: 3},
	0x0f: {Mnemonic: "CLR", Mode: Direct, Operator: CLR, Cycles: 6},

	0x10: {Mnemonic: "PAGE2", Mode: Inherent, Operator: Prefix, Cycles: 1},
	0x11: {Mnemonic: "PAGE3", Mode: Inherent, Operator: Prefix, Cycles: 1},
	0x12: {Mnemonic: "NOP", Mode: Inherent, Operator: NOP, Cycles: 2},
	0x13: {Mnemonic: "SYNC", Mode: Inherent, Operator: SYNC, Cycles: 2},
	0x14: {Mnemonic: "HCF", Mode: Inherent, Operator: HCF, Cycles: 1, Undocumented: true},
	0x15: {Mnemonic: "HCF", Mode: Inherent, Operator: HCF, Cycles: 1, Undocumented: true},
	0x16: {Mnemonic: "LBRA", Mode: RelativeLong, Operator: Branch, Cycles: 5},
	0x17: {Mnemonic: "LBSR", Mode: RelativeLong, Operator: BSR, Cycles: 9},
	0x18: {Mnemonic: "SHCC", Mode: Inherent, Operator: SHCC, Cycles: 3, Undocumented: true},
	0x19: {Mnemonic: "DAA", Mode: Inherent, Operator: DAA, Cycles: 2},
	0x1a: {Mnemonic: "ORCC", Mode: Immediate, Operator: ORCC, Cycles: 3},
	0x1b: {Mnemonic: "NOP", Mode: Inherent, Operator: NOP, Cycles: 3, Undocumented: true},
	0x1c: {Mnemonic: "ANDCC", Mode: Immediate, Operator: ANDCC, Cycles: 3},
	0x1d: {Mnemonic: "SEX", Mode: Inherent, Operator: SEX, Cycles: 2},
	0x1e: {Mnemonic: "EXG", Mode: Immediate, Operator: EXG, Cycles: 8},
	0x1f: {Mnemonic: "TFR", Mode: Immediate, Operator: TFR, Cycles: 6},

	// short branches. the condition is filled in by init()
	0x20: {Mnemonic: "BRA", Mode: Relative, Operator: Branch, Cycles: 3},
	0x21: {Mnemonic: "BRN", Mode: Relative, Operator: Branch, Cycles: 3},
	0x22: {Mnemonic: "BHI", Mode: Relative, Operator: Branch, Cycles: 3},
	0x23: {Mnemonic: "BLS", Mode: Relative, Operator: Branch, Cycles: 3},
	0x24: {Mnemonic: "BCC", Mode: Relative, Operator: Branch, Cycles: 3},
	0x25: {Mnemonic: "BCS", Mode: Relative, Operator: Branch, Cycles: 3},
	0x26: {Mnemonic: "BNE", Mode: Relative, Operator: Branch, Cycles: 3},
	0x27: {Mnemonic: "BEQ", Mode: Relative, Operator: Branch, Cycles: 3},
	0x28: {Mnemonic: "BVC", Mode: Relative, Operator: Branch, Cycles: 3},
	0x29: {Mnemonic: "BVS", Mode: Relative, Operator: Branch, Cycles: 3},
	0x2a: {Mnemonic: "BPL", Mode: Relative, Operator: Branch, Cycles: 3},
	0x2b: {Mnemonic: "BMI", Mode: Relative, Operator: Branch, Cycles: 3},
	0x2c: {Mnemonic: "BGE", Mode: Relative, Operator: Branch, Cycles: 3},
	0x2d: {Mnemonic: "BLT", Mode: Relative, Operator: Branch, Cycles: 3},
	0x2e: {Mnemonic: "BGT", Mode: Relative, Operator: Branch, Cycles: 3},
	0x2f: {Mnemonic: "BLE", Mode: Relative, Operator: Branch, Cycles: 3},

	0x30: {Mnemonic: "LEAX", Mode: Indexed, Operator: LEA, Register: X, Cycles: 4},
	0x31: {Mnemonic: "LEAY", Mode: Indexed, Operator: LEA, Register: Y, Cycles: 4},
	0x32: {Mnemonic: "LEAS", Mode: Indexed, Operator: LEA, Register: S, Cycles: 4},
	0x33: {Mnemonic: "LEAU", Mode: Indexed, Operator: LEA, Register: U, Cycles: 4},
	0x34: {Mnemonic: "PSHS", Mode: Immediate, Operator: PSH, Register: S, Cycles: 5},
	0x35: {Mnemonic: "PULS", Mode: Immediate, Operator: PUL, Register: S, Cycles: 5},
	0x36: {Mnemonic: "PSHU", Mode: Immediate, Operator: PSH, Register: U, Cycles: 5},
	0x37: {Mnemonic: "PULU", Mode: Immediate, Operator: PUL, Register: U, Cycles: 5},
	0x38: {Mnemonic: "ANDCC", Mode: Immediate, Operator: ANDCC, Cycles: 4, Undocumented: true},
	0x39: {Mnemonic: "RTS", Mode: Inherent, Operator: RTS, Cycles: 5},
	0x3a: {Mnemonic: "ABX", Mode: Inherent, Operator: ABX, Cycles: 3},
	0x3b: {Mnemonic: "RTI", Mode: Inherent, Operator: RTI, Cycles: 6},
	0x3c: {Mnemonic: "CWAI", Mode: Immediate, Operator: CWAI, Cycles: 20},
	0x3d: {Mnemonic: "MUL", Mode: Inherent, Operator: MUL, Cycles: 11},
	0x3e: {Mnemonic: "RESET", Mode: Inherent, Operator: RESET, Cycles: 20, Undocumented: true},
	0x3f: {Mnemonic: "SWI", Mode: Inherent, Operator: SWI, Cycles: 19},

	// inherent unary operators on the A accumulator
	0x40: {Mnemonic: "NEGA", Mode: Inherent, Operator: NEG, Register: A, Cycles: 2},
	0x41: {Mnemonic: "NEGA", Mode: Inherent, Operator: NEG, Register: A, Cycles: 3, Undocumented: true},
	0x42: {Mnemonic: "NGCA", Mode: Inherent, Operator: NGC, Register: A, Cycles: 3, Undocumented: true},
	0x43: {Mnemonic: "COMA", Mode: Inherent, Operator: COM, Register: A, Cycles: 2},
	0x44: {Mnemonic: "LSRA", Mode: Inherent, Operator: LSR, Register: A, Cycles: 2},
	0x45: {Mnemonic: "LSRA", Mode: Inherent, Operator: LSR, Register: A, Cycles: 3, Undocumented: true},
	0x46: {Mnemonic: "RORA", Mode: Inherent, Operator: ROR, Register: A, Cycles: 2},
	0x47: {Mnemonic: "ASRA", Mode: Inherent, Operator: ASR, Register: A, Cycles: 2},
	0x48: {Mnemonic: "ASLA", Mode: Inherent, Operator: ASL, Register: A, Cycles: 2},
	0x49: {Mnemonic: "ROLA", Mode: Inherent, Operator: ROL, Register: A, Cycles: 2},
	0x4a: {Mnemonic: "DECA", Mode: Inherent, Operator: DEC, Register: A, Cycles: 2},
	0x4b: {Mnemonic: "DECA", Mode: Inherent, Operator: DEC, Register: A, Cycles: 3, Undocumented: true},
	0x4c: {Mnemonic: "INCA", Mode: Inherent, Operator: INC, Register: A, Cycles: 2},
	0x4d: {Mnemonic: "TSTA", Mode: Inherent, Operator: TST, Register: A, Cycles: 2},
	0x4e: {Mnemonic: "CLRA", Mode: Inherent, Operator: CLR, Register: A, Cycles: 3, Undocumented: true},
	0x4f: {Mnemonic: "CLRA", Mode: Inherent, Operator: CLR, Register: A, Cycles: 2},

	// inherent unary operators on the B accumulator
	0x50: {Mnemonic: "NEGB", Mode: Inherent, Operator: NEG, Register: B, Cycles: 2},
	0x51: {Mnemonic: "NEGB", Mode: Inherent, Operator: NEG, Register: B, Cycles: 3, Undocumented: true},
	0x52: {Mnemonic: "NGCB", Mode: Inherent, Operator: NGC, Register: B, Cycles: 3, Undocumented: true},
	0x53: {Mnemonic: "COMB", Mode: Inherent, Operator: COM, Register: B, Cycles: 2},
	0x54: {Mnemonic: "LSRB", Mode: Inherent, Operator: LSR, Register: B, Cycles: 2},
	0x55: {Mnemonic: "LSRB", Mode: Inherent, Operator: LSR, Register: B, Cycles: 3, Undocumented: true},
	0x56: {Mnemonic: "RORB", Mode: Inherent, Operator: ROR, Register: B, Cycles: 2},
	0x57: {Mnemonic: "ASRB", Mode: Inherent, Operator: ASR, Register: B, Cycles: 2},
	0x58: {Mnemonic: "ASLB", Mode: Inherent, Operator: ASL, Register: B, Cycles: 2},
	0x59: {Mnemonic: "ROLB", Mode: Inherent, Operator: ROL, Register: B, Cycles: 2},
	0x5a: {Mnemonic: "DECB", Mode: Inherent, Operator: DEC, Register: B, Cycles: 2},
	0x5b: {Mnemonic: "DECB", Mode: Inherent, Operator: DEC, Register: B, Cycles: 3, Undocumented: true},
	0x5c: {Mnemonic: "INCB", Mode: Inherent, Operator: INC, Register: B, Cycles: 2},
	0x5d: {Mnemonic: "TSTB", Mode: Inherent, Operator: TST, Register: B, Cycles: 2},
	0x5e: {Mnemonic: "CLRB", Mode: Inherent, Operator: CLR, Register: B, Cycles: 3, Undocumented: true},
	0x5f: {Mnemonic: "CLRB", Mode: Inherent, Operator: CLR, Register: B, Cycles: 2},

	// indexed mode unary operators
	0x60: {Mnemonic: "NEG", Mode: Indexed, Operator: NEG, Cycles: 6},
	0x61: {Mnemonic: "NEG", Mode: Indexed, Operator: NEG, Cycles: 7, Undocumented: true},
	0x62: {Mnemonic: "NGC", Mode: Indexed, Operator: NGC, Cycles: 7, Undocumented: true},
	0x63: {Mnemonic: "COM", Mode: Indexed, Operator: COM, Cycles: 6},
	0x64: {Mnemonic: "LSR", Mode: Indexed, Operator: LSR, Cycles: 6},
	0x65: {Mnemonic: "LSR", Mode: Indexed, Operator: LSR, Cycles: 7, Undocumented: true},
	0x66: {Mnemonic: "ROR", Mode: Indexed, Operator: ROR, Cycles: 6},
	0x67: {Mnemonic: "ASR", Mode: Indexed, Operator: ASR, Cycles: 6},
	0x68: {Mnemonic: "ASL", Mode: Indexed, Operator: ASL, Cycles: 6},
	0x69: {Mnemonic: "ROL", Mode: Indexed, Operator: ROL, Cycles: 6},
	0x6a: {Mnemonic: "DEC", Mode: Indexed, Operator: DEC, Cycles: 6},
	0x6b: {Mnemonic: "DEC", Mode: Indexed, Operator: DEC, Cycles: 7, Undocumented: true},
	0x6c: {Mnemonic: "INC", Mode: Indexed, Operator: INC, Cycles: 6},
	0x6d: {Mnemonic: "TST", Mode: Indexed, Operator: TST, Cycles: 6},
	0x6e: {Mnemonic: "JMP", Mode: Indexed, Operator: JMP, Cycles: 3},
	0x6f: {Mnemonic: "CLR", Mode: Indexed, Operator: CLR, Cycles: 6},

	// extended mode unary operators
	0x70: {Mnemonic: "NEG", Mode: Extended, Operator: NEG, Cycles: 7},
	0x71: {Mnemonic: "NEG", Mode: Extended, Operator: NEG, Cycles: 8, Undocumented: true},
	0x72: {Mnemonic: "NGC", Mode: Extended, Operator: NGC, Cycles: 8, Undocumented: true},
	0x73: {Mnemonic: "COM", Mode: Extended, Operator: COM, Cycles: 7},
	0x74: {Mnemonic: "LSR", Mode: Extended, Operator: LSR, Cycles: 7},
	0x75: {Mnemonic: "LSR", Mode: Extended, Operator: LSR, Cycles: 8, Undocumented: true},
	0x76: {Mnemonic: "ROR", Mode: Extended, Operator: ROR, Cycles: 7},
	0x77: {Mnemonic: "ASR", Mode: Extended, Operator: ASR, Cycles: 7},
	0x78: {Mnemonic: "ASL", Mode: Extended, Operator: ASL, Cycles: 7},
	0x79: {Mnemonic: "ROL", Mode: Extended, Operator: ROL, Cycles: 7},
	0x7a: {Mnemonic: "DEC", Mode: Extended, Operator: DEC, Cycles: 7},
	0x7b: {Mnemonic: "DEC", Mode: Extended, Operator: DEC, Cycles: 8, Undocumented: true},
	0x7c: {Mnemonic: "INC", Mode: Extended, Operator: INC, Cycles: 7},
	0x7d: {Mnemonic: "TST", Mode: Extended, Operator: TST, Cycles: 7},
	0x7e: {Mnemonic: "JMP", Mode: Extended, Operator: JMP, Cycles: 4},
	0x7f: {Mnemonic: "CLR", Mode: Extended, Operator: CLR, Cycles: 7},

	// A accumulator and X register, immediate
	0x80: {Mnemonic: "SUBA", Mode: Immediate, Operator: SUB, Register: A, Cycles: 2},
	0x81: {Mnemonic: "CMPA", Mode: Immediate, Operator: CMP, Register: A, Cycles: 2},
	0x82: {Mnemonic: "SBCA", Mode: Immediate, Operator: SBC, Register: A, Cycles: 2},
	0x83: {Mnemonic: "SUBD", Mode: Immediate, Operator: SUB, Register: D, Cycles: 4},
	0x84: {Mnemonic: "ANDA", Mode: Immediate, Operator: AND, Register: A, Cycles: 2},
	0x85: {Mnemonic: "BITA", Mode: Immediate, Operator: BIT, Register: A, Cycles: 2},
	0x86: {Mnemonic: "LDA", Mode: Immediate, Operator: LD, Register: A, Cycles: 2},
	0x87: {Mnemonic: "STA", Mode: Immediate, Operator: ST, Register: A, Cycles: 3, Undocumented: true},
	0x88: {Mnemonic: "EORA", Mode: Immediate, Operator: EOR, Register: A, Cycles: 2},
	0x89: {Mnemonic: "ADCA", Mode: Immediate, Operator: ADC, Register: A, Cycles: 2},
	0x8a: {Mnemonic: "ORA", Mode: Immediate, Operator: OR, Register: A, Cycles: 2},
	0x8b: {Mnemonic: "ADDA", Mode: Immediate, Operator: ADD, Register: A, Cycles: 2},
	0x8c: {Mnemonic: "CMPX", Mode: Immediate, Operator: CMP, Register: X, Cycles: 4},
	0x8d: {Mnemonic: "BSR", Mode: Relative, Operator: BSR, Cycles: 7},
	0x8e: {Mnemonic: "LDX", Mode: Immediate, Operator: LD, Register: X, Cycles: 3},
	0x8f: {Mnemonic: "STX", Mode: Immediate, Operator: ST, Register: X, Cycles: 4, Undocumented: true},

	// A accumulator and X register, direct
	0x90: {Mnemonic: "SUBA", Mode: Direct, Operator: SUB, Register: A, Cycles: 4},
	0x91: {Mnemonic: "CMPA", Mode: Direct, Operator: CMP, Register: A, Cycles: 4},
	0x92: {Mnemonic: "SBCA", Mode: Direct, Operator: SBC, Register: A, Cycles: 4},
	0x93: {Mnemonic: "SUBD", Mode: Direct, Operator: SUB, Register: D, Cycles: 6},
	0x94: {Mnemonic: "ANDA", Mode: Direct, Operator: AND, Register: A, Cycles: 4},
	0x95: {Mnemonic: "BITA", Mode: Direct, Operator: BIT, Register: A, Cycles: 4},
	0x96: {Mnemonic: "LDA", Mode: Direct, Operator: LD, Register: A, Cycles: 4},
	0x97: {Mnemonic: "STA", Mode: Direct, Operator: ST, Register: A, Cycles: 4},
	0x98: {Mnemonic: "EORA", Mode: Direct, Operator: EOR, Register: A, Cycles: 4},
	0x99: {Mnemonic: "ADCA", Mode: Direct, Operator: ADC, Register: A, Cycles: 4},
	0x9a: {Mnemonic: "ORA", Mode: Direct, Operator: OR, Register: A, Cycles: 4},
	0x9b: {Mnemonic: "ADDA", Mode: Direct, Operator: ADD, Register: A, Cycles: 4},
	0x9c: {Mnemonic: "CMPX", Mode: Direct, Operator: CMP, Register: X, Cycles: 6},
	0x9d: {Mnemonic: "JSR", Mode: Direct, Operator: JSR, Cycles: 7},
	0x9e: {Mnemonic: "LDX", Mode: Direct, Operator: LD, Register: X, Cycles: 5},
	0x9f: {Mnemonic: "STX", Mode: Direct, Operator: ST, Register: X, Cycles: 5},

	// A accumulator and X register, indexed
	0xa0: {Mnemonic: "SUBA", Mode: Indexed, Operator: SUB, Register: A, Cycles: 4},
	0xa1: {Mnemonic: "CMPA", Mode: Indexed, Operator: CMP, Register: A, Cycles: 4},
	0xa2: {Mnemonic: "SBCA", Mode: Indexed, Operator: SBC, Register: A, Cycles: 4},
	0xa3: {Mnemonic: "SUBD", Mode: Indexed, Operator: SUB, Register: D, Cycles: 6},
	0xa4: {Mnemonic: "ANDA", Mode: Indexed, Operator: AND, Register: A, Cycles: 4},
	0xa5: {Mnemonic: "BITA", Mode: Indexed, Operator: BIT, Register: A, Cycles: 4},
	0xa6: {Mnemonic: "LDA", Mode: Indexed, Operator: LD, Register: A, Cycles: 4},
	0xa7: {Mnemonic: "STA", Mode: Indexed, Operator: ST, Register: A, Cycles: 4},
	0xa8: {Mnemonic: "EORA", Mode: Indexed, Operator: EOR, Register: A, Cycles: 4},
	0xa9: {Mnemonic: "ADCA", Mode: Indexed, Operator: ADC, Register: A, Cycles: 4},
	0xaa: {Mnemonic: "ORA", Mode: Indexed, Operator: OR, Register: A, Cycles: 4},
	0xab: {Mnemonic: "ADDA", Mode: Indexed, Operator: ADD, Register: A, Cycles: 4},
	0xac: {Mnemonic: "CMPX", Mode: Indexed, Operator: CMP, Register: X, Cycles: 6},
	0xad: {Mnemonic: "JSR", Mode: Indexed, Operator: JSR, Cycles: 7},
	0xae: {Mnemonic: "LDX", Mode: Indexed, Operator: LD, Register: X, Cycles: 5},
	0xaf: {Mnemonic: "STX", Mode: Indexed, Operator: ST, Register: X, Cycles: 5},

	// A accumulator and X register, extended
	0xb0: {Mnemonic: "SUBA", Mode: Extended, Operator: SUB, Register: A, Cycles: 5},
	0xb1: {Mnemonic: "CMPA", Mode: Extended, Operator: CMP, Register: A, Cycles: 5},
	0xb2: {Mnemonic: "SBCA", Mode: Extended, Operator: SBC, Register: A, Cycles: 5},
	0xb3: {Mnemonic: "SUBD", Mode: Extended, Operator: SUB, Register: D, Cycles: 7},
	0xb4: {Mnemonic: "ANDA", Mode: Extended, Operator: AND, Register: A, Cycles: 5},
	0xb5: {Mnemonic: "BITA", Mode: Extended, Operator: BIT, Register: A, Cycles: 5},
	0xb6: {Mnemonic: "LDA", Mode: Extended, Operator: LD, Register: A, Cycles: 5},
	0xb7: {Mnemonic: "STA", Mode: Extended, Operator: ST, Register: A, Cycles: 5},
	0xb8: {Mnemonic: "EORA", Mode: Extended, Operator: EOR, Register: A, Cycles: 5},
	0xb9: {Mnemonic: "ADCA", Mode: Extended, Operator: ADC, Register: A, Cycles: 5},
	0xba: {Mnemonic: "ORA", Mode: Extended, Operator: OR, Register: A, Cycles: 5},
	0xbb: {Mnemonic: "ADDA", Mode: Extended, Operator: ADD, Register: A, Cycles: 5},
	0xbc: {Mnemonic: "CMPX", Mode: Extended, Operator: CMP, Register: X, Cycles: 7},
	0xbd: {Mnemonic: "JSR", Mode: Extended, Operator: JSR, Cycles: 8},
	0xbe: {Mnemonic: "LDX", Mode: Extended, Operator: LD, Register: X, Cycles: 6},
	0xbf: {Mnemonic: "STX", Mode: Extended, Operator: ST, Register: X, Cycles: 6},

	// B accumulator, D and U registers, immediate
	0xc0: {Mnemonic: "SUBB", Mode: Immediate, Operator: SUB, Register: B, Cycles: 2},
	0xc1: {Mnemonic: "CMPB", Mode: Immediate, Operator: CMP, Register: B, Cycles: 2},
	0xc2: {Mnemonic: "SBCB", Mode: Immediate, Operator: SBC, Register: B, Cycles: 2},
	0xc3: {Mnemonic: "ADDD", Mode: Immediate, Operator: ADD, Register: D, Cycles: 4},
	0xc4: {Mnemonic: "ANDB", Mode: Immediate, Operator: AND, Register: B, Cycles: 2},
	0xc5: {Mnemonic: "BITB", Mode: Immediate, Operator: BIT, Register: B, Cycles: 2},
	0xc6: {Mnemonic: "LDB", Mode: Immediate, Operator: LD, Register: B, Cycles: 2},
	0xc7: {Mnemonic: "STB", Mode: Immediate, Operator: ST, Register: B, Cycles: 3, Undocumented: true},
	0xc8: {Mnemonic: "EORB", Mode: Immediate, Operator: EOR, Register: B, Cycles: 2},
	0xc9: {Mnemonic: "ADCB", Mode: Immediate, Operator: ADC, Register: B, Cycles: 2},
	0xca: {Mnemonic: "ORB", Mode: Immediate, Operator: OR, Register: B, Cycles: 2},
	0xcb: {Mnemonic: "ADDB", Mode: Immediate, Operator: ADD, Register: B, Cycles: 2},
	0xcc: {Mnemonic: "LDD", Mode: Immediate, Operator: LD, Register: D, Cycles: 3},
	0xcd: {Mnemonic: "HCF", Mode: Inherent, Operator: HCF, Cycles: 1, Undocumented: true},
	0xce: {Mnemonic: "LDU", Mode: Immediate, Operator: LD, Register: U, Cycles: 3},
	0xcf: {Mnemonic: "STU", Mode: Immediate, Operator: ST, Register: U, Cycles: 4, Undocumented: true},

	// B accumulator, D and U registers, direct
	0xd0: {Mnemonic: "SUBB", Mode: Direct, Operator: SUB, Register: B, Cycles: 4},
	0xd1: {Mnemonic: "CMPB", Mode: Direct, Operator: CMP, Register: B, Cycles: 4},
	0xd2: {Mnemonic: "SBCB", Mode: Direct, Operator: SBC, Register: B, Cycles: 4},
	0xd3: {Mnemonic: "ADDD", Mode: Direct, Operator: ADD, Register: D, Cycles: 6},
	0xd4: {Mnemonic: "ANDB", Mode: Direct, Operator: AND, Register: B, Cycles: 4},
	0xd5: {Mnemonic: "BITB", Mode: Direct, Operator: BIT, Register: B, Cycles: 4},
	0xd6: {Mnemonic: "LDB", Mode: Direct, Operator: LD, Register: B, Cycles: 4},
	0xd7: {Mnemonic: "STB", Mode: Direct, Operator: ST, Register: B, Cycles: 4},
	0xd8: {Mnemonic: "EORB", Mode: Direct, Operator: EOR, Register: B, Cycles: 4},
	0xd9: {Mnemonic: "ADCB", Mode: Direct, Operator: ADC, Register: B, Cycles: 4},
	0xda: {Mnemonic: "ORB", Mode: Direct, Operator: OR, Register: B, Cycles: 4},
	0xdb: {Mnemonic: "ADDB", Mode: Direct, Operator: ADD, Register: B, Cycles: 4},
	0xdc: {Mnemonic: "LDD", Mode: Direct, Operator: LD, Register: D, Cycles: 5},
	0xdd: {Mnemonic: "STD", Mode: Direct, Operator: ST, Register: D, Cycles: 5},
	0xde: {Mnemonic: "LDU", Mode: Direct, Operator: LD, Register: U, Cycles: 5},
	0xdf: {Mnemonic: "STU", Mode: Direct, Operator: ST, Register: U, Cycles: 5},

	// B accumulator, D and U registers, indexed
	0xe0: {Mnemonic: "SUBB", Mode: Indexed, Operator: SUB, Register: B, Cycles: 4},
	0xe1: {Mnemonic: "CMPB", Mode: Indexed, Operator: CMP, Register: B, Cycles: 4},
	0xe2: {Mnemonic: "SBCB", Mode: Indexed, Operator: SBC, Register: B, Cycles: 4},
	0xe3: {Mnemonic: "ADDD", Mode: Indexed, Operator: ADD, Register: D, Cycles: 6},
	0xe4: {Mnemonic: "ANDB", Mode: Indexed, Operator: AND, Register: B, Cycles: 4},
	0xe5: {Mnemonic: "BITB", Mode: Indexed, Operator: BIT, Register: B, Cycles: 4},
	0xe6: {Mnemonic: "LDB", Mode: Indexed, Operator: LD, Register: B, Cycles: 4},
	0xe7: {Mnemonic: "STB", Mode: Indexed, Operator: ST, Register: B, Cycles: 4},
	0xe8: {Mnemonic: "EORB", Mode: Indexed, Operator: EOR, Register: B, Cycles: 4},
	0xe9: {Mnemonic: "ADCB", Mode: Indexed, Operator: ADC, Register: B, Cycles: 4},
	0xea: {Mnemonic: "ORB", Mode: Indexed, Operator: OR, Register: B, Cycles: 4},
	0xeb: {Mnemonic: "ADDB", Mode: Indexed, Operator: ADD, Register: B, Cycles: 4},
	0xec: {Mnemonic: "LDD", Mode: Indexed, Operator: LD, Register: D, Cycles: 5},
	0xed: {Mnemonic: "STD", Mode: Indexed, Operator: ST, Register: D, Cycles: 5},
	0xee: {Mnemonic: "LDU", Mode: Indexed, Operator: LD, Register: U, Cycles: 5},
	0xef: {Mnemonic: "STU", Mode: Indexed, Operator: ST, Register: U, Cycles: 5},

	// B accumulator, D and U registers, extended
	0xf0: {Mnemonic: "SUBB", Mode: Extended, Operator: SUB, Register: B, Cycles: 5},
	0xf1: {Mnemonic: "CMPB", Mode: Extended, Operator: CMP, Register: B, Cycles: 5},
	0xf2: {Mnemonic: "SBCB", Mode: Extended, Operator: SBC, Register: B, Cycles: 5},
	0xf3: {Mnemonic: "ADDD", Mode: Extended, Operator: ADD, Register: D, Cycles: 7},
	0xf4: {Mnemonic: "ANDB", Mode: Extended, Operator: AND, Register: B, Cycles: 5},
	0xf5: {Mnemonic: "BITB", Mode: Extended, Operator: BIT, Register: B, Cycles: 5},
	0xf6: {Mnemonic: "LDB", Mode: Extended, Operator: LD, Register: B, Cycles: 5},
	0xf7: {Mnemonic: "STB", Mode: Extended, Operator: ST, Register: B, Cycles: 5},
	0xf8: {Mnemonic: "EORB", Mode: Extended, Operator: EOR, Register: B, Cycles: 5},
	0xf9: {Mnemonic: "ADCB", Mode: Extended, Operator: ADC, Register: B, Cycles: 5},
	0xfa: {Mnemonic: "ORB", Mode: Extended, Operator: OR, Register: B, Cycles: 5},
	0xfb: {Mnemonic: "ADDB", Mode: Extended, Operator: ADD, Register: B, Cycles: 5},
	0xfc: {Mnemonic: "LDD", Mode: Extended, Operator: LD, Register: D, Cycles: 6},
	0xfd: {Mnemonic: "STD", Mode: Extended, Operator: ST, Register: D, Cycles: 6},
	0xfe: {Mnemonic: "LDU", Mode: Extended, Operator: LD, Register: U, Cycles: 6},
	0xff: {Mnemonic: "STU", Mode: Extended, Operator: ST, Register: U, Cycles: 6},
}
