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

// page two is selected by the 0x10 prefix. the cycle counts include the
// prefix byte
var page2 = [256]Definition{
	0x21: {Mnemonic: "LBRN", Mode: RelativeLong, Operator: Branch, Cycles: 5},
	0x22: {Mnemonic: "LBHI", Mode: RelativeLong, Operator: Branch, Cycles: 5},
	0x23: {Mnemonic: "LBLS", Mode: RelativeLong, Operator: Branch, Cycles: 5},
	0x24: {Mnemonic: "LBCC", Mode: RelativeLong, Operator: Branch, Cycles: 5},
	0x25: {Mnemonic: "LBCS", Mode: RelativeLong, Operator: Branch, Cycles: 5},
	0x26: {Mnemonic: "LBNE", Mode: RelativeLong, Operator: Branch, Cycles: 5},
	0x27: {Mnemonic: "LBEQ", Mode: RelativeLong, Operator: Branch, Cycles: 5},
	0x28: {Mnemonic: "LBVC", Mode: RelativeLong, Operator: Branch, Cycles: 5},
	0x29: {Mnemonic: "LBVS", Mode: RelativeLong, Operator: Branch, Cycles: 5},
	0x2a: {Mnemonic: "LBPL", Mode: RelativeLong, Operator: Branch, Cycles: 5},
	0x2b: {Mnemonic: "LBMI", Mode: RelativeLong, Operator: Branch, Cycles: 5},
	0x2c: {Mnemonic: "LBGE", Mode: RelativeLong, Operator: Branch, Cycles: 5},
	0x2d: {Mnemonic: "LBLT", Mode: RelativeLong, Operator: Branch, Cycles: 5},
	0x2e: {Mnemonic: "LBGT", Mode: RelativeLong, Operator: Branch, Cycles: 5},
	0x2f: {Mnemonic: "LBLE", Mode: RelativeLong, Operator: Branch, Cycles: 5},

	0x3f: {Mnemonic: "SWI2", Mode: Inherent, Operator: SWI2, Cycles: 20},

	0x83: {Mnemonic: "CMPD", Mode: Immediate, Operator: CMP, Register: D, Cycles: 5},
	0x8c: {Mnemonic: "CMPY", Mode: Immediate, Operator: CMP, Register: Y, Cycles: 5},
	0x8e: {Mnemonic: "LDY", Mode: Immediate, Operator: LD, Register: Y, Cycles: 4},

	0x93: {Mnemonic: "CMPD", Mode: Direct, Operator: CMP, Register: D, Cycles: 7},
	0x9c: {Mnemonic: "CMPY", Mode: Direct, Operator: CMP, Register: Y, Cycles: 7},
	0x9e: {Mnemonic: "LDY", Mode: Direct, Operator: LD, Register: Y, Cycles: 6},
	0x9f: {Mnemonic: "STY", Mode: Direct, Operator: ST, Register: Y, Cycles: 6},

	0xa3: {Mnemonic: "CMPD", Mode: Indexed, Operator: CMP, Register: D, Cycles: 7},
	0xac: {Mnemonic: "CMPY", Mode: Indexed, Operator: CMP, Register: Y, Cycles: 7},
	0xae: {Mnemonic: "LDY", Mode: Indexed, Operator: LD, Register: Y, Cycles: 6},
	0xaf: {Mnemonic: "STY", Mode: Indexed, Operator: ST, Register: Y, Cycles: 6},

	0xb3: {Mnemonic: "CMPD", Mode: Extended, Operator: CMP, Register: D, Cycles: 8},
	0xbc: {Mnemonic: "CMPY", Mode: Extended, Operator: CMP, Register: Y, Cycles: 8},
	0xbe: {Mnemonic: "LDY", Mode: Extended, Operator: LD, Register: Y, Cycles: 7},
	0xbf: {Mnemonic: "STY", Mode: Extended, Operator: ST, Register: Y, Cycles: 7},

	0xce: {Mnemonic: "LDS", Mode: Immediate, Operator: LD, Register: S, Cycles: 4},
	0xde: {Mnemonic: "LDS", Mode: Direct, Operator: LD, Register: S, Cycles: 6},
	0xdf: {Mnemonic: "STS", Mode: Direct, Operator: ST, Register: S, Cycles: 6},
	0xee: {Mnemonic: "LDS", Mode: Indexed, Operator: LD, Register: S, Cycles: 6},
	0xef: {Mnemonic: "STS", Mode: Indexed, Operator: ST, Register: S, Cycles: 6},
	0xfe: {Mnemonic: "LDS", Mode: Extended, Operator: LD, Register: S, Cycles: 7},
	0xff: {Mnemonic: "STS", Mode: Extended, Operator: ST, Register: S, Cycles: 7},
}

// page three is selected by the 0x11 prefix
var page3 = [256]Definition{
	0x3f: {Mnemonic: "SWI3", Mode: Inherent, Operator: SWI3, Cycles: 20},

	0x83: {Mnemonic: "CMPU", Mode: Immediate, Operator: CMP, Register: U, Cycles: 5},
	0x8c: {Mnemonic: "CMPS", Mode: Immediate, Operator: CMP, Register: S, Cycles: 5},
	0x93: {Mnemonic: "CMPU", Mode: Direct, Operator: CMP, Register: U, Cycles: 7},
	0x9c: {Mnemonic: "CMPS", Mode: Direct, Operator: CMP, Register: S, Cycles: 7},
	0xa3: {Mnemonic: "CMPU", Mode: Indexed, Operator: CMP, Register: U, Cycles: 7},
	0xac: {Mnemonic: "CMPS", Mode: Indexed, Operator: CMP, Register: S, Cycles: 7},
	0xb3: {Mnemonic: "CMPU", Mode: Extended, Operator: CMP, Register: U, Cycles: 8},
	0xbc: {Mnemonic: "CMPS", Mode: Extended, Operator: CMP, Register: S, Cycles: 8},
}
