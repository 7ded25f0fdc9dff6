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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopherdragon/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdragon/test"
)

func TestConditionCodeString(t *testing.T) {
	var cc registers.CC
	test.ExpectEquality(t, cc.String(), "efhinzvc")

	cc = 0xff
	test.ExpectEquality(t, cc.String(), "EFHINZVC")

	cc = registers.EntireFlag | registers.Zero | registers.Carry
	test.ExpectEquality(t, cc.String(), "EfhinZvC")
}

func TestConditionCodeSet(t *testing.T) {
	var cc registers.CC
	cc.Set(registers.IRQMask|registers.FIRQMask, true)
	test.ExpectEquality(t, cc, registers.CC(0x50))
	test.ExpectSuccess(t, cc.Is(registers.IRQMask))
	test.ExpectFailure(t, cc.Is(registers.IRQMask|registers.Carry))

	cc.Set(registers.IRQMask, false)
	test.ExpectEquality(t, cc, registers.CC(0x40))
}

func TestRegisterCodes(t *testing.T) {
	test.ExpectSuccess(t, registers.CodeD.Is16Bit())
	test.ExpectSuccess(t, registers.CodePC.Is16Bit())
	test.ExpectFailure(t, registers.CodeA.Is16Bit())
	test.ExpectFailure(t, registers.CodeDP.Is16Bit())

	test.ExpectSuccess(t, registers.CodeCC.Valid())
	test.ExpectFailure(t, registers.Code(0x6).Valid())
	test.ExpectFailure(t, registers.Code(0xc).Valid())
	test.ExpectEquality(t, registers.Code(0xf).String(), "?")
}
