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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopherdragon/hardware/cpu"
	"github.com/jetsetilly/gopherdragon/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdragon/test"
)

func TestReset(t *testing.T) {
	bus := &mockBus{}
	bus.putVector(0xfffe, 0x1234)

	mc := cpu.NewCPU(bus)
	mc.DP = 0x55
	test.ExpectEquality(t, mc.Exec, cpu.Reset)

	mc.StepInstruction()
	test.ExpectEquality(t, mc.Exec, cpu.ResetCheckHalt)
	mc.StepInstruction()
	test.ExpectEquality(t, mc.Exec, cpu.LabelA)

	test.ExpectEquality(t, mc.PC, uint16(0x1234))
	test.ExpectEquality(t, mc.DP, uint8(0x00))
	test.ExpectSuccess(t, mc.CC.Is(registers.FIRQMask|registers.IRQMask))
	test.ExpectEquality(t, bus.cycles, 3)

	// reset held by the HALT line
	mc.Reset()
	mc.HALT = true
	mc.StepInstruction()
	mc.StepInstruction()
	mc.StepInstruction()
	test.ExpectEquality(t, mc.Exec, cpu.ResetCheckHalt)
	mc.HALT = false
	mc.StepInstruction()
	test.ExpectEquality(t, mc.Exec, cpu.LabelA)
}

func TestHalt(t *testing.T) {
	mc, bus := newCPU(t, 0x12)
	mc.HALT = true
	test.ExpectEquality(t, step(mc, bus), 1)
	test.ExpectEquality(t, step(mc, bus), 1)
	test.ExpectEquality(t, mc.PC, origin)
	mc.HALT = false
	test.ExpectEquality(t, step(mc, bus), 2)
	test.ExpectEquality(t, mc.PC, origin+1)
}

func TestArithmeticFlags(t *testing.T) {
	// LDA #$7f; ADDA #$01
	mc, bus := newCPU(t, 0x86, 0x7f, 0x8b, 0x01)
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.A, uint8(0x80))
	test.ExpectEquality(t, flags(mc), "NzVc")
	test.ExpectSuccess(t, mc.CC.Is(registers.HalfCarry))

	// LDA #$ff; ADDA #$01
	mc, bus = newCPU(t, 0x86, 0xff, 0x8b, 0x01)
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.A, uint8(0x00))
	test.ExpectEquality(t, flags(mc), "nZvC")
	test.ExpectSuccess(t, mc.CC.Is(registers.HalfCarry))

	// LDA #$80; SUBA #$01
	mc, bus = newCPU(t, 0x86, 0x80, 0x80, 0x01)
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.A, uint8(0x7f))
	test.ExpectEquality(t, flags(mc), "nzVc")

	// LDA #$00; SUBA #$01
	mc, bus = newCPU(t, 0x86, 0x00, 0x80, 0x01)
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.A, uint8(0xff))
	test.ExpectEquality(t, flags(mc), "NzvC")

	// ORCC #$01; LDA #$10; SBCA #$0f
	mc, bus = newCPU(t, 0x1a, 0x01, 0x86, 0x10, 0x82, 0x0f)
	step(mc, bus)
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.A, uint8(0x00))
	test.ExpectEquality(t, flags(mc), "nZvc")

	// ORCC #$01; LDA #$10; ADCA #$0f
	mc, bus = newCPU(t, 0x1a, 0x01, 0x86, 0x10, 0x89, 0x0f)
	step(mc, bus)
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.A, uint8(0x20))
	test.ExpectEquality(t, flags(mc), "nzvc")
	test.ExpectSuccess(t, mc.CC.Is(registers.HalfCarry))
}

func TestSixteenBitFlags(t *testing.T) {
	// LDD #$7fff; ADDD #$0001
	mc, bus := newCPU(t, 0xcc, 0x7f, 0xff, 0xc3, 0x00, 0x01)
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.D(), uint16(0x8000))
	test.ExpectEquality(t, flags(mc), "NzVc")

	// LDD #$0000; SUBD #$0001
	mc, bus = newCPU(t, 0xcc, 0x00, 0x00, 0x83, 0x00, 0x01)
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.D(), uint16(0xffff))
	test.ExpectEquality(t, flags(mc), "NzvC")

	// LDX #$1000; CMPX #$1000
	mc, bus = newCPU(t, 0x8e, 0x10, 0x00, 0x8c, 0x10, 0x00)
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.X, uint16(0x1000))
	test.ExpectEquality(t, flags(mc), "nZvc")

	// LDY #$8000; CMPY #$0001
	mc, bus = newCPU(t, 0x10, 0x8e, 0x80, 0x00, 0x10, 0x8c, 0x00, 0x01)
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, flags(mc), "nzVc")
}

func TestUnaryOperators(t *testing.T) {
	// LDA #$80; NEGA
	mc, bus := newCPU(t, 0x86, 0x80, 0x40)
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.A, uint8(0x80))
	test.ExpectEquality(t, flags(mc), "NzVC")

	// CLRA; NEGA
	mc, bus = newCPU(t, 0x4f, 0x40)
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.A, uint8(0x00))
	test.ExpectEquality(t, flags(mc), "nZvc")

	// LDB #$81; ASRB; RORB; ASLB
	mc, bus = newCPU(t, 0xc6, 0x81, 0x57, 0x56, 0x58)
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.B, uint8(0xc0))
	test.ExpectEquality(t, flags(mc), "NzvC")
	step(mc, bus)
	test.ExpectEquality(t, mc.B, uint8(0xe0))
	test.ExpectEquality(t, flags(mc), "Nzvc")
	step(mc, bus)
	test.ExpectEquality(t, mc.B, uint8(0xc0))
	test.ExpectEquality(t, flags(mc), "NzvC")

	// LDA #$7f; INCA; DECA
	mc, bus = newCPU(t, 0x86, 0x7f, 0x4c, 0x4a)
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.A, uint8(0x80))
	test.ExpectEquality(t, flags(mc), "NzVc")
	step(mc, bus)
	test.ExpectEquality(t, mc.A, uint8(0x7f))
	test.ExpectEquality(t, flags(mc), "nzVc")

	// COM $10 (direct page)
	mc, bus = newCPU(t, 0x03, 0x10)
	bus.mem[0x0010] = 0x0f
	step(mc, bus)
	test.ExpectEquality(t, bus.mem[0x0010], uint8(0xf0))
	test.ExpectEquality(t, flags(mc), "NzvC")

	// undocumented NGC: NEG when carry is clear, COM when it is set
	mc, bus = newCPU(t, 0x42, 0x1a, 0x01, 0x42)
	mc.A = 0x01
	step(mc, bus)
	test.ExpectEquality(t, mc.A, uint8(0xff))
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.A, uint8(0x00))
}

func TestDecimalAdjust(t *testing.T) {
	// LDA #$59; ADDA #$59; DAA
	mc, bus := newCPU(t, 0x86, 0x59, 0x8b, 0x59, 0x19)
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.A, uint8(0xb2))
	step(mc, bus)
	test.ExpectEquality(t, mc.A, uint8(0x18))
	test.ExpectSuccess(t, mc.CC.Is(registers.Carry))

	// LDA #$19; ADDA #$28; DAA
	mc, bus = newCPU(t, 0x86, 0x19, 0x8b, 0x28, 0x19)
	step(mc, bus)
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.A, uint8(0x47))
	test.ExpectFailure(t, mc.CC.Is(registers.Carry))
}

func TestMultiplyAndSignExtend(t *testing.T) {
	// LDA #$0c; LDB #$0c; MUL
	mc, bus := newCPU(t, 0x86, 0x0c, 0xc6, 0x0c, 0x3d)
	step(mc, bus)
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.D(), uint16(0x0090))
	test.ExpectSuccess(t, mc.CC.Is(registers.Carry))
	test.ExpectFailure(t, mc.CC.Is(registers.Zero))

	// LDB #$80; SEX
	mc, bus = newCPU(t, 0xc6, 0x80, 0x1d)
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.D(), uint16(0xff80))
	test.ExpectSuccess(t, mc.CC.Is(registers.Negative))

	// LDB #$f0; ABX
	mc, bus = newCPU(t, 0xc6, 0xf0, 0x3a)
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.X, uint16(0x20f0))
}

func TestTransferRegisters(t *testing.T) {
	// LDA #$12; TFR A,X; TFR X,Y
	mc, bus := newCPU(t, 0x86, 0x12, 0x1f, 0x81, 0x1f, 0x12)
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.X, uint16(0xff12))
	step(mc, bus)
	test.ExpectEquality(t, mc.Y, uint16(0xff12))

	// LDD #$1234; EXG A,B
	mc, bus = newCPU(t, 0xcc, 0x12, 0x34, 0x1e, 0x89)
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.D(), uint16(0x3412))

	// invalid source reads as $ffff and writes to an invalid register are
	// ignored. TFR 6,X; TFR Y,7
	mc, bus = newCPU(t, 0x1f, 0x61, 0x1f, 0x27)
	step(mc, bus)
	test.ExpectEquality(t, mc.X, uint16(0xffff))
	step(mc, bus)
	test.ExpectEquality(t, mc.Y, uint16(0x3000))

	// TFR X,A takes the low byte
	mc, bus = newCPU(t, 0x1f, 0x18)
	mc.X = 0xabcd
	step(mc, bus)
	test.ExpectEquality(t, mc.A, uint8(0xcd))
}

func TestIndexedModes(t *testing.T) {
	program := []uint8{
		0xa6, 0x80, // LDA ,X+
		0xa6, 0x81, // LDA ,X++
		0xa6, 0x82, // LDA ,-X
		0xa6, 0x83, // LDA ,--X
		0xa6, 0x9f, 0x30, 0x00, // LDA [$3000]
		0x31, 0x8b, // LEAY D,X
		0x30, 0x10, // LEAX -16,X
		0xe6, 0x8c, 0x01, // LDB 1,PCR
		0x12, 0x77, // NOP; data
	}

	mc, bus := newCPU(t, program...)
	bus.putInstructions(0x2000, 0x11, 0x22, 0x33)
	bus.putVector(0x3000, 0x2002)

	step(mc, bus)
	test.ExpectEquality(t, mc.A, uint8(0x11))
	test.ExpectEquality(t, mc.X, uint16(0x2001))
	step(mc, bus)
	test.ExpectEquality(t, mc.A, uint8(0x22))
	test.ExpectEquality(t, mc.X, uint16(0x2003))
	step(mc, bus)
	test.ExpectEquality(t, mc.A, uint8(0x33))
	test.ExpectEquality(t, mc.X, uint16(0x2002))
	step(mc, bus)
	test.ExpectEquality(t, mc.A, uint8(0x11))
	test.ExpectEquality(t, mc.X, uint16(0x2000))
	step(mc, bus)
	test.ExpectEquality(t, mc.A, uint8(0x33))

	mc.SetD(0x0010)
	step(mc, bus)
	test.ExpectEquality(t, mc.Y, uint16(0x2010))
	step(mc, bus)
	test.ExpectEquality(t, mc.X, uint16(0x1ff0))
	step(mc, bus)
	test.ExpectEquality(t, mc.B, uint8(0x77))

	// LEAX ,X sets Z
	mc, bus = newCPU(t, 0x30, 0x84)
	mc.X = 0
	step(mc, bus)
	test.ExpectSuccess(t, mc.CC.Is(registers.Zero))
}

func TestBranches(t *testing.T) {
	// LDA #$05; DECA; BNE -3; NOP
	mc, bus := newCPU(t, 0x86, 0x05, 0x4a, 0x26, 0xfd, 0x12)
	step(mc, bus)

	n := 0
	for mc.PC != origin+5 && n < 100 {
		step(mc, bus)
		n++
	}
	test.ExpectEquality(t, n, 10)
	test.ExpectEquality(t, mc.A, uint8(0x00))

	// BSR to a RTS
	mc, bus = newCPU(t, 0x8d, 0x01, 0x12, 0x39)
	step(mc, bus)
	test.ExpectEquality(t, mc.PC, origin+3)
	test.ExpectEquality(t, mc.S, uint16(0x4ffe))
	step(mc, bus)
	test.ExpectEquality(t, mc.PC, origin+2)
	test.ExpectEquality(t, mc.S, uint16(0x5000))

	// LBRA backwards
	mc, bus = newCPU(t, 0x16, 0xff, 0xfd)
	step(mc, bus)
	test.ExpectEquality(t, mc.PC, origin)
}

func TestHaltAndCatchFire(t *testing.T) {
	for _, op := range []uint8{0x14, 0x15, 0xcd} {
		mc, bus := newCPU(t, op)
		test.ExpectEquality(t, step(mc, bus), 1)
		test.ExpectEquality(t, mc.Exec, cpu.HCF)

		for i := 0; i < 100; i++ {
			mc.StepInstruction()
		}
		test.ExpectEquality(t, mc.Exec, cpu.HCF)
		test.ExpectEquality(t, mc.PC, origin+101)
		test.ExpectEquality(t, bus.cycles, 101)

		// interrupts are not serviced
		mc.IRQ = true
		mc.CC = 0
		mc.StepInstruction()
		test.ExpectEquality(t, mc.Exec, cpu.HCF)

		// reset ends it
		mc.Reset()
		mc.StepInstruction()
		mc.StepInstruction()
		test.ExpectEquality(t, mc.Exec, cpu.LabelA)
	}
}

func TestStateRoundTrip(t *testing.T) {
	program := []uint8{
		0x86, 0x05, // LDA #5
		0x8b, 0x03, // ADDA #3
		0x4a,       // DECA
		0x26, 0xfd, // BNE -3
		0x34, 0x06, // PSHS A,B
		0x5c,       // INCB
		0x20, 0xf4, // BRA -12
	}
	mc, bus := newCPU(t, program...)

	for i := 0; i < 5; i++ {
		mc.StepInstruction()
	}

	state := mc.GetState()
	mem := bus.mem

	type trace struct {
		pc     uint16
		d      uint16
		cc     registers.CC
		s      uint16
		cycles uint64
	}

	run := func() []trace {
		var tr []trace
		for i := 0; i < 200; i++ {
			mc.StepInstruction()
			tr = append(tr, trace{pc: mc.PC, d: mc.D(), cc: mc.CC, s: mc.S, cycles: mc.BusCycles})
		}
		return tr
	}

	a := run()

	mc.SetState(state)
	bus.mem = mem
	b := run()

	test.DemandEquality(t, len(a), len(b))
	for i := range a {
		test.ExpectEquality(t, a[i], b[i], i)
	}
}
