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
)

// mockBus is a flat 64k of memory that counts bus cycles.
type mockBus struct {
	mem    [0x10000]uint8
	cycles int
}

func (bus *mockBus) Read(address uint16) uint8 {
	bus.cycles++
	return bus.mem[address]
}

func (bus *mockBus) Write(address uint16, data uint8) {
	bus.cycles++
	bus.mem[address] = data
}

func (bus *mockBus) DeadCycles(n int) {
	bus.cycles += n
}

func (bus *mockBus) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		bus.mem[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (bus *mockBus) putVector(vector uint16, address uint16) {
	bus.mem[vector] = uint8(address >> 8)
	bus.mem[vector+1] = uint8(address)
}

const origin = uint16(0x1000)

// newCPU creates a CPU on a mock bus with the program at the origin. the CPU
// is taken through the reset sequence and the registers are set to known
// values.
func newCPU(t *testing.T, program ...uint8) (*cpu.CPU, *mockBus) {
	t.Helper()

	bus := &mockBus{}
	bus.putVector(0xfffe, origin)
	bus.putInstructions(origin, program...)

	mc := cpu.NewCPU(bus)
	for i := 0; mc.Exec != cpu.LabelA; i++ {
		if i > 10 {
			t.Fatalf("cpu did not complete reset sequence")
		}
		mc.Step()
	}

	mc.X = 0x2000
	mc.Y = 0x3000
	mc.U = 0x4000
	mc.S = 0x5000
	bus.cycles = 0

	return mc, bus
}

// step one instruction and return the number of cycles taken.
func step(mc *cpu.CPU, bus *mockBus) int {
	before := bus.cycles
	mc.StepInstruction()
	return bus.cycles - before
}

// flags returns the NZVC part of the condition code register.
func flags(mc *cpu.CPU) string {
	return mc.CC.String()[4:]
}
