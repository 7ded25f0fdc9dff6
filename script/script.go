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

package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopherdragon/curated"
	"github.com/jetsetilly/gopherdragon/disassembly"
	"github.com/jetsetilly/gopherdragon/hardware"
	"github.com/jetsetilly/gopherdragon/logger"
	lua "github.com/yuin/gopher-lua"
)

// Script is a Lua interpreter connected to a machine.
type Script struct {
	m      *hardware.Machine
	output io.Writer
	tracer *disassembly.Tracer
	L      *lua.LState
}

// NewScript is the preferred method of initialisation for the Script type.
// Output from the print() function and from tracing is written to output.
func NewScript(m *hardware.Machine, output io.Writer) *Script {
	scr := &Script{
		m:      m,
		output: output,
		tracer: disassembly.NewTracer(m.CPU, m, output),
		L:      lua.NewState(),
	}

	for name, fn := range map[string]lua.LGFunction{
		"peek":     scr.peek,
		"poke":     scr.poke,
		"step":     scr.step,
		"run":      scr.run,
		"frames":   scr.frames,
		"reg":      scr.reg,
		"press":    scr.press,
		"release":  scr.release,
		"joystick": scr.joystick,
		"trace":    scr.trace,
		"print":    scr.print,
	} {
		scr.L.SetGlobal(name, scr.L.NewFunction(fn))
	}

	return scr
}

// Close the interpreter. The Script should not be used after Close() has
// been called.
func (scr *Script) Close() {
	scr.tracer.Detach()
	scr.L.Close()
}

// RunString runs the Lua source.
func (scr *Script) RunString(src string) error {
	if err := scr.L.DoString(src); err != nil {
		return curated.Errorf("script: %v", err)
	}
	return nil
}

// RunFile runs the Lua file.
func (scr *Script) RunFile(filename string) error {
	logger.Logf(logger.Allow, "script", "running %s", filename)
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf("script: %v", err)
	}
	return nil
}

func checkAddress(L *lua.LState, n int) uint16 {
	a := L.CheckInt(n)
	if a < 0 || a > 0xffff {
		L.ArgError(n, "address out of range")
	}
	return uint16(a)
}

func (scr *Script) peek(L *lua.LState) int {
	L.Push(lua.LNumber(scr.m.Peek(checkAddress(L, 1))))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	a := checkAddress(L, 1)
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, "value out of range")
	}
	scr.m.Poke(a, uint8(v))
	return 0
}

func (scr *Script) step(L *lua.LState) int {
	n := L.OptInt(1, 1)
	for i := 0; i < n; i++ {
		scr.m.Step()
	}
	return 0
}

func (scr *Script) run(L *lua.LState) int {
	scr.m.Run(L.CheckInt(1))
	return 0
}

func (scr *Script) frames(L *lua.LState) int {
	scr.m.RunForFrameCount(L.CheckInt(1), nil)
	L.Push(lua.LNumber(scr.m.TV.GetCoords().Frame))
	return 1
}

func (scr *Script) reg(L *lua.LState) int {
	name := strings.ToUpper(L.CheckString(1))
	mc := scr.m.CPU

	var r8 *uint8
	var r16 *uint16

	switch name {
	case "A":
		r8 = &mc.A
	case "B":
		r8 = &mc.B
	case "DP":
		r8 = &mc.DP
	case "CC":
		r8 = (*uint8)(&mc.CC)
	case "X":
		r16 = &mc.X
	case "Y":
		r16 = &mc.Y
	case "U":
		r16 = &mc.U
	case "S":
		r16 = &mc.S
	case "PC":
		r16 = &mc.PC
	case "D":
		if L.GetTop() >= 2 {
			mc.SetD(uint16(L.CheckInt(2)))
		}
		L.Push(lua.LNumber(mc.D()))
		return 1
	default:
		L.ArgError(1, fmt.Sprintf("unknown register (%s)", name))
		return 0
	}

	if r8 != nil {
		if L.GetTop() >= 2 {
			*r8 = uint8(L.CheckInt(2))
		}
		L.Push(lua.LNumber(*r8))
	} else {
		if L.GetTop() >= 2 {
			*r16 = uint16(L.CheckInt(2))
		}
		L.Push(lua.LNumber(*r16))
	}
	return 1
}

func (scr *Script) press(L *lua.LState) int {
	if err := scr.m.Keyboard.Press(L.CheckString(1)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) release(L *lua.LState) int {
	if L.GetTop() == 0 {
		scr.m.Keyboard.ReleaseAll()
		return 0
	}
	if err := scr.m.Keyboard.Release(L.CheckString(1)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) joystick(L *lua.LState) int {
	n := L.CheckInt(1)
	if n < 0 || n > 1 {
		L.ArgError(1, "joystick must be 0 or 1")
	}
	x := L.CheckInt(2)
	if x < 0 || x > 63 {
		L.ArgError(2, "axis out of range")
	}
	y := L.CheckInt(3)
	if y < 0 || y > 63 {
		L.ArgError(3, "axis out of range")
	}
	scr.m.SetJoystick(n, hardware.Joystick{
		X:    uint8(x),
		Y:    uint8(y),
		Fire: L.OptBool(4, false),
	})
	return 0
}

func (scr *Script) trace(L *lua.LState) int {
	if L.ToBool(1) {
		scr.tracer.Attach()
	} else {
		scr.tracer.Detach()
	}
	return 0
}

func (scr *Script) print(L *lua.LState) int {
	top := L.GetTop()
	s := make([]string, 0, top)
	for i := 1; i <= top; i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	return 0
}
