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

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherdragon/cartridgeloader"
	"github.com/jetsetilly/gopherdragon/cassette"
	"github.com/jetsetilly/gopherdragon/curated"
	"github.com/jetsetilly/gopherdragon/debugger"
	"github.com/jetsetilly/gopherdragon/digest"
	"github.com/jetsetilly/gopherdragon/disassembly"
	"github.com/jetsetilly/gopherdragon/hardware"
	"github.com/jetsetilly/gopherdragon/logger"
	"github.com/jetsetilly/gopherdragon/paths"
	"github.com/jetsetilly/gopherdragon/performance"
	"github.com/jetsetilly/gopherdragon/performance/limiter"
	"github.com/jetsetilly/gopherdragon/script"
	"github.com/jetsetilly/gopherdragon/snapshot"
	"github.com/jetsetilly/gopherdragon/statsview"
	"github.com/jetsetilly/gopherdragon/version"
	"github.com/jetsetilly/gopherdragon/wavwriter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(10)
	}
}

// machineFlags are the flags common to every command that creates a machine
type machineFlags struct {
	arch      string
	ram       int
	tv        string
	rom       string
	cart      string
	autostart bool
	snapshot  string
}

func (mf *machineFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&mf.arch, "arch", "dragon32", "machine architecture: dragon32, dragon64, coco")
	fs.IntVar(&mf.ram, "ram", 0, "installed RAM in kilobytes: 4, 16, 32, 64 (0 = architecture default)")
	fs.StringVar(&mf.tv, "tv", "AUTO", "television specification: AUTO, NTSC, PAL")
	fs.StringVar(&mf.rom, "rom", "", "BASIC ROM file or URL (defaults to the ROM in the resource directory)")
	fs.StringVar(&mf.cart, "cart", "", "cartridge file or URL")
	fs.BoolVar(&mf.autostart, "autostart", true, "pulse the cartridge interrupt so that BASIC starts the cartridge")
	fs.StringVar(&mf.snapshot, "load", "", "restore the machine from a snapshot file")
}

func load(filename string, kind string) ([]uint8, error) {
	cl := cartridgeloader.NewLoader(filename, kind)
	if err := cl.Load(); err != nil {
		return nil, err
	}
	return cl.Data, nil
}

func (mf *machineFlags) config() (hardware.Config, error) {
	arch, err := hardware.ParseArchitecture(mf.arch)
	if err != nil {
		return hardware.Config{}, err
	}

	cfg := hardware.DefaultConfig(arch)
	if mf.ram > 0 {
		cfg.RAM = mf.ram * 1024
	}

	switch strings.ToUpper(mf.tv) {
	case "AUTO":
	case "PAL":
		cfg.PAL = true
	case "NTSC":
		cfg.PAL = false
	default:
		return cfg, curated.Errorf("unknown television specification (%s)", mf.tv)
	}

	rom := mf.rom
	if rom == "" {
		def := paths.ResourcePath("roms", strings.ReplaceAll(strings.ToLower(arch.String()), " ", "")+".rom")
		if _, err := os.Stat(def); err == nil {
			rom = def
		} else {
			logger.Logf(logger.Allow, "gopherdragon", "no BASIC ROM found at %s", def)
		}
	}
	if rom != "" {
		cfg.ROM, err = load(rom, "ROM")
		if err != nil {
			return cfg, err
		}
	}

	if mf.cart != "" {
		cfg.Cartridge, err = load(mf.cart, "CARTRIDGE")
		if err != nil {
			return cfg, err
		}
		cfg.AutoStart = mf.autostart
	}

	return cfg, nil
}

func (mf *machineFlags) newMachine() (*hardware.Machine, error) {
	cfg, err := mf.config()
	if err != nil {
		return nil, err
	}

	m, err := hardware.NewMachine(cfg)
	if err != nil {
		return nil, err
	}

	if mf.snapshot != "" {
		if err := snapshot.Load(mf.snapshot, m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func newRootCmd() *cobra.Command {
	var echoLog bool

	rootCmd := &cobra.Command{
		Use:          "gopherdragon",
		Short:        "Dragon 32/64 and Tandy CoCo emulator",
		Version:      version.String(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if echoLog {
				logger.SetEcho(cmd.ErrOrStderr(), true)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&echoLog, "log", false, "echo log entries to stderr")

	rootCmd.AddCommand(newRunCmd(), newDebugCmd(), newScriptCmd(), newDisasmCmd(), newPerformCmd())

	return rootCmd
}

func newRunCmd() *cobra.Command {
	var mf machineFlags
	var frames int
	var ticks int
	var wav string
	var trace bool
	var tape string
	var memvizFile string
	var stats bool
	var realtime bool
	var save string
	var dig bool

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the emulation without a display",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			m, err := mf.newMachine()
			if err != nil {
				return err
			}

			if tape != "" {
				cl := cartridgeloader.NewLoader(tape, "TAPE")
				if _, err := cassette.NewPlayer(m, &cl); err != nil {
					return err
				}
			}

			if wav != "" {
				aw, err := wavwriter.New(wav, m.SampleRate())
				if err != nil {
					return err
				}
				m.TV.AddAudioMixer(aw)
			}

			if trace {
				disassembly.NewTracer(m.CPU, m, out).Attach()
			}

			var vdig *digest.Video
			var adig *digest.Audio
			if dig {
				vdig = digest.NewVideo()
				adig = digest.NewAudio()
				m.TV.AddRenderer(vdig)
				m.TV.AddAudioMixer(adig)
			}

			if stats {
				statsview.Launch(out)
			}

			if memvizFile != "" {
				if err := writeMemviz(memvizFile, m); err != nil {
					return err
				}
			}

			switch {
			case ticks > 0:
				m.Run(ticks)
			case realtime:
				lim := limiter.NewLimiter(performance.FrameRate(m))
				for i := 0; i < frames; i++ {
					lim.Wait()
					m.StepFrame()
				}
				lim.Stop()
			default:
				m.RunForFrameCount(frames, nil)
			}

			if err := m.TV.End(); err != nil {
				return err
			}

			if save != "" {
				if err := snapshot.Save(save, m); err != nil {
					return err
				}
			}

			fmt.Fprintln(out, m)

			if dig {
				fmt.Fprintf(out, "video: %s\n", vdig.Hash())
				fmt.Fprintf(out, "audio: %s\n", adig.Hash())
			}

			return nil
		},
	}

	mf.register(runCmd.Flags())
	runCmd.Flags().IntVar(&frames, "frames", 50, "number of frames to run for")
	runCmd.Flags().IntVar(&ticks, "ticks", 0, "number of master clock ticks to run for (overrides --frames)")
	runCmd.Flags().StringVar(&wav, "wav", "", "record audio to a WAV file")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace every instruction to stdout")
	runCmd.Flags().StringVar(&tape, "tape", "", "play a WAV or MP3 cassette recording")
	runCmd.Flags().StringVar(&memvizFile, "memviz", "", "write a graph of the event scheduler to a file (graphviz format)")
	runCmd.Flags().BoolVar(&stats, "statsview", false, "run the runtime statistics server (requires the statsview build tag)")
	runCmd.Flags().BoolVar(&realtime, "realtime", false, "limit the emulation to the speed of the real machine")
	runCmd.Flags().StringVar(&save, "save", "", "save a snapshot to the file at the end of the run")
	runCmd.Flags().BoolVar(&dig, "digest", false, "print a hash of the video and audio output at the end of the run")

	return runCmd
}

func writeMemviz(filename string, m *hardware.Machine) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer f.Close()
	memviz.Map(f, m.Sched)
	return nil
}

func newDebugCmd() *cobra.Command {
	var mf machineFlags

	debugCmd := &cobra.Command{
		Use:   "debug",
		Short: "Single step the emulation in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mf.newMachine()
			if err != nil {
				return err
			}
			return debugger.NewDebugger(m, cmd.InOrStdin(), cmd.OutOrStdout()).Start()
		},
	}
	mf.register(debugCmd.Flags())

	return debugCmd
}

func newScriptCmd() *cobra.Command {
	var mf machineFlags

	scriptCmd := &cobra.Command{
		Use:   "script [file.lua]",
		Short: "Run a Lua script against the emulation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mf.newMachine()
			if err != nil {
				return err
			}
			scr := script.NewScript(m, cmd.OutOrStdout())
			defer scr.Close()
			return scr.RunFile(args[0])
		},
	}
	mf.register(scriptCmd.Flags())

	return scriptCmd
}

func parseAddress(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "$"), "0x")
	a, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, curated.Errorf("not a valid address (%s)", s)
	}
	return uint16(a), nil
}

func newDisasmCmd() *cobra.Command {
	var mf machineFlags
	var from string
	var count int

	disasmCmd := &cobra.Command{
		Use:   "disasm",
		Short: "Disassemble memory as seen by the CPU",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mf.newMachine()
			if err != nil {
				return err
			}

			var address uint16
			if from == "" {
				// start from the reset vector
				address = uint16(m.Peek(0xfffe))<<8 | uint16(m.Peek(0xffff))
			} else {
				address, err = parseAddress(from)
				if err != nil {
					return err
				}
			}

			return disassembly.Write(cmd.OutOrStdout(), disassembly.Linear(m, address, count))
		},
	}
	mf.register(disasmCmd.Flags())
	disasmCmd.Flags().StringVar(&from, "from", "", "address to start disassembly (hex, defaults to the reset vector)")
	disasmCmd.Flags().IntVar(&count, "count", 32, "number of instructions to disassemble")

	return disasmCmd
}

func newPerformCmd() *cobra.Command {
	var mf machineFlags
	var duration time.Duration
	var profile string

	performCmd := &cobra.Command{
		Use:   "perform",
		Short: "Measure the speed of the emulation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var prof performance.Profile
			for _, p := range strings.Split(profile, ",") {
				switch strings.ToUpper(strings.TrimSpace(p)) {
				case "", "NONE":
				case "CPU":
					prof |= performance.ProfileCPU
				case "MEM":
					prof |= performance.ProfileMem
				default:
					return curated.Errorf("unknown profile (%s)", p)
				}
			}

			m, err := mf.newMachine()
			if err != nil {
				return err
			}
			return performance.Check(cmd.OutOrStdout(), m, duration, prof)
		},
	}
	mf.register(performCmd.Flags())
	performCmd.Flags().DurationVar(&duration, "duration", 5*time.Second, "run duration")
	performCmd.Flags().StringVar(&profile, "profile", "none", "profiles to produce: none, cpu, mem (comma separated)")

	return performCmd
}
