// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/bfvm/compiler"
	"github.com/ezrec/bfvm/config"
	"github.com/ezrec/bfvm/internal"
	"github.com/ezrec/bfvm/machine"
)

var _emulator_defines = map[string]string{
	"CELL_BITS": "8",
}

// Emulator state. Compiler + tape machine.
type Emulator struct {
	Verbose          bool              // If set, enables verbose logging.
	*machine.Machine                   // Reference to the tape machine.
	Program          *compiler.Program // Reference to the currently loaded program.
}

// NewEmulator creates a new emulator.
func NewEmulator(limits config.Limits) (emu *Emulator) {
	emu = &Emulator{
		Machine: machine.NewMachine(limits),
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.Seq2Concat(maps.All(_emulator_defines),
		emu.Machine.Limits.Defines(),
	)
}

// Load compiles source text and resets the machine, so the program is
// ready to Tick. On failure the previous program is unloaded, so a later
// Run cannot execute it.
func (emu *Emulator) Load(in io.Reader) (err error) {
	emu.Program = nil
	emu.Machine.Program = nil

	comp := compiler.NewCompiler(emu.Machine.Limits)
	comp.Verbose = emu.Verbose

	prog, err := comp.Compile(in)
	if err != nil {
		err = &ErrStage{Stage: STAGE_COMPILE, Err: err}
		return
	}

	emu.Program = prog
	emu.Machine.Program = prog

	if emu.Verbose {
		log.Printf("emulator: loaded %d instructions", prog.Len())
	}

	err = emu.Reset()
	return
}

// Reset the machine for a run of the loaded program.
func (emu *Emulator) Reset() (err error) {
	if emu.Program == nil {
		err = &ErrStage{Stage: STAGE_COMPILE, Err: ErrNotLoaded}
		return
	}

	emu.Machine.Verbose = emu.Verbose
	err = emu.Machine.Reset()
	if err != nil {
		err = &ErrStage{Stage: STAGE_RUNTIME, Err: err}
	}

	return
}

// LineNo returns the current line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	return emu.Where().Line
}

// Where returns the source position of the executing instruction.
func (emu *Emulator) Where() (pos compiler.Position) {
	if emu.Program == nil {
		return
	}

	return emu.Program.Debug(emu.Machine.Pc).Position
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Program == nil {
		err = &ErrStage{Stage: STAGE_COMPILE, Err: ErrNotLoaded}
		return
	}

	emu.Machine.Verbose = emu.Verbose

	pos := emu.Where()
	done, err = emu.Machine.Tick()
	if err != nil {
		err = &ErrStage{Stage: STAGE_RUNTIME, Position: pos, Err: err}
	}

	return
}

// Run resets the machine and executes the loaded program to completion.
func (emu *Emulator) Run() (err error) {
	err = emu.Reset()
	if err != nil {
		return
	}

	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	if emu.Verbose {
		log.Printf("emulator: halt after %d ticks", emu.Ticks)
	}

	return
}
