// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package machine runs compiled programs on a fixed size tape of 8-bit
// cells.
package machine

import (
	"fmt"
	"log"

	"github.com/ezrec/bfvm/compiler"
	"github.com/ezrec/bfvm/config"
	"github.com/ezrec/bfvm/io"
)

// Machine is the tape machine execution context.
type Machine struct {
	Verbose bool              // Set to enable verbose logging.
	Limits  config.Limits     // Tape size and initial data pointer.
	Program *compiler.Program // Program to run. Never modified.
	Port    *io.Port          // Input and output port.

	Pc    int     // Program counter.
	Dp    int     // Data pointer.
	Tape  []uint8 // Tape cells.
	Ticks int     // Instructions executed since reset.
}

// NewMachine creates a machine with the given limits and an empty port.
func NewMachine(limits config.Limits) (mach *Machine) {
	mach = &Machine{
		Limits: limits,
		Port:   &io.Port{EOF: limits.EOF},
	}

	return
}

// String returns the machine state.
func (mach *Machine) String() string {
	var cell any = "--"
	if mach.Dp >= 0 && mach.Dp < len(mach.Tape) {
		cell = fmt.Sprintf("%02x", mach.Tape[mach.Dp])
	}

	var ins any = "--"
	if mach.Program != nil {
		if dbg := mach.Program.Debug(mach.Pc); dbg.Instruction != nil {
			ins = dbg.Instruction
		}
	}

	return fmt.Sprintf("pc=%04d ins=%v dp=%05d cell=%v ticks=%d", mach.Pc, ins, mach.Dp, cell, mach.Ticks)
}

// Reset the machine state.
// - Checks the limits and the program.
// - Allocates a zeroed tape.
// - Sets the program counter to 0 and the data pointer to the start offset.
// - Clears the port end of input state.
func (mach *Machine) Reset() (err error) {
	if mach.Verbose {
		log.Printf("machine: reset")
	}

	err = mach.Limits.Validate()
	if err != nil {
		return
	}

	if mach.Program == nil {
		err = ErrProgramMissing
		return
	}

	err = mach.Program.Validate()
	if err != nil {
		return
	}

	if len(mach.Tape) == mach.Limits.TapeSize {
		clear(mach.Tape)
	} else {
		mach.Tape = make([]uint8, mach.Limits.TapeSize)
	}

	mach.Pc = 0
	mach.Dp = mach.Limits.StartOffset
	mach.Ticks = 0

	if mach.Port == nil {
		mach.Port = &io.Port{}
	}
	mach.Port.EOF = mach.Limits.EOF
	mach.Port.Rewind()

	return
}

// move adjusts the data pointer, refusing to leave the tape.
func (mach *Machine) move(delta int) (err error) {
	dp := mach.Dp + delta
	if dp < 0 || dp >= len(mach.Tape) {
		err = ErrPointerOutOfBounds
		return
	}

	mach.Dp = dp
	return
}

// Tick executes a single instruction. done is set once OP_HALT is
// reached. After an error the machine state is left at the faulting
// instruction.
func (mach *Machine) Tick() (done bool, err error) {
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: mach.Pc, Dp: mach.Dp, Err: err}
		}
	}()

	if mach.Dp < 0 || mach.Dp >= len(mach.Tape) {
		err = ErrPointerOutOfBounds
		return
	}

	if mach.Program == nil {
		err = ErrProgramMissing
		return
	}

	if mach.Pc < 0 || mach.Pc >= len(mach.Program.Instructions) {
		err = ErrPcOutOfBounds
		return
	}

	ins := mach.Program.Instructions[mach.Pc]
	if mach.Verbose {
		log.Printf("machine: %v", mach)
	}

	cell := &mach.Tape[mach.Dp]

	switch ins.Kind {
	case compiler.OP_HALT:
		done = true
		return
	case compiler.OP_MOVE_RIGHT:
		err = mach.move(1)
	case compiler.OP_MOVE_LEFT:
		err = mach.move(-1)
	case compiler.OP_INC_CELL:
		*cell++
	case compiler.OP_DEC_CELL:
		*cell--
	case compiler.OP_OUTPUT:
		err = mach.Port.Send(*cell)
	case compiler.OP_INPUT:
		var value uint8
		value, err = mach.Port.Receive(*cell)
		if err == nil {
			*cell = value
		}
	case compiler.OP_LOOP_START:
		if *cell == 0 {
			mach.Pc = int(ins.Operand)
		}
	case compiler.OP_LOOP_END:
		if *cell != 0 {
			mach.Pc = int(ins.Operand)
		}
	default:
		err = compiler.ErrKindInvalid
	}

	if err != nil {
		return
	}

	mach.Pc++
	mach.Ticks++

	return
}

// Run resets the machine and executes until OP_HALT or a fault.
func (mach *Machine) Run() (err error) {
	err = mach.Reset()
	if err != nil {
		return
	}

	for done, err := mach.Tick(); !done; done, err = mach.Tick() {
		if err != nil {
			return err
		}
	}

	if mach.Verbose {
		log.Printf("machine: halt after %d ticks", mach.Ticks)
	}

	return
}
