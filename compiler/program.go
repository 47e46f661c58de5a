package compiler

import (
	"fmt"
	"iter"
	"strings"
)

// Position is a 1-based line and column in the source text.
type Position struct {
	Line   int
	Column int
}

func (pos Position) String() string {
	return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
}

// Program is a compiled instruction sequence, terminated by OP_HALT.
// The index of an instruction is its program counter value.
type Program struct {
	Instructions []Instruction
	Positions    []Position // Source position of each instruction.
}

// Debug describes the instruction at a program counter.
type Debug struct {
	*Instruction
	Position
}

// Debug returns the instruction and source position at pc. The
// Instruction is nil if pc is outside the program.
func (prog *Program) Debug(pc int) (dbg Debug) {
	if pc < 0 || pc >= len(prog.Instructions) {
		return
	}

	dbg.Instruction = &prog.Instructions[pc]
	if pc < len(prog.Positions) {
		dbg.Position = prog.Positions[pc]
	}

	return
}

// Len is the number of instructions, including the final OP_HALT.
func (prog *Program) Len() int {
	return len(prog.Instructions)
}

// Codes iterates over the program counter and instruction pairs.
func (prog *Program) Codes() iter.Seq2[int, Instruction] {
	return func(yield func(pc int, ins Instruction) bool) {
		for pc, ins := range prog.Instructions {
			if !yield(pc, ins) {
				return
			}
		}
	}
}

// String returns the program as normalized source, comments removed.
func (prog *Program) String() string {
	var sb strings.Builder
	for _, ins := range prog.Codes() {
		if ins.Kind == OP_HALT {
			continue
		}
		sb.WriteString(ins.Kind.String())
	}

	return sb.String()
}

// Validate checks that the program is terminated by its only OP_HALT, and
// that every loop instruction is cross-linked with a bracket of the
// opposite kind.
func (prog *Program) Validate() (err error) {
	code := prog.Instructions
	if len(code) == 0 || code[len(code)-1].Kind != OP_HALT {
		err = ErrProgramInvalid{Pc: len(code) - 1, Err: ErrHaltMissing}
		return
	}

	for pc, ins := range code {
		switch ins.Kind {
		case OP_HALT:
			if pc != len(code)-1 {
				err = ErrProgramInvalid{Pc: pc, Err: ErrHaltEarly}
				return
			}
		case OP_LOOP_START, OP_LOOP_END:
			target := int(ins.Operand)
			want := OP_LOOP_END
			if ins.Kind == OP_LOOP_END {
				want = OP_LOOP_START
			}
			if target >= len(code) || code[target].Kind != want || int(code[target].Operand) != pc {
				err = ErrProgramInvalid{Pc: pc, Err: ErrJumpTarget}
				return
			}
		case OP_MOVE_RIGHT, OP_MOVE_LEFT, OP_INC_CELL, OP_DEC_CELL, OP_OUTPUT, OP_INPUT:
		default:
			err = ErrProgramInvalid{Pc: pc, Err: ErrKindInvalid}
			return
		}
	}

	return
}
