package compiler

import (
	"fmt"
)

// Kind is the operation performed by an Instruction.
type Kind uint8

//go:generate go tool stringer -linecomment -type=Kind
const (
	OP_HALT       = Kind(0) // halt
	OP_MOVE_RIGHT = Kind(1) // >
	OP_MOVE_LEFT  = Kind(2) // <
	OP_INC_CELL   = Kind(3) // +
	OP_DEC_CELL   = Kind(4) // -
	OP_OUTPUT     = Kind(5) // .
	OP_INPUT      = Kind(6) // ,
	OP_LOOP_START = Kind(7) // [
	OP_LOOP_END   = Kind(8) // ]
)

// symbolMap maps source symbols to instruction kinds.
var symbolMap = map[byte]Kind{
	'>': OP_MOVE_RIGHT,
	'<': OP_MOVE_LEFT,
	'+': OP_INC_CELL,
	'-': OP_DEC_CELL,
	'.': OP_OUTPUT,
	',': OP_INPUT,
	'[': OP_LOOP_START,
	']': OP_LOOP_END,
}

// KindOf returns the kind for a source symbol, if it is one.
func KindOf(symbol byte) (kind Kind, ok bool) {
	kind, ok = symbolMap[symbol]
	return
}

// IsJump is true for the two loop kinds, the only ones with an operand.
func (kind Kind) IsJump() bool {
	return kind == OP_LOOP_START || kind == OP_LOOP_END
}

// Instruction is a single compiled operation.
type Instruction struct {
	Kind    Kind   // Operation.
	Operand uint32 // Index of the matching bracket, for loop kinds only.
}

func (ins Instruction) String() string {
	if ins.Kind.IsJump() {
		return fmt.Sprintf("%v %d", ins.Kind, ins.Operand)
	}

	return ins.Kind.String()
}
