package compiler

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/bfvm/config"
)

func compileString(t *testing.T, source string, limits config.Limits) (*Program, error) {
	comp := NewCompiler(limits)
	return comp.Compile(strings.NewReader(source))
}

func TestCompile(t *testing.T) {
	assert := assert.New(t)

	prog, err := compileString(t, "+++.", config.Default())
	assert.NoError(err)
	assert.Equal([]Instruction{
		{Kind: OP_INC_CELL},
		{Kind: OP_INC_CELL},
		{Kind: OP_INC_CELL},
		{Kind: OP_OUTPUT},
		{Kind: OP_HALT},
	}, prog.Instructions)
	assert.Equal(5, len(prog.Positions))
	assert.NoError(prog.Validate())
}

func TestCompile_Empty(t *testing.T) {
	assert := assert.New(t)

	prog, err := compileString(t, "", config.Default())
	assert.NoError(err)
	assert.Equal([]Instruction{{Kind: OP_HALT}}, prog.Instructions)
	assert.Equal([]Position{{Line: 1, Column: 1}}, prog.Positions)
}

func TestCompile_Loop(t *testing.T) {
	assert := assert.New(t)

	prog, err := compileString(t, "+[-]", config.Default())
	assert.NoError(err)
	assert.Equal([]Instruction{
		{Kind: OP_INC_CELL},
		{Kind: OP_LOOP_START, Operand: 3},
		{Kind: OP_DEC_CELL},
		{Kind: OP_LOOP_END, Operand: 1},
		{Kind: OP_HALT},
	}, prog.Instructions)
}

func TestCompile_Nested(t *testing.T) {
	assert := assert.New(t)

	prog, err := compileString(t, "[[][[]]]", config.Default())
	assert.NoError(err)

	expect := []uint32{7, 2, 1, 6, 5, 4, 3, 0}
	for pc, operand := range expect {
		assert.Equal(operand, prog.Instructions[pc].Operand, "pc %d", pc)
	}
	assert.NoError(prog.Validate())
}

func TestCompile_Symbols(t *testing.T) {
	assert := assert.New(t)

	prog, err := compileString(t, "><+-.,[]", config.Default())
	assert.NoError(err)

	kinds := []Kind{}
	for _, ins := range prog.Codes() {
		kinds = append(kinds, ins.Kind)
	}
	assert.Equal([]Kind{
		OP_MOVE_RIGHT, OP_MOVE_LEFT, OP_INC_CELL, OP_DEC_CELL,
		OP_OUTPUT, OP_INPUT, OP_LOOP_START, OP_LOOP_END, OP_HALT,
	}, kinds)
}

func TestCompile_Comments(t *testing.T) {
	assert := assert.New(t)

	plain, err := compileString(t, "+[->+<]>.", config.Default())
	assert.NoError(err)

	commented, err := compileString(t, "add one: +\n loop [ - move > + back < ]\nprint > .\n", config.Default())
	assert.NoError(err)

	assert.Equal(plain.Instructions, commented.Instructions)
	assert.Equal(plain.String(), commented.String())
}

func TestCompile_Positions(t *testing.T) {
	assert := assert.New(t)

	prog, err := compileString(t, "a+\n  [\n]x", config.Default())
	assert.NoError(err)
	assert.Equal([]Position{
		{Line: 1, Column: 2},
		{Line: 2, Column: 3},
		{Line: 3, Column: 1},
		{Line: 3, Column: 3},
	}, prog.Positions)
}

func TestCompile_Deterministic(t *testing.T) {
	assert := assert.New(t)

	source := "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++."
	first, err := compileString(t, source, config.Default())
	assert.NoError(err)
	second, err := compileString(t, source, config.Default())
	assert.NoError(err)

	assert.Equal(first, second)
	assert.Equal(source, first.String())
}

func TestCompile_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		source string
		err    error
		pos    Position
	}){
		{"close", "]", ErrUnmatchedCloseBracket, Position{1, 1}},
		{"close_late", "+[-]]", ErrUnmatchedCloseBracket, Position{1, 5}},
		{"open", "[", ErrUnmatchedOpenBracket, Position{1, 1}},
		{"open_inner", "[\n+[-]\n[", ErrUnmatchedOpenBracket, Position{3, 1}},
		{"open_outer", "[[-]", ErrUnmatchedOpenBracket, Position{1, 1}},
	}

	for _, entry := range table {
		prog, err := compileString(t, entry.source, config.Default())
		assert.Nil(prog, entry.name)
		assert.ErrorIs(err, entry.err, entry.name)

		var syn ErrSyntax
		if assert.True(errors.As(err, &syn), entry.name) {
			assert.Equal(entry.pos, syn.Position, entry.name)
		}
	}
}

func TestCompile_StackOverflow(t *testing.T) {
	assert := assert.New(t)

	limits := config.Default()
	limits.StackSize = 4

	_, err := compileString(t, "[[[[]]]]", limits)
	assert.NoError(err)

	_, err = compileString(t, "[[[[[]]]]]", limits)
	assert.ErrorIs(err, ErrStackOverflow)

	limits.StackSize = 0
	_, err = compileString(t, "+.", limits)
	assert.NoError(err)
	_, err = compileString(t, "[]", limits)
	assert.ErrorIs(err, ErrStackOverflow)
}

func TestCompile_ProgramTooLarge(t *testing.T) {
	assert := assert.New(t)

	limits := config.Default()
	limits.ProgramSize = 5

	prog, err := compileString(t, "++++", limits)
	assert.NoError(err)
	assert.Equal(5, prog.Len())

	_, err = compileString(t, "+++++", limits)
	assert.ErrorIs(err, ErrProgramTooLarge)

	var syn ErrSyntax
	assert.True(errors.As(err, &syn))
	assert.Equal(Position{1, 5}, syn.Position)

	prog, err = compileString(t, "++++ done\n", limits)
	assert.NoError(err)
	assert.Equal(5, prog.Len())
	assert.Equal(Position{2, 1}, prog.Positions[4])

	// Unclosed loops are reported before the size.
	_, err = compileString(t, "+[+++]", limits)
	assert.ErrorIs(err, ErrUnmatchedOpenBracket)

	limits.ProgramSize = 1
	prog, err = compileString(t, "nothing here", limits)
	assert.NoError(err)
	assert.Equal(1, prog.Len())
	_, err = compileString(t, "+", limits)
	assert.ErrorIs(err, ErrProgramTooLarge)
}

func TestCompile_BadLimits(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		limit func(*config.Limits)
		bad   string
	}){
		{"program", func(l *config.Limits) { l.ProgramSize = 0 }, "PROGRAM_SIZE"},
		{"stack", func(l *config.Limits) { l.StackSize = -1 }, "STACK_SIZE"},
	}

	for _, entry := range table {
		limits := config.Default()
		entry.limit(&limits)

		prog, err := compileString(t, "+[-]", limits)
		assert.Nil(prog, entry.name)

		var el config.ErrLimit
		if assert.True(errors.As(err, &el), entry.name) {
			assert.Equal(entry.bad, el.Name, entry.name)
		}
	}
}

func TestCompile_ReadError(t *testing.T) {
	assert := assert.New(t)

	comp := NewCompiler(config.Default())
	prog, err := comp.Compile(iotest.TimeoutReader(strings.NewReader("+[-]")))
	assert.Nil(prog)
	assert.ErrorIs(err, iotest.ErrTimeout)

	_, err = comp.Compile(iotest.ErrReader(iotest.ErrTimeout))
	assert.ErrorIs(err, iotest.ErrTimeout)

	prog, err = comp.Compile(iotest.OneByteReader(strings.NewReader("+[-]")))
	assert.NoError(err)
	assert.Equal(5, prog.Len())
}
