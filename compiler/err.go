package compiler

import (
	"errors"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	// Stack errors
	ErrStackEmpty = errors.New(f("stack empty"))
	ErrStackFull  = errors.New(f("stack full"))

	// Compile errors
	ErrStackOverflow         = errors.New(f("loop nesting too deep"))
	ErrUnmatchedCloseBracket = errors.New(f("found ] without matching ["))
	ErrUnmatchedOpenBracket  = errors.New(f("found [ without matching ]"))
	ErrProgramTooLarge       = errors.New(f("program too large"))

	// Program validation errors
	ErrHaltMissing = errors.New(f("halt missing"))
	ErrHaltEarly   = errors.New(f("halt before end of program"))
	ErrJumpTarget  = errors.New(f("jump target invalid"))
	ErrKindInvalid = errors.New(f("instruction kind invalid"))
)

// ErrSyntax locates a compile error in the source text.
type ErrSyntax struct {
	Position
	Err error
}

func (err ErrSyntax) Error() string {
	return f("%d:%d %v", err.Line, err.Column, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrProgramInvalid locates a malformed instruction in a Program.
type ErrProgramInvalid struct {
	Pc  int
	Err error
}

func (err ErrProgramInvalid) Error() string {
	return f("pc %d %v", err.Pc, err.Err)
}

func (err ErrProgramInvalid) Unwrap() error {
	return err.Err
}
