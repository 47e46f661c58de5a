package machine

import (
	"errors"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	ErrPointerOutOfBounds = errors.New(f("data pointer out of bounds"))
	ErrPcOutOfBounds      = errors.New(f("program counter out of bounds"))
	ErrProgramMissing     = errors.New(f("program missing"))
)

// ErrRuntime indicates the machine state at a runtime fault.
type ErrRuntime struct {
	Pc  int
	Dp  int
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc %d dp %d %v", err.Pc, err.Dp, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
