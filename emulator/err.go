package emulator

import (
	"errors"

	"github.com/ezrec/bfvm/compiler"
	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	ErrNotLoaded = errors.New(f("no program loaded"))
)

// Stage is the pipeline stage that failed.
type Stage int

//go:generate go tool stringer -linecomment -type=Stage
const (
	STAGE_COMPILE = Stage(1) // compile
	STAGE_RUNTIME = Stage(2) // runtime
)

// Exit status codes.
const (
	STATUS_OK      = 0 // Program halted normally.
	STATUS_COMPILE = 1 // Compile failed, nothing was executed.
	STATUS_RUNTIME = 2 // Runtime fault.
	STATUS_OTHER   = 3 // Any other failure.
)

// ErrStage indicates the stage and source location of an error.
type ErrStage struct {
	Stage    Stage
	Position compiler.Position
	Err      error
}

func (err *ErrStage) Error() string {
	if err.Position.Line == 0 {
		return f("%v: %v", err.Stage, err.Err)
	}
	return f("%v: line %d column %d %v", err.Stage, err.Position.Line, err.Position.Column, err.Err)
}

func (err *ErrStage) Unwrap() error {
	return err.Err
}

// Status maps an error to a process exit status.
func Status(err error) int {
	if err == nil {
		return STATUS_OK
	}

	var es *ErrStage
	if errors.As(err, &es) {
		switch es.Stage {
		case STAGE_COMPILE:
			return STATUS_COMPILE
		case STAGE_RUNTIME:
			return STATUS_RUNTIME
		}
	}

	return STATUS_OTHER
}
