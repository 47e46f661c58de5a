// Package config holds the capacity limits shared by the compiler and the
// tape machine, and loads overrides from Starlark configuration files.
package config

import (
	"fmt"
	"iter"
	"maps"
)

// Default capacities.
const (
	PROGRAM_SIZE = 4096  // Instruction slots, including the Halt sentinel.
	TAPE_SIZE    = 65535 // Cells on the tape.
	STACK_SIZE   = 512   // Maximum loop nesting depth.
	START_OFFSET = 0     // Initial data pointer.
)

// EOFPolicy selects what an Input instruction stores once the input is
// exhausted.
type EOFPolicy int

//go:generate go tool stringer -linecomment -type=EOFPolicy
const (
	EOFZero      = EOFPolicy(0) // zero
	EOFUnchanged = EOFPolicy(1) // unchanged
	EOFMinusOne  = EOFPolicy(2) // minus-one
)

// ParseEOFPolicy returns the policy named by its String() form.
func ParseEOFPolicy(name string) (policy EOFPolicy, err error) {
	for _, policy = range []EOFPolicy{EOFZero, EOFUnchanged, EOFMinusOne} {
		if policy.String() == name {
			return
		}
	}

	err = ErrEOFPolicy(name)
	return
}

// Limits are the fixed capacities of one compile and run.
type Limits struct {
	ProgramSize int       // Instruction slots, including Halt.
	TapeSize    int       // Cells on the tape.
	StackSize   int       // Bracket stack depth.
	StartOffset int       // Initial data pointer.
	EOF         EOFPolicy // Input behaviour at end of stream.
}

// Default returns the stock limits.
func Default() Limits {
	return Limits{
		ProgramSize: PROGRAM_SIZE,
		TapeSize:    TAPE_SIZE,
		StackSize:   STACK_SIZE,
		StartOffset: START_OFFSET,
		EOF:         EOFZero,
	}
}

// Validate checks that the limits describe a usable machine.
func (lim Limits) Validate() (err error) {
	switch {
	case lim.ProgramSize < 1:
		err = ErrLimit{Name: "PROGRAM_SIZE", Value: lim.ProgramSize}
	case lim.TapeSize < 1:
		err = ErrLimit{Name: "TAPE_SIZE", Value: lim.TapeSize}
	case lim.StackSize < 0:
		err = ErrLimit{Name: "STACK_SIZE", Value: lim.StackSize}
	case lim.StartOffset < 0 || lim.StartOffset >= lim.TapeSize:
		err = ErrLimit{Name: "START_OFFSET", Value: lim.StartOffset}
	case lim.EOF < EOFZero || lim.EOF > EOFMinusOne:
		err = ErrLimit{Name: "EOF", Value: int(lim.EOF)}
	}

	return
}

// Defines returns an iterator over the limits as named values.
func (lim Limits) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"PROGRAM_SIZE": fmt.Sprintf("%v", lim.ProgramSize),
		"TAPE_SIZE":    fmt.Sprintf("%v", lim.TapeSize),
		"STACK_SIZE":   fmt.Sprintf("%v", lim.StackSize),
		"START_OFFSET": fmt.Sprintf("%v", lim.StartOffset),
		"EOF":          lim.EOF.String(),
	})
}
