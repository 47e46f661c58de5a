// Package io provides the byte port the tape machine reads and writes.
package io

import (
	"errors"
	"io"

	"github.com/ezrec/bfvm/config"
)

// Port provides byte-at-a-time I/O for the tape machine. It wraps an
// io.Reader for input and an io.Writer for output. Input is read one byte
// per request, so interactive input is never consumed ahead of the
// program.
type Port struct {
	Input  io.Reader
	Output io.Writer
	EOF    config.EOFPolicy // Value stored once the input is exhausted.

	exhausted bool
}

// Rewind clears the end of input state. The underlying reader is not
// rewound.
func (pt *Port) Rewind() {
	pt.exhausted = false
}

// Exhausted is true once the input has reached end of stream.
func (pt *Port) Exhausted() bool {
	return pt.exhausted
}

// Receive returns the next input byte. At end of input, the EOF policy is
// applied to current, the value of the cell being read into.
func (pt *Port) Receive(current byte) (value byte, err error) {
	if pt.Input != nil && !pt.exhausted {
		var one [1]byte
		for {
			var n int
			n, err = pt.Input.Read(one[:])
			if n == 1 {
				value = one[0]
				err = nil
				return
			}
			if errors.Is(err, io.EOF) {
				err = nil
				break
			}
			if err != nil {
				err = &ErrPort{Op: "read", Err: err}
				return
			}
		}
	}

	pt.exhausted = true

	switch pt.EOF {
	case config.EOFUnchanged:
		value = current
	case config.EOFMinusOne:
		value = 0xff
	default:
		value = 0
	}

	return
}

// Send writes one byte to the output. A nil Output discards the byte.
func (pt *Port) Send(value byte) (err error) {
	if pt.Output == nil {
		return
	}

	_, err = pt.Output.Write([]byte{value})
	if err != nil {
		err = &ErrPort{Op: "write", Err: err}
	}

	return
}
