package io

import (
	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

// ErrPort is an I/O failure of the underlying reader or writer.
type ErrPort struct {
	Op  string
	Err error
}

func (err *ErrPort) Error() string {
	return f("port %v: %v", err.Op, err.Err)
}

func (err *ErrPort) Unwrap() error {
	return err.Err
}
