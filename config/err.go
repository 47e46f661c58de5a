package config

import (
	"errors"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	ErrConfigType = errors.New(f("config value has wrong type"))
)

// ErrEOFPolicy is an unknown end-of-input policy name.
type ErrEOFPolicy string

func (err ErrEOFPolicy) Error() string {
	return f("eof policy '%v' unknown", string(err))
}

// ErrLimit is a capacity outside its permitted range.
type ErrLimit struct {
	Name  string
	Value int
}

func (err ErrLimit) Error() string {
	return f("limit %v=%d out of range", err.Name, err.Value)
}

// ErrConfigValue locates a bad value in a configuration file.
type ErrConfigValue struct {
	Name string
	Err  error
}

func (err ErrConfigValue) Error() string {
	return f("config %v: %v", err.Name, err.Err)
}

func (err ErrConfigValue) Unwrap() error {
	return err.Err
}
