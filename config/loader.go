package config

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Load evaluates a Starlark configuration file. The current limits are
// predeclared under their Defines() names, and again with a DEFAULT_
// prefix; any of the unprefixed names assigned at file scope replaces the
// corresponding limit. Assigning a name makes it a file global for the
// whole file, so a limit derived from its own current value must read the
// DEFAULT_ name, as in TAPE_SIZE = DEFAULT_TAPE_SIZE * 2. src may be
// anything accepted by starlark.ExecFileOptions (string, []byte,
// io.Reader, or nil to read the named file).
func (lim Limits) Load(filename string, src any) (out Limits, err error) {
	thread := starlark.Thread{Name: "config"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"EOF_ZERO":      starlark.String(EOFZero.String()),
		"EOF_UNCHANGED": starlark.String(EOFUnchanged.String()),
		"EOF_MINUS_ONE": starlark.String(EOFMinusOne.String()),
	}
	for key, value := range lim.Defines() {
		var val starlark.Value = starlark.String(value)
		if key != "EOF" {
			val = starlark.MakeInt(lim.intOf(key))
		}
		pred[key] = val
		pred["DEFAULT_"+key] = val
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, filename, src, pred)
	if err != nil {
		return
	}

	out = lim
	ints := map[string]*int{
		"PROGRAM_SIZE": &out.ProgramSize,
		"TAPE_SIZE":    &out.TapeSize,
		"STACK_SIZE":   &out.StackSize,
		"START_OFFSET": &out.StartOffset,
	}
	for key, ptr := range ints {
		value, ok := dict[key]
		if !ok {
			continue
		}
		*ptr, err = starlark.AsInt32(value)
		if err != nil {
			err = ErrConfigValue{Name: key, Err: ErrConfigType}
			return
		}
	}

	if value, ok := dict["EOF"]; ok {
		name, ok := starlark.AsString(value)
		if !ok {
			err = ErrConfigValue{Name: "EOF", Err: ErrConfigType}
			return
		}
		out.EOF, err = ParseEOFPolicy(name)
		if err != nil {
			err = ErrConfigValue{Name: "EOF", Err: err}
			return
		}
	}

	err = out.Validate()
	return
}

func (lim Limits) intOf(key string) int {
	switch key {
	case "PROGRAM_SIZE":
		return lim.ProgramSize
	case "TAPE_SIZE":
		return lim.TapeSize
	case "STACK_SIZE":
		return lim.StackSize
	case "START_OFFSET":
		return lim.StartOffset
	}

	return 0
}
