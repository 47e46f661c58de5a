package machine

import (
	goio "io"

	"github.com/ezrec/bfvm/compiler"
	"github.com/ezrec/bfvm/config"
	"github.com/ezrec/bfvm/io"
)

// Execute runs prog to completion on a fresh tape. All machine state is
// local to the call, so independent programs may run concurrently.
func Execute(prog *compiler.Program, limits config.Limits, input goio.Reader, output goio.Writer) (err error) {
	mach := NewMachine(limits)
	mach.Program = prog
	mach.Port = &io.Port{Input: input, Output: output}

	err = mach.Run()
	return
}
