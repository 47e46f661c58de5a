// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/ezrec/bfvm/config"
	"github.com/ezrec/bfvm/emulator"
	"github.com/ezrec/bfvm/internal"
	"github.com/ezrec/bfvm/translate"
)

func main() {
	atexit.Exit(run(os.Args[0], os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status.
func run(name string, args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) (status int) {
	logger := log.New(stderr, "", log.LstdFlags)

	var compile string
	var source string
	var input string
	var output string
	var conf string
	var lang string
	var verbose bool

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&compile, "c", "", "source file to compile and run, - for stdin")
	flags.StringVar(&source, "e", "", "source text to compile and run")
	flags.StringVar(&input, "i", "-", "program input")
	flags.StringVar(&output, "o", "-", "program output")
	flags.StringVar(&conf, "config", "", "Starlark file overriding the limits")
	flags.StringVar(&lang, "lang", "", "message language, default from the environment")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")

	err := flags.Parse(args)
	if err != nil {
		return emulator.STATUS_OTHER
	}

	if flags.NArg() != 0 {
		logger.Printf("%v: Unknown arguments: %v", name, flags.Args())
		return emulator.STATUS_OTHER
	}

	if len(lang) != 0 {
		translate.Use(lang)
	}

	if (len(compile) == 0) == (len(source) == 0) {
		logger.Printf("%v: exactly one of -c or -e is required", name)
		return emulator.STATUS_OTHER
	}

	var files []*os.File
	defer func() {
		for _, file := range files {
			file.Close()
		}
	}()

	open := func(path string) (inf io.Reader, ok bool) {
		if path == "-" {
			return stdin, true
		}

		file, err := os.Open(path)
		if err != nil {
			logger.Printf("%v: %v", path, err)
			return
		}
		files = append(files, file)

		return file, true
	}

	limits := config.Default()
	if len(conf) != 0 {
		limits, err = limits.Load(conf, nil)
		if err != nil {
			logger.Printf("%v: %v", conf, err)
			return emulator.STATUS_OTHER
		}
	}

	emu := emulator.NewEmulator(limits)
	emu.Verbose = verbose

	if verbose {
		for key, value := range internal.Seq2Sorted(emu.Defines()) {
			logger.Printf("bfvm: %v=%v", key, value)
		}
	}

	var src io.Reader
	if len(source) != 0 {
		src = strings.NewReader(source)
	} else {
		var ok bool
		src, ok = open(compile)
		if !ok {
			return emulator.STATUS_OTHER
		}
	}

	err = emu.Load(src)
	if err != nil {
		logger.Printf("%v", err)
		return emulator.Status(err)
	}

	inf, ok := open(input)
	if !ok {
		return emulator.STATUS_OTHER
	}
	emu.Port.Input = inf

	if output == "-" {
		emu.Port.Output = stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			logger.Printf("%v: %v", output, err)
			return emulator.STATUS_OTHER
		}
		files = append(files, ouf)
		emu.Port.Output = ouf
	}

	err = emu.Run()
	if err != nil {
		logger.Printf("%v", err)
	}

	return emulator.Status(err)
}
