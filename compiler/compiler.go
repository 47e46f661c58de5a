// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package compiler

import (
	"bufio"
	"io"
	"log"

	"github.com/ezrec/bfvm/config"
)

// Compiler is a single pass compiler for the tape language.
type Compiler struct {
	Verbose bool          // If set, logs each emitted instruction.
	Limits  config.Limits // Program size and nesting depth limits.
}

// NewCompiler creates a compiler with the given limits.
func NewCompiler(limits config.Limits) *Compiler {
	return &Compiler{Limits: limits}
}

// scanner reads source bytes and tracks their position.
type scanner struct {
	in   io.ByteReader
	next Position
}

func newScanner(in io.Reader) *scanner {
	br, ok := in.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(in)
	}

	return &scanner{in: br, next: Position{Line: 1, Column: 1}}
}

// read returns the next byte and its position. At end of input, ok is
// false and err is nil.
func (sc *scanner) read() (c byte, pos Position, ok bool, err error) {
	c, err = sc.in.ReadByte()
	if err == io.EOF {
		err = nil
		pos = sc.next
		return
	}
	if err != nil {
		return
	}

	pos = sc.next
	ok = true
	if c == '\n' {
		sc.next.Line++
		sc.next.Column = 1
	} else {
		sc.next.Column++
	}

	return
}

// Compile reads source text until end of input and returns the compiled
// program. The returned program always ends with OP_HALT and has every
// loop instruction cross-linked to its matching bracket.
func (comp *Compiler) Compile(in io.Reader) (prog *Program, err error) {
	err = comp.Limits.Validate()
	if err != nil {
		return
	}

	limit := comp.Limits.ProgramSize - 1

	stack := NewStack(comp.Limits.StackSize)
	code := make([]Instruction, 0, comp.Limits.ProgramSize)
	lines := make([]Position, 0, comp.Limits.ProgramSize)
	sc := newScanner(in)

	var end Position
	for len(code) < limit {
		c, pos, ok, rerr := sc.read()
		if rerr != nil {
			err = rerr
			return
		}
		if !ok {
			end = pos
			break
		}

		kind, ok := KindOf(c)
		if !ok {
			continue
		}

		ip := uint32(len(code))
		ins := Instruction{Kind: kind}

		switch kind {
		case OP_LOOP_START:
			if stack.Push(ip) != nil {
				err = ErrSyntax{Position: pos, Err: ErrStackOverflow}
				return
			}
		case OP_LOOP_END:
			start, perr := stack.Pop()
			if perr != nil {
				err = ErrSyntax{Position: pos, Err: ErrUnmatchedCloseBracket}
				return
			}
			ins.Operand = start
			code[start].Operand = ip
		}

		if comp.Verbose {
			log.Printf("compiler: %04d %v: %v", ip, pos, ins)
		}

		code = append(code, ins)
		lines = append(lines, pos)
	}

	if !stack.Empty() {
		open, _ := stack.Peek()
		err = ErrSyntax{Position: lines[open], Err: ErrUnmatchedOpenBracket}
		return
	}

	if len(code) == limit {
		// Only instruction symbols count towards the limit.
		for {
			c, pos, ok, rerr := sc.read()
			if rerr != nil {
				err = rerr
				return
			}
			if !ok {
				end = pos
				break
			}
			if _, is_op := KindOf(c); is_op {
				err = ErrSyntax{Position: pos, Err: ErrProgramTooLarge}
				return
			}
		}
	}

	code = append(code, Instruction{Kind: OP_HALT})
	lines = append(lines, end)

	prog = &Program{
		Instructions: code,
		Positions:    lines,
	}

	return
}
