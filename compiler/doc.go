// Package compiler translates tape language source text into a Program.
//
// The language has eight symbols: '>' and '<' move the data pointer, '+'
// and '-' change the current cell, '.' and ',' write and read one byte,
// and '[' ... ']' loop while the current cell is non-zero. Any other
// character is a comment.
//
// Compilation is a single pass. Loop brackets are matched with a bounded
// Stack, and each '[' and ']' pair is cross-linked as soon as the ']' is
// seen, so the Program needs no fix-up pass. A Program always ends with a
// single OP_HALT instruction.
package compiler
