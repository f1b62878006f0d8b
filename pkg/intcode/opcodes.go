// Package intcode implements the Intcode computer: a fetch-decode-execute
// loop over a mutable tape of integers that holds both code and data.
package intcode

import "fmt"

// Instruction encoding:
//
//   [op][a][b][out]   op 1 or 2, operands are addresses
//   [99]              halt, no operands
//
// Every non-halt instruction is Width cells wide. Add and mul wrap on int
// overflow, the same as Go's + and *.

// Opcode is the tag found at the program counter.
type Opcode int

const (
	OpAdd  Opcode = 1  // tape[out] = tape[a] + tape[b]
	OpMul  Opcode = 2  // tape[out] = tape[a] * tape[b]
	OpHalt Opcode = 99 // stop
)

// Width is the number of cells the PC advances after add or mul.
const Width = 4

// Valid reports whether op is part of the instruction set.
func (op Opcode) Valid() bool {
	switch op {
	case OpAdd, OpMul, OpHalt:
		return true
	}
	return false
}

// Operands returns how many operand cells follow the opcode.
func (op Opcode) Operands() int {
	switch op {
	case OpAdd, OpMul:
		return Width - 1
	}
	return 0
}

// String returns the mnemonic for op.
func (op Opcode) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpMul:
		return "mul"
	case OpHalt:
		return "halt"
	default:
		return fmt.Sprintf("op(%d)", int(op))
	}
}

// apply computes the value written by a binary instruction. Arithmetic wraps
// on int overflow.
func (op Opcode) apply(a, b int) int {
	if op == OpMul {
		return a * b
	}
	return a + b
}

// Outcome is the result of executing one instruction.
type Outcome int

const (
	Continue Outcome = iota
	Halt
)

func (o Outcome) String() string {
	if o == Halt {
		return "halt"
	}
	return "continue"
}

// State is the machine's lifecycle state.
type State int

const (
	Running State = iota
	Halted
	Faulted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Faulted:
		return "faulted"
	}
	return "?"
}
