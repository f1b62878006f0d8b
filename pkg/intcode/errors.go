package intcode

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is. The concrete error types below carry the details.
var (
	ErrOutOfBounds       = errors.New("intcode: address out of bounds")
	ErrUnknownOpcode     = errors.New("intcode: unknown opcode")
	ErrStepLimitExceeded = errors.New("intcode: step limit exceeded")
	ErrAlreadyStarted    = errors.New("intcode: machine already started")
	ErrNoSolution        = errors.New("intcode: no noun/verb produces target")
)

// OutOfBoundsError reports a read or write outside the tape.
type OutOfBoundsError struct {
	Addr int
	Len  int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("intcode: address %d out of bounds (tape length %d)", e.Addr, e.Len)
}

func (e *OutOfBoundsError) Is(target error) bool { return target == ErrOutOfBounds }

// UnknownOpcodeError reports a tag outside {1, 2, 99} at Addr.
type UnknownOpcodeError struct {
	Value int
	Addr  int
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("intcode: unknown opcode %d at address %d", e.Value, e.Addr)
}

func (e *UnknownOpcodeError) Is(target error) bool { return target == ErrUnknownOpcode }

// StepLimitError is returned when a program runs past the configured budget.
type StepLimitError struct {
	Limit int
	PC    int
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("intcode: step limit %d exceeded at pc %d", e.Limit, e.PC)
}

func (e *StepLimitError) Is(target error) bool { return target == ErrStepLimitExceeded }
