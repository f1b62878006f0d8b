package intcode

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"
)

// Tape is the machine's memory. Indices are addresses.
type Tape []int

// Clone returns an independent copy of t.
func (t Tape) Clone() Tape {
	return slices.Clone(t)
}

// Patch maps addresses to values written before execution starts.
type Patch map[int]int

// Alarm1202 restores the gravity assist program to its "1202 program alarm" state.
var Alarm1202 = Patch{1: 12, 2: 2}

// Instruction is a decoded view over the cells at Addr.
type Instruction struct {
	Op   Opcode
	Addr int
	// Args holds read address 1, read address 2 and the write address.
	// Unused for halt.
	Args [3]int
}

func (in Instruction) String() string {
	if in.Op == OpHalt {
		return in.Op.String()
	}
	return fmt.Sprintf("%s [%d] [%d] -> [%d]", in.Op, in.Args[0], in.Args[1], in.Args[2])
}

// ctxCheckInterval is how many steps run between context checks.
const ctxCheckInterval = 1024

// VM is an Intcode computer. It owns its tape for the duration of a run.
type VM struct {
	Tape Tape
	PC   int

	// Execution limits (0 = unlimited)
	MaxSteps int
	Steps    int

	State State

	// Logger receives one debug entry per executed instruction.
	Logger *zap.Logger

	err error
}

// Option configures a VM.
type Option func(*VM)

// WithMaxSteps bounds the number of instructions executed, halt included.
func WithMaxSteps(n int) Option {
	return func(vm *VM) { vm.MaxSteps = n }
}

// WithLogger sets the trace logger.
func WithLogger(l *zap.Logger) Option {
	return func(vm *VM) {
		if l != nil {
			vm.Logger = l
		}
	}
}

// WithPC sets the starting program counter.
func WithPC(pc int) Option {
	return func(vm *VM) { vm.PC = pc }
}

// New creates a VM that takes ownership of tape.
func New(tape Tape, opts ...Option) *VM {
	vm := &VM{
		Tape:   tape,
		Logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

// Patch overwrites cells before the first step. Either every address is
// written or, if any is out of bounds, none is.
func (vm *VM) Patch(p Patch) error {
	if vm.Steps > 0 || vm.State != Running {
		return ErrAlreadyStarted
	}
	addrs := slices.Sorted(maps.Keys(p))
	for _, addr := range addrs {
		if err := vm.check(addr); err != nil {
			return err
		}
	}
	for _, addr := range addrs {
		vm.Tape[addr] = p[addr]
	}
	return nil
}

// Restore1202 applies Alarm1202.
func (vm *VM) Restore1202() error {
	return vm.Patch(Alarm1202)
}

func (vm *VM) check(addr int) error {
	if addr < 0 || addr >= len(vm.Tape) {
		return &OutOfBoundsError{Addr: addr, Len: len(vm.Tape)}
	}
	return nil
}

func (vm *VM) read(addr int) (int, error) {
	if err := vm.check(addr); err != nil {
		return 0, err
	}
	return vm.Tape[addr], nil
}

// Decode reads the instruction at PC without executing it.
func (vm *VM) Decode() (Instruction, error) {
	tag, err := vm.read(vm.PC)
	if err != nil {
		return Instruction{}, err
	}
	op := Opcode(tag)
	if !op.Valid() {
		return Instruction{}, &UnknownOpcodeError{Value: tag, Addr: vm.PC}
	}
	in := Instruction{Op: op, Addr: vm.PC}
	for i := 0; i < op.Operands(); i++ {
		v, err := vm.read(vm.PC + 1 + i)
		if err != nil {
			return Instruction{}, err
		}
		in.Args[i] = v
	}
	return in, nil
}

func (vm *VM) fault(err error) (Outcome, error) {
	vm.State = Faulted
	vm.err = err
	vm.Logger.Debug("fault", zap.Int("pc", vm.PC), zap.Int("steps", vm.Steps), zap.Error(err))
	return Halt, err
}

// Step executes one instruction. A faulting instruction writes nothing.
func (vm *VM) Step() (Outcome, error) {
	switch vm.State {
	case Halted:
		return Halt, nil
	case Faulted:
		return Halt, vm.err
	}

	if vm.MaxSteps > 0 && vm.Steps >= vm.MaxSteps {
		return vm.fault(&StepLimitError{Limit: vm.MaxSteps, PC: vm.PC})
	}

	in, err := vm.Decode()
	if err != nil {
		return vm.fault(err)
	}
	vm.Steps++

	if ce := vm.Logger.Check(zap.DebugLevel, "exec"); ce != nil {
		ce.Write(zap.Int("pc", vm.PC), zap.Stringer("insn", in))
	}

	switch in.Op {
	case OpHalt:
		vm.State = Halted
		return Halt, nil

	case OpAdd, OpMul:
		a, err := vm.read(in.Args[0])
		if err != nil {
			return vm.fault(err)
		}
		b, err := vm.read(in.Args[1])
		if err != nil {
			return vm.fault(err)
		}
		out := in.Args[2]
		if err := vm.check(out); err != nil {
			return vm.fault(err)
		}
		vm.Tape[out] = in.Op.apply(a, b)
		vm.PC += Width
	}

	return Continue, nil
}

// Run executes until halted or faulted.
func (vm *VM) Run() error {
	return vm.RunContext(context.Background())
}

// RunContext is Run with cancellation, checked every ctxCheckInterval steps.
func (vm *VM) RunContext(ctx context.Context) error {
	for n := 0; ; n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		outcome, err := vm.Step()
		if err != nil {
			return err
		}
		if outcome == Halt {
			return nil
		}
	}
}

// Err returns the fault that stopped the machine, if any.
func (vm *VM) Err() error {
	return vm.err
}

// Result returns the value at address 0.
func (vm *VM) Result() int {
	if len(vm.Tape) == 0 {
		return 0
	}
	return vm.Tape[0]
}

// Run clones tape, applies patch, runs to completion and returns the final tape.
// On error the returned tape holds the state at the fault.
func Run(tape Tape, patch Patch, opts ...Option) (Tape, error) {
	vm := New(tape.Clone(), opts...)
	if err := vm.Patch(patch); err != nil {
		return vm.Tape, err
	}
	err := vm.Run()
	return vm.Tape, err
}
