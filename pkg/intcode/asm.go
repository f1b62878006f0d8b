package intcode

import (
	"fmt"
	"strconv"
	"strings"
)

// Assembler converts text assembly to a tape.
//
//	start:  add a b sum   ; operands are addresses or labels
//	        mul sum b 0
//	        halt
//	a:      data 30
//	b:      data 40
//	sum:    data 0
type Assembler struct {
	tape   Tape
	labels map[string]int
	fixups []fixup
}

type fixup struct {
	pos   int
	label string
	line  int
}

// NewAssembler creates a new assembler
func NewAssembler() *Assembler {
	return &Assembler{
		tape:   make(Tape, 0, 64),
		labels: make(map[string]int),
	}
}

// mnemonics maps text to opcodes
var mnemonics = map[string]Opcode{
	"add":  OpAdd,
	"+":    OpAdd,
	"mul":  OpMul,
	"*":    OpMul,
	"halt": OpHalt,
	"hlt":  OpHalt,
}

// Assemble converts assembly text to a tape.
func (a *Assembler) Assemble(source string) (Tape, error) {
	a.tape = a.tape[:0]
	a.labels = make(map[string]int)
	a.fixups = nil

	for lineNum, line := range strings.Split(source, "\n") {
		if idx := strings.Index(line, ";"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Leading labels: "name:" possibly followed by an instruction
		for {
			colon := strings.Index(line, ":")
			if colon < 0 {
				break
			}
			label := strings.TrimSpace(line[:colon])
			if label == "" || strings.ContainsAny(label, " \t,") {
				return nil, fmt.Errorf("line %d: bad label %q", lineNum+1, label)
			}
			if _, dup := a.labels[label]; dup {
				return nil, fmt.Errorf("line %d: duplicate label %s", lineNum+1, label)
			}
			a.labels[label] = len(a.tape)
			line = strings.TrimSpace(line[colon+1:])
		}
		if line == "" {
			continue
		}

		if err := a.assembleTokens(tokenize(line), lineNum+1); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum+1, err)
		}
	}

	for _, f := range a.fixups {
		addr, ok := a.labels[f.label]
		if !ok {
			return nil, fmt.Errorf("line %d: undefined label: %s", f.line, f.label)
		}
		a.tape[f.pos] = addr
	}

	return a.tape.Clone(), nil
}

func tokenize(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
}

func (a *Assembler) assembleTokens(tokens []string, lineNum int) error {
	head := strings.ToLower(tokens[0])
	args := tokens[1:]

	if head == "data" || head == ".data" {
		if len(args) == 0 {
			return fmt.Errorf("data requires at least one value")
		}
		for _, tok := range args {
			if err := a.emitOperand(tok, lineNum); err != nil {
				return err
			}
		}
		return nil
	}

	op, ok := mnemonics[head]
	if !ok {
		return fmt.Errorf("unknown mnemonic: %s", tokens[0])
	}
	if len(args) != op.Operands() {
		return fmt.Errorf("%s takes %d operands, got %d", op, op.Operands(), len(args))
	}
	a.tape = append(a.tape, int(op))
	for _, tok := range args {
		if err := a.emitOperand(tok, lineNum); err != nil {
			return err
		}
	}
	return nil
}

func (a *Assembler) emitOperand(tok string, lineNum int) error {
	if n, err := strconv.Atoi(tok); err == nil {
		a.tape = append(a.tape, n)
		return nil
	}
	if !isLabel(tok) {
		return fmt.Errorf("invalid operand: %s", tok)
	}
	a.fixups = append(a.fixups, fixup{pos: len(a.tape), label: tok, line: lineNum})
	a.tape = append(a.tape, 0)
	return nil
}

func isLabel(tok string) bool {
	for i, r := range tok {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return tok != ""
}

// Disassemble renders tape as a listing. Cells that do not start a complete
// instruction are shown as data.
func Disassemble(tape Tape) string {
	var sb strings.Builder
	pc := 0

	for pc < len(tape) {
		op := Opcode(tape[pc])
		fmt.Fprintf(&sb, "%04d: ", pc)

		switch {
		case op == OpHalt:
			sb.WriteString("halt")
			pc++

		case op.Valid() && pc+op.Operands() < len(tape):
			in := Instruction{Op: op, Addr: pc}
			copy(in.Args[:], tape[pc+1:pc+Width])
			sb.WriteString(in.String())
			pc += Width

		default:
			fmt.Fprintf(&sb, "data %d", tape[pc])
			pc++
		}

		sb.WriteString("\n")
	}

	return sb.String()
}
