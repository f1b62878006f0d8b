// Package parser reads puzzle input using Participle v2.
// Grammars are defined as Go structs with tags.
package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/psilLang/advent/pkg/intcode"
)

// ErrEmpty is returned when the input holds no records.
var ErrEmpty = errors.New("parser: empty input")

// Number is an integer literal. Captured as text so leading zeros stay decimal.
type Number struct {
	Pos   lexer.Position
	Value string `@Int`
}

// Int converts the literal, reporting overflow at its position.
func (n *Number) Int() (int, error) {
	v, err := strconv.Atoi(n.Value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", n.Pos, n.Value)
	}
	return v, nil
}

// Program: 1,9,10,3,
//          2,3,11,0,99
//
// Values must be separated by commas; a trailing comma is allowed so a
// program can continue on the next line.
type Program struct {
	Values []*Number `( @@ ( "," @@ )* ","? )?`
}

// Integers: one signed integer per line (+3, -2, 14)
type Integers struct {
	Values []*Number `@@*`
}

// Integer lexer: signed decimal numbers, commas, whitespace
var intLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[\s]+`},
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Int", Pattern: `[-+]?[0-9]+`},
	{Name: "Punct", Pattern: `,`},
})

// ProgramParser parses Intcode program text.
var ProgramParser = participle.MustBuild[Program](
	participle.Lexer(intLexer),
	participle.Elide("Whitespace", "Comment"),
)

// IntegersParser parses newline separated integers.
var IntegersParser = participle.MustBuild[Integers](
	participle.Lexer(intLexer),
	participle.Elide("Whitespace", "Comment"),
)

func numbers(values []*Number) ([]int, error) {
	out := make([]int, 0, len(values))
	for _, n := range values {
		v, err := n.Int()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseProgram parses comma separated integers spread over any number of
// lines into a tape. Lines are concatenated in order.
func ParseProgram(name, source string) (intcode.Tape, error) {
	prog, err := ProgramParser.ParseString(name, source)
	if err != nil {
		return nil, err
	}
	if len(prog.Values) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmpty)
	}
	values, err := numbers(prog.Values)
	if err != nil {
		return nil, err
	}
	return intcode.Tape(values), nil
}

// ParseChanges parses signed frequency changes, one per line.
func ParseChanges(name, source string) ([]int, error) {
	ints, err := IntegersParser.ParseString(name, source)
	if err != nil {
		return nil, err
	}
	return numbers(ints.Values)
}

// ParseMasses parses module masses, one non-negative integer per line.
func ParseMasses(name, source string) ([]int, error) {
	ints, err := IntegersParser.ParseString(name, source)
	if err != nil {
		return nil, err
	}
	masses, err := numbers(ints.Values)
	if err != nil {
		return nil, err
	}
	for i, m := range masses {
		if m < 0 {
			return nil, fmt.Errorf("%s: negative mass %d", ints.Values[i].Pos, m)
		}
	}
	return masses, nil
}
