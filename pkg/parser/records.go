package parser

import (
	"fmt"
	"time"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/psilLang/advent/pkg/fabric"
	"github.com/psilLang/advent/pkg/guard"
)

// Claim: #123 @ 3,2: 5x4
type Claim struct {
	ID *Number `"#" @@ "@"`
	X  *Number `@@ ","`
	Y  *Number `@@ ":"`
	W  *Number `@@ "x"`
	H  *Number `@@`
}

// Claims is a list of claims, one per line.
type Claims struct {
	Claims []*Claim `@@*`
}

// LogEntry: [1518-11-01 00:00] Guard #10 begins shift
type LogEntry struct {
	Pos    lexer.Position
	Year   *Number `"[" @@ "-"`
	Month  *Number `@@ "-"`
	Day    *Number `@@`
	Hour   *Number `@@ ":"`
	Minute *Number `@@ "]"`
	Guard  *Number `(  "Guard" "#" @@ "begins" "shift"`
	Asleep bool    ` | @("falls" "asleep")`
	Awake  bool    ` | @("wakes" "up") )`
}

// GuardLog is a list of log entries, one per line, in any order.
type GuardLog struct {
	Entries []*LogEntry `@@*`
}

var recordLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[\s]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z]+`},
	{Name: "Punct", Pattern: `[#@,:\[\]-]`},
})

// ClaimsParser parses fabric claims.
var ClaimsParser = participle.MustBuild[Claims](
	participle.Lexer(recordLexer),
	participle.Elide("Whitespace"),
)

// GuardLogParser parses guard post log entries.
var GuardLogParser = participle.MustBuild[GuardLog](
	participle.Lexer(recordLexer),
	participle.Elide("Whitespace"),
)

// ToClaim converts a parsed claim.
func (c *Claim) ToClaim() (fabric.Claim, error) {
	var out fabric.Claim
	for _, f := range []struct {
		dst *int
		src *Number
	}{{&out.ID, c.ID}, {&out.X, c.X}, {&out.Y, c.Y}, {&out.W, c.W}, {&out.H, c.H}} {
		v, err := f.src.Int()
		if err != nil {
			return fabric.Claim{}, err
		}
		*f.dst = v
	}
	return out, nil
}

// ToEvent converts a parsed log entry.
func (e *LogEntry) ToEvent() (guard.Event, error) {
	var parts [5]int
	for i, n := range []*Number{e.Year, e.Month, e.Day, e.Hour, e.Minute} {
		v, err := n.Int()
		if err != nil {
			return guard.Event{}, err
		}
		parts[i] = v
	}
	year, month, day, hour, minute := parts[0], parts[1], parts[2], parts[3], parts[4]
	ts := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	// time.Date normalizes out-of-range fields, e.g. Feb 31 becomes Mar 3
	if month < 1 || month > 12 || day < 1 || ts.Day() != day || hour > 23 || minute > 59 {
		return guard.Event{}, fmt.Errorf("%s: invalid timestamp %04d-%02d-%02d %02d:%02d",
			e.Pos, year, month, day, hour, minute)
	}

	ev := guard.Event{Time: ts}
	switch {
	case e.Guard != nil:
		id, err := e.Guard.Int()
		if err != nil {
			return guard.Event{}, err
		}
		ev.Action = guard.BeginShift
		ev.Guard = id
	case e.Asleep:
		ev.Action = guard.FallAsleep
	case e.Awake:
		ev.Action = guard.WakeUp
	}
	return ev, nil
}

// ParseClaims parses "#ID @ X,Y: WxH" lines.
func ParseClaims(name, source string) ([]fabric.Claim, error) {
	ast, err := ClaimsParser.ParseString(name, source)
	if err != nil {
		return nil, err
	}
	claims := make([]fabric.Claim, 0, len(ast.Claims))
	for _, c := range ast.Claims {
		claim, err := c.ToClaim()
		if err != nil {
			return nil, err
		}
		claims = append(claims, claim)
	}
	return claims, nil
}

// ParseGuardLog parses guard post log lines. Entries are returned in input
// order; guard.Analyze sorts them.
func ParseGuardLog(name, source string) ([]guard.Event, error) {
	ast, err := GuardLogParser.ParseString(name, source)
	if err != nil {
		return nil, err
	}
	events := make([]guard.Event, 0, len(ast.Entries))
	for _, e := range ast.Entries {
		ev, err := e.ToEvent()
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}
