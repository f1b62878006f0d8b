package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psilLang/advent/pkg/intcode"
)

const (
	testConfig = "../../testdata/aoc.toml"
	testdata   = "../../testdata/"
)

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"intcode run", []string{"intcode", "run", testdata + "example.intcode"}, "3500\n"},
		{"intcode run dump", []string{"intcode", "run", "--dump", testdata + "example.intcode"},
			"3500,9,10,70,2,3,11,0,99,30,40,50\n3500\n"},
		{"intcode run asm", []string{"intcode", "run", "--asm", testdata + "example.asm"}, "3500\n"},
		{"intcode run patched", []string{"intcode", "run", "-p", "10=50", testdata + "example.intcode"}, "4000\n"},
		{"intcode disasm", []string{"intcode", "disasm", testdata + "example.intcode"},
			"0000: add [9] [10] -> [3]\n0004: mul [3] [11] -> [0]\n0008: halt\n0009: data 30\n0010: data 40\n0011: data 50\n"},
		{"intcode search", []string{"intcode", "search", testdata + "search.intcode"}, "noun: 7\nverb: 7\nanswer: 707\n"},
		{"fuel", []string{"fuel", testdata + "masses.txt"}, "34241\n"},
		{"fuel recursive", []string{"fuel", "-r", testdata + "masses.txt"}, "51316\n"},
		{"frequency", []string{"frequency", testdata + "changes.txt"}, "3\n"},
		{"frequency repeat", []string{"frequency", "--repeat", testdata + "changes.txt"}, "2\n"},
		{"boxid checksum", []string{"boxid", "checksum", testdata + "boxids.txt"}, "12\n"},
		{"boxid search", []string{"boxid", "search", testdata + "prototypes.txt"}, "fgij\n"},
		{"fabric", []string{"fabric", testdata + "claims.txt"}, "overlapping: 4\nintact: 3\n"},
		{"guard", []string{"guard", testdata + "guards.txt"},
			"strategy 1: guard #10 minute 24 answer 240\nstrategy 2: guard #99 minute 45 answer 4455\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", append(tt.args, "--config", testConfig)...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestIntcodeRunFromStdin(t *testing.T) {
	out, err := execute(t, "2,4,4,5,99,0\n", "intcode", "run", "--no-patch", "--dump", "-")
	require.NoError(t, err)
	assert.Equal(t, "2,4,4,5,99,9801\n2\n", out)
}

func TestIntcodeRunDefaultPatchFaults(t *testing.T) {
	// without a config file the 1202 patch applies, sending add to address 12
	_, err := execute(t, "", "intcode", "run", testdata+"example.intcode")
	require.Error(t, err)
	assert.ErrorIs(t, err, intcode.ErrOutOfBounds)
	assert.Contains(t, err.Error(), "runtime error after 1 steps")
}

func TestIntcodeRunStepLimit(t *testing.T) {
	_, err := execute(t, "", "intcode", "run", "--max-steps", "1", "--config", testConfig, testdata+"example.intcode")
	assert.ErrorIs(t, err, intcode.ErrStepLimitExceeded)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing file", []string{"fuel", testdata + "nope.txt"}, "reading"},
		{"bad program", []string{"intcode", "run", "-"}, "empty input"},
		{"bad patch address", []string{"intcode", "run", "-p", "x=1", testdata + "example.intcode"}, "invalid address"},
		{"missing config", []string{"fuel", "--config", testdata + "nope.toml", testdata + "masses.txt"}, "nope.toml"},
		{"no args", []string{"fabric"}, "accepts 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
