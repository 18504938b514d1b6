package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWord(t *testing.T) {
	tests := []struct {
		text string
		word uint32
	}{
		{"0x00853020", 0x00853020},
		{"0X08000010", 0x08000010},
		{"0b00000000100001010011000000100000", 0x00853020},
		{"8728608", 0x00853020},
		{"  0xffffffff ", 0xFFFFFFFF},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			word, err := ParseWord(test.text)
			require.NoError(t, err)
			assert.Equal(t, test.word, word)
		})
	}

	for _, text := range []string{"", "ADD", "0x100000000", "-1", "0xZZ"} {
		_, err := ParseWord(text)
		assert.ErrorIs(t, err, ErrInvalidWord, text)
	}
}

func TestEvalDecodesWords(t *testing.T) {
	session := NewSession(Options{})

	output, quit := session.Eval("0x00853020 0x08000010")
	assert.False(t, quit)
	assert.Equal(t, "ADD $4, $5, $6\nJ 0x0000010", output)

	output, _ = session.Eval("0xfc000000")
	assert.Contains(t, output, "unrecognized instruction opcode")

	output, _ = session.Eval("bogus")
	assert.Contains(t, output, "invalid instruction word")

	assert.Equal(t, []string{"0x00853020 0x08000010", "0xfc000000", "bogus"}, session.History())
}

func TestEvalAnnotatesRegimm(t *testing.T) {
	output, _ := NewSession(Options{Annotate: true}).Eval("0x04810008")
	assert.Equal(t, "REGIMM $4, $1, 8  # BGEZ", output)
}

func TestEvalCommands(t *testing.T) {
	session := NewSession(Options{})

	output, quit := session.Eval(":help")
	assert.False(t, quit)
	assert.Contains(t, output, ":explain")

	output, _ = session.Eval(":explain 0x00853020")
	assert.Contains(t, output, "opcode=000000")

	output, _ = session.Eval(":explain")
	assert.Contains(t, output, "usage")

	output, _ = session.Eval(":frobnicate")
	assert.Contains(t, output, "unknown command :frobnicate")

	output, _ = session.Eval("   ")
	assert.Empty(t, output)

	_, quit = session.Eval(":quit")
	assert.True(t, quit)
}

func TestRun(t *testing.T) {
	in := strings.NewReader("0x00853020\n:quit\n0x08000010\n")
	var out bytes.Buffer

	require.NoError(t, NewSession(Options{}).Run(NewScannerReader(in, &out), &out))

	assert.Contains(t, out.String(), Prompt)
	assert.Contains(t, out.String(), "ADD $4, $5, $6")
	assert.NotContains(t, out.String(), "J 0x0000010")
}

func TestRunEndsOnEOF(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, NewSession(Options{}).Run(NewScannerReader(strings.NewReader("0x08000010"), nil), &out))
	assert.Contains(t, out.String(), "J 0x0000010")
}

func TestRunAcceptsLongLines(t *testing.T) {
	long := strings.Repeat("0x00853020 ", 10000)
	in := strings.NewReader(long + "\r\n0x08000010\n")
	var out bytes.Buffer

	require.NoError(t, NewSession(Options{}).Run(NewScannerReader(in, nil), &out))

	assert.Equal(t, 10000, strings.Count(out.String(), "ADD $4, $5, $6"))
	assert.Contains(t, out.String(), "J 0x0000010")
}
