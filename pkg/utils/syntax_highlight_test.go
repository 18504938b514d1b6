package utils

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func withColor(t *testing.T, enabled bool) {
	previous := color.NoColor
	color.NoColor = !enabled
	t.Cleanup(func() { color.NoColor = previous })
}

func TestHighlightAssembly_NoColor(t *testing.T) {
	withColor(t, false)

	for _, line := range []string{"ADD $4, $5, $6", "LW $8, -4($29)", "J 0x0000010", "REGIMM $1, $17, 3 # BGEZAL", ""} {
		assert.Equal(t, line, HighlightAssembly(line))
	}
}

func TestHighlightAssembly_Color(t *testing.T) {
	withColor(t, true)

	highlighted := HighlightAssembly("ADD $4, $5, $6")

	assert.Contains(t, highlighted, "\x1b[")
	assert.Contains(t, highlighted, asmMnemonicColor.Sprint("ADD"))
	assert.Contains(t, highlighted, asmRegisterColor.Sprint("$5"))
}

func TestHighlightAssembly_CommentsAreNotTokenized(t *testing.T) {
	withColor(t, true)

	highlighted := HighlightAssembly("REGIMM $1, $17, 3 # BGEZAL 12")

	assert.Contains(t, highlighted, asmCommentColor.Sprint("# BGEZAL 12"))
	assert.Contains(t, highlighted, asmNumberColor.Sprint("3"))
}
