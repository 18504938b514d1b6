package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsciiFrame_SingleField(t *testing.T) {
	fields := []AsciiFrameField{
		{
			Name:  "f",
			Begin: 0,
			Width: 4,
		},
	}

	actual, err := AsciiFrame(fields, 4, "bits", AsciiFrameUnitLayout_RightToLeft, 0)
	require.NoError(t, err)

	assert.Equal(t, ""+
		"3            0\n"+
		"+------------+\n"+
		"|     f      |\n"+
		"+------------+\n"+
		" <- 4 bits -> \n",
		actual)
}

func TestAsciiFrame_WithTextPadding(t *testing.T) {
	fields := []AsciiFrameField{
		{
			Name:  "f",
			Begin: 0,
			Width: 4,
		},
	}

	actual, err := AsciiFrame(fields, 4, "bits", AsciiFrameUnitLayout_RightToLeft, 2)
	require.NoError(t, err)

	for _, line := range strings.Split(strings.TrimSuffix(actual, "\n"), "\n") {
		assert.True(t, strings.HasPrefix(line, "  "), "line %q is not padded", line)
	}
}

func TestAsciiFrame_GapsAreFilled(t *testing.T) {
	fields := []AsciiFrameField{
		{
			Name:  "low",
			Begin: 0,
			Width: 6,
		},
		{
			Name:  "high",
			Begin: 26,
			Width: 6,
		},
	}

	actual, err := AsciiFrame(fields, 32, "bits", AsciiFrameUnitLayout_RightToLeft, 0)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(actual, "\n"), "\n")
	require.Len(t, lines, 5)

	// Most significant field first
	assert.True(t, strings.HasPrefix(lines[0], "31 "))
	assert.True(t, strings.HasSuffix(lines[0], "0"))
	assert.Less(t, strings.Index(lines[2], "high"), strings.Index(lines[2], "(unused)"))
	assert.Less(t, strings.Index(lines[2], "(unused)"), strings.Index(lines[2], "low"))
	assert.Contains(t, lines[4], " 20 bits ")

	// All rows describe the same columns
	for _, line := range lines[1:4] {
		assert.Equal(t, len(lines[1]), len(line))
	}
}

func TestAsciiFrame_LeftToRight(t *testing.T) {
	fields := []AsciiFrameField{
		{
			Name:  "first",
			Begin: 0,
			Width: 16,
		},
		{
			Name:  "second",
			Begin: 16,
			Width: 16,
		},
	}

	actual, err := AsciiFrame(fields, 32, "bits", AsciiFrameUnitLayout_LeftToRight, 0)
	require.NoError(t, err)

	lines := strings.Split(actual, "\n")
	assert.True(t, strings.HasPrefix(lines[0], "0 "))
	assert.True(t, strings.HasSuffix(lines[0], "31"))
	assert.Less(t, strings.Index(lines[2], "first"), strings.Index(lines[2], "second"))
}

func TestAsciiFrame_InvalidFields(t *testing.T) {
	overlapping := []AsciiFrameField{
		{Name: "a", Begin: 0, Width: 8},
		{Name: "b", Begin: 4, Width: 8},
	}

	_, err := AsciiFrame(overlapping, 16, "bits", AsciiFrameUnitLayout_RightToLeft, 0)
	assert.ErrorIs(t, err, ErrInvalidAsciiFrame)

	tooWide := []AsciiFrameField{
		{Name: "a", Begin: 0, Width: 40},
	}

	_, err = AsciiFrame(tooWide, 32, "bits", AsciiFrameUnitLayout_RightToLeft, 0)
	assert.ErrorIs(t, err, ErrInvalidAsciiFrame)
}
