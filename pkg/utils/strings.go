package utils

import (
	"fmt"
	"strings"
)

// Formats an uint value into a fixed width binary string of n bits
func FormatUintBinary(value uint64, bits int) string {
	return fmt.Sprintf("%0*b", bits, value)
}

// Formats an uint value into an fixed width hex string of n characters
func FormatUintHex(value uint64, digits int) string {
	return fmt.Sprintf("0x%0*x", digits, value)
}

// Returns the number of hex digits needed to print a value of the given bit width
func HexDigits(bits int) int {
	return (bits + 3) / 4
}

// Returns an string containing all formatted sequence items separated by a given separator
func FormatSlice[T any](input []T, separator string) string {
	var builder strings.Builder

	for i, value := range input {
		builder.WriteString(fmt.Sprint(value))

		if i < len(input)-1 {
			builder.WriteString(separator)
		}
	}

	return builder.String()
}

// Pads a string with trailing spaces up to the given width
func PadRight(text string, width int) string {
	if len(text) >= width {
		return text
	}

	return text + strings.Repeat(" ", width-len(text))
}
