// Package utils provides utility functions for the mipsdis project.
package utils

import (
	"regexp"

	"github.com/fatih/color"
)

// Assembly syntax highlighting colors
var (
	asmMnemonicColor = color.New(color.FgMagenta, color.Bold)
	asmRegisterColor = color.New(color.FgCyan)
	asmNumberColor   = color.New(color.FgYellow)
	asmCommentColor  = color.New(color.FgHiBlack)
	asmErrorColor    = color.New(color.FgRed)
)

var (
	// Matches the mnemonic at the beginning of an instruction
	asmMnemonicPattern = regexp.MustCompile(`^\s*[A-Za-z][A-Za-z0-9.]*`)
	// Matches register references ($4, $31)
	asmRegisterPattern = regexp.MustCompile(`\$[0-9]+`)
	// Matches hex and (signed) decimal numbers
	asmNumberPattern = regexp.MustCompile(`-?\b(?:0[xX][0-9a-fA-F]+|[0-9]+)\b`)
	// Matches trailing comments
	asmCommentPattern = regexp.MustCompile(`#.*$`)
)

// token represents a syntax-highlighted token
type token struct {
	text  string
	color *color.Color
	start int
	end   int
}

func collectTokens(code string, pattern *regexp.Regexp, c *color.Color, tokens []token) []token {
	for _, match := range pattern.FindAllStringIndex(code, -1) {
		if !overlapsAny(match[0], match[1], tokens) {
			tokens = append(tokens, token{
				text:  code[match[0]:match[1]],
				color: c,
				start: match[0],
				end:   match[1],
			})
		}
	}

	return tokens
}

// HighlightAssembly applies syntax highlighting to a rendered instruction line
func HighlightAssembly(code string) string {
	if code == "" {
		return ""
	}

	// Comments first, nothing inside a comment gets highlighted
	tokens := collectTokens(code, asmCommentPattern, asmCommentColor, nil)
	tokens = collectTokens(code, asmMnemonicPattern, asmMnemonicColor, tokens)
	tokens = collectTokens(code, asmRegisterPattern, asmRegisterColor, tokens)
	tokens = collectTokens(code, asmNumberPattern, asmNumberColor, tokens)

	return buildHighlightedString(code, tokens)
}

// HighlightError colors a diagnostic message
func HighlightError(message string) string {
	return asmErrorColor.Sprint(message)
}

// overlapsAny checks if a range overlaps with any existing token
func overlapsAny(start, end int, tokens []token) bool {
	for _, t := range tokens {
		if start < t.end && end > t.start {
			return true
		}
	}
	return false
}

// buildHighlightedString constructs the final string with color codes
func buildHighlightedString(code string, tokens []token) string {
	if len(tokens) == 0 {
		return code
	}

	sortTokens(tokens)

	result := make([]byte, 0, len(code)*2)
	pos := 0

	for _, t := range tokens {
		if t.start > pos {
			result = append(result, code[pos:t.start]...)
		}
		result = append(result, t.color.Sprint(t.text)...)
		pos = t.end
	}

	if pos < len(code) {
		result = append(result, code[pos:]...)
	}

	return string(result)
}

// sortTokens sorts tokens by start position (simple insertion sort for small arrays)
func sortTokens(tokens []token) {
	for i := 1; i < len(tokens); i++ {
		key := tokens[i]
		j := i - 1
		for j >= 0 && tokens[j].start > key.start {
			tokens[j+1] = tokens[j]
			j--
		}
		tokens[j+1] = key
	}
}
