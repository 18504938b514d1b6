// Package listing writes decoded instruction streams in human and machine readable formats.
package listing

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Manu343726/mipsdis/pkg/isa"
	"github.com/Manu343726/mipsdis/pkg/stream"
	"github.com/Manu343726/mipsdis/pkg/utils"
	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown listing format")

type Format string

const (
	// One assembly line per word
	Format_Text Format = "text"
	// A YAML sequence with one entry per word
	Format_YAML Format = "yaml"
	// Go structure dump of every result
	Format_Dump Format = "dump"
)

var Formats = []Format{Format_Text, Format_YAML, Format_Dump}

// Returns the format with the given name
func ParseFormat(name string) (Format, error) {
	for _, format := range Formats {
		if string(format) == strings.ToLower(name) {
			return format, nil
		}
	}

	return "", utils.MakeError(ErrUnknownFormat, "'%v', expected one of %v", name, utils.FormatSlice(Formats, ", "))
}

type Options struct {
	Format Format
	// Prefix text lines with the instruction address
	Addresses bool
	// Prefix text lines with the raw instruction word
	Raw bool
	// Append the branch condition of REGIMM instructions as a comment
	Annotate bool
	// Highlight text lines
	Color bool
}

// Writes decode results to an output stream, one at a time
type Writer struct {
	out     io.Writer
	options Options
	dumper  *spew.ConfigState
}

func NewWriter(out io.Writer, options Options) (*Writer, error) {
	if _, err := ParseFormat(string(options.Format)); err != nil {
		return nil, err
	}

	return &Writer{
		out:     out,
		options: options,
		dumper: &spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		},
	}, nil
}

// Writes a single result
func (w *Writer) Write(result stream.Result) error {
	switch w.options.Format {
	case Format_YAML:
		data, err := yaml.Marshal([]Entry{NewEntry(result)})
		if err != nil {
			return err
		}

		_, err = w.out.Write(data)
		return err
	case Format_Dump:
		w.dumper.Fdump(w.out, result)
		return nil
	}

	_, err := fmt.Fprintln(w.out, w.FormatLine(result))
	return err
}

// Writes all results in order
func (w *Writer) WriteAll(results []stream.Result) error {
	for _, result := range results {
		if err := w.Write(result); err != nil {
			return err
		}
	}

	return nil
}

// Returns the text listing line of a result
func (w *Writer) FormatLine(result stream.Result) string {
	var builder strings.Builder

	if w.options.Addresses {
		builder.WriteString(utils.FormatUintHex(uint64(result.Address), 8))
		builder.WriteString(":  ")
	}

	if w.options.Raw {
		if errors.Is(result.Err, stream.ErrTruncatedWord) {
			builder.WriteString(utils.PadRight("", 12))
		} else {
			builder.WriteString(utils.PadRight(utils.FormatUintHex(uint64(result.Word), 8), 12))
		}
	}

	if result.Failed() {
		diagnostic := fmt.Sprintf("# %v", result.Err)
		if !errors.Is(result.Err, stream.ErrTruncatedWord) {
			diagnostic = fmt.Sprintf(".word %v  %v", utils.FormatUintHex(uint64(result.Word), 8), diagnostic)
		}

		if w.options.Color {
			diagnostic = utils.HighlightError(diagnostic)
		}

		builder.WriteString(diagnostic)
		return builder.String()
	}

	text := result.Text
	if w.options.Annotate {
		if annotation := Annotation(result.Instruction); annotation != "" {
			text = fmt.Sprintf("%v  # %v", text, annotation)
		}
	}

	if w.options.Color {
		text = utils.HighlightAssembly(text)
	}

	builder.WriteString(text)
	return builder.String()
}

// Returns the branch condition of REGIMM instructions, empty for any other instruction
func Annotation(instruction isa.Instruction) string {
	immediate, ok := instruction.(isa.ImmediateInstruction)
	if !ok {
		return ""
	}

	condition, err := immediate.BranchCondition()
	if err != nil {
		return ""
	}

	return condition.String()
}
