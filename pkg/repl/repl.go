// Package repl implements an interactive instruction word decoder.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Manu343726/mipsdis/pkg/isa"
	"github.com/Manu343726/mipsdis/pkg/listing"
	"github.com/Manu343726/mipsdis/pkg/utils"
)

const Prompt = "mipsdis> "

var ErrInvalidWord = errors.New("invalid instruction word")

// Parses an instruction word written as hex (0x...), binary (0b...), octal (0o...) or decimal
func ParseWord(text string) (uint32, error) {
	word, err := strconv.ParseUint(strings.TrimSpace(text), 0, isa.InstructionBits)
	if err != nil {
		return 0, utils.MakeError(ErrInvalidWord, "'%v' is not a 32 bit number", text)
	}

	return uint32(word), nil
}

// Source of input lines. Implemented by line editors like liner.State
type LineReader interface {
	// Shows the prompt and returns the next input line. Returns io.EOF when there's no more input
	Prompt(prompt string) (string, error)
}

// Reads lines from a plain reader, without line editing support. Lines have no length limit
type ScannerReader struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewScannerReader(in io.Reader, out io.Writer) *ScannerReader {
	return &ScannerReader{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (r *ScannerReader) Prompt(prompt string) (string, error) {
	if r.out != nil {
		fmt.Fprint(r.out, prompt)
	}

	line, err := r.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

type Options struct {
	// Highlight decoded instructions
	Color bool
	// Append the branch condition of REGIMM instructions as a comment
	Annotate bool
}

// Interactive decoding session
type Session struct {
	options Options
	history []string
}

func NewSession(options Options) *Session {
	return &Session{options: options}
}

// Returns all evaluated lines, oldest first
func (s *Session) History() []string {
	return s.history
}

// Evaluates an input line, returning the text to print and whether the session must end
func (s *Session) Eval(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", false
	}

	s.history = append(s.history, trimmed)
	parts := strings.Fields(trimmed)

	switch parts[0] {
	case ":quit", ":q", ":exit":
		return "", true
	case ":help", ":h", ":?":
		return help, false
	case ":explain", ":e":
		if len(parts) < 2 {
			return s.failure("usage: :explain <word>..."), false
		}

		return s.explain(parts[1:]), false
	case ":doc":
		return isa.DocString(), false
	}

	if strings.HasPrefix(parts[0], ":") {
		return s.failure(fmt.Sprintf("unknown command %v, type :help for the list of commands", parts[0])), false
	}

	return strings.Join(utils.Map(parts, s.decode), "\n"), false
}

func (s *Session) failure(message string) string {
	if s.options.Color {
		return utils.HighlightError(message)
	}

	return message
}

func (s *Session) decode(text string) string {
	word, err := ParseWord(text)
	if err != nil {
		return s.failure(err.Error())
	}

	instruction, err := isa.Decode(word)
	if err != nil {
		return s.failure(err.Error())
	}

	rendered, err := isa.Render(instruction)
	if err != nil {
		return s.failure(err.Error())
	}

	if s.options.Annotate {
		if annotation := listing.Annotation(instruction); annotation != "" {
			rendered = fmt.Sprintf("%v  # %v", rendered, annotation)
		}
	}

	if s.options.Color {
		return utils.HighlightAssembly(rendered)
	}

	return rendered
}

func (s *Session) explain(words []string) string {
	return strings.Join(utils.Map(words, func(text string) string {
		word, err := ParseWord(text)
		if err != nil {
			return s.failure(err.Error())
		}

		explanation, err := isa.Explain(word)
		if err != nil {
			return s.failure(err.Error())
		}

		return explanation
	}), "\n\n")
}

// Runs the read-eval-print loop until the input ends or the user quits
func (s *Session) Run(input LineReader, out io.Writer) error {
	fmt.Fprintln(out, "mipsdis interactive decoder. Type :help for help, :quit to exit")

	for {
		line, err := input.Prompt(Prompt)
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		output, quit := s.Eval(line)
		if quit {
			return nil
		}

		if output != "" {
			fmt.Fprintln(out, output)
		}
	}
}

const help = `Type one or more instruction words separated by spaces to decode them.
Words can be written in hex (0x00853020), binary (0b0000...), octal (0o...) or decimal.

Commands:
  :explain <word>...  show the bit fields of each word
  :doc                show the instruction set documentation
  :help               show this help
  :quit               exit`
