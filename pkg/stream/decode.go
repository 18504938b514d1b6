package stream

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/Manu343726/mipsdis/pkg/isa"
	"github.com/Manu343726/mipsdis/pkg/utils"
	"github.com/sourcegraph/conc/iter"
)

// Outcome of decoding one word of a stream
type Result struct {
	// Position of the word within the stream
	Index int
	// Address of the word, given the base address of the stream
	Address uint32
	// Raw instruction word
	Word uint32
	// Decoded instruction. Nil if the word could not be decoded
	Instruction isa.Instruction
	// Rendered assembly. Empty if the word could not be decoded or rendered
	Text string
	// Decode, render or truncation error
	Err error
}

// Returns true if the word was not successfully decoded and rendered
func (r Result) Failed() bool {
	return r.Err != nil
}

type Options struct {
	// Address of the first word of the stream
	BaseAddress uint32
	// Max number of goroutines used by DecodeParallel. Zero or less means one per CPU
	Jobs int
	// Logger used to report failed words. Nil discards logs
	Logger *slog.Logger
}

// Decodes and renders instruction streams
type Decoder struct {
	options Options
	logger  *slog.Logger
}

func NewDecoder(options Options) *Decoder {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if options.Jobs < 0 {
		options.Jobs = 0
	}

	return &Decoder{
		options: options,
		logger:  logger,
	}
}

// Returns the address of the word at the given stream position
func (d *Decoder) Address(index int) uint32 {
	return d.options.BaseAddress + uint32(index)*isa.InstructionBytes
}

// Decodes and renders a single word
func (d *Decoder) DecodeWord(index int, word uint32) Result {
	result := Result{
		Index:   index,
		Address: d.Address(index),
		Word:    word,
	}

	result.Instruction, result.Err = isa.Decode(word)
	if result.Err == nil {
		result.Text, result.Err = isa.Render(result.Instruction)
	}

	if result.Err != nil {
		d.logFailure(result)
	}

	return result
}

func (d *Decoder) truncated(index int, err error) Result {
	result := Result{
		Index:   index,
		Address: d.Address(index),
		Err:     err,
	}

	d.logFailure(result)

	return result
}

func (d *Decoder) logFailure(result Result) {
	d.logger.Warn("failed to decode word",
		slog.Int("index", result.Index),
		slog.String("address", utils.FormatUintHex(uint64(result.Address), 8)),
		slog.String("word", utils.FormatUintHex(uint64(result.Word), 8)),
		slog.Any("error", result.Err))
}

// Reads and decodes words one by one, calling fn with the result of each word in stream order
//
// Undecodable and truncated words are reported through fn and never stop the iteration. Iteration stops
// if fn returns an error, the context is cancelled, or the reader fails.
func (d *Decoder) Each(ctx context.Context, reader *WordReader, fn func(Result) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		index := reader.Index()
		word, err := reader.Next()

		var result Result
		switch {
		case err == nil:
			result = d.DecodeWord(index, word)
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, ErrTruncatedWord):
			result = d.truncated(index, err)
		default:
			return err
		}

		if err := fn(result); err != nil {
			return err
		}
	}
}

// Decodes the whole stream sequentially
func (d *Decoder) DecodeAll(ctx context.Context, reader *WordReader) ([]Result, error) {
	var results []Result

	err := d.Each(ctx, reader, func(result Result) error {
		results = append(results, result)
		return nil
	})

	return results, err
}

type pendingWord struct {
	index int
	word  uint32
	err   error
}

// Reads the whole stream and decodes all words concurrently. Results are returned in stream order
func (d *Decoder) DecodeParallel(ctx context.Context, reader *WordReader) ([]Result, error) {
	var words []pendingWord

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		index := reader.Index()
		word, err := reader.Next()

		if errors.Is(err, io.EOF) {
			break
		} else if err != nil && !errors.Is(err, ErrTruncatedWord) {
			return nil, err
		}

		words = append(words, pendingWord{index: index, word: word, err: err})
	}

	mapper := iter.Mapper[pendingWord, Result]{
		MaxGoroutines: d.options.Jobs,
	}

	results := mapper.Map(words, func(w *pendingWord) Result {
		if ctx.Err() != nil {
			return Result{Index: w.index, Address: d.Address(w.index), Word: w.word, Err: ctx.Err()}
		}

		if w.err != nil {
			return d.truncated(w.index, w.err)
		}

		return d.DecodeWord(w.index, w.word)
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// Aggregated outcome of decoding a stream
type Summary struct {
	Total   int `yaml:"total"`
	Decoded int `yaml:"decoded"`
	Failed  int `yaml:"failed"`
	// Number of failures per error kind
	Failures map[string]int `yaml:"failures,omitempty"`
}

var failureKinds = []error{
	isa.ErrUnrecognizedOpcode,
	isa.ErrUnrecognizedFunction,
	isa.ErrUnsupportedRenderForm,
	ErrTruncatedWord,
}

func failureKind(err error) string {
	for _, kind := range failureKinds {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}

	return "other"
}

// Counts a result into the summary
func (s *Summary) Add(result Result) {
	if s.Failures == nil {
		s.Failures = make(map[string]int)
	}

	s.Total++

	if result.Failed() {
		s.Failed++
		s.Failures[failureKind(result.Err)]++
	} else {
		s.Decoded++
	}
}

// Counts decoded and failed words
func Summarize(results []Result) Summary {
	summary := Summary{
		Failures: make(map[string]int),
	}

	for _, result := range results {
		summary.Add(result)
	}

	return summary
}

// Returns true if any word failed
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}
