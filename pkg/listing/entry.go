package listing

import (
	"errors"

	"github.com/Manu343726/mipsdis/pkg/stream"
	"github.com/Manu343726/mipsdis/pkg/utils"
)

// Machine readable form of a decode result
type Entry struct {
	Index   int    `yaml:"index"`
	Address string `yaml:"address"`
	Word    string `yaml:"word,omitempty"`
	Format  string `yaml:"format,omitempty"`
	Text    string `yaml:"text,omitempty"`
	// Decoded field values, by field name
	Fields          map[string]uint32 `yaml:"fields,omitempty"`
	BranchCondition string            `yaml:"branch-condition,omitempty"`
	Error           string            `yaml:"error,omitempty"`
}

func NewEntry(result stream.Result) Entry {
	entry := Entry{
		Index:   result.Index,
		Address: utils.FormatUintHex(uint64(result.Address), 8),
		Text:    result.Text,
	}

	if result.Err != nil {
		entry.Error = result.Err.Error()
	}

	if !errors.Is(result.Err, stream.ErrTruncatedWord) {
		entry.Word = utils.FormatUintHex(uint64(result.Word), 8)
	}

	if result.Instruction != nil {
		entry.Format = result.Instruction.Format().String()
		entry.Fields = make(map[string]uint32)

		for _, field := range result.Instruction.Fields() {
			entry.Fields[field.Field.Name] = field.Value
		}

		entry.BranchCondition = Annotation(result.Instruction)
	}

	return entry
}
