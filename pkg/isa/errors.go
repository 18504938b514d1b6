package isa

import (
	"errors"
	"fmt"

	"github.com/Manu343726/mipsdis/pkg/utils"
)

var (
	ErrUnrecognizedOpcode          = errors.New("unrecognized instruction opcode")
	ErrUnrecognizedFunction        = errors.New("unrecognized function code")
	ErrUnrecognizedBranchCondition = errors.New("unrecognized branch condition")
	ErrUnrecognizedMnemonic        = errors.New("unrecognized mnemonic")
	ErrUnsupportedRenderForm       = errors.New("unsupported render form")
)

// Reports a word that could not be decoded, identifying the offending field value
type DecodeError struct {
	// One of ErrUnrecognizedOpcode or ErrUnrecognizedFunction
	Err error
	// Field holding the offending value
	Field FieldDescriptor
	// Value of the field
	Code uint32
	// Full instruction word
	Word uint32
}

func newDecodeError(err error, field FieldDescriptor, word uint32) *DecodeError {
	return &DecodeError{
		Err:   err,
		Field: field,
		Code:  field.Read(word),
		Word:  word,
	}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: %v (%v) in word %v",
		e.Err,
		utils.FormatUintHex(uint64(e.Code), utils.HexDigits(e.Field.Width)),
		e.Field,
		utils.FormatUintHex(uint64(e.Word), 8))
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
