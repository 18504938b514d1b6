package isa

import (
	"fmt"
	"strings"

	"github.com/Manu343726/mipsdis/pkg/utils"
)

// Bidirectional mapping between the numeric values of an instruction field and their mnemonics
//
// Each field role (opcode, function, branch condition) gets its own table and its own
// code type, so numeric values of different fields can never be mixed up.
type MnemonicTable[Code ~uint8] struct {
	field           FieldDescriptor
	unrecognized    error
	mnemonics       map[Code]string
	mnemonicsToCode map[string]Code
}

// Initializes a table with all the given code -> mnemonic entries
func NewMnemonicTable[Code ~uint8](field FieldDescriptor, unrecognized error, mnemonics map[Code]string) MnemonicTable[Code] {
	t := MnemonicTable[Code]{
		field:           field,
		unrecognized:    unrecognized,
		mnemonics:       mnemonics,
		mnemonicsToCode: utils.InvertedMap(mnemonics),
	}

	if len(t.mnemonicsToCode) != len(t.mnemonics) {
		panic(fmt.Sprintf("duplicated mnemonic in %v table, make sure every code has its own mnemonic", field.Name))
	}

	for code := range mnemonics {
		if uint32(code) > utils.AllOnes[uint32](field.Width) {
			panic(fmt.Sprintf("code %v does not fit in field %v", code, field))
		}
	}

	return t
}

// Returns the field this table gives names to
func (t *MnemonicTable[Code]) Field() FieldDescriptor {
	return t.field
}

// Returns true if the code has an entry in the table
func (t *MnemonicTable[Code]) Has(code Code) bool {
	_, ok := t.mnemonics[code]
	return ok
}

// Returns the mnemonic of a code
func (t *MnemonicTable[Code]) Mnemonic(code Code) (string, error) {
	if mnemonic, ok := t.mnemonics[code]; ok {
		return mnemonic, nil
	}

	return "", utils.MakeError(t.unrecognized, "%v (%v)", utils.FormatUintHex(uint64(code), utils.HexDigits(t.field.Width)), t.field)
}

// Returns the code corresponding to the given mnemonic. Lookup is case insensitive
func (t *MnemonicTable[Code]) Parse(mnemonic string) (Code, error) {
	if code, ok := t.mnemonicsToCode[strings.ToUpper(mnemonic)]; ok {
		return code, nil
	}

	return 0, utils.MakeError(ErrUnrecognizedMnemonic, "'%v' is not a valid %v mnemonic", mnemonic, t.field.Name)
}

// Returns all codes in the table in ascending order
func (t *MnemonicTable[Code]) Codes() []Code {
	return utils.SortedKeys(t.mnemonics)
}

// Returns the number of entries in the table
func (t *MnemonicTable[Code]) Len() int {
	return len(t.mnemonics)
}

// Formats a code as its mnemonic, or as a raw hex value if the code is not in the table
func (t *MnemonicTable[Code]) format(code Code) string {
	if mnemonic, ok := t.mnemonics[code]; ok {
		return mnemonic
	}

	return fmt.Sprintf("%v(%v)", t.field.Name, utils.FormatUintHex(uint64(code), utils.HexDigits(t.field.Width)))
}
