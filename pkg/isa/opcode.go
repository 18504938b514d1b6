package isa

import (
	"github.com/Manu343726/mipsdis/pkg/utils"
)

// Represents the primary operation code of an instruction (bits [31:26])
type Opcode uint8

const (
	// Register format instructions, operation selected by the function field
	Opcode_SPECIAL Opcode = 0x00
	// Branches on the sign of a register, condition selected by the rt field
	Opcode_REGIMM Opcode = 0x01
	Opcode_J      Opcode = 0x02
	Opcode_JAL    Opcode = 0x03
	Opcode_BEQ    Opcode = 0x04
	Opcode_BNE    Opcode = 0x05
	Opcode_BLEZ   Opcode = 0x06
	Opcode_BGTZ   Opcode = 0x07
	Opcode_ADDI   Opcode = 0x08
	Opcode_ADDIU  Opcode = 0x09
	Opcode_SLTI   Opcode = 0x0A
	Opcode_SLTIU  Opcode = 0x0B
	Opcode_ANDI   Opcode = 0x0C
	Opcode_ORI    Opcode = 0x0D
	Opcode_XORI   Opcode = 0x0E
	Opcode_LUI    Opcode = 0x0F
	Opcode_LB     Opcode = 0x20
	Opcode_LH     Opcode = 0x21
	Opcode_LWL    Opcode = 0x22
	Opcode_LW     Opcode = 0x23
	Opcode_LBU    Opcode = 0x24
	Opcode_LHU    Opcode = 0x25
	Opcode_LWR    Opcode = 0x26
	Opcode_SB     Opcode = 0x28
	Opcode_SH     Opcode = 0x29
	Opcode_SWL    Opcode = 0x2A
	Opcode_SW     Opcode = 0x2B
	Opcode_SWR    Opcode = 0x2E
)

// Returns the mnemonic of the opcode
func (op Opcode) String() string {
	return Opcodes.format(op)
}

// Contains the mnemonic and encoding format of every implemented opcode
type OpcodesDescriptor struct {
	MnemonicTable[Opcode]
	formats map[Opcode]Format
}

// An entry of the opcodes table
type OpcodeEntry struct {
	Mnemonic string
	Format   Format
}

// Initializes an opcodes descriptor with all the given opcode -> (mnemonic, format) entries
func NewOpcodesDescriptor(entries map[Opcode]OpcodeEntry) OpcodesDescriptor {
	mnemonics := make(map[Opcode]string, len(entries))
	formats := make(map[Opcode]Format, len(entries))

	for opcode, entry := range entries {
		mnemonics[opcode] = entry.Mnemonic
		formats[opcode] = entry.Format
	}

	return OpcodesDescriptor{
		MnemonicTable: NewMnemonicTable(OpcodeField, ErrUnrecognizedOpcode, mnemonics),
		formats:       formats,
	}
}

// Returns the encoding format of the instructions with the given opcode
func (d *OpcodesDescriptor) Format(op Opcode) (Format, error) {
	if format, ok := d.formats[op]; ok {
		return format, nil
	}

	return 0, utils.MakeError(ErrUnrecognizedOpcode, "%v (%v)", utils.FormatUintHex(uint64(op), utils.HexDigits(OpcodeField.Width)), OpcodeField)
}

// Returns all opcodes of the given format in ascending order
func (d *OpcodesDescriptor) OfFormat(format Format) []Opcode {
	return utils.Filter(d.Codes(), func(op Opcode) bool {
		return d.formats[op] == format
	})
}

var Opcodes OpcodesDescriptor = NewOpcodesDescriptor(
	map[Opcode]OpcodeEntry{
		Opcode_SPECIAL: {"SPECIAL", Format_Register},
		Opcode_REGIMM:  {"REGIMM", Format_Immediate},
		Opcode_J:       {"J", Format_Jump},
		Opcode_JAL:     {"JAL", Format_Jump},
		Opcode_BEQ:     {"BEQ", Format_Immediate},
		Opcode_BNE:     {"BNE", Format_Immediate},
		Opcode_BLEZ:    {"BLEZ", Format_Immediate},
		Opcode_BGTZ:    {"BGTZ", Format_Immediate},
		Opcode_ADDI:    {"ADDI", Format_Immediate},
		Opcode_ADDIU:   {"ADDIU", Format_Immediate},
		Opcode_SLTI:    {"SLTI", Format_Immediate},
		Opcode_SLTIU:   {"SLTIU", Format_Immediate},
		Opcode_ANDI:    {"ANDI", Format_Immediate},
		Opcode_ORI:     {"ORI", Format_Immediate},
		Opcode_XORI:    {"XORI", Format_Immediate},
		Opcode_LUI:     {"LUI", Format_Immediate},
		Opcode_LB:      {"LB", Format_Immediate},
		Opcode_LH:      {"LH", Format_Immediate},
		Opcode_LWL:     {"LWL", Format_Immediate},
		Opcode_LW:      {"LW", Format_Immediate},
		Opcode_LBU:     {"LBU", Format_Immediate},
		Opcode_LHU:     {"LHU", Format_Immediate},
		Opcode_LWR:     {"LWR", Format_Immediate},
		Opcode_SB:      {"SB", Format_Immediate},
		Opcode_SH:      {"SH", Format_Immediate},
		Opcode_SWL:     {"SWL", Format_Immediate},
		Opcode_SW:      {"SW", Format_Immediate},
		Opcode_SWR:     {"SWR", Format_Immediate},
	},
)
