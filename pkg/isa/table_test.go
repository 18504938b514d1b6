package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpcodeAndFunctionTablesAreSeparate(t *testing.T) {
	opcode, err := Opcodes.Mnemonic(0x2B)
	require.NoError(t, err)
	assert.Equal(t, "SW", opcode)

	function, err := Functions.Mnemonic(0x2B)
	require.NoError(t, err)
	assert.Equal(t, "SLTU", function)
}

func TestTableSizes(t *testing.T) {
	assert.Equal(t, 28, Opcodes.Len())
	assert.Equal(t, 28, Functions.Len())
	assert.Equal(t, 4, BranchConditions.Len())
}

func TestMnemonicLookup(t *testing.T) {
	tests := []struct {
		code     Opcode
		mnemonic string
	}{
		{Opcode_SPECIAL, "SPECIAL"},
		{Opcode_REGIMM, "REGIMM"},
		{Opcode_J, "J"},
		{Opcode_ADDI, "ADDI"},
		{Opcode_LUI, "LUI"},
		{Opcode_SWR, "SWR"},
	}

	for _, test := range tests {
		t.Run(test.mnemonic, func(t *testing.T) {
			mnemonic, err := Opcodes.Mnemonic(test.code)
			require.NoError(t, err)
			assert.Equal(t, test.mnemonic, mnemonic)
			assert.Equal(t, test.mnemonic, test.code.String())

			code, err := Opcodes.Parse(test.mnemonic)
			require.NoError(t, err)
			assert.Equal(t, test.code, code)
		})
	}
}

func TestParseIsCaseInsensitive(t *testing.T) {
	code, err := Functions.Parse("sltu")
	require.NoError(t, err)
	assert.Equal(t, Function_SLTU, code)

	condition, err := BranchConditions.Parse("bgezal")
	require.NoError(t, err)
	assert.Equal(t, BranchCondition_BGEZAL, condition)
}

func TestParseUnknownMnemonic(t *testing.T) {
	_, err := Opcodes.Parse("FOO")
	assert.ErrorIs(t, err, ErrUnrecognizedMnemonic)

	// Function mnemonics are not opcodes
	_, err = Opcodes.Parse("ADD")
	assert.ErrorIs(t, err, ErrUnrecognizedMnemonic)
}

func TestUnknownCodes(t *testing.T) {
	_, err := Opcodes.Mnemonic(0x3F)
	assert.ErrorIs(t, err, ErrUnrecognizedOpcode)

	_, err = Functions.Mnemonic(0x01)
	assert.ErrorIs(t, err, ErrUnrecognizedFunction)

	_, err = BranchConditions.Mnemonic(0x02)
	assert.ErrorIs(t, err, ErrUnrecognizedBranchCondition)

	_, err = Opcodes.Format(0x3F)
	assert.ErrorIs(t, err, ErrUnrecognizedOpcode)

	assert.Equal(t, "opcode(0x3f)", Opcode(0x3F).String())
	assert.Equal(t, "funct(0x01)", Function(0x01).String())
}

func TestCodesAreSorted(t *testing.T) {
	codes := Functions.Codes()
	require.Len(t, codes, Functions.Len())

	for i := 1; i < len(codes); i++ {
		assert.Less(t, uint8(codes[i-1]), uint8(codes[i]))
	}
}

func TestOpcodeFormats(t *testing.T) {
	assert.Equal(t, []Opcode{Opcode_SPECIAL}, Opcodes.OfFormat(Format_Register))
	assert.Equal(t, []Opcode{Opcode_J, Opcode_JAL}, Opcodes.OfFormat(Format_Jump))
	assert.Len(t, Opcodes.OfFormat(Format_Immediate), 25)
}

func TestNewMnemonicTablePanicsOnInconsistentEntries(t *testing.T) {
	assert.Panics(t, func() {
		NewMnemonicTable(FunctionField, ErrUnrecognizedFunction, map[Function]string{0x01: "FOO", 0x02: "FOO"})
	})

	assert.Panics(t, func() {
		NewMnemonicTable(FunctionField, ErrUnrecognizedFunction, map[Function]string{0x40: "FOO"})
	})
}
