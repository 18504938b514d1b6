package isa

// Packs a list of field values into an instruction word
func encodeFields(fields []FieldValue) uint32 {
	var word uint32

	for _, field := range fields {
		field.Field.Write(&word, field.Value)
	}

	return word
}

func (i RegisterInstruction) Encode() uint32 {
	return encodeFields(i.Fields())
}

func (i ImmediateInstruction) Encode() uint32 {
	return encodeFields(i.Fields())
}

func (i JumpInstruction) Encode() uint32 {
	return encodeFields(i.Fields())
}

// Builds and encodes a SPECIAL instruction given its function mnemonic. Panics if the mnemonic is not valid
func MustEncodeRegister(function string, rs, rt, rd Register, shamt uint8) uint32 {
	code, err := Functions.Parse(function)
	if err != nil {
		panic(err)
	}

	return NewRegisterInstruction(Opcode_SPECIAL, rs, rt, rd, shamt, code).Encode()
}

// Builds and encodes an immediate format instruction given its opcode mnemonic. Panics if the mnemonic is not valid
// or does not name an immediate format opcode
func MustEncodeImmediate(opcode string, rs, rt Register, immediate int16) uint32 {
	code := mustParseOpcode(opcode, Format_Immediate)
	return NewImmediateInstruction(code, rs, rt, immediate).Encode()
}

// Builds and encodes a jump instruction given its opcode mnemonic. Panics if the mnemonic is not valid
// or does not name a jump format opcode
func MustEncodeJump(opcode string, target uint32) uint32 {
	code := mustParseOpcode(opcode, Format_Jump)
	return NewJumpInstruction(code, target).Encode()
}

func mustParseOpcode(mnemonic string, expected Format) Opcode {
	code, err := Opcodes.Parse(mnemonic)
	if err != nil {
		panic(err)
	}

	if format, _ := Opcodes.Format(code); format != expected {
		panic("opcode " + mnemonic + " is not a " + expected.String() + " format opcode")
	}

	return code
}
