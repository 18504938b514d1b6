package isa

import "github.com/Manu343726/mipsdis/pkg/utils"

// Decodes an instruction word
//
// The opcode selects the encoding format. SPECIAL instructions additionally require a known function code.
// Returns a *DecodeError wrapping ErrUnrecognizedOpcode or ErrUnrecognizedFunction if the word does not
// encode any implemented instruction.
func Decode(word uint32) (Instruction, error) {
	opcode := Opcode(OpcodeField.Read(word))

	format, err := Opcodes.Format(opcode)
	if err != nil {
		return nil, newDecodeError(ErrUnrecognizedOpcode, OpcodeField, word)
	}

	switch format {
	case Format_Register:
		function := Function(FunctionField.Read(word))
		if !Functions.Has(function) {
			return nil, newDecodeError(ErrUnrecognizedFunction, FunctionField, word)
		}

		return RegisterInstruction{
			opcode:      opcode,
			source:      Register(SourceField.Read(word)),
			target:      Register(TargetField.Read(word)),
			destination: Register(DestinationField.Read(word)),
			shiftAmount: uint8(ShiftAmountField.Read(word)),
			function:    function,
		}, nil
	case Format_Immediate:
		return ImmediateInstruction{
			opcode:    opcode,
			source:    Register(SourceField.Read(word)),
			target:    Register(TargetField.Read(word)),
			immediate: int16(utils.SignExtend(uint64(ImmediateField.Read(word)), ImmediateField.Width)),
		}, nil
	case Format_Jump:
		return JumpInstruction{
			opcode: opcode,
			target: JumpTargetField.Read(word),
		}, nil
	}

	return nil, newDecodeError(ErrUnrecognizedOpcode, OpcodeField, word)
}

// Decodes and renders an instruction word
func Disassemble(word uint32) (string, error) {
	instruction, err := Decode(word)
	if err != nil {
		return "", err
	}

	return Render(instruction)
}
