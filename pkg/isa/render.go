package isa

import (
	"fmt"

	"github.com/Manu343726/mipsdis/pkg/utils"
)

// Operand layout used to render an instruction as assembly
type RenderForm uint8

const (
	// MN $rs, $rt, $rd
	RenderForm_ThreeRegisters RenderForm = iota
	// MN $rd, $rt, shamt
	RenderForm_Shift
	// MN $rs, $rt
	RenderForm_TwoSources
	// MN $rs
	RenderForm_Source
	// MN $rd
	RenderForm_Destination
	// MN $rd, $rs
	RenderForm_DestinationSource
	// MN
	RenderForm_NoOperands
	// MN $rs, $rt, imm
	RenderForm_TwoRegistersImmediate
	// MN $rt, imm
	RenderForm_TargetImmediate
	// MN $rs, imm
	RenderForm_SourceImmediate
	// MN $rt, imm($rs)
	RenderForm_Memory
	// MN 0xTTTTTTT
	RenderForm_JumpTarget
)

func (f RenderForm) String() string {
	switch f {
	case RenderForm_ThreeRegisters:
		return "MN $rs, $rt, $rd"
	case RenderForm_Shift:
		return "MN $rd, $rt, shamt"
	case RenderForm_TwoSources:
		return "MN $rs, $rt"
	case RenderForm_Source:
		return "MN $rs"
	case RenderForm_Destination:
		return "MN $rd"
	case RenderForm_DestinationSource:
		return "MN $rd, $rs"
	case RenderForm_NoOperands:
		return "MN"
	case RenderForm_TwoRegistersImmediate:
		return "MN $rs, $rt, imm"
	case RenderForm_TargetImmediate:
		return "MN $rt, imm"
	case RenderForm_SourceImmediate:
		return "MN $rs, imm"
	case RenderForm_Memory:
		return "MN $rt, imm($rs)"
	case RenderForm_JumpTarget:
		return "MN target"
	}

	return fmt.Sprintf("form(%d)", uint8(f))
}

var functionForms = map[Function]RenderForm{
	Function_ADD:     RenderForm_ThreeRegisters,
	Function_ADDU:    RenderForm_ThreeRegisters,
	Function_AND:     RenderForm_ThreeRegisters,
	Function_NOR:     RenderForm_ThreeRegisters,
	Function_OR:      RenderForm_ThreeRegisters,
	Function_SLT:     RenderForm_ThreeRegisters,
	Function_SLTU:    RenderForm_ThreeRegisters,
	Function_SUB:     RenderForm_ThreeRegisters,
	Function_SUBU:    RenderForm_ThreeRegisters,
	Function_XOR:     RenderForm_ThreeRegisters,
	Function_SLLV:    RenderForm_ThreeRegisters,
	Function_SRLV:    RenderForm_ThreeRegisters,
	Function_SRAV:    RenderForm_ThreeRegisters,
	Function_SLL:     RenderForm_Shift,
	Function_SRL:     RenderForm_Shift,
	Function_SRA:     RenderForm_Shift,
	Function_MULT:    RenderForm_TwoSources,
	Function_MULTU:   RenderForm_TwoSources,
	Function_DIV:     RenderForm_TwoSources,
	Function_DIVU:    RenderForm_TwoSources,
	Function_JR:      RenderForm_Source,
	Function_MTHI:    RenderForm_Source,
	Function_MTLO:    RenderForm_Source,
	Function_MFHI:    RenderForm_Destination,
	Function_MFLO:    RenderForm_Destination,
	Function_JALR:    RenderForm_DestinationSource,
	Function_SYSCALL: RenderForm_NoOperands,
	Function_BREAK:   RenderForm_NoOperands,
}

var opcodeForms = map[Opcode]RenderForm{
	Opcode_ADDI:   RenderForm_TwoRegistersImmediate,
	Opcode_ADDIU:  RenderForm_TwoRegistersImmediate,
	Opcode_ANDI:   RenderForm_TwoRegistersImmediate,
	Opcode_ORI:    RenderForm_TwoRegistersImmediate,
	Opcode_XORI:   RenderForm_TwoRegistersImmediate,
	Opcode_SLTI:   RenderForm_TwoRegistersImmediate,
	Opcode_SLTIU:  RenderForm_TwoRegistersImmediate,
	Opcode_BEQ:    RenderForm_TwoRegistersImmediate,
	Opcode_BNE:    RenderForm_TwoRegistersImmediate,
	Opcode_REGIMM: RenderForm_TwoRegistersImmediate,
	Opcode_LUI:    RenderForm_TargetImmediate,
	Opcode_BLEZ:   RenderForm_SourceImmediate,
	Opcode_BGTZ:   RenderForm_SourceImmediate,
	Opcode_LB:     RenderForm_Memory,
	Opcode_LBU:    RenderForm_Memory,
	Opcode_LH:     RenderForm_Memory,
	Opcode_LHU:    RenderForm_Memory,
	Opcode_LW:     RenderForm_Memory,
	Opcode_LWL:    RenderForm_Memory,
	Opcode_LWR:    RenderForm_Memory,
	Opcode_SB:     RenderForm_Memory,
	Opcode_SH:     RenderForm_Memory,
	Opcode_SW:     RenderForm_Memory,
	Opcode_SWL:    RenderForm_Memory,
	Opcode_SWR:    RenderForm_Memory,
	Opcode_J:      RenderForm_JumpTarget,
	Opcode_JAL:    RenderForm_JumpTarget,
}

// Returns the operand layout used to render the instruction
func FormOf(instruction Instruction) (RenderForm, error) {
	switch i := instruction.(type) {
	case RegisterInstruction:
		if i.opcode != Opcode_SPECIAL {
			return 0, utils.MakeError(ErrUnsupportedRenderForm, "register format instruction with opcode %v", i.opcode)
		}

		if form, ok := functionForms[i.function]; ok {
			return form, nil
		}

		return 0, utils.MakeError(ErrUnsupportedRenderForm, "no render form for function %v", i.function)
	case ImmediateInstruction, JumpInstruction:
		form, ok := opcodeForms[i.Opcode()]
		if !ok {
			return 0, utils.MakeError(ErrUnsupportedRenderForm, "no render form for opcode %v", i.Opcode())
		}

		if (form == RenderForm_JumpTarget) != (i.Format() == Format_Jump) {
			return 0, utils.MakeError(ErrUnsupportedRenderForm, "%v format instruction with opcode %v", i.Format(), i.Opcode())
		}

		return form, nil
	case nil:
		return 0, utils.MakeError(ErrUnsupportedRenderForm, "nil instruction")
	}

	return 0, utils.MakeError(ErrUnsupportedRenderForm, "unknown instruction type %T", instruction)
}

// Renders an instruction as assembly text
//
// Registers are written as $N, immediates as signed decimal values and jump targets as 7 digit hex values.
func Render(instruction Instruction) (string, error) {
	form, err := FormOf(instruction)
	if err != nil {
		return "", err
	}

	switch i := instruction.(type) {
	case RegisterInstruction:
		mnemonic := i.function.String()

		switch form {
		case RenderForm_ThreeRegisters:
			return fmt.Sprintf("%v %v, %v, %v", mnemonic, i.source, i.target, i.destination), nil
		case RenderForm_Shift:
			return fmt.Sprintf("%v %v, %v, %v", mnemonic, i.destination, i.target, i.shiftAmount), nil
		case RenderForm_TwoSources:
			return fmt.Sprintf("%v %v, %v", mnemonic, i.source, i.target), nil
		case RenderForm_Source:
			return fmt.Sprintf("%v %v", mnemonic, i.source), nil
		case RenderForm_Destination:
			return fmt.Sprintf("%v %v", mnemonic, i.destination), nil
		case RenderForm_DestinationSource:
			return fmt.Sprintf("%v %v, %v", mnemonic, i.destination, i.source), nil
		case RenderForm_NoOperands:
			return mnemonic, nil
		}
	case ImmediateInstruction:
		mnemonic := i.opcode.String()

		switch form {
		case RenderForm_TwoRegistersImmediate:
			return fmt.Sprintf("%v %v, %v, %d", mnemonic, i.source, i.target, i.immediate), nil
		case RenderForm_TargetImmediate:
			return fmt.Sprintf("%v %v, %d", mnemonic, i.target, i.immediate), nil
		case RenderForm_SourceImmediate:
			return fmt.Sprintf("%v %v, %d", mnemonic, i.source, i.immediate), nil
		case RenderForm_Memory:
			return fmt.Sprintf("%v %v, %d(%v)", mnemonic, i.target, i.immediate, i.source), nil
		}
	case JumpInstruction:
		return fmt.Sprintf("%v %v", i.opcode, utils.FormatUintHex(uint64(i.target), utils.HexDigits(JumpTargetField.Width))), nil
	}

	return "", utils.MakeError(ErrUnsupportedRenderForm, "%v form cannot render %v format instructions", form, instruction.Format())
}
