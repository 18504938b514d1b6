package isa

import (
	"fmt"

	"github.com/Manu343726/mipsdis/pkg/utils"
)

// Stores a fully decoded instruction
//
// The set of implementations is closed: RegisterInstruction, ImmediateInstruction and JumpInstruction.
type Instruction interface {
	fmt.Stringer

	// Returns the encoding format of the instruction
	Format() Format
	// Returns the primary opcode of the instruction
	Opcode() Opcode
	// Returns the instruction word encoding this instruction
	Encode() uint32
	// Returns the values of all the instruction fields, from most to least significant
	Fields() []FieldValue

	isInstruction()
}

// Register format (R) instruction. Opcode is always SPECIAL, the operation is given by the function code
type RegisterInstruction struct {
	opcode      Opcode
	source      Register
	target      Register
	destination Register
	shiftAmount uint8
	function    Function
}

// Builds a register instruction. Values are truncated to the width of their fields
func NewRegisterInstruction(opcode Opcode, rs, rt, rd Register, shamt uint8, function Function) RegisterInstruction {
	return RegisterInstruction{
		opcode:      Opcode(truncate(OpcodeField, uint32(opcode))),
		source:      Register(truncate(SourceField, uint32(rs))),
		target:      Register(truncate(TargetField, uint32(rt))),
		destination: Register(truncate(DestinationField, uint32(rd))),
		shiftAmount: uint8(truncate(ShiftAmountField, uint32(shamt))),
		function:    Function(truncate(FunctionField, uint32(function))),
	}
}

func (RegisterInstruction) isInstruction() {}

func (RegisterInstruction) Format() Format {
	return Format_Register
}

func (i RegisterInstruction) Opcode() Opcode {
	return i.opcode
}

func (i RegisterInstruction) Source() Register {
	return i.source
}

func (i RegisterInstruction) Target() Register {
	return i.target
}

func (i RegisterInstruction) Destination() Register {
	return i.destination
}

func (i RegisterInstruction) ShiftAmount() uint8 {
	return i.shiftAmount
}

func (i RegisterInstruction) Function() Function {
	return i.function
}

func (i RegisterInstruction) Fields() []FieldValue {
	return []FieldValue{
		{OpcodeField, uint32(i.opcode)},
		{SourceField, uint32(i.source)},
		{TargetField, uint32(i.target)},
		{DestinationField, uint32(i.destination)},
		{ShiftAmountField, uint32(i.shiftAmount)},
		{FunctionField, uint32(i.function)},
	}
}

func (i RegisterInstruction) String() string {
	return renderOrPlaceholder(i)
}

// Immediate format (I) instruction
type ImmediateInstruction struct {
	opcode    Opcode
	source    Register
	target    Register
	immediate int16
}

// Builds an immediate instruction. Register indices are truncated to the width of their fields
func NewImmediateInstruction(opcode Opcode, rs, rt Register, immediate int16) ImmediateInstruction {
	return ImmediateInstruction{
		opcode:    Opcode(truncate(OpcodeField, uint32(opcode))),
		source:    Register(truncate(SourceField, uint32(rs))),
		target:    Register(truncate(TargetField, uint32(rt))),
		immediate: immediate,
	}
}

func (ImmediateInstruction) isInstruction() {}

func (ImmediateInstruction) Format() Format {
	return Format_Immediate
}

func (i ImmediateInstruction) Opcode() Opcode {
	return i.opcode
}

func (i ImmediateInstruction) Source() Register {
	return i.source
}

func (i ImmediateInstruction) Target() Register {
	return i.target
}

// Returns the sign extended immediate value
func (i ImmediateInstruction) Immediate() int16 {
	return i.immediate
}

// Returns the branch condition selected by the rt field of a REGIMM instruction
func (i ImmediateInstruction) BranchCondition() (BranchCondition, error) {
	if i.opcode != Opcode_REGIMM {
		return 0, utils.MakeError(ErrUnrecognizedBranchCondition, "%v is not a REGIMM instruction", i.opcode)
	}

	condition := BranchCondition(i.target)
	if _, err := BranchConditions.Mnemonic(condition); err != nil {
		return 0, err
	}

	return condition, nil
}

func (i ImmediateInstruction) Fields() []FieldValue {
	return []FieldValue{
		{OpcodeField, uint32(i.opcode)},
		{SourceField, uint32(i.source)},
		{TargetField, uint32(i.target)},
		{ImmediateField, uint32(uint16(i.immediate))},
	}
}

func (i ImmediateInstruction) String() string {
	return renderOrPlaceholder(i)
}

// Jump format (J) instruction
type JumpInstruction struct {
	opcode Opcode
	target uint32
}

// Builds a jump instruction. The target is truncated to 26 bits
func NewJumpInstruction(opcode Opcode, target uint32) JumpInstruction {
	return JumpInstruction{
		opcode: Opcode(truncate(OpcodeField, uint32(opcode))),
		target: truncate(JumpTargetField, target),
	}
}

func (JumpInstruction) isInstruction() {}

func (JumpInstruction) Format() Format {
	return Format_Jump
}

func (i JumpInstruction) Opcode() Opcode {
	return i.opcode
}

// Returns the zero extended 26 bit jump target
func (i JumpInstruction) Target() uint32 {
	return i.target
}

func (i JumpInstruction) Fields() []FieldValue {
	return []FieldValue{
		{OpcodeField, uint32(i.opcode)},
		{JumpTargetField, i.target},
	}
}

func (i JumpInstruction) String() string {
	return renderOrPlaceholder(i)
}

func truncate(field FieldDescriptor, value uint32) uint32 {
	return value & utils.AllOnes[uint32](field.Width)
}

func renderOrPlaceholder(i Instruction) string {
	text, err := Render(i)
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}

	return text
}
