package isa

import (
	"fmt"

	"github.com/Manu343726/mipsdis/pkg/utils"
)

// Number of bits of an instruction word
const InstructionBits = 32

// Number of bytes of an instruction word
const InstructionBytes = InstructionBits / utils.BitsPerByte

// Describes the location of a bitfield within an instruction word
type FieldDescriptor struct {
	// Short name of the field, as used in assembly manuals
	Name string
	// Least significant bit of the field
	Position int
	// Number of bits of the field
	Width int
	// Field description (for documentation)
	Description string
}

var (
	OpcodeField      = FieldDescriptor{Name: "opcode", Position: 26, Width: 6, Description: "operation code"}
	SourceField      = FieldDescriptor{Name: "rs", Position: 21, Width: 5, Description: "source register"}
	TargetField      = FieldDescriptor{Name: "rt", Position: 16, Width: 5, Description: "target register"}
	DestinationField = FieldDescriptor{Name: "rd", Position: 11, Width: 5, Description: "destination register"}
	ShiftAmountField = FieldDescriptor{Name: "shamt", Position: 6, Width: 5, Description: "shift amount"}
	FunctionField    = FieldDescriptor{Name: "funct", Position: 0, Width: 6, Description: "function code of SPECIAL instructions"}
	ImmediateField   = FieldDescriptor{Name: "immediate", Position: 0, Width: 16, Description: "signed 16 bit immediate"}
	JumpTargetField  = FieldDescriptor{Name: "target", Position: 0, Width: 26, Description: "unsigned 26 bit jump target"}
)

// Returns the most significant bit of the field
func (f FieldDescriptor) MostSignificantBit() int {
	return f.Position + f.Width - 1
}

// Extracts the field value from an instruction word
func (f FieldDescriptor) Read(word uint32) uint32 {
	return utils.CreateBitView(&word).Read(f.Position, f.Width)
}

// Stores a value into the field bits of an instruction word. Value bits not fitting the field are ignored
func (f FieldDescriptor) Write(word *uint32, value uint32) {
	utils.CreateBitView(word).Write(value, f.Position, f.Width)
}

func (f FieldDescriptor) String() string {
	return fmt.Sprintf("%v, bits [%v:%v]", f.Name, f.MostSignificantBit(), f.Position)
}

// Stores the value of a field of a decoded instruction
type FieldValue struct {
	Field FieldDescriptor
	Value uint32
}

func (v FieldValue) String() string {
	return fmt.Sprintf("%v=%v", v.Field.Name, v.Value)
}

// Index of a general purpose register
type Register uint8

func (r Register) String() string {
	return fmt.Sprintf("$%d", uint8(r))
}

// Represents an instruction encoding format
type Format uint8

const (
	Format_Register Format = iota
	Format_Immediate
	Format_Jump
)

func (f Format) String() string {
	switch f {
	case Format_Register:
		return "register"
	case Format_Immediate:
		return "immediate"
	case Format_Jump:
		return "jump"
	}

	return fmt.Sprintf("format(%d)", uint8(f))
}

// Returns the fields encoded by instructions of this format, from most to least significant
func (f Format) Fields() []FieldDescriptor {
	switch f {
	case Format_Register:
		return []FieldDescriptor{OpcodeField, SourceField, TargetField, DestinationField, ShiftAmountField, FunctionField}
	case Format_Immediate:
		return []FieldDescriptor{OpcodeField, SourceField, TargetField, ImmediateField}
	case Format_Jump:
		return []FieldDescriptor{OpcodeField, JumpTargetField}
	}

	return nil
}
