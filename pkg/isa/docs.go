package isa

import (
	"fmt"
	"strings"

	"github.com/Manu343726/mipsdis/pkg/utils"
)

// Returns an ASCII frame showing the bit layout of an instruction format
//
// Frame fields must be sorted by position, hence the reversal of the MSB first field list
func (f Format) Layout(leftpad int) (string, error) {
	fields := utils.Map(utils.Reversed(f.Fields()), func(field FieldDescriptor) utils.AsciiFrameField {
		return utils.AsciiFrameField{
			Name:  field.Name,
			Begin: field.Position,
			Width: field.Width,
		}
	})

	return utils.AsciiFrame(fields, InstructionBits, "bits", utils.AsciiFrameUnitLayout_RightToLeft, leftpad)
}

// Dumps the documentation of a mnemonic table as a list of (code, binary, mnemonic) lines
func writeTable[Code ~uint8](builder *strings.Builder, table *MnemonicTable[Code], leftpad string, describe func(Code) string) {
	for _, code := range table.Codes() {
		builder.WriteString(fmt.Sprintf("%v - %v %v  %v\n",
			leftpad,
			utils.FormatUintHex(uint64(code), utils.HexDigits(table.Field().Width)),
			utils.FormatUintBinary(uint64(code), table.Field().Width),
			describe(code)))
	}
}

// Dumps the instruction set documentation as one big multiline string
func Documentation(leftpad int) string {
	leftpad_str := strings.Repeat(" ", leftpad)

	var builder strings.Builder

	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("instruction encoding length (bits): %v\n", InstructionBits))
	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("total supported opcodes: %v\n", Opcodes.Len()))
	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("total supported SPECIAL functions: %v\n", Functions.Len()))
	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("total supported REGIMM branch conditions: %v\n\n", BranchConditions.Len()))

	builder.WriteString(leftpad_str)
	builder.WriteString("Formats:\n\n")

	for _, format := range []Format{Format_Register, Format_Immediate, Format_Jump} {
		builder.WriteString(leftpad_str)
		builder.WriteString(fmt.Sprintf("  %v:\n\n", format))

		layout, err := format.Layout(leftpad + 4)
		if err != nil {
			panic(fmt.Errorf("error generating documentation for %v format: %w", format, err))
		}

		builder.WriteString(layout)
		builder.WriteString("\n")

		for _, field := range format.Fields() {
			builder.WriteString(leftpad_str)
			builder.WriteString(fmt.Sprintf("    %v: %v\n", field, field.Description))
		}

		builder.WriteString("\n")
	}

	builder.WriteString(leftpad_str)
	builder.WriteString("Opcodes:\n\n")
	writeTable(&builder, &Opcodes.MnemonicTable, leftpad_str, func(op Opcode) string {
		format, _ := Opcodes.Format(op)
		form := "-"
		if f, ok := opcodeForms[op]; ok {
			form = f.String()
		}
		return fmt.Sprintf("%-8v %-10v %v", op, format, form)
	})

	builder.WriteString("\n")
	builder.WriteString(leftpad_str)
	builder.WriteString("SPECIAL functions:\n\n")
	writeTable(&builder, &Functions, leftpad_str, func(function Function) string {
		return fmt.Sprintf("%-8v %v", function, functionForms[function])
	})

	builder.WriteString("\n")
	builder.WriteString(leftpad_str)
	builder.WriteString("REGIMM branch conditions (rt field):\n\n")
	writeTable(&builder, &BranchConditions, leftpad_str, func(condition BranchCondition) string {
		return condition.String()
	})

	return builder.String()
}

// Like Documentation(), but with zero leftpad
func DocString() string {
	return Documentation(0)
}

// Generates an ASCII frame representation of a decoded instruction word, showing the value of every field
// followed by the rendered assembly
func Explain(word uint32) (string, error) {
	instruction, err := Decode(word)
	if err != nil {
		return "", err
	}

	fields := utils.Map(utils.Reversed(instruction.Fields()), func(value FieldValue) utils.AsciiFrameField {
		return utils.AsciiFrameField{
			Name:  fmt.Sprintf("%v=%v", value.Field.Name, utils.FormatUintBinary(uint64(value.Value), value.Field.Width)),
			Begin: value.Field.Position,
			Width: value.Field.Width,
		}
	})

	frame, err := utils.AsciiFrame(fields, InstructionBits, "bits", utils.AsciiFrameUnitLayout_RightToLeft, 0)
	if err != nil {
		return "", err
	}

	text, err := Render(instruction)
	if err != nil {
		return "", err
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("%v (%v format)\n\n", utils.FormatUintHex(uint64(word), 8), instruction.Format()))
	builder.WriteString(frame)
	builder.WriteString("\n")

	for _, value := range instruction.Fields() {
		builder.WriteString(fmt.Sprintf("  %-10v %v\n", value.Field.Name, describeField(instruction, value)))
	}

	builder.WriteString("\n")
	builder.WriteString(text)

	return builder.String(), nil
}

func describeField(instruction Instruction, value FieldValue) string {
	hex := utils.FormatUintHex(uint64(value.Value), utils.HexDigits(value.Field.Width))

	switch value.Field {
	case OpcodeField:
		return fmt.Sprintf("%v (%v)", hex, Opcode(value.Value))
	case FunctionField:
		return fmt.Sprintf("%v (%v)", hex, Function(value.Value))
	case SourceField, DestinationField:
		return fmt.Sprintf("%v (%v)", hex, Register(value.Value))
	case TargetField:
		if immediate, ok := instruction.(ImmediateInstruction); ok {
			if condition, err := immediate.BranchCondition(); err == nil {
				return fmt.Sprintf("%v (%v, branch condition %v)", hex, Register(value.Value), condition)
			}
		}
		return fmt.Sprintf("%v (%v)", hex, Register(value.Value))
	case ImmediateField:
		return fmt.Sprintf("%v (%d)", hex, int16(uint16(value.Value)))
	}

	return fmt.Sprintf("%v (%d)", hex, value.Value)
}
