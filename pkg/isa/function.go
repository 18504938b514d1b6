package isa

// Represents the function code of a SPECIAL (register format) instruction (bits [5:0])
type Function uint8

const (
	Function_SLL     Function = 0x00
	Function_SRL     Function = 0x02
	Function_SRA     Function = 0x03
	Function_SLLV    Function = 0x04
	Function_SRLV    Function = 0x06
	Function_SRAV    Function = 0x07
	Function_JR      Function = 0x08
	Function_JALR    Function = 0x09
	Function_SLT     Function = 0x0A
	Function_SYSCALL Function = 0x0C
	Function_BREAK   Function = 0x0D
	Function_MFHI    Function = 0x10
	Function_MTHI    Function = 0x11
	Function_MFLO    Function = 0x12
	Function_MTLO    Function = 0x13
	Function_MULT    Function = 0x18
	Function_MULTU   Function = 0x19
	Function_DIV     Function = 0x1A
	Function_DIVU    Function = 0x1B
	Function_ADD     Function = 0x20
	Function_ADDU    Function = 0x21
	Function_SUB     Function = 0x22
	Function_SUBU    Function = 0x23
	Function_AND     Function = 0x24
	Function_OR      Function = 0x25
	Function_XOR     Function = 0x26
	Function_NOR     Function = 0x27
	Function_SLTU    Function = 0x2B
)

// Returns the mnemonic of the function
func (f Function) String() string {
	return Functions.format(f)
}

var Functions MnemonicTable[Function] = NewMnemonicTable(
	FunctionField,
	ErrUnrecognizedFunction,
	map[Function]string{
		Function_SLL:     "SLL",
		Function_SRL:     "SRL",
		Function_SRA:     "SRA",
		Function_SLLV:    "SLLV",
		Function_SRLV:    "SRLV",
		Function_SRAV:    "SRAV",
		Function_JR:      "JR",
		Function_JALR:    "JALR",
		Function_SLT:     "SLT",
		Function_SYSCALL: "SYSCALL",
		Function_BREAK:   "BREAK",
		Function_MFHI:    "MFHI",
		Function_MTHI:    "MTHI",
		Function_MFLO:    "MFLO",
		Function_MTLO:    "MTLO",
		Function_MULT:    "MULT",
		Function_MULTU:   "MULTU",
		Function_DIV:     "DIV",
		Function_DIVU:    "DIVU",
		Function_ADD:     "ADD",
		Function_ADDU:    "ADDU",
		Function_SUB:     "SUB",
		Function_SUBU:    "SUBU",
		Function_AND:     "AND",
		Function_OR:      "OR",
		Function_XOR:     "XOR",
		Function_NOR:     "NOR",
		Function_SLTU:    "SLTU",
	},
)
