// Package isa implements decoding and rendering of 32-bit MIPS machine code words.
//
// Every instruction word is classified by its opcode field (bits [31:26]) into one of
// three encoding formats:
//   - Register (R) format, selected by the SPECIAL opcode. The specific operation is
//     given by the function field (bits [5:0])
//   - Immediate (I) format: two registers and a signed 16 bit immediate
//   - Jump (J) format: a 26 bit unsigned jump target
//
// Opcodes, function codes and REGIMM branch conditions live in separate mnemonic
// tables with separate Go types, since their numeric spaces overlap (SW and SLTU are
// both 0x2B, for example).
//
// Usage:
//
//	instr, err := isa.Decode(0x00853020)
//	if err != nil { ... }
//	text, err := isa.Render(instr) // "ADD $4, $5, $6"
//
// Decoding and rendering are pure functions and safe for concurrent use.
package isa
