package cpu

import (
	"fmt"
)

// Operation is an enumeration of the documented 6502 instructions.
type Operation int

const (
	OP_UNIMPLEMENTED Operation = iota // Zero value, never emitted by Decode.
	ADC
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA
	OP_MAX // End of operation enumerations.
)

var opNames = [...]string{
	"???",
	"ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI",
	"BNE", "BPL", "BRK", "BVC", "BVS", "CLC", "CLD", "CLI",
	"CLV", "CMP", "CPX", "CPY", "DEC", "DEX", "DEY", "EOR",
	"INC", "INX", "INY", "JMP", "JSR", "LDA", "LDX", "LDY",
	"LSR", "NOP", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA",
	"STX", "STY", "TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
}

// String returns the mnemonic.
func (o Operation) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("Operation(%d)", int(o))
	}
	return opNames[o]
}

type opcode struct {
	op    Operation
	shape shape
}

// Opcode matrix taken from:
// http://obelisk.me.uk/6502/reference.html
//
// Only the documented opcodes are present. Any entry left at the zero value
// is undefined and decodes as UnknownOpcode.
var opcodes = [256]opcode{
	0x00: {BRK, kSHAPE_IMPLIED},
	0x01: {ORA, kSHAPE_INDIRECTX},
	0x05: {ORA, kSHAPE_ZP},
	0x06: {ASL, kSHAPE_ZP},
	0x08: {PHP, kSHAPE_IMPLIED},
	0x09: {ORA, kSHAPE_IMMEDIATE},
	0x0A: {ASL, kSHAPE_ACCUMULATOR},
	0x0D: {ORA, kSHAPE_ABSOLUTE},
	0x0E: {ASL, kSHAPE_ABSOLUTE},

	0x10: {BPL, kSHAPE_RELATIVE},
	0x11: {ORA, kSHAPE_INDIRECTY},
	0x15: {ORA, kSHAPE_ZPX},
	0x16: {ASL, kSHAPE_ZPX},
	0x18: {CLC, kSHAPE_IMPLIED},
	0x19: {ORA, kSHAPE_ABSOLUTEY},
	0x1D: {ORA, kSHAPE_ABSOLUTEX},
	0x1E: {ASL, kSHAPE_ABSOLUTEX},

	0x20: {JSR, kSHAPE_ABSOLUTE},
	0x21: {AND, kSHAPE_INDIRECTX},
	0x24: {BIT, kSHAPE_ZP},
	0x25: {AND, kSHAPE_ZP},
	0x26: {ROL, kSHAPE_ZP},
	0x28: {PLP, kSHAPE_IMPLIED},
	0x29: {AND, kSHAPE_IMMEDIATE},
	0x2A: {ROL, kSHAPE_ACCUMULATOR},
	0x2C: {BIT, kSHAPE_ABSOLUTE},
	0x2D: {AND, kSHAPE_ABSOLUTE},
	0x2E: {ROL, kSHAPE_ABSOLUTE},

	0x30: {BMI, kSHAPE_RELATIVE},
	0x31: {AND, kSHAPE_INDIRECTY},
	0x35: {AND, kSHAPE_ZPX},
	0x36: {ROL, kSHAPE_ZPX},
	0x38: {SEC, kSHAPE_IMPLIED},
	0x39: {AND, kSHAPE_ABSOLUTEY},
	0x3D: {AND, kSHAPE_ABSOLUTEX},
	0x3E: {ROL, kSHAPE_ABSOLUTEX},

	0x40: {RTI, kSHAPE_IMPLIED},
	0x41: {EOR, kSHAPE_INDIRECTX},
	0x45: {EOR, kSHAPE_ZP},
	0x46: {LSR, kSHAPE_ZP},
	0x48: {PHA, kSHAPE_IMPLIED},
	0x49: {EOR, kSHAPE_IMMEDIATE},
	0x4A: {LSR, kSHAPE_ACCUMULATOR},
	0x4C: {JMP, kSHAPE_ABSOLUTE},
	0x4D: {EOR, kSHAPE_ABSOLUTE},
	0x4E: {LSR, kSHAPE_ABSOLUTE},

	0x50: {BVC, kSHAPE_RELATIVE},
	0x51: {EOR, kSHAPE_INDIRECTY},
	0x55: {EOR, kSHAPE_ZPX},
	0x56: {LSR, kSHAPE_ZPX},
	0x58: {CLI, kSHAPE_IMPLIED},
	0x59: {EOR, kSHAPE_ABSOLUTEY},
	0x5D: {EOR, kSHAPE_ABSOLUTEX},
	0x5E: {LSR, kSHAPE_ABSOLUTEX},

	0x60: {RTS, kSHAPE_IMPLIED},
	0x61: {ADC, kSHAPE_INDIRECTX},
	0x65: {ADC, kSHAPE_ZP},
	0x66: {ROR, kSHAPE_ZP},
	0x68: {PLA, kSHAPE_IMPLIED},
	0x69: {ADC, kSHAPE_IMMEDIATE},
	0x6A: {ROR, kSHAPE_ACCUMULATOR},
	0x6C: {JMP, kSHAPE_INDIRECT},
	0x6D: {ADC, kSHAPE_ABSOLUTE},
	0x6E: {ROR, kSHAPE_ABSOLUTE},

	0x70: {BVS, kSHAPE_RELATIVE},
	0x71: {ADC, kSHAPE_INDIRECTY},
	0x75: {ADC, kSHAPE_ZPX},
	0x76: {ROR, kSHAPE_ZPX},
	0x78: {SEI, kSHAPE_IMPLIED},
	0x79: {ADC, kSHAPE_ABSOLUTEY},
	0x7D: {ADC, kSHAPE_ABSOLUTEX},
	0x7E: {ROR, kSHAPE_ABSOLUTEX},

	0x81: {STA, kSHAPE_INDIRECTX},
	0x84: {STY, kSHAPE_ZP},
	0x85: {STA, kSHAPE_ZP},
	0x86: {STX, kSHAPE_ZP},
	0x88: {DEY, kSHAPE_IMPLIED},
	0x8A: {TXA, kSHAPE_IMPLIED},
	0x8C: {STY, kSHAPE_ABSOLUTE},
	0x8D: {STA, kSHAPE_ABSOLUTE},
	0x8E: {STX, kSHAPE_ABSOLUTE},

	0x90: {BCC, kSHAPE_RELATIVE},
	0x91: {STA, kSHAPE_INDIRECTY},
	0x94: {STY, kSHAPE_ZPX},
	0x95: {STA, kSHAPE_ZPX},
	0x96: {STX, kSHAPE_ZPY},
	0x98: {TYA, kSHAPE_IMPLIED},
	0x99: {STA, kSHAPE_ABSOLUTEY},
	0x9A: {TXS, kSHAPE_IMPLIED},
	0x9D: {STA, kSHAPE_ABSOLUTEX},

	0xA0: {LDY, kSHAPE_IMMEDIATE},
	0xA1: {LDA, kSHAPE_INDIRECTX},
	0xA2: {LDX, kSHAPE_IMMEDIATE},
	0xA4: {LDY, kSHAPE_ZP},
	0xA5: {LDA, kSHAPE_ZP},
	0xA6: {LDX, kSHAPE_ZP},
	0xA8: {TAY, kSHAPE_IMPLIED},
	0xA9: {LDA, kSHAPE_IMMEDIATE},
	0xAA: {TAX, kSHAPE_IMPLIED},
	0xAC: {LDY, kSHAPE_ABSOLUTE},
	0xAD: {LDA, kSHAPE_ABSOLUTE},
	0xAE: {LDX, kSHAPE_ABSOLUTE},

	0xB0: {BCS, kSHAPE_RELATIVE},
	0xB1: {LDA, kSHAPE_INDIRECTY},
	0xB4: {LDY, kSHAPE_ZPX},
	0xB5: {LDA, kSHAPE_ZPX},
	0xB6: {LDX, kSHAPE_ZPY},
	0xB8: {CLV, kSHAPE_IMPLIED},
	0xB9: {LDA, kSHAPE_ABSOLUTEY},
	0xBA: {TSX, kSHAPE_IMPLIED},
	0xBC: {LDY, kSHAPE_ABSOLUTEX},
	0xBD: {LDA, kSHAPE_ABSOLUTEX},
	0xBE: {LDX, kSHAPE_ABSOLUTEY},

	0xC0: {CPY, kSHAPE_IMMEDIATE},
	0xC1: {CMP, kSHAPE_INDIRECTX},
	0xC4: {CPY, kSHAPE_ZP},
	0xC5: {CMP, kSHAPE_ZP},
	0xC6: {DEC, kSHAPE_ZP},
	0xC8: {INY, kSHAPE_IMPLIED},
	0xC9: {CMP, kSHAPE_IMMEDIATE},
	0xCA: {DEX, kSHAPE_IMPLIED},
	0xCC: {CPY, kSHAPE_ABSOLUTE},
	0xCD: {CMP, kSHAPE_ABSOLUTE},
	0xCE: {DEC, kSHAPE_ABSOLUTE},

	0xD0: {BNE, kSHAPE_RELATIVE},
	0xD1: {CMP, kSHAPE_INDIRECTY},
	0xD5: {CMP, kSHAPE_ZPX},
	0xD6: {DEC, kSHAPE_ZPX},
	0xD8: {CLD, kSHAPE_IMPLIED},
	0xD9: {CMP, kSHAPE_ABSOLUTEY},
	0xDD: {CMP, kSHAPE_ABSOLUTEX},
	0xDE: {DEC, kSHAPE_ABSOLUTEX},

	0xE0: {CPX, kSHAPE_IMMEDIATE},
	0xE1: {SBC, kSHAPE_INDIRECTX},
	0xE4: {CPX, kSHAPE_ZP},
	0xE5: {SBC, kSHAPE_ZP},
	0xE6: {INC, kSHAPE_ZP},
	0xE8: {INX, kSHAPE_IMPLIED},
	0xE9: {SBC, kSHAPE_IMMEDIATE},
	0xEA: {NOP, kSHAPE_IMPLIED},
	0xEC: {CPX, kSHAPE_ABSOLUTE},
	0xED: {SBC, kSHAPE_ABSOLUTE},
	0xEE: {INC, kSHAPE_ABSOLUTE},

	0xF0: {BEQ, kSHAPE_RELATIVE},
	0xF1: {SBC, kSHAPE_INDIRECTY},
	0xF5: {SBC, kSHAPE_ZPX},
	0xF6: {INC, kSHAPE_ZPX},
	0xF8: {SED, kSHAPE_IMPLIED},
	0xF9: {SBC, kSHAPE_ABSOLUTEY},
	0xFD: {SBC, kSHAPE_ABSOLUTEX},
	0xFE: {INC, kSHAPE_ABSOLUTEX},
}

// Instruction is a decoded opcode along with its addressing mode and operand.
type Instruction struct {
	PC     uint16 // Address the opcode was fetched from.
	Opcode uint8
	Op     Operation
	Mode   Mode
}

// Len is the number of bytes the instruction occupies.
func (i Instruction) Len() int {
	return 1 + i.Mode.Width()
}

// String renders the instruction in assembler syntax. Branch targets are shown
// as absolute addresses.
func (i Instruction) String() string {
	switch m := i.Mode.(type) {
	case Implied:
		return i.Op.String()
	case Relative:
		return fmt.Sprintf("%s $%.4X", i.Op, i.PC+2+uint16(int16(m.Offset)))
	}
	return fmt.Sprintf("%s %s", i.Op, i.Mode)
}

// Decode maps opcode to an Instruction pulling any operand bytes from next.
// next is only called once the opcode is known to be valid so an UnknownOpcode
// error means no operand bytes were consumed.
// The returned Instruction has PC unset since Decode doesn't know where the bytes came from.
func Decode(opcode uint8, next func() uint8) (Instruction, error) {
	o := opcodes[opcode]
	if o.op == OP_UNIMPLEMENTED {
		return Instruction{}, UnknownOpcode{opcode}
	}
	return Instruction{
		Opcode: opcode,
		Op:     o.op,
		Mode:   o.shape.fill(next),
	}, nil
}
