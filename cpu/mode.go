package cpu

import (
	"fmt"

	"github.com/jmchacon/cpu6502/memory"
)

// Mode is an addressing mode along with the raw operand it carries.
// The set of modes is closed, every implementation is defined here.
type Mode interface {
	// Width is the number of operand bytes following the opcode.
	Width() int
	// String renders the operand in assembler syntax.
	String() string

	mode()
}

// Implied has no operand. i.e. CLC, RTS.
type Implied struct{}

// Accumulator operates directly on A. i.e. ASL A.
type Accumulator struct{}

// Relative is a signed branch offset from the next instruction.
type Relative struct{ Offset int8 }

// Immediate is the operand value itself. i.e. LDA #$05.
type Immediate struct{ Value uint8 }

// Zeropage is an address in page zero - d
type Zeropage struct{ Addr uint8 }

// ZeropageX is a page zero address indexed by X, wrapping within page zero - d,x
type ZeropageX struct{ Addr uint8 }

// ZeropageY is a page zero address indexed by Y, wrapping within page zero - d,y
type ZeropageY struct{ Addr uint8 }

// Absolute is a full 16 bit address - a
type Absolute struct{ Addr uint16 }

// AbsoluteX is a 16 bit address indexed by X - a,x
type AbsoluteX struct{ Addr uint16 }

// AbsoluteY is a 16 bit address indexed by Y - a,y
type AbsoluteY struct{ Addr uint16 }

// Indirect points at a 16 bit address holding the target. Only used by JMP - (a)
type Indirect struct{ Addr uint16 }

// IndirectX is a page zero pointer indexed by X before the pointer is read - (d,x)
type IndirectX struct{ Addr uint8 }

// IndirectY is a page zero pointer with Y added to the address it holds - (d),y
type IndirectY struct{ Addr uint8 }

func (Implied) Width() int     { return 0 }
func (Accumulator) Width() int { return 0 }
func (Relative) Width() int    { return 1 }
func (Immediate) Width() int   { return 1 }
func (Zeropage) Width() int    { return 1 }
func (ZeropageX) Width() int   { return 1 }
func (ZeropageY) Width() int   { return 1 }
func (Absolute) Width() int    { return 2 }
func (AbsoluteX) Width() int   { return 2 }
func (AbsoluteY) Width() int   { return 2 }
func (Indirect) Width() int    { return 2 }
func (IndirectX) Width() int   { return 1 }
func (IndirectY) Width() int   { return 1 }

func (Implied) String() string     { return "" }
func (Accumulator) String() string { return "A" }
func (m Relative) String() string  { return fmt.Sprintf("*%+d", int(m.Offset)+2) }
func (m Immediate) String() string { return fmt.Sprintf("#$%.2X", m.Value) }
func (m Zeropage) String() string  { return fmt.Sprintf("$%.2X", m.Addr) }
func (m ZeropageX) String() string { return fmt.Sprintf("$%.2X,X", m.Addr) }
func (m ZeropageY) String() string { return fmt.Sprintf("$%.2X,Y", m.Addr) }
func (m Absolute) String() string  { return fmt.Sprintf("$%.4X", m.Addr) }
func (m AbsoluteX) String() string { return fmt.Sprintf("$%.4X,X", m.Addr) }
func (m AbsoluteY) String() string { return fmt.Sprintf("$%.4X,Y", m.Addr) }
func (m Indirect) String() string  { return fmt.Sprintf("($%.4X)", m.Addr) }
func (m IndirectX) String() string { return fmt.Sprintf("($%.2X,X)", m.Addr) }
func (m IndirectY) String() string { return fmt.Sprintf("($%.2X),Y", m.Addr) }

func (Implied) mode()     {}
func (Accumulator) mode() {}
func (Relative) mode()    {}
func (Immediate) mode()   {}
func (Zeropage) mode()    {}
func (ZeropageX) mode()   {}
func (ZeropageY) mode()   {}
func (Absolute) mode()    {}
func (AbsoluteX) mode()   {}
func (AbsoluteY) mode()   {}
func (Indirect) mode()    {}
func (IndirectX) mode()   {}
func (IndirectY) mode()   {}

// shape is the operand-less form of a Mode as stored in the opcode table.
type shape int

const (
	kSHAPE_IMPLIED shape = iota
	kSHAPE_ACCUMULATOR
	kSHAPE_RELATIVE
	kSHAPE_IMMEDIATE
	kSHAPE_ZP
	kSHAPE_ZPX
	kSHAPE_ZPY
	kSHAPE_ABSOLUTE
	kSHAPE_ABSOLUTEX
	kSHAPE_ABSOLUTEY
	kSHAPE_INDIRECT
	kSHAPE_INDIRECTX
	kSHAPE_INDIRECTY
)

// fill pulls the operand bytes for the shape from next (0-2 calls) and
// returns the completed Mode. 2 byte operands are little endian.
func (s shape) fill(next func() uint8) Mode {
	word := func() uint16 {
		lo := next()
		hi := next()
		return (uint16(hi) << 8) + uint16(lo)
	}
	switch s {
	case kSHAPE_IMPLIED:
		return Implied{}
	case kSHAPE_ACCUMULATOR:
		return Accumulator{}
	case kSHAPE_RELATIVE:
		return Relative{int8(next())}
	case kSHAPE_IMMEDIATE:
		return Immediate{next()}
	case kSHAPE_ZP:
		return Zeropage{next()}
	case kSHAPE_ZPX:
		return ZeropageX{next()}
	case kSHAPE_ZPY:
		return ZeropageY{next()}
	case kSHAPE_ABSOLUTE:
		return Absolute{word()}
	case kSHAPE_ABSOLUTEX:
		return AbsoluteX{word()}
	case kSHAPE_ABSOLUTEY:
		return AbsoluteY{word()}
	case kSHAPE_INDIRECT:
		return Indirect{word()}
	case kSHAPE_INDIRECTX:
		return IndirectX{next()}
	case kSHAPE_INDIRECTY:
		return IndirectY{next()}
	}
	panic(InvalidCPUState{fmt.Sprintf("invalid addressing shape %d", s)})
}

// readZPAddr reads a 16 bit pointer from page zero. The high byte comes from
// addr+1 wrapped within page zero.
func (p *Processor) readZPAddr(addr uint8) uint16 {
	return (uint16(p.Ram.Read(uint16(addr+1))) << 8) + uint16(p.Ram.Read(uint16(addr)))
}

// EffectiveAddress computes the address m refers to given the current registers.
// All 8 bit arithmetic wraps within page zero and all 16 bit arithmetic wraps at 0xFFFF.
// Immediate, Accumulator and Implied have no address and asking for one is an
// internal consistency failure which panics with InvalidCPUState.
func (p *Processor) EffectiveAddress(m Mode) uint16 {
	switch m := m.(type) {
	case Relative:
		// PC already points at the next instruction.
		return p.PC + uint16(int16(m.Offset))
	case Zeropage:
		return uint16(m.Addr)
	case ZeropageX:
		return uint16(m.Addr + p.X)
	case ZeropageY:
		return uint16(m.Addr + p.Y)
	case Absolute:
		return m.Addr
	case AbsoluteX:
		return m.Addr + uint16(p.X)
	case AbsoluteY:
		return m.Addr + uint16(p.Y)
	case Indirect:
		return memory.ReadWord(p.Ram, m.Addr)
	case IndirectX:
		return p.readZPAddr(m.Addr + p.X)
	case IndirectY:
		return p.readZPAddr(m.Addr) + uint16(p.Y)
	}
	panic(InvalidCPUState{fmt.Sprintf("no effective address for mode %T", m)})
}

// Load returns the operand value for m. Immediate and Accumulator never touch the bus.
func (p *Processor) Load(m Mode) uint8 {
	switch m := m.(type) {
	case Immediate:
		return m.Value
	case Accumulator:
		return p.A
	}
	return p.Ram.Read(p.EffectiveAddress(m))
}

// Store writes val to the location m refers to. Accumulator writes A directly.
func (p *Processor) Store(m Mode, val uint8) {
	if _, ok := m.(Accumulator); ok {
		p.A = val
		return
	}
	p.Ram.Write(p.EffectiveAddress(m), val)
}
