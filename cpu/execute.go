package cpu

import (
	"fmt"
)

// execute runs the semantics of an already fetched instruction. PC already points
// past the instruction. An Operation with no case here means the opcode table and
// this switch have drifted apart which is a panic.
func (p *Processor) execute(inst Instruction) {
	m := inst.Mode
	switch inst.Op {
	case ADC:
		p.iADC(p.Load(m))
	case SBC:
		// Binary mode is just ones complement the arg and ADC.
		p.iADC(^p.Load(m))
	case AND:
		p.loadRegister(&p.A, p.A&p.Load(m))
	case ORA:
		p.loadRegister(&p.A, p.A|p.Load(m))
	case EOR:
		p.loadRegister(&p.A, p.A^p.Load(m))
	case BIT:
		p.iBIT(p.Load(m))
	case ASL:
		p.shift(m, RotateLeft, false)
	case LSR:
		p.shift(m, RotateRight, false)
	case ROL:
		p.shift(m, RotateLeft, p.P.Get(P_CARRY))
	case ROR:
		p.shift(m, RotateRight, p.P.Get(P_CARRY))
	case CMP:
		p.compare(p.A, p.Load(m))
	case CPX:
		p.compare(p.X, p.Load(m))
	case CPY:
		p.compare(p.Y, p.Load(m))
	case INC:
		p.storeWithFlags(m, p.Load(m)+1)
	case DEC:
		p.storeWithFlags(m, p.Load(m)-1)
	case INX:
		p.loadRegister(&p.X, p.X+1)
	case INY:
		p.loadRegister(&p.Y, p.Y+1)
	case DEX:
		p.loadRegister(&p.X, p.X-1)
	case DEY:
		p.loadRegister(&p.Y, p.Y-1)
	case BCC:
		p.branch(m, !p.P.Get(P_CARRY))
	case BCS:
		p.branch(m, p.P.Get(P_CARRY))
	case BEQ:
		p.branch(m, p.P.Get(P_ZERO))
	case BNE:
		p.branch(m, !p.P.Get(P_ZERO))
	case BMI:
		p.branch(m, p.P.Get(P_NEGATIVE))
	case BPL:
		p.branch(m, !p.P.Get(P_NEGATIVE))
	case BVC:
		p.branch(m, !p.P.Get(P_OVERFLOW))
	case BVS:
		p.branch(m, p.P.Get(P_OVERFLOW))
	case JMP:
		p.PC = p.EffectiveAddress(m)
	case JSR:
		// The pushed value points at the last byte of the JSR. RTS adds one back.
		target := p.EffectiveAddress(m)
		p.pushStackWord(p.PC - 1)
		p.PC = target
	case RTS:
		p.PC = p.popStackWord() + 1
	case BRK:
		// The byte after BRK is skipped so the return address is one past the PC.
		// BRK shares the NMI vector.
		p.interrupt(NMI_VECTOR, p.PC+1, true)
	case RTI:
		p.pullStatus()
		p.PC = p.popStackWord()
	case PHA:
		p.pushStack(p.A)
	case PLA:
		p.loadRegister(&p.A, p.popStack())
	case PHP:
		// S1 and B are always set in the pushed copy.
		p.pushStack(uint8(p.P | P_S1 | P_B))
	case PLP:
		p.pullStatus()
	case LDA:
		p.loadRegister(&p.A, p.Load(m))
	case LDX:
		p.loadRegister(&p.X, p.Load(m))
	case LDY:
		p.loadRegister(&p.Y, p.Load(m))
	case STA:
		p.Store(m, p.A)
	case STX:
		p.Store(m, p.X)
	case STY:
		p.Store(m, p.Y)
	case TAX:
		p.loadRegister(&p.X, p.A)
	case TAY:
		p.loadRegister(&p.Y, p.A)
	case TXA:
		p.loadRegister(&p.A, p.X)
	case TYA:
		p.loadRegister(&p.A, p.Y)
	case TSX:
		p.loadRegister(&p.X, p.S)
	case TXS:
		// The only transfer which doesn't set flags.
		p.S = p.X
	case SEC:
		p.P.Set(P_CARRY, true)
	case SED:
		p.P.Set(P_DECIMAL, true)
	case SEI:
		p.P.Set(P_INTERRUPT, true)
	case CLC:
		p.P.Set(P_CARRY, false)
	case CLD:
		p.P.Set(P_DECIMAL, false)
	case CLI:
		p.P.Set(P_INTERRUPT, false)
	case CLV:
		p.P.Set(P_OVERFLOW, false)
	case NOP:
	default:
		panic(InvalidCPUState{fmt.Sprintf("opcode 0x%.2X decoded to unhandled operation %s", inst.Opcode, inst.Op)})
	}
}

// zeroCheck sets the Z flag based on the register contents.
func (p *Processor) zeroCheck(reg uint8) {
	p.P.Set(P_ZERO, reg == 0)
}

// negativeCheck sets the N flag based on the register contents.
func (p *Processor) negativeCheck(reg uint8) {
	p.P.Set(P_NEGATIVE, Status(reg)&P_NEGATIVE != 0)
}

// overflowCheck sets the V flag if the result of the ALU operation
// caused a two's complement sign change.
// Taken from http://www.righto.com/2012/12/the-6502-overflow-flag-explained.html
func (p *Processor) overflowCheck(reg uint8, arg uint8, res uint8) {
	// If the originals signs differ from the end sign bit
	p.P.Set(P_OVERFLOW, (reg^res)&(arg^res)&0x80 != 0x00)
}

// loadRegister takes the val and inserts it into the register passed in. It then does
// Z and N checks against the new value.
func (p *Processor) loadRegister(reg *uint8, val uint8) {
	*reg = val
	p.zeroCheck(*reg)
	p.negativeCheck(*reg)
}

// storeWithFlags stores the val through m and also sets Z/N flags accordingly.
// Generally used to implement INC/DEC and the shifts.
func (p *Processor) storeWithFlags(m Mode, val uint8) {
	p.zeroCheck(val)
	p.negativeCheck(val)
	p.Store(m, val)
}

// addOverflow adds two bytes returning the wrapped sum and whether it carried out.
func addOverflow(a, b uint8) (uint8, bool) {
	sum := a + b
	return sum, sum < a
}

// iADC implements the ADC instruction and sets all associated flags.
// For SBC simply ones-complement the arg before calling.
// The carry out comes from chaining two 8 bit adds (A+arg then +C) so nothing
// is ever widened. Only one of them can carry. The D flag is ignored.
func (p *Processor) iADC(arg uint8) {
	var carry uint8
	if p.P.Get(P_CARRY) {
		carry = 1
	}
	sum, c1 := addOverflow(p.A, arg)
	sum, c2 := addOverflow(sum, carry)
	p.overflowCheck(p.A, arg, sum)
	p.P.Set(P_CARRY, c1 || c2)

	// Now set the accumulator so the other flag checks are against the result.
	p.loadRegister(&p.A, sum)
}

// iBIT implements the BIT instruction. N and V come straight from the operand
// and Z from ANDing it with A. A itself is unchanged.
func (p *Processor) iBIT(val uint8) {
	p.zeroCheck(p.A & val)
	p.negativeCheck(val)
	p.P.Set(P_OVERFLOW, Status(val)&P_OVERFLOW != 0)
}

// shift implements ASL/LSR/ROL/ROR for any mode (including the accumulator) by
// running the operand through rot with the given carry in.
func (p *Processor) shift(m Mode, rot func(bool, uint8) (uint8, bool), carryIn bool) {
	res, carryOut := rot(carryIn, p.Load(m))
	p.P.Set(P_CARRY, carryOut)
	p.storeWithFlags(m, res)
}

// compare implements the logic for all CMP/CPX/CPY instructions and
// sets flags accordingly from the results.
func (p *Processor) compare(reg uint8, val uint8) {
	p.zeroCheck(reg - val)
	p.negativeCheck(reg - val)
	p.P.Set(P_CARRY, reg >= val)
}

// branch moves PC to the relative target in m when taken is true.
func (p *Processor) branch(m Mode, taken bool) {
	if taken {
		p.PC = p.EffectiveAddress(m)
	}
}

// pullStatus pops P off the stack. S1 and B aren't real bits in the register
// so whatever the current register holds for them is kept.
func (p *Processor) pullStatus() {
	keep := p.P & (P_S1 | P_B)
	p.P = (Status(p.popStack()) &^ (P_S1 | P_B)) | keep
}
