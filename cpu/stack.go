package cpu

// STACK_PAGE is the base of the fixed stack page. S is an offset into it.
const STACK_PAGE = uint16(0x0100)

// pushStack pushes the given byte onto the stack and adjusts the stack pointer accordingly.
// S always points at the next free slot and wraps within the page.
func (p *Processor) pushStack(val uint8) {
	p.Ram.Write(STACK_PAGE+uint16(p.S), val)
	p.S--
}

// popStack pops the top byte off the stack and adjusts the stack pointer accordingly.
func (p *Processor) popStack() uint8 {
	p.S++
	return p.Ram.Read(STACK_PAGE + uint16(p.S))
}

// pushStackWord pushes the high byte then the low byte so the high byte
// ends up at the higher address.
func (p *Processor) pushStackWord(val uint16) {
	p.pushStack(uint8((val & 0xFF00) >> 8))
	p.pushStack(uint8(val & 0xFF))
}

// popStackWord undoes pushStackWord.
func (p *Processor) popStackWord() uint16 {
	lo := p.popStack()
	hi := p.popStack()
	return (uint16(hi) << 8) + uint16(lo)
}
