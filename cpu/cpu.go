// Package cpu defines the 6502 architecture and provides
// the methods needed to run the CPU and interface with it
// for emulation. Each Tick executes one complete instruction;
// there is no cycle level timing.
package cpu

import (
	"fmt"

	"github.com/jmchacon/cpu6502/irq"
	"github.com/jmchacon/cpu6502/memory"
)

const (
	NMI_VECTOR   = uint16(0xFFFA)
	RESET_VECTOR = uint16(0xFFFC)
	IRQ_VECTOR   = uint16(0xFFFE)
)

// Processor is the register file of a single 6502 along with the bus it owns.
type Processor struct {
	A   uint8      // Accumulator register
	X   uint8      // X register
	Y   uint8      // Y register
	S   uint8      // Stack pointer
	P   Status     // Processor status register
	PC  uint16     // Program counter
	Ram memory.Bus // Everything the CPU can address.

	irqLine irq.Sender // Polled after each instruction if non-nil.
	nmiLine irq.Sender // Polled after each instruction if non-nil.
	nmiHeld bool       // NMI is edge triggered so this tracks the last level seen.
}

// UnknownOpcode is returned when the byte at PC isn't a documented opcode.
type UnknownOpcode struct {
	Opcode uint8
}

// Error implements the interface for error types.
func (e UnknownOpcode) Error() string {
	return fmt.Sprintf("unknown opcode 0x%.2X", e.Opcode)
}

// InvalidCPUState represents an internal consistency failure in the emulator.
// It's only ever used as a panic value since continuing would corrupt state.
type InvalidCPUState struct {
	Reason string
}

// Error implements the interface for error types.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// Init will create a new CPU attached to r and return it in powered on state.
// Any program should already be loaded into r since the reset vector is read here.
func Init(r memory.Bus) *Processor {
	p := &Processor{
		Ram: r,
	}
	p.PowerOn()
	return p
}

// PowerOn will reset the CPU to specific power on state. Registers are zero, stack is at 0xFD
// and P is cleared with interrupts disabled. The starting PC value is loaded from the reset
// vector.
func (p *Processor) PowerOn() {
	p.A = 0
	p.X = 0
	p.Y = 0
	p.S = 0x0
	// This bit is always set.
	p.P = P_S1
	p.Reset()
}

// Reset is similar to PowerOn except the main registers are not touched. The stack is moved
// 3 bytes as if PC/P have been pushed. Flags are not disturbed except for interrupts being disabled
// and the PC is loaded from the reset vector.
func (p *Processor) Reset() {
	p.S -= 3
	p.P |= P_INTERRUPT
	p.PC = memory.ReadWord(p.Ram, RESET_VECTOR)
}

// Tick fetches, decodes and executes exactly one instruction and returns what was run.
// If the byte at PC isn't a known opcode UnknownOpcode is returned and nothing
// (registers or memory) has been changed so the caller can decide to halt or report.
func (p *Processor) Tick() (Instruction, error) {
	pc := p.PC
	addr := pc + 1
	inst, err := Decode(p.Ram.Read(pc), func() uint8 {
		v := p.Ram.Read(addr)
		addr++
		return v
	})
	if err != nil {
		return Instruction{}, err
	}
	inst.PC = pc
	p.PC = addr
	p.execute(inst)
	p.poll()
	return inst, nil
}

// InstallIRQ attaches s as the IRQ line. It's checked at the end of every Tick.
func (p *Processor) InstallIRQ(s irq.Sender) {
	p.irqLine = s
}

// InstallNMI attaches s as the NMI line. It's checked at the end of every Tick.
func (p *Processor) InstallNMI(s irq.Sender) {
	p.nmiLine = s
}

// poll checks the installed lines once an instruction has finished, so a taken
// interrupt leaves PC at the handler for the next Tick. NMI wins if both are up.
// NMI only fires on a low to high transition while IRQ fires whenever it's
// held and P_INTERRUPT is clear.
func (p *Processor) poll() {
	if p.nmiLine != nil {
		raised := p.nmiLine.Raised()
		edge := raised && !p.nmiHeld
		p.nmiHeld = raised
		if edge {
			p.NMI()
			return
		}
	}
	if p.irqLine != nil && p.irqLine.Raised() {
		p.IRQ()
	}
}

// Interrupt pushes PC and P (with B clear) and then jumps to the handler stored at vector
// with interrupts disabled. This is the hardware interrupt sequence. It isn't masked by
// P_INTERRUPT, use IRQ for that.
func (p *Processor) Interrupt(vector uint16) {
	p.interrupt(vector, p.PC, false)
}

// IRQ raises a maskable interrupt. Returns false and does nothing if interrupts are disabled.
func (p *Processor) IRQ() bool {
	if p.P.Get(P_INTERRUPT) {
		return false
	}
	p.Interrupt(IRQ_VECTOR)
	return true
}

// NMI raises a non maskable interrupt.
func (p *Processor) NMI() {
	p.Interrupt(NMI_VECTOR)
}

// interrupt does all the heavy lifting for any interrupt processing.
// i.e. pushing values onto the stack and loading PC with the right address.
// ret is the PC value RTI returns to and brk controls whether B is set in the pushed flags.
func (p *Processor) interrupt(vector uint16, ret uint16, brk bool) {
	handler := memory.ReadWord(p.Ram, vector)
	p.pushStackWord(ret)
	push := p.P | P_S1
	push.Set(P_B, brk)
	p.pushStack(uint8(push))
	p.P |= P_INTERRUPT
	p.PC = handler
}

// String returns the register state for display.
func (p *Processor) String() string {
	return fmt.Sprintf("PC: 0x%.4X SP: 0x%.2X A: 0x%.2X X: 0x%.2X Y: 0x%.2X P: %s", p.PC, p.S, p.A, p.X, p.Y, p.P)
}
