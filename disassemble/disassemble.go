// Package disassemble implements a disassembler for 6502 opcodes
package disassemble

import (
	"fmt"
	"strings"

	"github.com/jmchacon/cpu6502/cpu"
	"github.com/jmchacon/cpu6502/memory"
)

// Step will take the given PC value and disassemble the instruction at that location
// returning a string for the disassembly and the bytes forward the PC should move to get to
// the next instruction. This does not interpret the instructions so LDA, JMP, LDA in memory
// will disassemble as that sequence and not follow the JMP.
// Bytes which aren't a documented opcode are emitted as a single .BYTE.
func Step(pc uint16, r memory.Bus) (string, int) {
	o := r.Read(pc)
	addr := pc + 1
	inst, err := cpu.Decode(o, func() uint8 {
		v := r.Read(addr)
		addr++
		return v
	})
	if err != nil {
		return fmt.Sprintf("%.4X %.2X         .BYTE $%.2X", pc, o, o), 1
	}
	inst.PC = pc

	var b strings.Builder
	fmt.Fprintf(&b, "%.4X %.2X ", pc, o)
	for i := 1; i < 3; i++ {
		if i < inst.Len() {
			fmt.Fprintf(&b, "%.2X ", r.Read(pc+uint16(i)))
			continue
		}
		b.WriteString("   ")
	}
	fmt.Fprintf(&b, "  %s", inst)
	return b.String(), inst.Len()
}

// Range disassembles count bytes starting at pc returning one line per instruction.
// The final instruction may extend past count bytes.
func Range(pc uint16, count int, r memory.Bus) []string {
	var out []string
	for count > 0 {
		dis, off := Step(pc, r)
		out = append(out, dis)
		pc += uint16(off)
		count -= off
	}
	return out
}
