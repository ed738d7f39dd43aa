package memory

// Flat is a plain 64k RAM with no mirroring or ROM regions.
type Flat struct {
	addr [65536]uint8
}

// NewFlat returns a Flat RAM in power on state.
func NewFlat() *Flat {
	f := &Flat{}
	f.PowerOn()
	return f
}

// Read implements Bus.
func (f *Flat) Read(addr uint16) uint8 {
	return f.addr[addr]
}

// Write implements Bus.
func (f *Flat) Write(addr uint16, val uint8) {
	f.addr[addr] = val
}

// PowerOn zeroes all of RAM.
func (f *Flat) PowerOn() {
	for i := range f.addr {
		f.addr[i] = 0x00
	}
}

// Fill sets every address to val. Useful for filling with an opcode
// (such as NOP) so stray execution is predictable.
func (f *Flat) Fill(val uint8) {
	for i := range f.addr {
		f.addr[i] = val
	}
}
