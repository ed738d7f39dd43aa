// Package memory defines the basic interfaces for working
// with a 6502 family memory map. Since each implementation
// that is emulated may have specific mappings (including shadowed
// regions) this is defined as an interface with only byte level
// access. Word access and bulk loading are derived from it so any
// backing store only needs to implement Read and Write.
package memory

import (
	"fmt"
)

// Bus is the byte addressable 64k space the CPU reads and writes through.
type Bus interface {
	// Read returns the data byte stored at addr.
	Read(addr uint16) uint8
	// Write updates addr with the new value. For ROM addresses this is simply a no-op without
	// any error.
	Write(addr uint16, val uint8)
}

// ReadWord returns the little endian 16 bit value stored at addr and addr+1.
// The second address wraps at 0xFFFF back to 0x0000.
func ReadWord(b Bus, addr uint16) uint16 {
	return (uint16(b.Read(addr+1)) << 8) + uint16(b.Read(addr))
}

// WriteWord stores val little endian at addr and addr+1.
func WriteWord(b Bus, addr uint16, val uint16) {
	b.Write(addr, uint8(val&0xFF))
	b.Write(addr+1, uint8((val&0xFF00)>>8))
}

// TooLarge is returned from Load when the data won't fit between offset and
// the top of the address space.
type TooLarge struct {
	Offset uint16
	Len    int
}

// Error implements the interface for error types.
func (e TooLarge) Error() string {
	return fmt.Sprintf("%d bytes at offset 0x%.4X extend past 0xFFFF", e.Len, e.Offset)
}

// Load copies data contiguously into b starting at offset. Nothing is written
// if the data would run past the end of the address space.
func Load(b Bus, offset uint16, data []byte) error {
	if int(offset)+len(data) > 0x10000 {
		return TooLarge{Offset: offset, Len: len(data)}
	}
	for i, v := range data {
		b.Write(offset+uint16(i), v)
	}
	return nil
}
