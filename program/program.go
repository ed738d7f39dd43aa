// Package program handles getting a program image into memory before
// the CPU powers on. Raw binaries are loaded at a caller supplied offset.
// If the filename ends in .prg (case insensitive) it's assumed to be a
// C64 program file and the first 2 bytes are the little endian load address.
package program

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmchacon/cpu6502/cpu"
	"github.com/jmchacon/cpu6502/memory"
)

var (
	// ErrShortPRG is returned for a PRG file without a complete load address.
	ErrShortPRG = errors.New("PRG file shorter than its 2 byte load address")
	// ErrTooLarge is returned when an image doesn't fit in 64k at its offset.
	ErrTooLarge = errors.New("image doesn't fit in 64k")
)

// Image is a program and where it goes in memory.
type Image struct {
	Offset uint16
	Data   []byte
	PRG    bool // Whether Offset came from a PRG header.
}

// Parse builds an Image from the contents of the file named name. offset is used
// unless this is a PRG file which supplies its own.
func Parse(name string, b []byte, offset uint16) (*Image, error) {
	img := &Image{
		Offset: offset,
		Data:   b,
	}
	if strings.ToLower(filepath.Ext(name)) == ".prg" {
		if len(b) < 2 {
			return nil, ErrShortPRG
		}
		img.PRG = true
		img.Offset = (uint16(b[1]) << 8) + uint16(b[0])
		img.Data = b[2:]
	}
	if int(img.Offset)+len(img.Data) > 0x10000 {
		return nil, fmt.Errorf("%d bytes at 0x%.4X: %w", len(img.Data), img.Offset, ErrTooLarge)
	}
	return img, nil
}

// ReadFile reads and parses the named file.
func ReadFile(name string, offset uint16) (*Image, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("can't read %s: %w", name, err)
	}
	return Parse(name, b, offset)
}

// Install copies the image into r.
func (i *Image) Install(r memory.Bus) error {
	return memory.Load(r, i.Offset, i.Data)
}

// SetStart points the reset vector at pc so a CPU powered on afterwards begins there.
func SetStart(r memory.Bus, pc uint16) {
	memory.WriteWord(r, cpu.RESET_VECTOR, pc)
}

// CoversReset returns whether the image supplies its own reset vector.
func (i *Image) CoversReset() bool {
	end := int(i.Offset) + len(i.Data)
	return int(i.Offset) <= int(cpu.RESET_VECTOR) && end >= int(cpu.RESET_VECTOR)+2
}
