// dis6502 takes a filename and loads it and then
// disassembles it to stdout starting at the first instruction.
// If the filename ends in .prg (case insensitive) it will assume
// this is a C64 program file and use the first 2 bytes as the load
// address.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/jmchacon/cpu6502/disassemble"
	"github.com/jmchacon/cpu6502/memory"
	"github.com/jmchacon/cpu6502/program"
)

var (
	startPC = flag.String("start_pc", "", "PC value (hex) to start disassembling. Defaults to the load offset.")
	offset  = flag.String("offset", "0000", "Offset (hex) into RAM to start loading data. All other RAM will be zero'd out. Ignored for PRG files.")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Invalid command: %s [--start_pc <PC> --offset <offset>] <filename>", os.Args[0])
	}
	fn := flag.Args()[0]

	off, err := strconv.ParseUint(*offset, 16, 16)
	if err != nil {
		log.Fatalf("Invalid --offset %q - %v", *offset, err)
	}
	img, err := program.ReadFile(fn, uint16(off))
	if err != nil {
		log.Fatalf("Can't open %s - %v", fn, err)
	}
	if img.PRG {
		fmt.Println("C64 program file")
	}
	f := memory.NewFlat()
	if err := img.Install(f); err != nil {
		log.Fatalf("Can't install %s - %v", fn, err)
	}

	pc := img.Offset
	count := len(img.Data)
	if *startPC != "" {
		v, err := strconv.ParseUint(*startPC, 16, 16)
		if err != nil {
			log.Fatalf("Invalid --start_pc %q - %v", *startPC, err)
		}
		skip, ok := within(img, uint16(v))
		if !ok {
			log.Fatalf("Invalid --start_pc 0x%.4X - outside image 0x%.4X-0x%.4X", v, img.Offset, int(img.Offset)+len(img.Data)-1)
		}
		// Only disassemble what's left of the image past the new start.
		count -= skip
		pc = uint16(v)
	}
	fmt.Printf("0x%.2X bytes at pc: %.4X\n", len(img.Data), pc)
	// Can't base it on PC since it may rollover so just disassemble until we run out of buffer.
	for _, l := range disassemble.Range(pc, count, f) {
		fmt.Println(l)
	}
}

// within returns how far pc is into the image and whether it's inside it at all.
func within(img *program.Image, pc uint16) (int, bool) {
	skip := int(pc) - int(img.Offset)
	return skip, skip >= 0 && skip < len(img.Data)
}
