// run6502 loads a program image into a flat 64k memory and runs it
// on the 6502 core until it hits an unknown opcode (or the instruction
// limit if one is given).
//
// The load offset defaults to 0x8000. If the filename ends in .prg (case insensitive)
// the first 2 bytes are used as the load address instead. Execution starts at
// whatever the reset vector at 0xFFFC holds unless --start_pc is given.
//
// With --debug each instruction is printed along with the registers and the
// program waits for a carriage return on stdin before running the next one.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jmchacon/cpu6502/cpu"
	"github.com/jmchacon/cpu6502/disassemble"
	"github.com/jmchacon/cpu6502/memory"
	"github.com/jmchacon/cpu6502/program"
	"golang.org/x/term"
)

var (
	offset          = flag.String("offset", "8000", "Offset (hex) into RAM to start loading data. Ignored for PRG files.")
	startPC         = flag.String("start_pc", "", "If set, PC value (hex) written into the reset vector before power on.")
	debug           = flag.Bool("debug", false, "If true waits for a carriage return before each instruction and prints CPU state at each.")
	trace           = flag.Bool("trace", false, "If true prints every instruction executed along with CPU state.")
	maxInstructions = flag.Int("max_instructions", 0, "If non-zero stop after this many instructions.")
)

func parseHex(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "$")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Invalid command: %s [--offset <hex> --start_pc <hex> --debug --trace --max_instructions <n>] <filename>", os.Args[0])
	}
	fn := flag.Args()[0]

	off, err := parseHex(*offset)
	if err != nil {
		log.Fatalf("Invalid --offset %q - %v", *offset, err)
	}
	img, err := program.ReadFile(fn, off)
	if err != nil {
		log.Fatalf("Can't load %s - %v", fn, err)
	}
	r := memory.NewFlat()
	if err := img.Install(r); err != nil {
		log.Fatalf("Can't install %s - %v", fn, err)
	}
	fmt.Printf("0x%.4X bytes at 0x%.4X\n", len(img.Data), img.Offset)
	if *startPC != "" {
		pc, err := parseHex(*startPC)
		if err != nil {
			log.Fatalf("Invalid --start_pc %q - %v", *startPC, err)
		}
		program.SetStart(r, pc)
	} else if !img.CoversReset() {
		log.Printf("Image doesn't cover the reset vector and no --start_pc given, starting at 0x%.4X", memory.ReadWord(r, cpu.RESET_VECTOR))
	}

	c := cpu.Init(r)
	err = run(c, os.Stdin, os.Stdout, options{
		debug:           *debug,
		trace:           *trace,
		maxInstructions: *maxInstructions,
	})
	fmt.Printf("%v\n\nCPU status:\n%s\n", err, c)
	var uo cpu.UnknownOpcode
	if errors.As(err, &uo) {
		os.Exit(1)
	}
}

// errLimit is returned from run when the instruction limit is reached.
var errLimit = errors.New("instruction limit reached")

// options controls how run reports and stops.
type options struct {
	debug           bool // Print each instruction and wait for a line on in before continuing.
	trace           bool // Print each instruction without waiting.
	maxInstructions int  // Stop after this many if non-zero.
}

// run loops executing instructions until one fails. Only a real terminal on stdin
// gets a prompt in debug mode.
func run(c *cpu.Processor, in io.Reader, out io.Writer, opts options) error {
	prompt := false
	if f, ok := in.(*os.File); ok {
		prompt = term.IsTerminal(int(f.Fd()))
	}
	scanner := bufio.NewScanner(in)
	for n := 1; ; n++ {
		if opts.debug || opts.trace {
			dis, _ := disassemble.Step(c.PC, c.Ram)
			fmt.Fprintf(out, "Executing: %s\n", dis)
		}
		if _, err := c.Tick(); err != nil {
			return fmt.Errorf("PC 0x%.4X: %w", c.PC, err)
		}
		if opts.debug || opts.trace {
			fmt.Fprintf(out, "%s\n", c)
		}
		if opts.debug {
			if prompt {
				fmt.Fprint(out, "[enter to step] ")
			}
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return err
				}
				return io.EOF
			}
		}
		if opts.maxInstructions > 0 && n >= opts.maxInstructions {
			return errLimit
		}
	}
}
