package main

import (
	"testing"

	"github.com/jmchacon/cpu6502/program"
)

func TestWithin(t *testing.T) {
	img := &program.Image{Offset: 0x8000, Data: make([]byte, 0x10)}
	tests := []struct {
		name string
		pc   uint16
		skip int
		ok   bool
	}{
		{"start", 0x8000, 0, true},
		{"middle", 0x8004, 4, true},
		{"last byte", 0x800F, 15, true},
		{"past end", 0x8010, 16, false},
		{"before start", 0x7FFF, -1, false},
		{"zero page", 0x0000, -0x8000, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			skip, ok := within(img, test.pc)
			if ok != test.ok {
				t.Fatalf("within(0x%.4X) ok got %t want %t", test.pc, ok, test.ok)
			}
			if skip != test.skip {
				t.Errorf("within(0x%.4X) skip got %d want %d", test.pc, skip, test.skip)
			}
		})
	}
}
