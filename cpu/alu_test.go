package cpu

import (
	"testing"
)

// run executes a single instruction with no bytes in memory.
func run(c *Processor, op Operation, m Mode) {
	c.execute(Instruction{Op: op, Mode: m})
}

func TestADC(t *testing.T) {
	c, _ := Setup(0xEA)
	for a := 0; a < 256; a++ {
		for m := 0; m < 256; m++ {
			for carry := 0; carry < 2; carry++ {
				c.A = uint8(a)
				c.P = P_S1
				c.P.Set(P_CARRY, carry == 1)
				run(c, ADC, Immediate{uint8(m)})

				wide := a + m + carry
				signed := int(int8(a)) + int(int8(m)) + carry
				if got, want := c.A, uint8(wide); got != want {
					t.Fatalf("ADC 0x%.2X+0x%.2X+%d: A got 0x%.2X want 0x%.2X", a, m, carry, got, want)
				}
				if got, want := c.P.Get(P_CARRY), wide > 0xFF; got != want {
					t.Fatalf("ADC 0x%.2X+0x%.2X+%d: C got %t want %t", a, m, carry, got, want)
				}
				if got, want := c.P.Get(P_OVERFLOW), signed < -128 || signed > 127; got != want {
					t.Fatalf("ADC 0x%.2X+0x%.2X+%d: V got %t want %t", a, m, carry, got, want)
				}
				if got, want := c.P.Get(P_ZERO), uint8(wide) == 0; got != want {
					t.Fatalf("ADC 0x%.2X+0x%.2X+%d: Z got %t want %t", a, m, carry, got, want)
				}
				if got, want := c.P.Get(P_NEGATIVE), uint8(wide)&0x80 != 0; got != want {
					t.Fatalf("ADC 0x%.2X+0x%.2X+%d: N got %t want %t", a, m, carry, got, want)
				}
			}
		}
	}
}

func TestSBC(t *testing.T) {
	c, _ := Setup(0xEA)
	d, _ := Setup(0xEA)
	for a := 0; a < 256; a++ {
		for m := 0; m < 256; m++ {
			for carry := 0; carry < 2; carry++ {
				c.A = uint8(a)
				c.P = P_S1
				c.P.Set(P_CARRY, carry == 1)
				run(c, SBC, Immediate{uint8(m)})

				borrow := 1 - carry
				wide := a - m - borrow
				signed := int(int8(a)) - int(int8(m)) - borrow
				if got, want := c.A, uint8(wide); got != want {
					t.Fatalf("SBC 0x%.2X-0x%.2X-%d: A got 0x%.2X want 0x%.2X", a, m, borrow, got, want)
				}
				if got, want := c.P.Get(P_CARRY), wide >= 0; got != want {
					t.Fatalf("SBC 0x%.2X-0x%.2X-%d: C got %t want %t", a, m, borrow, got, want)
				}
				if got, want := c.P.Get(P_OVERFLOW), signed < -128 || signed > 127; got != want {
					t.Fatalf("SBC 0x%.2X-0x%.2X-%d: V got %t want %t", a, m, borrow, got, want)
				}
				if got, want := c.P.Get(P_ZERO), uint8(wide) == 0; got != want {
					t.Fatalf("SBC 0x%.2X-0x%.2X-%d: Z got %t want %t", a, m, borrow, got, want)
				}
				if got, want := c.P.Get(P_NEGATIVE), uint8(wide)&0x80 != 0; got != want {
					t.Fatalf("SBC 0x%.2X-0x%.2X-%d: N got %t want %t", a, m, borrow, got, want)
				}

				// SBC M is the same as ADC 255-M.
				d.A = uint8(a)
				d.P = P_S1
				d.P.Set(P_CARRY, carry == 1)
				run(d, ADC, Immediate{uint8(255 - m)})
				if got, want := regs(c), regs(d); got != want {
					t.Fatalf("SBC 0x%.2X,0x%.2X C=%d doesn't match ADC of complement\nSBC: %s\nADC: %s", a, m, carry, state(c), state(d))
				}
			}
		}
	}
}

func TestADCThenSBC(t *testing.T) {
	c, _ := Setup(0xEA)
	for a := 0; a < 256; a++ {
		for m := 0; m < 256; m++ {
			c.A = uint8(a)
			c.P.Set(P_CARRY, false)
			run(c, ADC, Immediate{uint8(m)})
			c.P.Set(P_CARRY, true)
			run(c, SBC, Immediate{uint8(m)})
			if got, want := c.A, uint8(a); got != want {
				t.Fatalf("ADC/SBC 0x%.2X of 0x%.2X didn't round trip. Got 0x%.2X", m, a, got)
			}
		}
	}
}

func TestDecimalIgnored(t *testing.T) {
	c, _ := Setup(0xEA)
	c.P = P_S1 | P_DECIMAL
	c.A = 0x09
	run(c, ADC, Immediate{0x01})
	if got, want := c.A, uint8(0x0A); got != want {
		t.Errorf("ADC with D set got 0x%.2X want binary result 0x%.2X", got, want)
	}
}

func TestRotate(t *testing.T) {
	for i := 0; i < 256; i++ {
		x := uint8(i)
		for _, carry := range []bool{false, true} {
			var in uint8
			if carry {
				in = 1
			}
			res, out := RotateLeft(carry, x)
			if got, want := res, x<<1|in; got != want {
				t.Errorf("RotateLeft(%t, 0x%.2X) got 0x%.2X want 0x%.2X", carry, x, got, want)
			}
			if got, want := out, x&0x80 != 0; got != want {
				t.Errorf("RotateLeft(%t, 0x%.2X) carry got %t want %t", carry, x, got, want)
			}
			res, out = RotateRight(carry, x)
			if got, want := res, x>>1|in<<7; got != want {
				t.Errorf("RotateRight(%t, 0x%.2X) got 0x%.2X want 0x%.2X", carry, x, got, want)
			}
			if got, want := out, x&0x01 != 0; got != want {
				t.Errorf("RotateRight(%t, 0x%.2X) carry got %t want %t", carry, x, got, want)
			}
		}

		// Going left then right loses bit 7 unless the carry is fed back in.
		res, out := RotateLeft(false, x)
		if back, _ := RotateRight(false, res); back != x&0x7F {
			t.Errorf("left/right of 0x%.2X got 0x%.2X want 0x%.2X", x, back, x&0x7F)
		}
		if back, _ := RotateRight(out, res); back != x {
			t.Errorf("left/right with carry of 0x%.2X got 0x%.2X", x, back)
		}
	}
}

func TestShifts(t *testing.T) {
	tests := []struct {
		name  string
		op    Operation
		in    uint8
		carry bool
		want  uint8
		wantP Status
		inMem bool
	}{
		{"ASL A", ASL, 0x81, true, 0x02, P_CARRY, false},
		{"ASL mem", ASL, 0x40, false, 0x80, P_NEGATIVE, true},
		{"LSR A", LSR, 0x01, true, 0x00, P_CARRY | P_ZERO, false},
		{"LSR mem", LSR, 0x80, false, 0x40, 0, true},
		{"ROL A", ROL, 0x80, true, 0x01, P_CARRY, false},
		{"ROL mem", ROL, 0x40, false, 0x80, P_NEGATIVE, true},
		{"ROR A", ROR, 0x01, true, 0x80, P_CARRY | P_NEGATIVE, false},
		{"ROR mem", ROR, 0x00, false, 0x00, P_ZERO, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, r := Setup(0xEA)
			c.P = P_S1
			c.P.Set(P_CARRY, test.carry)
			var m Mode = Accumulator{}
			if test.inMem {
				m = Zeropage{0x10}
				r.Write(0x0010, test.in)
			} else {
				c.A = test.in
			}
			run(c, test.op, m)
			got := c.A
			if test.inMem {
				got = r.Read(0x0010)
			}
			if got != test.want {
				t.Errorf("result got 0x%.2X want 0x%.2X", got, test.want)
			}
			if got, want := c.P, P_S1|test.wantP; got != want {
				t.Errorf("flags got %s want %s", got, want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		reg, mem uint8
		want     Status
	}{
		{0x10, 0x10, P_ZERO | P_CARRY},
		{0x20, 0x10, P_CARRY},
		{0x10, 0x20, P_NEGATIVE},
		{0xFF, 0x00, P_NEGATIVE | P_CARRY},
		{0x00, 0xFF, 0},
	}
	for _, op := range []Operation{CMP, CPX, CPY} {
		for _, test := range tests {
			c, _ := Setup(0xEA)
			c.P = P_S1 | P_OVERFLOW
			switch op {
			case CMP:
				c.A = test.reg
			case CPX:
				c.X = test.reg
			case CPY:
				c.Y = test.reg
			}
			run(c, op, Immediate{test.mem})
			if got, want := c.P, P_S1|P_OVERFLOW|test.want; got != want {
				t.Errorf("%s 0x%.2X vs 0x%.2X: flags got %s want %s", op, test.reg, test.mem, got, want)
			}
			if got, want := c.A|c.X|c.Y, test.reg; got != want {
				t.Errorf("%s changed a register", op)
			}
		}
	}
}

func TestLogical(t *testing.T) {
	tests := []struct {
		op    Operation
		a, m  uint8
		want  uint8
		wantP Status
	}{
		{AND, 0xF0, 0x0F, 0x00, P_ZERO},
		{AND, 0xF0, 0x8F, 0x80, P_NEGATIVE},
		{ORA, 0x01, 0x80, 0x81, P_NEGATIVE},
		{ORA, 0x00, 0x00, 0x00, P_ZERO},
		{EOR, 0xFF, 0x0F, 0xF0, P_NEGATIVE},
		{EOR, 0x55, 0x55, 0x00, P_ZERO},
	}
	for _, test := range tests {
		c, _ := Setup(0xEA)
		c.P = P_S1 | P_CARRY
		c.A = test.a
		run(c, test.op, Immediate{test.m})
		if got, want := c.A, test.want; got != want {
			t.Errorf("%s 0x%.2X,0x%.2X: got 0x%.2X want 0x%.2X", test.op, test.a, test.m, got, want)
		}
		if got, want := c.P, P_S1|P_CARRY|test.wantP; got != want {
			t.Errorf("%s 0x%.2X,0x%.2X: flags got %s want %s", test.op, test.a, test.m, got, want)
		}
	}
}

func TestBIT(t *testing.T) {
	tests := []struct {
		a, m  uint8
		wantP Status
	}{
		{0xFF, 0xC0, P_NEGATIVE | P_OVERFLOW},
		{0x0F, 0xC0, P_NEGATIVE | P_OVERFLOW | P_ZERO},
		{0x01, 0x41, P_OVERFLOW},
		{0x01, 0x01, 0},
	}
	for _, test := range tests {
		c, r := Setup(0xEA)
		c.P = P_S1
		c.A = test.a
		r.Write(0x0010, test.m)
		run(c, BIT, Zeropage{0x10})
		if got, want := c.P, P_S1|test.wantP; got != want {
			t.Errorf("BIT 0x%.2X,0x%.2X: flags got %s want %s", test.a, test.m, got, want)
		}
		if got, want := c.A, test.a; got != want {
			t.Errorf("BIT changed A to 0x%.2X", got)
		}
	}
}

func TestIncDec(t *testing.T) {
	c, r := Setup(0xEA)
	c.P = P_S1 | P_CARRY
	r.Write(0x0010, 0xFF)
	run(c, INC, Zeropage{0x10})
	if got, want := r.Read(0x0010), uint8(0x00); got != want {
		t.Errorf("INC got 0x%.2X want 0x%.2X", got, want)
	}
	if got, want := c.P, P_S1|P_CARRY|P_ZERO; got != want {
		t.Errorf("INC flags got %s want %s", got, want)
	}
	run(c, DEC, Zeropage{0x10})
	if got, want := r.Read(0x0010), uint8(0xFF); got != want {
		t.Errorf("DEC got 0x%.2X want 0x%.2X", got, want)
	}
	if got, want := c.P, P_S1|P_CARRY|P_NEGATIVE; got != want {
		t.Errorf("DEC flags got %s want %s", got, want)
	}

	tests := []struct {
		op   Operation
		reg  *uint8
		want uint8
	}{
		{INX, &c.X, 0x01},
		{INY, &c.Y, 0x01},
		{DEX, &c.X, 0xFF},
		{DEY, &c.Y, 0xFF},
	}
	for _, test := range tests {
		c.X, c.Y = 0, 0
		c.P = P_S1
		run(c, test.op, Implied{})
		if got := *test.reg; got != test.want {
			t.Errorf("%s got 0x%.2X want 0x%.2X", test.op, got, test.want)
		}
		if got, want := c.P.Get(P_NEGATIVE), test.want >= 0x80; got != want {
			t.Errorf("%s N got %t want %t", test.op, got, want)
		}
		if c.P.Get(P_CARRY) {
			t.Errorf("%s set carry", test.op)
		}
	}
}

func TestTransfers(t *testing.T) {
	tests := []struct {
		op    Operation
		setup func(c *Processor)
		check func(c *Processor) uint8
	}{
		{TAX, func(c *Processor) { c.A = 0x80 }, func(c *Processor) uint8 { return c.X }},
		{TAY, func(c *Processor) { c.A = 0x80 }, func(c *Processor) uint8 { return c.Y }},
		{TXA, func(c *Processor) { c.X = 0x80 }, func(c *Processor) uint8 { return c.A }},
		{TYA, func(c *Processor) { c.Y = 0x80 }, func(c *Processor) uint8 { return c.A }},
		{TSX, func(c *Processor) { c.S = 0x80 }, func(c *Processor) uint8 { return c.X }},
	}
	for _, test := range tests {
		c, _ := Setup(0xEA)
		c.P = P_S1
		test.setup(c)
		run(c, test.op, Implied{})
		if got, want := test.check(c), uint8(0x80); got != want {
			t.Errorf("%s got 0x%.2X want 0x%.2X", test.op, got, want)
		}
		if got, want := c.P, P_S1|P_NEGATIVE; got != want {
			t.Errorf("%s flags got %s want %s", test.op, got, want)
		}
	}
}

func TestFlags(t *testing.T) {
	tests := []struct {
		op   Operation
		flag Status
		set  bool
	}{
		{SEC, P_CARRY, true},
		{SED, P_DECIMAL, true},
		{SEI, P_INTERRUPT, true},
		{CLC, P_CARRY, false},
		{CLD, P_DECIMAL, false},
		{CLI, P_INTERRUPT, false},
		{CLV, P_OVERFLOW, false},
	}
	for _, test := range tests {
		for _, start := range []Status{0x00, 0xFF} {
			c, _ := Setup(0xEA)
			c.P = start
			run(c, test.op, Implied{})
			want := start
			want.Set(test.flag, test.set)
			if got := c.P; got != want {
				t.Errorf("%s from %s: got %s want %s", test.op, start, got, want)
			}
		}
	}
}

func TestBranches(t *testing.T) {
	tests := []struct {
		op    Operation
		flag  Status
		taken bool // Whether the branch is taken with flag set.
	}{
		{BCC, P_CARRY, false},
		{BCS, P_CARRY, true},
		{BEQ, P_ZERO, true},
		{BNE, P_ZERO, false},
		{BMI, P_NEGATIVE, true},
		{BPL, P_NEGATIVE, false},
		{BVC, P_OVERFLOW, false},
		{BVS, P_OVERFLOW, true},
	}
	for _, test := range tests {
		for _, set := range []bool{false, true} {
			c, r := Setup(0xEA)
			c.P = P_S1
			c.P.Set(test.flag, set)
			load(r, RESET, opcodeFor(t, test.op), 0xFC) // *-2
			if _, err := c.Tick(); err != nil {
				t.Fatalf("%s: %v", test.op, err)
			}
			want := RESET + 2
			if set == test.taken {
				want = RESET - 2
			}
			if got := c.PC; got != want {
				t.Errorf("%s flag set %t: PC got 0x%.4X want 0x%.4X", test.op, set, got, want)
			}
		}
	}
}

// opcodeFor finds the relative opcode for a branch.
func opcodeFor(t *testing.T, op Operation) uint8 {
	t.Helper()
	for i, o := range opcodes {
		if o.op == op {
			return uint8(i)
		}
	}
	t.Fatalf("no opcode for %s", op)
	return 0
}
