package cpu

// Status is the packed processor status register (P).
type Status uint8

const (
	P_NEGATIVE  = Status(0x80)
	P_OVERFLOW  = Status(0x40)
	P_S1        = Status(0x20) // Always 1 by convention. Never computed by an operation.
	P_B         = Status(0x10) // Only set in the copy pushed by BRK/PHP.
	P_DECIMAL   = Status(0x08)
	P_INTERRUPT = Status(0x04)
	P_ZERO      = Status(0x02)
	P_CARRY     = Status(0x01)
)

// Get returns whether every bit in flag is set.
func (s Status) Get(flag Status) bool {
	return s&flag == flag
}

// Set sets or clears the bits in flag leaving all others alone.
func (s *Status) Set(flag Status, set bool) {
	if set {
		*s |= flag
	} else {
		*s &^= flag
	}
}

// String renders the flags MSB first as NV-BDIZC with a . for any clear bit.
func (s Status) String() string {
	const names = "NV-BDIZC"
	out := make([]byte, 8)
	for i := range out {
		out[i] = '.'
		if s&(0x80>>uint(i)) != 0 {
			out[i] = names[i]
		}
	}
	return string(out)
}
