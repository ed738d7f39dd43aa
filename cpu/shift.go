package cpu

// RotateLeft shifts x left one bit with carryIn entering bit 0.
// Returns the new value and whether bit 7 was shifted out.
func RotateLeft(carryIn bool, x uint8) (uint8, bool) {
	carryOut := x&0x80 != 0
	x <<= 1
	if carryIn {
		x |= 0x01
	}
	return x, carryOut
}

// RotateRight shifts x right one bit with carryIn entering bit 7.
// Returns the new value and whether bit 0 was shifted out.
func RotateRight(carryIn bool, x uint8) (uint8, bool) {
	carryOut := x&0x01 != 0
	x >>= 1
	if carryIn {
		x |= 0x80
	}
	return x, carryOut
}
