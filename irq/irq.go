// Package irq defines the basic interface for working with a 6502
// family interrupt line. A component which generates interrupts
// implements Sender and gets installed into the CPU so neither needs
// to know about the other's logic.
package irq

// Sender is anything able to hold an interrupt line high.
type Sender interface {
	// Raised indicates whether the interrupt is currently held high.
	Raised() bool
}

// Line is a Sender driven directly by its owner (a test, a debugger, or
// glue code for a device which doesn't implement Sender itself).
type Line struct {
	raised bool
}

// Raise holds the line high until Clear is called.
func (l *Line) Raise() {
	l.raised = true
}

// Clear drops the line.
func (l *Line) Clear() {
	l.raised = false
}

// Raised implements Sender.
func (l *Line) Raised() bool {
	return l.raised
}
