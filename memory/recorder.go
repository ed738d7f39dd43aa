package memory

// Access is a single bus transaction seen by a Recorder.
type Access struct {
	Write bool
	Addr  uint16
	Val   uint8
}

// Recorder wraps another Bus and records every access made through it.
type Recorder struct {
	Bus
	Accesses []Access
}

// NewRecorder returns a Recorder in front of b.
func NewRecorder(b Bus) *Recorder {
	return &Recorder{Bus: b}
}

// Read implements Bus.
func (r *Recorder) Read(addr uint16) uint8 {
	val := r.Bus.Read(addr)
	r.Accesses = append(r.Accesses, Access{Addr: addr, Val: val})
	return val
}

// Write implements Bus.
func (r *Recorder) Write(addr uint16, val uint8) {
	r.Accesses = append(r.Accesses, Access{Write: true, Addr: addr, Val: val})
	r.Bus.Write(addr, val)
}

// Writes returns only the recorded writes.
func (r *Recorder) Writes() []Access {
	var out []Access
	for _, a := range r.Accesses {
		if a.Write {
			out = append(out, a)
		}
	}
	return out
}

// Clear drops everything recorded so far.
func (r *Recorder) Clear() {
	r.Accesses = nil
}
