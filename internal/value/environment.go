package value

// EnvStack is an ordered sequence of lexical scope frames, frame 0 being
// the global frame. It replaces the teacher's parent-pointer Env chain
// with a flat slice, since spec.md §3/§4.4 describes the environment as
// a stack with explicit push/pop operations and an invariant that at
// least the global frame always exists — a shape a slice expresses more
// directly than a chain of linked parents (see DESIGN.md).
type EnvStack struct {
	frames []map[string]Value
}

// NewEnvStack creates a stack containing only the global frame.
func NewEnvStack() *EnvStack {
	return &EnvStack{frames: []map[string]Value{make(map[string]Value)}}
}

// PushFrame adds a fresh empty frame on entry to a block.
func (s *EnvStack) PushFrame() {
	s.frames = append(s.frames, make(map[string]Value))
}

// PopFrame removes the innermost frame on exit from a block. It is a
// no-op if only the global frame remains — the global frame is never
// removed.
func (s *EnvStack) PopFrame() {
	if len(s.frames) <= 1 {
		return
	}

	s.frames = s.frames[:len(s.frames)-1]
}

// Declare inserts (name, val) into the innermost frame, overwriting any
// existing binding for name in that same frame (shadowing a binding in
// an outer frame is not an overwrite — it is a new entry here).
func (s *EnvStack) Declare(name string, val Value) {
	s.frames[len(s.frames)-1][name] = val
}

// Lookup scans frames innermost-to-outermost and returns the first
// binding found for name.
func (s *EnvStack) Lookup(name string) (Value, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if val, ok := s.frames[i][name]; ok {
			return val, true
		}
	}

	return nil, false
}

// Assign overwrites the first (innermost) binding of name and reports
// whether name was found. It does not create a new binding — a missing
// name is the caller's cue to raise UndeclaredVariable.
func (s *EnvStack) Assign(name string, val Value) bool {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if _, ok := s.frames[i][name]; ok {
			s.frames[i][name] = val

			return true
		}
	}

	return false
}
