package formvalidation

import "sync"

// Slot receives a field's published results. A field sets Valid when it is
// created, every settled result afterwards, and clears the slot when it is
// closed so that "no field" is distinguishable from "field is valid".
type Slot interface {
	Set(Result)
	Clear()
}

// ResultSlot is a standalone Slot for hosts that bind a single field.
// The zero value is ready to use and holds no result.
type ResultSlot struct {
	mu      sync.RWMutex
	result  Result
	present bool
}

func (s *ResultSlot) Set(r Result) {
	s.mu.Lock()
	s.result, s.present = r, true
	s.mu.Unlock()
}

func (s *ResultSlot) Clear() {
	s.mu.Lock()
	s.result, s.present = Valid, false
	s.mu.Unlock()
}

// Get returns the last result and whether one is present.
func (s *ResultSlot) Get() (Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result, s.present
}
