package formvalidation

import (
	"maps"
	"slices"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog"
)

// GatePolicy decides which result kinds block a form.
type GatePolicy uint8

const (
	// ErrorsBlock lets Info and Warning results through; only Error blocks.
	ErrorsBlock GatePolicy = iota
	// WarningsBlock blocks on Warning and Error.
	WarningsBlock
)

func (p GatePolicy) String() string {
	if p == WarningsBlock {
		return "warnings-block"
	}
	return "errors-block"
}

// FormOption configures a [Form].
type FormOption func(*Form)

// WithGatePolicy sets which result kinds make [Form.IsValid] false.
func WithGatePolicy(p GatePolicy) FormOption {
	return func(f *Form) { f.gate = p }
}

// WithFormLogger sets the logger used by the form and handed to attached
// fields.
func WithFormLogger(l zerolog.Logger) FormOption {
	return func(f *Form) { f.logger = l }
}

// Form collects the last published result of each mounted field by key.
// A key is present from the moment its field mounts until it unmounts. Each
// field writes only its own key.
type Form struct {
	mu      sync.RWMutex
	results map[string]Result
	owners  map[string]uint64
	slots   uint64
	gate    GatePolicy
	trigger *Trigger
	logger  zerolog.Logger
}

// NewForm creates an empty form with its own submit trigger.
func NewForm(opts ...FormOption) *Form {
	f := &Form{
		results: make(map[string]Result),
		owners:  make(map[string]uint64),
		trigger: NewTrigger(),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Attach mounts a field wired to form: it publishes into form under key and
// validates when the form is submitted. opts are applied after the wiring
// and may override it.
func Attach[T any](form *Form, key string, initial T, validators []Validator[T], opts ...Option) *Field[T] {
	base := []Option{
		WithSlot(form.Slot(key)),
		WithTrigger(form.trigger),
		WithLogger(form.logger),
	}
	return NewField(key, initial, validators, append(base, opts...)...)
}

// Trigger returns the trigger fired by [Form.Submit].
func (f *Form) Trigger() *Trigger { return f.trigger }

// Submit asks every attached field to validate its current value now.
// Results arrive asynchronously; wait on the fields before reading
// [Form.IsValid] when the answer must reflect this submission.
func (f *Form) Submit() {
	f.logger.Debug().Int("fields", f.trigger.Len()).Msg("form submitted")
	f.trigger.Fire()
}

// Set records r for key.
func (f *Form) Set(key string, r Result) {
	f.mu.Lock()
	f.results[key] = r
	f.mu.Unlock()
}

// Clear removes key. An absent key does not take part in IsValid.
func (f *Form) Clear(key string) {
	f.mu.Lock()
	delete(f.results, key)
	f.mu.Unlock()
}

// Result returns the result for key and whether the key is present.
func (f *Form) Result(key string) (Result, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	r, ok := f.results[key]
	return r, ok
}

// Results returns a copy of the keyed results.
func (f *Form) Results() map[string]Result {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return maps.Clone(f.results)
}

// Keys returns the present keys in sorted order.
func (f *Form) Keys() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Sorted(maps.Keys(f.results))
}

// IsValid reports whether every present result passes the gate policy.
// With the default policy only Error results block.
func (f *Form) IsValid() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, r := range f.results {
		if !r.Passes(f.gate) {
			return false
		}
	}
	return true
}

// Err returns the blocking results as [validation.Errors] keyed by field,
// or nil when the form is valid.
func (f *Form) Err() error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	errs := validation.Errors{}
	for key, r := range f.results {
		if !r.Passes(f.gate) {
			errs[key] = r.Err()
		}
	}
	return errs.Filter()
}

// Slot returns the slot a field publishes into for key. The newest slot
// for a key owns it: older slots for the same key stop writing, so a field
// remounted under the same key is not cleared when the old one unmounts.
func (f *Form) Slot(key string) Slot {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slots++
	f.owners[key] = f.slots
	return formSlot{form: f, key: key, owner: f.slots}
}

type formSlot struct {
	form  *Form
	key   string
	owner uint64
}

func (s formSlot) Set(r Result) {
	s.form.mu.Lock()
	defer s.form.mu.Unlock()
	if s.form.owners[s.key] == s.owner {
		s.form.results[s.key] = r
	}
}

func (s formSlot) Clear() {
	s.form.mu.Lock()
	defer s.form.mu.Unlock()
	if s.form.owners[s.key] == s.owner {
		delete(s.form.results, s.key)
		delete(s.form.owners, s.key)
	}
}
