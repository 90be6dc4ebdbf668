package formvalidation

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	"github.com/rs/zerolog"
)

// State is the position of a field in its validation cycle.
type State uint8

const (
	StateIdle       State = iota // nothing requested yet
	StateDebouncing              // value changed, waiting out the debounce window
	StateValidating              // chain running
	StateSettled                 // latest requested result published
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDebouncing:
		return "debouncing"
	case StateValidating:
		return "validating"
	case StateSettled:
		return "settled"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Option configures a [Field].
type Option func(*options)

type options struct {
	label    string
	footer   string
	required bool
	maxChars int
	debounce time.Duration
	slot     Slot
	trigger  *Trigger
	logger   zerolog.Logger
	metrics  *Metrics
	policy   ChainPolicy
	limit    int
	onChange []func(Result)
}

// WithLabel sets the header text. It is also the name carried by the
// required-field message.
func WithLabel(label string) Option {
	return func(o *options) { o.label = label }
}

// WithFooter sets the text shown under the field while it is valid.
func WithFooter(footer string) Option {
	return func(o *options) { o.footer = footer }
}

// WithRequired adds a [RequiredField] validator keyed by the label.
func WithRequired(required bool) Option {
	return func(o *options) { o.required = required }
}

// WithMaxCharacters adds a [CharacterLimit] validator. Zero disables it.
func WithMaxCharacters(n int) Option {
	return func(o *options) { o.maxChars = n }
}

// WithDebounce sets the quiet period after the last value change before
// validation runs. Zero validates on every change.
func WithDebounce(d time.Duration) Option {
	return func(o *options) { o.debounce = d }
}

// WithSlot publishes results into s.
func WithSlot(s Slot) Option {
	return func(o *options) { o.slot = s }
}

// WithTrigger subscribes the field to t for immediate validation.
func WithTrigger(t *Trigger) Option {
	return func(o *options) { o.trigger = t }
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithChainPolicy selects concurrent (default) or sequential evaluation.
func WithChainPolicy(p ChainPolicy) Option {
	return func(o *options) { o.policy = p }
}

// WithConcurrencyLimit bounds how many validators of one pass run at once.
func WithConcurrencyLimit(n int) Option {
	return func(o *options) { o.limit = n }
}

// WithOnChange registers fn to receive every published result, in request
// order. fn runs on a validation goroutine and must not block for long.
// fn must not call [Field.Close] or [Field.Wait] on the same field; both
// would deadlock.
func WithOnChange(fn func(Result)) Option {
	return func(o *options) {
		if fn != nil {
			o.onChange = append(o.onChange, fn)
		}
	}
}

// Field is the validation controller of one form field. It owns the
// current value, the validators and the latest result.
//
// A value change waits out the debounce window, then runs the chain. A
// trigger or [Field.Validate] skips the window. Every pass gets a request
// id; a pass that completes after a newer one was requested is dropped, so
// the published result always belongs to the latest request. A running pass
// is never cancelled by a value change.
type Field[T any] struct {
	key    string
	opts   options
	log    zerolog.Logger
	ctx    context.Context
	cancel context.CancelFunc
	unsub  func()

	mu          sync.Mutex
	cond        *sync.Cond
	value       T
	validators  []Validator[T]
	required    bool
	maxChars    int
	timer       *time.Timer
	debounceGen uint64
	issued      uint64
	inFlight    int
	result      Result
	state       State
	closed      bool

	notifyMu sync.Mutex
	notified uint64
}

// NewField mounts a field: it publishes Valid to the slot and subscribes
// to the trigger. validators run after the required and character-limit
// validators enabled by options. Panics on a nil validator or a negative
// character limit.
func NewField[T any](key string, initial T, validators []Validator[T], opts ...Option) *Field[T] {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxChars < 0 {
		panic(fmt.Sprintf("formvalidation: field %q: negative max characters %d", key, o.maxChars))
	}
	for i, v := range validators {
		if v == nil {
			panic(fmt.Sprintf("formvalidation: field %q: validator %d is nil", key, i))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	f := &Field[T]{
		key:        key,
		opts:       o,
		log:        o.logger.With().Str("field", key).Logger(),
		ctx:        ctx,
		cancel:     cancel,
		value:      initial,
		validators: append([]Validator[T](nil), validators...),
		required:   o.required,
		maxChars:   o.maxChars,
	}
	f.cond = sync.NewCond(&f.mu)

	if o.slot != nil {
		o.slot.Set(Valid)
	}
	if o.trigger != nil {
		f.unsub = o.trigger.Subscribe(f.Validate)
	}
	return f
}

func (f *Field[T]) Key() string   { return f.key }
func (f *Field[T]) Label() string { return f.opts.label }

// Value returns the current value.
func (f *Field[T]) Value() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// SetValue records a value change and schedules a debounced validation.
// A pending debounce is restarted.
func (f *Field[T]) SetValue(v T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.value = v
	f.stopTimerLocked()
	if f.opts.debounce <= 0 {
		f.startLocked("change")
		return
	}
	gen := f.debounceGen
	f.state = StateDebouncing
	f.timer = time.AfterFunc(f.opts.debounce, func() { f.debounced(gen) })
	f.log.Debug().Dur("debounce", f.opts.debounce).Msg("validation scheduled")
}

// Validate validates the current value now, preempting a pending debounce.
// It does not wait for the result. This is the trigger subscription.
func (f *Field[T]) Validate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.stopTimerLocked()
	f.startLocked("trigger")
}

// ValidateNow validates the current value on the calling goroutine,
// publishes the result unless a newer pass was requested meanwhile, and
// returns it. The pass is cancelled when either ctx is done or the field is
// closed. A closed field returns its last result.
func (f *Field[T]) ValidateNow(ctx context.Context) Result {
	f.mu.Lock()
	if f.closed {
		r := f.result
		f.mu.Unlock()
		return r
	}
	f.stopTimerLocked()
	id, chain, value := f.issueLocked("now")
	f.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(f.ctx, cancel)
	defer stop()

	start := time.Now()
	r := chain.Run(ctx, f.opts.policy, f.opts.limit, value)
	f.complete(id, r, time.Since(start))
	return r
}

// Result returns the latest published result.
func (f *Field[T]) Result() Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result
}

func (f *Field[T]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Message returns the text to show under the field: the result message
// when it is not valid, the footer otherwise.
func (f *Field[T]) Message() string {
	r := f.Result()
	if r.IsValid() {
		return f.opts.footer
	}
	return r.Message().String()
}

// SetRequired adds or removes the required validator. It applies from the
// next pass on.
func (f *Field[T]) SetRequired(required bool) {
	f.mu.Lock()
	f.required = required
	f.mu.Unlock()
}

// SetMaxCharacters adds, changes or (with zero) removes the character-limit
// validator. It applies from the next pass on. Panics if n is negative.
func (f *Field[T]) SetMaxCharacters(n int) {
	if n < 0 {
		panic(fmt.Sprintf("formvalidation: field %q: negative max characters %d", f.key, n))
	}
	f.mu.Lock()
	f.maxChars = n
	f.mu.Unlock()
}

// SetValidators replaces the additional validators. It applies from the
// next pass on.
func (f *Field[T]) SetValidators(vs ...Validator[T]) {
	f.mu.Lock()
	f.validators = append([]Validator[T](nil), vs...)
	f.mu.Unlock()
}

// AddValidator appends v to the additional validators.
func (f *Field[T]) AddValidator(v Validator[T]) {
	if v == nil {
		panic(fmt.Sprintf("formvalidation: field %q: nil validator", f.key))
	}
	f.mu.Lock()
	f.validators = append(f.validators, v)
	f.mu.Unlock()
}

// Validators returns the chain the next pass will run.
func (f *Field[T]) Validators() Chain[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.chainLocked()
}

// Wait blocks until no debounce is pending and no pass is running.
func (f *Field[T]) Wait() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for f.inFlight > 0 || (f.timer != nil && !f.closed) {
		f.cond.Wait()
	}
}

// Close unmounts the field: pending work is abandoned, running passes are
// cancelled through their context and their results dropped, the trigger
// subscription is removed and the slot is cleared.
func (f *Field[T]) Close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	f.stopTimerLocked()
	f.state = StateIdle
	f.cond.Broadcast()
	f.mu.Unlock()

	if f.unsub != nil {
		f.unsub()
	}
	f.cancel()

	f.notifyMu.Lock()
	f.notified = math.MaxUint64
	if f.opts.slot != nil {
		f.opts.slot.Clear()
	}
	f.notifyMu.Unlock()
	f.log.Debug().Msg("field closed")
}

// DescribeInto adds the field as a property of an object schema: the value
// type is inferred from the current value, the label becomes the title and
// every validator that implements [Describer] documents itself.
func (f *Field[T]) DescribeInto(schema *openapi3.Schema) error {
	ref := openapi3.NewSchemaRef("", openapi3.NewSchema())
	if v := f.Value(); any(v) != nil {
		gen, err := openapi3gen.NewSchemaRefForValue(v, nil)
		if err != nil {
			return err
		}
		ref = gen
	}
	ref.Value.Title = f.opts.label
	if f.opts.footer != "" {
		ref.Value.Description = f.opts.footer
	}
	if err := Describe(f.key, schema, ref, f.Validators()...); err != nil {
		return err
	}
	if schema.Properties == nil {
		schema.Properties = openapi3.Schemas{}
	}
	schema.Properties[f.key] = ref
	return nil
}

func (f *Field[T]) chainLocked() Chain[T] {
	chain := make(Chain[T], 0, len(f.validators)+2)
	if f.required {
		chain = append(chain, RequiredField[T](f.opts.label))
	}
	if f.maxChars > 0 {
		chain = append(chain, CharacterLimit[T](f.maxChars))
	}
	return append(chain, f.validators...)
}

func (f *Field[T]) stopTimerLocked() {
	f.debounceGen++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

func (f *Field[T]) debounced(gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || gen != f.debounceGen {
		return
	}
	f.timer = nil
	f.startLocked("debounce")
}

func (f *Field[T]) issueLocked(reason string) (uint64, Chain[T], T) {
	f.issued++
	f.inFlight++
	f.state = StateValidating
	f.log.Debug().Uint64("request", f.issued).Str("reason", reason).Msg("validation started")
	return f.issued, f.chainLocked(), f.value
}

func (f *Field[T]) startLocked(reason string) {
	id, chain, value := f.issueLocked(reason)
	go func() {
		start := time.Now()
		r := chain.Run(f.ctx, f.opts.policy, f.opts.limit, value)
		f.complete(id, r, time.Since(start))
	}()
}

func (f *Field[T]) complete(id uint64, r Result, elapsed time.Duration) {
	defer f.done()
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	if id != f.issued {
		f.mu.Unlock()
		f.opts.metrics.dropStale()
		f.log.Debug().Uint64("request", id).Msg("stale result dropped")
		return
	}
	f.result = r
	if f.timer == nil {
		f.state = StateSettled
	}
	f.mu.Unlock()

	f.opts.metrics.observe(r, elapsed)
	f.log.Debug().Uint64("request", id).Stringer("result", r).Dur("elapsed", elapsed).Msg("validation settled")
	f.publish(id, r)
}

// done releases a pass once its result is published or dropped, so that
// Wait returns only after the slot holds the result.
func (f *Field[T]) done() {
	f.mu.Lock()
	f.inFlight--
	f.cond.Broadcast()
	f.mu.Unlock()
}

// publish delivers r to the slot and callbacks unless a newer result was
// already delivered or the field was closed.
func (f *Field[T]) publish(id uint64, r Result) {
	f.notifyMu.Lock()
	defer f.notifyMu.Unlock()
	if id <= f.notified {
		return
	}
	f.notified = id
	if f.opts.slot != nil {
		f.opts.slot.Set(r)
	}
	for _, fn := range f.opts.onChange {
		fn(r)
	}
}
