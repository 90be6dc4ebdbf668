package formvalidation

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Kind is the tag of a [Result]. Kinds are ordered by severity.
type Kind uint8

const (
	KindValid Kind = iota
	KindInfo
	KindWarning
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindValid:
		return "valid"
	case KindInfo:
		return "info"
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Message is a localizable message key plus its format arguments.
// Resolving the key against a catalog is left to the host.
type Message struct {
	Key  string
	Args []any
}

// String renders the message for display. Floating point arguments are
// formatted with %g; the arguments themselves are never rounded.
func (m Message) String() string {
	if len(m.Args) == 0 {
		return m.Key
	}
	args := make([]string, len(m.Args))
	for i, a := range m.Args {
		switch v := a.(type) {
		case float32:
			args[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
		case float64:
			args[i] = strconv.FormatFloat(v, 'g', -1, 64)
		default:
			args[i] = fmt.Sprint(v)
		}
	}
	return m.Key + ": " + strings.Join(args, ", ")
}

// Equal reports whether both messages have the same key and arguments.
func (m Message) Equal(o Message) bool {
	if m.Key != o.Key || len(m.Args) != len(o.Args) {
		return false
	}
	for i := range m.Args {
		if !reflect.DeepEqual(m.Args[i], o.Args[i]) {
			return false
		}
	}
	return true
}

// Result is the outcome of a validation pass. The zero value is [Valid].
// Results are immutable; a new pass replaces the previous result.
type Result struct {
	kind Kind
	msg  Message
}

// Valid is the neutral result: no validator objected.
var Valid = Result{}

// Info returns an informational result. Info does not block a form.
func Info(key string, args ...any) Result {
	return Result{kind: KindInfo, msg: Message{Key: key, Args: args}}
}

// Warning returns a warning result.
func Warning(key string, args ...any) Result {
	return Result{kind: KindWarning, msg: Message{Key: key, Args: args}}
}

// Error returns an error result.
func Error(key string, args ...any) Result {
	return Result{kind: KindError, msg: Message{Key: key, Args: args}}
}

func (r Result) Kind() Kind       { return r.kind }
func (r Result) Message() Message { return r.msg }
func (r Result) IsValid() bool    { return r.kind == KindValid }

// SameKind compares tags only.
func (r Result) SameKind(o Result) bool { return r.kind == o.kind }

// Equal compares tag and message. Used to detect no-op updates.
func (r Result) Equal(o Result) bool {
	return r.kind == o.kind && r.msg.Equal(o.msg)
}

func (r Result) String() string {
	if r.kind == KindValid {
		return r.kind.String()
	}
	return r.kind.String() + "(" + r.msg.String() + ")"
}

// Passes reports whether r lets a form submit under the given policy.
func (r Result) Passes(p GatePolicy) bool {
	switch r.kind {
	case KindError:
		return false
	case KindWarning:
		return p != WarningsBlock
	default:
		return true
	}
}

// Err converts a non-valid result into a [validation.Error] whose code is
// the message key. Valid returns nil.
func (r Result) Err() error {
	if r.kind == KindValid {
		return nil
	}
	params := map[string]any{"kind": r.kind.String()}
	for i, a := range r.msg.Args {
		params["arg"+strconv.Itoa(i)] = a
	}
	return validation.NewError(r.msg.Key, r.msg.String()).SetParams(params)
}

// Worst returns the most severe result, preferring the earliest on ties.
// Returns Valid for no results.
func Worst(results ...Result) Result {
	worst := Valid
	for _, r := range results {
		if r.kind > worst.kind {
			worst = r
		}
	}
	return worst
}
