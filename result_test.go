package formvalidation

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_ZeroValueIsValid(t *testing.T) {
	var r Result

	assert.True(t, r.IsValid())
	assert.Equal(t, KindValid, r.Kind())
	assert.True(t, r.Equal(Valid))
	assert.Equal(t, "valid", r.String())
}

func TestResult_SameKindVersusEqual(t *testing.T) {
	a := Error("tooLong", 5)
	b := Error("tooLong", 6)
	c := Warning("tooLong", 5)

	assert.True(t, a.SameKind(b))
	assert.False(t, a.Equal(b))
	assert.False(t, a.SameKind(c))
	assert.True(t, a.Equal(Error("tooLong", 5)))
	assert.True(t, Info("hint").Equal(Info("hint")))
	assert.False(t, Info("hint").Equal(Info("other")))
}

func TestMessage_String(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want string
	}{
		{name: "key only", msg: Message{Key: "isRequired"}, want: "isRequired"},
		{name: "int args", msg: Message{Key: "isLessThan", Args: []any{-10, 0}}, want: "isLessThan: -10, 0"},
		{name: "float args", msg: Message{Key: "isGreaterThan", Args: []any{1.5, float32(0.25)}}, want: "isGreaterThan: 1.5, 0.25"},
		{name: "large float", msg: Message{Key: "k", Args: []any{1e21}}, want: "k: 1e+21"},
		{name: "string arg", msg: Message{Key: "isRequired", Args: []any{"Name"}}, want: "isRequired: Name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.msg.String())
		})
	}
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "error(isRequired: Name)", Error(MessageRequired, "Name").String())
	assert.Equal(t, "warning(isLessThan: 1, 2)", Warning(MessageLessThan, 1, 2).String())
	assert.Equal(t, "info(hint)", Info("hint").String())
}

func TestResult_Passes(t *testing.T) {
	tests := []struct {
		r             Result
		errorsBlock   bool
		warningsBlock bool
	}{
		{r: Valid, errorsBlock: true, warningsBlock: true},
		{r: Info("i"), errorsBlock: true, warningsBlock: true},
		{r: Warning("w"), errorsBlock: true, warningsBlock: false},
		{r: Error("e"), errorsBlock: false, warningsBlock: false},
	}
	for _, tt := range tests {
		t.Run(tt.r.String(), func(t *testing.T) {
			assert.Equal(t, tt.errorsBlock, tt.r.Passes(ErrorsBlock))
			assert.Equal(t, tt.warningsBlock, tt.r.Passes(WarningsBlock))
		})
	}
}

func TestResult_Err(t *testing.T) {
	require.NoError(t, Valid.Err())

	err := Warning(MessageGreaterThan, 150, 100).Err()
	require.Error(t, err)
	assert.Equal(t, "isGreaterThan: 150, 100", err.Error())

	var verr validation.Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, MessageGreaterThan, verr.Code())
	assert.Equal(t, map[string]any{"kind": "warning", "arg0": 150, "arg1": 100}, verr.Params())
}

func TestWorst(t *testing.T) {
	first := Warning("first")

	assert.Equal(t, Valid, Worst())
	assert.Equal(t, Valid, Worst(Valid, Valid))
	assert.True(t, first.Equal(Worst(Info("i"), first, Warning("second"))))
	assert.Equal(t, KindError, Worst(first, Error("e"), Info("i")).Kind())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "error", KindError.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}
