package formvalidation

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinMax_ErrorBand(t *testing.T) {
	r := ErrorRange(1, 1000)
	tests := []struct {
		value int
		want  Kind
	}{
		{value: 0, want: KindError},
		{value: 1, want: KindValid},
		{value: 1000, want: KindValid},
		{value: 1001, want: KindError},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("v:%d", tt.value), func(t *testing.T) {
			assert.Equal(t, tt.want, r.Validate(context.Background(), tt.value).Kind())
		})
	}
}

func TestMinMax_BothBands(t *testing.T) {
	r := MinMax(0, 100, -50, 200)
	tests := []struct {
		value int
		want  Result
	}{
		{value: -10, want: Warning(MessageLessThan, -10, 0)},
		{value: -60, want: Error(MessageLessThan, -60, -50)},
		{value: 50, want: Valid},
		{value: 150, want: Warning(MessageGreaterThan, 150, 100)},
		{value: 250, want: Error(MessageGreaterThan, 250, 200)},
		{value: 0, want: Valid},
		{value: 100, want: Valid},
		{value: -50, want: Warning(MessageLessThan, -50, 0)},
		{value: 200, want: Warning(MessageGreaterThan, 200, 100)},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("v:%d", tt.value), func(t *testing.T) {
			got := r.Validate(context.Background(), tt.value)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestMinMax_WarningOnly(t *testing.T) {
	r := WarningRange(0.5, 1.5)
	ctx := context.Background()

	assert.Equal(t, KindWarning, r.Validate(ctx, 0.4).Kind())
	assert.Equal(t, KindValid, r.Validate(ctx, 1.0).Kind())
	assert.Equal(t, KindWarning, r.Validate(ctx, 1.6).Kind())
	assert.Equal(t, KindValid, r.Validate(ctx, math.NaN()).Kind())
}

func TestMinMax_SingleSided(t *testing.T) {
	ctx := context.Background()
	r := NewMinMax(ErrorBelow[uint8](10), WarnBelow[uint8](20))

	assert.Equal(t, KindError, r.Validate(ctx, 9).Kind())
	assert.Equal(t, KindWarning, r.Validate(ctx, 15).Kind())
	assert.Equal(t, KindValid, r.Validate(ctx, 255).Kind())
}

func TestMinMax_ExactComparison(t *testing.T) {
	// 2^53+1 is not representable as float64; the comparison must not widen.
	const big int64 = 1<<53 + 1
	r := ErrorRange[int64](0, big-1)

	assert.Equal(t, KindError, r.Validate(context.Background(), big).Kind())
}

func TestMinMax_InvalidBands(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{name: "inverted warning", fn: func() { WarningRange(10, 1) }},
		{name: "inverted error", fn: func() { ErrorRange(10, 1) }},
		{name: "warning below error", fn: func() { MinMax(-100, 10, -50, 200) }},
		{name: "warning above error", fn: func() { MinMax(0, 300, -50, 200) }},
		{name: "single sided", fn: func() { NewMinMax(ErrorAbove[int](5), WarnAbove[int](6)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Panics(t, tt.fn)
		})
	}
}

func TestMinMax_EqualBands(t *testing.T) {
	require.NotPanics(t, func() { MinMax(0, 10, 0, 10) })
}

func TestMinMax_AsAny(t *testing.T) {
	ctx := context.Background()
	v := AsAny[float64](ErrorRange(0.0, 1.0))

	assert.Equal(t, KindValid, v.Validate(ctx, "abc").Kind())
	assert.Equal(t, KindValid, v.Validate(ctx, 2).Kind()) // int is not float64
	assert.Equal(t, KindError, v.Validate(ctx, 2.0).Kind())
}
