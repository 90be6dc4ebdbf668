package formvalidation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateLayout(t *testing.T) {
	minDate := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	maxDate := time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC)
	v := DateLayout[string](time.DateOnly).Min(minDate).Max(maxDate)

	tests := []struct {
		in      string
		want    Kind
		wantKey string
	}{
		{in: "", want: KindValid},
		{in: "2024-02-29", want: KindValid},
		{in: "2020-01-01", want: KindValid},
		{in: "2030-12-31", want: KindValid},
		{in: "2023-02-29", want: KindError, wantKey: MessageInvalidDate},
		{in: "29/02/2024", want: KindError, wantKey: MessageInvalidDate},
		{in: "2019-12-31", want: KindError, wantKey: MessageDateBefore},
		{in: "2031-01-01", want: KindError, wantKey: MessageDateAfter},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := v.Validate(context.Background(), tt.in)
			assert.Equal(t, tt.want, got.Kind())
			assert.Equal(t, tt.wantKey, got.Message().Key)
		})
	}
}

func TestDateRange(t *testing.T) {
	minDate := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	maxDate := time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)
	v := DateRange(minDate, maxDate)
	ctx := context.Background()

	assert.Equal(t, Valid, v.Validate(ctx, time.Time{}))
	assert.Equal(t, Valid, v.Validate(ctx, minDate))
	assert.Equal(t, Valid, v.Validate(ctx, maxDate))

	before := minDate.Add(-time.Second)
	got := v.Validate(ctx, before)
	assert.True(t, Error(MessageDateBefore, before, minDate).Equal(got), got.String())
	assert.Equal(t, MessageDateAfter, v.Validate(ctx, maxDate.AddDate(0, 0, 1)).Message().Key)
}

func TestDateRange_OpenSides(t *testing.T) {
	pivot := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	assert.Equal(t, KindValid, DateRange(pivot, time.Time{}).Validate(ctx, pivot.AddDate(50, 0, 0)).Kind())
	assert.Equal(t, KindValid, DateRange(time.Time{}, pivot).Validate(ctx, pivot.AddDate(-50, 0, 0)).Kind())
}

func TestDateRange_Inverted(t *testing.T) {
	require.Panics(t, func() {
		DateRange(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	})
}

func TestDateLayout_BoundsReturnCopies(t *testing.T) {
	minDate := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	open := DateLayout[string](time.DateOnly)
	bounded := open.Min(minDate)
	ctx := context.Background()

	assert.Equal(t, KindValid, open.Validate(ctx, "2019-06-01").Kind())
	assert.Equal(t, KindError, bounded.Validate(ctx, "2019-06-01").Kind())
}
