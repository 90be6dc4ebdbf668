package formvalidation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacterLimit(t *testing.T) {
	ctx := context.Background()
	r := CharacterLimit[string](5)

	assert.Equal(t, Valid, r.Validate(ctx, "hello"))
	assert.Equal(t, Valid, r.Validate(ctx, ""))
	assert.True(t, r.Validate(ctx, "hello!").Equal(Error(MessageCharacterLimit, 5)))

	// Characters, not bytes.
	assert.Equal(t, Valid, r.Validate(ctx, "Straß"))
	assert.Equal(t, KindError, r.Validate(ctx, "Straße").Kind())
}

func TestCharacterLimit_NonString(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, Valid, CharacterLimit[any](5).Validate(ctx, 42))
	assert.Equal(t, Valid, CharacterLimit[any](5).Validate(ctx, nil))
	assert.Equal(t, Valid, CharacterLimit[int](0).Validate(ctx, 123456))

	s := "toolong"
	assert.Equal(t, KindError, CharacterLimit[*string](3).Validate(ctx, &s).Kind())
	assert.Equal(t, KindError, CharacterLimit[[]byte](3).Validate(ctx, []byte("four")).Kind())
}

func TestCharacterLimit_Zero(t *testing.T) {
	ctx := context.Background()
	r := CharacterLimit[string](0)

	assert.Equal(t, Valid, r.Validate(ctx, ""))
	assert.Equal(t, KindError, r.Validate(ctx, "a").Kind())
}

func TestCharacterLimit_Negative(t *testing.T) {
	require.Panics(t, func() { CharacterLimit[string](-1) })
}
