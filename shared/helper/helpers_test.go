package helper_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/gecko/shared/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTypedValueOf(t *testing.T) {
	v, err := helper.GetTypedValueOf[int](func() (any, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	s, err := helper.GetTypedValueOf[string](func() (any, error) { return nil, nil })
	require.NoError(t, err)
	assert.Equal(t, "", s)

	_, err = helper.GetTypedValueOf[string](func() (any, error) { return 42, nil })
	assert.ErrorIs(t, err, helper.ErrUnexpectedType)

	boom := errors.New("boom")
	_, err = helper.GetTypedValueOf[int](func() (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
}

func TestGetTypedValueOf2(t *testing.T) {
	v, ok := helper.GetTypedValueOf2[string]("hi")
	assert.True(t, ok)
	assert.Equal(t, "hi", v)

	_, ok = helper.GetTypedValueOf2[string](nil)
	assert.False(t, ok)
}

func TestMustGetTypedValuePanics(t *testing.T) {
	assert.Panics(t, func() {
		helper.MustGetTypedValue[int](func() (any, error) { return "nope", nil })
	})
}
