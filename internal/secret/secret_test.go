package secret

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_DestroyWipes(t *testing.T) {
	raw := []byte("hunter2")
	buf := New(raw)
	require.Equal(t, 7, buf.Len())

	buf.Destroy()

	assert.Equal(t, make([]byte, 7), raw)
	assert.Nil(t, buf.Bytes())
	assert.False(t, buf.IsSet())

	// second call is a no-op
	buf.Destroy()
}

func TestBuffer_NilIsAbsent(t *testing.T) {
	var buf *Buffer
	assert.Nil(t, buf.Bytes())
	assert.Zero(t, buf.Len())
	assert.False(t, buf.IsSet())
	buf.Destroy()
}

func TestBuffer_EmptyIsSet(t *testing.T) {
	buf := New(nil)
	assert.True(t, buf.IsSet())
	assert.Zero(t, buf.Len())
}

func TestClone_LeavesSourceUntouched(t *testing.T) {
	src := []byte("pw")
	buf := Clone(src)
	buf.Destroy()
	assert.Equal(t, []byte("pw"), src)
}

func TestDetach_TransfersOwnership(t *testing.T) {
	buf := FromString("plain")
	out := buf.Detach()

	buf.Destroy()

	assert.Equal(t, []byte("plain"), out)
	assert.False(t, buf.IsSet())
}

func TestUse_WipesOnError(t *testing.T) {
	raw := []byte("secret")
	errBoom := errors.New("boom")

	err := Use(raw, func(b *Buffer) error {
		assert.Equal(t, []byte("secret"), b.Bytes())
		return errBoom
	})

	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, make([]byte, 6), raw)
}
