package container

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapUnwrap(t *testing.T) {
	original := []byte("original bytes")
	payload := []byte{1, 2, 3}
	data := Wrap(original, payload)
	require.Len(t, data, 4+8+3+4)

	gotPayload, size, crc, err := Unwrap(data)
	require.NoError(t, err)
	require.Equal(t, payload, gotPayload)
	require.Equal(t, uint64(len(original)), size)
	require.NoError(t, Verify(original, size, crc))
}

func TestUnwrap_Errors(t *testing.T) {
	_, _, _, err := Unwrap([]byte("HUF1"))
	require.ErrorIs(t, err, ErrShortContainer)

	data := Wrap(nil, nil)
	data[0] = 'X'
	_, _, _, err = Unwrap(data)
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestVerify_Errors(t *testing.T) {
	_, size, crc, err := Unwrap(Wrap([]byte("abc"), nil))
	require.NoError(t, err)
	require.ErrorIs(t, Verify([]byte("abcd"), size, crc), ErrSizeMismatch)
	require.ErrorIs(t, Verify([]byte("abd"), size, crc), ErrChecksum)
}
