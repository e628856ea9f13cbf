package buffer

import (
	"bufio"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {

	t.Run("WriteRead", func(t *testing.T) {
		buf := NewBufferSize(9)

		n, err := WriteUint8(buf, 0x2a)
		require.NoError(t, err)
		require.Equal(t, int64(1), n)

		n, err = WriteUint64(buf, 0x0102030405060708)
		require.NoError(t, err)
		require.Equal(t, int64(8), n)
		require.Equal(t, 0, buf.Available())

		var c8 uint8
		var c64 uint64

		_, err = ReadUint8(buf, &c8)
		require.NoError(t, err)
		require.Equal(t, uint8(0x2a), c8)

		_, err = ReadUint64(buf, &c64)
		require.NoError(t, err)
		require.Equal(t, uint64(0x0102030405060708), c64)
		require.Equal(t, 0, buf.Size())
	})

	t.Run("LittleEndian", func(t *testing.T) {
		buf := NewBufferSize(8)
		_, err := WriteUint64(buf, 1)
		require.NoError(t, err)
		require.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0}, buf.Bytes())
	})

	t.Run("Overflow", func(t *testing.T) {
		buf := NewBufferSize(4)
		_, err := WriteUint64(buf, 1)
		require.Error(t, err)
	})

	t.Run("Truncated", func(t *testing.T) {
		var c uint64
		_, err := ReadUint64(NewBuffer([]byte{1, 2, 3}), &c)
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("Nil", func(t *testing.T) {
		_, err := ReadUint64(NewBufferSize(8), nil)
		require.Error(t, err)
		_, err = ReadUint8(NewBufferSize(1), nil)
		require.Error(t, err)
	})

	t.Run("Bufio", func(t *testing.T) {
		var b bytes.Buffer
		w := bufio.NewWriterSize(&b, 16)
		for i := uint64(0); i < 5; i++ {
			_, err := WriteUint64(w, i)
			require.NoError(t, err)
		}
		require.NoError(t, w.Flush())
		require.Equal(t, 40, b.Len())

		r := bufio.NewReader(&b)
		for i := uint64(0); i < 5; i++ {
			var c uint64
			_, err := ReadUint64(r, &c)
			require.NoError(t, err)
			require.Equal(t, i, c)
		}
	})
}
