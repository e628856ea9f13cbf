package polynomial

import (
	"bytes"
	"io"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/unipoly/utils/buffer"
	"github.com/tuneinsight/unipoly/utils/sampling"
)

type celsius float64

func testSerialization[T Number](t *testing.T, p Polynomial[T]) {

	t.Run(reflect.TypeOf(p).String(), func(t *testing.T) {

		data, err := p.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, data, p.BinarySize())

		var q Polynomial[T]
		require.NoError(t, q.UnmarshalBinary(data))
		require.True(t, p.Equal(q), "MarshalBinary -> UnmarshalBinary: %v != %v", p, q)

		var buf bytes.Buffer
		n, err := p.WriteTo(&buf)
		require.NoError(t, err)
		require.Equal(t, int64(p.BinarySize()), n)
		require.Equal(t, data, buf.Bytes())

		var r Polynomial[T]
		n, err = r.ReadFrom(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		require.Equal(t, int64(p.BinarySize()), n)
		require.True(t, p.Equal(r), "WriteTo -> ReadFrom: %v != %v", p, r)
	})
}

func TestSerialization(t *testing.T) {

	prng, err := sampling.NewKeyedPRNG([]byte("serialization"))
	require.NoError(t, err)
	s := sampling.NewSampler(prng)

	testSerialization(t, randomInt64(s, 7))
	testSerialization(t, randomFloat64(s, 7))
	testSerialization(t, randomComplex128(s, 7))
	testSerialization(t, NewPolynomial[int](-1, 0, 1))
	testSerialization(t, NewPolynomial[int8](-128, 127, -5))
	testSerialization(t, NewPolynomial[uint16](65535, 0, 3))
	testSerialization(t, NewPolynomial[uint64](1<<63, 42))
	testSerialization(t, NewPolynomial[float32](1.1, -2.5e-7, 3))
	testSerialization(t, NewPolynomial[complex64](complex(1.5, -2), 3i))
	testSerialization(t, NewPolynomial[celsius](-40, 36.6))
	testSerialization(t, Polynomial[int]{})

	t.Run("ZeroValue", func(t *testing.T) {
		data, err := Polynomial[int]{}.MarshalBinary()
		require.NoError(t, err)
		var q Polynomial[int]
		require.NoError(t, q.UnmarshalBinary(data))
		require.Equal(t, []int{0}, q.coeffs)
	})

	t.Run("BinarySize", func(t *testing.T) {
		require.Equal(t, 1+8+3*8, NewPolynomial[int8](1, 2, 3).BinarySize())
		require.Equal(t, 1+8+3*16, NewPolynomial[complex64](1, 2, 3).BinarySize())
	})

	t.Run("KindMismatch", func(t *testing.T) {
		data, err := NewPolynomial[int64](1, 2).MarshalBinary()
		require.NoError(t, err)

		q := NewPolynomial(3.0)
		require.ErrorIs(t, q.UnmarshalBinary(data), ErrKindMismatch)
		require.Equal(t, []float64{3}, q.Coefficients(), "failed decoding should not modify the receiver")

		var r Polynomial[int32]
		require.ErrorIs(t, r.UnmarshalBinary(data), ErrKindMismatch)
	})

	t.Run("Empty", func(t *testing.T) {
		buf := buffer.NewBufferSize(9)
		_, err := buffer.WriteUint8(buf, uint8(reflect.Int))
		require.NoError(t, err)
		_, err = buffer.WriteUint64(buf, 0)
		require.NoError(t, err)

		var q Polynomial[int]
		require.ErrorIs(t, q.UnmarshalBinary(buf.Bytes()), ErrEmptyPolynomial)
	})

	t.Run("Truncated", func(t *testing.T) {
		data, err := NewPolynomial[complex128](1, 2, 3).MarshalBinary()
		require.NoError(t, err)

		q := NewPolynomial[complex128](7)
		require.ErrorIs(t, q.UnmarshalBinary(data[:len(data)-3]), io.ErrUnexpectedEOF)
		require.Equal(t, []complex128{7}, q.Coefficients())

		require.Error(t, q.UnmarshalBinary(nil))
	})
}

func TestDigest(t *testing.T) {

	p := NewPolynomial(1, 2, 3)

	require.Equal(t, p.Digest(), p.CopyNew().Digest())
	require.Equal(t, p.Digest(), NewPolynomial(1, 2, 3).Digest())
	require.NotEqual(t, p.Digest(), NewPolynomial(0, 1, 2, 3).Digest(), "leading zeros are part of the polynomial")
	require.NotEqual(t, p.Digest(), NewPolynomial(1, 2, 4).Digest())
	require.Equal(t, NewPolynomial[int]().Digest(), Polynomial[int]{}.Digest())

	// Same coefficient values, different coefficient kinds.
	require.NotEqual(t, NewPolynomial[int64](1, 2).Digest(), NewPolynomial[uint64](1, 2).Digest())

	q := p.CopyNew()
	q.Scale(2)
	require.NotEqual(t, p.Digest(), q.Digest())
}
