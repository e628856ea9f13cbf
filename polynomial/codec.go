package polynomial

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"

	"github.com/tuneinsight/unipoly/utils/buffer"
	"github.com/zeebo/blake3"
)

var (
	// ErrKindMismatch is returned when decoding a polynomial whose coefficients
	// were encoded from a different kind of Number.
	ErrKindMismatch = errors.New("coefficient kind mismatch")

	// ErrEmptyPolynomial is returned when decoding a polynomial with no coefficient.
	ErrEmptyPolynomial = errors.New("empty polynomial")
)

// kind returns the reflect.Kind of T, which is used as the type tag of the
// binary encoding.
func kind[T Number]() reflect.Kind {
	var t T
	return reflect.TypeOf(t).Kind()
}

// words returns the number of uint64 words used to encode one coefficient of kind k.
func words(k reflect.Kind) int {
	if k == reflect.Complex64 || k == reflect.Complex128 {
		return 2
	}
	return 1
}

// BinarySize returns the serialized size of the object in bytes.
func (p Polynomial[T]) BinarySize() (size int) {
	return 1 + 8 + len(p.values())*words(kind[T]())*8
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// The encoding is a one byte kind tag, the number of coefficients as a
// uint64 and then the coefficients, highest degree first. Integer and
// floating-point coefficients take one uint64 word, complex coefficients two
// (real then imaginary part). Floating-point values are widened to float64.
//
// Unless w implements the buffer.Writer interface (see utils/buffer), it
// will be wrapped into a bufio.Writer.
func (p Polynomial[T]) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		values := p.values()

		var inc int64
		if inc, err = buffer.WriteUint8(w, uint8(kind[T]())); err != nil {
			return inc, fmt.Errorf("buffer.WriteUint8: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteUint64(w, uint64(len(values))); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteUint64: %w", err)
		}

		n += inc

		v := reflect.ValueOf(values)
		for i := 0; i < v.Len(); i++ {
			if inc, err = writeCoefficient(w, v.Index(i)); err != nil {
				return n + inc, fmt.Errorf("cannot WriteTo: coefficient %d: %w", i, err)
			}
			n += inc
		}

		return n, w.Flush()

	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface. On error, p is left unchanged.
//
// Unless r implements the buffer.Reader interface (see utils/buffer), it
// will be wrapped into a bufio.Reader.
func (p *Polynomial[T]) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		var tag uint8
		if inc, err = buffer.ReadUint8(r, &tag); err != nil {
			return inc, fmt.Errorf("buffer.ReadUint8: %w", err)
		}

		n += inc

		k := kind[T]()
		if reflect.Kind(tag) != k {
			return n, fmt.Errorf("cannot ReadFrom: encoded kind is %s but receiver is %s: %w", reflect.Kind(tag), k, ErrKindMismatch)
		}

		var size uint64
		if inc, err = buffer.ReadUint64(r, &size); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadUint64: %w", err)
		}

		n += inc

		if size == 0 {
			return n, fmt.Errorf("cannot ReadFrom: %w", ErrEmptyPolynomial)
		}

		// Allocation is driven by the bytes actually read, so that a corrupted
		// size cannot trigger a huge allocation.
		var coeffs []T
		var c T
		cv := reflect.ValueOf(&c).Elem()
		for i := uint64(0); i < size; i++ {
			if inc, err = readCoefficient(r, cv); err != nil {
				return n + inc, fmt.Errorf("cannot ReadFrom: coefficient %d: %w", i, err)
			}
			n += inc
			coeffs = append(coeffs, c)
		}

		p.coeffs = coeffs

		return n, nil

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (p Polynomial[T]) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary or
// WriteTo on the object.
func (p *Polynomial[T]) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}

// Digest returns the blake3 hash of the binary encoding of the polynomial.
// Equal polynomials have the same digest, signed zeros excepted.
func (p Polynomial[T]) Digest() (digest [32]byte) {
	hasher := blake3.New()
	if _, err := p.WriteTo(hasher); err != nil {
		// blake3.Hasher.Write never fails.
		panic(err)
	}
	copy(digest[:], hasher.Sum(nil))
	return
}

func writeCoefficient(w buffer.Writer, v reflect.Value) (n int64, err error) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return buffer.WriteUint64(w, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return buffer.WriteUint64(w, v.Uint())
	case reflect.Float32, reflect.Float64:
		return buffer.WriteUint64(w, math.Float64bits(v.Float()))
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		if n, err = buffer.WriteUint64(w, math.Float64bits(real(c))); err != nil {
			return
		}
		var inc int64
		inc, err = buffer.WriteUint64(w, math.Float64bits(imag(c)))
		return n + inc, err
	default:
		return 0, fmt.Errorf("invalid coefficient kind %s", v.Kind())
	}
}

func readCoefficient(r buffer.Reader, v reflect.Value) (n int64, err error) {

	var lo uint64
	if n, err = buffer.ReadUint64(r, &lo); err != nil {
		return
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(int64(lo))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v.SetUint(lo)
	case reflect.Float32, reflect.Float64:
		v.SetFloat(math.Float64frombits(lo))
	case reflect.Complex64, reflect.Complex128:
		var hi uint64
		var inc int64
		if inc, err = buffer.ReadUint64(r, &hi); err != nil {
			return n + inc, err
		}
		n += inc
		v.SetComplex(complex(math.Float64frombits(lo), math.Float64frombits(hi)))
	default:
		return n, fmt.Errorf("invalid coefficient kind %s", v.Kind())
	}

	return n, nil
}
