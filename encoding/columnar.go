package encoding

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math"

	"github.com/arloliu/cfgcode/endian"
	"github.com/arloliu/cfgcode/errs"
	"github.com/arloliu/cfgcode/format"
)

// ColumnarEncoder appends values of type T to an internal payload buffer.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded payload. The slice is valid until the next Write,
	// WriteSlice or Finish call and must not be modified.
	Bytes() []byte
	// Len returns the number of values written.
	Len() int
	// Size returns the payload size in bytes.
	Size() int
	// Finish returns the buffer to the pool. The encoder is unusable afterwards
	// and any further call panics.
	Finish()
	// Write appends a single value.
	Write(value T)
	// WriteSlice appends values in order.
	WriteSlice(values []T)
}

// ColumnarDecoder reads values of type T from a payload.
type ColumnarDecoder[T comparable] interface {
	// All yields up to count values from data. It yields fewer values when data is
	// truncated; callers that need exactly count values should use Decode.
	All(data []byte, count int) iter.Seq[T]
	// At returns the value at index, or false when index is out of range or data is truncated.
	At(data []byte, index int, count int) (T, bool)
}

// NewEncoder creates an encoder for the given layout.
//
// Returns:
//   - ColumnarEncoder[uint64]: encoder backed by a pooled buffer
//   - error: ErrInvalidEncoding for unknown layouts
func NewEncoder(enc format.EncodingType, engine endian.EndianEngine) (ColumnarEncoder[uint64], error) {
	switch enc {
	case format.TypeRaw:
		return NewRawEncoder(engine), nil
	case format.TypeVarint:
		return NewVarintEncoder(), nil
	default:
		return nil, fmt.Errorf("%w: %s (0x%x)", errs.ErrInvalidEncoding, enc, uint8(enc))
	}
}

// NewDecoder creates a decoder for the given layout.
func NewDecoder(enc format.EncodingType, engine endian.EndianEngine) (ColumnarDecoder[uint64], error) {
	switch enc {
	case format.TypeRaw:
		return NewRawDecoder(engine), nil
	case format.TypeVarint:
		return NewVarintDecoder(), nil
	default:
		return nil, fmt.Errorf("%w: %s (0x%x)", errs.ErrInvalidEncoding, enc, uint8(enc))
	}
}

// Encode writes values with the given layout and returns a copy of the payload.
func Encode(enc format.EncodingType, engine endian.EndianEngine, values []uint64) ([]byte, error) {
	e, err := NewEncoder(enc, engine)
	if err != nil {
		return nil, err
	}
	defer e.Finish()

	e.WriteSlice(values)

	out := make([]byte, e.Size())
	copy(out, e.Bytes())

	return out, nil
}

// Decode reads exactly count values from data.
//
// Returns:
//   - []uint64: decoded values
//   - error: ErrInvalidEncoding, or ErrInvalidPayload when data does not hold
//     exactly count values
func Decode(enc format.EncodingType, engine endian.EndianEngine, data []byte, count int) ([]uint64, error) {
	switch enc {
	case format.TypeRaw:
		if len(data) != count*8 {
			return nil, fmt.Errorf("%w: raw payload has %d bytes, want %d", errs.ErrInvalidPayload, len(data), count*8)
		}
	case format.TypeVarint:
		// every uvarint takes at least one byte
		if len(data) < count {
			return nil, fmt.Errorf("%w: varint payload has %d bytes, want at least %d", errs.ErrInvalidPayload, len(data), count)
		}
	default:
		return nil, fmt.Errorf("%w: %s (0x%x)", errs.ErrInvalidEncoding, enc, uint8(enc))
	}

	d, err := NewDecoder(enc, engine)
	if err != nil {
		return nil, err
	}

	out := make([]uint64, 0, count)
	for v := range d.All(data, count) {
		out = append(out, v)
	}
	if len(out) != count {
		return nil, fmt.Errorf("%w: decoded %d values, want %d", errs.ErrInvalidPayload, len(out), count)
	}

	if enc == format.TypeVarint && consumedVarints(data, count) != len(data) {
		return nil, fmt.Errorf("%w: trailing bytes after %d varints", errs.ErrInvalidPayload, count)
	}

	return out, nil
}

// MaxSize returns the largest payload that count values can occupy in the given layout.
// The result saturates at math.MaxInt.
func MaxSize(enc format.EncodingType, count int) (int, error) {
	var width uint64
	switch enc {
	case format.TypeRaw:
		width = 8
	case format.TypeVarint:
		width = binary.MaxVarintLen64
	default:
		return 0, fmt.Errorf("%w: %s (0x%x)", errs.ErrInvalidEncoding, enc, uint8(enc))
	}

	if count <= 0 {
		return 0, nil
	}
	if uint64(count) > math.MaxInt/width {
		return math.MaxInt, nil
	}

	return count * int(width), nil
}
