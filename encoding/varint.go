package encoding

import (
	"encoding/binary"
	"iter"

	"github.com/arloliu/cfgcode/internal/pool"
)

// VarintEncoder writes each value as an unsigned LEB128 varint.
type VarintEncoder struct {
	buf   *pool.ByteBuffer
	count int
}

var _ ColumnarEncoder[uint64] = (*VarintEncoder)(nil)

// NewVarintEncoder creates a varint encoder.
func NewVarintEncoder() *VarintEncoder {
	return &VarintEncoder{buf: pool.GetPayloadBuffer()}
}

// Write appends a single value.
func (e *VarintEncoder) Write(value uint64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.buf.B = binary.AppendUvarint(e.buf.B, value)
}

// WriteSlice appends values in order.
func (e *VarintEncoder) WriteSlice(values []uint64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	// most codes fit in two bytes; the buffer grows further on demand
	e.buf.Grow(len(values) * 2)
	e.count += len(values)
	for _, v := range values {
		e.buf.B = binary.AppendUvarint(e.buf.B, v)
	}
}

// Bytes returns the encoded payload.
func (e *VarintEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of values written.
func (e *VarintEncoder) Len() int {
	return e.count
}

// Size returns the payload size in bytes.
func (e *VarintEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Finish returns the buffer to the pool.
func (e *VarintEncoder) Finish() {
	if e.buf != nil {
		pool.PutPayloadBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// VarintDecoder reads values written by VarintEncoder.
type VarintDecoder struct{}

var _ ColumnarDecoder[uint64] = VarintDecoder{}

// NewVarintDecoder creates a varint decoder.
func NewVarintDecoder() VarintDecoder {
	return VarintDecoder{}
}

// All yields up to count values, stopping at the first malformed varint.
func (d VarintDecoder) All(data []byte, count int) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		offset := 0
		for i := 0; i < count; i++ {
			v, n := binary.Uvarint(data[offset:])
			if n <= 0 {
				return
			}
			offset += n
			if !yield(v) {
				return
			}
		}
	}
}

// At returns the value at index by scanning from the start.
func (d VarintDecoder) At(data []byte, index int, count int) (uint64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	i := 0
	for v := range d.All(data, count) {
		if i == index {
			return v, true
		}
		i++
	}

	return 0, false
}

// consumedVarints returns the number of bytes taken by the first count varints of data.
func consumedVarints(data []byte, count int) int {
	offset := 0
	for i := 0; i < count; i++ {
		_, n := binary.Uvarint(data[offset:])
		if n <= 0 {
			return -1
		}
		offset += n
	}

	return offset
}
