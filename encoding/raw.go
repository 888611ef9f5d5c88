package encoding

import (
	"iter"

	"github.com/arloliu/cfgcode/endian"
	"github.com/arloliu/cfgcode/internal/pool"
)

// RawEncoder writes each value as 8 bytes in the engine's byte order.
type RawEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ ColumnarEncoder[uint64] = (*RawEncoder)(nil)

// NewRawEncoder creates a fixed-width encoder using engine.
func NewRawEncoder(engine endian.EndianEngine) *RawEncoder {
	return &RawEncoder{
		engine: engine,
		buf:    pool.GetPayloadBuffer(),
	}
}

// Write appends a single value.
func (e *RawEncoder) Write(value uint64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.buf.B = e.engine.AppendUint64(e.buf.B, value)
}

// WriteSlice appends values after growing the buffer once.
func (e *RawEncoder) WriteSlice(values []uint64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count += len(values)
	e.buf.Grow(len(values) * 8)
	for _, v := range values {
		e.buf.B = e.engine.AppendUint64(e.buf.B, v)
	}
}

// Bytes returns the encoded payload.
func (e *RawEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of values written.
func (e *RawEncoder) Len() int {
	return e.count
}

// Size returns the payload size in bytes.
func (e *RawEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Finish returns the buffer to the pool.
func (e *RawEncoder) Finish() {
	if e.buf != nil {
		pool.PutPayloadBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// RawDecoder reads values written by RawEncoder.
type RawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[uint64] = RawDecoder{}

// NewRawDecoder creates a fixed-width decoder; engine must match the encoder's.
func NewRawDecoder(engine endian.EndianEngine) RawDecoder {
	return RawDecoder{engine: engine}
}

// All yields up to count values.
func (d RawDecoder) All(data []byte, count int) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for i := 0; i < count && (i+1)*8 <= len(data); i++ {
			if !yield(d.engine.Uint64(data[i*8 : i*8+8])) {
				return
			}
		}
	}
}

// At returns the value at index in O(1).
func (d RawDecoder) At(data []byte, index int, count int) (uint64, bool) {
	if index < 0 || index >= count || (index+1)*8 > len(data) {
		return 0, false
	}

	return d.engine.Uint64(data[index*8 : index*8+8]), true
}
