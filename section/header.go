package section

import (
	"fmt"

	"github.com/arloliu/cfgcode/compress"
	"github.com/arloliu/cfgcode/endian"
	"github.com/arloliu/cfgcode/errs"
	"github.com/arloliu/cfgcode/format"
)

// Header is the fixed 40-byte section at the start of a configuration blob.
//
// Layout (multi-byte fields use the byte order selected by the endianness bit,
// except Options which is always little-endian):
//
//	[0:2]   Options: bit 0 endianness, bits 1-3 reserved, bits 4-15 magic
//	[2]     Kind: format.Kind of the stored presentation
//	[3]     Codec: value encoding in bits 4-7, compression in bits 0-3
//	[4:12]  Signature: column set signature
//	[12:16] Rows: number of rows
//	[16:20] LevelCount: number of factor levels (0 unless Kind is KindFactor)
//	[20:24] MissingSize: byte size of the serialized missing row set
//	[24:28] ValuesSize: byte size of the compressed values payload
//	[28:32] LevelsSize: byte size of the compressed levels payload
//	[32:40] SpaceSize: number of configurations of the column set
type Header struct {
	Options     uint16
	Kind        format.Kind
	Codec       uint8
	Signature   uint64
	Rows        uint32
	LevelCount  uint32
	MissingSize uint32
	ValuesSize  uint32
	LevelsSize  uint32
	SpaceSize   uint64
}

// NewHeader creates a little-endian header for kind with raw, uncompressed values.
func NewHeader(kind format.Kind) *Header {
	h := &Header{
		Options: MagicConfigV1Opt,
		Kind:    kind,
	}
	h.SetEncoding(format.TypeRaw)
	h.SetCompression(format.CompressionNone)

	return h
}

// IsBigEndian reports whether the payload uses big-endian byte order.
func (h *Header) IsBigEndian() bool {
	return h.Options&EndiannessMask != 0
}

// WithLittleEndian selects little-endian byte order.
func (h *Header) WithLittleEndian() {
	h.Options &^= EndiannessMask
}

// WithBigEndian selects big-endian byte order.
func (h *Header) WithBigEndian() {
	h.Options |= EndiannessMask
}

// GetEndianEngine returns the engine matching the endianness bit.
func (h *Header) GetEndianEngine() endian.EndianEngine {
	if h.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// MagicNumber returns the magic bits of Options.
func (h *Header) MagicNumber() uint16 {
	return h.Options & MagicNumberMask
}

// Encoding returns the value encoding from bits 4-7 of Codec.
func (h *Header) Encoding() format.EncodingType {
	return format.EncodingType(h.Codec >> 4)
}

// SetEncoding stores the value encoding in bits 4-7 of Codec.
func (h *Header) SetEncoding(enc format.EncodingType) {
	h.Codec = (h.Codec & 0x0F) | (uint8(enc)&0x0F)<<4
}

// Compression returns the compression type from bits 0-3 of Codec.
func (h *Header) Compression() format.CompressionType {
	return format.CompressionType(h.Codec & 0x0F)
}

// SetCompression stores the compression type in bits 0-3 of Codec.
func (h *Header) SetCompression(comp format.CompressionType) {
	h.Codec = (h.Codec & 0xF0) | uint8(comp)&0x0F
}

// Validate checks the magic number, reserved bits, kind, encoding and compression.
func (h *Header) Validate() error {
	if h.MagicNumber() != MagicConfigV1Opt {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagic, h.MagicNumber())
	}
	if h.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved option bits set", errs.ErrInvalidMagic)
	}

	switch h.Kind {
	case format.KindCodes, format.KindIndex, format.KindFactor:
	default:
		return fmt.Errorf("%w: 0x%x", errs.ErrInvalidKind, uint8(h.Kind))
	}

	switch h.Encoding() {
	case format.TypeRaw, format.TypeVarint:
	default:
		return fmt.Errorf("%w: 0x%x", errs.ErrInvalidEncoding, uint8(h.Encoding()))
	}

	if !compress.IsValid(h.Compression()) {
		return fmt.Errorf("%w: 0x%x", errs.ErrInvalidCompression, uint8(h.Compression()))
	}

	if h.Kind != format.KindFactor && (h.LevelCount != 0 || h.LevelsSize != 0) {
		return fmt.Errorf("%w: %s blob declares factor levels", errs.ErrInvalidPayload, h.Kind)
	}

	return nil
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := h.GetEndianEngine()

	b[0] = byte(h.Options)
	b[1] = byte(h.Options >> 8)
	b[2] = uint8(h.Kind)
	b[3] = h.Codec
	engine.PutUint64(b[4:12], h.Signature)
	engine.PutUint32(b[12:16], h.Rows)
	engine.PutUint32(b[16:20], h.LevelCount)
	engine.PutUint32(b[20:24], h.MissingSize)
	engine.PutUint32(b[24:28], h.ValuesSize)
	engine.PutUint32(b[28:32], h.LevelsSize)
	engine.PutUint64(b[32:40], h.SpaceSize)

	return b
}

// PayloadSize returns the number of bytes following the header.
func (h *Header) PayloadSize() int {
	return int(h.MissingSize) + int(h.ValuesSize) + int(h.LevelsSize)
}

// ParseHeader parses and validates a header from the start of data.
//
// Returns:
//   - Header: parsed header
//   - error: ErrInvalidHeaderSize if data is shorter than HeaderSize, or a validation error
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{
		Options: uint16(data[0]) | uint16(data[1])<<8,
		Kind:    format.Kind(data[2]),
		Codec:   data[3],
	}

	engine := h.GetEndianEngine()
	h.Signature = engine.Uint64(data[4:12])
	h.Rows = engine.Uint32(data[12:16])
	h.LevelCount = engine.Uint32(data[16:20])
	h.MissingSize = engine.Uint32(data[20:24])
	h.ValuesSize = engine.Uint32(data[24:28])
	h.LevelsSize = engine.Uint32(data[28:32])
	h.SpaceSize = engine.Uint64(data[32:40])

	if err := h.Validate(); err != nil {
		return Header{}, err
	}

	return h, nil
}
