package blob

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/arloliu/cfgcode/compress"
	"github.com/arloliu/cfgcode/encoding"
	"github.com/arloliu/cfgcode/endian"
	"github.com/arloliu/cfgcode/errs"
	"github.com/arloliu/cfgcode/factor"
	"github.com/arloliu/cfgcode/format"
	"github.com/arloliu/cfgcode/internal/options"
	"github.com/arloliu/cfgcode/internal/pool"
	"github.com/arloliu/cfgcode/present"
	"github.com/arloliu/cfgcode/radix"
	"github.com/arloliu/cfgcode/section"
	"go.uber.org/zap"
)

// Encoder serializes codes and presentations into blobs.
type Encoder struct {
	encoding    format.EncodingType
	compression format.CompressionType
	bigEndian   bool
	logger      *zap.Logger
}

// NewEncoder creates an Encoder with raw little-endian values and no compression,
// adjusted by opts.
//
// Returns:
//   - *Encoder: encoder ready for use
//   - error: ErrInvalidEncoding or ErrInvalidCompression for unsupported options
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		encoding:    format.TypeRaw,
		compression: format.CompressionNone,
		logger:      zap.NewNop(),
	}

	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

var defaultEncoder = &Encoder{
	encoding:    format.TypeRaw,
	compression: format.CompressionNone,
	logger:      zap.NewNop(),
}

// EncodeCodes serializes raw codes with a default Encoder.
func EncodeCodes(codes *radix.Codes) ([]byte, error) {
	return defaultEncoder.EncodeCodes(codes)
}

// EncodePresentation serializes an Index or a Factor with a default Encoder.
func EncodePresentation(p present.Presentation) ([]byte, error) {
	return defaultEncoder.EncodePresentation(p)
}

// blobContent is the kind-independent content of a blob.
type blobContent struct {
	kind      format.Kind
	signature uint64
	size      uint64
	missing   *roaring.Bitmap
	values    []uint64
	levels    []uint64
}

// EncodeCodes serializes raw 0-based codes.
func (e *Encoder) EncodeCodes(codes *radix.Codes) ([]byte, error) {
	if codes == nil {
		return nil, errs.ErrNilCodes
	}

	return e.encode(blobContent{
		kind:      format.KindCodes,
		signature: codes.Signature(),
		size:      codes.SpaceSize(),
		missing:   codes.Missing(),
		values:    codes.Values(),
	})
}

// EncodeIndex serializes a 1-based index sequence.
func (e *Encoder) EncodeIndex(x *present.Index) ([]byte, error) {
	if x == nil {
		return nil, errs.ErrNilCodes
	}

	return e.encode(blobContent{
		kind:      format.KindIndex,
		signature: x.Signature(),
		size:      x.SpaceSize(),
		missing:   x.Missing(),
		values:    x.Values(),
	})
}

// EncodeFactor serializes a factor as its row labels plus its levels.
func (e *Encoder) EncodeFactor(f *present.Factor) ([]byte, error) {
	if f == nil {
		return nil, errs.ErrNilCodes
	}

	values, cleanup := pool.GetUint64Slice(f.Len())
	defer cleanup()

	for i := range values {
		l, _ := f.Label(i)
		values[i] = uint64(l)
	}

	return e.encode(blobContent{
		kind:      format.KindFactor,
		signature: f.Signature(),
		size:      f.SpaceSize(),
		missing:   f.Missing(),
		values:    values,
		levels:    f.Levels(),
	})
}

// EncodePresentation serializes an Index or a Factor.
func (e *Encoder) EncodePresentation(p present.Presentation) ([]byte, error) {
	switch v := p.(type) {
	case *present.Index:
		return e.EncodeIndex(v)
	case *present.Factor:
		return e.EncodeFactor(v)
	case nil:
		return nil, errs.ErrNilCodes
	default:
		return nil, fmt.Errorf("%w: unsupported presentation %T", errs.ErrInvalidKind, p)
	}
}

func (e *Encoder) encode(c blobContent) ([]byte, error) {
	if uint64(len(c.values)) > factor.MaxRows {
		return nil, fmt.Errorf("%w: %d", errs.ErrTooManyRows, len(c.values))
	}
	if c.size == 0 {
		return nil, fmt.Errorf("%w: empty configuration space", errs.ErrInvalidPayload)
	}

	header := section.NewHeader(c.kind)
	if e.bigEndian {
		header.WithBigEndian()
	}
	header.SetEncoding(e.encoding)
	header.SetCompression(e.compression)
	engine := header.GetEndianEngine()

	codec, err := compress.GetCodec(e.compression)
	if err != nil {
		return nil, err
	}

	values, err := e.pack(codec, engine, c.values)
	if err != nil {
		return nil, fmt.Errorf("values payload: %w", err)
	}

	var levels []byte
	if c.kind == format.KindFactor {
		levels, err = e.pack(codec, engine, c.levels)
		if err != nil {
			return nil, fmt.Errorf("levels payload: %w", err)
		}
	}

	c.missing.RunOptimize()
	missingSize := c.missing.GetSerializedSizeInBytes()
	if missingSize > math.MaxUint32 || uint64(len(values)) > math.MaxUint32 || uint64(len(levels)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: payload exceeds 4GiB", errs.ErrInvalidPayload)
	}

	header.Signature = c.signature
	header.Rows = uint32(len(c.values))
	header.LevelCount = uint32(len(c.levels))
	header.MissingSize = uint32(missingSize)
	header.ValuesSize = uint32(len(values))
	header.LevelsSize = uint32(len(levels))
	header.SpaceSize = c.size

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	buf.Grow(section.HeaderSize + header.PayloadSize())
	_, _ = buf.Write(header.Bytes())
	if _, err := c.missing.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("missing row set: %w", err)
	}
	_, _ = buf.Write(values)
	_, _ = buf.Write(levels)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	if ce := e.logger.Check(zap.DebugLevel, "encoded blob"); ce != nil {
		ce.Write(
			zap.Stringer("kind", c.kind),
			zap.Uint32("rows", header.Rows),
			zap.Uint32("levels", header.LevelCount),
			zap.Uint64("missing", c.missing.GetCardinality()),
			zap.Stringer("encoding", e.encoding),
			zap.Stringer("compression", e.compression),
			zap.Int("bytes", len(out)),
		)
	}

	return out, nil
}

func (e *Encoder) pack(codec compress.Codec, engine endian.EndianEngine, values []uint64) ([]byte, error) {
	encoded, err := encoding.Encode(e.encoding, engine, values)
	if err != nil {
		return nil, err
	}

	return codec.Compress(encoded)
}
