package blob

import (
	"errors"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/arloliu/cfgcode/compress"
	"github.com/arloliu/cfgcode/encoding"
	"github.com/arloliu/cfgcode/endian"
	"github.com/arloliu/cfgcode/errs"
	"github.com/arloliu/cfgcode/format"
	"github.com/arloliu/cfgcode/internal/options"
	"github.com/arloliu/cfgcode/present"
	"github.com/arloliu/cfgcode/radix"
	"github.com/arloliu/cfgcode/section"
	"go.uber.org/zap"
)

// Decoder restores blobs produced by Encoder.
type Decoder struct {
	signature      uint64
	checkSignature bool
	logger         *zap.Logger
}

var defaultDecoder = &Decoder{logger: zap.NewNop()}

// NewDecoder creates a Decoder that accepts any column set signature, adjusted by opts.
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	d := &Decoder{logger: zap.NewNop()}

	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// Decode restores a blob with a default Decoder.
func Decode(data []byte) (*Blob, error) {
	return defaultDecoder.Decode(data)
}

// Decode parses the header, verifies payload sizes and restores the stored content.
//
// Returns:
//   - *Blob: decoded blob owning freshly allocated content
//   - error: a header error from section.ParseHeader, ErrSignatureMismatch,
//     ErrInvalidPayload for truncated or inconsistent payloads, ErrInvalidCode for
//     values outside the configuration space, or a decompression error
func (d *Decoder) Decode(data []byte) (*Blob, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	if d.checkSignature && header.Signature != d.signature {
		return nil, fmt.Errorf("%w: blob 0x%016x, expected 0x%016x", errs.ErrSignatureMismatch, header.Signature, d.signature)
	}

	if want := section.HeaderSize + header.PayloadSize(); len(data) != want {
		return nil, fmt.Errorf("%w: blob has %d bytes, header declares %d", errs.ErrInvalidPayload, len(data), want)
	}

	engine := header.GetEndianEngine()
	codec, err := compress.GetCodec(header.Compression())
	if err != nil {
		return nil, err
	}

	offset := section.HeaderSize
	missingData := data[offset : offset+int(header.MissingSize)]
	offset += int(header.MissingSize)
	valuesData := data[offset : offset+int(header.ValuesSize)]
	offset += int(header.ValuesSize)
	levelsData := data[offset : offset+int(header.LevelsSize)]

	missing, err := parseMissing(missingData, header.Rows)
	if err != nil {
		return nil, err
	}

	values, err := unpack(codec, header.Encoding(), engine, valuesData, int(header.Rows))
	if err != nil {
		return nil, fmt.Errorf("values payload: %w", err)
	}

	b := &Blob{header: header}

	switch header.Kind {
	case format.KindCodes:
		if err := checkCodes(values, missing, header.SpaceSize); err != nil {
			return nil, err
		}
		b.codes = radix.NewCodes(values, missing, header.Signature, header.SpaceSize)
	case format.KindIndex:
		b.index, err = present.NewIndex(values, missing, header.Signature, header.SpaceSize)
		if err != nil {
			return nil, err
		}
	case format.KindFactor:
		levels, err := unpack(codec, header.Encoding(), engine, levelsData, int(header.LevelCount))
		if err != nil {
			return nil, fmt.Errorf("levels payload: %w", err)
		}

		labels := make([]uint32, len(values))
		for i, v := range values {
			if v > math.MaxUint32 {
				return nil, fmt.Errorf("%w: label %d of row %d", errs.ErrInvalidPayload, v, i)
			}
			labels[i] = uint32(v)
		}

		b.factor, err = present.NewFactor(labels, levels, missing, header.Signature, header.SpaceSize)
		if err != nil {
			return nil, err
		}
	}

	if ce := d.logger.Check(zap.DebugLevel, "decoded blob"); ce != nil {
		ce.Write(
			zap.Stringer("kind", header.Kind),
			zap.Uint32("rows", header.Rows),
			zap.Uint32("levels", header.LevelCount),
			zap.Uint64("missing", missing.GetCardinality()),
			zap.Int("bytes", len(data)),
		)
	}

	return b, nil
}

// parseMissing restores the missing row set and checks it against the row count.
func parseMissing(data []byte, rows uint32) (*roaring.Bitmap, error) {
	missing := roaring.New()
	if err := missing.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("%w: missing row set: %w", errs.ErrInvalidPayload, err)
	}

	if !missing.IsEmpty() && missing.Maximum() >= rows {
		return nil, fmt.Errorf("%w: missing row %d beyond %d rows", errs.ErrInvalidPayload, missing.Maximum(), rows)
	}

	return missing, nil
}

// unpack decompresses data, bounded by the largest payload count values can take,
// and decodes exactly count values.
func unpack(codec compress.Codec, enc format.EncodingType, engine endian.EndianEngine, data []byte, count int) ([]uint64, error) {
	maxSize, err := encoding.MaxSize(enc, count)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(data, maxSize)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidPayload) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	return encoding.Decode(enc, engine, raw, count)
}

// checkCodes verifies every non-missing code lies in the configuration space.
func checkCodes(values []uint64, missing *roaring.Bitmap, size uint64) error {
	if size == 0 {
		return fmt.Errorf("%w: empty configuration space", errs.ErrInvalidPayload)
	}

	for i, v := range values {
		if v >= size && !missing.Contains(uint32(i)) {
			return fmt.Errorf("%w: code %d of row %d outside %d configurations", errs.ErrInvalidCode, v, i, size)
		}
	}

	return nil
}
