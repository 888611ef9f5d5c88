package blob

import (
	"fmt"

	"github.com/arloliu/cfgcode/compress"
	"github.com/arloliu/cfgcode/errs"
	"github.com/arloliu/cfgcode/factor"
	"github.com/arloliu/cfgcode/format"
	"github.com/arloliu/cfgcode/internal/options"
	"go.uber.org/zap"
)

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*Decoder]

// WithEncoding sets the layout of the values and levels payloads.
//
// format.TypeRaw (default) stores fixed 8-byte values, format.TypeVarint stores
// unsigned varints, which suits small codes and dense factor labels.
func WithEncoding(enc format.EncodingType) EncoderOption {
	return options.New(func(e *Encoder) error {
		switch enc {
		case format.TypeRaw, format.TypeVarint:
			e.encoding = enc
			return nil
		default:
			return fmt.Errorf("%w: %s (0x%x)", errs.ErrInvalidEncoding, enc, uint8(enc))
		}
	})
}

// WithCompression sets the compression applied to the values and levels payloads.
// The default is format.CompressionNone.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		if !compress.IsValid(comp) {
			return fmt.Errorf("%w: %s (0x%x)", errs.ErrInvalidCompression, comp, uint8(comp))
		}
		e.compression = comp

		return nil
	})
}

// WithLittleEndian writes multi-byte fields in little-endian order (default).
func WithLittleEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.bigEndian = false
	})
}

// WithBigEndian writes multi-byte fields in big-endian order.
func WithBigEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.bigEndian = true
	})
}

// WithEncoderLogger sets the logger for debug output. A nil logger disables logging.
func WithEncoderLogger(logger *zap.Logger) EncoderOption {
	return options.NoError(func(e *Encoder) {
		if logger == nil {
			logger = zap.NewNop()
		}
		e.logger = logger
	})
}

// WithExpectedSignature makes Decode reject blobs whose column set signature differs from signature.
func WithExpectedSignature(signature uint64) DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.signature = signature
		d.checkSignature = true
	})
}

// WithColumnSet makes Decode reject blobs that were not produced from a column set
// with the same names and level counts as set.
func WithColumnSet(set factor.ColumnSet) DecoderOption {
	return options.New(func(d *Decoder) error {
		if len(set) == 0 {
			return errs.ErrNoColumns
		}
		d.signature = set.Signature()
		d.checkSignature = true

		return nil
	})
}

// WithDecoderLogger sets the logger for debug output. A nil logger disables logging.
func WithDecoderLogger(logger *zap.Logger) DecoderOption {
	return options.NoError(func(d *Decoder) {
		if logger == nil {
			logger = zap.NewNop()
		}
		d.logger = logger
	})
}
