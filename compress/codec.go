package compress

import (
	"fmt"

	"github.com/arloliu/cfgcode/errs"
	"github.com/arloliu/cfgcode/format"
)

// Compressor compresses an encoded payload.
//
// The returned slice is owned by the caller unless documented otherwise, and the
// input slice is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// It returns an error if data is corrupted or was produced by another algorithm.
// A payload that would decompress to more than maxSize bytes is rejected with
// ErrInvalidPayload, before the output is allocated where the format allows it.
// A negative maxSize disables the bound.
type Decompressor interface {
	Decompress(data []byte, maxSize int) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for compressionType.
//
// Returns:
//   - Codec: shared codec instance
//   - error: ErrInvalidCompression for unknown types
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s (0x%x)", errs.ErrInvalidCompression, compressionType, uint8(compressionType))
}

// IsValid reports whether compressionType has a built-in codec.
func IsValid(compressionType format.CompressionType) bool {
	_, ok := builtinCodecs[compressionType]
	return ok
}

func checkSize(size, maxSize int) error {
	if maxSize >= 0 && size > maxSize {
		return fmt.Errorf("%w: decompressed size %d exceeds %d", errs.ErrInvalidPayload, size, maxSize)
	}

	return nil
}
