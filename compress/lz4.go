package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/arloliu/cfgcode/errs"
	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances; their hash tables are worth reusing.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// lz4MaxDecompressedSize caps the adaptive decompression buffer.
const lz4MaxDecompressedSize = 256 * 1024 * 1024

// LZ4Compressor compresses with LZ4 block format.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data as a single LZ4 block using a pooled compressor.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	// a full-bound destination makes CompressBlock emit literals for incompressible input
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decodes a single LZ4 block.
//
// The decompressed size is not stored, so the buffer starts at 4x the input and
// doubles on ErrInvalidSourceShortBuffer up to maxSize, or lz4MaxDecompressedSize
// when that is smaller or maxSize is negative.
func (c LZ4Compressor) Decompress(data []byte, maxSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	limit := lz4MaxDecompressedSize
	if maxSize >= 0 && maxSize < limit {
		limit = maxSize
	}

	bufSize := min(len(data)*4, limit)
	for {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}
		if bufSize >= limit {
			return nil, fmt.Errorf("%w: lz4 block exceeds %d bytes: %w", errs.ErrInvalidPayload, limit, err)
		}

		bufSize = min(bufSize*2, limit)
	}
}
