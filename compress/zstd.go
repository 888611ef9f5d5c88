package compress

import (
	"fmt"

	"github.com/arloliu/cfgcode/errs"
	"github.com/klauspost/compress/zstd"
)

// ZstdCompressor compresses with Zstandard.
//
// It favors ratio over speed, which suits code columns that are written once and
// shipped or archived. The implementation is chosen at build time, see the package
// documentation.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// checkZstdFrame rejects a frame whose declared content size exceeds maxSize.
// Frames without a content size are checked after decoding.
func checkZstdFrame(data []byte, maxSize int) error {
	var h zstd.Header
	if err := h.Decode(data); err != nil {
		return fmt.Errorf("%w: zstd frame header: %w", errs.ErrInvalidPayload, err)
	}
	if maxSize >= 0 && h.HasFCS && h.FrameContentSize > uint64(maxSize) {
		return fmt.Errorf("%w: zstd frame declares %d bytes, limit %d", errs.ErrInvalidPayload, h.FrameContentSize, maxSize)
	}

	return nil
}
