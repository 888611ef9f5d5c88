package blob

import (
	"github.com/arloliu/cfgcode/format"
	"github.com/arloliu/cfgcode/present"
	"github.com/arloliu/cfgcode/radix"
	"github.com/arloliu/cfgcode/section"
)

// Blob is a decoded configuration blob. Exactly one of Codes, Index and Factor
// reports true, matching Kind.
type Blob struct {
	header section.Header
	codes  *radix.Codes
	index  *present.Index
	factor *present.Factor
}

// Kind returns the kind of the stored content.
func (b *Blob) Kind() format.Kind { return b.header.Kind }

// Rows returns the number of rows.
func (b *Blob) Rows() int { return int(b.header.Rows) }

// Signature returns the signature of the column set the content was computed from.
func (b *Blob) Signature() uint64 { return b.header.Signature }

// SpaceSize returns the number of configurations of the column set.
func (b *Blob) SpaceSize() uint64 { return b.header.SpaceSize }

// Encoding returns the payload encoding the blob was written with.
func (b *Blob) Encoding() format.EncodingType { return b.header.Encoding() }

// Compression returns the payload compression the blob was written with.
func (b *Blob) Compression() format.CompressionType { return b.header.Compression() }

// IsBigEndian reports whether the blob was written in big-endian order.
func (b *Blob) IsBigEndian() bool { return b.header.IsBigEndian() }

// Codes returns the raw codes of a format.KindCodes blob.
func (b *Blob) Codes() (*radix.Codes, bool) {
	return b.codes, b.codes != nil
}

// Index returns the index sequence of a format.KindIndex blob.
func (b *Blob) Index() (*present.Index, bool) {
	return b.index, b.index != nil
}

// Factor returns the factor of a format.KindFactor blob.
func (b *Blob) Factor() (*present.Factor, bool) {
	return b.factor, b.factor != nil
}

// Presentation returns the stored Index or Factor, and false for a codes blob.
func (b *Blob) Presentation() (present.Presentation, bool) {
	switch {
	case b.index != nil:
		return b.index, true
	case b.factor != nil:
		return b.factor, true
	default:
		return nil, false
	}
}
