package present

import (
	"github.com/arloliu/cfgcode/errs"
	"github.com/arloliu/cfgcode/format"
	"github.com/arloliu/cfgcode/radix"
)

// Presentation is a per-row view of configuration codes.
type Presentation interface {
	// Kind identifies the representation.
	Kind() format.Kind
	// Len returns the number of rows.
	Len() int
	// At returns the value of row i and false when the row is missing.
	At(i int) (uint64, bool)
	// MissingCount returns the number of missing rows.
	MissingCount() int
	// Signature returns the signature of the column set the codes came from.
	Signature() uint64
}

var (
	_ Presentation = (*Index)(nil)
	_ Presentation = (*Factor)(nil)
)

// Present returns codes as a Factor when asFactor is true and as an Index otherwise.
func Present(codes *radix.Codes, asFactor bool) (Presentation, error) {
	if codes == nil {
		return nil, errs.ErrNilCodes
	}

	if asFactor {
		return ToFactor(codes)
	}

	return ToIndex(codes)
}
