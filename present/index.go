package present

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/arloliu/cfgcode/errs"
	"github.com/arloliu/cfgcode/format"
	"github.com/arloliu/cfgcode/radix"
)

// Index holds 1-based configuration indexes.
type Index struct {
	values    []uint64
	missing   *roaring.Bitmap
	signature uint64
	size      uint64
}

// ToIndex shifts every non-missing code by one.
//
// Returns:
//   - *Index: a fresh index sequence; codes is not modified
//   - error: ErrNilCodes, or ErrOverflow if a code cannot be shifted
func ToIndex(codes *radix.Codes) (*Index, error) {
	if codes == nil {
		return nil, errs.ErrNilCodes
	}

	values := make([]uint64, codes.Len())
	i := 0
	for code, ok := range codes.All() {
		if ok {
			if code == math.MaxUint64 {
				return nil, fmt.Errorf("%w: code of row %d cannot be shifted", errs.ErrOverflow, i)
			}
			values[i] = code + 1
		}
		i++
	}

	return &Index{values: values, missing: codes.Missing(), signature: codes.Signature(), size: codes.SpaceSize()}, nil
}

// NewIndex assembles an index sequence from decoded parts and takes ownership of them.
// Non-missing values must lie in [1, size] and size must be at least 1.
func NewIndex(values []uint64, missing *roaring.Bitmap, signature, size uint64) (*Index, error) {
	if size == 0 {
		return nil, fmt.Errorf("%w: empty configuration space", errs.ErrInvalidPayload)
	}
	if missing == nil {
		missing = roaring.New()
	}

	for i, v := range values {
		if missing.Contains(uint32(i)) {
			values[i] = 0
			continue
		}
		if v == 0 || v > size {
			return nil, fmt.Errorf("%w: index %d of row %d", errs.ErrInvalidCode, v, i)
		}
	}

	return &Index{values: values, missing: missing, signature: signature, size: size}, nil
}

// Kind returns format.KindIndex.
func (x *Index) Kind() format.Kind { return format.KindIndex }

// Len returns the number of rows.
func (x *Index) Len() int { return len(x.values) }

// At returns the 1-based index of row i.
func (x *Index) At(i int) (uint64, bool) {
	if x.missing.Contains(uint32(i)) {
		return 0, false
	}

	return x.values[i], true
}

// MissingCount returns the number of missing rows.
func (x *Index) MissingCount() int { return int(x.missing.GetCardinality()) }

// Missing returns a copy of the missing row set.
func (x *Index) Missing() *roaring.Bitmap { return x.missing.Clone() }

// Signature returns the column set signature.
func (x *Index) Signature() uint64 { return x.signature }

// SpaceSize returns the number of configurations, the largest possible index.
func (x *Index) SpaceSize() uint64 { return x.size }

// Values returns a copy of the indexes; missing rows hold 0.
func (x *Index) Values() []uint64 {
	out := make([]uint64, len(x.values))
	copy(out, x.values)

	return out
}
