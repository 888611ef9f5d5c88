package radix

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Codes is a sequence of raw 0-based configuration codes, one per row.
//
// Rows with a missing cell have no code; they are members of the missing row set
// and hold a zero placeholder in the value slice. Codes is read-only once built.
type Codes struct {
	values    []uint64
	missing   *roaring.Bitmap
	signature uint64
	size      uint64
}

// NewCodes assembles a code sequence from its parts and takes ownership of them.
//
// values holds one code per row, missing the rows without a code, signature the
// column set signature and size the number of configurations. A nil missing set
// means no row is missing. Missing rows are zeroed in values.
func NewCodes(values []uint64, missing *roaring.Bitmap, signature, size uint64) *Codes {
	if missing == nil {
		missing = roaring.New()
	}

	it := missing.Iterator()
	for it.HasNext() {
		if i := int(it.Next()); i < len(values) {
			values[i] = 0
		}
	}

	return &Codes{values: values, missing: missing, signature: signature, size: size}
}

// Len returns the number of rows.
func (c *Codes) Len() int {
	return len(c.values)
}

// At returns the code of row i and whether the row has one.
func (c *Codes) At(i int) (uint64, bool) {
	if c.missing.Contains(uint32(i)) {
		return 0, false
	}

	return c.values[i], true
}

// IsMissing reports whether row i has a missing cell.
func (c *Codes) IsMissing(i int) bool {
	return c.missing.Contains(uint32(i))
}

// MissingCount returns the number of rows without a code.
func (c *Codes) MissingCount() int {
	return int(c.missing.GetCardinality())
}

// Missing returns a copy of the missing row set.
func (c *Codes) Missing() *roaring.Bitmap {
	return c.missing.Clone()
}

// Values returns a copy of the codes; missing rows hold 0.
func (c *Codes) Values() []uint64 {
	out := make([]uint64, len(c.values))
	copy(out, c.values)

	return out
}

// Signature returns the signature of the column set the codes were computed from.
func (c *Codes) Signature() uint64 {
	return c.signature
}

// SpaceSize returns the number of configurations of the column set, Π L_j.
func (c *Codes) SpaceSize() uint64 {
	return c.size
}

// All returns an iterator over (code, ok) pairs in row order.
//
// The missing row set is walked alongside the rows instead of being probed per row.
func (c *Codes) All() iter.Seq2[uint64, bool] {
	return func(yield func(uint64, bool) bool) {
		it := c.missing.Iterator()
		next := int64(-1)
		if it.HasNext() {
			next = int64(it.Next())
		}

		for i, v := range c.values {
			if int64(i) == next {
				next = -1
				if it.HasNext() {
					next = int64(it.Next())
				}
				if !yield(0, false) {
					return
				}

				continue
			}
			if !yield(v, true) {
				return
			}
		}
	}
}

// Equal reports whether c and other hold the same codes, missing rows and signature.
func (c *Codes) Equal(other *Codes) bool {
	if c == nil || other == nil {
		return c == other
	}
	if len(c.values) != len(other.values) || c.signature != other.signature || c.size != other.size {
		return false
	}
	if !c.missing.Equals(other.missing) {
		return false
	}
	for i, v := range c.values {
		if v != other.values[i] {
			return false
		}
	}

	return true
}
