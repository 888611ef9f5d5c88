package present

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/arloliu/cfgcode/errs"
	"github.com/arloliu/cfgcode/format"
	"github.com/arloliu/cfgcode/internal/pool"
	"github.com/arloliu/cfgcode/radix"
)

// Factor is a categorical view of configuration codes.
//
// Its levels are the distinct observed codes in ascending order. Row i carries
// label k (1..K) when its code is the k-th level; missing rows carry no label.
type Factor struct {
	labels    []uint32
	levels    []uint64
	missing   *roaring.Bitmap
	signature uint64
	size      uint64
}

// ToFactor ranks the distinct non-missing codes and labels every row with the rank of its code.
//
// Labels preserve code order: a smaller code never gets a larger label, and equal
// labels mean equal codes. The result is a fresh value; codes is not modified.
func ToFactor(codes *radix.Codes) (*Factor, error) {
	if codes == nil {
		return nil, errs.ErrNilCodes
	}

	scratch, cleanup := pool.GetUint64Slice(codes.Len())
	defer cleanup()

	observed := scratch[:0]
	for code, ok := range codes.All() {
		if ok {
			observed = append(observed, code)
		}
	}
	slices.Sort(observed)
	levels := slices.Clone(slices.Compact(observed))

	labels := make([]uint32, codes.Len())
	i := 0
	for code, ok := range codes.All() {
		if ok {
			pos, _ := slices.BinarySearch(levels, code)
			labels[i] = uint32(pos + 1)
		}
		i++
	}

	return &Factor{
		labels:    labels,
		levels:    levels,
		missing:   codes.Missing(),
		signature: codes.Signature(),
		size:      codes.SpaceSize(),
	}, nil
}

// NewFactor assembles a factor from decoded parts and takes ownership of them.
//
// levels must be strictly ascending and every non-missing label must lie in [1, len(levels)].
// Every level must be below size, which must be at least 1.
func NewFactor(labels []uint32, levels []uint64, missing *roaring.Bitmap, signature, size uint64) (*Factor, error) {
	if size == 0 {
		return nil, fmt.Errorf("%w: empty configuration space", errs.ErrInvalidPayload)
	}
	if missing == nil {
		missing = roaring.New()
	}

	for k := 1; k < len(levels); k++ {
		if levels[k] <= levels[k-1] {
			return nil, fmt.Errorf("%w: factor levels are not strictly ascending at %d", errs.ErrInvalidPayload, k)
		}
	}
	if len(levels) > 0 && levels[len(levels)-1] >= size {
		return nil, fmt.Errorf("%w: factor level %d outside %d configurations", errs.ErrInvalidCode, levels[len(levels)-1], size)
	}

	k := uint32(len(levels))
	for i, l := range labels {
		if missing.Contains(uint32(i)) {
			labels[i] = 0
			continue
		}
		if l == 0 || l > k {
			return nil, fmt.Errorf("%w: label %d of row %d not in [1, %d]", errs.ErrInvalidPayload, l, i, k)
		}
	}

	return &Factor{labels: labels, levels: levels, missing: missing, signature: signature, size: size}, nil
}

// Kind returns format.KindFactor.
func (f *Factor) Kind() format.Kind { return format.KindFactor }

// Len returns the number of rows.
func (f *Factor) Len() int { return len(f.labels) }

// At returns the label of row i.
func (f *Factor) At(i int) (uint64, bool) {
	l, ok := f.Label(i)
	return uint64(l), ok
}

// Label returns the 1-based label of row i.
func (f *Factor) Label(i int) (uint32, bool) {
	if f.missing.Contains(uint32(i)) {
		return 0, false
	}

	return f.labels[i], true
}

// Code returns the configuration code of row i.
func (f *Factor) Code(i int) (uint64, bool) {
	l, ok := f.Label(i)
	if !ok {
		return 0, false
	}

	return f.levels[l-1], true
}

// MissingCount returns the number of missing rows.
func (f *Factor) MissingCount() int { return int(f.missing.GetCardinality()) }

// Missing returns a copy of the missing row set.
func (f *Factor) Missing() *roaring.Bitmap { return f.missing.Clone() }

// Signature returns the column set signature.
func (f *Factor) Signature() uint64 { return f.signature }

// SpaceSize returns the number of configurations of the column set.
func (f *Factor) SpaceSize() uint64 { return f.size }

// NumLevels returns K, the number of distinct observed codes.
func (f *Factor) NumLevels() int { return len(f.levels) }

// Levels returns a copy of the observed codes in ascending order.
func (f *Factor) Levels() []uint64 {
	return slices.Clone(f.levels)
}

// LevelNames returns the levels as decimal strings.
func (f *Factor) LevelNames() []string {
	names := make([]string, len(f.levels))
	for k, code := range f.levels {
		names[k] = strconv.FormatUint(code, 10)
	}

	return names
}

// Labels returns a copy of the row labels; missing rows hold 0.
func (f *Factor) Labels() []uint32 {
	return slices.Clone(f.labels)
}
