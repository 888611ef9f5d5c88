package radix

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/arloliu/cfgcode/errs"
	"github.com/arloliu/cfgcode/factor"
	"github.com/arloliu/cfgcode/format"
)

// Space is the configuration space spanned by a list of level counts.
type Space struct {
	levels  []int
	weights []uint64
	size    uint64
}

// NewSpace computes the radix weights for levelCounts and checks that the number
// of configurations fits width.
//
// Returns:
//   - Space: weights and size of the configuration space
//   - error: ErrNoColumns, ErrInvalidLevelCount, ErrInvalidCodeWidth or ErrOverflow
func NewSpace(levelCounts []int, width format.CodeWidth) (Space, error) {
	if len(levelCounts) == 0 {
		return Space{}, errs.ErrNoColumns
	}

	limit, err := codeLimit(width)
	if err != nil {
		return Space{}, err
	}

	weights := make([]uint64, len(levelCounts))
	size := uint64(1)
	for j, l := range levelCounts {
		if l < 1 || uint64(l) > factor.MaxLevels {
			return Space{}, fmt.Errorf("%w: column %d declares %d levels", errs.ErrInvalidLevelCount, j, l)
		}

		weights[j] = size

		hi, lo := bits.Mul64(size, uint64(l))
		if hi != 0 || lo > limit {
			return Space{}, fmt.Errorf("%w: %d-bit codes cannot hold the configurations of columns 0..%d",
				errs.ErrOverflow, width, j)
		}
		size = lo
	}

	levels := make([]int, len(levelCounts))
	copy(levels, levelCounts)

	return Space{levels: levels, weights: weights, size: size}, nil
}

// codeLimit returns the largest configuration count allowed for width.
// Under CodeWidth32 both the codes and their 1-based indexes fit a signed 32-bit integer.
func codeLimit(width format.CodeWidth) (uint64, error) {
	switch width {
	case format.CodeWidth32:
		return math.MaxInt32, nil
	case format.CodeWidth64:
		return math.MaxUint64, nil
	default:
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidCodeWidth, width)
	}
}

// Weights returns a copy of the radix weights.
func (s Space) Weights() []uint64 {
	w := make([]uint64, len(s.weights))
	copy(w, s.weights)

	return w
}

// LevelCounts returns a copy of the level counts.
func (s Space) LevelCounts() []int {
	l := make([]int, len(s.levels))
	copy(l, s.levels)

	return l
}

// Size returns the number of configurations, Π L_j.
func (s Space) Size() uint64 {
	return s.size
}

// Encode codes a single level tuple. It reports false if any level is NA.
// The tuple must have one level per column, each within range.
func (s Space) Encode(row []factor.Level) (uint64, bool) {
	var code uint64
	for j, v := range row {
		if v == factor.NA {
			return 0, false
		}
		code += uint64(v-1) * s.weights[j]
	}

	return code, true
}

// Decode recovers the level tuple of code.
//
// Returns:
//   - []factor.Level: one 1-based level per column
//   - error: ErrInvalidCode if code is not below Size()
func (s Space) Decode(code uint64) ([]factor.Level, error) {
	if code >= s.size {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", errs.ErrInvalidCode, code, s.size)
	}

	row := make([]factor.Level, len(s.levels))
	for j := len(s.levels) - 1; j >= 0; j-- {
		digit := code / s.weights[j]
		code -= digit * s.weights[j]
		row[j] = factor.Level(digit + 1)
	}

	return row, nil
}

// Decode recovers the level tuple of code in the 64-bit space of levelCounts.
func Decode(code uint64, levelCounts []int) ([]factor.Level, error) {
	space, err := NewSpace(levelCounts, format.CodeWidth64)
	if err != nil {
		return nil, err
	}

	return space.Decode(code)
}
