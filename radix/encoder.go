package radix

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/arloliu/cfgcode/factor"
	"github.com/arloliu/cfgcode/format"
	"github.com/arloliu/cfgcode/internal/options"
	"go.uber.org/zap"
)

// Encoder computes configuration codes. It holds configuration only and is safe
// for concurrent use.
type Encoder struct {
	width  format.CodeWidth
	logger *zap.Logger
}

var defaultEncoder = &Encoder{width: format.CodeWidth64, logger: zap.NewNop()}

// NewEncoder creates an Encoder with 64-bit codes and no logging, adjusted by opts.
func NewEncoder(opts ...Option) (*Encoder, error) {
	e := &Encoder{
		width:  format.CodeWidth64,
		logger: zap.NewNop(),
	}

	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// CodeWidth returns the configured code width.
func (e *Encoder) CodeWidth() format.CodeWidth {
	return e.width
}

// Encode computes one configuration code per row of set.
//
// The set is fully validated first; on error no codes are returned.
//
// Returns:
//   - *Codes: codes in [0, Π L_j) with rows holding any NA in the missing set
//   - error: ErrNoColumns, ErrInvalidShape, ErrTooManyRows, ErrInvalidLevelCount,
//     ErrInvalidLabels, ErrInvalidLevel or ErrOverflow
func (e *Encoder) Encode(set factor.ColumnSet) (*Codes, error) {
	space, err := e.prepare(set)
	if err != nil {
		e.logger.Debug("rejected column set", zap.Int("columns", len(set)), zap.Error(err))
		return nil, err
	}

	rows := set.Rows()
	weights := space.weights

	columns := make([][]factor.Level, len(set))
	for j := range set {
		columns[j] = set[j].Values
	}

	values := make([]uint64, rows)
	missing := roaring.New()

rowLoop:
	for i := range rows {
		var code uint64
		for j, col := range columns {
			v := col[i]
			if v == factor.NA {
				missing.Add(uint32(i))
				continue rowLoop
			}
			code += uint64(v-1) * weights[j]
		}
		values[i] = code
	}

	if ce := e.logger.Check(zap.DebugLevel, "encoded configurations"); ce != nil {
		ce.Write(
			zap.Int("rows", rows),
			zap.Int("columns", len(set)),
			zap.Uint64("configurations", space.size),
			zap.Uint64("missing", missing.GetCardinality()),
		)
	}

	return &Codes{
		values:    values,
		missing:   missing,
		signature: set.Signature(),
		size:      space.size,
	}, nil
}

// Space validates set and returns its configuration space under the encoder's code width.
func (e *Encoder) Space(set factor.ColumnSet) (Space, error) {
	return e.prepare(set)
}

func (e *Encoder) prepare(set factor.ColumnSet) (Space, error) {
	if err := set.ValidateShape(); err != nil {
		return Space{}, err
	}

	space, err := NewSpace(set.LevelCounts(), e.width)
	if err != nil {
		return Space{}, err
	}

	for _, c := range set {
		if err := c.Validate(); err != nil {
			return Space{}, err
		}
	}

	return space, nil
}

// Encode computes configuration codes with the default 64-bit encoder.
func Encode(set factor.ColumnSet) (*Codes, error) {
	return defaultEncoder.Encode(set)
}
