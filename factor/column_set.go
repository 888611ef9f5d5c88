package factor

import (
	"fmt"
	"math"

	"github.com/arloliu/cfgcode/errs"
	"github.com/arloliu/cfgcode/internal/hash"
)

// MaxRows is the largest row count supported; row sets are 32-bit.
const MaxRows = math.MaxUint32

// ColumnSet is an ordered list of columns with a common row count.
// Column 0 is the least significant.
type ColumnSet []Column

// Rows returns the row count of the first column, or 0 for an empty set.
func (s ColumnSet) Rows() int {
	if len(s) == 0 {
		return 0
	}

	return s[0].Len()
}

// LevelCounts returns the level count of each column.
func (s ColumnSet) LevelCounts() []int {
	counts := make([]int, len(s))
	for j, c := range s {
		counts[j] = c.Levels
	}

	return counts
}

// Names returns the name of each column.
func (s ColumnSet) Names() []string {
	names := make([]string, len(s))
	for j, c := range s {
		names[j] = c.Name
	}

	return names
}

// Signature fingerprints the column names and level counts.
//
// Two sets with the same signature produce codes in the same configuration space.
func (s ColumnSet) Signature() uint64 {
	return hash.Schema(s.Names(), s.LevelCounts())
}

// ValidateShape checks everything except the individual cell values:
// at least one column, equal lengths, supported row count and valid level counts.
func (s ColumnSet) ValidateShape() error {
	if len(s) == 0 {
		return errs.ErrNoColumns
	}

	rows := s.Rows()
	if uint64(rows) > MaxRows {
		return fmt.Errorf("%w: %d rows", errs.ErrTooManyRows, rows)
	}

	for j, c := range s {
		if c.Len() != rows {
			return fmt.Errorf("%w: column %d (%q) has %d rows, column 0 has %d",
				errs.ErrInvalidShape, j, c.Name, c.Len(), rows)
		}
		if err := c.validateLevels(); err != nil {
			return err
		}
	}

	return nil
}

// Validate runs ValidateShape and then checks every cell value.
func (s ColumnSet) Validate() error {
	if err := s.ValidateShape(); err != nil {
		return err
	}

	for _, c := range s {
		if err := c.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Row returns the level tuple of row i.
func (s ColumnSet) Row(i int) []Level {
	row := make([]Level, len(s))
	for j, c := range s {
		row[j] = c.Values[i]
	}

	return row
}
