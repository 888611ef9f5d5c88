package factor

import (
	"fmt"
	"slices"

	"github.com/arloliu/cfgcode/errs"
)

// Column is a categorical column: one level index per row plus its level count.
type Column struct {
	// Name identifies the column. It only contributes to the column set signature.
	Name string
	// Levels is the number of admissible levels L; values lie in [1, L] or are NA.
	Levels int
	// Labels optionally names each level; Labels[l-1] is the label of level l.
	Labels []string
	// Values holds one level index per row.
	Values []Level
}

// NewColumn creates a validated column. values is used as is, not copied.
func NewColumn(name string, levels int, values []Level) (Column, error) {
	c := Column{Name: name, Levels: levels, Values: values}
	if err := c.Validate(); err != nil {
		return Column{}, err
	}

	return c, nil
}

// ColumnFromLabels builds a column from textual cells.
//
// The sorted distinct non-missing labels become levels 1..L. Cells for which
// IsNALabel is true become NA. A column made only of missing cells gets a single
// level so that it remains a valid column.
func ColumnFromLabels(name string, cells []string) Column {
	labels := make([]string, 0, 8)
	for _, s := range cells {
		if !IsNALabel(s) {
			labels = append(labels, s)
		}
	}
	slices.Sort(labels)
	labels = slices.Compact(labels)

	values := make([]Level, len(cells))
	for i, s := range cells {
		if IsNALabel(s) {
			continue
		}
		pos, _ := slices.BinarySearch(labels, s)
		values[i] = Level(pos + 1)
	}

	levels := len(labels)
	if levels == 0 {
		levels = 1
		labels = nil
	}

	return Column{Name: name, Levels: levels, Labels: labels, Values: values}
}

// Len returns the number of rows.
func (c Column) Len() int {
	return len(c.Values)
}

// Label returns the label of level l, or its decimal index when the column has no labels.
func (c Column) Label(l Level) string {
	if l != NA && len(c.Labels) > 0 && int(l) <= len(c.Labels) {
		return c.Labels[l-1]
	}

	return l.String()
}

// validateLevels checks the level count and optional labels without scanning the values.
func (c Column) validateLevels() error {
	if c.Levels < 1 || uint64(c.Levels) > MaxLevels {
		return fmt.Errorf("%w: column %q declares %d levels", errs.ErrInvalidLevelCount, c.Name, c.Levels)
	}
	if len(c.Labels) > 0 && len(c.Labels) != c.Levels {
		return fmt.Errorf("%w: column %q has %d labels for %d levels",
			errs.ErrInvalidLabels, c.Name, len(c.Labels), c.Levels)
	}

	return nil
}

// Validate checks the level count and that every value is NA or lies in [1, Levels].
func (c Column) Validate() error {
	if err := c.validateLevels(); err != nil {
		return err
	}

	maxLevel := Level(c.Levels)
	for i, v := range c.Values {
		if v > maxLevel {
			return fmt.Errorf("%w: column %q row %d has level %d, want [1, %d]",
				errs.ErrInvalidLevel, c.Name, i, v, c.Levels)
		}
	}

	return nil
}
