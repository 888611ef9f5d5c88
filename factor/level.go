package factor

import "strconv"

// Level is a 1-based level index of a categorical column.
type Level uint32

// NA marks a missing cell.
const NA Level = 0

// MaxLevels is the largest level count a column may declare.
const MaxLevels = 1<<32 - 1

// IsNA reports whether l is the missing level.
func (l Level) IsNA() bool {
	return l == NA
}

func (l Level) String() string {
	if l == NA {
		return "NA"
	}

	return strconv.FormatUint(uint64(l), 10)
}

// IsNALabel reports whether a textual cell denotes a missing value.
func IsNALabel(s string) bool {
	return s == "" || s == "NA"
}
