package radix

import (
	"sync"
	"testing"

	"github.com/arloliu/cfgcode/errs"
	"github.com/arloliu/cfgcode/factor"
	"github.com/arloliu/cfgcode/format"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const na = factor.NA

func collect(c *Codes) ([]uint64, []bool) {
	codes := make([]uint64, 0, c.Len())
	oks := make([]bool, 0, c.Len())
	for code, ok := range c.All() {
		codes = append(codes, code)
		oks = append(oks, ok)
	}

	return codes, oks
}

func TestEncode_TwoColumns(t *testing.T) {
	set := factor.ColumnSet{
		{Name: "A", Levels: 2, Values: []factor.Level{1, 2, 1, na}},
		{Name: "B", Levels: 2, Values: []factor.Level{1, 1, 2, 1}},
	}

	codes, err := Encode(set)
	require.NoError(t, err)

	values, oks := collect(codes)
	require.Equal(t, []uint64{0, 1, 2, 0}, values)
	require.Equal(t, []bool{true, true, true, false}, oks)
	require.Equal(t, 4, codes.Len())
	require.Equal(t, 1, codes.MissingCount())
	require.True(t, codes.IsMissing(3))
	require.False(t, codes.IsMissing(0))
	require.Equal(t, uint64(4), codes.SpaceSize())
	require.Equal(t, set.Signature(), codes.Signature())
}

func TestEncode_SingleColumn(t *testing.T) {
	set := factor.ColumnSet{{Name: "A", Levels: 3, Values: []factor.Level{3, 1, 2}}}

	codes, err := Encode(set)
	require.NoError(t, err)
	require.Equal(t, []uint64{2, 0, 1}, codes.Values())
	require.Zero(t, codes.MissingCount())
}

func TestEncode_MissingDominates(t *testing.T) {
	set := factor.ColumnSet{
		{Name: "A", Levels: 3, Values: []factor.Level{na, 3, 2, na}},
		{Name: "B", Levels: 4, Values: []factor.Level{4, na, 1, na}},
		{Name: "C", Levels: 2, Values: []factor.Level{2, 2, na, na}},
	}

	codes, err := Encode(set)
	require.NoError(t, err)
	require.Equal(t, 4, codes.MissingCount())
	for i := range set.Rows() {
		_, ok := codes.At(i)
		require.False(t, ok, "row %d", i)
	}
}

func TestEncode_Injective(t *testing.T) {
	// every tuple of a 3x2x4 space, twice, in a scrambled order
	var a, b, c []factor.Level
	for rep := 0; rep < 2; rep++ {
		for k := 4; k >= 1; k-- {
			for i := 1; i <= 3; i++ {
				for j := 2; j >= 1; j-- {
					a = append(a, factor.Level(i))
					b = append(b, factor.Level(j))
					c = append(c, factor.Level(k))
				}
			}
		}
	}
	set := factor.ColumnSet{
		{Name: "A", Levels: 3, Values: a},
		{Name: "B", Levels: 2, Values: b},
		{Name: "C", Levels: 4, Values: c},
	}

	codes, err := Encode(set)
	require.NoError(t, err)

	space, err := NewSpace(set.LevelCounts(), format.CodeWidth64)
	require.NoError(t, err)

	byCode := make(map[uint64][]factor.Level)
	for i := range set.Rows() {
		code, ok := codes.At(i)
		require.True(t, ok)
		require.Less(t, code, uint64(24))

		row := set.Row(i)
		if prev, seen := byCode[code]; seen {
			require.Equal(t, prev, row, "equal codes must mean equal tuples")
		}
		byCode[code] = row

		decoded, err := space.Decode(code)
		require.NoError(t, err)
		require.Equal(t, row, decoded)
	}
	require.Len(t, byCode, 24)
}

func TestEncode_Deterministic(t *testing.T) {
	set := factor.ColumnSet{
		{Name: "A", Levels: 2, Values: []factor.Level{1, 2, na, 2}},
		{Name: "B", Levels: 5, Values: []factor.Level{5, 1, 3, 4}},
	}

	first, err := Encode(set)
	require.NoError(t, err)
	second, err := Encode(set)
	require.NoError(t, err)

	require.True(t, first.Equal(second))
	require.Equal(t, first.Values(), second.Values())
}

func TestEncode_DoesNotModifyInput(t *testing.T) {
	values := []factor.Level{2, na, 1}
	set := factor.ColumnSet{{Name: "A", Levels: 2, Values: values}}

	_, err := Encode(set)
	require.NoError(t, err)
	require.Equal(t, []factor.Level{2, na, 1}, values)
}

func TestEncode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		set     factor.ColumnSet
		wantErr error
	}{
		{name: "no columns", set: factor.ColumnSet{}, wantErr: errs.ErrNoColumns},
		{
			name: "different lengths",
			set: factor.ColumnSet{
				{Name: "A", Levels: 2, Values: []factor.Level{1, 2}},
				{Name: "B", Levels: 2, Values: []factor.Level{1}},
			},
			wantErr: errs.ErrInvalidShape,
		},
		{
			name:    "zero levels",
			set:     factor.ColumnSet{{Name: "A", Levels: 0, Values: []factor.Level{}}},
			wantErr: errs.ErrInvalidLevelCount,
		},
		{
			name: "level out of range after missing cell",
			set: factor.ColumnSet{
				{Name: "A", Levels: 2, Values: []factor.Level{na, 1}},
				{Name: "B", Levels: 2, Values: []factor.Level{3, 1}},
			},
			wantErr: errs.ErrInvalidLevel,
		},
		{
			name: "overflow",
			set: factor.ColumnSet{
				{Name: "A", Levels: 1<<32 - 1},
				{Name: "B", Levels: 1<<32 - 1},
				{Name: "C", Levels: 3},
			},
			wantErr: errs.ErrOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codes, err := Encode(tt.set)
			require.ErrorIs(t, err, tt.wantErr)
			require.Nil(t, codes)
		})
	}
}

func TestNewEncoder_Options(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		enc, err := NewEncoder()
		require.NoError(t, err)
		require.Equal(t, format.CodeWidth64, enc.CodeWidth())
	})

	t.Run("32-bit width rejects large spaces", func(t *testing.T) {
		enc, err := NewEncoder(WithCodeWidth(format.CodeWidth32))
		require.NoError(t, err)

		set := factor.ColumnSet{
			{Name: "A", Levels: 1 << 16, Values: []factor.Level{1}},
			{Name: "B", Levels: 1 << 15, Values: []factor.Level{1}},
		}
		_, err = enc.Encode(set)
		require.ErrorIs(t, err, errs.ErrOverflow)

		codes, err := Encode(set)
		require.NoError(t, err)
		require.Equal(t, uint64(1<<31), codes.SpaceSize())
	})

	t.Run("invalid width", func(t *testing.T) {
		_, err := NewEncoder(WithCodeWidth(8))
		require.ErrorIs(t, err, errs.ErrInvalidCodeWidth)
	})

	t.Run("nil logger", func(t *testing.T) {
		enc, err := NewEncoder(WithLogger(nil))
		require.NoError(t, err)

		_, err = enc.Encode(factor.ColumnSet{{Name: "A", Levels: 1, Values: []factor.Level{1}}})
		require.NoError(t, err)
	})
}

func TestEncoder_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	enc, err := NewEncoder(WithLogger(zap.New(core)))
	require.NoError(t, err)

	_, err = enc.Encode(factor.ColumnSet{
		{Name: "A", Levels: 2, Values: []factor.Level{1, na}},
	})
	require.NoError(t, err)

	entries := logs.FilterMessage("encoded configurations").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.EqualValues(t, 2, fields["rows"])
	require.EqualValues(t, 1, fields["missing"])

	_, err = enc.Encode(factor.ColumnSet{})
	require.Error(t, err)
	require.Equal(t, 1, logs.FilterMessage("rejected column set").Len())
}

func TestEncoder_ConcurrentUse(t *testing.T) {
	set := factor.ColumnSet{
		{Name: "A", Levels: 3, Values: []factor.Level{1, 2, 3, na, 2}},
		{Name: "B", Levels: 2, Values: []factor.Level{2, 2, 1, 1, na}},
	}
	want, err := Encode(set)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*Codes, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = Encode(set)
		}()
	}
	wg.Wait()

	for _, got := range results {
		require.True(t, want.Equal(got))
	}
}

func BenchmarkEncode(b *testing.B) {
	const rows = 10000
	set := make(factor.ColumnSet, 4)
	for j := range set {
		values := make([]factor.Level, rows)
		for i := range values {
			values[i] = factor.Level(i%(j+2) + 1)
		}
		set[j] = factor.Column{Name: string(rune('A' + j)), Levels: j + 2, Values: values}
	}

	b.ResetTimer()
	b.ReportAllocs()
	for range b.N {
		if _, err := Encode(set); err != nil {
			b.Fatal(err)
		}
	}
}
