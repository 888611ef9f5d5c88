package present

import (
	"slices"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/arloliu/cfgcode/errs"
	"github.com/arloliu/cfgcode/factor"
	"github.com/arloliu/cfgcode/format"
	"github.com/arloliu/cfgcode/radix"
	"github.com/stretchr/testify/require"
)

const na = factor.NA

func values(p Presentation) ([]uint64, []bool) {
	vals := make([]uint64, p.Len())
	oks := make([]bool, p.Len())
	for i := range vals {
		vals[i], oks[i] = p.At(i)
	}

	return vals, oks
}

func encode(t *testing.T, set factor.ColumnSet) *radix.Codes {
	t.Helper()

	codes, err := radix.Encode(set)
	require.NoError(t, err)

	return codes
}

func TestPresent_TwoColumnScenario(t *testing.T) {
	codes := encode(t, factor.ColumnSet{
		{Name: "A", Levels: 2, Values: []factor.Level{1, 2, 1, na}},
		{Name: "B", Levels: 2, Values: []factor.Level{1, 1, 2, 1}},
	})

	for _, asFactor := range []bool{false, true} {
		p, err := Present(codes, asFactor)
		require.NoError(t, err)

		vals, oks := values(p)
		require.Equal(t, []uint64{1, 2, 3, 0}, vals, "asFactor=%v", asFactor)
		require.Equal(t, []bool{true, true, true, false}, oks)
		require.Equal(t, 1, p.MissingCount())
		require.Equal(t, codes.Signature(), p.Signature())
	}

	p, err := Present(codes, true)
	require.NoError(t, err)
	require.Equal(t, format.KindFactor, p.Kind())
	require.Equal(t, []string{"0", "1", "2"}, p.(*Factor).LevelNames())
}

func TestPresent_SingleColumnIndex(t *testing.T) {
	codes := encode(t, factor.ColumnSet{{Name: "A", Levels: 3, Values: []factor.Level{3, 1, 2}}})

	p, err := Present(codes, false)
	require.NoError(t, err)
	require.Equal(t, format.KindIndex, p.Kind())

	vals, _ := values(p)
	require.Equal(t, []uint64{3, 1, 2}, vals)
}

func TestPresent_NilCodes(t *testing.T) {
	_, err := Present(nil, true)
	require.ErrorIs(t, err, errs.ErrNilCodes)
	_, err = ToIndex(nil)
	require.ErrorIs(t, err, errs.ErrNilCodes)
	_, err = ToFactor(nil)
	require.ErrorIs(t, err, errs.ErrNilCodes)
}

func TestToIndex(t *testing.T) {
	codes := radix.NewCodes([]uint64{5, 0, 0, 11}, roaring.BitmapOf(1), 42, 12)

	idx, err := ToIndex(codes)
	require.NoError(t, err)
	require.Equal(t, []uint64{6, 0, 1, 12}, idx.Values())
	require.Equal(t, uint64(42), idx.Signature())
	require.True(t, idx.Missing().Contains(1))

	// the input is untouched
	require.Equal(t, []uint64{5, 0, 0, 11}, codes.Values())

	t.Run("overflow", func(t *testing.T) {
		big := radix.NewCodes([]uint64{1<<64 - 1}, nil, 0, 0)
		_, err := ToIndex(big)
		require.ErrorIs(t, err, errs.ErrOverflow)
	})
}

func TestToFactor(t *testing.T) {
	// codes 7, 3, missing, 7, 20, 3
	codes := radix.NewCodes([]uint64{7, 3, 0, 7, 20, 3}, roaring.BitmapOf(2), 9, 21)

	f, err := ToFactor(codes)
	require.NoError(t, err)
	require.Equal(t, 3, f.NumLevels())
	require.Equal(t, []uint64{3, 7, 20}, f.Levels())
	require.Equal(t, []string{"3", "7", "20"}, f.LevelNames())
	require.Equal(t, []uint32{2, 1, 0, 2, 3, 1}, f.Labels())

	code, ok := f.Code(4)
	require.True(t, ok)
	require.Equal(t, uint64(20), code)

	_, ok = f.Code(2)
	require.False(t, ok)
	_, ok = f.Label(2)
	require.False(t, ok)
}

func TestToFactor_OrderPreserving(t *testing.T) {
	raw := []uint64{90, 4, 4, 17, 0, 63, 17, 90, 2, 0}
	codes := radix.NewCodes(slices.Clone(raw), roaring.BitmapOf(4), 0, 100)

	f, err := ToFactor(codes)
	require.NoError(t, err)

	labelSet := make(map[uint32]struct{})
	for i := range raw {
		li, okI := f.Label(i)
		if !okI {
			continue
		}
		labelSet[li] = struct{}{}
		for j := range raw {
			lj, okJ := f.Label(j)
			if !okJ {
				continue
			}
			ci, _ := codes.At(i)
			cj, _ := codes.At(j)
			switch {
			case ci < cj:
				require.Less(t, li, lj)
			case ci == cj:
				require.Equal(t, li, lj)
			}
		}
	}

	require.Len(t, labelSet, f.NumLevels())
	for k := 1; k <= f.NumLevels(); k++ {
		require.Contains(t, labelSet, uint32(k))
	}
}

func TestToFactor_AllMissing(t *testing.T) {
	codes := radix.NewCodes([]uint64{0, 0}, roaring.BitmapOf(0, 1), 0, 4)

	f, err := ToFactor(codes)
	require.NoError(t, err)
	require.Zero(t, f.NumLevels())
	require.Empty(t, f.LevelNames())
	require.Equal(t, 2, f.MissingCount())
}

func TestToFactor_Deterministic(t *testing.T) {
	codes := radix.NewCodes([]uint64{8, 1, 8, 5}, nil, 0, 9)

	a, err := ToFactor(codes)
	require.NoError(t, err)
	b, err := ToFactor(codes)
	require.NoError(t, err)

	require.Equal(t, a.Labels(), b.Labels())
	require.Equal(t, a.Levels(), b.Levels())
}

func TestNewIndex(t *testing.T) {
	idx, err := NewIndex([]uint64{1, 9, 3}, roaring.BitmapOf(1), 0, 4)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 0, 3}, idx.Values())
	require.Equal(t, uint64(4), idx.SpaceSize())

	_, err = NewIndex([]uint64{1, 0}, nil, 0, 4)
	require.ErrorIs(t, err, errs.ErrInvalidCode)

	_, err = NewIndex([]uint64{1, 2}, nil, 0, 0)
	require.ErrorIs(t, err, errs.ErrInvalidPayload)

	_, err = NewIndex([]uint64{5}, nil, 0, 4)
	require.ErrorIs(t, err, errs.ErrInvalidCode)
}

func TestNewFactor(t *testing.T) {
	f, err := NewFactor([]uint32{1, 2, 5}, []uint64{0, 6}, roaring.BitmapOf(2), 0, 7)
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 2, 0}, f.Labels())
	require.Equal(t, uint64(7), f.SpaceSize())

	_, err = NewFactor([]uint32{3}, []uint64{0, 6}, nil, 0, 7)
	require.ErrorIs(t, err, errs.ErrInvalidPayload)

	_, err = NewFactor([]uint32{1}, []uint64{6, 6}, nil, 0, 7)
	require.ErrorIs(t, err, errs.ErrInvalidPayload)

	_, err = NewFactor([]uint32{1}, []uint64{0}, nil, 0, 0)
	require.ErrorIs(t, err, errs.ErrInvalidPayload)

	_, err = NewFactor([]uint32{1}, []uint64{6}, nil, 0, 6)
	require.ErrorIs(t, err, errs.ErrInvalidCode)
}

func BenchmarkToFactor(b *testing.B) {
	const rows = 10000
	vals := make([]uint64, rows)
	for i := range vals {
		vals[i] = uint64((i * 7919) % 512)
	}
	codes := radix.NewCodes(vals, nil, 0, 512)

	b.ResetTimer()
	b.ReportAllocs()
	for range b.N {
		if _, err := ToFactor(codes); err != nil {
			b.Fatal(err)
		}
	}
}
