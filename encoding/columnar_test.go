package encoding

import (
	"math"
	"testing"

	"github.com/arloliu/cfgcode/endian"
	"github.com/arloliu/cfgcode/errs"
	"github.com/arloliu/cfgcode/format"
	"github.com/stretchr/testify/require"
)

var sampleCodes = []uint64{0, 1, 2, 127, 128, 16383, 16384, 1 << 40, math.MaxUint64}

func TestEncodeDecode(t *testing.T) {
	engines := map[string]endian.EndianEngine{
		"little": endian.GetLittleEndianEngine(),
		"big":    endian.GetBigEndianEngine(),
	}

	for _, enc := range []format.EncodingType{format.TypeRaw, format.TypeVarint} {
		for name, engine := range engines {
			t.Run(enc.String()+"/"+name, func(t *testing.T) {
				payload, err := Encode(enc, engine, sampleCodes)
				require.NoError(t, err)

				got, err := Decode(enc, engine, payload, len(sampleCodes))
				require.NoError(t, err)
				require.Equal(t, sampleCodes, got)
			})
		}
	}
}

func TestEncode_Empty(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	for _, enc := range []format.EncodingType{format.TypeRaw, format.TypeVarint} {
		payload, err := Encode(enc, engine, nil)
		require.NoError(t, err)
		require.Empty(t, payload)

		got, err := Decode(enc, engine, payload, 0)
		require.NoError(t, err)
		require.Empty(t, got)
	}
}

func TestVarint_SmallCodesAreCompact(t *testing.T) {
	codes := make([]uint64, 1000)
	for i := range codes {
		codes[i] = uint64(i % 24)
	}

	payload, err := Encode(format.TypeVarint, nil, codes)
	require.NoError(t, err)
	require.Len(t, payload, 1000)
}

func TestDecode_Errors(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	t.Run("unknown encoding", func(t *testing.T) {
		_, err := Decode(format.EncodingType(9), engine, nil, 0)
		require.ErrorIs(t, err, errs.ErrInvalidEncoding)

		_, err = NewEncoder(format.EncodingType(9), engine)
		require.ErrorIs(t, err, errs.ErrInvalidEncoding)
	})

	t.Run("raw length mismatch", func(t *testing.T) {
		payload, err := Encode(format.TypeRaw, engine, []uint64{1, 2})
		require.NoError(t, err)

		_, err = Decode(format.TypeRaw, engine, payload[:15], 2)
		require.ErrorIs(t, err, errs.ErrInvalidPayload)
	})

	t.Run("truncated varint", func(t *testing.T) {
		payload, err := Encode(format.TypeVarint, nil, []uint64{1, 300})
		require.NoError(t, err)

		_, err = Decode(format.TypeVarint, nil, payload[:len(payload)-1], 2)
		require.ErrorIs(t, err, errs.ErrInvalidPayload)
	})

	t.Run("varint count beyond payload", func(t *testing.T) {
		_, err := Decode(format.TypeVarint, nil, []byte{1, 2}, 1<<30)
		require.ErrorIs(t, err, errs.ErrInvalidPayload)
	})

	t.Run("trailing varint bytes", func(t *testing.T) {
		payload, err := Encode(format.TypeVarint, nil, []uint64{1, 2, 3})
		require.NoError(t, err)

		_, err = Decode(format.TypeVarint, nil, payload, 2)
		require.ErrorIs(t, err, errs.ErrInvalidPayload)
	})
}

func TestMaxSize(t *testing.T) {
	n, err := MaxSize(format.TypeRaw, 3)
	require.NoError(t, err)
	require.Equal(t, 24, n)

	n, err = MaxSize(format.TypeVarint, 3)
	require.NoError(t, err)
	require.Equal(t, 30, n)

	n, err = MaxSize(format.TypeVarint, 0)
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = MaxSize(format.TypeRaw, math.MaxInt)
	require.NoError(t, err)
	require.Equal(t, math.MaxInt, n)

	_, err = MaxSize(format.EncodingType(9), 1)
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)
}

func TestDecoder_At(t *testing.T) {
	engine := endian.GetBigEndianEngine()

	for _, enc := range []format.EncodingType{format.TypeRaw, format.TypeVarint} {
		payload, err := Encode(enc, engine, sampleCodes)
		require.NoError(t, err)

		d, err := NewDecoder(enc, engine)
		require.NoError(t, err)

		for i, want := range sampleCodes {
			got, ok := d.At(payload, i, len(sampleCodes))
			require.True(t, ok)
			require.Equal(t, want, got)
		}

		_, ok := d.At(payload, len(sampleCodes), len(sampleCodes))
		require.False(t, ok)
		_, ok = d.At(payload, -1, len(sampleCodes))
		require.False(t, ok)
	}
}

func TestEncoder_WriteAndFinish(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	for _, enc := range []format.EncodingType{format.TypeRaw, format.TypeVarint} {
		e, err := NewEncoder(enc, engine)
		require.NoError(t, err)

		e.Write(5)
		e.WriteSlice([]uint64{6, 7})
		require.Equal(t, 3, e.Len())
		require.Positive(t, e.Size())

		got, err := Decode(enc, engine, e.Bytes(), 3)
		require.NoError(t, err)
		require.Equal(t, []uint64{5, 6, 7}, got)

		e.Finish()
		require.Zero(t, e.Len())
		require.Panics(t, func() { e.Write(1) })
		require.Panics(t, func() { _ = e.Bytes() })
	}
}
