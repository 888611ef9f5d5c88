// Package cfgcode computes configuration codes for rows of categorical columns.
//
// Given a set of parent columns, each with L_j levels, every row is mapped to a single
// integer that identifies its combination of parent levels (its configuration). Codes
// use mixed-radix, column-major encoding: column 0 is the least significant digit,
//
//	code = Σ (v_j - 1) · weight_j,  weight_0 = 1,  weight_j = weight_{j-1} · L_{j-1}
//
// so two rows share a code exactly when they share all parent levels. A row with a
// missing cell (factor.NA) in any column has no code.
//
// # Basic Usage
//
//	set := factor.ColumnSet{
//	    {Name: "A", Levels: 2, Values: []factor.Level{1, 2, 1, factor.NA}},
//	    {Name: "B", Levels: 2, Values: []factor.Level{1, 1, 2, 1}},
//	}
//
//	// 1-based configuration indexes: 1, 2, 3, missing
//	idx, _ := cfgcode.Configurations(set, false)
//
//	// dense factor over the observed configurations
//	f, _ := cfgcode.Configurations(set, true)
//
// # Serialization
//
// Presentations are shipped to consumers as blobs:
//
//	data, _ := cfgcode.Marshal(f, blob.WithCompression(format.CompressionZstd))
//	p, _ := cfgcode.Unmarshal(data, set)
//
// # Package Structure
//
// This package wraps the factor, radix, present and blob packages for the common
// cases. Use them directly for raw codes, decoding, batch encoding or custom options.
package cfgcode

import (
	"fmt"

	"github.com/arloliu/cfgcode/blob"
	"github.com/arloliu/cfgcode/errs"
	"github.com/arloliu/cfgcode/factor"
	"github.com/arloliu/cfgcode/present"
	"github.com/arloliu/cfgcode/radix"
)

// Configurations computes the configuration of every row of set.
//
// With asFactor false the result is a *present.Index holding 1-based codes. With
// asFactor true it is a *present.Factor whose levels are the observed codes. Rows
// with a missing cell are missing in the result.
//
// Parameters:
//   - set: parent columns, column 0 least significant
//   - asFactor: select the factor presentation
//   - opts: encoder options such as radix.WithCodeWidth
//
// Returns:
//   - present.Presentation: fresh result, set is never modified
//   - error: a validation error from radix.Encoder.Encode or an option error
func Configurations(set factor.ColumnSet, asFactor bool, opts ...radix.Option) (present.Presentation, error) {
	enc, err := radix.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	codes, err := enc.Encode(set)
	if err != nil {
		return nil, err
	}

	return present.Present(codes, asFactor)
}

// Index computes 1-based configuration indexes of set.
func Index(set factor.ColumnSet, opts ...radix.Option) (*present.Index, error) {
	p, err := Configurations(set, false, opts...)
	if err != nil {
		return nil, err
	}

	return p.(*present.Index), nil
}

// Factor computes the configuration factor of set.
func Factor(set factor.ColumnSet, opts ...radix.Option) (*present.Factor, error) {
	p, err := Configurations(set, true, opts...)
	if err != nil {
		return nil, err
	}

	return p.(*present.Factor), nil
}

// Marshal serializes an Index or a Factor into a blob.
func Marshal(p present.Presentation, opts ...blob.EncoderOption) ([]byte, error) {
	enc, err := blob.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return enc.EncodePresentation(p)
}

// Unmarshal restores the Index or Factor stored in data.
//
// The blob must have been computed from a column set with the same column names and
// level counts as set; otherwise ErrSignatureMismatch is returned.
func Unmarshal(data []byte, set factor.ColumnSet) (present.Presentation, error) {
	dec, err := blob.NewDecoder(blob.WithColumnSet(set))
	if err != nil {
		return nil, err
	}

	b, err := dec.Decode(data)
	if err != nil {
		return nil, err
	}

	p, ok := b.Presentation()
	if !ok {
		return nil, fmt.Errorf("%w: blob holds %s, not a presentation", errs.ErrInvalidKind, b.Kind())
	}

	return p, nil
}
