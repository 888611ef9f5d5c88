// Package errs defines the sentinel errors returned by cfgcode packages.
//
// Callers match them with errors.Is; packages add context with fmt.Errorf("...: %w", err).
package errs

import "errors"

// Column set validation errors.
var (
	// ErrNoColumns is returned when a column set has no columns.
	ErrNoColumns = errors.New("cfgcode: column set has no columns")
	// ErrInvalidShape is returned when the columns of a set do not share the same row count.
	ErrInvalidShape = errors.New("cfgcode: columns have different lengths")
	// ErrTooManyRows is returned when the row count does not fit a 32-bit row index.
	ErrTooManyRows = errors.New("cfgcode: too many rows")
	// ErrInvalidLevelCount is returned when a column declares fewer than one level.
	ErrInvalidLevelCount = errors.New("cfgcode: invalid level count")
	// ErrInvalidLevel is returned when a level index is outside [1, levels] and is not NA.
	ErrInvalidLevel = errors.New("cfgcode: level index out of range")
	// ErrInvalidLabels is returned when the level labels of a column don't match its level count.
	ErrInvalidLabels = errors.New("cfgcode: level labels do not match level count")
)

// Encoding errors.
var (
	// ErrOverflow is returned when the number of configurations exceeds the code width.
	ErrOverflow = errors.New("cfgcode: configuration count overflows code width")
	// ErrInvalidCode is returned when a code is outside the configuration space.
	ErrInvalidCode = errors.New("cfgcode: code out of range")
	// ErrInvalidCodeWidth is returned for unsupported code widths.
	ErrInvalidCodeWidth = errors.New("cfgcode: invalid code width")
	// ErrNilCodes is returned when a nil code sequence is presented.
	ErrNilCodes = errors.New("cfgcode: nil codes")
)

// Blob errors.
var (
	// ErrInvalidHeaderSize is returned when the blob is shorter than the fixed header.
	ErrInvalidHeaderSize = errors.New("cfgcode: invalid header size")
	// ErrInvalidMagic is returned when the header magic number is unknown.
	ErrInvalidMagic = errors.New("cfgcode: invalid magic number")
	// ErrInvalidKind is returned when the header presentation kind is unknown.
	ErrInvalidKind = errors.New("cfgcode: invalid presentation kind")
	// ErrInvalidEncoding is returned when the header value encoding is unknown.
	ErrInvalidEncoding = errors.New("cfgcode: invalid value encoding")
	// ErrInvalidCompression is returned when the header compression type is unknown.
	ErrInvalidCompression = errors.New("cfgcode: invalid compression type")
	// ErrInvalidPayload is returned when a payload is truncated or inconsistent with the header.
	ErrInvalidPayload = errors.New("cfgcode: invalid payload")
	// ErrSignatureMismatch is returned when a blob was produced for a different column set.
	ErrSignatureMismatch = errors.New("cfgcode: column set signature mismatch")
)
