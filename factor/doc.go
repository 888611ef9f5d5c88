// Package factor defines the categorical column model consumed by the encoder.
//
// A Column holds 1-based level indexes for each row together with the number of
// admissible levels. The zero Level, NA, marks a missing cell. A ColumnSet is an
// ordered list of columns sharing the same row count; column 0 is the least
// significant digit of the configuration code.
//
// Columns are owned by the caller. Nothing in cfgcode modifies them.
package factor
