// Package radix computes mixed-radix configuration codes for a set of categorical columns.
//
// For columns with level counts L_0..L_{N-1} the radix weights are
//
//	weight[0] = 1
//	weight[j] = weight[j-1] * L_{j-1}
//
// and a row whose level indexes are v_0..v_{N-1} (1-based) is coded as
//
//	code = Σ (v_j - 1) * weight[j]
//
// which is the column-major index of the row's configuration in a table of
// L_0 x L_1 x ... x L_{N-1} cells. Column 0 is the least significant digit.
// A row with at least one missing cell has no code; it is recorded in the
// missing row set of the returned Codes instead.
//
// # Validation
//
// Every call validates its input before encoding: the set must have at least one
// column, all columns must have the same length, every level count must be at
// least 1, every value must be NA or lie in [1, L_j], and the number of
// configurations Π L_j must fit the encoder's code width. Nothing is wrapped
// silently.
//
// # Concurrency
//
// An Encoder is immutable once created and may be shared between goroutines.
// All working buffers are local to a call. EncodeBatch encodes independent column
// sets concurrently.
package radix
