// Package present turns raw configuration codes into the representations consumers use.
//
// Two representations are available, both derived from a radix.Codes value without
// modifying it:
//
//   - Index: every code shifted by one, so configurations are numbered from 1.
//   - Factor: the distinct observed codes, sorted ascending, become the levels of
//     a factor; every row is labeled with the 1-based rank of its code.
//
// Missing rows stay missing in both. Present selects a representation with a flag.
package present
