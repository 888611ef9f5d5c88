// Command cfgcode computes configuration codes for categorical columns of a CSV file.
//
// Usage:
//
//	cfgcode encode --input data.csv --columns A,B [--factor] [--output out.cfg --compression zstd]
//	cfgcode decode --input out.cfg
//
// Empty cells and "NA" are missing. Without --output, encode prints one value per row.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
