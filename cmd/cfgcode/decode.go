package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/cfgcode/blob"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDecodeCmd(root *rootOptions) *cobra.Command {
	var (
		input      string
		headerOnly bool
	)

	cmd := &cobra.Command{
		Use:     "decode",
		Short:   "Print the content of a configuration blob",
		Example: `  cfgcode decode --input out.cfg`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				return errors.New("--input is required")
			}

			return runDecode(cmd.OutOrStdout(), input, headerOnly, root.logger)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "blob file written by encode --output")
	cmd.Flags().BoolVar(&headerOnly, "header", false, "print the blob summary only")

	return cmd
}

func runDecode(w io.Writer, path string, headerOnly bool, logger *zap.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read blob: %w", err)
	}

	dec, err := blob.NewDecoder(blob.WithDecoderLogger(logger))
	if err != nil {
		return err
	}

	b, err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# kind: %s\n", b.Kind())
	fmt.Fprintf(bw, "# rows: %d\n", b.Rows())
	fmt.Fprintf(bw, "# configurations: %d\n", b.SpaceSize())
	fmt.Fprintf(bw, "# signature: 0x%016x\n", b.Signature())
	fmt.Fprintf(bw, "# payload: %s, %s\n", b.Encoding(), b.Compression())
	if err := bw.Flush(); err != nil {
		return err
	}

	if headerOnly {
		return nil
	}

	if p, ok := b.Presentation(); ok {
		return writePresentation(w, p)
	}

	codes, _ := b.Codes()
	writeRows(bw, codes.Len(), codes.At)

	return bw.Flush()
}
