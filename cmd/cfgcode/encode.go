package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arloliu/cfgcode/blob"
	"github.com/arloliu/cfgcode/present"
	"github.com/arloliu/cfgcode/radix"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newEncodeCmd(root *rootOptions) *cobra.Command {
	var flags encodeConfig

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Compute the configuration of every CSV row",
		Long: `Compute one configuration per row from the selected categorical columns.

The first column listed is the least significant. Empty cells and "NA" are missing;
a row with any missing cell has no configuration. Without --output the result is
printed one row per line, otherwise it is written as a binary blob.`,
		Example: `  cfgcode encode --input data.csv --columns A,B
  cfgcode encode --input data.csv --columns A,B --factor --output out.cfg --compression zstd`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root.configPath)
			if err != nil {
				return err
			}
			mergeFlags(cmd, &cfg, flags)

			return runEncode(cmd.OutOrStdout(), cmd.InOrStdin(), cfg, root.logger)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.Input, "input", "i", "", "CSV file with a header row, - for stdin")
	f.StringVarP(&flags.Output, "output", "o", "", "write a binary blob to this file instead of printing")
	f.StringSliceVarP(&flags.Columns, "columns", "c", nil, "parent columns in order, least significant first (default all)")
	f.BoolVar(&flags.Factor, "factor", false, "present configurations as a dense factor")
	f.StringVar(&flags.Compression, "compression", "none", "blob compression: none, zstd, s2 or lz4")
	f.StringVar(&flags.Encoding, "encoding", "raw", "blob value encoding: raw or varint")
	f.IntVar(&flags.CodeWidth, "code-width", 64, "code width in bits: 32 or 64")
	f.BoolVar(&flags.BigEndian, "big-endian", false, "write the blob in big-endian order")
	f.StringVar(&flags.Delimiter, "delimiter", ",", "CSV field delimiter")

	return cmd
}

// mergeFlags copies the flags set on the command line over cfg.
func mergeFlags(cmd *cobra.Command, cfg *encodeConfig, flags encodeConfig) {
	changed := cmd.Flags().Changed

	if changed("input") {
		cfg.Input = flags.Input
	}
	if changed("output") {
		cfg.Output = flags.Output
	}
	if changed("columns") {
		cfg.Columns = flags.Columns
	}
	if changed("factor") {
		cfg.Factor = flags.Factor
	}
	if changed("compression") {
		cfg.Compression = flags.Compression
	}
	if changed("encoding") {
		cfg.Encoding = flags.Encoding
	}
	if changed("code-width") {
		cfg.CodeWidth = flags.CodeWidth
	}
	if changed("big-endian") {
		cfg.BigEndian = flags.BigEndian
	}
	if changed("delimiter") {
		cfg.Delimiter = flags.Delimiter
	}
}

func runEncode(w io.Writer, stdin io.Reader, cfg encodeConfig, logger *zap.Logger) error {
	if cfg.Input == "" {
		return errors.New("--input is required")
	}

	comma, err := cfg.delimiter()
	if err != nil {
		return err
	}
	radixOpts, err := cfg.radixOptions()
	if err != nil {
		return err
	}
	blobOpts, err := cfg.blobOptions()
	if err != nil {
		return err
	}

	tbl, err := openTable(cfg.Input, stdin, comma)
	if err != nil {
		return err
	}

	set, err := tbl.columnSet(cfg.Columns)
	if err != nil {
		return err
	}

	enc, err := radix.NewEncoder(append(radixOpts, radix.WithLogger(logger))...)
	if err != nil {
		return err
	}

	codes, err := enc.Encode(set)
	if err != nil {
		return err
	}

	p, err := present.Present(codes, cfg.Factor)
	if err != nil {
		return err
	}

	logger.Info("computed configurations",
		zap.String("input", cfg.Input),
		zap.Strings("columns", set.Names()),
		zap.Int("rows", p.Len()),
		zap.Int("missing", p.MissingCount()),
		zap.Uint64("space", codes.SpaceSize()),
		zap.Stringer("kind", p.Kind()),
	)

	if cfg.Output == "" {
		return writePresentation(w, p)
	}

	be, err := blob.NewEncoder(append(blobOpts, blob.WithEncoderLogger(logger))...)
	if err != nil {
		return err
	}

	data, err := be.EncodePresentation(p)
	if err != nil {
		return err
	}

	if err := os.WriteFile(cfg.Output, data, 0o644); err != nil {
		return fmt.Errorf("write blob: %w", err)
	}

	_, err = fmt.Fprintf(w, "wrote %d rows as %s to %s (%d bytes)\n", p.Len(), p.Kind(), cfg.Output, len(data))

	return err
}

func openTable(path string, stdin io.Reader, comma rune) (*table, error) {
	if path == "-" {
		return readTable(stdin, comma)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return readTable(f, comma)
}

// writePresentation prints one value per row, NA for missing rows. Factors are
// preceded by a comment line listing their levels.
func writePresentation(w io.Writer, p present.Presentation) error {
	bw := bufio.NewWriter(w)

	if f, ok := p.(*present.Factor); ok {
		fmt.Fprintf(bw, "# levels: %s\n", strings.Join(f.LevelNames(), " "))
	}
	writeRows(bw, p.Len(), p.At)

	return bw.Flush()
}

func writeRows(bw *bufio.Writer, n int, at func(int) (uint64, bool)) {
	for i := range n {
		if v, ok := at(i); ok {
			bw.WriteString(strconv.FormatUint(v, 10))
		} else {
			bw.WriteString("NA")
		}
		bw.WriteByte('\n')
	}
}
