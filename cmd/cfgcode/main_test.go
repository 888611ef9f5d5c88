package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/arloliu/cfgcode/blob"
	"github.com/arloliu/cfgcode/format"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `A,B,C
1,x,lo
2,x,hi
1,y,lo
NA,x,hi
`

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestEncode_Index(t *testing.T) {
	input := writeFile(t, "data.csv", sampleCSV)

	out, err := runCLI(t, "", "encode", "--input", input, "--columns", "A,B")
	require.NoError(t, err)
	require.Equal(t, "1\n2\n3\nNA\n", out)
}

func TestEncode_Factor(t *testing.T) {
	out, err := runCLI(t, sampleCSV, "encode", "--input", "-", "--columns", "B,C", "--factor")
	require.NoError(t, err)

	// B: x=1 y=2, C: hi=1 lo=2 -> codes 2, 0, 3, 0
	require.Equal(t, "# levels: 0 2 3\n2\n1\n3\n1\n", out)
}

func TestEncode_AllColumns(t *testing.T) {
	out, err := runCLI(t, sampleCSV, "encode", "-i", "-")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "NA", lines[3])
}

func TestEncode_Blob(t *testing.T) {
	input := writeFile(t, "data.csv", sampleCSV)
	output := filepath.Join(t.TempDir(), "out.cfg")

	out, err := runCLI(t, "", "encode", "--input", input, "--columns", "A,B",
		"--factor", "--output", output, "--compression", "zstd", "--encoding", "varint", "--big-endian")
	require.NoError(t, err)
	require.Contains(t, out, "wrote 4 rows as Factor")

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	b, err := blob.Decode(data)
	require.NoError(t, err)
	require.Equal(t, format.KindFactor, b.Kind())
	require.Equal(t, format.CompressionZstd, b.Compression())
	require.Equal(t, format.TypeVarint, b.Encoding())
	require.True(t, b.IsBigEndian())

	f, ok := b.Factor()
	require.True(t, ok)
	require.Equal(t, []uint32{1, 2, 3, 0}, f.Labels())

	out, err = runCLI(t, "", "decode", "--input", output)
	require.NoError(t, err)
	require.Contains(t, out, "# kind: Factor\n")
	require.Contains(t, out, "# rows: 4\n")
	require.Contains(t, out, "# payload: Varint, Zstd\n")
	require.True(t, strings.HasSuffix(out, "# levels: 0 1 2\n1\n2\n3\nNA\n"))

	out, err = runCLI(t, "", "decode", "--input", output, "--header")
	require.NoError(t, err)
	require.NotContains(t, out, "NA")
}

func TestEncode_Config(t *testing.T) {
	input := writeFile(t, "data.csv", strings.ReplaceAll(sampleCSV, ",", ";"))
	config := writeFile(t, "cfgcode.yaml", "input: "+input+"\ncolumns: [A, B]\ndelimiter: \";\"\nfactor: true\n")

	out, err := runCLI(t, "", "--config", config, "encode")
	require.NoError(t, err)
	require.Equal(t, "# levels: 0 1 2\n1\n2\n3\nNA\n", out)

	// flags override the file
	out, err = runCLI(t, "", "--config", config, "encode", "--factor=false")
	require.NoError(t, err)
	require.Equal(t, "1\n2\n3\nNA\n", out)
}

func TestEncode_Errors(t *testing.T) {
	input := writeFile(t, "data.csv", sampleCSV)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing input", []string{"encode"}, "--input is required"},
		{"unknown column", []string{"encode", "-i", input, "-c", "A,Z"}, `column "Z" not found`},
		{"bad compression", []string{"encode", "-i", input, "--compression", "gzip"}, "unsupported compression"},
		{"bad encoding", []string{"encode", "-i", input, "--encoding", "delta"}, "unsupported encoding"},
		{"bad code width", []string{"encode", "-i", input, "--code-width", "16"}, "unsupported code width"},
		{"bad delimiter", []string{"encode", "-i", input, "--delimiter", ";;"}, "single character"},
		{"no file", []string{"encode", "-i", filepath.Join(t.TempDir(), "none.csv")}, "open input"},
		{"bad config", []string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "encode"}, "read config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, "", tt.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEncode_Overflow32(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("A,B,C\n")
	for i := range 2000 {
		sb.WriteString(strings.Join([]string{strconv.Itoa(i), strconv.Itoa(i), strconv.Itoa(i)}, ","))
		sb.WriteByte('\n')
	}

	_, err := runCLI(t, sb.String(), "encode", "-i", "-", "--code-width", "32")
	require.Error(t, err)
	require.Contains(t, err.Error(), "overflows")

	_, err = runCLI(t, sb.String(), "encode", "-i", "-")
	require.NoError(t, err)
}

func TestDecode_Errors(t *testing.T) {
	_, err := runCLI(t, "", "decode")
	require.ErrorContains(t, err, "--input is required")

	bad := writeFile(t, "bad.cfg", "not a blob")
	_, err = runCLI(t, "", "decode", "-i", bad)
	require.ErrorContains(t, err, "decode")
}

func TestReadTable_Empty(t *testing.T) {
	_, err := readTable(strings.NewReader(""), ',')
	require.ErrorContains(t, err, "no header row")

	tbl, err := readTable(strings.NewReader("A,B\n"), ',')
	require.NoError(t, err)

	set, err := tbl.columnSet(nil)
	require.NoError(t, err)
	require.Equal(t, 0, set.Rows())
	require.Equal(t, []string{"A", "B"}, set.Names())
}
