package main

import (
	"fmt"
	"os"

	"github.com/arloliu/cfgcode/blob"
	"github.com/arloliu/cfgcode/format"
	"github.com/arloliu/cfgcode/radix"
	"gopkg.in/yaml.v3"
)

// encodeConfig holds the encode settings. Values come from the YAML config file
// first and are overridden by flags set on the command line.
type encodeConfig struct {
	Input       string   `yaml:"input"`
	Output      string   `yaml:"output"`
	Columns     []string `yaml:"columns"`
	Factor      bool     `yaml:"factor"`
	Compression string   `yaml:"compression"`
	Encoding    string   `yaml:"encoding"`
	CodeWidth   int      `yaml:"code_width"`
	BigEndian   bool     `yaml:"big_endian"`
	Delimiter   string   `yaml:"delimiter"`
}

func loadConfig(path string) (encodeConfig, error) {
	var cfg encodeConfig
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

func (c encodeConfig) delimiter() (rune, error) {
	switch len([]rune(c.Delimiter)) {
	case 0:
		return ',', nil
	case 1:
		return []rune(c.Delimiter)[0], nil
	default:
		return 0, fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
}

func (c encodeConfig) radixOptions() ([]radix.Option, error) {
	width, ok := format.ParseCodeWidth(c.CodeWidth)
	if !ok {
		return nil, fmt.Errorf("unsupported code width %d, use 32 or 64", c.CodeWidth)
	}

	return []radix.Option{radix.WithCodeWidth(width)}, nil
}

func (c encodeConfig) blobOptions() ([]blob.EncoderOption, error) {
	comp, ok := format.ParseCompression(c.Compression)
	if !ok {
		return nil, fmt.Errorf("unsupported compression %q, use none, zstd, s2 or lz4", c.Compression)
	}

	enc, ok := format.ParseEncoding(c.Encoding)
	if !ok {
		return nil, fmt.Errorf("unsupported encoding %q, use raw or varint", c.Encoding)
	}

	opts := []blob.EncoderOption{blob.WithCompression(comp), blob.WithEncoding(enc)}
	if c.BigEndian {
		opts = append(opts, blob.WithBigEndian())
	}

	return opts, nil
}
