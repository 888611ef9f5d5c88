// Package compress provides the compression codecs applied to cfgcode blob payloads.
//
// Code columns are written in two stages: the encoding package lays the values out
// (fixed-width or varint), then a Codec from this package compresses the result.
// Code columns of parent sets with few configurations repeat a small alphabet of
// values, so general-purpose compressors shrink them well.
//
// Supported algorithms, keyed by format.CompressionType:
//
//   - format.CompressionNone: data is passed through unchanged
//   - format.CompressionZstd: best ratio, moderate speed
//   - format.CompressionS2: balanced ratio and speed
//   - format.CompressionLZ4: fastest decompression
//
// Zstd uses the pure-Go klauspost/compress implementation. Building with the
// gozstd tag (and cgo enabled) switches to the valyala/gozstd bindings instead;
// both produce standard zstd frames, so blobs remain interchangeable.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(packed, len(payload))
//
// All codecs are stateless values and safe for concurrent use; internal encoder
// and decoder state is pooled.
package compress
