// Package blob serializes configuration codes and their presentations into a compact
// binary blob and restores them.
//
// # Layout
//
// A blob starts with the fixed section.Header, followed by three payloads:
//
//	header (section.HeaderSize bytes)
//	missing row set   (portable roaring bitmap, MissingSize bytes)
//	values payload    (encoded then compressed, ValuesSize bytes)
//	levels payload    (factor blobs only, LevelsSize bytes)
//
// The values payload holds raw codes for format.KindCodes, 1-based indexes for
// format.KindIndex and dense labels for format.KindFactor. Missing rows hold 0.
//
// # Encoding
//
//	enc, err := blob.NewEncoder(
//	    blob.WithEncoding(format.TypeVarint),
//	    blob.WithCompression(format.CompressionZstd),
//	)
//	data, err := enc.EncodePresentation(p)
//
// # Decoding
//
//	dec, err := blob.NewDecoder(blob.WithColumnSet(set))
//	b, err := dec.Decode(data)
//	if f, ok := b.Factor(); ok {
//	    ...
//	}
//
// Encoder and Decoder hold configuration only and are safe for concurrent use.
package blob
