// Package encoding lays out columns of unsigned integers (configuration codes,
// indexes, factor labels and factor levels) as byte payloads.
//
// Two layouts are available, identified by format.EncodingType:
//
//   - format.TypeRaw: 8 bytes per value in the byte order of an endian.EndianEngine.
//     Supports O(1) random access.
//   - format.TypeVarint: unsigned LEB128 varints. Codes of small configuration
//     spaces take one or two bytes each; random access is O(n).
//
// Encoders accumulate values in a pooled buffer and must be released with Finish.
// Decoders are stateless values.
//
//	enc, _ := encoding.NewEncoder(format.TypeVarint, endian.GetLittleEndianEngine())
//	defer enc.Finish()
//	enc.WriteSlice(codes)
//	payload := bytes.Clone(enc.Bytes())
//
//	values, err := encoding.Decode(format.TypeVarint, engine, payload, len(codes))
package encoding
