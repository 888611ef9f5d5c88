// Package endian selects the byte order of cfgcode payloads.
//
// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so payload
// writers can append fixed-width integers directly:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, code)
//
// Little-endian is the default for blobs; big-endian is available for consumers
// that expect network order. The engines are stateless and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
