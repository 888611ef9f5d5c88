package format

type (
	EncodingType    uint8
	CompressionType uint8
	Kind            uint8
	CodeWidth       uint8
)

const (
	TypeRaw    EncodingType = 0x1 // TypeRaw stores each code as a fixed 8-byte integer.
	TypeVarint EncodingType = 0x2 // TypeVarint stores each code as an unsigned varint.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	KindCodes  Kind = 0x1 // KindCodes is a 0-based raw configuration code sequence.
	KindIndex  Kind = 0x2 // KindIndex is a 1-based configuration index sequence.
	KindFactor Kind = 0x3 // KindFactor is a dense configuration factor.

	CodeWidth32 CodeWidth = 32 // CodeWidth32 bounds codes and indexes by math.MaxInt32.
	CodeWidth64 CodeWidth = 64 // CodeWidth64 bounds codes by math.MaxUint64.
)

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeVarint:
		return "Varint"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (k Kind) String() string {
	switch k {
	case KindCodes:
		return "Codes"
	case KindIndex:
		return "Index"
	case KindFactor:
		return "Factor"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a compression name (none, zstd, s2, lz4) to its type.
func ParseCompression(name string) (CompressionType, bool) {
	switch name {
	case "none", "None", "":
		return CompressionNone, true
	case "zstd", "Zstd":
		return CompressionZstd, true
	case "s2", "S2":
		return CompressionS2, true
	case "lz4", "LZ4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

// ParseEncoding maps an encoding name (raw, varint) to its type.
func ParseEncoding(name string) (EncodingType, bool) {
	switch name {
	case "raw", "Raw", "":
		return TypeRaw, true
	case "varint", "Varint":
		return TypeVarint, true
	default:
		return 0, false
	}
}

// ParseCodeWidth maps a bit count (32, 64) to its code width. Zero selects CodeWidth64.
func ParseCodeWidth(bits int) (CodeWidth, bool) {
	switch bits {
	case 0, 64:
		return CodeWidth64, true
	case 32:
		return CodeWidth32, true
	default:
		return 0, false
	}
}
