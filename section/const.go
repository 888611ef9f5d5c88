package section

const (
	// Bit masks of the Options field.
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0), 1 means big-endian
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3), must be 0
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic numbers (bits 4-15).
	MagicConfigV1Opt = 0xCF10 // MagicConfigV1Opt is the version 1 magic number of configuration blobs.
)

const (
	HeaderSize = 40 // fixed header size in bytes
)
