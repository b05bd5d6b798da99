package types

// ChunkType is a PNG chunk type read as a big-endian uint32.
type ChunkType uint32

// PNG chunk types.
const (
	ChunkIHDR ChunkType = 0x49484452
	ChunkPLTE ChunkType = 0x504C5445
	ChunkIDAT ChunkType = 0x49444154
	ChunkIEND ChunkType = 0x49454E44
	ChunkTEXt ChunkType = 0x74455874
)

// String returns the four-character chunk tag.
func (c ChunkType) String() string {
	return string([]byte{byte(c >> 24), byte(c >> 16), byte(c >> 8), byte(c)})
}

// property bit 5 of each tag byte
const chunkPropertyBit = 0x20

// IsCritical reports whether the chunk is critical (bit 5 of the first
// byte clear, i.e. an uppercase letter).
func (c ChunkType) IsCritical() bool {
	return byte(c>>24)&chunkPropertyBit == 0
}

// IsPrivate reports whether the chunk is private (bit 5 of the second byte).
func (c ChunkType) IsPrivate() bool {
	return byte(c>>16)&chunkPropertyBit != 0
}

// IsSafeToCopy reports whether editors may copy the chunk unchanged after
// modifying critical chunks (bit 5 of the fourth byte).
func (c ChunkType) IsSafeToCopy() bool {
	return byte(c)&chunkPropertyBit != 0
}

// ImageHeader is the IHDR chunk.
type ImageHeader struct {
	BlockHeader
	Width       uint32
	Height      uint32
	BitDepth    uint8
	ColorType   uint8
	Compression uint8
	Filter      uint8
	Interlace   uint8
}

func (*ImageHeader) Kind() string { return "IHDR" }
func (*ImageHeader) isRecord()    {}

// RGB is one palette entry.
type RGB struct {
	R, G, B uint8
}

// Palette is the PLTE chunk.
type Palette struct {
	Entries []RGB
	BlockHeader
}

func (*Palette) Kind() string { return "PLTE" }
func (*Palette) isRecord()    {}

// ImageData is one IDAT chunk. The compressed data is kept as-is.
type ImageData struct {
	Data []byte `json:"-"`
	BlockHeader
}

func (*ImageData) Kind() string { return "IDAT" }
func (*ImageData) isRecord()    {}

// ImageTrailer is the IEND chunk that terminates a PNG stream.
type ImageTrailer struct {
	BlockHeader
}

func (*ImageTrailer) Kind() string { return "IEND" }
func (*ImageTrailer) isRecord()    {}

// TextChunk is a tEXt chunk, decoded from ISO-8859-1.
type TextChunk struct {
	Keyword string
	Text    string
	BlockHeader
}

func (*TextChunk) Kind() string { return "tEXt" }
func (*TextChunk) isRecord()    {}
