package binary

// Endianness represents byte order for multi-byte values.
type Endianness int

const (
	// BigEndian uses big-endian byte order.
	// Used by: FLAC block headers and bodies, PNG chunks.
	BigEndian Endianness = iota

	// LittleEndian uses little-endian byte order.
	// Used by: Vorbis comment blocks embedded in FLAC.
	LittleEndian
)

// String returns the byte order name.
func (e Endianness) String() string {
	if e == LittleEndian {
		return "little-endian"
	}
	return "big-endian"
}

// Uint interprets the first n bytes of b as an unsigned integer in byte order e.
//
// Big-endian byte i contributes b[i] << 8*(n-1-i); little-endian byte i
// contributes b[i] << 8*i.
//
// Values wider than 8 bytes are truncated modulo 2^64: the high-order bytes
// are dropped, so big-endian keeps b[n-8:n] and little-endian keeps b[:8].
// n <= 0 yields 0. Uint panics if len(b) < n, like encoding/binary.
func Uint(b []byte, n int, e Endianness) uint64 {
	if n <= 0 {
		return 0
	}
	_ = b[n-1] // bounds check hint

	if n > 8 {
		if e == LittleEndian {
			b = b[:8]
		} else {
			b = b[n-8 : n]
		}
		n = 8
	}

	var v uint64
	for i := 0; i < n; i++ {
		if e == LittleEndian {
			v |= uint64(b[i]) << (8 * uint(i))
		} else {
			v |= uint64(b[i]) << (8 * uint(n-1-i))
		}
	}
	return v
}

// PutUint stores the low n bytes of v into b in byte order e.
//
// It is the inverse of Uint for n <= 8. For n > 8 the extra high-order
// bytes are written as zero.
func PutUint(b []byte, v uint64, n int, e Endianness) {
	if n <= 0 {
		return
	}
	_ = b[n-1]

	for i := 0; i < n; i++ {
		var shift int
		if e == LittleEndian {
			shift = 8 * i
		} else {
			shift = 8 * (n - 1 - i)
		}
		if shift >= 64 {
			b[i] = 0
			continue
		}
		b[i] = byte(v >> uint(shift))
	}
}

// Bits extracts count bits starting at bit offset off from window.
//
// Bits are numbered MSB-first: bit 0 is the most significant bit of
// window[0]. Fields may straddle any number of byte boundaries. When count
// exceeds 64 only the low 64 bits of the field are kept, matching Uint.
//
// Example: the STREAMINFO sample rate is Bits(data, 80, 20).
func Bits(window []byte, off, count uint) uint64 {
	var v uint64
	for count > 0 {
		idx := off / 8
		shift := off % 8

		// Take as many bits as are left in the current byte.
		take := 8 - shift
		if take > count {
			take = count
		}

		cur := uint64(window[idx]) >> (8 - shift - take)
		cur &= (1 << take) - 1

		v = v<<take | cur
		off += take
		count -= take
	}
	return v
}

// Fields extracts consecutive bit fields of the given widths from window,
// starting at bit 0.
//
// Example:
//
//	f := binary.Fields(data, 16, 16, 24, 24, 20, 3, 5, 36)
func Fields(window []byte, widths ...uint) []uint64 {
	out := make([]uint64, len(widths))
	var off uint
	for i, w := range widths {
		out[i] = Bits(window, off, w)
		off += w
	}
	return out
}
