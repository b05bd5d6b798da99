package types

// Format represents a detected container format.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota
	// FormatFLAC represents a FLAC stream (metadata blocks).
	FormatFLAC
	// FormatPNG represents a PNG image (chunks).
	FormatPNG
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatFLAC:
		return "FLAC"
	case FormatPNG:
		return "PNG"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatFLAC:
		return []string{".flac"}
	case FormatPNG:
		return []string{".png"}
	default:
		return nil
	}
}

// MarshalText implements encoding.TextMarshaler so formats print by name
// in JSON output.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
