package types

import (
	"fmt"

	"github.com/gabriel-vasile/mimetype"
)

// PictureType categorizes the purpose of an embedded picture.
//
// Values follow the ID3v2 APIC picture types, which FLAC reuses.
// See: https://id3.org/id3v2.4.0-frames (APIC frame)
type PictureType uint32

const (
	PictureOther             PictureType = iota // Other
	PictureIcon                                 // File icon (32x32 PNG)
	PictureOtherIcon                            // Other file icon
	PictureFrontCover                           // Front cover
	PictureBackCover                            // Back cover
	PictureLeaflet                              // Leaflet page
	PictureMedia                                // Media (CD/vinyl label)
	PictureLeadArtist                           // Lead artist/performer/soloist
	PictureArtist                               // Artist/performer
	PictureConductor                            // Conductor
	PictureBand                                 // Band/orchestra
	PictureComposer                             // Composer
	PictureLyricist                             // Lyricist/text writer
	PictureRecordingLocation                    // Recording location
	PictureDuringRecording                      // During recording
	PictureDuringPerformance                    // During performance
	PictureVideoCapture                         // Movie/video screen capture
	PictureBrightFish                           // A bright colored fish
	PictureIllustration                         // Illustration
	PictureBandLogotype                         // Band/artist logotype
	PicturePublisherLogotype                    // Publisher/studio logotype
)

var pictureTypeNames = [...]string{
	"Other",
	"File icon",
	"Other file icon",
	"Front cover",
	"Back cover",
	"Leaflet page",
	"Media",
	"Lead artist",
	"Artist",
	"Conductor",
	"Band",
	"Composer",
	"Lyricist",
	"Recording location",
	"During recording",
	"During performance",
	"Video capture",
	"A bright colored fish",
	"Illustration",
	"Band logotype",
	"Publisher logotype",
}

func (t PictureType) String() string {
	if int(t) < len(pictureTypeNames) {
		return pictureTypeNames[t]
	}
	return fmt.Sprintf("PictureType(%d)", uint32(t))
}

// String returns a human-readable description of the picture.
//
// Example output: "Front cover (1200x1200 JPEG, 245KB)"
func (p *Picture) String() string {
	dims := ""
	if p.Width > 0 && p.Height > 0 {
		dims = fmt.Sprintf("%dx%d ", p.Width, p.Height)
	}
	return fmt.Sprintf("%s (%s%s, %s)", p.Type, dims, mimeToFormat(p.MIMEType), FormatSize(len(p.Data)))
}

// SniffMIME detects the MIME type from the picture bytes rather than
// trusting the declared MIMEType.
func (p *Picture) SniffMIME() string {
	return mimetype.Detect(p.Data).String()
}

// Extension returns the file extension matching the picture bytes,
// e.g. ".png", or ".bin" when the content is not recognized.
func (p *Picture) Extension() string {
	if ext := mimetype.Detect(p.Data).Extension(); ext != "" {
		return ext
	}
	return ".bin"
}

// FormatSize formats a byte count in human-readable form.
func FormatSize(bytes int) string {
	const (
		KB = 1024
		MB = 1024 * KB
	)

	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%dKB", bytes/KB)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

// mimeToFormat converts MIME type to short format name.
func mimeToFormat(mime string) string {
	switch mime {
	case "image/jpeg":
		return "JPEG"
	case "image/png":
		return "PNG"
	case "image/gif":
		return "GIF"
	case "image/bmp":
		return "BMP"
	case "image/tiff":
		return "TIFF"
	case "image/webp":
		return "WebP"
	default:
		return "Image"
	}
}
