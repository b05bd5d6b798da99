package types

import (
	"fmt"
	"strings"
	"time"
)

// FLAC metadata block types.
const (
	FLACStreamInfo    = 0
	FLACPadding       = 1
	FLACApplication   = 2
	FLACSeekTable     = 3
	FLACVorbisComment = 4
	FLACCuesheet      = 5
	FLACPicture       = 6
)

// FLACBlockName returns the name of a FLAC metadata block type.
func FLACBlockName(t uint32) string {
	switch t {
	case FLACStreamInfo:
		return "STREAMINFO"
	case FLACPadding:
		return "PADDING"
	case FLACApplication:
		return "APPLICATION"
	case FLACSeekTable:
		return "SEEK_TABLE"
	case FLACVorbisComment:
		return "VORBIS_COMMENT"
	case FLACCuesheet:
		return "CUESHEET"
	case FLACPicture:
		return "PICTURE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", t)
	}
}

// StreamInfo describes global stream parameters.
//
// Channels and BitsPerSample hold the real values; the wire format stores
// both minus one.
type StreamInfo struct {
	BlockHeader
	TotalSamples  uint64
	MinFrameSize  uint32
	MaxFrameSize  uint32
	SampleRate    uint32
	MinBlockSize  uint16
	MaxBlockSize  uint16
	Channels      uint8
	BitsPerSample uint8
	MD5           [16]byte
}

func (*StreamInfo) Kind() string { return "STREAMINFO" }
func (*StreamInfo) isRecord()    {}

// Duration returns the stream length, or 0 when the sample rate or total
// sample count is unknown.
func (s *StreamInfo) Duration() time.Duration {
	if s.SampleRate == 0 {
		return 0
	}
	seconds := float64(s.TotalSamples) / float64(s.SampleRate)
	return time.Duration(seconds * float64(time.Second))
}

// Padding is a block of zero bytes. Only its size is kept.
type Padding struct {
	BlockHeader
	Size uint32
}

func (*Padding) Kind() string { return "PADDING" }
func (*Padding) isRecord()    {}

// Application holds third-party data tagged with a registered id.
type Application struct {
	Data []byte `json:"-"`
	BlockHeader
	ID uint32
}

func (*Application) Kind() string { return "APPLICATION" }
func (*Application) isRecord()    {}

// IDString renders the application id as its four ASCII characters.
func (a *Application) IDString() string {
	b := []byte{byte(a.ID >> 24), byte(a.ID >> 16), byte(a.ID >> 8), byte(a.ID)}
	for i, c := range b {
		if c < 0x20 || c > 0x7e {
			b[i] = '.'
		}
	}
	return string(b)
}

// SeekPointSize is the encoded size of one seek point.
const SeekPointSize = 18

// PlaceholderSample marks a placeholder seek point.
const PlaceholderSample = ^uint64(0)

// SeekPoint is one entry of a seek table.
type SeekPoint struct {
	FirstSample uint64
	FrameOffset uint64
	Samples     uint16
}

// IsPlaceholder reports whether the point is a placeholder.
func (p SeekPoint) IsPlaceholder() bool {
	return p.FirstSample == PlaceholderSample
}

// SeekTable holds the seek points of a stream in order.
type SeekTable struct {
	Points []SeekPoint
	BlockHeader
}

func (*SeekTable) Kind() string { return "SEEK_TABLE" }
func (*SeekTable) isRecord()    {}

// CommentField is one "NAME=value" entry of a Vorbis comment.
type CommentField struct {
	Text   string
	Length uint32
}

// Split splits the field at the first '='.
// ok is false when the field has no separator.
func (f CommentField) Split() (key, value string, ok bool) {
	key, value, ok = strings.Cut(f.Text, "=")
	if !ok {
		return "", "", false
	}
	return key, value, true
}

// VorbisComment holds the vendor string and the comment fields in order.
type VorbisComment struct {
	Vendor string
	Fields []CommentField
	BlockHeader
}

func (*VorbisComment) Kind() string { return "VORBIS_COMMENT" }
func (*VorbisComment) isRecord()    {}

// Get returns every value stored under key. Field names are
// case-insensitive.
func (v *VorbisComment) Get(key string) []string {
	var out []string
	for _, f := range v.Fields {
		k, val, ok := f.Split()
		if ok && strings.EqualFold(k, key) {
			out = append(out, val)
		}
	}
	return out
}

// LeadOutTrack is the track number of a CD lead-out track.
const LeadOutTrack = 170

// TrackIndexPoint is an index point within a cuesheet track.
type TrackIndexPoint struct {
	Offset uint64 // samples relative to the track offset
	Number uint8
}

// CuesheetTrack is one track of a cuesheet.
type CuesheetTrack struct {
	ISRC        string
	Indices     []TrackIndexPoint
	Offset      uint64 // samples from the start of the stream
	Number      uint8
	IsAudio     bool
	PreEmphasis bool
}

// Cuesheet holds CD table-of-contents style track information.
type Cuesheet struct {
	CatalogNumber string
	Tracks        []CuesheetTrack
	BlockHeader
	LeadInSamples uint64
	IsCD          bool
}

func (*Cuesheet) Kind() string { return "CUESHEET" }
func (*Cuesheet) isRecord()    {}

// Picture is an embedded image.
type Picture struct {
	MIMEType    string
	Description string
	Data        []byte `json:"-"`
	BlockHeader
	Type       PictureType
	Width      uint32
	Height     uint32
	ColorDepth uint32
	ColorCount uint32
}

func (*Picture) Kind() string { return "PICTURE" }
func (*Picture) isRecord()    {}
