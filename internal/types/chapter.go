package types

import (
	"fmt"
	"time"
)

// Chapter is a time range within a FLAC stream, taken from CUESHEET
// tracks or CHAPTERnnn comments.
type Chapter struct {
	Index int           `json:"index"`
	Title string        `json:"title"`
	Start time.Duration `json:"start"`
	// End is zero when the stream duration is unknown and no later
	// chapter follows.
	End time.Duration `json:"end"`
}

// Length returns End-Start, or 0 when End is unknown.
func (c Chapter) Length() time.Duration {
	if c.End <= c.Start {
		return 0
	}
	return c.End - c.Start
}

// Chapters converts the cuesheet tracks to chapters. Track offsets are
// in samples, so sampleRate must be the STREAMINFO rate; a zero rate
// yields nil. The lead-out track only closes the last chapter.
func (c *Cuesheet) Chapters(sampleRate uint32) []Chapter {
	if sampleRate == 0 {
		return nil
	}
	at := func(samples uint64) time.Duration {
		return time.Duration(float64(samples) / float64(sampleRate) * float64(time.Second))
	}

	var chapters []Chapter
	for i, t := range c.Tracks {
		if t.Number == LeadOutTrack {
			break
		}

		start := t.Offset
		// Index point 1 marks the start of the track proper; 0 is pregap.
		for _, idx := range t.Indices {
			if idx.Number == 1 {
				start += idx.Offset
				break
			}
		}

		ch := Chapter{
			Index: len(chapters) + 1,
			Title: fmt.Sprintf("Track %02d", t.Number),
			Start: at(start),
		}
		if i+1 < len(c.Tracks) {
			ch.End = at(c.Tracks[i+1].Offset)
		}
		chapters = append(chapters, ch)
	}
	return chapters
}
