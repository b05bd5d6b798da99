package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/simonhull/finfo"
)

// printer writes decoded records for one file. Runs of consecutive IDAT
// chunks are printed once, followed by the number of chunks in the run.
type printer struct {
	w      io.Writer
	path   string
	format finfo.Format
	json   bool
	idat   int
}

func newPrinter(w io.Writer, path string, asJSON bool) *printer {
	return &printer{w: w, path: path, json: asJSON}
}

type jsonRecord struct {
	Path   string       `json:"path"`
	Kind   string       `json:"kind"`
	Record finfo.Record `json:"record"`
}

func (p *printer) header(format finfo.Format) {
	p.format = format
	if p.json {
		return
	}
	fmt.Fprintln(p.w, headerStyle.Render(fmt.Sprintf("%s (%s)", p.path, format)))
}

func (p *printer) record(rec finfo.Record) error {
	if p.json {
		return json.NewEncoder(p.w).Encode(jsonRecord{Path: p.path, Kind: rec.Kind(), Record: rec})
	}

	if _, ok := rec.(*finfo.ImageData); ok {
		p.idat++
		if p.idat > 1 {
			return nil
		}
	} else {
		p.flush()
	}

	h := rec.Header()
	line := fmt.Sprintf("%s  %s %s",
		offsetStyle.Render(fmt.Sprintf("%8d", h.Offset)),
		kindStyle.Render(fmt.Sprintf("%-15s", rec.Kind())),
		detailStyle.Render(describe(rec)))
	if h.Terminal {
		line += offsetStyle.Render(" (last)")
	}
	_, err := fmt.Fprintln(p.w, line)
	if err != nil {
		return err
	}

	extras := details(rec)
	if u, ok := rec.(*finfo.RawUnknown); ok && p.format == finfo.FormatPNG {
		extras = append(extras, chunkProperties(finfo.ChunkType(u.Type)))
	}
	for _, extra := range extras {
		if _, err := fmt.Fprintf(p.w, "%12s%s\n", "", extra); err != nil {
			return err
		}
	}
	return nil
}

// flush ends a run of IDAT chunks.
func (p *printer) flush() {
	if p.idat > 0 && !p.json {
		fmt.Fprintf(p.w, "%12sTotal data chunks: %d\n", "", p.idat)
	}
	p.idat = 0
}

// describe returns the one-line summary of a record.
func describe(rec finfo.Record) string {
	switch r := rec.(type) {
	case *finfo.StreamInfo:
		s := fmt.Sprintf("%d Hz, %d channels, %d bits, %d samples",
			r.SampleRate, r.Channels, r.BitsPerSample, r.TotalSamples)
		if d := r.Duration(); d > 0 {
			s += fmt.Sprintf(" (%s)", d)
		}
		return s
	case *finfo.Padding:
		return fmt.Sprintf("%d bytes", r.Size)
	case *finfo.Application:
		return fmt.Sprintf("id %q, %d bytes", r.IDString(), len(r.Data))
	case *finfo.SeekTable:
		placeholders := 0
		for _, pt := range r.Points {
			if pt.IsPlaceholder() {
				placeholders++
			}
		}
		return fmt.Sprintf("%d seek points (%d placeholders)", len(r.Points), placeholders)
	case *finfo.VorbisComment:
		return fmt.Sprintf("vendor %q, %d fields", r.Vendor, len(r.Fields))
	case *finfo.Cuesheet:
		s := fmt.Sprintf("%d tracks, lead-in %d samples", len(r.Tracks), r.LeadInSamples)
		if r.CatalogNumber != "" {
			s += fmt.Sprintf(", catalog %s", r.CatalogNumber)
		}
		if r.IsCD {
			s += ", CD-DA"
		}
		return s
	case *finfo.Picture:
		s := r.String()
		if sniffed := r.SniffMIME(); len(r.Data) > 0 && !strings.EqualFold(sniffed, r.MIMEType) {
			s += fmt.Sprintf(", content is %s", sniffed)
		}
		return s
	case *finfo.ImageHeader:
		return fmt.Sprintf("%dx%d, bit depth %d, color type %d, interlace %d",
			r.Width, r.Height, r.BitDepth, r.ColorType, r.Interlace)
	case *finfo.Palette:
		return fmt.Sprintf("%d entries", len(r.Entries))
	case *finfo.ImageData:
		return fmt.Sprintf("%d bytes", len(r.Data))
	case *finfo.ImageTrailer:
		return ""
	case *finfo.TextChunk:
		return fmt.Sprintf("%s: %s", r.Keyword, r.Text)
	case *finfo.RawUnknown:
		return fmt.Sprintf("%d bytes", len(r.Data))
	}
	return ""
}

// details returns the indented lines printed under a record.
func details(rec finfo.Record) []string {
	var lines []string
	switch r := rec.(type) {
	case *finfo.StreamInfo:
		lines = append(lines,
			fmt.Sprintf("block size %d-%d, frame size %d-%d",
				r.MinBlockSize, r.MaxBlockSize, r.MinFrameSize, r.MaxFrameSize),
			fmt.Sprintf("md5 %x", r.MD5))
	case *finfo.VorbisComment:
		for _, f := range r.Fields {
			lines = append(lines, f.Text)
		}
	case *finfo.Cuesheet:
		for _, t := range r.Tracks {
			lines = append(lines, fmt.Sprintf("track %d at %d, %d index points", t.Number, t.Offset, len(t.Indices)))
		}
	}
	return lines
}

func chunkProperties(c finfo.ChunkType) string {
	props := []string{"ancillary", "public", "unsafe to copy"}
	if c.IsCritical() {
		props[0] = "critical"
	}
	if c.IsPrivate() {
		props[1] = "private"
	}
	if c.IsSafeToCopy() {
		props[2] = "safe to copy"
	}
	return strings.Join(props, ", ")
}
