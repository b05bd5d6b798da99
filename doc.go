// Package finfo decodes the block structure of binary container formats.
//
// A container is a fixed signature followed by a chain of length-prefixed
// blocks. finfo identifies the format from the signature, then walks the
// chain and decodes each block into a typed record. Two formats are
// supported:
//
//   - FLAC: the metadata blocks before the first audio frame (STREAMINFO,
//     PADDING, APPLICATION, SEEKTABLE, VORBIS_COMMENT, CUESHEET, PICTURE)
//   - PNG: the chunk chain up to IEND (IHDR, PLTE, IDAT, IEND, tEXt)
//
// Blocks of unknown type are returned as RawUnknown with their payload, so
// a walk never stops on an unfamiliar block.
//
// # Quick Start
//
//	format, err := finfo.DecodeFile(ctx, "song.flac", func(rec finfo.Record) error {
//		fmt.Printf("%-16s offset=%d length=%d\n", rec.Kind(), rec.Header().Offset, rec.Header().Length)
//		return nil
//	})
//
// Records arrive in stream order. Use a type switch to reach the decoded
// fields:
//
//	switch r := rec.(type) {
//	case *finfo.StreamInfo:
//		fmt.Println(r.SampleRate, r.Channels, r.Duration())
//	case *finfo.ImageHeader:
//		fmt.Println(r.Width, r.Height)
//	}
//
// Summaries of many files can be computed concurrently:
//
//	summaries, err := finfo.InspectMany(ctx, paths)
//
// Chapters and Pictures collect CUESHEET or CHAPTERnnn markers and
// embedded images from FLAC files.
//
// # Error Handling
//
// Decoding stops at the first malformed block. Errors carry the file path,
// format, block kind and the stream offset of the failing block header,
// and match the sentinel for their kind with errors.Is:
//
//	var de *finfo.DecodeError
//	switch {
//	case errors.Is(err, finfo.ErrUnrecognizedFormat):
//		// not FLAC or PNG
//	case errors.Is(err, finfo.ErrTruncatedStream):
//		// input ended before the last block
//	case errors.As(err, &de):
//		log.Printf("bad %s block at offset %d", de.Block, de.Offset)
//	}
//
// No partial record is ever returned alongside an error.
package finfo
