package finfo

import (
	"context"
	"time"

	"github.com/simonhull/finfo/internal/types"
	"github.com/simonhull/finfo/internal/vorbis"
)

// Chapter is a named time range within a FLAC stream.
type Chapter = types.Chapter

// Chapters returns the chapter markers of a FLAC file.
//
// CUESHEET tracks take precedence; without a cuesheet the CHAPTERnnn
// Vorbis comments are used. PNG input and FLAC streams without either
// source yield no chapters.
//
// Example:
//
//	chapters, err := finfo.Chapters(ctx, "audiobook.flac")
//	if err != nil {
//		return err
//	}
//	for _, ch := range chapters {
//		fmt.Printf("[%d] %s %s-%s\n", ch.Index, ch.Title, ch.Start, ch.End)
//	}
func Chapters(ctx context.Context, path string, opts ...Option) ([]Chapter, error) {
	var (
		info     *StreamInfo
		cue      *Cuesheet
		comments []CommentField
	)

	_, err := DecodeFile(ctx, path, func(rec Record) error {
		switch r := rec.(type) {
		case *StreamInfo:
			info = r
		case *Cuesheet:
			if cue == nil {
				cue = r
			}
		case *VorbisComment:
			comments = append(comments, r.Fields...)
		}
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	var rate uint32
	var total time.Duration
	if info != nil {
		rate, total = info.SampleRate, info.Duration()
	}

	if cue != nil {
		if chapters := cue.Chapters(rate); len(chapters) > 0 {
			if last := &chapters[len(chapters)-1]; last.End == 0 {
				last.End = total
			}
			return chapters, nil
		}
	}
	return vorbis.Chapters(comments, total), nil
}
