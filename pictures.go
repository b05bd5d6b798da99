package finfo

import (
	"context"

	"github.com/simonhull/finfo/internal/types"
)

// Picture type constants, as stored in FLAC PICTURE blocks.
const (
	PictureOther             = types.PictureOther
	PictureIcon              = types.PictureIcon
	PictureOtherIcon         = types.PictureOtherIcon
	PictureFrontCover        = types.PictureFrontCover
	PictureBackCover         = types.PictureBackCover
	PictureLeaflet           = types.PictureLeaflet
	PictureMedia             = types.PictureMedia
	PictureLeadArtist        = types.PictureLeadArtist
	PictureArtist            = types.PictureArtist
	PictureConductor         = types.PictureConductor
	PictureBand              = types.PictureBand
	PictureComposer          = types.PictureComposer
	PictureLyricist          = types.PictureLyricist
	PictureRecordingLocation = types.PictureRecordingLocation
	PictureDuringRecording   = types.PictureDuringRecording
	PictureDuringPerformance = types.PictureDuringPerformance
	PictureVideoCapture      = types.PictureVideoCapture
	PictureBrightFish        = types.PictureBrightFish
	PictureIllustration      = types.PictureIllustration
	PictureBandLogotype      = types.PictureBandLogotype
	PicturePublisherLogotype = types.PicturePublisherLogotype
)

// Pictures returns the PICTURE blocks of a FLAC file in stream order.
// The image bytes are owned by the returned records.
func Pictures(ctx context.Context, path string, opts ...Option) ([]*Picture, error) {
	var pics []*Picture
	_, err := DecodeFile(ctx, path, func(rec Record) error {
		if p, ok := rec.(*Picture); ok {
			pics = append(pics, p)
		}
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return pics, nil
}
