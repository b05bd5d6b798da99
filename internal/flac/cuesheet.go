package flac

import (
	"fmt"
	"strings"

	"github.com/simonhull/finfo/internal/binary"
	"github.com/simonhull/finfo/internal/types"
)

// CUESHEET layout sizes.
const (
	catalogSize       = 128
	cuesheetReserved  = 258 // after the flag byte
	isrcSize          = 12
	trackReserved     = 13
	indexReserved     = 3
	cueTrackFixedSize = 8 + 1 + isrcSize + 1 + trackReserved + 1
	cueIndexSize      = 8 + 1 + indexReserved
)

// decodeCuesheet parses a CUESHEET metadata block.
func decodeCuesheet(h types.BlockHeader, payload []byte) (types.Record, error) {
	r := binary.NewReader(payload)
	cr := binary.NewChainReader(r)

	catalog := cr.String(catalogSize, "media catalog number")
	leadIn := binary.ReadChained[uint64](cr, binary.BigEndian, "lead-in samples")
	flags := binary.ReadChained[uint8](cr, binary.BigEndian, "cuesheet flags")
	cr.Skip(cuesheetReserved, "cuesheet reserved")
	trackCount := binary.ReadChained[uint8](cr, binary.BigEndian, "track count")
	if err := cr.Error(); err != nil {
		return nil, err
	}

	if need := int(trackCount) * cueTrackFixedSize; need > r.Remaining() {
		return nil, types.Nesting("cuesheet tracks", int64(r.Offset()),
			"%d tracks need at least %d bytes, %d remain", trackCount, need, r.Remaining())
	}

	tracks := make([]types.CuesheetTrack, 0, trackCount)
	for i := 0; i < int(trackCount); i++ {
		track, err := decodeCueTrack(r, i)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, track)
	}

	if err := r.ExpectEnd("CUESHEET"); err != nil {
		return nil, err
	}

	return &types.Cuesheet{
		BlockHeader:   h,
		CatalogNumber: strings.TrimRight(catalog, "\x00"),
		LeadInSamples: leadIn,
		IsCD:          flags&0x80 != 0,
		Tracks:        tracks,
	}, nil
}

// decodeCueTrack parses one track and its index points.
func decodeCueTrack(r *binary.Reader, n int) (types.CuesheetTrack, error) {
	cr := binary.NewChainReader(r)
	what := fmt.Sprintf("track %d", n)

	offset := binary.ReadChained[uint64](cr, binary.BigEndian, what+" offset")
	number := binary.ReadChained[uint8](cr, binary.BigEndian, what+" number")
	isrc := cr.String(isrcSize, what+" ISRC")
	flags := binary.ReadChained[uint8](cr, binary.BigEndian, what+" flags")
	cr.Skip(trackReserved, what+" reserved")
	indexCount := binary.ReadChained[uint8](cr, binary.BigEndian, what+" index count")
	if err := cr.Error(); err != nil {
		return types.CuesheetTrack{}, err
	}

	if need := int(indexCount) * cueIndexSize; need > r.Remaining() {
		return types.CuesheetTrack{}, types.Nesting(what+" indices", int64(r.Offset()),
			"%d index points need %d bytes, %d remain", indexCount, need, r.Remaining())
	}

	indices := make([]types.TrackIndexPoint, indexCount)
	for j := range indices {
		indices[j] = types.TrackIndexPoint{
			Offset: binary.ReadChained[uint64](cr, binary.BigEndian, what+" index offset"),
			Number: binary.ReadChained[uint8](cr, binary.BigEndian, what+" index number"),
		}
		cr.Skip(indexReserved, what+" index reserved")
	}
	if err := cr.Error(); err != nil {
		return types.CuesheetTrack{}, err
	}

	return types.CuesheetTrack{
		Offset:      offset,
		Number:      number,
		ISRC:        strings.TrimRight(isrc, "\x00"),
		IsAudio:     flags&0x80 == 0,
		PreEmphasis: flags&0x40 != 0,
		Indices:     indices,
	}, nil
}
