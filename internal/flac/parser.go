package flac

import (
	"github.com/simonhull/finfo/internal/binary"
	"github.com/simonhull/finfo/internal/types"
	"github.com/simonhull/finfo/internal/vorbis"
)

// decodeFunc decodes one block payload. payload holds exactly h.Length bytes.
type decodeFunc func(h types.BlockHeader, payload []byte) (types.Record, error)

// decoders maps block types to their payload decoders. PADDING is absent:
// the walker discards padding without buffering it.
var decoders = map[uint32]decodeFunc{
	types.FLACStreamInfo:    decodeStreamInfo,
	types.FLACApplication:   decodeApplication,
	types.FLACSeekTable:     decodeSeekTable,
	types.FLACVorbisComment: decodeVorbisComment,
	types.FLACCuesheet:      decodeCuesheet,
	types.FLACPicture:       decodePicture,
}

// DecodeBlock decodes payload according to h.Type. Unknown types yield a
// *types.RawUnknown holding a copy of the payload.
func DecodeBlock(h types.BlockHeader, payload []byte) (types.Record, error) {
	if h.Type == types.FLACPadding {
		return &types.Padding{BlockHeader: h, Size: uint32(len(payload))}, nil
	}
	if fn, ok := decoders[h.Type]; ok {
		return fn(h, payload)
	}
	return decodeRaw(h, payload)
}

// streamInfoSize is the fixed STREAMINFO payload size.
const streamInfoSize = 34

// streamInfoWidths are the bit widths of the STREAMINFO fields before MD5:
// min/max block size, min/max frame size, sample rate, channels-1,
// bits-1, total samples.
var streamInfoWidths = []uint{16, 16, 24, 24, 20, 3, 5, 36}

// decodeStreamInfo decodes the STREAMINFO block.
func decodeStreamInfo(h types.BlockHeader, payload []byte) (types.Record, error) {
	if len(payload) != streamInfoSize {
		return nil, types.Malformed("STREAMINFO", 0,
			"size %d, expected %d", len(payload), streamInfoSize)
	}

	f := binary.Fields(payload[:18], streamInfoWidths...)

	si := &types.StreamInfo{
		BlockHeader:   h,
		MinBlockSize:  uint16(f[0]),
		MaxBlockSize:  uint16(f[1]),
		MinFrameSize:  uint32(f[2]),
		MaxFrameSize:  uint32(f[3]),
		SampleRate:    uint32(f[4]),
		Channels:      uint8(f[5]) + 1,
		BitsPerSample: uint8(f[6]) + 1,
		TotalSamples:  f[7],
	}
	copy(si.MD5[:], payload[18:])

	return si, nil
}

func decodeApplication(h types.BlockHeader, payload []byte) (types.Record, error) {
	r := binary.NewReader(payload)

	id, err := binary.ReadBE[uint32](r, "application id")
	if err != nil {
		return nil, err
	}
	data, err := r.Bytes(r.Remaining(), "application data")
	if err != nil {
		return nil, err
	}

	return &types.Application{BlockHeader: h, ID: id, Data: data}, nil
}

// decodeSeekTable decodes a table of 18-byte seek points.
func decodeSeekTable(h types.BlockHeader, payload []byte) (types.Record, error) {
	if rem := len(payload) % types.SeekPointSize; rem != 0 {
		return nil, types.Malformed("SEEK_TABLE", int64(len(payload)-rem),
			"length %d is not a multiple of %d", len(payload), types.SeekPointSize)
	}

	cr := binary.NewChainReader(binary.NewReader(payload))
	points := make([]types.SeekPoint, len(payload)/types.SeekPointSize)
	for i := range points {
		points[i] = types.SeekPoint{
			FirstSample: binary.ReadChained[uint64](cr, binary.BigEndian, "seek point sample number"),
			FrameOffset: binary.ReadChained[uint64](cr, binary.BigEndian, "seek point frame offset"),
			Samples:     binary.ReadChained[uint16](cr, binary.BigEndian, "seek point sample count"),
		}
	}
	if err := cr.Error(); err != nil {
		return nil, err
	}

	return &types.SeekTable{BlockHeader: h, Points: points}, nil
}

func decodeVorbisComment(h types.BlockHeader, payload []byte) (types.Record, error) {
	vc, err := vorbis.Decode(payload)
	if err != nil {
		return nil, err
	}
	vc.BlockHeader = h
	return vc, nil
}

// decodePicture decodes a PICTURE block. All integers are big-endian.
func decodePicture(h types.BlockHeader, payload []byte) (types.Record, error) {
	cr := binary.NewChainReader(binary.NewReader(payload))

	pic := &types.Picture{BlockHeader: h}
	pic.Type = types.PictureType(binary.ReadChained[uint32](cr, binary.BigEndian, "picture type"))

	mimeLen := binary.ReadChained[uint32](cr, binary.BigEndian, "MIME type length")
	pic.MIMEType = cr.String(int(mimeLen), "MIME type")

	descLen := binary.ReadChained[uint32](cr, binary.BigEndian, "description length")
	pic.Description = cr.String(int(descLen), "description")

	pic.Width = binary.ReadChained[uint32](cr, binary.BigEndian, "width")
	pic.Height = binary.ReadChained[uint32](cr, binary.BigEndian, "height")
	pic.ColorDepth = binary.ReadChained[uint32](cr, binary.BigEndian, "color depth")
	pic.ColorCount = binary.ReadChained[uint32](cr, binary.BigEndian, "indexed colors")

	dataLen := binary.ReadChained[uint32](cr, binary.BigEndian, "picture data length")
	pic.Data = cr.Bytes(int(dataLen), "picture data")

	if err := cr.Error(); err != nil {
		return nil, err
	}
	if err := cr.ExpectEnd("PICTURE"); err != nil {
		return nil, err
	}

	return pic, nil
}

func decodeRaw(h types.BlockHeader, payload []byte) (types.Record, error) {
	return &types.RawUnknown{
		BlockHeader: h,
		Name:        types.FLACBlockName(h.Type),
		Data:        types.Clone(payload),
	}, nil
}
