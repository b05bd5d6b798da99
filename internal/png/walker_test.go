package png

import (
	"bytes"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	stdpng "image/png"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/finfo/internal/binary"
	"github.com/simonhull/finfo/internal/registry"
	"github.com/simonhull/finfo/internal/testutil"
	"github.com/simonhull/finfo/internal/types"
)

func walk(t *testing.T, data []byte, cfg registry.Config) ([]types.Record, *binary.Cursor, error) {
	t.Helper()

	c := binary.NewCursor(bytes.NewReader(data), "test.png")
	require.NoError(t, c.Discard(int64(len(Signature)), "signature"))

	w := NewWalker(c, cfg)
	var recs []types.Record
	for {
		rec, err := w.Next()
		if err == io.EOF {
			return recs, c, nil
		}
		if err != nil {
			return recs, c, err
		}
		recs = append(recs, rec)
	}
}

func defaultConfig() registry.Config {
	return registry.Config{Logger: slog.New(slog.DiscardHandler), MaxBlockSize: 1 << 20}
}

func TestWalker_MinimalPNG(t *testing.T) {
	recs, c, err := walk(t, testutil.MinimalPNG(), defaultConfig())
	require.NoError(t, err)
	require.Len(t, recs, 3)

	ihdr, ok := recs[0].(*types.ImageHeader)
	require.True(t, ok, "got %T", recs[0])
	assert.Equal(t, uint32(1), ihdr.Width)
	assert.Equal(t, int64(8), ihdr.Offset)
	assert.Equal(t, uint32(0xDEADBEEF), ihdr.CRC)

	assert.IsType(t, &types.ImageData{}, recs[1])
	assert.Equal(t, int64(8+12+13), recs[1].Header().Offset)

	assert.IsType(t, &types.ImageTrailer{}, recs[2])
	assert.True(t, recs[2].Header().Terminal)
	assert.True(t, c.AtEOF())
}

// image/png writes real chunk CRCs; the walker must record each as stored.
func TestWalker_StandardEncoder(t *testing.T) {
	img := image.NewPaletted(image.Rect(0, 0, 7, 3), color.Palette{
		color.RGBA{R: 255, A: 255},
		color.RGBA{G: 255, A: 255},
		color.RGBA{B: 255, A: 255},
	})
	for i := range img.Pix {
		img.Pix[i] = uint8(i % 3)
	}
	var buf bytes.Buffer
	require.NoError(t, stdpng.Encode(&buf, img))
	data := buf.Bytes()

	recs, _, err := walk(t, data, defaultConfig())
	require.NoError(t, err)

	ihdr := recs[0].(*types.ImageHeader)
	assert.Equal(t, uint32(7), ihdr.Width)
	assert.Equal(t, uint32(3), ihdr.Height)
	assert.Equal(t, uint8(3), ihdr.ColorType, "paletted")

	plte, ok := recs[1].(*types.Palette)
	require.True(t, ok, "got %T", recs[1])
	assert.Equal(t, []types.RGB{{R: 255}, {G: 255}, {B: 255}}, plte.Entries)

	for _, r := range recs {
		h := r.Header()
		start := h.Offset + 4
		end := start + 4 + int64(h.Length)
		assert.Equal(t, crc32.ChecksumIEEE(data[start:end]), h.CRC, "%s CRC", r.Kind())
	}
	assert.Equal(t, "IEND", recs[len(recs)-1].Kind())
}

func TestWalker_TextAndUnknownChunks(t *testing.T) {
	data := testutil.NewPNG().
		Chunk("IHDR", testutil.IHDRPayload(&types.ImageHeader{Width: 2, Height: 2, BitDepth: 8})).
		Chunk("tEXt", testutil.TEXtPayload("Software", "finfo")).
		Chunk("zzZz", []byte{9}).
		Chunk("IDAT", []byte{1}).
		Chunk("IDAT", []byte{2}).
		Chunk("IEND", nil).
		Bytes()

	recs, _, err := walk(t, data, defaultConfig())
	require.NoError(t, err)

	var kinds []string
	for _, r := range recs {
		kinds = append(kinds, r.Kind())
	}
	assert.Equal(t, []string{"IHDR", "tEXt", "zzZz", "IDAT", "IDAT", "IEND"}, kinds)
}

func TestWalker_StopsAtIEND(t *testing.T) {
	data := testutil.NewPNG().Chunk("IEND", nil).Raw([]byte("trailing garbage")).Bytes()

	c := binary.NewCursor(bytes.NewReader(data), "test.png")
	require.NoError(t, c.Discard(8, "signature"))
	w := NewWalker(c, defaultConfig())

	rec, err := w.Next()
	require.NoError(t, err)
	assert.True(t, rec.Header().Terminal)

	_, err = w.Next()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, int64(20), c.Offset())
}

func TestWalker_Truncated(t *testing.T) {
	full := testutil.MinimalPNG()
	iend := int64(len(full) - 12)

	tests := []struct {
		name   string
		data   []byte
		offset int64
	}{
		{"missing IEND", full[:iend], iend},
		{"header cut", full[:iend+3], iend},
		{"CRC cut", full[:len(full)-2], iend},
		{"IHDR payload cut", full[:20], 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := walk(t, tt.data, defaultConfig())
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrTruncatedStream), "got %v", err)

			var de *types.DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.offset, de.Offset)
			assert.Equal(t, types.FormatPNG, de.Format)
		})
	}
}

func TestWalker_Oversized(t *testing.T) {
	tests := []struct {
		name   string
		length uint32
		max    int64
	}{
		{"above format limit", 0x80000000, 0},
		{"above configured limit", 4096, 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hdr := []byte{0, 0, 0, 0, 'I', 'D', 'A', 'T'}
			binary.PutUint(hdr, uint64(tt.length), 4, binary.BigEndian)
			data := testutil.NewPNG().Raw(hdr).Bytes()

			cfg := defaultConfig()
			cfg.MaxBlockSize = tt.max
			_, c, err := walk(t, data, cfg)

			assert.True(t, errors.Is(err, types.ErrMalformedField), "got %v", err)
			assert.Equal(t, int64(16), c.Offset())
		})
	}
}

func TestWalker_MalformedChunk(t *testing.T) {
	data := testutil.NewPNG().
		Chunk("IHDR", []byte{1, 2, 3}).
		Chunk("IEND", nil).
		Bytes()

	_, _, err := walk(t, data, defaultConfig())

	var de *types.DecodeError
	require.True(t, errors.As(err, &de), "got %v", err)
	assert.Equal(t, types.KindMalformedField, de.Kind)
	assert.Equal(t, "IHDR", de.Block)
	assert.Equal(t, int64(8), de.Offset)
}

func TestWalker_UnlimitedOversizedChunk(t *testing.T) {
	data := testutil.NewPNG().
		Raw([]byte{0x7F, 0xFF, 0xFF, 0xFF, 'I', 'D', 'A', 'T'}).
		Raw([]byte{0x78, 0x9c, 0x63}).
		Bytes()
	require.Len(t, data, 19)

	cfg := defaultConfig()
	cfg.MaxBlockSize = 0
	_, c, err := walk(t, data, cfg)

	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrTruncatedStream), "got %v", err)
	assert.Equal(t, int64(19), c.Offset())
}

type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestWalker_ReaderFailure(t *testing.T) {
	errDisk := errors.New("input/output error")
	full := testutil.MinimalPNG()
	c := binary.NewCursor(&failingReader{data: full[:20], err: errDisk}, "disk.png")
	require.NoError(t, c.Discard(int64(len(Signature)), "signature"))

	_, err := NewWalker(c, defaultConfig()).Next()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errDisk), "got %v", err)
	assert.True(t, errors.Is(err, types.ErrReadFailure), "got %v", err)
	assert.False(t, errors.Is(err, types.ErrTruncatedStream), "got %v", err)

	var de *types.DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "IHDR", de.Block)
	assert.Equal(t, int64(8), de.Offset)
}
