package finfo_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/simonhull/finfo"
	"github.com/simonhull/finfo/internal/testutil"
	"github.com/simonhull/finfo/internal/types"
)

func writeBenchFile(tb testing.TB, dir string, i int, data []byte) string {
	tb.Helper()

	path := filepath.Join(dir, fmt.Sprintf("%02d.flac", i))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatal(err)
	}
	return path
}

func TestInspect_FLAC(t *testing.T) {
	si := &types.StreamInfo{SampleRate: 44100, Channels: 2, BitsPerSample: 16, TotalSamples: 44100 * 3}
	data := testutil.NewFLAC().
		Block(types.FLACStreamInfo, false, testutil.StreamInfoPayload(si)).
		Block(types.FLACPadding, false, make([]byte, 4)).
		Block(types.FLACPadding, true, make([]byte, 4)).
		Raw([]byte{0xFF, 0xF8}). // audio frames follow
		Bytes()
	path := writeTemp(t, "song.flac", data)

	s, err := finfo.Inspect(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}

	if s.Format != finfo.FormatFLAC || s.Blocks != 3 || s.Last != "PADDING" {
		t.Errorf("summary = %+v", s)
	}
	if s.Counts["PADDING"] != 2 || s.Counts["STREAMINFO"] != 1 {
		t.Errorf("counts = %v", s.Counts)
	}
	if s.Duration != 3*time.Second {
		t.Errorf("duration = %v", s.Duration)
	}
	if s.Size != int64(len(data)) {
		t.Errorf("size = %d, want %d", s.Size, len(data))
	}

	want := "song.flac: FLAC, 3 blocks (PADDING=2 STREAMINFO=1), 3s"
	if got := s.String(); !strings.HasSuffix(got, want) {
		t.Errorf("String() = %q, want suffix %q", got, want)
	}
}

func TestInspectMany_Order(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "a.png")
	if err := os.WriteFile(png, testutil.MinimalPNG(), 0o644); err != nil {
		t.Fatal(err)
	}
	flac := writeBenchFile(t, dir, 1, testutil.NewFLAC().Block(types.FLACPadding, true, nil).Bytes())

	summaries, err := finfo.InspectMany(context.Background(), []string{png, flac, png})
	if err != nil {
		t.Fatal(err)
	}

	wantFormats := []finfo.Format{finfo.FormatPNG, finfo.FormatFLAC, finfo.FormatPNG}
	for i, s := range summaries {
		if s.Format != wantFormats[i] {
			t.Errorf("summaries[%d].Format = %v, want %v", i, s.Format, wantFormats[i])
		}
	}
	if summaries[0].Width != 1 || summaries[0].Height != 1 {
		t.Errorf("png dimensions = %dx%d", summaries[0].Width, summaries[0].Height)
	}
	if got := summaries[0].String(); !strings.HasSuffix(got, "3 blocks (IDAT=1 IEND=1 IHDR=1), 1x1") {
		t.Errorf("String() = %q", got)
	}
}
