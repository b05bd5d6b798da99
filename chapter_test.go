package finfo_test

import (
	"context"
	"testing"
	"time"

	"github.com/simonhull/finfo"
	"github.com/simonhull/finfo/internal/testutil"
)

func streamInfo(seconds uint64) []byte {
	return testutil.StreamInfoPayload(&finfo.StreamInfo{
		SampleRate:    44100,
		Channels:      2,
		BitsPerSample: 16,
		TotalSamples:  44100 * seconds,
	})
}

func TestChapters_Cuesheet(t *testing.T) {
	cs := &finfo.Cuesheet{Tracks: []finfo.CuesheetTrack{
		{Number: 1, Offset: 0, Indices: []finfo.TrackIndexPoint{{Number: 1}}},
		{Number: 2, Offset: 44100 * 30, Indices: []finfo.TrackIndexPoint{{Number: 1}}},
	}}
	data := testutil.NewFLAC().
		Block(0, false, streamInfo(60)).
		Block(4, false, testutil.VorbisCommentPayload("v", "CHAPTER001=00:00:05")).
		Block(5, true, testutil.CuesheetPayload(cs)).
		Bytes()
	path := writeTemp(t, "cue.flac", data)

	chapters, err := finfo.Chapters(context.Background(), path)
	if err != nil {
		t.Fatalf("Chapters failed: %v", err)
	}

	want := []finfo.Chapter{
		{Index: 1, Title: "Track 01", Start: 0, End: 30 * time.Second},
		{Index: 2, Title: "Track 02", Start: 30 * time.Second, End: time.Minute},
	}
	if len(chapters) != len(want) {
		t.Fatalf("got %d chapters, want %d", len(chapters), len(want))
	}
	for i := range want {
		if chapters[i] != want[i] {
			t.Errorf("chapter %d = %+v, want %+v", i, chapters[i], want[i])
		}
	}
}

func TestChapters_VorbisComments(t *testing.T) {
	data := testutil.NewFLAC().
		Block(0, false, streamInfo(100)).
		Block(4, true, testutil.VorbisCommentPayload("v",
			"CHAPTER001=00:00:00.000", "CHAPTER001NAME=Intro",
			"CHAPTER002=00:01:00.000", "CHAPTER002NAME=Main")).
		Bytes()
	path := writeTemp(t, "book.flac", data)

	chapters, err := finfo.Chapters(context.Background(), path)
	if err != nil {
		t.Fatalf("Chapters failed: %v", err)
	}
	if len(chapters) != 2 {
		t.Fatalf("got %d chapters, want 2", len(chapters))
	}
	if chapters[0].Title != "Intro" || chapters[0].End != time.Minute {
		t.Errorf("first chapter = %+v", chapters[0])
	}
	if chapters[1].Title != "Main" || chapters[1].End != 100*time.Second {
		t.Errorf("last chapter = %+v", chapters[1])
	}
}

func TestChapters_None(t *testing.T) {
	for name, data := range map[string][]byte{
		"plain.flac": testutil.NewFLAC().Block(0, true, streamInfo(1)).Bytes(),
		"image.png":  testutil.MinimalPNG(),
	} {
		chapters, err := finfo.Chapters(context.Background(), writeTemp(t, name, data))
		if err != nil {
			t.Fatalf("%s: Chapters failed: %v", name, err)
		}
		if len(chapters) != 0 {
			t.Errorf("%s: got %d chapters, want 0", name, len(chapters))
		}
	}
}

func TestPictures(t *testing.T) {
	cover := &finfo.Picture{
		Type:     finfo.PictureFrontCover,
		MIMEType: "image/png",
		Width:    1,
		Height:   1,
		Data:     testutil.MinimalPNG(),
	}
	back := &finfo.Picture{Type: finfo.PictureBackCover, MIMEType: "image/jpeg", Data: []byte("not really a jpeg")}

	data := testutil.NewFLAC().
		Block(0, false, streamInfo(1)).
		Block(6, false, testutil.PicturePayload(cover)).
		Block(6, true, testutil.PicturePayload(back)).
		Bytes()
	path := writeTemp(t, "art.flac", data)

	pics, err := finfo.Pictures(context.Background(), path)
	if err != nil {
		t.Fatalf("Pictures failed: %v", err)
	}
	if len(pics) != 2 {
		t.Fatalf("got %d pictures, want 2", len(pics))
	}

	if pics[0].Type != finfo.PictureFrontCover || pics[0].Extension() != ".png" {
		t.Errorf("first picture = %s, extension %s", pics[0], pics[0].Extension())
	}
	if got := pics[0].SniffMIME(); got != "image/png" {
		t.Errorf("SniffMIME() = %q, want image/png", got)
	}
	if pics[1].Type != finfo.PictureBackCover || pics[1].Extension() == ".jpg" {
		t.Errorf("second picture = %s, extension %s", pics[1], pics[1].Extension())
	}
}

func TestPictures_DecodeError(t *testing.T) {
	data := testutil.NewFLAC().Block(6, true, []byte{0, 0, 0, 3}).Bytes()
	if _, err := finfo.Pictures(context.Background(), writeTemp(t, "bad.flac", data)); err == nil {
		t.Fatal("expected an error for a malformed PICTURE block")
	}
}
