package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simonhull/finfo/internal/testutil"
	"github.com/simonhull/finfo/internal/types"
)

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	os.Stdout = w

	// Read concurrently so large outputs cannot fill the pipe.
	done := make(chan *bytes.Buffer)
	go func() {
		var buf bytes.Buffer
		buf.ReadFrom(r)
		done <- &buf
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	return (<-done).String(), fnErr
}

// assertJSONLines checks that every non-empty line of output is valid JSON
func assertJSONLines(t *testing.T, output string) []map[string]any {
	t.Helper()
	var objs []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		var obj map[string]any
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			t.Errorf("invalid JSON line: %v\nLine: %s", err, line)
			continue
		}
		objs = append(objs, obj)
	}
	return objs
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}

// resetFlags restores every global flag to its default.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	noColor = true
	renderForce = false
	disableStyles()
}

func writeFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func flacFixture() []byte {
	si := &types.StreamInfo{
		MinBlockSize:  4096,
		MaxBlockSize:  4096,
		SampleRate:    44100,
		Channels:      2,
		BitsPerSample: 16,
		TotalSamples:  441000,
	}
	return testutil.NewFLAC().
		Block(types.FLACStreamInfo, false, testutil.StreamInfoPayload(si)).
		Block(types.FLACVorbisComment, false, testutil.VorbisCommentPayload("finfo", "TITLE=Song")).
		Block(types.FLACPadding, true, make([]byte, 64)).
		Bytes()
}

func pngFixture() []byte {
	idat := []byte{0x78, 0x9c, 0x63, 0x60, 0x60, 0x60, 0x00, 0x00, 0x00, 0x04, 0x00, 0x01}
	return testutil.NewPNG().
		Chunk("IHDR", testutil.IHDRPayload(&types.ImageHeader{Width: 1, Height: 1, BitDepth: 8, ColorType: 2})).
		Chunk("tEXt", testutil.TEXtPayload("Comment", "hello")).
		Chunk("IDAT", idat[:4]).
		Chunk("IDAT", idat[4:8]).
		Chunk("IDAT", idat[8:]).
		Chunk("prIv", []byte{1, 2}).
		Chunk("IEND", nil).
		Bytes()
}
