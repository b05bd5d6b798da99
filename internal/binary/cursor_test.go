package binary

import (
	"bytes"
	"errors"
	"io"
	"runtime"
	"strings"
	"testing"
	"testing/iotest"
)

func TestCursor_PeekDoesNotAdvance(t *testing.T) {
	c := NewCursor(bytes.NewReader([]byte("fLaC\x00\x00")), "test.flac")

	for i := 0; i < 3; i++ {
		b, err := c.Peek(4)
		if err != nil {
			t.Fatal(err)
		}
		if string(b) != "fLaC" {
			t.Fatalf("Peek = %q", b)
		}
	}
	if c.Offset() != 0 {
		t.Errorf("offset = %d after peeking, want 0", c.Offset())
	}
}

func TestCursor_PeekShortInput(t *testing.T) {
	c := NewCursor(bytes.NewReader([]byte("fL")), "short")
	b, err := c.Peek(4)
	if err == nil {
		t.Fatal("expected error for short peek")
	}
	if len(b) != 2 {
		t.Errorf("expected 2 available bytes, got %d", len(b))
	}
}

func TestCursor_ReadFullAdvances(t *testing.T) {
	// OneByteReader forces io.ReadFull to loop, like a slow pipe.
	c := NewCursor(iotest.OneByteReader(bytes.NewReader([]byte{1, 2, 3, 4, 5})), "pipe")

	b, err := c.ReadFull(3, "header")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, []byte{1, 2, 3}) {
		t.Errorf("ReadFull = %v", b)
	}
	if c.Offset() != 3 {
		t.Errorf("offset = %d, want 3", c.Offset())
	}
}

func TestCursor_ReadFullTruncated(t *testing.T) {
	c := NewCursor(bytes.NewReader([]byte{1, 2}), "test.flac")

	_, err := c.ReadFull(4, "metadata block header")
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}
	if !strings.Contains(err.Error(), "metadata block header") {
		t.Errorf("error should name what was read: %v", err)
	}
}

func TestCursor_ReadFullAtEOF(t *testing.T) {
	c := NewCursor(bytes.NewReader(nil), "empty")
	if _, err := c.ReadFull(4, "header"); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if !c.AtEOF() {
		t.Error("AtEOF should be true")
	}
}

func TestCursor_Discard(t *testing.T) {
	c := NewCursor(bytes.NewReader(make([]byte, 10)), "pad")

	if err := c.Discard(8, "padding"); err != nil {
		t.Fatal(err)
	}
	if c.Offset() != 8 {
		t.Errorf("offset = %d, want 8", c.Offset())
	}

	err := c.Discard(8, "padding")
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}
	if c.Offset() != 10 {
		t.Errorf("offset = %d after short discard, want 10", c.Offset())
	}
}

func TestCursor_ReadFullReaderFailure(t *testing.T) {
	errDisk := errors.New("input/output error")
	c := NewCursor(io.MultiReader(bytes.NewReader([]byte{1, 2}), iotest.ErrReader(errDisk)), "disk.flac")

	_, err := c.ReadFull(4, "metadata block header")
	if !errors.Is(err, errDisk) {
		t.Fatalf("expected the reader error in the chain, got %v", err)
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("a reader failure must not look like truncation: %v", err)
	}
	if c.Offset() != 2 {
		t.Errorf("offset = %d, want 2", c.Offset())
	}
}

func TestCursor_ReadFullLargeLengthShortInput(t *testing.T) {
	c := NewCursor(bytes.NewReader([]byte{1, 2, 3}), "tiny.png")

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	_, err := c.ReadFull(1<<31-1, "IDAT payload")
	runtime.ReadMemStats(&after)

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}
	if !strings.Contains(err.Error(), "got 3 bytes") {
		t.Errorf("error should report the bytes received: %v", err)
	}
	if alloc := after.TotalAlloc - before.TotalAlloc; alloc > 1<<20 {
		t.Errorf("allocated %d bytes for a 3-byte input", alloc)
	}
}

func TestCursor_ReadFullAcrossSteps(t *testing.T) {
	data := make([]byte, 3*readStep+17)
	for i := range data {
		data[i] = byte(i)
	}
	c := NewCursor(iotest.HalfReader(bytes.NewReader(data)), "big")

	b, err := c.ReadFull(len(data), "payload")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, data) {
		t.Error("payload differs from input")
	}
	if c.Offset() != int64(len(data)) {
		t.Errorf("offset = %d, want %d", c.Offset(), len(data))
	}
}
