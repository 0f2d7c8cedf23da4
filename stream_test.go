// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package substream

import (
	"io"
	"math/rand"
	"testing"
)

// expectRead reads n bytes from the stream's current position and compares
// against expect, with any error appended after a space ("abc EOF").
func expectRead(t *testing.T, s Stream, n int, expect string) {
	t.Helper()
	buf := make([]byte, n)
	gotn, err := s.Read(buf)
	gots := string(buf[:gotn])
	if err != nil {
		gots += " " + err.Error()
	}
	if gots != expect {
		t.Errorf("Read(%d bytes at position %d) -> expected %q got %q", n, s.Position(), expect, gots)
	}
}

// expectReadFull keeps reading until the request is satisfied, for sources
// that legally return short reads.
func expectReadFull(t *testing.T, s Stream, n int, expect string) {
	t.Helper()
	buf := make([]byte, n)
	gotn, err := io.ReadFull(s, buf)
	gots := string(buf[:gotn])
	if err != nil {
		gots += " " + err.Error()
	}
	if gots != expect {
		t.Errorf("ReadFull(%d bytes at position %d) -> expected %q got %q", n, s.Position(), expect, gots)
	}
}

func expectSeek(t *testing.T, s Stream, offset int64, whence int, expect int64) {
	t.Helper()
	got, err := s.Seek(offset, whence)
	if err != nil {
		t.Fatalf("Seek(%d, %d) -> unexpected error %v", offset, whence, err)
	}
	if got != expect {
		t.Errorf("Seek(%d, %d) -> expected position %d got %d", offset, whence, got, expect)
	}
}

func expectLength(t *testing.T, s Stream, expect int64) {
	t.Helper()
	got, err := s.Length()
	if err != nil {
		t.Fatalf("Length() -> unexpected error %v", err)
	}
	if got != expect {
		t.Errorf("Length() -> expected %d got %d", expect, got)
	}
}

// closeCounter records how many times the wrapped stream was torn down.
type closeCounter struct {
	Stream
	closes int
}

func (c *closeCounter) Close() error {
	c.closes++
	return c.Stream.Close()
}

// awkwardReader is a forward-only source that returns deliberately short
// and empty reads, and counts how many bytes have been consumed.
type awkwardReader struct {
	data []byte
	off  int
	rng  *rand.Rand
}

func newAwkwardReader(data []byte) *awkwardReader {
	return &awkwardReader{data: data, rng: rand.New(rand.NewSource(1))}
}

func (r *awkwardReader) Read(p []byte) (int, error) {
	if r.off >= len(r.data) {
		return 0, io.EOF
	}
	switch r.rng.Intn(3) {
	case 0:
		p = p[:len(p)-len(p)/2]
	case 1:
		p = nil
	}
	n := copy(p, r.data[r.off:])
	r.off += n
	return n, nil
}

func numbered(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

// The decorators must remain plain io values to their consumers.
var (
	_ io.ReadSeekCloser = (*Proxy)(nil)
	_ io.ReadSeekCloser = (*Prefix)(nil)
	_ io.ReadSeekCloser = (*Region)(nil)
	_ io.ReadSeekCloser = (*Seekable)(nil)
	_ Stream            = (*Proxy)(nil)
	_ Stream            = (*Prefix)(nil)
	_ Stream            = (*Region)(nil)
	_ Stream            = (*Seekable)(nil)
)
