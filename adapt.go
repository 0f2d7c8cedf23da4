// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package substream

import (
	"bytes"
	"fmt"
	"io"
)

// The adapters below lift plain io values into the Stream contract so the
// decorators have something to wrap. Each one is read-only; each owns its
// argument, closing it (if it is an io.Closer) exactly once.

// FromBytes returns a seekable read-only Stream over b.
func FromBytes(b []byte) Stream {
	return FromReaderAt(bytes.NewReader(b), int64(len(b)))
}

// FromReaderAt returns a seekable read-only Stream over the first size
// bytes of r, keeping its own cursor on top of ReadAt.
func FromReaderAt(r io.ReaderAt, size int64) Stream {
	return &readerAtStream{r: r, size: size}
}

// FromReadSeeker returns a read-only Stream over r, sharing r's cursor.
// The stream's initial position is r's current position.
func FromReadSeeker(r io.ReadSeeker) Stream {
	pos, _ := r.Seek(0, io.SeekCurrent)
	return &readSeekerStream{r: r, pos: pos}
}

// FromReader returns a forward-only Stream over r: reads work, seeks fail
// with ErrUnsupported, and the reported position is the byte count consumed
// so far. This is the usual input to NewSeekable.
func FromReader(r io.Reader) Stream {
	return &readerStream{r: r}
}

type readerAtStream struct {
	r      io.ReaderAt
	size   int64
	seek   int64
	closed bool
}

func (f *readerAtStream) CanRead() bool  { return true }
func (f *readerAtStream) CanSeek() bool  { return true }
func (f *readerAtStream) CanWrite() bool { return false }

func (f *readerAtStream) Read(p []byte) (int, error) {
	if f.seek >= f.size {
		return 0, io.EOF
	}
	if max := f.size - f.seek; int64(len(p)) > max {
		p = p[:max]
	}
	n, err := f.r.ReadAt(p, f.seek)
	f.seek += int64(n)
	return n, err
}

func (f *readerAtStream) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		offset += f.seek
	case io.SeekEnd:
		offset += f.size
	default:
		return 0, errWhence
	}
	if offset < 0 {
		return 0, errOffset
	}
	f.seek = offset
	return offset, nil
}

func (f *readerAtStream) Position() int64 { return f.seek }
func (f *readerAtStream) SetPosition(pos int64) (int64, error) {
	return f.Seek(pos, io.SeekStart)
}

func (f *readerAtStream) Length() (int64, error)    { return f.size, nil }
func (f *readerAtStream) Write([]byte) (int, error) { return 0, ErrUnsupported }
func (f *readerAtStream) SetLength(int64) error     { return ErrUnsupported }

func (f *readerAtStream) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	if c, ok := f.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

type readSeekerStream struct {
	r      io.ReadSeeker
	pos    int64
	closed bool
}

func (f *readSeekerStream) CanRead() bool  { return true }
func (f *readSeekerStream) CanSeek() bool  { return true }
func (f *readSeekerStream) CanWrite() bool { return false }

func (f *readSeekerStream) Read(p []byte) (int, error) {
	n, err := f.r.Read(p)
	f.pos += int64(n)
	return n, err
}

func (f *readSeekerStream) Seek(offset int64, whence int) (int64, error) {
	got, err := f.r.Seek(offset, whence)
	if err != nil {
		return got, err
	}
	f.pos = got
	return got, nil
}

func (f *readSeekerStream) Position() int64 { return f.pos }
func (f *readSeekerStream) SetPosition(pos int64) (int64, error) {
	return f.Seek(pos, io.SeekStart)
}

func (f *readSeekerStream) Length() (int64, error) {
	end, err := f.r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := f.r.Seek(f.pos, io.SeekStart); err != nil {
		return 0, err
	}
	return end, nil
}

func (f *readSeekerStream) Write([]byte) (int, error) { return 0, ErrUnsupported }
func (f *readSeekerStream) SetLength(int64) error     { return ErrUnsupported }

func (f *readSeekerStream) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	if c, ok := f.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

type readerStream struct {
	r      io.Reader
	pos    int64
	closed bool
}

func (f *readerStream) CanRead() bool  { return true }
func (f *readerStream) CanSeek() bool  { return false }
func (f *readerStream) CanWrite() bool { return false }

func (f *readerStream) Read(p []byte) (int, error) {
	n, err := f.r.Read(p)
	f.pos += int64(n)
	return n, err
}

func (f *readerStream) Seek(int64, int) (int64, error) {
	return 0, fmt.Errorf("seek on a forward-only source: %w", ErrUnsupported)
}

func (f *readerStream) Position() int64 { return f.pos }
func (f *readerStream) SetPosition(int64) (int64, error) {
	return 0, fmt.Errorf("seek on a forward-only source: %w", ErrUnsupported)
}

func (f *readerStream) Length() (int64, error) {
	return 0, fmt.Errorf("length of a forward-only source: %w", ErrUnsupported)
}

func (f *readerStream) Write([]byte) (int, error) { return 0, ErrUnsupported }
func (f *readerStream) SetLength(int64) error     { return ErrUnsupported }

func (f *readerStream) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	if c, ok := f.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
