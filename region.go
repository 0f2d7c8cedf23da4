// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package substream

import (
	"fmt"
	"io"
)

// Region exposes the byte range [begin, end) of a seekable stream as an
// independent 0-based read-only stream. It has no cursor of its own: the
// reported position is the main stream's cursor rebased to the window, so
// a Region and its main stream must not be read interleaved.
//
// Seeks clamp to the start of the window but not to its end; a position
// past the end is legal and reads there report EOF.
type Region struct {
	Proxy
	begin, end int64
}

// NewRegion exposes n bytes of main starting at off. A window reaching
// past the end of main is truncated to it. Fails if main cannot seek.
func NewRegion(main Stream, off, n int64, leaveOpen bool) (*Region, error) {
	if !main.CanSeek() {
		return nil, fmt.Errorf("window over an unseekable stream: %w", ErrUnsupported)
	}
	if off < 0 || n < 0 {
		return nil, errOffset
	}
	total, err := main.Length()
	if err != nil {
		return nil, err
	}
	begin, end := off, off+n
	if end > total || end < 0 /*overflow*/ {
		end = total
	}
	if begin > end {
		begin = end
	}

	// A borrowed window into a window rebases onto the innermost stream,
	// so a stack of nested regions costs one hop rather than one per
	// level. Owned windows keep the chain: their Close must cascade.
	for leaveOpen {
		inner, ok := main.(*Region)
		if !ok || inner.closed {
			break
		}
		begin += inner.begin
		end += inner.begin
		main = inner.under
	}

	r := &Region{
		Proxy: Proxy{under: main, leaveOpen: leaveOpen},
		begin: begin,
		end:   end,
	}
	if _, err := main.SetPosition(begin); err != nil {
		return nil, err
	}
	return r, nil
}

// NewRegionToEnd exposes everything from off to the end of main.
func NewRegionToEnd(main Stream, off int64, leaveOpen bool) (*Region, error) {
	if !main.CanSeek() {
		return nil, fmt.Errorf("window over an unseekable stream: %w", ErrUnsupported)
	}
	total, err := main.Length()
	if err != nil {
		return nil, err
	}
	if off > total {
		off = total
	}
	return NewRegion(main, off, total-off, leaveOpen)
}

func (r *Region) CanSeek() bool  { return true }
func (r *Region) CanWrite() bool { return false }

func (r *Region) Length() (int64, error) { return r.end - r.begin, nil }
func (r *Region) Position() int64        { return r.under.Position() - r.begin }

func (r *Region) Read(b []byte) (int, error) {
	avail := r.end - r.under.Position()
	if avail <= 0 {
		return 0, io.EOF
	}
	if int64(len(b)) > avail {
		b = b[:avail]
	}
	return r.under.Read(b)
}

func (r *Region) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		offset += r.begin
	case io.SeekCurrent:
		offset += r.under.Position()
	case io.SeekEnd:
		offset += r.end
	default:
		return 0, errWhence
	}
	if offset < r.begin {
		offset = r.begin
	}
	got, err := r.under.SetPosition(offset)
	if err != nil {
		return r.Position(), err
	}
	return got - r.begin, nil
}

func (r *Region) SetPosition(pos int64) (int64, error) {
	return r.Seek(pos, io.SeekStart)
}

func (r *Region) Write([]byte) (int, error) { return 0, ErrUnsupported }
func (r *Region) SetLength(int64) error     { return ErrUnsupported }
