// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package substream

import (
	"fmt"
	"io"
)

// Prefix presents an immutable in-memory header concatenated in front of a
// main stream, as one read-only stream of length len(header)+main length.
// Typical use is reattaching a signature that a container format strips
// from an embedded file before handing it to a decoder.
//
// The main stream always restarts from its own offset 0 the moment the
// read position crosses the header boundary, whatever its cursor was
// beforehand.
type Prefix struct {
	Proxy
	header []byte
	vpos   int64
}

// NewPrefix wraps main behind header. The header slice is kept, not
// copied; the caller must not modify it afterwards.
func NewPrefix(header []byte, main Stream, leaveOpen bool) *Prefix {
	return &Prefix{
		Proxy:  Proxy{under: main, leaveOpen: leaveOpen},
		header: header,
	}
}

func (p *Prefix) CanWrite() bool { return false }

func (p *Prefix) Length() (int64, error) {
	n, err := p.under.Length()
	if err != nil {
		return 0, err
	}
	return int64(len(p.header)) + n, nil
}

func (p *Prefix) Position() int64 { return p.vpos }

func (p *Prefix) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	h := int64(len(p.header))
	n := 0
	if p.vpos <= h {
		if p.vpos < h {
			n = copy(b, p.header[p.vpos:])
			p.vpos += int64(n)
			if n == len(b) {
				return n, nil
			}
		}
		// Crossing into the main stream: it produces bytes from its own
		// start, regardless of any positioning done before or between
		// reads.
		if p.under.CanSeek() {
			if _, err := p.under.SetPosition(0); err != nil {
				return n, err
			}
		}
	}
	m, err := p.under.Read(b[n:])
	p.vpos += int64(m)
	n += m
	if n > 0 && err == io.EOF {
		err = nil // report EOF on the next call instead
	}
	return n, err
}

// SetPosition within the header never touches the main stream; past the
// header it seeks main, which must be seekable. The returned position
// honors whatever position main actually reached.
func (p *Prefix) SetPosition(pos int64) (int64, error) {
	if pos < 0 {
		return p.vpos, errOffset
	}
	h := int64(len(p.header))
	if pos <= h {
		p.vpos = pos
		return pos, nil
	}
	if !p.under.CanSeek() {
		return p.vpos, fmt.Errorf("seek past the header of an unseekable stream: %w", ErrUnsupported)
	}
	got, err := p.under.SetPosition(pos - h)
	if err != nil {
		return p.vpos, err
	}
	p.vpos = h + got
	return p.vpos, nil
}

func (p *Prefix) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		offset += p.vpos
	case io.SeekEnd:
		n, err := p.Length()
		if err != nil {
			return 0, err
		}
		offset += n
	default:
		return 0, errWhence
	}
	return p.SetPosition(offset)
}

func (p *Prefix) Write([]byte) (int, error) { return 0, ErrUnsupported }
func (p *Prefix) SetLength(int64) error     { return ErrUnsupported }
