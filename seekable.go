// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package substream

import (
	"io"
	"slices"
)

// Seekable makes a forward-only source (a decompressor, a network body, a
// pipe) fully seekable by materializing consumed bytes into an append-only
// in-memory buffer. Bytes are pulled from the source only as reads demand
// them, each byte exactly once, and once materialized they stay readable
// forever, so backward seeks never re-consume the source.
//
// A source that can already seek is passed through thin, with no buffering
// at all.
type Seekable struct {
	source    Stream
	leaveOpen bool
	closed    bool

	thin     bool   // source seeks by itself; buf stays nil
	buf      []byte // source's first len(buf) bytes, never rewritten
	depleted bool   // source fully consumed
	cursor   int64  // virtual read position, may run past len(buf)
}

func NewSeekable(source Stream, leaveOpen bool) *Seekable {
	s := &Seekable{source: source, leaveOpen: leaveOpen}
	if source.CanSeek() {
		s.thin = true
		s.depleted = true
	}
	return s
}

func (s *Seekable) CanRead() bool  { return true }
func (s *Seekable) CanSeek() bool  { return true }
func (s *Seekable) CanWrite() bool { return false }

func (s *Seekable) Position() int64 { return s.cursor }

// Length drains the source as a side effect: a forward-only source cannot
// report its size any other way.
func (s *Seekable) Length() (int64, error) {
	if s.thin {
		return s.source.Length()
	}
	if err := s.drain(); err != nil {
		return 0, err
	}
	return int64(len(s.buf)), nil
}

const pullChunk = 32 << 10

// pull appends one chunk of the source to buf.
func (s *Seekable) pull() error {
	s.buf = slices.Grow(s.buf, pullChunk)
	n, err := s.source.Read(s.buf[len(s.buf) : len(s.buf)+pullChunk])
	s.buf = s.buf[:len(s.buf)+n]
	if err == io.EOF {
		s.depleted = true
		return nil
	}
	return err
}

func (s *Seekable) drain() error {
	for !s.depleted {
		if err := s.pull(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seekable) Read(b []byte) (int, error) {
	if s.thin {
		if _, err := s.source.SetPosition(s.cursor); err != nil {
			return 0, err
		}
		n, err := s.source.Read(b)
		s.cursor += int64(n)
		return n, err
	}
	if len(b) == 0 {
		return 0, nil
	}

	// Serve whatever is already materialized under the cursor.
	n := 0
	if s.cursor < int64(len(s.buf)) {
		n = copy(b, s.buf[s.cursor:])
		s.cursor += int64(n)
		if n == len(b) {
			return n, nil
		}
	}

	// A seek may have jumped past the high-water mark. The skipped bytes
	// must still be consumed and kept, or a later backward seek into that
	// range would find nothing.
	for s.cursor > int64(len(s.buf)) && !s.depleted {
		if err := s.pull(); err != nil {
			return n, err
		}
	}
	if s.cursor > int64(len(s.buf)) { // the seek target was past EOF
		return 0, io.EOF
	}
	// Gap-closing can overshoot the cursor; serve that overlap too.
	if s.cursor < int64(len(s.buf)) {
		m := copy(b[n:], s.buf[s.cursor:])
		s.cursor += int64(m)
		n += m
		if n == len(b) {
			return n, nil
		}
	}

	// cursor == len(buf): read fresh bytes straight into the caller's
	// buffer and keep a copy.
	for n < len(b) && !s.depleted {
		m, err := s.source.Read(b[n:])
		s.buf = append(s.buf, b[n:n+m]...)
		s.cursor += int64(m)
		n += m
		if err == io.EOF {
			s.depleted = true
		} else if err != nil {
			return n, err
		}
		if n > 0 {
			break
		}
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Seek only moves the virtual cursor; no bytes move until the next Read,
// except that seeking relative to the end must first drain the source to
// learn where the end is.
func (s *Seekable) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		offset += s.cursor
	case io.SeekEnd:
		n, err := s.Length()
		if err != nil {
			return 0, err
		}
		offset += n
	default:
		return 0, errWhence
	}
	if offset < 0 {
		return 0, errOffset
	}
	s.cursor = offset
	return offset, nil
}

func (s *Seekable) SetPosition(pos int64) (int64, error) {
	return s.Seek(pos, io.SeekStart)
}

func (s *Seekable) Write([]byte) (int, error) { return 0, ErrUnsupported }
func (s *Seekable) SetLength(int64) error     { return ErrUnsupported }

func (s *Seekable) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.buf = nil
	if s.leaveOpen {
		return nil
	}
	return s.source.Close()
}
