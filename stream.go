// Copyright (c) Elliot Nunn
// Licensed under the MIT license

// Package substream provides composable byte-stream decorators for
// file-format extraction code: a transparent proxy, a stream with an
// in-memory header prepended (Prefix), a bounded window into a larger
// stream (Region), and a wrapper that makes a forward-only reader seekable
// by materializing what it has consumed (Seekable). Every decorator
// presents the same Stream contract, so a decoder never needs to know the
// real shape of its input, and stacks of decorators compose freely.
package substream

import (
	"errors"
	"io"
)

// Stream is the contract shared by every decorator in this package and by
// the sources they wrap. It embeds the stdlib io interfaces, so a Stream
// can be handed to anything wanting an io.Reader, io.ReadSeeker or
// io.ReadSeekCloser.
//
// Operations a particular stream cannot perform fail with ErrUnsupported.
// Reading at or past the end is not a failure: Read returns (0, io.EOF).
// Close is idempotent; whether it cascades to a wrapped stream depends on
// the leaveOpen flag given at construction.
type Stream interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer

	CanRead() bool
	CanSeek() bool
	CanWrite() bool

	// Position reports the cursor in this stream's own 0-based
	// coordinate space.
	Position() int64

	// SetPosition moves the cursor and returns the position actually
	// reached, which can differ from pos when the underlying stream
	// clamps.
	SetPosition(pos int64) (int64, error)

	// Length reports the total byte count of the stream. On a Seekable
	// over a forward-only source this drains the source first.
	Length() (int64, error)

	SetLength(n int64) error
}

// ErrUnsupported is the failure for operations a stream cannot perform:
// writing or SetLength on a read-only wrapper, or seeking where the
// underlying stream cannot.
var ErrUnsupported = errors.New("substream: operation not supported")

var errWhence = errors.New("Seek: invalid whence")
var errOffset = errors.New("Seek: invalid offset")
