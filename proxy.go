// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package substream

// Proxy forwards every operation unchanged to the stream it wraps. Its only
// job is ownership: Close tears the wrapped stream down at most once, and
// not at all when it was borrowed with leaveOpen. The other decorators in
// this package embed it and override what they change.
type Proxy struct {
	under     Stream
	leaveOpen bool
	closed    bool
}

func NewProxy(under Stream, leaveOpen bool) *Proxy {
	return &Proxy{under: under, leaveOpen: leaveOpen}
}

func (p *Proxy) CanRead() bool  { return p.under.CanRead() }
func (p *Proxy) CanSeek() bool  { return p.under.CanSeek() }
func (p *Proxy) CanWrite() bool { return p.under.CanWrite() }

func (p *Proxy) Read(b []byte) (int, error)  { return p.under.Read(b) }
func (p *Proxy) Write(b []byte) (int, error) { return p.under.Write(b) }

func (p *Proxy) Seek(offset int64, whence int) (int64, error) {
	return p.under.Seek(offset, whence)
}

func (p *Proxy) Position() int64                      { return p.under.Position() }
func (p *Proxy) SetPosition(pos int64) (int64, error) { return p.under.SetPosition(pos) }
func (p *Proxy) Length() (int64, error)               { return p.under.Length() }
func (p *Proxy) SetLength(n int64) error              { return p.under.SetLength(n) }

func (p *Proxy) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	if p.leaveOpen {
		return nil
	}
	return p.under.Close()
}
