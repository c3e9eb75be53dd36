package resp

import "github.com/respcore/resp3codec/internal/log"

// Codec is a streaming RESP2/RESP3 reader and writer. It owns a receive
// buffer the way teacher's connBuffer owns a connection's unread bytes: a
// caller feeds it wire bytes as they arrive over any transport, and pulls
// out however many complete top-level Values those bytes make available so
// far. A Codec is not safe for concurrent use.
type Codec struct {
	buf      []byte
	maxDepth int
}

// Option configures a Codec at construction time.
type Option func(*Codec)

// WithMaxDepth bounds aggregate nesting (Array/Map/Set within Array/Map/
// Set). The default, 0, is unlimited; set it when decoding untrusted input
// to bound stack depth.
func WithMaxDepth(maxDepth int) Option {
	return func(c *Codec) { c.maxDepth = maxDepth }
}

// New returns a ready-to-use Codec.
func New(opts ...Option) *Codec {
	c := &Codec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Write appends p to the receive buffer. It never blocks and never
// inspects p; parsing happens on the next call to Parse.
func (c *Codec) Write(p []byte) {
	c.buf = append(c.buf, p...)
}

// Parse folds as much of the receive buffer as currently forms complete
// top-level Values, returning them in wire order. Bytes belonging to an
// incomplete trailing value (an aggregate still waiting on more children,
// or a line/blob frame that hasn't arrived in full) are retained in the
// buffer for the next Write/Parse cycle — Parse never discards data short
// of a protocol error.
//
// A non-nil error is a *ProtocolError: the buffered bytes already prove
// the stream malformed. The error is fatal for the connection; Parse drops
// the remainder of the buffer once it is raised, since there is no
// trustworthy frame boundary to resume from.
func (c *Codec) Parse() ([]Value, error) {
	frames, consumed, scanErr := scanFrames(c.buf)

	a := &assembler{frames: frames, maxDepth: c.maxDepth}
	values, err := a.assembleTop()
	if err != nil {
		log.Debugf("resp: protocol error, dropping %d buffered bytes: %s", len(c.buf), err)
		c.buf = nil
		return values, err
	}
	if scanErr != nil {
		log.Debugf("resp: protocol error, dropping %d buffered bytes: %s", len(c.buf), scanErr)
		c.buf = nil
		return values, scanErr
	}

	if a.pos >= len(frames) {
		// Every scanned frame folded into a returned value; whatever is left
		// in c.buf past consumed is an already-known-incomplete trailing
		// frame the scanner bailed out on.
		c.buf = c.buf[consumed:]
	} else {
		// The assembler stopped partway through the frame list: some
		// aggregate needed more children than had been scanned. Retain from
		// the byte offset of the first unconsumed frame, not from consumed,
		// since consumed may include frames that belonged to that
		// incomplete aggregate.
		retain := len(c.buf) - frames[a.pos].offset
		log.Debugf("resp: retaining %d bytes of incomplete aggregate", retain)
		c.buf = c.buf[frames[a.pos].offset:]
	}
	return values, nil
}

// Pending reports how many unparsed bytes remain buffered.
func (c *Codec) Pending() int {
	return len(c.buf)
}

// Encode renders args as a RESP command array, per Encode.
func (c *Codec) Encode(args ...any) ([]byte, error) {
	return Encode(args...)
}
