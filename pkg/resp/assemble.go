package resp

import "math/big"

// assembler folds a flat frame list into a sequence of top-level Values.
// It is deliberately dumb about bytes: all it knows is frame indices. The
// byte-offset bookkeeping that lets the facade retain an incomplete tail
// lives in codec.go, which maps the assembler's final frame position back
// to a byte offset via rawFrame.offset.
type assembler struct {
	frames   []rawFrame
	pos      int
	maxDepth int // 0 = unlimited
}

// assembleTop assembles as many complete top-level values as the frame
// list allows, stopping at the first value it cannot fully fold (because
// some descendant aggregate needs more children than are currently
// available). It never partially-consumes a top-level value: if value N
// cannot be completed, a.pos is left exactly where value N started, so the
// caller can compute how many bytes to retain for the next round.
func (a *assembler) assembleTop() ([]Value, error) {
	var values []Value
	for a.pos < len(a.frames) {
		start := a.pos
		v, ok, err := a.assembleOne(0)
		if err != nil {
			return values, err
		}
		if !ok {
			a.pos = start
			break
		}
		values = append(values, v)
	}
	return values, nil
}

// assembleOne assembles the value rooted at the current frame, advancing
// a.pos past it (and all of its descendants) on success. ok=false means
// the frame list ran out before every descendant an aggregate header
// declared could be assembled; the caller must not trust a.pos to mean
// anything useful in that case beyond "more than we had".
func (a *assembler) assembleOne(depth int) (Value, bool, error) {
	if a.maxDepth > 0 && depth > a.maxDepth {
		return Value{}, false, newProtocolError(a.currentOffset(), "aggregate nesting exceeds max depth %d", a.maxDepth)
	}
	if a.pos >= len(a.frames) {
		return Value{}, false, nil
	}
	f := a.frames[a.pos]
	a.pos++

	switch f.typ {
	case '+':
		return simpleString(string(f.payload)), true, nil
	case '-':
		return errorValue(f.payload), true, nil
	case ':':
		return integerValue(f.i64), true, nil
	case '(':
		n := new(big.Int)
		if _, ok := n.SetString(string(f.payload), 10); !ok {
			return Value{}, false, newProtocolError(f.offset, "invalid big integer %q", f.payload)
		}
		return bigIntegerValue(n), true, nil
	case ',':
		d, ok := parseDouble(f.payload)
		if !ok {
			return Value{}, false, newProtocolError(f.offset, "invalid double %q", f.payload)
		}
		return doubleValue(d), true, nil
	case '#':
		return booleanValue(f.payload[0] == 't'), true, nil
	case '_':
		return nullValue(), true, nil
	case '$':
		if f.null {
			return nullValue(), true, nil
		}
		return blobString(copyBytes(f.payload)), true, nil
	case '!':
		code, msg := splitErrorPayload(f.payload)
		return Value{Kind: KindError, ErrCode: code, ErrMessage: msg}, true, nil
	case '=':
		return verbatimValue(f.format, string(f.payload)), true, nil
	case '*':
		if f.null {
			return nullValue(), true, nil
		}
		children, ok, err := a.assembleN(f.count, depth)
		if err != nil || !ok {
			return Value{}, false, err
		}
		return Value{Kind: KindArray, Array: children}, true, nil
	case '%':
		pairs := make([]Pair, 0, f.count)
		for i := 0; i < f.count; i++ {
			k, ok, err := a.assembleOne(depth + 1)
			if err != nil || !ok {
				return Value{}, false, err
			}
			v, ok, err := a.assembleOne(depth + 1)
			if err != nil || !ok {
				return Value{}, false, err
			}
			pairs = append(pairs, Pair{Key: k, Value: v})
		}
		return Value{Kind: KindMap, Pairs: pairs}, true, nil
	case '~':
		children, ok, err := a.assembleN(f.count, depth)
		if err != nil || !ok {
			return Value{}, false, err
		}
		return Value{Kind: KindSet, Set: dedupeSet(children)}, true, nil
	}
	return Value{}, false, newProtocolError(f.offset, "unrecognised frame type %q", f.typ)
}

func (a *assembler) assembleN(n, depth int) ([]Value, bool, error) {
	children := make([]Value, 0, n)
	for i := 0; i < n; i++ {
		v, ok, err := a.assembleOne(depth + 1)
		if err != nil || !ok {
			return nil, false, err
		}
		children = append(children, v)
	}
	return children, true, nil
}

// currentOffset returns the byte offset of the frame the assembler is
// about to read, or the end of the buffer if it has consumed all frames.
func (a *assembler) currentOffset() int {
	if a.pos < len(a.frames) {
		return a.frames[a.pos].offset
	}
	if len(a.frames) == 0 {
		return 0
	}
	last := a.frames[len(a.frames)-1]
	return last.offset + last.n
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
