package resp

import (
	"encoding/binary"
	"math"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/valyala/bytebufferpool"
)

// canonicalize writes a flat, tag-prefixed byte encoding of v into buf,
// recursing into aggregates. Two values that compare equal under this
// encoding are considered the same Set element. This is an internal
// encoding, unrelated to the wire format: its only job is to give
// dedupeSet and value-equality tests a cheap, collision-resistant key.
func canonicalize(buf *bytebufferpool.ByteBuffer, v Value) {
	writeByte(buf, byte(v.Kind))
	switch v.Kind {
	case KindSimpleString, KindVerbatimString:
		buf.WriteString(v.Format)
		writeByte(buf, 0)
		writeLenPrefixed(buf, []byte(v.Str))
	case KindBlobString:
		writeLenPrefixed(buf, v.Blob)
	case KindInteger:
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], uint64(v.Int))
		buf.Write(tmp[:])
	case KindBigInteger:
		if v.Big != nil {
			writeLenPrefixed(buf, v.Big.Bytes())
			if v.Big.Sign() < 0 {
				writeByte(buf, 1)
			} else {
				writeByte(buf, 0)
			}
		}
	case KindDouble:
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], math.Float64bits(v.Double))
		buf.Write(tmp[:])
	case KindBoolean:
		if v.Bool {
			writeByte(buf, 1)
		} else {
			writeByte(buf, 0)
		}
	case KindNull:
		// tag byte alone is the whole encoding
	case KindError:
		writeLenPrefixed(buf, []byte(v.ErrCode))
		writeLenPrefixed(buf, []byte(v.ErrMessage))
	case KindArray:
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], uint64(len(v.Array)))
		buf.Write(tmp[:])
		for _, e := range v.Array {
			canonicalize(buf, e)
		}
	case KindSet:
		// Sets are unordered (SPEC_FULL §3/§4.2): canonicalize each element
		// on its own, sort the resulting byte strings, then concatenate —
		// so two Sets built from the same elements in different wire order
		// produce identical canonical bytes.
		keys := make([]string, len(v.Set))
		for i, e := range v.Set {
			keys[i] = string(canonicalBytes(e))
		}
		sort.Strings(keys)
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], uint64(len(keys)))
		buf.Write(tmp[:])
		for _, k := range keys {
			writeLenPrefixed(buf, []byte(k))
		}
	case KindMap:
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], uint64(len(v.Pairs)))
		buf.Write(tmp[:])
		for _, p := range v.Pairs {
			canonicalize(buf, p.Key)
			canonicalize(buf, p.Value)
		}
	}
}

func writeByte(buf *bytebufferpool.ByteBuffer, b byte) {
	buf.Write([]byte{b})
}

func writeLenPrefixed(buf *bytebufferpool.ByteBuffer, b []byte) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], uint64(len(b)))
	buf.Write(tmp[:])
	buf.Write(b)
}

// canonicalBytes returns the canonical encoding of v as an owned byte
// slice, using a pooled scratch buffer the way
// packetd's internal/labels.Labels.Hash does for its label-set hashing.
func canonicalBytes(v Value) []byte {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	canonicalize(buf, v)
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out
}

// dedupeSet collapses elems to first-occurrence order, per SPEC_FULL §4.2:
// "the first occurrence of duplicate elements is retained; later
// duplicates are silently dropped." A 64-bit hash of each element's
// canonical encoding buckets candidates; the canonical bytes themselves
// (not just the hash) decide equality, so a hash collision never silently
// merges two distinct values.
func dedupeSet(elems []Value) []Value {
	if len(elems) == 0 {
		return nil
	}
	seen := make(map[uint64][][]byte, len(elems))
	out := make([]Value, 0, len(elems))
	for _, e := range elems {
		key := canonicalBytes(e)
		h := xxhash.Sum64(key)
		bucket := seen[h]
		dup := false
		for _, b := range bucket {
			if string(b) == string(key) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		seen[h] = append(bucket, key)
		out = append(out, e)
	}
	return out
}

// ValuesEqual reports whether a and b are structurally equal, using the
// same canonical encoding dedupeSet uses for Set membership. Map and
// Array comparisons are order-sensitive, matching their ordered-pair
// semantics; Set comparisons are not, since canonicalize sorts a Set's
// element encodings before comparing them.
func ValuesEqual(a, b Value) bool {
	return string(canonicalBytes(a)) == string(canonicalBytes(b))
}
