package resp

import "strconv"

// Encode renders args as a RESP array of bulk strings — the wire form used
// to invoke a command. Each argument must be a string, a []byte, or an
// integer kind (int, int8...int64, uint, uint8...uint64); anything else
// returns an *EncodeArgumentError naming the offending index and type.
func Encode(args ...any) ([]byte, error) {
	encoded := make([][]byte, len(args))
	for i, arg := range args {
		b, ok := encodeArg(arg)
		if !ok {
			return nil, newEncodeArgumentError(i, arg)
		}
		encoded[i] = b
	}

	out := appendArrayHeader(nil, len(encoded))
	for _, b := range encoded {
		out = appendBulk(out, b)
	}
	return out, nil
}

// encodeArg renders a single argument to its transport bytes (UTF-8 for
// strings, decimal text for integers), per SPEC_FULL §4.3. ok=false means
// arg is not an encodable kind.
func encodeArg(arg any) ([]byte, bool) {
	switch v := arg.(type) {
	case string:
		return []byte(v), true
	case []byte:
		return v, true
	case int:
		return strconv.AppendInt(nil, int64(v), 10), true
	case int8:
		return strconv.AppendInt(nil, int64(v), 10), true
	case int16:
		return strconv.AppendInt(nil, int64(v), 10), true
	case int32:
		return strconv.AppendInt(nil, int64(v), 10), true
	case int64:
		return strconv.AppendInt(nil, v, 10), true
	case uint:
		return strconv.AppendUint(nil, uint64(v), 10), true
	case uint8:
		return strconv.AppendUint(nil, uint64(v), 10), true
	case uint16:
		return strconv.AppendUint(nil, uint64(v), 10), true
	case uint32:
		return strconv.AppendUint(nil, uint64(v), 10), true
	case uint64:
		return strconv.AppendUint(nil, v, 10), true
	default:
		return nil, false
	}
}

// appendArrayHeader appends a "*<n>\r\n" array header to b.
func appendArrayHeader(b []byte, n int) []byte {
	b = append(b, '*')
	b = strconv.AppendInt(b, int64(n), 10)
	return append(b, '\r', '\n')
}

// appendBulk appends a "$<len>\r\n<data>\r\n" bulk string to b.
func appendBulk(b []byte, data []byte) []byte {
	b = append(b, '$')
	b = strconv.AppendInt(b, int64(len(data)), 10)
	b = append(b, '\r', '\n')
	b = append(b, data...)
	return append(b, '\r', '\n')
}
