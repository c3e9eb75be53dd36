// Package resp implements a streaming codec for the Redis Serialization
// Protocol (RESP), covering both the RESP2 surface (simple strings, errors,
// integers, bulk strings, arrays, and their null forms) and the RESP3
// extensions (null, double, boolean, big number, blob error, verbatim
// string, map, set).
//
// The codec has two directions:
//
//   - Encode: given an ordered argument list of strings, byte slices, or
//     integers, produce the wire bytes used to invoke a command (a RESP
//     array of bulk strings).
//   - Decode: given arbitrary fragments of bytes delivered incrementally
//     from a transport, accumulate them and yield a sequence of fully
//     parsed reply values, preserving order.
//
// The codec knows nothing about sockets, connection pools, or individual
// Redis commands. A connection-oriented caller owns a Codec, feeds it bytes
// with Write, and drains replies with Parse.
//
// # Reading
//
//	var c resp.Codec
//	c.Write([]byte("*2\r\n$3\r\nGET\r\n$3\r\nkey\r\n"))
//	values, err := c.Parse()
//	// values[0].Kind == resp.KindArray
//
// # Writing
//
//	var c resp.Codec
//	out, err := c.Encode("SET", "string1", "124235")
//	// out == "*3\r\n$3\r\nSET\r\n$7\r\nstring1\r\n$6\r\n124235\r\n"
package resp
