package resp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecParseCompleteMessage(t *testing.T) {
	c := New()
	c.Write([]byte("+OK\r\n"))
	values, err := c.Parse()
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, simpleString("OK"), values[0])
	assert.Equal(t, 0, c.Pending())
}

func TestCodecParseRetainsIncompleteLine(t *testing.T) {
	c := New()
	c.Write([]byte("+OK\r\n:4"))
	values, err := c.Parse()
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, 2, c.Pending())

	c.Write([]byte("2\r\n"))
	values, err = c.Parse()
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, integerValue(42), values[0])
	assert.Equal(t, 0, c.Pending())
}

func TestCodecParseRetainsIncompleteAggregate(t *testing.T) {
	c := New()
	c.Write([]byte("*2\r\n:1\r\n"))
	values, err := c.Parse()
	require.NoError(t, err)
	assert.Empty(t, values)
	assert.Equal(t, 8, c.Pending())

	c.Write([]byte(":2\r\n"))
	values, err = c.Parse()
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, []Value{integerValue(1), integerValue(2)}, values[0].Array)
	assert.Equal(t, 0, c.Pending())
}

func TestCodecParseSplitArrayHeaderAcrossWrites(t *testing.T) {
	c := New()
	c.Write([]byte("*2\r\n:1\r\n"))
	values, err := c.Parse()
	require.NoError(t, err)
	assert.Empty(t, values)

	c.Write([]byte("$"))
	values, err = c.Parse()
	require.NoError(t, err)
	assert.Empty(t, values)

	c.Write([]byte("3\r\nfoo\r\n"))
	values, err = c.Parse()
	require.NoError(t, err)
	require.Len(t, values, 1)
	require.Len(t, values[0].Array, 2)
	assert.Equal(t, blobString([]byte("foo")), values[0].Array[1])
}

func TestCodecParseMultipleTopLevelValuesInOneWrite(t *testing.T) {
	c := New()
	c.Write([]byte("+OK\r\n+PONG\r\n"))
	values, err := c.Parse()
	require.NoError(t, err)
	require.Len(t, values, 2)
}

func TestCodecParseProtocolErrorDropsBuffer(t *testing.T) {
	c := New()
	c.Write([]byte("@bad\r\n+OK\r\n"))
	_, err := c.Parse()
	require.Error(t, err)
	var protoErr *ProtocolError
	assert.ErrorAs(t, err, &protoErr)
	assert.Equal(t, 0, c.Pending())
}

func TestCodecParseReturnsValuesScannedBeforeProtocolError(t *testing.T) {
	c := New()
	c.Write([]byte("+OK\r\n@bad\r\n"))
	values, err := c.Parse()
	require.Error(t, err)
	var protoErr *ProtocolError
	assert.ErrorAs(t, err, &protoErr)
	require.Len(t, values, 1)
	assert.Equal(t, simpleString("OK"), values[0])
	assert.Equal(t, 0, c.Pending())
}

func TestCodecEncode(t *testing.T) {
	c := New()
	b, err := c.Encode("PING")
	require.NoError(t, err)
	assert.Equal(t, "*1\r\n$4\r\nPING\r\n", string(b))
}
