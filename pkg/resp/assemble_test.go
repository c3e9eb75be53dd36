package resp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assembleAll(t *testing.T, input string) []Value {
	t.Helper()
	frames, consumed, err := scanFrames([]byte(input))
	require.NoError(t, err)
	require.Equal(t, len(input), consumed)
	a := &assembler{frames: frames}
	values, err := a.assembleTop()
	require.NoError(t, err)
	return values
}

func TestAssembleScalars(t *testing.T) {
	values := assembleAll(t, "+OK\r\n:42\r\n$5\r\nhello\r\n_\r\n#t\r\n")
	require.Len(t, values, 5)
	assert.Equal(t, simpleString("OK"), values[0])
	assert.Equal(t, integerValue(42), values[1])
	assert.Equal(t, blobString([]byte("hello")), values[2])
	assert.True(t, values[3].IsNull())
	assert.Equal(t, booleanValue(true), values[4])
}

func TestAssembleNullBulkAndArray(t *testing.T) {
	values := assembleAll(t, "$-1\r\n*-1\r\n")
	require.Len(t, values, 2)
	assert.True(t, values[0].IsNull())
	assert.True(t, values[1].IsNull())
}

func TestAssembleNestedArray(t *testing.T) {
	values := assembleAll(t, "*2\r\n:1\r\n*2\r\n:2\r\n:3\r\n")
	require.Len(t, values, 1)
	top := values[0]
	require.Equal(t, KindArray, top.Kind)
	require.Len(t, top.Array, 2)
	assert.Equal(t, integerValue(1), top.Array[0])
	require.Equal(t, KindArray, top.Array[1].Kind)
	assert.Equal(t, []Value{integerValue(2), integerValue(3)}, top.Array[1].Array)
}

func TestAssembleMap(t *testing.T) {
	values := assembleAll(t, "%2\r\n+name\r\n$3\r\nBob\r\n+age\r\n:30\r\n")
	require.Len(t, values, 1)
	top := values[0]
	require.Equal(t, KindMap, top.Kind)
	require.Len(t, top.Pairs, 2)
	assert.Equal(t, simpleString("name"), top.Pairs[0].Key)
	assert.Equal(t, blobString([]byte("Bob")), top.Pairs[0].Value)
}

func TestAssembleSetDeduplicates(t *testing.T) {
	values := assembleAll(t, "~3\r\n:1\r\n:1\r\n:2\r\n")
	require.Len(t, values, 1)
	top := values[0]
	require.Equal(t, KindSet, top.Kind)
	assert.Len(t, top.Set, 2)
}

func TestAssembleIncompleteArrayRollsBack(t *testing.T) {
	frames, _, err := scanFrames([]byte("*2\r\n:1\r\n"))
	require.NoError(t, err)
	a := &assembler{frames: frames}
	values, err := a.assembleTop()
	require.NoError(t, err)
	assert.Empty(t, values)
	assert.Equal(t, 0, a.pos)
}

func TestAssembleFirstValueCompleteSecondIncomplete(t *testing.T) {
	frames, _, err := scanFrames([]byte("+OK\r\n*2\r\n:1\r\n"))
	require.NoError(t, err)
	a := &assembler{frames: frames}
	values, err := a.assembleTop()
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, simpleString("OK"), values[0])
	assert.Equal(t, 1, a.pos)
}

func TestAssembleMaxDepthExceeded(t *testing.T) {
	frames, _, err := scanFrames([]byte("*1\r\n*1\r\n:1\r\n"))
	require.NoError(t, err)
	a := &assembler{frames: frames, maxDepth: 1}
	_, err = a.assembleTop()
	require.Error(t, err)
	var protoErr *ProtocolError
	assert.ErrorAs(t, err, &protoErr)
}

func TestAssembleErrorValueSplitsCodeAndMessage(t *testing.T) {
	values := assembleAll(t, "-ERR unknown command\r\n")
	require.Len(t, values, 1)
	assert.Equal(t, "ERR", values[0].ErrCode)
	assert.Equal(t, "unknown command", values[0].ErrMessage)
}

func TestAssembleVerbatimString(t *testing.T) {
	values := assembleAll(t, "=15\r\ntxt:Some string\r\n")
	require.Len(t, values, 1)
	assert.Equal(t, KindVerbatimString, values[0].Kind)
	assert.Equal(t, "txt", values[0].Format)
	assert.Equal(t, "Some string", values[0].Str)
}

func TestAssembleBigInteger(t *testing.T) {
	values := assembleAll(t, "(3492890328409238509324850943850943825024385\r\n")
	require.Len(t, values, 1)
	require.Equal(t, KindBigInteger, values[0].Kind)
	assert.Equal(t, "3492890328409238509324850943850943825024385", values[0].Big.String())
}
