package stream

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseByteOrder(t *testing.T) {
	order, err := ParseByteOrder("little")
	require.NoError(t, err)
	assert.Equal(t, binary.LittleEndian, order)

	order, err = ParseByteOrder("BIG")
	require.NoError(t, err)
	assert.Equal(t, binary.BigEndian, order)

	_, err = ParseByteOrder("middle")
	assert.ErrorIs(t, err, ErrUnknownByteOrder)
	assert.Contains(t, err.Error(), "big, little")
}

func TestWordReaderLittleEndian(t *testing.T) {
	reader := NewWordReader(bytes.NewReader([]byte{0x20, 0x30, 0x85, 0x00, 0x10, 0x00, 0x00, 0x08}), nil)

	word, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x00853020), word)
	assert.Equal(t, 1, reader.Index())

	word, err = reader.Next()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x08000010), word)

	_, err = reader.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestWordReaderBigEndian(t *testing.T) {
	reader := NewWordReader(bytes.NewReader([]byte{0x00, 0x85, 0x30, 0x20}), binary.BigEndian)

	word, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x00853020), word)
}

func TestWordReaderTruncatedWord(t *testing.T) {
	reader := NewWordReader(bytes.NewReader([]byte{0x20, 0x30, 0x85, 0x00, 0xAA, 0xBB}), nil)

	_, err := reader.Next()
	require.NoError(t, err)

	_, err = reader.Next()
	assert.ErrorIs(t, err, ErrTruncatedWord)
	assert.Contains(t, err.Error(), "2 of 4 bytes")

	_, err = reader.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestWordReaderEmptyStream(t *testing.T) {
	_, err := NewWordReader(bytes.NewReader(nil), nil).Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestWordReaderPropagatesReadErrors(t *testing.T) {
	failure := errors.New("disk on fire")

	_, err := NewWordReader(iotest.ErrReader(failure), nil).Next()
	assert.ErrorIs(t, err, failure)
	assert.False(t, errors.Is(err, ErrTruncatedWord))
}
