package stream

import (
	"encoding/binary"
	"errors"
	"io"
	"strings"

	"github.com/Manu343726/mipsdis/pkg/isa"
	"github.com/Manu343726/mipsdis/pkg/utils"
)

var (
	ErrTruncatedWord    = errors.New("truncated instruction word")
	ErrUnknownByteOrder = errors.New("unknown byte order")
)

// Names of the supported byte orders
var ByteOrders = map[string]binary.ByteOrder{
	"little": binary.LittleEndian,
	"big":    binary.BigEndian,
}

// Returns the byte order with the given name ("little" or "big")
func ParseByteOrder(name string) (binary.ByteOrder, error) {
	if order, ok := ByteOrders[strings.ToLower(name)]; ok {
		return order, nil
	}

	return nil, utils.MakeError(ErrUnknownByteOrder, "'%v', expected one of %v", name, utils.FormatSlice(utils.SortedKeys(ByteOrders), ", "))
}

// Reads consecutive instruction words from a byte stream
type WordReader struct {
	reader io.Reader
	order  binary.ByteOrder
	index  int
	done   bool
}

// Creates a word reader. A nil order defaults to little endian
func NewWordReader(reader io.Reader, order binary.ByteOrder) *WordReader {
	if order == nil {
		order = binary.LittleEndian
	}

	return &WordReader{
		reader: reader,
		order:  order,
	}
}

// Returns the index of the next word to be read
func (r *WordReader) Index() int {
	return r.index
}

// Reads the next word
//
// Returns io.EOF when the stream ends at a word boundary. If the stream ends in the middle of a
// word, returns an error wrapping ErrTruncatedWord once and io.EOF afterwards. Any other error
// comes from the underlying reader.
func (r *WordReader) Next() (uint32, error) {
	if r.done {
		return 0, io.EOF
	}

	var buffer [isa.InstructionBytes]byte

	n, err := io.ReadFull(r.reader, buffer[:])
	switch {
	case err == nil:
		r.index++
		return r.order.Uint32(buffer[:]), nil
	case errors.Is(err, io.EOF):
		r.done = true
		return 0, io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		r.done = true
		r.index++
		return 0, utils.MakeError(ErrTruncatedWord, "stream ended after %v of %v bytes", n, isa.InstructionBytes)
	}

	return 0, err
}
