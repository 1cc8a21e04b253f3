package huffman

import (
	"bufio"
	"io"
	"strings"
)

// BitSink consumes a sequence of single bits.
type BitSink interface {
	WriteBit(bit uint8) error
}

// BitSource produces a sequence of single bits.  ReadBit returns io.EOF
// once the input is exhausted.
type BitSource interface {
	ReadBit() (uint8, error)
}

// BitWriter packs bits into bytes and writes them to an io.Writer.  Bits
// fill each byte starting from the least significant bit.  Write errors are
// stored and reported by WriteBit, Flush, and Err.
//
// Flush must be called after the last bit; a partial final byte is padded
// with zero bits on the high side.
type BitWriter struct {
	err error
	w   io.Writer

	// bits is a buffer of unwritten bits, first bit in the lowest position.
	bits  uint64
	nbits uint

	written int64
}

// NewBitWriter returns a BitWriter that writes to w.
func NewBitWriter(w io.Writer) *BitWriter {
	return &BitWriter{w: w}
}

// WriteBit appends one bit.  Only the lowest bit of the argument is used.
func (bw *BitWriter) WriteBit(bit uint8) error {
	if bw.err != nil {
		return bw.err
	}
	bw.bits |= uint64(bit&1) << bw.nbits
	bw.nbits++
	bw.written++
	if bw.nbits == 64 {
		var buf [8]byte
		for i := range buf {
			buf[i] = byte(bw.bits >> (8 * uint(i)))
		}
		bw.bits = 0
		bw.nbits = 0
		bw.write(buf[:])
	}
	return bw.err
}

// Flush writes out any buffered bits, padding the last byte.
func (bw *BitWriter) Flush() error {
	var buf [8]byte
	var i int
	for i = 0; bw.nbits > 0; i++ {
		buf[i] = byte(bw.bits)
		bw.bits >>= 8
		if bw.nbits > 8 {
			bw.nbits -= 8
		} else {
			bw.nbits = 0
		}
	}
	bw.write(buf[:i])
	return bw.err
}

// BitsWritten returns the number of bits passed to WriteBit so far,
// excluding padding.
func (bw *BitWriter) BitsWritten() int64 {
	return bw.written
}

// Err returns the first write error, if any.
func (bw *BitWriter) Err() error {
	return bw.err
}

func (bw *BitWriter) write(buf []byte) {
	if bw.err != nil || len(buf) == 0 {
		return
	}
	_, bw.err = bw.w.Write(buf)
}

// BitReader unpacks bits from the bytes of an io.Reader, in the order
// BitWriter packs them.
type BitReader struct {
	r     io.ByteReader
	cur   byte
	nbits uint
}

// NewBitReader returns a BitReader that reads from r.  If r is not an
// io.ByteReader it is wrapped in a bufio.Reader.
func NewBitReader(r io.Reader) *BitReader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &BitReader{r: br}
}

// ReadBit returns the next bit, or io.EOF at the end of the input.  Padding
// bits in the last byte are returned like any other bit.
func (br *BitReader) ReadBit() (uint8, error) {
	if br.nbits == 0 {
		b, err := br.r.ReadByte()
		if err != nil {
			return 0, err
		}
		br.cur = b
		br.nbits = 8
	}
	bit := br.cur & 1
	br.cur >>= 1
	br.nbits--
	return bit, nil
}

// stringBitSink renders bits as '0' and '1' characters.
type stringBitSink struct {
	sb strings.Builder
}

func (s *stringBitSink) WriteBit(bit uint8) error {
	return s.sb.WriteByte('0' + bit&1)
}

// stringBitSource reads bits from a string of '0' and '1' characters.  Any
// other character is ErrCorruptPayload.
type stringBitSource struct {
	str string
	pos int
}

func (s *stringBitSource) ReadBit() (uint8, error) {
	if s.pos >= len(s.str) {
		return 0, io.EOF
	}
	ch := s.str[s.pos]
	s.pos++
	switch ch {
	case '0':
		return 0, nil
	case '1':
		return 1, nil
	default:
		return 0, ErrCorruptPayload
	}
}

var (
	_ BitSink   = (*BitWriter)(nil)
	_ BitSink   = (*stringBitSink)(nil)
	_ BitSource = (*BitReader)(nil)
	_ BitSource = (*stringBitSource)(nil)
)
