package utils

import (
	"encoding/binary"
	"math/big"
)

// OutputBuf accumulates the little-endian binary encoding of a compiled
// program. Variable-sized payloads are length-prefixed.
type OutputBuf struct {
	buf []byte
}

func (o *OutputBuf) AppendUint8(x uint8) {
	o.buf = append(o.buf, x)
}

func (o *OutputBuf) AppendUint32(x uint32) {
	o.buf = binary.LittleEndian.AppendUint32(o.buf, x)
}

func (o *OutputBuf) AppendUint64(x uint64) {
	o.buf = binary.LittleEndian.AppendUint64(o.buf, x)
}

func (o *OutputBuf) AppendBytes(b []byte) {
	o.AppendUint64(uint64(len(b)))
	o.buf = append(o.buf, b...)
}

// AppendBigInt encodes x as a length-prefixed big-endian byte string.
// Negative values are not supported.
func (o *OutputBuf) AppendBigInt(x *big.Int) {
	if x.Sign() < 0 {
		panic("negative big.Int in output buffer")
	}
	o.AppendBytes(x.Bytes())
}

func (o *OutputBuf) Bytes() []byte {
	return o.buf
}

// InputBuf consumes an OutputBuf encoding. Reads past the end of the buffer
// panic.
type InputBuf struct {
	buf []byte
}

func NewInputBuf(buf []byte) *InputBuf {
	return &InputBuf{buf: buf}
}

func (i *InputBuf) ReadUint8() uint8 {
	x := i.buf[0]
	i.buf = i.buf[1:]
	return x
}

func (i *InputBuf) ReadUint32() uint32 {
	x := binary.LittleEndian.Uint32(i.buf[:4])
	i.buf = i.buf[4:]
	return x
}

func (i *InputBuf) ReadUint64() uint64 {
	x := binary.LittleEndian.Uint64(i.buf[:8])
	i.buf = i.buf[8:]
	return x
}

func (i *InputBuf) ReadBytes() []byte {
	n := i.ReadUint64()
	b := make([]byte, n)
	copy(b, i.buf[:n])
	i.buf = i.buf[n:]
	return b
}

func (i *InputBuf) ReadBigInt() *big.Int {
	return new(big.Int).SetBytes(i.ReadBytes())
}

// IsEnd reports whether the whole buffer has been consumed.
func (i *InputBuf) IsEnd() bool {
	return len(i.buf) == 0
}
