package lexkey

import (
	"encoding/binary"
	"math"
)

// Codecs for bool and the fixed-length unsigned integral types: uint8,
// uint16, uint32, uint64. These encode a value in big-endian order, which
// alone preserves order because raw unsigned big-endian bytes compare
// identically to the integer.
type (
	boolCodec   struct{}
	uint8Codec  struct{}
	uint16Codec struct{}
	uint32Codec struct{}
	uint64Codec struct{}
)

const (
	uint8Size  = 1
	uint16Size = 2
	uint32Size = 4
	uint64Size = 8
)

var (
	stdBool   Codec[bool]   = boolCodec{}
	stdUint8  Codec[uint8]  = uint8Codec{}
	stdUint16 Codec[uint16] = uint16Codec{}
	stdUint32 Codec[uint32] = uint32Codec{}
	stdUint64 Codec[uint64] = uint64Codec{}
)

// Bool returns a Codec for the bool type.
// The encoded order is false, then true: a single byte, 0x00 or 0x01.
func Bool() Codec[bool] { return stdBool }

// Uint8 returns a Codec for the uint8 type.
func Uint8() Codec[uint8] { return stdUint8 }

// Uint16 returns a Codec for the uint16 type.
func Uint16() Codec[uint16] { return stdUint16 }

// Uint32 returns a Codec for the uint32 type.
func Uint32() Codec[uint32] { return stdUint32 }

// Uint64 returns a Codec for the uint64 type.
func Uint64() Codec[uint64] { return stdUint64 }

func (boolCodec) Append(buf []byte, value bool) []byte {
	if value {
		return append(buf, 1)
	}
	return append(buf, 0)
}

func (boolCodec) Put(buf []byte, value bool) []byte {
	if value {
		buf[0] = 1
	} else {
		buf[0] = 0
	}
	return buf[uint8Size:]
}

func (boolCodec) Get(buf []byte) (bool, []byte) {
	return buf[0] != 0, buf[uint8Size:]
}

func (boolCodec) RequiresTerminator() bool { return false }

func (uint8Codec) Append(buf []byte, value uint8) []byte {
	return append(buf, value)
}

func (uint8Codec) Put(buf []byte, value uint8) []byte {
	buf[0] = value
	return buf[uint8Size:]
}

func (uint8Codec) Get(buf []byte) (uint8, []byte) {
	return buf[0], buf[uint8Size:]
}

func (uint8Codec) RequiresTerminator() bool { return false }

func (uint16Codec) Append(buf []byte, value uint16) []byte {
	return binary.BigEndian.AppendUint16(buf, value)
}

func (uint16Codec) Put(buf []byte, value uint16) []byte {
	binary.BigEndian.PutUint16(buf, value)
	return buf[uint16Size:]
}

func (uint16Codec) Get(buf []byte) (uint16, []byte) {
	return binary.BigEndian.Uint16(buf), buf[uint16Size:]
}

func (uint16Codec) RequiresTerminator() bool { return false }

func (uint32Codec) Append(buf []byte, value uint32) []byte {
	return binary.BigEndian.AppendUint32(buf, value)
}

func (uint32Codec) Put(buf []byte, value uint32) []byte {
	binary.BigEndian.PutUint32(buf, value)
	return buf[uint32Size:]
}

func (uint32Codec) Get(buf []byte) (uint32, []byte) {
	return binary.BigEndian.Uint32(buf), buf[uint32Size:]
}

func (uint32Codec) RequiresTerminator() bool { return false }

func (uint64Codec) Append(buf []byte, value uint64) []byte {
	return binary.BigEndian.AppendUint64(buf, value)
}

func (uint64Codec) Put(buf []byte, value uint64) []byte {
	binary.BigEndian.PutUint64(buf, value)
	return buf[uint64Size:]
}

func (uint64Codec) Get(buf []byte) (uint64, []byte) {
	return binary.BigEndian.Uint64(buf), buf[uint64Size:]
}

func (uint64Codec) RequiresTerminator() bool { return false }

// Codecs for the fixed-length signed integral types: int8, int16, int32, int64.
//
// A value is encoded by flipping its sign bit and writing the result in
// big-endian order. Two's complement sorts negatives after positives under
// unsigned comparison; flipping the sign bit undoes that:
//
//	0x8000... -> 0x0000...  most negative
//	0xFFFF... -> 0x7FFF...  -1
//	0x0000... -> 0x8000...  0
//	0x0000..1 -> 0x8000..1  1
//	0x7FFF... -> 0xFFFF...  most positive
type (
	int8Codec  struct{}
	int16Codec struct{}
	int32Codec struct{}
	int64Codec struct{}
)

var (
	stdInt8  Codec[int8]  = int8Codec{}
	stdInt16 Codec[int16] = int16Codec{}
	stdInt32 Codec[int32] = int32Codec{}
	stdInt64 Codec[int64] = int64Codec{}
)

// Int8 returns a Codec for the int8 type.
func Int8() Codec[int8] { return stdInt8 }

// Int16 returns a Codec for the int16 type.
func Int16() Codec[int16] { return stdInt16 }

// Int32 returns a Codec for the int32 type.
func Int32() Codec[int32] { return stdInt32 }

// Int64 returns a Codec for the int64 type.
func Int64() Codec[int64] { return stdInt64 }

func (int8Codec) Append(buf []byte, value int8) []byte {
	return append(buf, uint8(math.MinInt8^value))
}

func (int8Codec) Put(buf []byte, value int8) []byte {
	buf[0] = uint8(math.MinInt8 ^ value)
	return buf[uint8Size:]
}

func (int8Codec) Get(buf []byte) (int8, []byte) {
	return math.MinInt8 ^ int8(buf[0]), buf[uint8Size:]
}

func (int8Codec) RequiresTerminator() bool { return false }

func (int16Codec) Append(buf []byte, value int16) []byte {
	return binary.BigEndian.AppendUint16(buf, uint16(math.MinInt16^value))
}

func (int16Codec) Put(buf []byte, value int16) []byte {
	binary.BigEndian.PutUint16(buf, uint16(math.MinInt16^value))
	return buf[uint16Size:]
}

func (int16Codec) Get(buf []byte) (int16, []byte) {
	return math.MinInt16 ^ int16(binary.BigEndian.Uint16(buf)), buf[uint16Size:]
}

func (int16Codec) RequiresTerminator() bool { return false }

func (int32Codec) Append(buf []byte, value int32) []byte {
	return binary.BigEndian.AppendUint32(buf, uint32(math.MinInt32^value))
}

func (int32Codec) Put(buf []byte, value int32) []byte {
	binary.BigEndian.PutUint32(buf, uint32(math.MinInt32^value))
	return buf[uint32Size:]
}

func (int32Codec) Get(buf []byte) (int32, []byte) {
	return math.MinInt32 ^ int32(binary.BigEndian.Uint32(buf)), buf[uint32Size:]
}

func (int32Codec) RequiresTerminator() bool { return false }

func (int64Codec) Append(buf []byte, value int64) []byte {
	return binary.BigEndian.AppendUint64(buf, uint64(math.MinInt64^value))
}

func (int64Codec) Put(buf []byte, value int64) []byte {
	binary.BigEndian.PutUint64(buf, uint64(math.MinInt64^value))
	return buf[uint64Size:]
}

func (int64Codec) Get(buf []byte) (int64, []byte) {
	return math.MinInt64 ^ int64(binary.BigEndian.Uint64(buf)), buf[uint64Size:]
}

func (int64Codec) RequiresTerminator() bool { return false }
