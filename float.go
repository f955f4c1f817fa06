package lexkey

import (
	"encoding/binary"
	"math"
)

const (
	highBit32 uint32 = 0x80_00_00_00
	allBits32 uint32 = 0xFF_FF_FF_FF
	highBit64 uint64 = 0x80_00_00_00_00_00_00_00
	allBits64 uint64 = 0xFF_FF_FF_FF_FF_FF_FF_FF
)

// float32Codec is the Codec for float32.
//
// The order of the encoded values is:
//
//	-NaN
//	-Infinity
//	-x, for normal negative numbers x
//	-s, for subnormal negative numbers s
//	-0.0
//	+0.0
//	+s, for subnormal positive numbers s
//	+x, for normal positive numbers x
//	+Infinity
//	+NaN
//
// No distinction is made between quiet and signaling NaNs.
//
// IEEE 754 defines ordering in a way that is inconsistent with Codec's
// semantics: -0.0 and +0.0 are equal, NaN is not comparable to anything,
// and there are many bit patterns for NaN. This Codec encodes all of
// these distinctly and comparably.
//
// A float32's bits interpreted as sign-magnitude (not two's complement)
// already have the right relative order within a sign. To get the
// correct unsigned lexicographic order across signs:
//
//	flip the high bit if the sign bit is 0
//	flip all the bits if the sign bit is 1
type float32Codec struct{}

// float64Codec is the Codec for float64, and has the same behavior as
// float32Codec, just with 11 exponent bits and 52 mantissa bits instead
// of 8 and 23.
type float64Codec struct{}

var (
	stdFloat32 Codec[float32] = float32Codec{}
	stdFloat64 Codec[float64] = float64Codec{}
)

// Float32 returns a Codec for the float32 type.
func Float32() Codec[float32] { return stdFloat32 }

// Float64 returns a Codec for the float64 type.
func Float64() Codec[float64] { return stdFloat64 }

func float32ToOrdered(value float32) uint32 {
	bits := math.Float32bits(value)
	if bits&highBit32 == 0 {
		return bits ^ highBit32
	}
	return bits ^ allBits32
}

func float32FromOrdered(bits uint32) float32 {
	if bits&highBit32 == 0 {
		bits ^= allBits32
	} else {
		bits ^= highBit32
	}
	return math.Float32frombits(bits)
}

func (float32Codec) Append(buf []byte, value float32) []byte {
	return binary.BigEndian.AppendUint32(buf, float32ToOrdered(value))
}

func (float32Codec) Put(buf []byte, value float32) []byte {
	binary.BigEndian.PutUint32(buf, float32ToOrdered(value))
	return buf[uint32Size:]
}

func (float32Codec) Get(buf []byte) (float32, []byte) {
	return float32FromOrdered(binary.BigEndian.Uint32(buf)), buf[uint32Size:]
}

func (float32Codec) RequiresTerminator() bool {
	return false
}

func float64ToOrdered(value float64) uint64 {
	bits := math.Float64bits(value)
	if bits&highBit64 == 0 {
		return bits ^ highBit64
	}
	return bits ^ allBits64
}

func float64FromOrdered(bits uint64) float64 {
	if bits&highBit64 == 0 {
		bits ^= allBits64
	} else {
		bits ^= highBit64
	}
	return math.Float64frombits(bits)
}

func (float64Codec) Append(buf []byte, value float64) []byte {
	return binary.BigEndian.AppendUint64(buf, float64ToOrdered(value))
}

func (float64Codec) Put(buf []byte, value float64) []byte {
	binary.BigEndian.PutUint64(buf, float64ToOrdered(value))
	return buf[uint64Size:]
}

func (float64Codec) Get(buf []byte) (float64, []byte) {
	return float64FromOrdered(binary.BigEndian.Uint64(buf)), buf[uint64Size:]
}

func (float64Codec) RequiresTerminator() bool {
	return false
}
