package lexkey

import "encoding/binary"

// varUintCodec is the Codec for variable-length encoded uint64s.
//
// The encoding uses between 1 and 9 bytes depending on the magnitude of
// the value: the first 4 bits of the encoding store the number of
// trailing bytes (0 to 8), and the remaining bits hold the value in
// big-endian order with leading zero bytes dropped. Smaller values
// encode to fewer bytes.
//
//	range                    size (bytes)
//	[0,        2^4)          1
//	[2^4,      2^12)         2
//	[2^12,     2^20)         3
//	[2^20,     2^28)         4
//	[2^28,     2^36)         5
//	[2^36,     2^44)         6
//	[2^44,     2^52)         7
//	[2^52,     2^60)         8
//	[2^60,     2^64)         9
//
// The length header makes this encoding self-delimiting: it never
// requires a terminator, even as a non-final field of a Tuple or Record.
type varUintCodec struct{}

// varIntCodec is the Codec for variable-length encoded int64s.
//
// The encoding is the same general scheme as varUintCodec, with one
// extra leading bit: the first bit is the sign (0 for negative, 1 for
// positive), the next 4 bits are the trailing byte count, and the
// remaining bits hold the absolute value in big-endian order (minus one,
// for negative values), with all bits but the sign bit flipped when the
// value is negative.
//
//	negative range         positive range        size (bytes)
//	[-2^3,    0)            [0,     2^3)          1
//	[-2^11,  -2^3)          [2^3,   2^11)         2
//	[-2^19,  -2^11)         [2^11,  2^19)         3
//	[-2^27,  -2^19)         [2^19,  2^27)         4
//	[-2^35,  -2^27)         [2^27,  2^35)         5
//	[-2^43,  -2^35)         [2^35,  2^43)         6
//	[-2^51,  -2^43)         [2^43,  2^51)         7
//	[-2^59,  -2^51)         [2^51,  2^59)         8
//	[-2^63,  -2^59)         [2^59,  2^63)         9
type varIntCodec struct{}

var (
	stdVarUint Codec[uint64] = varUintCodec{}
	stdVarInt  Codec[int64]  = varIntCodec{}
)

// VarUint returns a Codec for uint64, using a variable-length
// order-preserving encoding that is shorter for smaller values.
func VarUint() Codec[uint64] { return stdVarUint }

// VarInt returns a Codec for int64, using a variable-length
// order-preserving encoding that is shorter for values near zero.
func VarInt() Codec[int64] { return stdVarInt }

func appendVarUint(buf []byte, val uint64) []byte {
	switch {
	case val < 1<<4:
		return append(buf, byte(val))
	case val < 1<<12:
		return binary.BigEndian.AppendUint16(buf, uint16(val)|1<<12)
	case val < 1<<20:
		buf = append(buf, byte(val>>16)|2<<4)
		return binary.BigEndian.AppendUint16(buf, uint16(val))
	case val < 1<<28:
		return binary.BigEndian.AppendUint32(buf, uint32(val)|3<<28)
	case val < 1<<36:
		buf = append(buf, byte(val>>32)|4<<4)
		return binary.BigEndian.AppendUint32(buf, uint32(val))
	case val < 1<<44:
		buf = binary.BigEndian.AppendUint16(buf, uint16(val>>32)|5<<12)
		return binary.BigEndian.AppendUint32(buf, uint32(val))
	case val < 1<<52:
		buf = append(buf, byte(val>>48)|6<<4)
		buf = binary.BigEndian.AppendUint16(buf, uint16(val>>32))
		return binary.BigEndian.AppendUint32(buf, uint32(val))
	case val < 1<<60:
		return binary.BigEndian.AppendUint64(buf, val|7<<60)
	default:
		buf = append(buf, 8<<4)
		return binary.BigEndian.AppendUint64(buf, val)
	}
}

func varUintSize(val uint64) int {
	switch {
	case val < 1<<4:
		return 1
	case val < 1<<12:
		return 2
	case val < 1<<20:
		return 3
	case val < 1<<28:
		return 4
	case val < 1<<36:
		return 5
	case val < 1<<44:
		return 6
	case val < 1<<52:
		return 7
	case val < 1<<60:
		return 8
	default:
		return 9
	}
}

func getVarUint(buf []byte) (uint64, []byte) {
	b0 := buf[0]
	switch b0 >> 4 {
	case 0:
		return uint64(b0), buf[1:]
	case 1:
		return uint64(binary.BigEndian.Uint16(buf)) & (1<<12 - 1), buf[2:]
	case 2:
		v := uint64(b0&0x0F)<<16 | uint64(binary.BigEndian.Uint16(buf[1:3]))
		return v, buf[3:]
	case 3:
		return uint64(binary.BigEndian.Uint32(buf)) & (1<<28 - 1), buf[4:]
	case 4:
		v := uint64(b0&0x0F)<<32 | uint64(binary.BigEndian.Uint32(buf[1:5]))
		return v, buf[5:]
	case 5:
		hi := uint64(binary.BigEndian.Uint16(buf)) & (1<<12 - 1)
		lo := uint64(binary.BigEndian.Uint32(buf[2:6]))
		return hi<<32 | lo, buf[6:]
	case 6:
		hi := uint64(b0 & 0x0F)
		mid := uint64(binary.BigEndian.Uint16(buf[1:3]))
		lo := uint64(binary.BigEndian.Uint32(buf[3:7]))
		return hi<<48 | mid<<32 | lo, buf[7:]
	case 7:
		return binary.BigEndian.Uint64(buf) & (1<<60 - 1), buf[8:]
	case 8:
		return binary.BigEndian.Uint64(buf[1:9]), buf[9:]
	default:
		panic("lexkey: corrupt VarUint encoding")
	}
}

func (varUintCodec) Append(buf []byte, value uint64) []byte {
	return appendVarUint(buf, value)
}

func (varUintCodec) Put(buf []byte, value uint64) []byte {
	n := varUintSize(value)
	if len(buf) < n {
		panic("lexkey: buffer too small for VarUint")
	}
	appendVarUint(buf[:0:n], value)
	return buf[n:]
}

func (varUintCodec) Get(buf []byte) (uint64, []byte) {
	return getVarUint(buf)
}

func (varUintCodec) RequiresTerminator() bool {
	return false
}

// varIntMagnitude returns the non-negative value to be bucketed and
// encoded, and a mask that is all-ones if v is negative, zero otherwise.
func varIntMagnitude(v int64) (val uint64, mask uint64) {
	if v < 0 {
		return uint64(-(v + 1)), ^uint64(0)
	}
	return uint64(v), 0
}

func appendVarInt(buf []byte, v int64) []byte {
	val, mask := varIntMagnitude(v)
	switch {
	case val < 1<<3:
		b := (byte(val) | 0x10<<3) ^ byte(mask)
		return append(buf, b)
	case val < 1<<11:
		u := (uint16(val) | 0x11<<11) ^ uint16(mask)
		return binary.BigEndian.AppendUint16(buf, u)
	case val < 1<<19:
		hi := (byte(val>>16) | 0x12<<3) ^ byte(mask)
		lo := uint16(val) ^ uint16(mask)
		buf = append(buf, hi)
		return binary.BigEndian.AppendUint16(buf, lo)
	case val < 1<<27:
		u := (uint32(val) | 0x13<<27) ^ uint32(mask)
		return binary.BigEndian.AppendUint32(buf, u)
	case val < 1<<35:
		hi := (byte(val>>32) | 0x14<<3) ^ byte(mask)
		lo := uint32(val) ^ uint32(mask)
		buf = append(buf, hi)
		return binary.BigEndian.AppendUint32(buf, lo)
	case val < 1<<43:
		hi := (uint16(val>>32) | 0x15<<11) ^ uint16(mask)
		lo := uint32(val) ^ uint32(mask)
		buf = binary.BigEndian.AppendUint16(buf, hi)
		return binary.BigEndian.AppendUint32(buf, lo)
	case val < 1<<51:
		b0 := (byte(val>>48) | 0x16<<3) ^ byte(mask)
		mid := uint16(val>>32) ^ uint16(mask)
		lo := uint32(val) ^ uint32(mask)
		buf = append(buf, b0)
		buf = binary.BigEndian.AppendUint16(buf, mid)
		return binary.BigEndian.AppendUint32(buf, lo)
	case val < 1<<59:
		u := (val | 0x17<<59) ^ mask
		return binary.BigEndian.AppendUint64(buf, u)
	default:
		b0 := byte(0x18<<3) ^ byte(mask)
		u := val ^ mask
		buf = append(buf, b0)
		return binary.BigEndian.AppendUint64(buf, u)
	}
}

func varIntSize(v int64) int {
	val, _ := varIntMagnitude(v)
	switch {
	case val < 1<<3:
		return 1
	case val < 1<<11:
		return 2
	case val < 1<<19:
		return 3
	case val < 1<<27:
		return 4
	case val < 1<<35:
		return 5
	case val < 1<<43:
		return 6
	case val < 1<<51:
		return 7
	case val < 1<<59:
		return 8
	default:
		return 9
	}
}

func varIntFromMagnitude(val uint64, neg bool) int64 {
	if neg {
		return -int64(val) - 1
	}
	return int64(val)
}

func getVarInt(buf []byte) (int64, []byte) {
	b0 := buf[0]
	neg := b0>>7 == 0
	raw0 := b0
	if neg {
		raw0 = ^b0
	}
	switch (raw0 >> 3) & 0x0F {
	case 0:
		val := uint64(raw0 & 0x07)
		return varIntFromMagnitude(val, neg), buf[1:]
	case 1:
		raw := binary.BigEndian.Uint16(buf)
		if neg {
			raw = ^raw
		}
		val := uint64(raw) & (1<<11 - 1)
		return varIntFromMagnitude(val, neg), buf[2:]
	case 2:
		lo := binary.BigEndian.Uint16(buf[1:3])
		if neg {
			lo = ^lo
		}
		val := uint64(raw0&0x07)<<16 | uint64(lo)
		return varIntFromMagnitude(val, neg), buf[3:]
	case 3:
		raw := binary.BigEndian.Uint32(buf)
		if neg {
			raw = ^raw
		}
		val := uint64(raw) & (1<<27 - 1)
		return varIntFromMagnitude(val, neg), buf[4:]
	case 4:
		lo := binary.BigEndian.Uint32(buf[1:5])
		if neg {
			lo = ^lo
		}
		val := uint64(raw0&0x07)<<32 | uint64(lo)
		return varIntFromMagnitude(val, neg), buf[5:]
	case 5:
		hi := binary.BigEndian.Uint16(buf)
		if neg {
			hi = ^hi
		}
		lo := binary.BigEndian.Uint32(buf[2:6])
		if neg {
			lo = ^lo
		}
		val := uint64(hi)&(1<<11-1)<<32 | uint64(lo)
		return varIntFromMagnitude(val, neg), buf[6:]
	case 6:
		mid := binary.BigEndian.Uint16(buf[1:3])
		if neg {
			mid = ^mid
		}
		lo := binary.BigEndian.Uint32(buf[3:7])
		if neg {
			lo = ^lo
		}
		val := uint64(raw0&0x07)<<48 | uint64(mid)<<32 | uint64(lo)
		return varIntFromMagnitude(val, neg), buf[7:]
	case 7:
		raw := binary.BigEndian.Uint64(buf)
		if neg {
			raw = ^raw
		}
		val := raw & (1<<59 - 1)
		return varIntFromMagnitude(val, neg), buf[8:]
	case 8:
		raw := binary.BigEndian.Uint64(buf[1:9])
		if neg {
			raw = ^raw
		}
		return varIntFromMagnitude(raw, neg), buf[9:]
	default:
		panic("lexkey: corrupt VarInt encoding")
	}
}

func (varIntCodec) Append(buf []byte, value int64) []byte {
	return appendVarInt(buf, value)
}

func (varIntCodec) Put(buf []byte, value int64) []byte {
	n := varIntSize(value)
	if len(buf) < n {
		panic("lexkey: buffer too small for VarInt")
	}
	appendVarInt(buf[:0:n], value)
	return buf[n:]
}

func (varIntCodec) Get(buf []byte) (int64, []byte) {
	return getVarInt(buf)
}

func (varIntCodec) RequiresTerminator() bool {
	return false
}
