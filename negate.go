package lexkey

// negateCodec reverses the ordering of codec's encoding by flipping every
// encoded bit. This only works for codecs whose encodings are never a
// prefix of another encoding of the same codec, i.e. RequiresTerminator
// reports false: fixed-width scalars, VarUint/VarInt, String (its
// terminator is part of every encoding, and flips along with the rest),
// and Optional over any of these all qualify.
type negateCodec[T any] struct {
	codec Codec[T]
}

// Negate returns a Codec with the reverse encoded order of codec, for use
// as a descending sort key (e.g. "most recent timestamp first").
//
// Negate panics if codec.RequiresTerminator() is true: escaping a negated
// terminator-requiring encoding correctly requires a different scheme
// this package does not implement, since none of this package's
// self-delimiting types need one.
func Negate[T any](codec Codec[T]) Codec[T] {
	if codec.RequiresTerminator() {
		panic("lexkey: Negate requires a codec that does not require a terminator")
	}
	return negateCodec[T]{codec}
}

func negate(buf []byte) []byte {
	for i := range buf {
		buf[i] ^= 0xFF
	}
	return buf
}

func negCopy(buf []byte) []byte {
	dst := make([]byte, len(buf))
	for i := range buf {
		dst[i] = ^buf[i]
	}
	return dst
}

func (c negateCodec[T]) Append(buf []byte, value T) []byte {
	start := len(buf)
	buf = c.codec.Append(buf, value)
	negate(buf[start:])
	return buf
}

func (c negateCodec[T]) Put(buf []byte, value T) []byte {
	original := buf
	buf = c.codec.Put(buf, value)
	negate(original[:len(original)-len(buf)])
	return buf
}

func (c negateCodec[T]) Get(buf []byte) (T, []byte) {
	value, temp := c.codec.Get(negCopy(buf))
	return value, buf[len(buf)-len(temp):]
}

func (negateCodec[T]) RequiresTerminator() bool {
	return false
}
