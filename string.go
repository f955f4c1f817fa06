package lexkey

import "bytes"

// stringCodec is the Codec for strings.
//
// A string is encoded as its UTF-8 bytes followed by a single 0x00
// terminator byte. No byte in the string's content is escaped, and an
// embedded NUL is not checked for. A string containing an embedded NUL
// does not decode back: Get stops at the first 0x00, returning only the
// part before it and leaving the rest in the returned buffer. Its order
// against other strings sharing a prefix up to that NUL is not preserved
// either.
//
// Because the encoding already carries its own terminator, RequiresTerminator
// reports false: this codec never needs a further terminator layered on top
// by a composite.
type stringCodec struct{}

var stdString Codec[string] = stringCodec{}

// String returns a Codec for the string type.
//
// Strings are ordered by their UTF-8 bytes, which for valid UTF-8 strings
// agrees with the natural Unicode code point order. Go strings are not
// inherently UTF-8, but this package treats them as byte sequences;
// non-UTF-8 strings still encode and decode losslessly, just without the
// code-point-order guarantee.
func String() Codec[string] { return stdString }

func (stringCodec) Append(buf []byte, value string) []byte {
	buf = extend(buf, len(value)+1)
	buf = append(buf, value...)
	return append(buf, 0)
}

func (stringCodec) Put(buf []byte, value string) []byte {
	buf = copyAll(buf, []byte(value))
	buf[0] = 0
	return buf[1:]
}

func (stringCodec) Get(buf []byte) (string, []byte) {
	i := bytes.IndexByte(buf, 0)
	if i < 0 {
		panic("lexkey: string encoding missing terminator")
	}
	return string(buf[:i]), buf[i+1:]
}

func (stringCodec) RequiresTerminator() bool {
	return false
}
