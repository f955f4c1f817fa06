package lexkey

import "unicode/utf8"

// charCodec is the Codec for rune, encoding it as 1 to 4 UTF-8 bytes.
//
// UTF-8's byte-level encoding already preserves code point order, so no
// further transform is needed. Invalid runes (surrogate halves, values
// above unicode.MaxRune) encode as utf8.RuneError.
type charCodec struct{}

var stdChar Codec[rune] = charCodec{}

// Char returns a Codec for the rune type.
func Char() Codec[rune] { return stdChar }

func (charCodec) Append(buf []byte, value rune) []byte {
	return utf8.AppendRune(buf, value)
}

func (charCodec) Put(buf []byte, value rune) []byte {
	n := utf8.EncodeRune(buf, value)
	return buf[n:]
}

func (charCodec) Get(buf []byte) (rune, []byte) {
	r, n := utf8.DecodeRune(buf)
	return r, buf[n:]
}

func (charCodec) RequiresTerminator() bool {
	return false
}
