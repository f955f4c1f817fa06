package lexkey

// optionalCodec is the Codec for *T, treating a nil pointer as the
// absent case.
//
// The encoding is a single presence byte (0x00 absent, 0x01 present)
// followed by the wrapped encoding if present. Absent always sorts
// before present, regardless of elemCodec's own ordering.
//
// The presence byte tells a reader whether to expect elemCodec's encoding
// to follow, but it adds nothing after that encoding, so optionalCodec
// requires a terminator exactly when elemCodec does.
type optionalCodec[T any] struct {
	elemCodec Codec[T]
}

// OptionalOf returns a Codec for *T, given a Codec for T.
// A nil *T sorts before every non-nil *T.
func OptionalOf[T any](elemCodec Codec[T]) Codec[*T] {
	return optionalCodec[T]{elemCodec}
}

func (c optionalCodec[T]) Append(buf []byte, value *T) []byte {
	if value == nil {
		return append(buf, 0)
	}
	buf = append(buf, 1)
	return c.elemCodec.Append(buf, *value)
}

func (c optionalCodec[T]) Put(buf []byte, value *T) []byte {
	if value == nil {
		buf[0] = 0
		return buf[1:]
	}
	buf[0] = 1
	return c.elemCodec.Put(buf[1:], *value)
}

func (c optionalCodec[T]) Get(buf []byte) (*T, []byte) {
	present := buf[0]
	buf = buf[1:]
	if present == 0 {
		return nil, buf
	}
	value, buf := c.elemCodec.Get(buf)
	return &value, buf
}

func (c optionalCodec[T]) RequiresTerminator() bool {
	return c.elemCodec.RequiresTerminator()
}
