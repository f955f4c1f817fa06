package lexkey

// Field is one named, typed component of a Record, erased to operate
// directly on buffers so that fields of different Go types can be held
// in the same slice. Construct one with FieldOf.
type Field[S any] struct {
	append func(buf []byte, value S) []byte
	put    func(buf []byte, value S) []byte
	get    func(buf []byte, value *S) []byte
	term   bool
}

// FieldOf returns a Field that reads and writes its value via get/set
// closures over an F-typed member of S, using codec to encode/decode
// that member.
func FieldOf[S, F any](codec Codec[F], get func(S) F, set func(*S, F)) Field[S] {
	return Field[S]{
		append: func(buf []byte, value S) []byte {
			return codec.Append(buf, get(value))
		},
		put: func(buf []byte, value S) []byte {
			return codec.Put(buf, get(value))
		},
		get: func(buf []byte, value *S) []byte {
			f, rest := codec.Get(buf)
			set(value, f)
			return rest
		},
		term: codec.RequiresTerminator(),
	}
}

type recordCodec[S any] struct {
	fields []Field[S]
}

// Record returns a Codec for S that encodes fields in the given order,
// by concatenating each field's encoding with no framing, the same way
// Tuple2..Tuple5 do. Only the last field may use a Codec that requires a
// terminator.
func Record[S any](fields ...Field[S]) Codec[S] {
	return recordCodec[S]{fields}
}

func (c recordCodec[S]) Append(buf []byte, value S) []byte {
	for _, f := range c.fields {
		buf = f.append(buf, value)
	}
	return buf
}

func (c recordCodec[S]) Put(buf []byte, value S) []byte {
	for _, f := range c.fields {
		buf = f.put(buf, value)
	}
	return buf
}

func (c recordCodec[S]) Get(buf []byte) (S, []byte) {
	var value S
	for _, f := range c.fields {
		buf = f.get(buf, &value)
	}
	return value, buf
}

func (c recordCodec[S]) RequiresTerminator() bool {
	if len(c.fields) == 0 {
		return false
	}
	return c.fields[len(c.fields)-1].term
}
