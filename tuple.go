package lexkey

// MakeTuple2 through MakeTuple5 compose Codecs for heterogeneous fields
// into a Codec for the corresponding TupleN struct, by concatenating the
// fields' encodings in declaration order with no framing of any kind. This is
// correct precisely because every field Codec provided by this package
// is self-delimiting on its own (Get always knows exactly how many bytes
// it consumed), given that RequiresTerminator is respected for any field
// that needs one.
//
// All but the last field must use a Codec with RequiresTerminator()
// false, or be wrapped so that it is (see String's own baked-in
// terminator, which makes RequiresTerminator false for String too). A
// field codec that still requires a terminator (a hand-rolled Encodable
// composed without escaping, for instance) may only be used as the final
// field, where no further data follows to make its encoding ambiguous.

// Tuple2 holds two heterogeneously-typed values, in order.
type Tuple2[T1, T2 any] struct {
	T1 T1
	T2 T2
}

// Tuple3 holds three heterogeneously-typed values, in order.
type Tuple3[T1, T2, T3 any] struct {
	T1 T1
	T2 T2
	T3 T3
}

// Tuple4 holds four heterogeneously-typed values, in order.
type Tuple4[T1, T2, T3, T4 any] struct {
	T1 T1
	T2 T2
	T3 T3
	T4 T4
}

// Tuple5 holds five heterogeneously-typed values, in order.
type Tuple5[T1, T2, T3, T4, T5 any] struct {
	T1 T1
	T2 T2
	T3 T3
	T4 T4
	T5 T5
}

type tuple2Codec[T1, T2 any] struct {
	c1 Codec[T1]
	c2 Codec[T2]
}

// MakeTuple2 returns a Codec for Tuple2[T1, T2], given Codecs for its fields.
func MakeTuple2[T1, T2 any](c1 Codec[T1], c2 Codec[T2]) Codec[Tuple2[T1, T2]] {
	return tuple2Codec[T1, T2]{c1, c2}
}

func (c tuple2Codec[T1, T2]) Append(buf []byte, value Tuple2[T1, T2]) []byte {
	buf = c.c1.Append(buf, value.T1)
	return c.c2.Append(buf, value.T2)
}

func (c tuple2Codec[T1, T2]) Put(buf []byte, value Tuple2[T1, T2]) []byte {
	buf = c.c1.Put(buf, value.T1)
	return c.c2.Put(buf, value.T2)
}

func (c tuple2Codec[T1, T2]) Get(buf []byte) (Tuple2[T1, T2], []byte) {
	var t Tuple2[T1, T2]
	t.T1, buf = c.c1.Get(buf)
	t.T2, buf = c.c2.Get(buf)
	return t, buf
}

func (c tuple2Codec[T1, T2]) RequiresTerminator() bool {
	return c.c2.RequiresTerminator()
}

type tuple3Codec[T1, T2, T3 any] struct {
	c1 Codec[T1]
	c2 Codec[T2]
	c3 Codec[T3]
}

// MakeTuple3 returns a Codec for Tuple3[T1, T2, T3], given Codecs for its fields.
func MakeTuple3[T1, T2, T3 any](c1 Codec[T1], c2 Codec[T2], c3 Codec[T3]) Codec[Tuple3[T1, T2, T3]] {
	return tuple3Codec[T1, T2, T3]{c1, c2, c3}
}

func (c tuple3Codec[T1, T2, T3]) Append(buf []byte, value Tuple3[T1, T2, T3]) []byte {
	buf = c.c1.Append(buf, value.T1)
	buf = c.c2.Append(buf, value.T2)
	return c.c3.Append(buf, value.T3)
}

func (c tuple3Codec[T1, T2, T3]) Put(buf []byte, value Tuple3[T1, T2, T3]) []byte {
	buf = c.c1.Put(buf, value.T1)
	buf = c.c2.Put(buf, value.T2)
	return c.c3.Put(buf, value.T3)
}

func (c tuple3Codec[T1, T2, T3]) Get(buf []byte) (Tuple3[T1, T2, T3], []byte) {
	var t Tuple3[T1, T2, T3]
	t.T1, buf = c.c1.Get(buf)
	t.T2, buf = c.c2.Get(buf)
	t.T3, buf = c.c3.Get(buf)
	return t, buf
}

func (c tuple3Codec[T1, T2, T3]) RequiresTerminator() bool {
	return c.c3.RequiresTerminator()
}

type tuple4Codec[T1, T2, T3, T4 any] struct {
	c1 Codec[T1]
	c2 Codec[T2]
	c3 Codec[T3]
	c4 Codec[T4]
}

// MakeTuple4 returns a Codec for Tuple4[T1, T2, T3, T4], given Codecs for its fields.
func MakeTuple4[T1, T2, T3, T4 any](
	c1 Codec[T1], c2 Codec[T2], c3 Codec[T3], c4 Codec[T4],
) Codec[Tuple4[T1, T2, T3, T4]] {
	return tuple4Codec[T1, T2, T3, T4]{c1, c2, c3, c4}
}

func (c tuple4Codec[T1, T2, T3, T4]) Append(buf []byte, value Tuple4[T1, T2, T3, T4]) []byte {
	buf = c.c1.Append(buf, value.T1)
	buf = c.c2.Append(buf, value.T2)
	buf = c.c3.Append(buf, value.T3)
	return c.c4.Append(buf, value.T4)
}

func (c tuple4Codec[T1, T2, T3, T4]) Put(buf []byte, value Tuple4[T1, T2, T3, T4]) []byte {
	buf = c.c1.Put(buf, value.T1)
	buf = c.c2.Put(buf, value.T2)
	buf = c.c3.Put(buf, value.T3)
	return c.c4.Put(buf, value.T4)
}

func (c tuple4Codec[T1, T2, T3, T4]) Get(buf []byte) (Tuple4[T1, T2, T3, T4], []byte) {
	var t Tuple4[T1, T2, T3, T4]
	t.T1, buf = c.c1.Get(buf)
	t.T2, buf = c.c2.Get(buf)
	t.T3, buf = c.c3.Get(buf)
	t.T4, buf = c.c4.Get(buf)
	return t, buf
}

func (c tuple4Codec[T1, T2, T3, T4]) RequiresTerminator() bool {
	return c.c4.RequiresTerminator()
}

type tuple5Codec[T1, T2, T3, T4, T5 any] struct {
	c1 Codec[T1]
	c2 Codec[T2]
	c3 Codec[T3]
	c4 Codec[T4]
	c5 Codec[T5]
}

// MakeTuple5 returns a Codec for Tuple5[T1, T2, T3, T4, T5], given Codecs for its fields.
func MakeTuple5[T1, T2, T3, T4, T5 any](
	c1 Codec[T1], c2 Codec[T2], c3 Codec[T3], c4 Codec[T4], c5 Codec[T5],
) Codec[Tuple5[T1, T2, T3, T4, T5]] {
	return tuple5Codec[T1, T2, T3, T4, T5]{c1, c2, c3, c4, c5}
}

func (c tuple5Codec[T1, T2, T3, T4, T5]) Append(buf []byte, value Tuple5[T1, T2, T3, T4, T5]) []byte {
	buf = c.c1.Append(buf, value.T1)
	buf = c.c2.Append(buf, value.T2)
	buf = c.c3.Append(buf, value.T3)
	buf = c.c4.Append(buf, value.T4)
	return c.c5.Append(buf, value.T5)
}

func (c tuple5Codec[T1, T2, T3, T4, T5]) Put(buf []byte, value Tuple5[T1, T2, T3, T4, T5]) []byte {
	buf = c.c1.Put(buf, value.T1)
	buf = c.c2.Put(buf, value.T2)
	buf = c.c3.Put(buf, value.T3)
	buf = c.c4.Put(buf, value.T4)
	return c.c5.Put(buf, value.T5)
}

func (c tuple5Codec[T1, T2, T3, T4, T5]) Get(buf []byte) (Tuple5[T1, T2, T3, T4, T5], []byte) {
	var t Tuple5[T1, T2, T3, T4, T5]
	t.T1, buf = c.c1.Get(buf)
	t.T2, buf = c.c2.Get(buf)
	t.T3, buf = c.c3.Get(buf)
	t.T4, buf = c.c4.Get(buf)
	t.T5, buf = c.c5.Get(buf)
	return t, buf
}

func (c tuple5Codec[T1, T2, T3, T4, T5]) RequiresTerminator() bool {
	return c.c5.RequiresTerminator()
}
