package lexkey

// Variant2, Variant3, and Variant4 carry the payload of a tagged union
// (sum type) of 2 to 4 cases. Exactly one of the fields identified by
// Tag is meaningful; the others are the zero value. Construct one with
// its NewVariantNVi helper (NewVariant2V1, NewVariant3V2, ...), which also
// sets Tag.
//
// The on-the-wire encoding is a VarUint tag (the variant's declaration
// index, starting at 0) followed by that variant's payload. Reordering
// or removing declared variants changes the meaning of previously
// encoded tags; only appending new variants at the end is
// backward-compatible, matching the same tradeoff Sum's tag scheme
// inherits from VarUint.
type (
	Variant2[T1, T2 any] struct {
		Tag int
		V1  T1
		V2  T2
	}
	Variant3[T1, T2, T3 any] struct {
		Tag int
		V1  T1
		V2  T2
		V3  T3
	}
	Variant4[T1, T2, T3, T4 any] struct {
		Tag int
		V1  T1
		V2  T2
		V3  T3
		V4  T4
	}
)

// NewVariant2V1 returns a Variant2 holding a V1 payload.
func NewVariant2V1[T1, T2 any](v T1) Variant2[T1, T2] { return Variant2[T1, T2]{Tag: 0, V1: v} }

// NewVariant2V2 returns a Variant2 holding a V2 payload.
func NewVariant2V2[T1, T2 any](v T2) Variant2[T1, T2] { return Variant2[T1, T2]{Tag: 1, V2: v} }

// NewVariant3V1 returns a Variant3 holding a V1 payload.
func NewVariant3V1[T1, T2, T3 any](v T1) Variant3[T1, T2, T3] {
	return Variant3[T1, T2, T3]{Tag: 0, V1: v}
}

// NewVariant3V2 returns a Variant3 holding a V2 payload.
func NewVariant3V2[T1, T2, T3 any](v T2) Variant3[T1, T2, T3] {
	return Variant3[T1, T2, T3]{Tag: 1, V2: v}
}

// NewVariant3V3 returns a Variant3 holding a V3 payload.
func NewVariant3V3[T1, T2, T3 any](v T3) Variant3[T1, T2, T3] {
	return Variant3[T1, T2, T3]{Tag: 2, V3: v}
}

// NewVariant4V1 returns a Variant4 holding a V1 payload.
func NewVariant4V1[T1, T2, T3, T4 any](v T1) Variant4[T1, T2, T3, T4] {
	return Variant4[T1, T2, T3, T4]{Tag: 0, V1: v}
}

// NewVariant4V2 returns a Variant4 holding a V2 payload.
func NewVariant4V2[T1, T2, T3, T4 any](v T2) Variant4[T1, T2, T3, T4] {
	return Variant4[T1, T2, T3, T4]{Tag: 1, V2: v}
}

// NewVariant4V3 returns a Variant4 holding a V3 payload.
func NewVariant4V3[T1, T2, T3, T4 any](v T3) Variant4[T1, T2, T3, T4] {
	return Variant4[T1, T2, T3, T4]{Tag: 2, V3: v}
}

// NewVariant4V4 returns a Variant4 holding a V4 payload.
func NewVariant4V4[T1, T2, T3, T4 any](v T4) Variant4[T1, T2, T3, T4] {
	return Variant4[T1, T2, T3, T4]{Tag: 3, V4: v}
}

type sum2Codec[T1, T2 any] struct {
	c1 Codec[T1]
	c2 Codec[T2]
}

// Sum2 returns a Codec for a 2-case tagged union, given a Codec for each case's payload.
func Sum2[T1, T2 any](c1 Codec[T1], c2 Codec[T2]) Codec[Variant2[T1, T2]] {
	return sum2Codec[T1, T2]{c1, c2}
}

func (c sum2Codec[T1, T2]) Append(buf []byte, value Variant2[T1, T2]) []byte {
	buf = appendVarUint(buf, uint64(value.Tag))
	switch value.Tag {
	case 0:
		return c.c1.Append(buf, value.V1)
	default:
		return c.c2.Append(buf, value.V2)
	}
}

func (c sum2Codec[T1, T2]) Put(buf []byte, value Variant2[T1, T2]) []byte {
	buf = stdVarUint.Put(buf, uint64(value.Tag))
	switch value.Tag {
	case 0:
		return c.c1.Put(buf, value.V1)
	default:
		return c.c2.Put(buf, value.V2)
	}
}

func (c sum2Codec[T1, T2]) Get(buf []byte) (Variant2[T1, T2], []byte) {
	tag, buf := getVarUint(buf)
	var value Variant2[T1, T2]
	value.Tag = int(tag)
	switch tag {
	case 0:
		value.V1, buf = c.c1.Get(buf)
	case 1:
		value.V2, buf = c.c2.Get(buf)
	default:
		panic(badTagError{tag})
	}
	return value, buf
}

func (c sum2Codec[T1, T2]) RequiresTerminator() bool {
	return false
}

type sum3Codec[T1, T2, T3 any] struct {
	c1 Codec[T1]
	c2 Codec[T2]
	c3 Codec[T3]
}

// Sum3 returns a Codec for a 3-case tagged union, given a Codec for each case's payload.
func Sum3[T1, T2, T3 any](c1 Codec[T1], c2 Codec[T2], c3 Codec[T3]) Codec[Variant3[T1, T2, T3]] {
	return sum3Codec[T1, T2, T3]{c1, c2, c3}
}

func (c sum3Codec[T1, T2, T3]) Append(buf []byte, value Variant3[T1, T2, T3]) []byte {
	buf = appendVarUint(buf, uint64(value.Tag))
	switch value.Tag {
	case 0:
		return c.c1.Append(buf, value.V1)
	case 1:
		return c.c2.Append(buf, value.V2)
	default:
		return c.c3.Append(buf, value.V3)
	}
}

func (c sum3Codec[T1, T2, T3]) Put(buf []byte, value Variant3[T1, T2, T3]) []byte {
	buf = stdVarUint.Put(buf, uint64(value.Tag))
	switch value.Tag {
	case 0:
		return c.c1.Put(buf, value.V1)
	case 1:
		return c.c2.Put(buf, value.V2)
	default:
		return c.c3.Put(buf, value.V3)
	}
}

func (c sum3Codec[T1, T2, T3]) Get(buf []byte) (Variant3[T1, T2, T3], []byte) {
	tag, buf := getVarUint(buf)
	var value Variant3[T1, T2, T3]
	value.Tag = int(tag)
	switch tag {
	case 0:
		value.V1, buf = c.c1.Get(buf)
	case 1:
		value.V2, buf = c.c2.Get(buf)
	case 2:
		value.V3, buf = c.c3.Get(buf)
	default:
		panic(badTagError{tag})
	}
	return value, buf
}

func (c sum3Codec[T1, T2, T3]) RequiresTerminator() bool {
	return false
}

type sum4Codec[T1, T2, T3, T4 any] struct {
	c1 Codec[T1]
	c2 Codec[T2]
	c3 Codec[T3]
	c4 Codec[T4]
}

// Sum4 returns a Codec for a 4-case tagged union, given a Codec for each case's payload.
func Sum4[T1, T2, T3, T4 any](
	c1 Codec[T1], c2 Codec[T2], c3 Codec[T3], c4 Codec[T4],
) Codec[Variant4[T1, T2, T3, T4]] {
	return sum4Codec[T1, T2, T3, T4]{c1, c2, c3, c4}
}

func (c sum4Codec[T1, T2, T3, T4]) Append(buf []byte, value Variant4[T1, T2, T3, T4]) []byte {
	buf = appendVarUint(buf, uint64(value.Tag))
	switch value.Tag {
	case 0:
		return c.c1.Append(buf, value.V1)
	case 1:
		return c.c2.Append(buf, value.V2)
	case 2:
		return c.c3.Append(buf, value.V3)
	default:
		return c.c4.Append(buf, value.V4)
	}
}

func (c sum4Codec[T1, T2, T3, T4]) Put(buf []byte, value Variant4[T1, T2, T3, T4]) []byte {
	buf = stdVarUint.Put(buf, uint64(value.Tag))
	switch value.Tag {
	case 0:
		return c.c1.Put(buf, value.V1)
	case 1:
		return c.c2.Put(buf, value.V2)
	case 2:
		return c.c3.Put(buf, value.V3)
	default:
		return c.c4.Put(buf, value.V4)
	}
}

func (c sum4Codec[T1, T2, T3, T4]) Get(buf []byte) (Variant4[T1, T2, T3, T4], []byte) {
	tag, buf := getVarUint(buf)
	var value Variant4[T1, T2, T3, T4]
	value.Tag = int(tag)
	switch tag {
	case 0:
		value.V1, buf = c.c1.Get(buf)
	case 1:
		value.V2, buf = c.c2.Get(buf)
	case 2:
		value.V3, buf = c.c3.Get(buf)
	case 3:
		value.V4, buf = c.c4.Get(buf)
	default:
		panic(badTagError{tag})
	}
	return value, buf
}

func (c sum4Codec[T1, T2, T3, T4]) RequiresTerminator() bool {
	return false
}
