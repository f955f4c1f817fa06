/*
Package lexkey defines an order-preserving binary encoding for typed, structured values.

Values encoded by this package have a byte image whose unsigned
lexicographic order (a raw memcmp) equals the natural semantic order of
the value. This is the foundational primitive for ordered key-value
stores — LSM trees, B-trees, log-structured stores — where comparing
keys is a byte comparison and composite keys must sort coherently across
fields.

# Codecs

[Codec] is the core abstraction: a type that knows how to append, put,
and get values of some Go type T to/from a byte buffer. Functions
returning Codecs constitute the majority of this API:

  - [Bool]
  - [Uint8], [Uint16], [Uint32], [Uint64]
  - [Int8], [Int16], [Int32], [Int64]
  - [VarUint], [VarInt]
  - [Float32], [Float64]
  - [Char]
  - [String]
  - [OptionalOf]
  - [MakeTuple2], [MakeTuple3], [MakeTuple4], [MakeTuple5]
  - [Record], [FieldOf]
  - [Sum2], [Sum3], [Sum4]
  - [Negate]

These require a type parameter because Go cannot infer it from the
function's arguments alone:

  - [CastBool], [CastUint8] .. [CastUint64], [CastInt8] .. [CastInt64]
  - [CastVarUint], [CastVarInt]
  - [CastFloat32], [CastFloat64]
  - [CastString]
  - [Empty]

# Composition

Fixed-width scalars, [VarUint]/[VarInt], [String], and [OptionalOf] over
any of them are all self-delimiting: concatenating their encodings with
no separator, length prefix, or padding preserves lexicographic order
between sibling fields. [Tuple2]..[Tuple5] and [Record] rely on exactly that property,
and do no escaping of their own — unlike a general-purpose ordered
serialization format supporting unbounded sequences and maps, this
package deliberately does not support those shapes, so it never pays the
~12.5%-per-byte cost of an escape scheme. See [Codec.RequiresTerminator]
for the one place termination still matters: a hand-rolled Codec whose
encodings can stand in a prefix relationship, used as a non-final field.

For composite types too irregular to express with the generic composers
above — deeply nested structures, large tagged unions — implement
[Encodable] directly against the low-level [Encoder] and drive fields in
declaration order by hand. This is the same "visitor passed to a
user-implemented encode method" a derive-macro or reflection-based
encoder would generate code for, just written out.

All Codecs provided by this package are safe for concurrent use if their
delegate Codecs (if any) are, and hold no mutable state of their own.
*/
package lexkey

// Codec defines a binary encoding for values of type T.
// Implementations of Codec provided by this package preserve T's natural ordering:
// for any a, b of type T with a <= b, Append(nil, a) <= Append(nil, b) under
// unsigned lexicographic byte comparison.
//
// Append and Put must produce the same encoded bytes.
// Get must be able to decode encodings produced by Append and Put.
// Encoding and decoding must be lossless inverse operations.
type Codec[T any] interface {
	// Append encodes value and appends the encoded bytes to buf, returning the updated buffer.
	//
	// If buf is nil and no bytes are appended, Append may return nil.
	Append(buf []byte, value T) []byte

	// Put encodes value into buf, returning buf following what was written.
	//
	// Put will panic if buf is too small, and still may have written some data to buf.
	// Put will write only the bytes that encode value.
	Put(buf []byte, value T) []byte

	// Get decodes a value of type T from the front of buf, returning the value
	// and buf following the encoded value.
	// Get will panic if a value of type T cannot be successfully decoded from buf.
	Get(buf []byte) (T, []byte)

	// RequiresTerminator reports whether this Codec's encodings need escaping and a
	// terminator appended if more data follows in the same composite.
	//
	// Fixed-width scalars and VarUint/VarInt (self-delimiting via their length
	// header) never require a terminator. Neither does String: its terminator is
	// baked into every encoding unconditionally, which is exactly what keeps "ab"
	// from being a byte-prefix of "abc" mid-composite. A hand-rolled Codec whose
	// encodings can stand in a prefix relationship, or one that only sometimes
	// writes its own terminator, must report true. OptionalOf adds nothing after
	// the wrapped payload, so it reports whatever its element Codec does.
	RequiresTerminator() bool
}

// Helper functionality shared by this package's Codec implementations.

// copyAll is like the built-in copy(dst, src), except that it panics if dst
// is not large enough to hold all of src. copyAll returns the slice of dst
// following what was written.
func copyAll(dst, src []byte) []byte {
	if len(src) == 0 {
		return dst
	}
	_ = dst[len(src)-1]
	return dst[copy(dst, src):]
}

// extend ensures that n more bytes can be appended to buf without another
// allocation, returning the resulting slice.
func extend(buf []byte, n int) []byte {
	if n -= cap(buf) - len(buf); n > 0 {
		buf = append(buf[:cap(buf)], make([]byte, n)...)[:len(buf)]
	}
	return buf
}
