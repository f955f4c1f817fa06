package lexkey

import "io"

// Encodable is implemented by composite types too irregular to express
// with Tuple2..Tuple5 or Record: deeply nested structures, or large
// tagged unions where hand-writing the variant dispatch is clearer than
// composing Sum2..Sum4. EncodeTo is handed an Encoder and is responsible
// for calling its Emit/Begin methods for every field, in declaration
// order, exactly as a Record's fields would.
type Encodable interface {
	EncodeTo(enc *Encoder) error
}

// Encoder drives the low-level emission of an Encodable's fields to an
// io.Writer, one field at a time, in the same order a derive-macro or
// reflection-based encoder would generate code for. It does not buffer;
// each Emit call writes directly to the underlying writer and returns the
// writer's error unchanged. The Encoder keeps no error state: a call made
// after a failed one writes again.
//
// Encoder has no support for sequences or maps of unbounded length:
// BeginSequence and BeginMap always return an error. A sort-key codec
// that supported them would need a byte of overhead per element just to
// stay order-preserving, and ordered key-value stores rarely want an
// unbounded collection as part of a sort key anyway.
type Encoder struct {
	w   io.Writer
	buf []byte
}

// NewEncoder returns an Encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode runs value.EncodeTo against a fresh Encoder and returns the
// resulting bytes.
func Encode(value Encodable) ([]byte, error) {
	var buf writeBuffer
	if err := value.EncodeTo(NewEncoder(&buf)); err != nil {
		return nil, err
	}
	return buf.bytes, nil
}

type writeBuffer struct {
	bytes []byte
}

func (b *writeBuffer) Write(p []byte) (int, error) {
	b.bytes = append(b.bytes, p...)
	return len(p), nil
}

func (e *Encoder) emit(codecAppend func([]byte) []byte) error {
	e.buf = codecAppend(e.buf[:0])
	_, err := e.w.Write(e.buf)
	return err
}

// EmitNil writes nothing: a unit type has exactly one value, so its
// encoding carries no information. See also Empty.
func (e *Encoder) EmitNil() error { return nil }

// EmitBool writes a single encoded bool byte.
func (e *Encoder) EmitBool(value bool) error {
	return e.emit(func(buf []byte) []byte { return stdBool.Append(buf, value) })
}

// EmitUint8 writes a single encoded uint8 byte.
func (e *Encoder) EmitUint8(value uint8) error {
	return e.emit(func(buf []byte) []byte { return stdUint8.Append(buf, value) })
}

// EmitUint16 writes an encoded uint16.
func (e *Encoder) EmitUint16(value uint16) error {
	return e.emit(func(buf []byte) []byte { return stdUint16.Append(buf, value) })
}

// EmitUint32 writes an encoded uint32.
func (e *Encoder) EmitUint32(value uint32) error {
	return e.emit(func(buf []byte) []byte { return stdUint32.Append(buf, value) })
}

// EmitUint64 writes an encoded uint64.
func (e *Encoder) EmitUint64(value uint64) error {
	return e.emit(func(buf []byte) []byte { return stdUint64.Append(buf, value) })
}

// EmitInt8 writes an encoded int8.
func (e *Encoder) EmitInt8(value int8) error {
	return e.emit(func(buf []byte) []byte { return stdInt8.Append(buf, value) })
}

// EmitInt16 writes an encoded int16.
func (e *Encoder) EmitInt16(value int16) error {
	return e.emit(func(buf []byte) []byte { return stdInt16.Append(buf, value) })
}

// EmitInt32 writes an encoded int32.
func (e *Encoder) EmitInt32(value int32) error {
	return e.emit(func(buf []byte) []byte { return stdInt32.Append(buf, value) })
}

// EmitInt64 writes an encoded int64.
func (e *Encoder) EmitInt64(value int64) error {
	return e.emit(func(buf []byte) []byte { return stdInt64.Append(buf, value) })
}

// EmitVarUint writes a variable-length encoded uint64.
func (e *Encoder) EmitVarUint(value uint64) error {
	return e.emit(func(buf []byte) []byte { return stdVarUint.Append(buf, value) })
}

// EmitVarInt writes a variable-length encoded int64.
func (e *Encoder) EmitVarInt(value int64) error {
	return e.emit(func(buf []byte) []byte { return stdVarInt.Append(buf, value) })
}

// EmitFloat32 writes an encoded float32.
func (e *Encoder) EmitFloat32(value float32) error {
	return e.emit(func(buf []byte) []byte { return stdFloat32.Append(buf, value) })
}

// EmitFloat64 writes an encoded float64.
func (e *Encoder) EmitFloat64(value float64) error {
	return e.emit(func(buf []byte) []byte { return stdFloat64.Append(buf, value) })
}

// EmitChar writes an encoded rune.
func (e *Encoder) EmitChar(value rune) error {
	return e.emit(func(buf []byte) []byte { return stdChar.Append(buf, value) })
}

// EmitString writes an encoded string, including its terminator.
func (e *Encoder) EmitString(value string) error {
	return e.emit(func(buf []byte) []byte { return stdString.Append(buf, value) })
}

// BeginOption writes the presence byte for an Optional field. If present
// is true, the caller must follow with exactly one Emit/Begin call for
// the wrapped value.
func (e *Encoder) BeginOption(present bool) error {
	if present {
		return e.emit(func(buf []byte) []byte { return append(buf, 1) })
	}
	return e.emit(func(buf []byte) []byte { return append(buf, 0) })
}

// BeginVariant writes a Sum's variant tag. The caller must follow with
// exactly the fields of that variant, in declaration order.
func (e *Encoder) BeginVariant(tag uint64) error {
	return e.EmitVarUint(tag)
}

// BeginRecord and BeginTuple are no-ops: Record and Tuple fields are
// concatenated with no framing of their own, so the field count is not
// part of the encoding. They exist so an Encodable's EncodeTo method
// reads the same way regardless of which shape it is encoding.
func (e *Encoder) BeginRecord(int) error { return nil }

// EndRecord is the no-op counterpart to BeginRecord.
func (e *Encoder) EndRecord() error { return nil }

// BeginTuple is the Tuple counterpart to BeginRecord.
func (e *Encoder) BeginTuple(int) error { return nil }

// EndTuple is the no-op counterpart to BeginTuple.
func (e *Encoder) EndTuple() error { return nil }

// BeginSequence always fails: this package does not support
// order-preserving encodings of unbounded sequences.
func (e *Encoder) BeginSequence(int) error {
	return unsupportedShape("sequence")
}

// BeginMap always fails: this package does not support order-preserving
// encodings of maps.
func (e *Encoder) BeginMap(int) error {
	return unsupportedShape("map")
}
