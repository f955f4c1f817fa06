package lexkey

// emptyCodec is a Codec that encodes no data.
// Get returns the zero value of T.
// No method of this Codec will ever fail.
//
// This is useful for marker types and zero-field Sum variants.
type emptyCodec[T any] struct{}

// Empty returns a Codec that encodes every value of T as zero bytes.
// All values of T compare equal once encoded. It is most useful as the
// payload Codec for a Sum variant carrying no data.
func Empty[T any]() Codec[T] { return emptyCodec[T]{} }

func (emptyCodec[T]) Append(buf []byte, _ T) []byte {
	return buf
}

func (emptyCodec[T]) Put(buf []byte, _ T) []byte {
	return buf
}

func (emptyCodec[T]) Get(buf []byte) (T, []byte) {
	var zero T
	return zero, buf
}

func (emptyCodec[T]) RequiresTerminator() bool {
	return false
}
