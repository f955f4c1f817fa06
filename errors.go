package lexkey

import "fmt"

// The three error conditions this package recognizes.
//
// I/O failures from a caller-supplied io.Writer are surfaced unchanged;
// this package does no rollback or retry of its own.
//
// An unsupported shape (a sequence or map passed to an Encoder, which
// this package deliberately does not support) is a hard failure with an
// unsupportedShapeError, defined below.
//
// A domain violation (an interior NUL in a string used as a non-terminal
// Record/Tuple field, or reordering a Sum's declared variants across
// encoded generations of data) is not runtime-checked: the cost of
// checking for it on every encode would defeat the point of a codec this
// close to the hot path. It is a documented caller responsibility, not an
// error value.

// unsupportedShapeError reports an attempt to encode a sequence or map
// through the low-level Encoder, which this package does not implement.
type unsupportedShapeError struct {
	shape string
}

func (e unsupportedShapeError) Error() string {
	return fmt.Sprintf("lexkey: unsupported shape: %s", e.shape)
}

func unsupportedShape(shape string) error {
	return unsupportedShapeError{shape: shape}
}

// badTagError reports a Sum variant tag that does not correspond to any
// declared variant.
type badTagError struct {
	tag uint64
}

func (e badTagError) Error() string {
	return fmt.Sprintf("lexkey: unknown sum variant tag %d", e.tag)
}
