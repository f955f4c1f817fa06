package lexkey_test

// This file contains things that help in writing Codec tests,
// it doesn't have any tests itself.

import (
	"testing"

	"github.com/lexkey-dev/lexkey"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](value T) *T {
	return &value
}

func encoderFor[T any](codec lexkey.Codec[T]) func(value T) []byte {
	return func(value T) []byte {
		return codec.Append(nil, value)
	}
}

func concat(slices ...[]byte) []byte {
	var result []byte
	for _, s := range slices {
		result = append(result, s...)
	}
	return result
}

type testCase[T any] struct {
	name  string
	value T
	data  []byte
}

// fillTestData returns new test cases with each data field set to
// codec.Append(nil, value), for values whose encoding is tedious to
// calculate by hand.
func fillTestData[T any](codec lexkey.Codec[T], tests []testCase[T]) []testCase[T] {
	newTests := make([]testCase[T], len(tests))
	for i, tt := range tests {
		test := tt
		test.data = codec.Append(nil, tt.value)
		newTests[i] = test
	}
	return newTests
}

func makeBigBuf(size int) []byte {
	buf := make([]byte, size+100)
	for i := range buf {
		buf[i] = 37
	}
	return buf
}

func checkBigBuf(t *testing.T, buf []byte, size int) {
	t.Helper()
	for i := range buf[size:] {
		k := size + i
		assert.Equal(t, byte(37), buf[k], "buf[%d] = %d written past the encoded value", k, buf[k])
	}
}

// testCodec checks Append, Put, and Get against tt.data for every test
// case, plus that Put panics on a buffer one byte too short.
//
//nolint:thelper
func testCodec[T any](t *testing.T, codec lexkey.Codec[T], tests []testCase[T]) {
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			t.Run("append nil", func(t *testing.T) {
				t.Parallel()
				got := codec.Append(nil, tt.value)
				if len(tt.data) == 0 {
					// Codec.Append may return nil when it appends nothing to a nil buf.
					assert.Empty(t, got)
					return
				}
				assert.Equal(t, tt.data, got)
			})
			t.Run("append existing", func(t *testing.T) {
				t.Parallel()
				header := []byte{1, 2, 3, 4, 5}
				buf := codec.Append(append([]byte{}, header...), tt.value)
				assert.Equal(t, header, buf[:len(header)])
				assert.Equal(t, tt.data, buf[len(header):])
			})
			t.Run("put", func(t *testing.T) {
				t.Parallel()
				size := len(tt.data)
				buf := make([]byte, size)
				rest := codec.Put(buf, tt.value)
				assert.Empty(t, rest)
				assert.Equal(t, tt.data, buf)
			})
			t.Run("put long buf", func(t *testing.T) {
				t.Parallel()
				size := len(tt.data)
				buf := makeBigBuf(size)
				rest := codec.Put(buf, tt.value)
				assert.Equal(t, size, len(buf)-len(rest))
				assert.Equal(t, tt.data, buf[:size])
				checkBigBuf(t, buf, size)
			})
			t.Run("put short buf", func(t *testing.T) {
				t.Parallel()
				size := len(tt.data)
				if size == 0 {
					return
				}
				buf := makeBigBuf(size)
				assert.Panics(t, func() {
					codec.Put(buf[:size-1], tt.value)
				})
			})
			t.Run("get", func(t *testing.T) {
				t.Parallel()
				got, rest := codec.Get(tt.data)
				assert.Empty(t, rest)
				assert.Equal(t, tt.value, got)
			})
		})
	}
}

// testCodecFail checks that codec.Get panics when given tt.data missing
// its final byte.
//
//nolint:thelper
func testCodecFail[T any](t *testing.T, codec lexkey.Codec[T], tests []testCase[T]) {
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			size := len(tt.data)
			if size == 0 {
				return
			}
			assert.Panics(t, func() {
				codec.Get(tt.data[:size-1])
			})
		})
	}
}

// testOrdering asserts that tests, in the order given, encode to
// increasing byte sequences.
func testOrdering[T any](t *testing.T, codec lexkey.Codec[T], tests []testCase[T]) {
	t.Helper()
	encoded := make([][]byte, len(tests))
	for i, tt := range tests {
		encoded[i] = codec.Append(nil, tt.value)
	}
	assert.IsIncreasing(t, encoded)
}
