package lexkey_test

import (
	"math"
	"testing"

	"github.com/lexkey-dev/lexkey"
	"github.com/stretchr/testify/assert"
)

func TestBool(t *testing.T) {
	t.Parallel()
	testCodec(t, lexkey.Bool(), []testCase[bool]{
		{"false", false, []byte{0x00}},
		{"true", true, []byte{0x01}},
	})
}

func TestUint8(t *testing.T) {
	t.Parallel()
	testCodec(t, lexkey.Uint8(), []testCase[uint8]{
		{"0", 0, []byte{0x00}},
		{"1", 1, []byte{0x01}},
		{"max", math.MaxUint8, []byte{0xFF}},
	})
}

func TestUint16(t *testing.T) {
	t.Parallel()
	testCodec(t, lexkey.Uint16(), []testCase[uint16]{
		{"0", 0, []byte{0x00, 0x00}},
		{"1", 1, []byte{0x00, 0x01}},
		{"max", math.MaxUint16, []byte{0xFF, 0xFF}},
	})
}

func TestUint32(t *testing.T) {
	t.Parallel()
	testCodec(t, lexkey.Uint32(), []testCase[uint32]{
		{"0", 0, []byte{0x00, 0x00, 0x00, 0x00}},
		{"1", 1, []byte{0x00, 0x00, 0x00, 0x01}},
		{"42", 42, []byte{0x00, 0x00, 0x00, 0x2A}},
		{"max", math.MaxUint32, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
	})
}

func TestUint64(t *testing.T) {
	t.Parallel()
	testCodec(t, lexkey.Uint64(), []testCase[uint64]{
		{"0", 0, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{"1", 1, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01}},
		{"max", math.MaxUint64, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
	})
}

func TestInt8(t *testing.T) {
	t.Parallel()
	testCodec(t, lexkey.Int8(), []testCase[int8]{
		{"min", math.MinInt8, []byte{0x00}},
		{"-1", -1, []byte{0x7F}},
		{"0", 0, []byte{0x80}},
		{"1", 1, []byte{0x81}},
		{"max", math.MaxInt8, []byte{0xFF}},
	})

	encode := encoderFor(lexkey.Int8())
	assert.IsIncreasing(t, [][]byte{
		encode(math.MinInt8),
		encode(-1),
		encode(0),
		encode(1),
		encode(math.MaxInt8),
	})
}

func TestInt16(t *testing.T) {
	t.Parallel()
	testCodec(t, lexkey.Int16(), []testCase[int16]{
		{"min", math.MinInt16, []byte{0x00, 0x00}},
		{"-1", -1, []byte{0x7F, 0xFF}},
		{"0", 0, []byte{0x80, 0x00}},
		{"1", 1, []byte{0x80, 0x01}},
		{"max", math.MaxInt16, []byte{0xFF, 0xFF}},
	})
}

func TestInt32(t *testing.T) {
	t.Parallel()
	testCodec(t, lexkey.Int32(), []testCase[int32]{
		{"min", math.MinInt32, []byte{0x00, 0x00, 0x00, 0x00}},
		{"-1", -1, []byte{0x7F, 0xFF, 0xFF, 0xFF}},
		{"0", 0, []byte{0x80, 0x00, 0x00, 0x00}},
		{"1", 1, []byte{0x80, 0x00, 0x00, 0x01}},
		{"max", math.MaxInt32, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
	})

	encode := encoderFor(lexkey.Int32())
	assert.IsIncreasing(t, [][]byte{
		encode(math.MinInt32),
		encode(-100),
		encode(-1),
		encode(0),
		encode(1),
		encode(100),
		encode(math.MaxInt32),
	})
}

func TestInt64(t *testing.T) {
	t.Parallel()
	testCodec(t, lexkey.Int64(), []testCase[int64]{
		{"min", math.MinInt64, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{"-1", -1, []byte{0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{"0", 0, []byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{"max", math.MaxInt64, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
	})
}
