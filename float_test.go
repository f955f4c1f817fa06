package lexkey_test

import (
	"math"
	"testing"

	"github.com/lexkey-dev/lexkey"
	"github.com/stretchr/testify/assert"
)

// floatBoundary is an IEEE 754 bit pattern at the edge of one class of
// values, named by what it is. The tables below list every boundary in
// the order the Codec must produce, smallest encoded image first; the
// tests derive everything else from these two tables.
type floatBoundary struct {
	name  string
	bits  uint64 // low 32 bits hold the pattern for the float32 table
	class string // "nan", "inf", "normal", "subnormal", "zero"
}

var float32Boundaries = []floatBoundary{
	{"-max NaN", 0xFF_FF_FF_FF, "nan"},
	{"-min NaN", 0xFF_80_00_01, "nan"},
	{"-Inf", 0xFF_80_00_00, "inf"},
	{"-max normal", 0xFF_7F_FF_FF, "normal"},
	{"-min normal", 0x80_80_00_00, "normal"},
	{"-max subnormal", 0x80_7F_FF_FF, "subnormal"},
	{"-min subnormal", 0x80_00_00_01, "subnormal"},
	{"-0", 0x80_00_00_00, "zero"},
	{"+0", 0x00_00_00_00, "zero"},
	{"+min subnormal", 0x00_00_00_01, "subnormal"},
	{"+max subnormal", 0x00_7F_FF_FF, "subnormal"},
	{"+min normal", 0x00_80_00_00, "normal"},
	{"+max normal", 0x7F_7F_FF_FF, "normal"},
	{"+Inf", 0x7F_80_00_00, "inf"},
	{"+min NaN", 0x7F_80_00_01, "nan"},
	{"+max NaN", 0x7F_FF_FF_FF, "nan"},
}

var float64Boundaries = []floatBoundary{
	{"-max NaN", 0xFF_FF_FF_FF_FF_FF_FF_FF, "nan"},
	{"-min NaN", 0xFF_F0_00_00_00_00_00_01, "nan"},
	{"-Inf", 0xFF_F0_00_00_00_00_00_00, "inf"},
	{"-max normal", 0xFF_EF_FF_FF_FF_FF_FF_FF, "normal"},
	{"-min normal", 0x80_10_00_00_00_00_00_00, "normal"},
	{"-max subnormal", 0x80_0F_FF_FF_FF_FF_FF_FF, "subnormal"},
	{"-min subnormal", 0x80_00_00_00_00_00_00_01, "subnormal"},
	{"-0", 0x80_00_00_00_00_00_00_00, "zero"},
	{"+0", 0x00_00_00_00_00_00_00_00, "zero"},
	{"+min subnormal", 0x00_00_00_00_00_00_00_01, "subnormal"},
	{"+max subnormal", 0x00_0F_FF_FF_FF_FF_FF_FF, "subnormal"},
	{"+min normal", 0x00_10_00_00_00_00_00_00, "normal"},
	{"+max normal", 0x7F_EF_FF_FF_FF_FF_FF_FF, "normal"},
	{"+Inf", 0x7F_F0_00_00_00_00_00_00, "inf"},
	{"+min NaN", 0x7F_F0_00_00_00_00_00_01, "nan"},
	{"+max NaN", 0x7F_FF_FF_FF_FF_FF_FF_FF, "nan"},
}

// Pairs of boundary names that must be exactly one bit pattern apart,
// proving the tables tile the whole space with no values falling between
// two classes. The same adjacencies hold at both widths.
var boundaryAdjacencies = [][2]string{
	{"+0", "+min subnormal"},
	{"+max subnormal", "+min normal"},
	{"+max normal", "+Inf"},
	{"+Inf", "+min NaN"},
	{"-0", "-min subnormal"},
	{"-max subnormal", "-min normal"},
	{"-max normal", "-Inf"},
	{"-Inf", "-min NaN"},
}

func boundaryBits(t *testing.T, boundaries []floatBoundary, name string) uint64 {
	t.Helper()
	for _, b := range boundaries {
		if b.name == name {
			return b.bits
		}
	}
	t.Fatalf("no boundary named %q", name)
	return 0
}

// checkBoundaryClasses verifies the names aren't lying about their bit
// patterns, using the given exponent mask to classify.
func checkBoundaryClasses(t *testing.T, boundaries []floatBoundary, toFloat func(uint64) float64, expMask uint64) {
	t.Helper()
	for _, b := range boundaries {
		v := toFloat(b.bits)
		exp := b.bits & expMask
		switch b.class {
		case "nan":
			assert.True(t, math.IsNaN(v), b.name)
		case "inf":
			assert.True(t, math.IsInf(v, 0), b.name)
		case "zero":
			assert.Equal(t, 0.0, v, b.name)
		case "subnormal":
			assert.Equal(t, uint64(0), exp, "%s: subnormals have a zero exponent", b.name)
			assert.NotEqual(t, 0.0, v, "%s: subnormals are not zero", b.name)
		case "normal":
			assert.NotEqual(t, uint64(0), exp, "%s: normals have a non-zero exponent", b.name)
			assert.NotEqual(t, expMask, exp, "%s: normals have a non-maximal exponent", b.name)
		}
	}
}

func float32FromBits(bits uint64) float64 {
	return float64(math.Float32frombits(uint32(bits)))
}

func TestFloat32BoundaryClasses(t *testing.T) {
	t.Parallel()
	checkBoundaryClasses(t, float32Boundaries, float32FromBits, 0x7F_80_00_00)

	// Exact identities for the values the names promise.
	assert.Equal(t, float32(math.MaxFloat32),
		math.Float32frombits(uint32(boundaryBits(t, float32Boundaries, "+max normal"))))
	assert.Equal(t, float32(math.SmallestNonzeroFloat32),
		math.Float32frombits(uint32(boundaryBits(t, float32Boundaries, "+min subnormal"))))
	assert.True(t, math.Signbit(float32FromBits(boundaryBits(t, float32Boundaries, "-0"))))
	assert.False(t, math.Signbit(float32FromBits(boundaryBits(t, float32Boundaries, "+0"))))
}

func TestFloat64BoundaryClasses(t *testing.T) {
	t.Parallel()
	checkBoundaryClasses(t, float64Boundaries, math.Float64frombits, 0x7F_F0_00_00_00_00_00_00)

	assert.Equal(t, math.MaxFloat64,
		math.Float64frombits(boundaryBits(t, float64Boundaries, "+max normal")))
	assert.Equal(t, math.SmallestNonzeroFloat64,
		math.Float64frombits(boundaryBits(t, float64Boundaries, "+min subnormal")))
	assert.True(t, math.Signbit(math.Float64frombits(boundaryBits(t, float64Boundaries, "-0"))))
	assert.False(t, math.Signbit(math.Float64frombits(boundaryBits(t, float64Boundaries, "+0"))))
}

func TestFloat32BoundaryAdjacency(t *testing.T) {
	t.Parallel()
	for _, pair := range boundaryAdjacencies {
		lower := boundaryBits(t, float32Boundaries, pair[0])
		upper := boundaryBits(t, float32Boundaries, pair[1])
		assert.Equal(t, lower+1, upper, "%s / %s", pair[0], pair[1])
	}
}

func TestFloat64BoundaryAdjacency(t *testing.T) {
	t.Parallel()
	for _, pair := range boundaryAdjacencies {
		lower := boundaryBits(t, float64Boundaries, pair[0])
		upper := boundaryBits(t, float64Boundaries, pair[1])
		assert.Equal(t, lower+1, upper, "%s / %s", pair[0], pair[1])
	}
}

// The orderable boundary values (everything but the NaNs and -0, which
// compares equal to +0) must be increasing under <, confirming the table
// order is the semantic order and not just the intended encoded order.
func TestFloat32SemanticOrdering(t *testing.T) {
	t.Parallel()
	var values []float32
	for _, b := range float32Boundaries {
		if b.class != "nan" && b.name != "-0" {
			values = append(values, math.Float32frombits(uint32(b.bits)))
		}
	}
	assert.IsIncreasing(t, values)
}

func TestFloat64SemanticOrdering(t *testing.T) {
	t.Parallel()
	var values []float64
	for _, b := range float64Boundaries {
		if b.class != "nan" && b.name != "-0" {
			values = append(values, math.Float64frombits(b.bits))
		}
	}
	assert.IsIncreasing(t, values)
}

// Round-trip and buffer-discipline checks for the non-NaN boundaries.
// NaNs round-trip too, but NaN != NaN makes them useless in an equality
// table; TestFloat32CodecOrdering covers their encoded images instead.
func TestFloat32(t *testing.T) {
	t.Parallel()
	codec := lexkey.Float32()
	var cases []testCase[float32]
	for _, b := range float32Boundaries {
		if b.class == "nan" {
			continue
		}
		cases = append(cases, testCase[float32]{b.name, math.Float32frombits(uint32(b.bits)), nil})
	}
	testCodec(t, codec, fillTestData(codec, cases))
}

func TestFloat64(t *testing.T) {
	t.Parallel()
	codec := lexkey.Float64()
	var cases []testCase[float64]
	for _, b := range float64Boundaries {
		if b.class == "nan" {
			continue
		}
		cases = append(cases, testCase[float64]{b.name, math.Float64frombits(b.bits), nil})
	}
	testCodec(t, codec, fillTestData(codec, cases))
}

// Every boundary, NaNs included, encodes in strictly increasing order,
// and the transform maps the extremes of the total order to the extremes
// of the byte space.
func TestFloat32CodecOrdering(t *testing.T) {
	t.Parallel()
	codec := lexkey.Float32()
	images := make([][]byte, len(float32Boundaries))
	for i, b := range float32Boundaries {
		images[i] = codec.Append(nil, math.Float32frombits(uint32(b.bits)))
	}
	assert.IsIncreasing(t, images)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, images[0])
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, images[len(images)-1])
}

func TestFloat64CodecOrdering(t *testing.T) {
	t.Parallel()
	codec := lexkey.Float64()
	images := make([][]byte, len(float64Boundaries))
	for i, b := range float64Boundaries {
		images[i] = codec.Append(nil, math.Float64frombits(b.bits))
	}
	assert.IsIncreasing(t, images)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, images[0])
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, images[len(images)-1])
}
