package wlp

import (
	"encoding/binary"
	"math"
)

// hostByteOrder is the byte order of every integer on the wire. The
// protocol only ever runs over a local socket, so this is the native order.
var hostByteOrder binary.ByteOrder = binary.NativeEndian

// Fixed is a signed 24.8 fixed-point number.
type Fixed int32

// FixedFromInt converts an integer to fixed-point.
func FixedFromInt(i int) Fixed {
	return Fixed(int32(i) * 256)
}

// FixedFromFloat converts a float to fixed-point, rounding to the nearest 1/256.
func FixedFromFloat(f float64) Fixed {
	return Fixed(int32(math.Round(f * 256)))
}

// Float64 returns the value of f as a float.
func (f Fixed) Float64() float64 {
	return float64(f) / 256
}

// Int returns the integer part of f, truncated toward zero.
func (f Fixed) Int() int {
	return int(f) / 256
}

// ObjectID is an object id carried as an object or new_id argument.
type ObjectID uint32

func pad4(n int) int {
	return (n + 3) &^ 3
}

// StringSize returns the encoded width of a non-null string argument: the
// length word plus the bytes, the NUL terminator and padding.
func StringSize(s string) int {
	return 4 + pad4(len(s)+1)
}

// ArraySize returns the encoded width of an array argument.
func ArraySize(b []byte) int {
	return 4 + pad4(len(b))
}
