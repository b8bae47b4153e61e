// Package safe provides integer conversions with range checks.
package safe

import "fmt"

// Uint64 converts a signed integer to uint64, rejecting negative values.
func Uint64[T ~int | ~int32 | ~int64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// PositiveUint64 converts a signed integer to uint64, rejecting zero and negative values.
func PositiveUint64[T ~int | ~int32 | ~int64](v T) (uint64, error) {
	if v == 0 {
		return 0, fmt.Errorf("value %d is not positive", v)
	}
	return Uint64(v)
}
