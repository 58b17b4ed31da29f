package num

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	signBit = 0x8000000000000000

	// wrapUint64Float is 1 << 64. Note that float64(maxUint64) rounds up to
	// the same value, so range checks against floats must use this and '<',
	// never maxUint64 and '<='.
	wrapUint64Float = float64(maxUint64) + 1

	intSize = 32 << (^uint(0) >> 63)
)

var (
	MaxU64  = U64{bits: maxUint64}
	ZeroU64 = U64{}

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	maxBigUint64  = new(big.Int).SetUint64(maxUint64)
	maskUint32Big = new(big.Int).SetUint64(1<<32 - 1)

	// wrapBigU64 is 1 << 64, used to simulate over/underflow:
	wrapBigU64, _ = new(big.Int).SetString("18446744073709551616", 10)

	// This specifies the maximum error allowed between the float64 version of
	// a 64-bit uint and the result of the same operation performed by
	// big.Float.
	//
	// Calculate like so:
	//	return math.Nextafter(1.0, 2.0) - 1.0
	//
	floatDiffLimit, _ = new(big.Float).SetString("2.220446049250313080847263336181640625e-16")
)
