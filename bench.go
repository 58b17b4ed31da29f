package num

import (
	"math/big"
	"testing"
)

var (
	BenchBigIntResult *big.Int
	BenchBoolResult   bool
	BenchFloatResult  float64
	BenchIntResult    int
	BenchStringResult string
	BenchU64Result    U64
	BenchUint64Result uint64

	BenchUint641, BenchUint642 uint64 = 12093749018, 18927348917

	BenchU64In1, BenchU64In2 = U64{bits: 12093749018}, U64{bits: 18927348917}
)

func BenchmarkUint64Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 * BenchUint642
	}
}

func BenchmarkUint64Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 + BenchUint642
	}
}

func BenchmarkUint64Div(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 / BenchUint642
	}
}

func BenchmarkU64Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU64Result = BenchU64In1.Mul(BenchU64In2)
	}
}

func BenchmarkU64Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU64Result = BenchU64In1.Add(BenchU64In2)
	}
}

func BenchmarkU64QuoRem(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU64Result, _ = BenchU64In1.QuoRem(BenchU64In2)
	}
}

func BenchmarkU64Cmp(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchIntResult = BenchU64In1.Cmp(BenchU64In2)
	}
}

func BenchmarkU64String(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchStringResult = BenchU64In1.String()
	}
}

func BenchmarkU64AsFloat64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloatResult = BenchU64In1.AsFloat64()
	}
}

func BenchmarkBigIntMul(b *testing.B) {
	var max big.Int
	max.SetUint64(maxUint64)

	for i := 0; i < b.N; i++ {
		var dest big.Int
		dest.Mul(&dest, &max)
	}
}

func BenchmarkBigIntAdd(b *testing.B) {
	var max big.Int
	max.SetUint64(maxUint64)

	for i := 0; i < b.N; i++ {
		var dest big.Int
		dest.Add(&dest, &max)
	}
}

func BenchmarkBigIntDiv(b *testing.B) {
	u := new(big.Int).SetUint64(maxUint64)
	by := new(big.Int).SetUint64(121525124)
	for i := 0; i < b.N; i++ {
		var z big.Int
		z.Div(u, by)
	}
}

func BenchmarkBigIntCmpEqual(b *testing.B) {
	var v1, v2 big.Int
	v1.SetUint64(maxUint64)
	v2.SetUint64(maxUint64)

	for i := 0; i < b.N; i++ {
		BenchIntResult = v1.Cmp(&v2)
	}
}
