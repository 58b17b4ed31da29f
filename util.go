package num

type RandSource interface {
	Uint64() uint64
}

// DifferenceU64 subtracts the smaller of a and b from the larger.
func DifferenceU64(a, b U64) U64 {
	if a.bits > b.bits {
		return a.Sub(b)
	} else if a.bits < b.bits {
		return b.Sub(a)
	}
	return U64{}
}

func LargerU64(a, b U64) U64 {
	if a.bits < b.bits {
		return b
	}
	return a
}

func SmallerU64(a, b U64) U64 {
	if a.bits > b.bits {
		return b
	}
	return a
}
